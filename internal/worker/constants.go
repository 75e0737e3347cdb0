package worker

import "time"

// Log messages for the rollover worker
const (
	LogMsgRolloverStandby   = "Rollover worker in standby"
	LogMsgRolloverApproach  = "Rollover scheduled"
	LogMsgRolloverStarting  = "Round rollover starting"
	LogMsgRolloverCompleted = "Round rollover completed"
	LogMsgRolloverFailed    = "Round rollover failed"
	LogMsgStaleResultFound  = "Game past result time with no declared result"
	LogMsgStaleScanFailed   = "Stale result scan failed"
)

// Scheduling parameters. The two-stage timer wakes up shortly before
// the rollover instant so clock jitter cannot cause a tight reschedule loop.
const (
	standbyLeadTime    = 45 * time.Minute
	jitterTolerance    = 10 * time.Second
	staleScanInterval  = 5 * time.Minute
)
