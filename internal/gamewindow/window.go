// Package gamewindow derives a game's betting-window status from its
// configured wall-clock boundaries. The computation is pure: callers pass a
// single `now` already converted to the platform timezone, and every branch
// is evaluated against that one instant.
package gamewindow

import (
	"fmt"
	"strconv"
	"strings"

	"time"

	"github.com/matkaworks/matka-backend/internal/domain"
)

const minutesPerDay = 24 * 60

// DefaultRolloverMinutes is the 06:00 morning boundary at which a declared
// result stops being shown for cross-midnight games. A game that declares at
// 03:30 reads result_declared until the rollover and waiting from then until
// its next window opens; without this bound a wrapped window would never
// report waiting at all.
const DefaultRolloverMinutes = 6 * 60

// rolloverMinutes must track the worker's round-rollover instant so the
// displayed waiting boundary matches when declared rounds actually reset.
var rolloverMinutes = DefaultRolloverMinutes

// SetRollover aligns the status computation with the configured rollover
// instant, in minutes since midnight. Called once at startup, before any
// status reads. Out-of-range values keep the default.
func SetRollover(minutes int) {
	if minutes >= 0 && minutes < minutesPerDay {
		rolloverMinutes = minutes
	}
}

// Status computes the betting-window status of g at the given instant.
//
// Precedence:
//  1. an inactive game is always waiting;
//  2. an admin forced status wins over the time computation;
//  3. otherwise the status is derived from start/end/result minutes,
//     with end <= start meaning the open window crosses midnight.
//
// Malformed time strings yield waiting (fail closed, never placeable).
func Status(g *domain.Game, now time.Time) domain.GameStatus {
	if !g.IsActive {
		return domain.StatusWaiting
	}
	if g.ForcedStatus != nil {
		return *g.ForcedStatus
	}

	start, err := ParseMinutes(g.StartTime)
	if err != nil {
		return domain.StatusWaiting
	}
	end, err := ParseMinutes(g.EndTime)
	if err != nil {
		return domain.StatusWaiting
	}
	result, err := ParseMinutes(g.ResultTime)
	if err != nil {
		return domain.StatusWaiting
	}

	current := now.Hour()*60 + now.Minute()

	if end > start {
		return sameDayStatus(current, start, end, result)
	}
	return crossMidnightStatus(current, start, end, result)
}

// sameDayStatus handles start < end windows: open on [start,end), closed on
// [end,result), result_declared from result onward.
func sameDayStatus(current, start, end, result int) domain.GameStatus {
	switch {
	case current >= start && current < end:
		return domain.StatusOpen
	case current >= end && current < result:
		return domain.StatusClosed
	case current >= result:
		return domain.StatusResultDeclared
	default:
		return domain.StatusWaiting
	}
}

// crossMidnightStatus handles end <= start windows. The open window wraps:
// a 20:00-03:00 game is open from 20:00 until 03:00 the next day. Where the
// closed and declared windows fall depends on whether the result time lands
// on the same side of midnight as the end time.
func crossMidnightStatus(current, start, end, result int) domain.GameStatus {
	if current >= start || current < end {
		return domain.StatusOpen
	}

	// A result declared in the early morning is displayed only until the
	// rollover; one declared later in the day is displayed up to the next
	// window open.
	declaredUntil := start
	if result < rolloverMinutes && rolloverMinutes <= start {
		declaredUntil = rolloverMinutes
	}

	if result > end {
		// Result falls on the same day as the window end.
		switch {
		case current >= end && current < result:
			return domain.StatusClosed
		case current >= result && current < declaredUntil:
			return domain.StatusResultDeclared
		}
		return domain.StatusWaiting
	}

	// Result wraps past midnight relative to the end.
	switch {
	case (current >= end && current < minutesPerDay) || (current >= 0 && current < result):
		return domain.StatusClosed
	case current >= result && current < declaredUntil:
		return domain.StatusResultDeclared
	}
	return domain.StatusWaiting
}

// ParseMinutes converts an "HH:mm" wall-clock string to minutes since
// midnight.
func ParseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:mm", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return hour*60 + minute, nil
}
