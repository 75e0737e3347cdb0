// Package worker runs the background jobs of the platform: the daily round
// rollover and a stale-result watchdog.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/game"
	"github.com/matkaworks/matka-backend/internal/gamewindow"
	"github.com/matkaworks/matka-backend/internal/logger"
	"github.com/matkaworks/matka-backend/internal/metrics"
)

// RolloverWorker clears declared results of settled rounds once a day at the
// configured local wall-clock instant, and periodically scans for games stuck
// past their result time with nothing declared.
type RolloverWorker struct {
	gameService     game.Service
	loc             *time.Location
	rolloverMinutes int

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewRolloverWorker creates a rollover worker firing daily at rolloverTime
// (HH:mm) in loc.
func NewRolloverWorker(gameService game.Service, loc *time.Location, rolloverTime string) (*RolloverWorker, error) {
	minutes, err := gamewindow.ParseMinutes(rolloverTime)
	if err != nil {
		return nil, err
	}
	return &RolloverWorker{
		gameService:     gameService,
		loc:             loc,
		rolloverMinutes: minutes,
		shutdown:        make(chan struct{}),
	}, nil
}

// Start schedules the first rollover and begins the stale-result scan.
func (w *RolloverWorker) Start() {
	w.scheduleNext()

	w.wg.Add(1)
	go w.staleScanLoop()
}

// scheduleNext arms the timer for the next rollover. Two-stage scheduling:
// a long-range standby timer wakes up before the instant, then a final timer
// fires the rollover, so an early trigger never loops tightly.
func (w *RolloverWorker) scheduleNext() {
	duration := w.untilNextRollover(time.Now())
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > time.Hour {
		waitDuration := duration - standbyLeadTime
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		w.mu.Unlock()

		log.Info(LogMsgRolloverStandby, "next_check_at", time.Now().Add(waitDuration))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// If the timer fired early, reschedule for the remainder. A value
		// near 24h means we are on time or slightly late.
		rem := w.untilNextRollover(time.Now())
		if rem > jitterTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeRollover()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgRolloverApproach, "next_rollover_at", time.Now().Add(duration))
}

// executeRollover performs the rollover in a tracked goroutine.
func (w *RolloverWorker) executeRollover() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgRolloverStarting)

		rolled, err := w.gameService.RolloverRounds(ctx)
		if err != nil {
			log.Error(LogMsgRolloverFailed, "error", err)
			return
		}

		metrics.RoundsRolled.Add(float64(rolled))
		log.Info(LogMsgRolloverCompleted, "games_rolled", rolled)
	}()
}

// staleScanLoop logs games sitting past their result time with no declared
// result. It only observes; declaring remains an admin action.
func (w *RolloverWorker) staleScanLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(staleScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdown:
			return
		case <-ticker.C:
			w.scanStaleResults(context.Background())
		}
	}
}

func (w *RolloverWorker) scanStaleResults(ctx context.Context) {
	log := logger.FromContext(ctx)

	views, err := w.gameService.ListGames(ctx)
	if err != nil {
		log.Error(LogMsgStaleScanFailed, "error", err)
		return
	}

	stale := 0
	for i := range views {
		v := &views[i]
		if v.Status == domain.StatusResultDeclared && v.DeclaredResult == nil {
			stale++
			log.Warn(LogMsgStaleResultFound,
				"game_id", v.ID, "name", v.Name, "result_time", v.ResultTime)
		}
	}
	metrics.StaleResults.Set(float64(stale))
}

// untilNextRollover computes the duration from now to the next rollover
// instant in the worker's timezone.
func (w *RolloverWorker) untilNextRollover(now time.Time) time.Duration {
	local := now.In(w.loc)
	next := time.Date(local.Year(), local.Month(), local.Day(),
		w.rolloverMinutes/60, w.rolloverMinutes%60, 0, 0, w.loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}

// Shutdown cancels the pending timer and waits for in-flight work.
func (w *RolloverWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down rollover worker")

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Rollover worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Rollover worker shutdown timeout")
		return ctx.Err()
	}
}
