package reminders

import (
	"context"
	"time"

	"github.com/adhocore/gronx"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
	"github.com/YuvrajZende/patientcare-flows/pkg/telemetry"
)

// pollInterval bounds the sleep so reminders added while the scheduler is
// asleep are picked up without a wakeup channel.
const pollInterval = 30 * time.Second

// StartScheduler starts the recurring-reminder scheduler. It computes the
// earliest next tick across all recurring reminders with gronx and sleeps
// until then. Returns a cancel func; safe to call when no recurring
// reminders exist yet.
func (e *Engine) StartScheduler(ctx context.Context) context.CancelFunc {
	ctx2, cancel := context.WithCancel(ctx)
	go e.runScheduler(ctx2)
	logger.Info("reminder_scheduler_started")
	return cancel
}

func (e *Engine) runScheduler(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("reminder_scheduler_stopping")
			return
		default:
		}

		now := time.Now().UTC()
		next := e.nextTick(now)
		wait := pollInterval
		if !next.IsZero() {
			if w := time.Until(next); w < wait {
				wait = w
			}
		}
		if wait < 0 {
			wait = 0
		}

		select {
		case <-time.After(wait):
			e.fireDue(time.Now().UTC())
		case <-ctx.Done():
			logger.Info("reminder_scheduler_stopping")
			return
		}
	}
}

// nextTick returns the earliest future tick across recurring reminders, or
// the zero time when none recur.
func (e *Engine) nextTick(now time.Time) time.Time {
	var min time.Time
	for _, r := range e.recurring() {
		t, err := gronx.NextTickAfter(r.Recur, now, false)
		if err != nil {
			logger.Error("reminder_nexttick_failed", "id", r.ID, "recur", r.Recur, "error", err)
			continue
		}
		if min.IsZero() || t.Before(min) {
			min = t
		}
	}
	return min
}

// fireDue logs every recurring reminder whose expression is due at ref.
func (e *Engine) fireDue(ref time.Time) {
	g := gronx.New()
	for _, r := range e.recurring() {
		due, err := g.IsDue(r.Recur, ref)
		if err != nil || !due {
			continue
		}
		telemetry.RemindersDue.Inc()
		logger.Info("reminder_due", "id", r.ID, "title", r.Title, "type", string(r.Kind))
	}
}
