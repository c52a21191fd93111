// Package reminders holds the ordered in-process reminder collection.
// Reminders live in memory only; nothing here is persisted.
package reminders

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/adhocore/gronx"

	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/telemetry"
)

var (
	// ErrNotFound signals a toggle on an absent id. Toggling a missing
	// reminder is a reportable error, never a silent no-op.
	ErrNotFound = errors.New("reminder not found")
	// ErrInvalidRecur signals a malformed cron expression on a draft.
	ErrInvalidRecur = errors.New("invalid recurrence expression")
	// ErrTitleRequired signals an empty draft title.
	ErrTitleRequired = errors.New("reminder title is required")
)

// idSeq disambiguates ids created within the same nanosecond.
var idSeq uint64

// genID generates a unique reminder ID using the current UTC nanosecond
// timestamp and an atomic sequence number. The format is "rem-<ts>-<seq>".
func genID() string {
	n := time.Now().UTC().UnixNano()
	s := atomic.AddUint64(&idSeq, 1)
	return fmt.Sprintf("rem-%d-%d", n, s)
}

// Draft is the caller-supplied part of a reminder.
type Draft struct {
	Kind  models.ReminderKind `json:"type"`
	Title string              `json:"title"`
	Time  string              `json:"time"`
	Date  string              `json:"date"`
	// Recur is an optional cron expression for recurring reminders.
	Recur string `json:"recur"`
}

// Engine owns the ordered reminder collection. Insertion order is display
// order; new items append newest-last.
type Engine struct {
	mu    sync.Mutex
	items []models.Reminder
	byID  map[string]int
}

func New() *Engine {
	return &Engine{byID: make(map[string]int)}
}

// Add assigns a fresh unique id to the draft and appends it. Defaults: kind
// task, date today. A non-empty Recur must be a valid cron expression.
func (e *Engine) Add(d Draft) (models.Reminder, error) {
	if d.Title == "" {
		return models.Reminder{}, ErrTitleRequired
	}
	if d.Recur != "" && !gronx.IsValid(d.Recur) {
		return models.Reminder{}, fmt.Errorf("%w: %s", ErrInvalidRecur, d.Recur)
	}
	if d.Kind == "" {
		d.Kind = models.ReminderTask
	}
	if d.Date == "" {
		d.Date = time.Now().UTC().Format("2006-01-02")
	}
	r := models.Reminder{
		ID:    genID(),
		Kind:  d.Kind,
		Title: d.Title,
		Time:  d.Time,
		Date:  d.Date,
		Recur: d.Recur,
	}
	e.mu.Lock()
	e.byID[r.ID] = len(e.items)
	e.items = append(e.items, r)
	e.mu.Unlock()
	return r, nil
}

// ToggleComplete flips the completed flag and returns the updated record.
// Toggling twice restores the original state.
func (e *Engine) ToggleComplete(id string) (models.Reminder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i, ok := e.byID[id]
	if !ok {
		return models.Reminder{}, ErrNotFound
	}
	e.items[i].Completed = !e.items[i].Completed
	telemetry.ReminderToggles.Inc()
	return e.items[i], nil
}

// List returns all reminders in insertion order.
func (e *Engine) List() []models.Reminder {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Reminder, len(e.items))
	copy(out, e.items)
	return out
}

// ListActive returns incomplete reminders, preserving insertion order.
func (e *Engine) ListActive() []models.Reminder {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.Reminder
	for _, r := range e.items {
		if !r.Completed {
			out = append(out, r)
		}
	}
	return out
}

// recurring returns reminders carrying a recurrence expression.
func (e *Engine) recurring() []models.Reminder {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.Reminder
	for _, r := range e.items {
		if r.Recur != "" {
			out = append(out, r)
		}
	}
	return out
}

// Seed loads the sample reminders used by demo deployments.
func (e *Engine) Seed() {
	today := time.Now().UTC().Format("2006-01-02")
	in3days := time.Now().UTC().Add(3 * 24 * time.Hour).Format("2006-01-02")
	drafts := []Draft{
		{Kind: models.ReminderMedication, Title: "Prenatal Vitamin", Time: "08:00", Date: today, Recur: "0 8 * * *"},
		{Kind: models.ReminderAppointment, Title: "OB/GYN Checkup", Time: "14:30", Date: in3days},
		{Kind: models.ReminderTask, Title: "Drink 2L of water", Time: "All day", Date: today},
	}
	for _, d := range drafts {
		_, _ = e.Add(d)
	}
}
