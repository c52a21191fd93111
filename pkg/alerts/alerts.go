// Package alerts tracks the SOS alert lifecycle. An alert is raised into the
// active set and leaves it through exactly one of two terminal transitions,
// dismiss or respond. A dismissed or responded id never becomes active again.
package alerts

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/telemetry"
)

// ErrReasonRequired signals a raise attempt without a reason. Staff need to
// know why an SOS was sent before they can act on it.
var ErrReasonRequired = errors.New("sos reason is required")

// Notifier receives the open-channel intent when staff respond to an alert.
// Implementations contact the patient out of band; the registry only records
// that the intent was emitted.
type Notifier interface {
	OpenChannel(a models.SosAlert)
}

// LogNotifier is the default Notifier. It logs the contact intent and does
// nothing else; real deployments plug in telephony or paging here.
type LogNotifier struct{}

func (LogNotifier) OpenChannel(a models.SosAlert) {
	logger.Info("alert_channel_open", "id", a.ID, "patient", a.PatientName, "contact", a.Contact)
}

// Registry owns the active alert set. Insertion order is preserved for
// listing; closed ids are tombstoned so they cannot be resurrected.
type Registry struct {
	mu       sync.Mutex
	active   map[string]models.SosAlert
	order    []string
	closed   map[string]struct{}
	notifier Notifier
}

func NewRegistry(n Notifier) *Registry {
	if n == nil {
		n = LogNotifier{}
	}
	return &Registry{
		active:   make(map[string]models.SosAlert),
		closed:   make(map[string]struct{}),
		notifier: n,
	}
}

// Raise creates an active alert with a fresh uuid. Severity defaults to
// urgent; an empty reason is rejected.
func (r *Registry) Raise(patientName, reason, contact string, sev models.Severity) (models.SosAlert, error) {
	if reason == "" {
		return models.SosAlert{}, ErrReasonRequired
	}
	if sev == "" {
		sev = models.SeverityUrgent
	}
	a := models.SosAlert{
		ID:          uuid.NewString(),
		PatientName: patientName,
		Reason:      reason,
		Contact:     contact,
		Severity:    sev,
		CreatedTS:   time.Now().UTC().UnixNano(),
	}
	r.mu.Lock()
	r.active[a.ID] = a
	r.order = append(r.order, a.ID)
	r.mu.Unlock()
	telemetry.AlertTransitions.WithLabelValues("raise").Inc()
	logger.Warn("alert_raised", "id", a.ID, "patient", a.PatientName, "severity", string(a.Severity))
	return a, nil
}

// Dismiss closes an alert without contacting the patient. Dismissing an
// absent or already closed id is a no-op.
func (r *Registry) Dismiss(id string) {
	r.mu.Lock()
	_, ok := r.active[id]
	if ok {
		delete(r.active, id)
		r.closed[id] = struct{}{}
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	telemetry.AlertTransitions.WithLabelValues("dismiss").Inc()
	logger.Info("alert_dismissed", "id", id)
}

// Respond closes an alert and emits the open-channel intent through the
// Notifier. Responding to an absent or already closed id is a no-op and the
// Notifier is not invoked.
func (r *Registry) Respond(id string) {
	r.mu.Lock()
	a, ok := r.active[id]
	if ok {
		delete(r.active, id)
		r.closed[id] = struct{}{}
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	telemetry.AlertTransitions.WithLabelValues("respond").Inc()
	logger.Info("alert_responded", "id", id)
	r.notifier.OpenChannel(a)
}

// ListActive returns open alerts in raise order.
func (r *Registry) ListActive() []models.SosAlert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.SosAlert, 0, len(r.active))
	for _, id := range r.order {
		if a, ok := r.active[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Seed loads the two demo alerts shown on staff dashboards. Seed ids are
// fixed so demo walkthroughs can reference them.
func (r *Registry) Seed() {
	seeds := []models.SosAlert{
		{
			ID:          "1",
			PatientName: "Emma Thompson",
			Reason:      "Severe abdominal pain",
			Contact:     "+1 555-0134",
			Severity:    models.SeverityUrgent,
			CreatedTS:   time.Now().UTC().UnixNano(),
		},
		{
			ID:          "2",
			PatientName: "Olivia Martin",
			Reason:      "Persistent dizziness and nausea",
			Contact:     "+1 555-0178",
			Severity:    models.SeverityModerate,
			CreatedTS:   time.Now().UTC().UnixNano(),
		},
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range seeds {
		if _, closed := r.closed[a.ID]; closed {
			continue
		}
		if _, ok := r.active[a.ID]; ok {
			continue
		}
		r.active[a.ID] = a
		r.order = append(r.order, a.ID)
	}
}
