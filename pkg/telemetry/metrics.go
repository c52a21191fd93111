// Package telemetry exposes the Prometheus collectors shared across the
// service. Everything is registered on the default registry and served by
// promhttp from main.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Logins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patientcare_logins_total",
		Help: "Successful logins (quick logins included).",
	})
	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patientcare_registrations_total",
		Help: "Successful registrations.",
	})
	AssistantReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patientcare_assistant_replies_total",
		Help: "Assistant replies delivered, labelled by matched rule.",
	}, []string{"rule"})
	ReminderToggles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patientcare_reminder_toggles_total",
		Help: "Reminder completion toggles.",
	})
	RemindersDue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patientcare_reminders_due_total",
		Help: "Recurring reminders that came due.",
	})
	AlertTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patientcare_alert_transitions_total",
		Help: "SOS alert lifecycle transitions, labelled by transition.",
	}, []string{"transition"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "patientcare_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request latency and status for every handled request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		httpDuration.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
	})
}
