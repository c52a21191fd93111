// Package handlers holds the per-resource HTTP handlers. Registration
// follows one Register func per resource; shared collaborators arrive
// through Deps at wiring time.
package handlers

import (
	"github.com/gorilla/mux"

	"github.com/YuvrajZende/patientcare-flows/pkg/alerts"
	"github.com/YuvrajZende/patientcare-flows/pkg/assistant"
	"github.com/YuvrajZende/patientcare-flows/pkg/auth"
	"github.com/YuvrajZende/patientcare-flows/pkg/reminders"
)

// Deps are the service collaborators the handlers call into.
type Deps struct {
	Auth         *auth.Service
	Reminders    *reminders.Engine
	Conversation *assistant.Conversation
	Alerts       *alerts.Registry
}

var deps Deps

// Register wires every resource under the given (already prefixed) router.
func Register(r *mux.Router, d Deps) {
	deps = d
	RegisterAuth(r)
	RegisterDashboard(r)
	RegisterReminders(r)
	RegisterAssistant(r)
	RegisterAlerts(r)
}
