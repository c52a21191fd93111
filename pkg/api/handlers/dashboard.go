package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/YuvrajZende/patientcare-flows/pkg/dashboard"
	"github.com/YuvrajZende/patientcare-flows/pkg/session"
	"github.com/YuvrajZende/patientcare-flows/pkg/utils"
)

// RegisterDashboard registers the role-dispatched dashboard endpoint.
func RegisterDashboard(r *mux.Router) {
	r.HandleFunc("/dashboard", getDashboard).Methods(http.MethodGet)
}

// getDashboard resolves the session role to its dashboard view. Unknown
// roles still answer 200 with the explicit unknown view; only a missing
// session is an error.
func getDashboard(w http.ResponseWriter, _ *http.Request) {
	u, ok := session.Read()
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "no active session")
		return
	}
	view := dashboard.ViewFor(u)
	slog.Info("dashboard_selected", "role", string(u.Role), "variant", string(view.Variant))
	_ = utils.JSONWrite(w, http.StatusOK, view)
}
