package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/YuvrajZende/patientcare-flows/pkg/alerts"
	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/utils"
)

// RegisterAlerts registers HTTP handlers for the SOS alert lifecycle.
func RegisterAlerts(r *mux.Router) {
	r.HandleFunc("/alerts", listAlerts).Methods(http.MethodGet)
	r.HandleFunc("/alerts", raiseAlert).Methods(http.MethodPost)
	r.HandleFunc("/alerts/{id}/dismiss", dismissAlert).Methods(http.MethodPost)
	r.HandleFunc("/alerts/{id}/respond", respondAlert).Methods(http.MethodPost)
}

func listAlerts(w http.ResponseWriter, _ *http.Request) {
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Alerts []models.SosAlert `json:"alerts"`
	}{Alerts: deps.Alerts.ListActive()})
}

func raiseAlert(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PatientName string          `json:"patient_name"`
		Reason      string          `json:"reason"`
		Contact     string          `json:"contact"`
		Severity    models.Severity `json:"severity"`
	}
	if err := utils.DecodeStrict(r, &body); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	a, err := deps.Alerts.Raise(body.PatientName, body.Reason, body.Contact, body.Severity)
	if err != nil {
		if errors.Is(err, alerts.ErrReasonRequired) {
			utils.JSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	slog.Info("alert_raise_ok", "id", a.ID)
	_ = utils.JSONWrite(w, http.StatusCreated, a)
}

// dismissAlert and respondAlert always answer 200; closing an absent id is
// a no-op.
func dismissAlert(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deps.Alerts.Dismiss(id)
	_ = utils.JSONWrite(w, http.StatusOK, map[string]string{"status": "dismissed", "id": id})
}

func respondAlert(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deps.Alerts.Respond(id)
	_ = utils.JSONWrite(w, http.StatusOK, map[string]string{"status": "responded", "id": id})
}
