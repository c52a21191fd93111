package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/reminders"
	"github.com/YuvrajZende/patientcare-flows/pkg/utils"
)

// RegisterReminders registers HTTP handlers for reminder endpoints.
func RegisterReminders(r *mux.Router) {
	r.HandleFunc("/reminders", listReminders).Methods(http.MethodGet)
	r.HandleFunc("/reminders", createReminder).Methods(http.MethodPost)
	r.HandleFunc("/reminders/{id}/toggle", toggleReminder).Methods(http.MethodPost)
}

func listReminders(w http.ResponseWriter, r *http.Request) {
	var items []models.Reminder
	if r.URL.Query().Get("active") == "true" {
		items = deps.Reminders.ListActive()
	} else {
		items = deps.Reminders.List()
	}
	if items == nil {
		items = []models.Reminder{}
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Reminders []models.Reminder `json:"reminders"`
	}{Reminders: items})
}

func createReminder(w http.ResponseWriter, r *http.Request) {
	var d reminders.Draft
	if err := utils.DecodeStrict(r, &d); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	rem, err := deps.Reminders.Add(d)
	if err != nil {
		utils.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	slog.Info("reminder_created", "id", rem.ID, "type", string(rem.Kind))
	_ = utils.JSONWrite(w, http.StatusCreated, rem)
}

func toggleReminder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rem, err := deps.Reminders.ToggleComplete(id)
	if err != nil {
		if errors.Is(err, reminders.ErrNotFound) {
			utils.JSONError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	slog.Info("reminder_toggled", "id", rem.ID, "completed", rem.Completed)
	_ = utils.JSONWrite(w, http.StatusOK, rem)
}
