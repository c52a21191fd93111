package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/YuvrajZende/patientcare-flows/pkg/auth"
	"github.com/YuvrajZende/patientcare-flows/pkg/session"
	"github.com/YuvrajZende/patientcare-flows/pkg/utils"
)

// RegisterAuth registers HTTP handlers for login, registration and session
// endpoints.
func RegisterAuth(r *mux.Router) {
	r.HandleFunc("/auth/login", login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", register).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", logout).Methods(http.MethodPost)
	r.HandleFunc("/auth/quick-login", quickLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/session", currentSession).Methods(http.MethodGet)
	r.HandleFunc("/auth/super-users", superUsers).Methods(http.MethodGet)
}

func login(w http.ResponseWriter, r *http.Request) {
	var c auth.Credentials
	if err := utils.DecodeStrict(r, &c); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := deps.Auth.Login(c)
	if err != nil {
		utils.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	slog.Info("login_ok", "email", u.Email, "role", string(u.Role))
	_ = utils.JSONWrite(w, http.StatusOK, u)
}

func register(w http.ResponseWriter, r *http.Request) {
	var f auth.RegisterForm
	if err := utils.DecodeStrict(r, &f); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := deps.Auth.Register(f)
	if err != nil {
		utils.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	slog.Info("register_ok", "email", u.Email, "role", string(u.Role))
	_ = utils.JSONWrite(w, http.StatusCreated, u)
}

func logout(w http.ResponseWriter, _ *http.Request) {
	if err := deps.Auth.Logout(); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func quickLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := utils.DecodeStrict(r, &body); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := deps.Auth.QuickLogin(body.ID)
	switch {
	case errors.Is(err, auth.ErrQuickLoginDisabled):
		utils.JSONError(w, http.StatusForbidden, err.Error())
		return
	case errors.Is(err, auth.ErrUnknownSuperUser):
		utils.JSONError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, u)
}

func currentSession(w http.ResponseWriter, _ *http.Request) {
	u, ok := session.Read()
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "no active session")
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, u)
}

func superUsers(w http.ResponseWriter, _ *http.Request) {
	_ = utils.JSONWrite(w, http.StatusOK, auth.SuperUsers())
}
