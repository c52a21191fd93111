// Package auth issues and clears the local session. Credential checks are
// simulated: presence is validated, nothing is compared against a stored
// hash. Real verification belongs to an external identity provider.
package auth

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/session"
	"github.com/YuvrajZende/patientcare-flows/pkg/store"
	"github.com/YuvrajZende/patientcare-flows/pkg/telemetry"
)

// Credentials is the login form input.
type Credentials struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// RegisterForm is the registration form input.
type RegisterForm struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirm_password"`
	Role            models.Role `json:"role"`
	AcceptTerms     bool        `json:"accept_terms"`
}

// Service validates form input and owns session issuance. QuickLogin is only
// honored when the service was built with quick login enabled.
type Service struct {
	quickLogin bool
}

// NewService returns an auth service. quickLogin gates the seeded
// super-user backdoor; keep it off outside demo deployments.
func NewService(quickLogin bool) *Service {
	return &Service{quickLogin: quickLogin}
}

// Login validates presence of credentials, builds a user from the selector
// and writes the session. The role is taken verbatim from the form.
func (s *Service) Login(c Credentials) (models.User, error) {
	c.Email = strings.TrimSpace(c.Email)
	if c.Email == "" || c.Password == "" {
		return models.User{}, ErrMissingCredentials
	}
	if !c.Role.Valid() {
		return models.User{}, ErrUnknownRole
	}
	u := models.User{
		Email: c.Email,
		Name:  nameFromEmail(c.Email),
		Role:  c.Role,
	}
	if err := session.Write(u); err != nil {
		return models.User{}, err
	}
	telemetry.Logins.Inc()
	audit("login", u)
	return u, nil
}

// Register validates the form in a fixed order (first failure wins), builds
// the user and writes the session.
func (s *Service) Register(f RegisterForm) (models.User, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	if f.Name == "" {
		return models.User{}, ErrNameRequired
	}
	if f.Email == "" {
		return models.User{}, ErrEmailRequired
	}
	if f.Password == "" {
		return models.User{}, ErrPasswordRequired
	}
	if len(f.Password) < 6 {
		return models.User{}, ErrPasswordTooShort
	}
	if f.Password != f.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}
	if !f.AcceptTerms {
		return models.User{}, ErrTermsNotAccepted
	}
	if !f.Role.Valid() {
		return models.User{}, ErrUnknownRole
	}
	u := models.User{
		ID:    uuid.NewString(),
		Email: f.Email,
		Name:  f.Name,
		Role:  f.Role,
	}
	if err := session.Write(u); err != nil {
		return models.User{}, err
	}
	telemetry.Registrations.Inc()
	audit("register", u)
	return u, nil
}

// Logout clears the session unconditionally. Logging out twice is safe.
func (s *Service) Logout() error {
	if err := session.Clear(); err != nil {
		return err
	}
	audit("logout", models.User{})
	return nil
}

// QuickLogin writes a session for a seeded super user, bypassing validation.
// Disabled unless the demo quick-login gate is on.
func (s *Service) QuickLogin(id string) (models.User, error) {
	if !s.quickLogin {
		return models.User{}, ErrQuickLoginDisabled
	}
	for _, u := range SuperUsers() {
		if u.ID == id {
			if err := session.Write(u); err != nil {
				return models.User{}, err
			}
			telemetry.Logins.Inc()
			logger.Warn("quick_login_used", "id", u.ID, "email", u.Email)
			audit("quick_login", u)
			return u, nil
		}
	}
	return models.User{}, ErrUnknownSuperUser
}

// nameFromEmail derives a display name from the local part of an email
// address; the login form has no name field.
func nameFromEmail(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type auditEvent struct {
	TS     string      `json:"ts"`
	Action string      `json:"action"`
	Email  string      `json:"email,omitempty"`
	Role   models.Role `json:"role,omitempty"`
}

// audit emits an auth event to the audit sink and the local event log.
// Best-effort: audit failures never fail the auth operation.
func audit(action string, u models.User) {
	ev := auditEvent{TS: time.Now().UTC().Format(time.RFC3339Nano), Action: action, Email: u.Email, Role: u.Role}
	if logger.Audit != nil {
		logger.Audit.Info("auth_event", "action", ev.Action, "email", ev.Email, "role", string(ev.Role))
	} else {
		logger.Info("auth_event", "action", ev.Action, "email", ev.Email, "role", string(ev.Role))
	}
	if store.Ready() {
		if b, err := json.Marshal(ev); err == nil {
			_ = store.AppendEvent(b)
		}
	}
}
