package auth

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/session"
	"github.com/YuvrajZende/patientcare-flows/pkg/store"
	"github.com/YuvrajZende/patientcare-flows/pkg/telemetry"
)

func openTestStore(t *testing.T) {
	t.Helper()
	logger.Init()
	if store.Ready() {
		_ = store.Close()
	}
	if err := store.Open(t.TempDir()); err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
}

func TestLoginWritesSession(t *testing.T) {
	openTestStore(t)
	s := NewService(false)

	u, err := s.Login(Credentials{Email: "  jane.doe@example.com ", Password: "secret1", Role: models.RolePatient})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if u.Email != "jane.doe@example.com" {
		t.Fatalf("email not trimmed: %q", u.Email)
	}
	if u.Name == "" {
		t.Fatalf("expected derived display name")
	}
	got, ok := session.Read()
	if !ok || got.Email != u.Email {
		t.Fatalf("session not written: ok=%v got=%+v", ok, got)
	}
}

func TestLoginValidation(t *testing.T) {
	openTestStore(t)
	s := NewService(false)

	if _, err := s.Login(Credentials{Email: "", Password: "x", Role: models.RolePatient}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := s.Login(Credentials{Email: "a@b.c", Password: "", Role: models.RolePatient}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := s.Login(Credentials{Email: "a@b.c", Password: "x", Role: "wizard"}); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if session.IsAuthenticated() {
		t.Fatalf("failed login must not write a session")
	}
}

// Registration failures surface in a fixed order: the first failing check
// wins even when several fields are invalid.
func TestRegisterValidationOrder(t *testing.T) {
	openTestStore(t)
	s := NewService(false)

	cases := []struct {
		form RegisterForm
		want error
	}{
		{RegisterForm{}, ErrNameRequired},
		{RegisterForm{Name: "Jane"}, ErrEmailRequired},
		{RegisterForm{Name: "Jane", Email: "j@e.c"}, ErrPasswordRequired},
		{RegisterForm{Name: "Jane", Email: "j@e.c", Password: "abc"}, ErrPasswordTooShort},
		{RegisterForm{Name: "Jane", Email: "j@e.c", Password: "abcdef", ConfirmPassword: "abcdeg"}, ErrPasswordMismatch},
		{RegisterForm{Name: "Jane", Email: "j@e.c", Password: "abcdef", ConfirmPassword: "abcdef"}, ErrTermsNotAccepted},
		{RegisterForm{Name: "Jane", Email: "j@e.c", Password: "abcdef", ConfirmPassword: "abcdef", AcceptTerms: true, Role: "wizard"}, ErrUnknownRole},
	}
	for i, c := range cases {
		if _, err := s.Register(c.form); !errors.Is(err, c.want) {
			t.Fatalf("case %d: expected %v, got %v", i, c.want, err)
		}
	}
}

func TestRegisterSuccess(t *testing.T) {
	openTestStore(t)
	s := NewService(false)

	u, err := s.Register(RegisterForm{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Password:        "abcdef",
		ConfirmPassword: "abcdef",
		Role:            models.RoleIntern,
		AcceptTerms:     true,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if got, ok := session.Read(); !ok || got.ID != u.ID {
		t.Fatalf("session not written after register")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	openTestStore(t)
	s := NewService(false)

	if _, err := s.Login(Credentials{Email: "a@b.c", Password: "x", Role: models.RoleDoctor}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if session.IsAuthenticated() {
		t.Fatalf("session survived logout")
	}
	// logging out twice is safe
	if err := s.Logout(); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}
}

func TestQuickLoginGate(t *testing.T) {
	openTestStore(t)

	off := NewService(false)
	if _, err := off.QuickLogin("super1"); !errors.Is(err, ErrQuickLoginDisabled) {
		t.Fatalf("expected ErrQuickLoginDisabled, got %v", err)
	}
	if session.IsAuthenticated() {
		t.Fatalf("disabled quick login must not write a session")
	}

	on := NewService(true)
	u, err := on.QuickLogin("super2")
	if err != nil {
		t.Fatalf("QuickLogin failed: %v", err)
	}
	if u.Role != models.RoleSuper || u.Email != "system@hospital.com" {
		t.Fatalf("unexpected quick login user: %+v", u)
	}
	if _, err := on.QuickLogin("super99"); !errors.Is(err, ErrUnknownSuperUser) {
		t.Fatalf("expected ErrUnknownSuperUser, got %v", err)
	}
}

// Quick logins count as logins.
func TestQuickLoginCountsAsLogin(t *testing.T) {
	openTestStore(t)
	s := NewService(true)

	before := testutil.ToFloat64(telemetry.Logins)
	if _, err := s.QuickLogin("super1"); err != nil {
		t.Fatalf("QuickLogin failed: %v", err)
	}
	if got := testutil.ToFloat64(telemetry.Logins); got != before+1 {
		t.Fatalf("logins counter: got %v, want %v", got, before+1)
	}
}

func TestSuperUsersCopy(t *testing.T) {
	a := SuperUsers()
	a[0].Email = "tampered@example.com"
	b := SuperUsers()
	if b[0].Email == "tampered@example.com" {
		t.Fatalf("SuperUsers must return a copy")
	}
}
