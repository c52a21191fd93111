package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSHeaders(t *testing.T) {
	logger.Init()
	h := Middleware(SecConfig{AllowedOrigins: []string{"http://app.test"}})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/reminders", nil)
	req.Header.Set("Origin", "http://app.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://app.test" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}

	// unknown origin gets no CORS headers
	req = httptest.NewRequest(http.MethodGet, "/v1/reminders", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected CORS header for unknown origin: %q", got)
	}
}

func TestPreflightShortCircuits(t *testing.T) {
	logger.Init()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { called = true })
	h := Middleware(SecConfig{AllowedOrigins: []string{"*"}})(next)

	req := httptest.NewRequest(http.MethodOptions, "/v1/reminders", nil)
	req.Header.Set("Origin", "http://app.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if called {
		t.Fatalf("preflight must not reach the handler")
	}
}

func TestIPWhitelist(t *testing.T) {
	logger.Init()
	h := Middleware(SecConfig{IPWhitelist: []string{"10.1.1.1"}})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/reminders", nil)
	req.RemoteAddr = "192.168.0.9:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-whitelisted ip, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/reminders", nil)
	req.RemoteAddr = "10.1.1.1:4444"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for whitelisted ip, got %d", rec.Code)
	}
}

func TestHealthzBypassesWhitelist(t *testing.T) {
	logger.Init()
	h := Middleware(SecConfig{IPWhitelist: []string{"10.1.1.1"}})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "192.168.0.9:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("health probe must bypass the whitelist, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	logger.Init()
	h := Middleware(SecConfig{RPS: 1, Burst: 2})(okHandler())

	limited := false
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/reminders", nil)
		req.RemoteAddr = "10.2.2.2:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
		}
	}
	if !limited {
		t.Fatalf("expected rate limiting after burst exhaustion")
	}
}
