package app

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/YuvrajZende/patientcare-flows/pkg/api"
	"github.com/YuvrajZende/patientcare-flows/pkg/api/handlers"
	"github.com/YuvrajZende/patientcare-flows/pkg/security"
	"github.com/YuvrajZende/patientcare-flows/pkg/store"
	"github.com/YuvrajZende/patientcare-flows/pkg/telemetry"
)

type serverHandle struct {
	srv *http.Server
}

// setupHTTPHandlers sets up all HTTP handlers on the provided mux.
func (a *App) setupHTTPHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/readyz", a.readyzHandler)
	mux.Handle("/", api.Handler(handlers.Deps{
		Auth:         a.authSvc,
		Reminders:    a.engine,
		Conversation: a.conversation,
		Alerts:       a.registry,
	}))
	mux.Handle("/docs/", httpSwagger.Handler(httpSwagger.URL("/openapi.yaml")))
	mux.Handle("/openapi.yaml", http.FileServer(http.Dir("./docs")))
	mux.Handle("/metrics", promhttp.Handler())
}

// readyzHandler reports readiness: the store must be open before auth and
// session endpoints can serve.
func (a *App) readyzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !store.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"not ready"}`))
		return
	}
	ver := a.version
	if ver == "" {
		ver = "dev"
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","version":"` + ver + `"}`))
}

// startHTTP builds the handler, starts the HTTP server in a goroutine and
// returns a channel that will contain any server error.
func (a *App) startHTTP(_ context.Context) <-chan error {
	mux := http.NewServeMux()
	a.setupHTTPHandlers(mux)

	secCfg := security.SecConfig{
		AllowedOrigins: append([]string{}, a.cfg.Security.CORS.AllowedOrigins...),
		RPS:            a.cfg.Security.RateLimit.RPS,
		Burst:          a.cfg.Security.RateLimit.Burst,
		IPWhitelist:    append([]string{}, a.cfg.Security.IPWhitelist...),
	}

	// wrap mux with security middleware, then telemetry middleware
	wrapped := security.Middleware(secCfg)(mux)
	wrapped = telemetry.Middleware(wrapped)

	a.srv.srv = &http.Server{Addr: a.addr, Handler: wrapped}

	errCh := make(chan error, 1)
	go func() {
		cert := a.cfg.Server.TLS.CertFile
		key := a.cfg.Server.TLS.KeyFile
		if cert != "" && key != "" {
			errCh <- a.srv.srv.ListenAndServeTLS(cert, key)
		} else {
			errCh <- a.srv.srv.ListenAndServe()
		}
	}()
	return errCh
}

// shutdownHTTP drains in-flight requests with a short deadline.
func (a *App) shutdownHTTP() {
	if a.srv.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = a.srv.srv.Shutdown(ctx)
}
