// Package app encapsulates server construction and lifecycle.
package app

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/YuvrajZende/patientcare-flows/pkg/alerts"
	"github.com/YuvrajZende/patientcare-flows/pkg/assistant"
	"github.com/YuvrajZende/patientcare-flows/pkg/auth"
	"github.com/YuvrajZende/patientcare-flows/pkg/banner"
	"github.com/YuvrajZende/patientcare-flows/pkg/config"
	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
	"github.com/YuvrajZende/patientcare-flows/pkg/reminders"
	"github.com/YuvrajZende/patientcare-flows/pkg/state"
	"github.com/YuvrajZende/patientcare-flows/pkg/store"
)

// App holds the service collaborators and the HTTP server lifecycle.
type App struct {
	cfg     *config.Config
	addr    string
	version string

	authSvc      *auth.Service
	engine       *reminders.Engine
	conversation *assistant.Conversation
	registry     *alerts.Registry

	srv serverHandle
}

// New initializes everything that does not need a running context: state
// dirs, the pebble store, the audit sink and the service collaborators. Call
// Run to start the HTTP server and block until shutdown.
func New(cfg *config.Config, addr, version string) (*App, error) {
	_ = godotenv.Load(".env")

	if err := validateConfig(cfg, addr); err != nil {
		return nil, err
	}

	if err := state.EnsureStateDirs(cfg.Server.DBPath); err != nil {
		return nil, fmt.Errorf("failed to prepare state dirs: %w", err)
	}
	if err := store.Open(state.PathsVar.Store); err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", state.PathsVar.Store, err)
	}
	if err := logger.AttachAuditFileSink(state.PathsVar.Audit); err != nil {
		return nil, fmt.Errorf("failed to attach audit sink: %w", err)
	}

	engine := reminders.New()
	registry := alerts.NewRegistry(nil)
	if cfg.Demo.SeedData {
		engine.Seed()
		registry.Seed()
		logger.Info("demo_seed_loaded")
	}

	responder := assistant.NewResponder(engine)
	conversation := assistant.NewConversation(responder, cfg.Assistant.ReplyDelay.Duration())

	a := &App{
		cfg:          cfg,
		addr:         addr,
		version:      version,
		authSvc:      auth.NewService(cfg.Demo.QuickLogin),
		engine:       engine,
		conversation: conversation,
		registry:     registry,
	}
	return a, nil
}

// Run starts the reminder scheduler and the HTTP server, and blocks until
// ctx is canceled or a fatal server error occurs.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Reminders.SchedulerEnabled {
		cancel := a.engine.StartScheduler(ctx)
		defer cancel()
	}

	banner.Print(a.cfg, a.version)

	errCh := a.startHTTP(ctx)

	select {
	case <-ctx.Done():
		a.shutdownHTTP()
		a.conversation.Close()
		return nil
	case err := <-errCh:
		a.conversation.Close()
		return err
	}
}

// Close releases the store. Call after Run returns.
func (a *App) Close() error {
	return store.Close()
}
