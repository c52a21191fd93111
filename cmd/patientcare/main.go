package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/YuvrajZende/patientcare-flows/internal/app"
	"github.com/YuvrajZende/patientcare-flows/pkg/config"
	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
	"github.com/YuvrajZende/patientcare-flows/pkg/shutdown"
)

// build metadata - set via ldflags during build/release
var version = "dev"

func main() {
	_ = godotenv.Load(".env")
	addrVal, dbVal, cfgVal, setFlags := config.ParseCommandFlags()

	// Resolve config path (file flag wins over env)
	cfgPath := config.ResolveConfigPath(cfgVal, setFlags["config"])

	cfg, _, err := config.LoadEffective(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Flags win over config/env when provided explicitly.
	addr := cfg.Addr()
	if setFlags["addr"] {
		addr = addrVal
	}
	if setFlags["db"] || cfg.Server.DBPath == "" {
		cfg.Server.DBPath = dbVal
	}

	logger.InitWithLevel(cfg.Logging.Level)

	a, err := app.New(cfg, addr, version)
	if err != nil {
		shutdown.Abort("startup failed", err, cfg.Server.DBPath)
	}
	defer func() { _ = a.Close() }()

	ctx, cancel := shutdown.SetupSignalHandler(context.Background())
	defer cancel()

	if err := a.Run(ctx); err != nil {
		shutdown.Abort("server exited", err, cfg.Server.DBPath)
	}
	logger.Info("server_stopped")
}
