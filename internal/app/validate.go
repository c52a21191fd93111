package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/YuvrajZende/patientcare-flows/pkg/config"
)

// validateConfig fails fast on settings that would only surface as confusing
// runtime errors later.
func validateConfig(cfg *config.Config, addr string) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if strings.TrimSpace(addr) == "" {
		return fmt.Errorf("listen address is empty")
	}
	if strings.TrimSpace(cfg.Server.DBPath) == "" {
		return fmt.Errorf("db path is empty")
	}

	cert := cfg.Server.TLS.CertFile
	key := cfg.Server.TLS.KeyFile
	if (cert == "") != (key == "") {
		return fmt.Errorf("tls requires both cert_file and key_file")
	}
	if cert != "" {
		if _, err := os.Stat(cert); err != nil {
			return fmt.Errorf("tls cert_file: %w", err)
		}
		if _, err := os.Stat(key); err != nil {
			return fmt.Errorf("tls key_file: %w", err)
		}
	}

	if d := cfg.Assistant.ReplyDelay.Duration(); d < 0 || d > time.Minute {
		return fmt.Errorf("assistant reply_delay out of range: %s", d)
	}
	if cfg.Security.RateLimit.RPS < 0 {
		return fmt.Errorf("rate_limit rps must not be negative")
	}
	if cfg.Security.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit burst must not be negative")
	}
	return nil
}
