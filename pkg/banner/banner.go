package banner

import (
	"fmt"

	"github.com/YuvrajZende/patientcare-flows/pkg/config"
)

const banner = `
██████╗  █████╗ ████████╗██╗███████╗███╗   ██╗████████╗ ██████╗ █████╗ ██████╗ ███████╗
██╔══██╗██╔══██╗╚══██╔══╝██║██╔════╝████╗  ██║╚══██╔══╝██╔════╝██╔══██╗██╔══██╗██╔════╝
██████╔╝███████║   ██║   ██║█████╗  ██╔██╗ ██║   ██║   ██║     ███████║██████╔╝█████╗
██╔═══╝ ██╔══██║   ██║   ██║██╔══╝  ██║╚██╗██║   ██║   ██║     ██╔══██║██╔══██╗██╔══╝
██║     ██║  ██║   ██║   ██║███████╗██║ ╚████║   ██║   ╚██████╗██║  ██║██║  ██║███████╗
╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝    ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝
`

// Print shows the startup summary: listen address, DB path and the state of
// the demo toggles an operator should know about before exposing the port.
func Print(cfg *config.Config, version string) {
	addr := ""
	dbPath := ""
	if cfg != nil {
		addr = cfg.Addr()
		dbPath = cfg.Server.DBPath
	}

	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", addr)
	fmt.Printf("DB Path:  %s\n", dbPath)
	if version != "" {
		fmt.Printf("Version:  %s\n", version)
	}

	fmt.Println("\n== Endpoints ==================================================")
	fmt.Println("POST /v1/auth/login            - Sign in (JSON: email, password, role)")
	fmt.Println("POST /v1/auth/register         - Create an account")
	fmt.Println("GET  /v1/dashboard             - Role-dispatched dashboard view")
	fmt.Println("GET  /v1/reminders             - List reminders (?active=true)")
	fmt.Println("POST /v1/assistant/messages    - Chat with the assistant")
	fmt.Println("GET  /v1/alerts                - Active SOS alerts")

	fmt.Println("\n== Examples ===================================================")
	fmt.Printf("curl -X POST 'http://localhost%s/v1/auth/login' -d '{\"email\":\"jane@example.com\",\"password\":\"secret1\",\"role\":\"patient\"}'\n", addr)
	fmt.Printf("curl 'http://localhost%s/v1/reminders?active=true'\n", addr)

	fmt.Println("\n== Production? =================================================")
	if cfg != nil && cfg.Demo.QuickLogin {
		fmt.Println("- Quick login: ENABLED (demo only, disable before exposing this port)")
	} else {
		fmt.Println("- Quick login: disabled")
	}
	if cfg != nil && cfg.Demo.SeedData {
		fmt.Println("- Seed data: enabled")
	} else {
		fmt.Println("- Seed data: disabled")
	}
	if cfg != nil && cfg.Server.TLS.CertFile != "" && cfg.Server.TLS.KeyFile != "" {
		fmt.Println("- TLS: configured")
	} else {
		fmt.Println("- TLS: unconfigured")
	}
	if cfg != nil && cfg.Reminders.SchedulerEnabled {
		fmt.Println("- Reminder scheduler: enabled")
	} else {
		fmt.Println("- Reminder scheduler: disabled")
	}

	fmt.Println("\n== Logs: =================================================")
}
