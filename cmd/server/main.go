// Command server runs the taskdeck HTTP API.
//
// With no flags it starts the API server; the -migrate flag runs a
// database migration command instead and exits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/taskdeck/api/internal/config"
	"github.com/taskdeck/api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up|down|status|version) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		// The structured logger may not exist yet if config loading
		// failed, so report on stderr as well.
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if migrateCmd != "" {
		return app.runMigrations(migrateCmd)
	}

	log.Info("starting server",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	return app.serve()
}
