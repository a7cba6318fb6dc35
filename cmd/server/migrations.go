package main

import (
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/taskdeck/api/migrations"
)

// runMigrations executes the requested goose command against the
// application's database using the embedded migration files.
func (app *application) runMigrations(command string) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	app.logger.Info("running migration command", slog.String("command", command))

	switch command {
	case "up":
		if err := goose.Up(app.db, "."); err != nil {
			return fmt.Errorf("migration up failed: %w", err)
		}
	case "down":
		if err := goose.Down(app.db, "."); err != nil {
			return fmt.Errorf("migration down failed: %w", err)
		}
	case "status":
		if err := goose.Status(app.db, "."); err != nil {
			return fmt.Errorf("migration status failed: %w", err)
		}
	case "version":
		version, err := goose.GetDBVersion(app.db)
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}
		app.logger.Info("current migration version", slog.Int64("version", version))
	default:
		return fmt.Errorf("unknown migration command: %q (want up, down, status, or version)", command)
	}

	return nil
}
