package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskdeck/api/internal/config"
	"github.com/taskdeck/api/internal/platform/postgres"
	"github.com/taskdeck/api/internal/service/auth"
	"github.com/taskdeck/api/internal/store"
)

// application bundles the configured dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	db *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
}

// newApplication wires the full dependency graph from configuration:
// database pool, stores, and auth services.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         log,
		db:             db,
		userStore:      postgres.NewPostgresUserStore(db, log),
		taskStore:      postgres.NewPostgresTaskStore(db, log),
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(cfg.Auth.BCryptCost),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}
}
