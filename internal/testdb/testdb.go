// Package testdb provides helpers for database-backed tests. It only
// depends on database/sql and the embedded migrations, not on any store
// implementation, so store packages can import it without cycles.
//
// Tests using this package skip themselves unless DATABASE_URL (or
// TASKDECK_TEST_DB_URL) points at a disposable PostgreSQL database.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/api/migrations"
)

// Timeout bounds individual test database operations.
const Timeout = 5 * time.Second

// migrateMu serializes schema setup; concurrent goose runs against the
// same database race on the version table.
var migrateMu sync.Mutex

// URL returns the database URL for tests: DATABASE_URL first, then
// TASKDECK_TEST_DB_URL, or an empty string when neither is set.
func URL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("TASKDECK_TEST_DB_URL")
}

// Available reports whether a test database is configured.
func Available() bool {
	return URL() != ""
}

// Get opens a connection to the test database, skipping the test when
// none is configured. The connection is closed automatically when the
// test finishes.
func Get(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := URL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or TASKDECK_TEST_DB_URL not set, skipping database test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "test database ping failed")

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return db
}

// Migrate brings the test database schema up to date using the embedded
// migration files. Safe to call from every test; goose skips versions
// already applied.
func Migrate(t *testing.T, db *sql.DB) {
	t.Helper()

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"), "failed to set migration dialect")
	require.NoError(t, goose.Up(db, "."), "failed to run migrations")
}

// WithTx runs fn inside a transaction that is always rolled back, so
// tests never leave rows behind and can share one database.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
