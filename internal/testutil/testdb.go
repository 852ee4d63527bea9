package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/focustally/internal/db"
)

// NewTestDB opens a fresh in-memory run history database with the
// report_runs and report_run_skips tables migrated. It is closed on cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening run history test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW is the UnitOfWork a history-enabled report service gets in tests.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
