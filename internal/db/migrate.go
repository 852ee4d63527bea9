package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS report_runs (
		id            TEXT PRIMARY KEY,
		input_path    TEXT NOT NULL,
		output_path   TEXT NOT NULL,
		filter_date   TEXT,
		mode          TEXT NOT NULL DEFAULT 'raw'
		              CHECK(mode IN ('raw','hours')),
		rows_read     INTEGER NOT NULL DEFAULT 0,
		rows_admitted INTEGER NOT NULL DEFAULT 0,
		entries       INTEGER NOT NULL DEFAULT 0,
		total         REAL NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_report_runs_created ON report_runs(created_at)`,

	`CREATE TABLE IF NOT EXISTS report_run_skips (
		run_id TEXT NOT NULL REFERENCES report_runs(id) ON DELETE CASCADE,
		reason TEXT NOT NULL,
		count  INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (run_id, reason)
	)`,
}
