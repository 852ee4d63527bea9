package db

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the run history repository needs. Both *sql.DB
// (history list/show/remove) and *sql.Tx (recording a run with its skip
// counts) satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
