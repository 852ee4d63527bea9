package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/focustally/internal/db"
	"github.com/alexanderramin/focustally/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo on a *sql.DB or *sql.Tx.
func NewSQLiteRunRepo(conn db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: conn}
}

const runColumns = `id, input_path, output_path, filter_date, mode, rows_read, rows_admitted, entries, total, created_at`

// Create inserts the run and its skip counts. Callers wanting both writes
// to land atomically pass a tx-backed DBTX.
func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.ReportRun) error {
	var filter any
	if run.FilterDate != nil {
		filter = run.FilterDate.String()
	}

	query := `INSERT INTO report_runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.InputPath,
		run.OutputPath,
		filter,
		string(run.Mode),
		run.RowsRead,
		run.RowsAdmitted,
		run.Entries,
		run.Total,
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting report run: %w", err)
	}

	for _, reason := range domain.SkipReasons {
		n := run.Skipped[reason]
		if n == 0 {
			continue
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO report_run_skips (run_id, reason, count) VALUES (?, ?, ?)`,
			run.ID, string(reason), n,
		)
		if err != nil {
			return fmt.Errorf("inserting skip count %s: %w", reason, err)
		}
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.ReportRun, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM report_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning report run: %w", err)
	}
	if err := r.loadSkips(ctx, []*domain.ReportRun{run}); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRecent returns up to limit runs, newest first. A non-positive limit
// returns every run.
func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ReportRun, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM report_runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing report runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ReportRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report runs: %w", err)
	}
	if err := r.loadSkips(ctx, runs); err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *SQLiteRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM report_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting report run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting report run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("report run %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRunRepo) loadSkips(ctx context.Context, runs []*domain.ReportRun) error {
	for _, run := range runs {
		rows, err := r.db.QueryContext(ctx,
			`SELECT reason, count FROM report_run_skips WHERE run_id = ?`, run.ID)
		if err != nil {
			return fmt.Errorf("loading skip counts: %w", err)
		}
		run.Skipped = make(map[domain.SkipReason]int)
		for rows.Next() {
			var reason string
			var n int
			if err := rows.Scan(&reason, &n); err != nil {
				rows.Close()
				return fmt.Errorf("scanning skip count: %w", err)
			}
			run.Skipped[domain.SkipReason(reason)] = n
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return fmt.Errorf("iterating skip counts: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.ReportRun, error) {
	var run domain.ReportRun
	var filter sql.NullString
	var mode, createdAt string

	err := row.Scan(
		&run.ID, &run.InputPath, &run.OutputPath, &filter, &mode,
		&run.RowsRead, &run.RowsAdmitted, &run.Entries, &run.Total, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	run.Mode = domain.UnitMode(mode)
	run.FilterDate = parseNullableDate(filter)
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &run, nil
}
