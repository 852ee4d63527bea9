package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/google/uuid"
)

// ExportHeader is the header line of a stock session export.
const ExportHeader = "Start date,Duration,Assigned task,Task state"

// ExportRow renders one export line. Fields are written verbatim, so
// callers quote values containing commas themselves.
func ExportRow(start, duration, task string) string {
	return start + "," + duration + "," + task + ",Completed"
}

// WriteCSV writes ExportHeader followed by rows to a file in a fresh temp
// directory and returns its path.
func WriteCSV(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "BeFocused.csv")
	content := ExportHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing csv fixture: %v", err)
	}
	return path
}

// Run options
type RunOption func(*domain.ReportRun)

func WithFilterDate(d domain.CalendarDate) RunOption {
	return func(r *domain.ReportRun) {
		r.FilterDate = &d
	}
}

func WithMode(m domain.UnitMode) RunOption {
	return func(r *domain.ReportRun) {
		r.Mode = m
	}
}

func WithSkipped(reason domain.SkipReason, n int) RunOption {
	return func(r *domain.ReportRun) {
		r.Skipped[reason] = n
		r.RowsRead += n
	}
}

func WithCreatedAt(t time.Time) RunOption {
	return func(r *domain.ReportRun) {
		r.CreatedAt = t
	}
}

func NewTestRun(input string, opts ...RunOption) *domain.ReportRun {
	r := &domain.ReportRun{
		ID:           uuid.New().String(),
		InputPath:    input,
		OutputPath:   "output.csv",
		Mode:         domain.UnitRaw,
		RowsRead:     10,
		RowsAdmitted: 10,
		Entries:      3,
		Total:        240,
		Skipped:      make(map[domain.SkipReason]int),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
