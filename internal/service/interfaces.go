package service

import (
	"context"

	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/alexanderramin/focustally/internal/importer"
	"github.com/alexanderramin/focustally/internal/report"
)

// ReportRequest describes one summarization run.
type ReportRequest struct {
	InputPath  string
	OutputPath string
	Columns    importer.Columns
	Filter     *domain.CalendarDate
	Mode       domain.UnitMode
}

// ReportResult is what a successful run produced.
type ReportResult struct {
	RunID      string
	OutputPath string
	Report     *report.Report
	Summary    *domain.Summary
	Stats      domain.IngestStats
	Filter     *domain.CalendarDate
	// FilterTotal is set only when a date filter was active.
	FilterTotal *string
}

type ReportService interface {
	Generate(ctx context.Context, req ReportRequest) (*ReportResult, error)
}

type HistoryService interface {
	List(ctx context.Context, limit int) ([]*domain.ReportRun, error)
	Get(ctx context.Context, id string) (*domain.ReportRun, error)
	Remove(ctx context.Context, id string) error
}
