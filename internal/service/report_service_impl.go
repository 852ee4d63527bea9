package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/focustally/internal/db"
	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/alexanderramin/focustally/internal/importer"
	"github.com/alexanderramin/focustally/internal/report"
	"github.com/alexanderramin/focustally/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reportService struct {
	logger   *zap.Logger
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewReportService builds the summarization use case. uow may be nil, in
// which case runs are not recorded.
func NewReportService(logger *zap.Logger, uow db.UnitOfWork, observers ...UseCaseObserver) ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reportService{
		logger:   logger,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *reportService) Generate(ctx context.Context, req ReportRequest) (result *ReportResult, err error) {
	startedAt := s.now()
	fields := map[string]any{
		"input":  req.InputPath,
		"output": req.OutputPath,
		"mode":   string(req.Mode),
	}
	if req.Filter != nil {
		fields["filter"] = req.Filter.String()
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	mode := req.Mode
	if mode == "" {
		mode = domain.UnitRaw
	}

	summary, stats, err := s.ingest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to read the file: %s: %w", req.InputPath, err)
	}
	fields["rows_read"] = stats.RowsRead
	fields["rows_skipped"] = stats.RowsSkipped()
	fields["entries"] = summary.Len()

	rep := report.Build(summary, mode)
	if err = report.WriteFile(req.OutputPath, rep.Text()); err != nil {
		return nil, fmt.Errorf("saving summary: %w", err)
	}

	result = &ReportResult{
		OutputPath: req.OutputPath,
		Report:     rep,
		Summary:    summary,
		Stats:      stats,
		Filter:     req.Filter,
	}
	if req.Filter != nil {
		total := report.DateTotal(summary, *req.Filter, mode)
		result.FilterTotal = &total
	}

	if s.uow != nil {
		runID, recErr := s.record(ctx, req, mode, result, startedAt)
		if recErr != nil {
			// The report is already on disk; a history failure must not undo it.
			s.logger.Warn("recording report run failed", zap.Error(recErr))
		} else {
			result.RunID = runID
			fields["run_id"] = runID
		}
	}

	return result, nil
}

// ingest makes the single pass over the input. The file handle is released
// before returning on every path.
func (s *reportService) ingest(ctx context.Context, req ReportRequest) (*domain.Summary, domain.IngestStats, error) {
	stats := domain.NewIngestStats()

	f, err := os.Open(req.InputPath)
	if err != nil {
		return nil, stats, err
	}
	defer f.Close()

	src, err := importer.NewRowSource(f)
	if err != nil {
		return nil, stats, err
	}

	for _, hdrErr := range importer.CheckHeader(src.Header(), req.Columns) {
		stats.MissingColumns = append(stats.MissingColumns, hdrErr.Error())
		s.logger.Warn("export header check", zap.Error(hdrErr))
	}

	summary := domain.NewSummary()
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, err
		}
		line++

		rec, reason := importer.Admit(row, req.Columns, req.Filter)
		stats.Record(reason)
		if reason != domain.SkipNone {
			s.logger.Debug("row skipped", zap.Int("line", line), zap.String("reason", string(reason)))
			continue
		}
		summary.Add(rec)
	}

	return summary, stats, nil
}

func (s *reportService) record(ctx context.Context, req ReportRequest, mode domain.UnitMode, res *ReportResult, startedAt time.Time) (string, error) {
	skipped := make(map[domain.SkipReason]int, len(res.Stats.Skipped))
	for k, v := range res.Stats.Skipped {
		skipped[k] = v
	}

	run := &domain.ReportRun{
		ID:           uuid.New().String(),
		InputPath:    req.InputPath,
		OutputPath:   req.OutputPath,
		FilterDate:   req.Filter,
		Mode:         mode,
		RowsRead:     res.Stats.RowsRead,
		RowsAdmitted: res.Stats.RowsAdmitted,
		Entries:      res.Summary.Len(),
		Total:        res.Summary.Total(),
		Skipped:      skipped,
		CreatedAt:    startedAt.UTC(),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteRunRepo(tx).Create(ctx, run)
	})
	if err != nil {
		return "", err
	}
	return run.ID, nil
}
