package cli

import (
	"errors"
	"time"

	"github.com/alexanderramin/focustally/internal/config"
	"github.com/alexanderramin/focustally/internal/db"
	"github.com/alexanderramin/focustally/internal/importer"
	"github.com/alexanderramin/focustally/internal/service"
	"go.uber.org/zap"
)

var errHistoryDisabled = errors.New("history is disabled; set history.enabled: true in the config file")

// App holds the services and settings used by CLI commands.
type App struct {
	// Reports is built on first use from Logger and UoW when nil.
	Reports service.ReportService
	// History is nil when run history is disabled.
	History service.HistoryService
	// UoW records runs; nil disables recording.
	UoW    db.UnitOfWork
	Config *config.Config
	Logger *zap.Logger

	IsInputTTY  func() bool
	IsOutputTTY func() bool
	Now         func() time.Time

	// PromptDate and Browse default to the huh prompt and the bubbletea pager.
	PromptDate func() (string, error)
	Browse     func(title, markdown string) error
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		a.Config = config.DefaultConfig()
	}
	return a.Config
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) isInputTTY() bool {
	return a.IsInputTTY != nil && a.IsInputTTY()
}

func (a *App) isOutputTTY() bool {
	return a.IsOutputTTY != nil && a.IsOutputTTY()
}

func (a *App) reportService() service.ReportService {
	if a.Reports == nil {
		a.Reports = service.NewReportService(a.logger(), a.UoW, service.NewZapUseCaseObserver(a.Logger))
	}
	return a.Reports
}

func (a *App) historyService() (service.HistoryService, error) {
	if a.History == nil {
		return nil, errHistoryDisabled
	}
	return a.History, nil
}

func (a *App) promptDate() (string, error) {
	if a.PromptDate != nil {
		return a.PromptDate()
	}
	return promptDateFilter()
}

func (a *App) browse(title, markdown string) error {
	if a.Browse != nil {
		return a.Browse(title, markdown)
	}
	return browseReport(title, markdown)
}

func columnsFromConfig(c config.ColumnsConfig) importer.Columns {
	return importer.Columns{
		StartDate: c.StartDate,
		Duration:  c.Duration,
		Task:      c.Task,
		State:     c.State,
	}
}
