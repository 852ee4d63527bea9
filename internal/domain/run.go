package domain

import "time"

// ReportRun is the history entry recorded for one successful report run.
// It carries metadata only; per-key totals are never stored.
type ReportRun struct {
	ID           string
	InputPath    string
	OutputPath   string
	FilterDate   *CalendarDate
	Mode         UnitMode
	RowsRead     int
	RowsAdmitted int
	Entries      int
	Total        float64
	Skipped      map[SkipReason]int
	CreatedAt    time.Time
}
