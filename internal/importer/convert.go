package importer

import (
	"strings"

	"github.com/alexanderramin/focustally/internal/domain"
)

// Admit applies the row admission policy. On success it returns the record
// and domain.SkipNone; otherwise the zero record and the first reason the
// row was dropped. filter may be nil.
func Admit(row Row, cols Columns, filter *domain.CalendarDate) (domain.SessionRecord, domain.SkipReason) {
	cols = cols.withDefaults()

	raw := row[cols.StartDate]
	if raw == "" {
		return domain.SessionRecord{}, domain.SkipMissingStart
	}

	date, ok := ParseTimestamp(NormalizeTimestamp(raw))
	if !ok {
		return domain.SessionRecord{}, domain.SkipBadTimestamp
	}

	if filter != nil && date != *filter {
		return domain.SessionRecord{}, domain.SkipFilteredDate
	}

	task := strings.TrimSpace(row[cols.Task])
	if task == "" {
		task = domain.DefaultTaskLabel
	}

	duration, ok := CoerceDuration(row[cols.Duration])
	if !ok {
		return domain.SessionRecord{}, domain.SkipNonFiniteDuration
	}

	return domain.SessionRecord{Date: date, Task: task, Duration: duration}, domain.SkipNone
}
