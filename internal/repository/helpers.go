package repository

import (
	"database/sql"

	"github.com/alexanderramin/focustally/internal/domain"
)

// parseNullableDate parses a sql.NullString holding YYYY-MM-DD.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableDate(s sql.NullString) *domain.CalendarDate {
	if !s.Valid || s.String == "" {
		return nil
	}
	d, err := domain.ParseCalendarDate(s.String)
	if err != nil {
		return nil
	}
	return &d
}
