package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD rendering of a CalendarDate.
const DateLayout = "2006-01-02"

// ErrInvalidDateFilter is returned when a date filter is neither a
// YYYY-MM-DD date nor one of the relative keywords.
var ErrInvalidDateFilter = errors.New("invalid date filter")

// CalendarDate is a date without time of day or zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t as expressed in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate parses a strict YYYY-MM-DD string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("parsing calendar date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays returns the date n days after d (n may be negative).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// ResolveDateFilter turns a user-supplied filter into a calendar date.
// "today" and "yesterday" are evaluated against now's local calendar date.
// An empty filter means no filtering and yields nil.
func ResolveDateFilter(s string, now time.Time) (*CalendarDate, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return nil, nil
	case "today":
		d := DateOf(now.Local())
		return &d, nil
	case "yesterday":
		d := DateOf(now.Local()).AddDays(-1)
		return &d, nil
	}
	d, err := ParseCalendarDate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (expected YYYY-MM-DD, today or yesterday)", ErrInvalidDateFilter, s)
	}
	return &d, nil
}
