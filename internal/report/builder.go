// Package report renders an accumulated summary as delimited text.
package report

import (
	"bytes"
	"encoding/csv"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/alexanderramin/focustally/internal/domain"
)

const (
	headerRaw   = "Date,Assigned task,Duration"
	headerHours = "Date,Assigned task,Duration (hours)"
)

// DefaultTailLines is the number of body lines shown on the terminal.
const DefaultTailLines = 500

// Report is a rendered summary: a header line plus one body line per
// (date, task) entry in serialized-key order. Rows holds the same entries
// as unquoted (date, task, value) fields.
type Report struct {
	Mode   domain.UnitMode
	Header string
	Lines  []string
	Rows   [][3]string
}

// Build orders the summary entries and renders one line per entry. A task
// label that needs CSV quoting is quoted in Lines, so such a line is not a
// literal date,task,value join. Rows keeps the label unquoted.
func Build(s *domain.Summary, mode domain.UnitMode) *Report {
	entries := s.Entries()
	r := &Report{
		Mode:   mode,
		Header: Header(mode),
		Lines:  make([]string, 0, len(entries)),
		Rows:   make([][3]string, 0, len(entries)),
	}
	for _, e := range entries {
		row := [3]string{e.Key.Date.String(), e.Key.Task, FormatValue(e.Total, mode)}
		r.Rows = append(r.Rows, row)
		r.Lines = append(r.Lines, renderLine(row[:]...))
	}
	return r
}

// Header returns the header line for mode.
func Header(mode domain.UnitMode) string {
	if mode == domain.UnitHours {
		return headerHours
	}
	return headerRaw
}

// FormatValue renders a total either as the raw number in shortest form or,
// in hour mode, divided by 60 with exactly two decimals. Hours round half
// away from zero on the exact binary value, so 7.5 minutes is "0.13".
func FormatValue(v float64, mode domain.UnitMode) string {
	if mode == domain.UnitHours {
		return formatHours(v / 60)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatHours(h float64) string {
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return strconv.FormatFloat(h, 'f', 2, 64)
	}
	return new(big.Rat).SetFloat64(h).FloatString(2)
}

// DateTotal sums every entry on date and formats it like a report value.
func DateTotal(s *domain.Summary, date domain.CalendarDate, mode domain.UnitMode) string {
	return FormatValue(s.TotalForDate(date), mode)
}

// Body joins the body lines without a trailing newline.
func (r *Report) Body() string {
	return strings.Join(r.Lines, "\n")
}

// Text is the full file content: header, newline, body.
func (r *Report) Text() string {
	return r.Header + "\n" + r.Body()
}

// Tail returns the last n body lines, or all of them when there are fewer.
func (r *Report) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	if n >= len(r.Lines) {
		return append([]string(nil), r.Lines...)
	}
	return append([]string(nil), r.Lines[len(r.Lines)-n:]...)
}

// renderLine writes one CSV record; fields are quoted only when they
// contain a delimiter, quote or line break.
func renderLine(fields ...string) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(fields)
	w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}
