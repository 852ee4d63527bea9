package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/focustally/internal/domain"
)

// timestampFormat is one attempt in the parse fallback chain. prepare, when
// set, rewrites the normalized input before strict matching.
type timestampFormat struct {
	name    string
	layout  string
	prepare func(string) string
}

// timestampFormats is tried in order; the first strict match wins.
var timestampFormats = []timestampFormat{
	{
		name:   "day-month-year at time",
		layout: "2 Jan 2006 at 3:04:05 PM",
	},
	{
		name:    "day-month-year time",
		layout:  "2 Jan 2006 3:04:05 PM",
		prepare: func(s string) string { return strings.Replace(s, " at ", " ", 1) },
	},
}

// ParseTimestamp converts a normalized export timestamp to its calendar
// date. Time of day is discarded and no zone conversion happens. Input
// matches only if formatting the parsed time reproduces it exactly.
func ParseTimestamp(s string) (domain.CalendarDate, bool) {
	for _, f := range timestampFormats {
		in := s
		if f.prepare != nil {
			in = f.prepare(in)
		}
		t, err := time.Parse(f.layout, in)
		if err != nil {
			continue
		}
		if t.Format(f.layout) != in {
			continue
		}
		return domain.DateOf(t), true
	}
	return domain.CalendarDate{}, false
}
