package domain

import "sort"

// AggregationKey identifies one output row.
type AggregationKey struct {
	Date CalendarDate
	Task string
}

// String serializes the key as "<date>,<task>"; this is also the sort key.
func (k AggregationKey) String() string {
	return k.Date.String() + "," + k.Task
}

// SummaryEntry is one accumulated (date, task) total.
type SummaryEntry struct {
	Key   AggregationKey
	Total float64
}

// Summary accumulates durations per (date, task). It is owned by a single
// run and is not safe for concurrent writers.
type Summary struct {
	totals map[string]*SummaryEntry
}

func NewSummary() *Summary {
	return &Summary{totals: make(map[string]*SummaryEntry)}
}

// Accumulate adds duration to the total for (date, task), creating the
// entry on first use.
func (s *Summary) Accumulate(date CalendarDate, task string, duration float64) {
	key := AggregationKey{Date: date, Task: task}
	id := key.String()
	if e, ok := s.totals[id]; ok {
		e.Total += duration
		return
	}
	s.totals[id] = &SummaryEntry{Key: key, Total: duration}
}

// Add accumulates an admitted record.
func (s *Summary) Add(r SessionRecord) {
	s.Accumulate(r.Date, r.Task, r.Duration)
}

func (s *Summary) Len() int {
	return len(s.totals)
}

// Get returns the total for a key and whether it exists.
func (s *Summary) Get(date CalendarDate, task string) (float64, bool) {
	e, ok := s.totals[AggregationKey{Date: date, Task: task}.String()]
	if !ok {
		return 0, false
	}
	return e.Total, true
}

// Entries returns a copy of all entries ordered by serialized key using
// plain byte-wise string comparison.
func (s *Summary) Entries() []SummaryEntry {
	ids := make([]string, 0, len(s.totals))
	for id := range s.totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]SummaryEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.totals[id])
	}
	return out
}

// TotalForDate sums every entry whose date equals date.
func (s *Summary) TotalForDate(date CalendarDate) float64 {
	var total float64
	for _, e := range s.Entries() {
		if e.Key.Date == date {
			total += e.Total
		}
	}
	return total
}

// Total sums every entry.
func (s *Summary) Total() float64 {
	var total float64
	for _, e := range s.Entries() {
		total += e.Total
	}
	return total
}
