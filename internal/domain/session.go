package domain

// DefaultTaskLabel is used when a row carries no assigned task.
const DefaultTaskLabel = "Unknown"

// SessionRecord is one admitted export row. It lives only for the duration
// of a single pass over the input.
type SessionRecord struct {
	Date     CalendarDate
	Task     string
	Duration float64
}

// Key returns the aggregation key the record contributes to.
func (r SessionRecord) Key() AggregationKey {
	return AggregationKey{Date: r.Date, Task: r.Task}
}
