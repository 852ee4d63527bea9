package domain

// UnitMode selects how accumulated durations are rendered.
type UnitMode string

const (
	UnitRaw   UnitMode = "raw"
	UnitHours UnitMode = "hours"
)

// SkipReason explains why a row was not admitted into the summary.
type SkipReason string

const (
	SkipNone              SkipReason = ""
	SkipMissingStart      SkipReason = "missing_start_date"
	SkipBadTimestamp      SkipReason = "unparsable_timestamp"
	SkipFilteredDate      SkipReason = "filtered_date"
	SkipNonFiniteDuration SkipReason = "non_finite_duration"
)

// SkipReasons lists every reason in display order.
var SkipReasons = []SkipReason{
	SkipMissingStart,
	SkipBadTimestamp,
	SkipFilteredDate,
	SkipNonFiniteDuration,
}
