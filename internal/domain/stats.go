package domain

// IngestStats counts what happened to each row of one pass. Collected on
// every run; only displayed on request.
type IngestStats struct {
	RowsRead       int
	RowsAdmitted   int
	Skipped        map[SkipReason]int
	MissingColumns []string
}

func NewIngestStats() IngestStats {
	return IngestStats{Skipped: make(map[SkipReason]int)}
}

// Record tallies the outcome of a single row.
func (s *IngestStats) Record(reason SkipReason) {
	s.RowsRead++
	if reason == SkipNone {
		s.RowsAdmitted++
		return
	}
	if s.Skipped == nil {
		s.Skipped = make(map[SkipReason]int)
	}
	s.Skipped[reason]++
}

// RowsSkipped is the number of rows dropped for any reason.
func (s IngestStats) RowsSkipped() int {
	return s.RowsRead - s.RowsAdmitted
}
