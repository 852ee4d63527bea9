package importer

// Columns names the export columns the pipeline reads. Header names are
// compared after trimming.
type Columns struct {
	StartDate string
	Duration  string
	Task      string
	State     string
}

// DefaultColumns matches the header of a stock session export.
func DefaultColumns() Columns {
	return Columns{
		StartDate: "Start date",
		Duration:  "Duration",
		Task:      "Assigned task",
		State:     "Task state",
	}
}

// withDefaults fills any blank column name from DefaultColumns.
func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if c.StartDate == "" {
		c.StartDate = d.StartDate
	}
	if c.Duration == "" {
		c.Duration = d.Duration
	}
	if c.Task == "" {
		c.Task = d.Task
	}
	if c.State == "" {
		c.State = d.State
	}
	return c
}
