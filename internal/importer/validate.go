package importer

import (
	"errors"
	"fmt"
)

// ErrMissingColumn marks a consumed column absent from the header.
var ErrMissingColumn = errors.New("missing column")

// CheckHeader reports each consumed column the header lacks. A missing
// column is not fatal: the affected rows simply fail admission.
func CheckHeader(header []string, cols Columns) []error {
	cols = cols.withDefaults()

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var errs []error
	for _, name := range []string{cols.StartDate, cols.Duration, cols.Task} {
		if !present[name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingColumn, name))
		}
	}
	return errs
}
