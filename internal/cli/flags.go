package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*dateFilterValue)(nil)
	_ pflag.Value = (*positiveIntValue)(nil)
)

// dateFilterValue resolves a date filter when the flag is parsed, so a bad
// value is reported as a flag error before any file is touched.
type dateFilterValue struct {
	date *domain.CalendarDate
	now  func() time.Time
}

func (v *dateFilterValue) Set(s string) error {
	d, err := domain.ResolveDateFilter(s, v.now())
	if err != nil {
		return err
	}
	v.date = d
	return nil
}

func (v *dateFilterValue) String() string {
	if v.date == nil {
		return ""
	}
	return v.date.String()
}

func (v *dateFilterValue) Type() string { return "date" }

type positiveIntValue int

func newPositiveIntValue(val int, p *int) *positiveIntValue {
	*p = val
	return (*positiveIntValue)(p)
}

func (v *positiveIntValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive integer, got %q", s)
	}
	*v = positiveIntValue(n)
	return nil
}

func (v *positiveIntValue) String() string { return strconv.Itoa(int(*v)) }

func (v *positiveIntValue) Type() string { return "int" }
