package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// Row maps trimmed header names to trimmed cell values.
type Row map[string]string

// RowSource yields rows lazily from comma-delimited text. It is finite and
// cannot be restarted.
type RowSource struct {
	r      *csv.Reader
	header []string
}

// NewRowSource reads the header line from r. An empty input is an error.
func NewRowSource(r io.Reader) (*RowSource, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	rec, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading header: empty input")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	header := make([]string, len(rec))
	for i, h := range rec {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		header[i] = strings.TrimSpace(h)
	}
	return &RowSource{r: cr, header: header}, nil
}

// Header returns the trimmed header names.
func (s *RowSource) Header() []string {
	return append([]string(nil), s.header...)
}

// Next returns the next row, or io.EOF once the input is exhausted. Cells
// beyond the header width are ignored; missing trailing cells are absent
// from the row.
func (s *RowSource) Next() (Row, error) {
	rec, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading row: %w", err)
	}

	row := make(Row, len(s.header))
	for i, name := range s.header {
		if i >= len(rec) {
			break
		}
		row[name] = strings.TrimSpace(rec[i])
	}
	return row, nil
}
