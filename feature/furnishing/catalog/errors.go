package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedRow is returned when an input row cannot be turned into a table entry.
var ErrMalformedRow = errors.New("malformed row")

// RowError describes which row of which table was rejected.
type RowError struct {
	Table  string
	Index  int // zero-based, header excluded
	Fields int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s (got %d fields)", e.Table, e.Index, e.Reason, e.Fields)
}

func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}
