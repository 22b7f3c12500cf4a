package builder

import (
	"errors"
	"fmt"
)

// ErrColumnCount indicates a row whose length differs from the column count.
var ErrColumnCount = errors.New("row length does not match column count")

// ErrUnknownValue indicates a value missing from a semantic palette in strict mode.
var ErrUnknownValue = errors.New("value not in palette")

// RowError describes a rejected row.
type RowError struct {
	Sheet string
	// Row is the 1-based sheet row the record would have occupied.
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %q row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
