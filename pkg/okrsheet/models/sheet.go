package models

import "fmt"

// RowKind classifies a sheet row.
type RowKind int

const (
	// RowBanner is a title or subtitle row above the table.
	RowBanner RowKind = iota
	// RowBlank is an empty spacer row.
	RowBlank
	// RowSection is a section title inside the sheet body.
	RowSection
	// RowHeader is a row of column headers.
	RowHeader
	// RowBody is a data row.
	RowBody
)

// Cell is a value together with its resolved style.
type Cell struct {
	Value Value
	Style StyleSpec
}

// SheetRow is one rendered row of a sheet.
type SheetRow struct {
	// Index is the 1-based sheet row number.
	Index int
	// Kind classifies the row.
	Kind RowKind
	// Height is the row height in points (0 keeps the default).
	Height float64
	// Cells holds at most one cell per column, starting at column 1.
	Cells []Cell
}

// Sheet is a fully laid out worksheet.
type Sheet struct {
	// Name is the worksheet tab name.
	Name string
	// Columns describes the table columns.
	Columns []ColumnSpec
	// Rows holds every row in order; Rows[i].Index == i+1.
	Rows []SheetRow
	// HeaderRow is the 1-based row of the first header row.
	HeaderRow int
	// FreezeRow is the last frozen row (0 for no frozen pane).
	FreezeRow int
	// Merges holds the merged ranges, never overlapping.
	Merges []Range
	// PrintArea is the print area bounds, nil for none.
	PrintArea *Range
}

// Row returns the row with the 1-based index, or nil.
func (s *Sheet) Row(index int) *SheetRow {
	if index < 1 || index > len(s.Rows) {
		return nil
	}
	return &s.Rows[index-1]
}

// BodyRows returns the number of body rows.
func (s *Sheet) BodyRows() int {
	n := 0
	for _, r := range s.Rows {
		if r.Kind == RowBody {
			n++
		}
	}
	return n
}

// ValueRows returns the number of rows holding at least one value.
func (s *Sheet) ValueRows() int {
	n := 0
	for _, r := range s.Rows {
		for _, c := range r.Cells {
			if !c.Value.IsNull() {
				n++
				break
			}
		}
	}
	return n
}

// AddMerge records a merged range.
func (s *Sheet) AddMerge(r Range) error {
	if !r.Valid() || r.Single() {
		return fmt.Errorf("%w: %+v", ErrInvalidRange, r)
	}
	for _, m := range s.Merges {
		if m.Overlaps(r) {
			return fmt.Errorf("%w: %+v and %+v", ErrMergeOverlap, m, r)
		}
	}
	s.Merges = append(s.Merges, r)
	return nil
}
