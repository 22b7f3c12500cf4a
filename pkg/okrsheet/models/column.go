package models

// ColumnSpec describes one column of a sheet's table.
type ColumnSpec struct {
	// Header is the header label.
	Header string `json:"header"`
	// Width is the column width in characters (0 keeps the default width).
	Width float64 `json:"width,omitempty"`
	// Align overrides the horizontal alignment of body cells.
	Align string `json:"align,omitempty"`
	// Bold renders body cells with the emphasized body font.
	Bold bool `json:"bold,omitempty"`
	// NumFmt is applied to non-null numeric or date values only.
	NumFmt string `json:"num_fmt,omitempty"`
	// Palette names a semantic palette (e.g., "status") used for per-cell colors.
	Palette string `json:"palette,omitempty"`
}

// RowRecord is one row of input values.
type RowRecord struct {
	// Values holds one value per column.
	Values []Value
	// Fill replaces the alternating stripe fill for the whole row (RRGGBB).
	Fill string
	// Emphasis renders the whole row with the emphasized body font.
	Emphasis bool
}

// Row constructs a RowRecord from values.
func Row(values ...Value) RowRecord {
	return RowRecord{Values: values}
}
