// Package models defines the in-memory workbook model rendered to xlsx.
package models

// Font describes the font of a cell.
type Font struct {
	// Family is the font family name (e.g., Aptos).
	Family string `json:"family"`
	// Size is the font size in points.
	Size float64 `json:"size"`
	// Bold marks the font bold.
	Bold bool `json:"bold,omitempty"`
	// Color is the font color as RRGGBB.
	Color string `json:"color,omitempty"`
}

// Border describes a border applied to all four sides of a cell.
type Border struct {
	// Style is the excelize border style index (0 means no border, 1 is thin).
	Style int `json:"style"`
	// Color is the border color as RRGGBB.
	Color string `json:"color,omitempty"`
}

// Alignment describes cell text alignment.
type Alignment struct {
	// Horizontal is left, center, right or empty for the general default.
	Horizontal string `json:"horizontal,omitempty"`
	// Vertical is top, center, bottom or empty.
	Vertical string `json:"vertical,omitempty"`
	// Wrap enables word wrapping.
	Wrap bool `json:"wrap,omitempty"`
}

// StyleSpec is the complete visual style of a cell.
// It is a comparable value: two cells with equal StyleSpecs share one
// workbook style.
type StyleSpec struct {
	// Font is the cell font.
	Font Font `json:"font"`
	// Fill is the solid background color as RRGGBB, empty for none.
	Fill string `json:"fill,omitempty"`
	// Border is applied to all four sides.
	Border Border `json:"border"`
	// Alignment is the text alignment.
	Alignment Alignment `json:"alignment"`
	// NumFmt is a custom number format code (e.g., "#,##0"), empty for General.
	NumFmt string `json:"num_fmt,omitempty"`
}
