package models

// Range represents 1-based inclusive cell coordinate bounds.
type Range struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Valid reports whether the bounds are positive and ordered.
func (r Range) Valid() bool {
	return r.R1 >= 1 && r.C1 >= 1 && r.R2 >= r.R1 && r.C2 >= r.C1
}

// Single reports whether the range covers exactly one cell.
func (r Range) Single() bool {
	return r.R1 == r.R2 && r.C1 == r.C2
}

// Overlaps reports whether r and o share at least one cell.
func (r Range) Overlaps(o Range) bool {
	return r.R1 <= o.R2 && o.R1 <= r.R2 && r.C1 <= o.C2 && o.C1 <= r.C2
}
