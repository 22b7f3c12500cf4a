package styles

import "github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"

// Override modifies a copy of a style.
type Override func(*models.StyleSpec)

// WithOverride returns base with the overrides applied in order.
// base itself is never modified; nil overrides are skipped.
func WithOverride(base models.StyleSpec, overrides ...Override) models.StyleSpec {
	s := base
	for _, o := range overrides {
		if o != nil {
			o(&s)
		}
	}
	return s
}

// Compose combines overrides into one.
func Compose(overrides ...Override) Override {
	return func(s *models.StyleSpec) {
		*s = WithOverride(*s, overrides...)
	}
}

// Fill sets the background color; an empty color clears it.
func Fill(color string) Override {
	return func(s *models.StyleSpec) { s.Fill = hex(color) }
}

// FontColor sets the text color.
func FontColor(color string) Override {
	return func(s *models.StyleSpec) { s.Font.Color = hex(color) }
}

// FontSize sets the font size in points.
func FontSize(size float64) Override {
	return func(s *models.StyleSpec) { s.Font.Size = size }
}

// Bold sets the font weight.
func Bold(bold bool) Override {
	return func(s *models.StyleSpec) { s.Font.Bold = bold }
}

// Align sets the horizontal alignment.
func Align(horizontal string) Override {
	return func(s *models.StyleSpec) { s.Alignment.Horizontal = horizontal }
}

// Vertical sets the vertical alignment.
func Vertical(vertical string) Override {
	return func(s *models.StyleSpec) { s.Alignment.Vertical = vertical }
}

// NumFmt sets the number format code.
func NumFmt(format string) Override {
	return func(s *models.StyleSpec) { s.NumFmt = format }
}
