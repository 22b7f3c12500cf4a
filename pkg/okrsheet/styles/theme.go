// Package styles provides the named cell styles and semantic color palettes
// used when rendering report sheets.
package styles

import "strings"

// Pair is a semantic fill and text color pair.
type Pair struct {
	// Fill is the background color (#RRGGBB).
	Fill string `yaml:"fill" json:"fill" validate:"required,hexcolor"`
	// Font is the text color (#RRGGBB).
	Font string `yaml:"font" json:"font" validate:"required,hexcolor"`
}

// Theme is the palette and typography of a report.
type Theme struct {
	FontFamily string  `yaml:"font_family" json:"font_family" validate:"required"`
	FontSize   float64 `yaml:"font_size" json:"font_size" validate:"gt=0,lte=72"`

	// Primary is used for header fills and titles.
	Primary string `yaml:"primary" json:"primary" validate:"required,hexcolor"`
	// Text is the body text color.
	Text string `yaml:"text" json:"text" validate:"required,hexcolor"`
	// Muted is used for subtitles and low-priority values.
	Muted string `yaml:"muted" json:"muted" validate:"required,hexcolor"`
	// HeaderText is the header font color.
	HeaderText string `yaml:"header_text" json:"header_text" validate:"required,hexcolor"`
	// Stripe is the fill of even body rows.
	Stripe string `yaml:"stripe" json:"stripe" validate:"required,hexcolor"`
	// Border is the thin border color.
	Border string `yaml:"border" json:"border" validate:"required,hexcolor"`

	Track  Pair `yaml:"track" json:"track"`
	Risk   Pair `yaml:"risk" json:"risk"`
	Behind Pair `yaml:"behind" json:"behind"`

	// Categories maps a support task category to its row fill.
	Categories map[string]string `yaml:"categories" json:"categories" validate:"dive,keys,required,endkeys,hexcolor"`
}

// DefaultTheme returns the teal report palette.
func DefaultTheme() Theme {
	return Theme{
		FontFamily: "Aptos",
		FontSize:   10,
		Primary:    "#00897B",
		Text:       "#263238",
		Muted:      "#78909C",
		HeaderText: "#FFFFFF",
		Stripe:     "#F5F5F5",
		Border:     "#CFD8DC",
		Track:      Pair{Fill: "#E8F5E9", Font: "#43A047"},
		Risk:       Pair{Fill: "#FFF8E1", Font: "#FB8C00"},
		Behind:     Pair{Fill: "#FFEBEE", Font: "#E53935"},
		Categories: map[string]string{
			"Design & Creative": "#E8EAF6",
			"Business & Admin":  "#E0F2F1",
			"Talenta Ideas":     "#FFF3E0",
			"Operations":        "#F3E5F5",
		},
	}
}

// hex normalizes "#rrggbb" to the "RRGGBB" form excelize expects.
func hex(c string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
}
