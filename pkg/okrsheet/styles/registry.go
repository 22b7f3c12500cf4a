package styles

import (
	"fmt"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
)

// Name identifies a registered style.
type Name string

const (
	// Title is the sheet banner title.
	Title Name = "title"
	// Subtitle is the muted line under a title.
	Subtitle Name = "subtitle"
	// Header is a table header cell.
	Header Name = "header"
	// Body is a plain table body cell.
	Body Name = "body"
	// BodyBold is an emphasized table body cell.
	BodyBold Name = "body.bold"
	// Section is a section title inside a sheet body.
	Section Name = "section"
	// BannerLabel is a bold label in a banner line.
	BannerLabel Name = "banner.label"
	// BannerValue is a highlighted value in a banner line.
	BannerValue Name = "banner.value"
	// BannerNote is plain text in a banner line.
	BannerNote Name = "banner.note"
)

// Semantic palette names.
const (
	PaletteStatus   = "status"
	PalettePriority = "priority"
)

// Status values with a dedicated color pair.
const (
	StatusOnTrack    = "On Track"
	StatusAtRisk     = "At Risk"
	StatusBehind     = "Behind"
	StatusNotStarted = "Not Started"
	StatusPending    = "Pending"
	StatusCompleted  = "Completed"
)

// Registry holds the named styles and palettes derived from a Theme.
type Registry struct {
	theme      Theme
	styles     map[Name]models.StyleSpec
	palettes   map[string]map[string]Override
	categories map[string]string
}

// NewRegistry builds the registry for theme.
func NewRegistry(theme Theme) *Registry {
	border := models.Border{Style: 1, Color: hex(theme.Border)}
	font := func(size float64, bold bool, color string) models.Font {
		return models.Font{Family: theme.FontFamily, Size: size, Bold: bold, Color: hex(color)}
	}
	body := models.StyleSpec{
		Font:      font(theme.FontSize, false, theme.Text),
		Border:    border,
		Alignment: models.Alignment{Vertical: "top", Wrap: true},
	}

	r := &Registry{
		theme: theme,
		styles: map[Name]models.StyleSpec{
			Body:     body,
			BodyBold: WithOverride(body, Bold(true)),
			Header: {
				Font:      font(theme.FontSize+1, true, theme.HeaderText),
				Fill:      hex(theme.Primary),
				Border:    border,
				Alignment: models.Alignment{Horizontal: "center", Vertical: "top", Wrap: true},
			},
			Title: {
				Font:      font(theme.FontSize+4, true, theme.Primary),
				Alignment: models.Alignment{Horizontal: "left", Vertical: "center"},
			},
			Subtitle: {
				Font:      font(theme.FontSize+1, false, theme.Muted),
				Alignment: models.Alignment{Horizontal: "left"},
			},
			Section: {
				Font:      font(theme.FontSize+1, true, theme.Primary),
				Alignment: models.Alignment{Vertical: "top", Wrap: true},
			},
			BannerLabel: {Font: font(theme.FontSize+1, true, theme.Text)},
			BannerValue: {Font: font(theme.FontSize+1, true, theme.Primary)},
			BannerNote:  {Font: font(theme.FontSize, false, theme.Text)},
		},
		categories: make(map[string]string, len(theme.Categories)),
	}

	pair := func(p Pair) Override {
		return Compose(Fill(p.Fill), FontColor(p.Font), Bold(true))
	}
	r.palettes = map[string]map[string]Override{
		PaletteStatus: {
			StatusOnTrack:    pair(theme.Track),
			StatusAtRisk:     pair(theme.Risk),
			StatusBehind:     pair(theme.Behind),
			StatusNotStarted: nil,
			StatusPending:    nil,
			StatusCompleted:  nil,
		},
		PalettePriority: {
			"High":   Compose(FontColor(theme.Behind.Font), Bold(true)),
			"Medium": Compose(FontColor(theme.Risk.Font), Bold(true)),
			"Low":    FontColor(theme.Muted),
		},
	}
	for name, c := range theme.Categories {
		r.categories[name] = hex(c)
	}
	return r
}

// Theme returns the theme the registry was built from.
func (r *Registry) Theme() Theme { return r.theme }

// Resolve returns the named style. Unknown names are a programming error
// and panic.
func (r *Registry) Resolve(name Name) models.StyleSpec {
	s, ok := r.styles[name]
	if !ok {
		panic(fmt.Sprintf("styles: unknown style %q", name))
	}
	return s
}

// Semantic returns the override registered for value in palette.
// known is false for values the palette does not list; the override is nil
// for values that are known but rendered unstyled.
func (r *Registry) Semantic(palette, value string) (ov Override, known bool) {
	p, ok := r.palettes[palette]
	if !ok {
		return nil, false
	}
	ov, known = p[value]
	return ov, known
}

// HasPalette reports whether palette is registered.
func (r *Registry) HasPalette(palette string) bool {
	_, ok := r.palettes[palette]
	return ok
}

// CategoryFill returns the row fill (RRGGBB) of a category.
func (r *Registry) CategoryFill(category string) (string, bool) {
	c, ok := r.categories[category]
	return c, ok
}

// ShadeClass returns the stripe class of a 1-based sheet row.
func ShadeClass(row int) int {
	return row % 2
}

// Stripe returns the alternating fill for row, nil for unshaded rows.
func (r *Registry) Stripe(row int) Override {
	if ShadeClass(row) == 0 {
		return Fill(r.theme.Stripe)
	}
	return nil
}
