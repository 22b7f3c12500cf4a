// Package builder lays out report sheets: banner, frozen header row,
// striped body rows and grouped merges.
package builder

import (
	"fmt"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/styles"
	"go.uber.org/zap"
)

// Segment is one merged block of a banner line.
type Segment struct {
	Text string
	// Span is the number of columns covered; 0 spans to the last column.
	Span  int
	Style models.StyleSpec
}

// BannerLine is one row of the banner above the table.
type BannerLine struct {
	Segments []Segment
	// Height is the row height in points (0 keeps the default).
	Height float64
}

// Line returns a banner line holding a single full-width segment.
func Line(text string, style models.StyleSpec, height float64) BannerLine {
	return BannerLine{Segments: []Segment{{Text: text, Style: style}}, Height: height}
}

type group struct {
	key  int
	cols []int
}

// Option configures a Builder.
type Option func(*Builder)

// WithBanner writes lines above the header row, followed by one blank row.
func WithBanner(lines ...BannerLine) Option {
	return func(b *Builder) { b.banner = append(b.banner, lines...) }
}

// WithoutStripes disables alternating row shading.
func WithoutStripes() Option {
	return func(b *Builder) { b.stripes = false }
}

// WithoutFreeze leaves the header row unfrozen.
func WithoutFreeze() Option {
	return func(b *Builder) { b.freeze = false }
}

// WithStrict rejects values missing from a column's semantic palette.
func WithStrict() Option {
	return func(b *Builder) { b.strict = true }
}

// WithLogger sets the logger that receives palette fallbacks.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithGroup merges column key and cols over runs of equal key values
// when the sheet is built. Columns are 0-based.
func WithGroup(key int, cols ...int) Option {
	return func(b *Builder) { b.groups = append(b.groups, group{key: key, cols: cols}) }
}

// Builder accumulates the rows of one sheet.
type Builder struct {
	reg     *styles.Registry
	sheet   *models.Sheet
	banner  []BannerLine
	stripes bool
	freeze  bool
	strict  bool
	groups  []group
	log     *zap.Logger
	built   bool
}

// New starts a sheet with the given columns. The banner and the header row
// are written immediately, so every body row follows a styled header.
func New(name string, cols []models.ColumnSpec, reg *styles.Registry, opts ...Option) (*Builder, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("sheet %q: no columns", name)
	}
	b := &Builder{
		reg:     reg,
		sheet:   &models.Sheet{Name: name, Columns: cols},
		stripes: true,
		freeze:  true,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, p := range cols {
		if p.Palette != "" && !reg.HasPalette(p.Palette) {
			return nil, fmt.Errorf("sheet %q column %q: unknown palette %q", name, p.Header, p.Palette)
		}
	}

	if len(b.banner) > 0 {
		for _, line := range b.banner {
			if err := b.writeBanner(line); err != nil {
				return nil, err
			}
		}
		b.blank()
	}

	labels := make([]string, len(cols))
	for i, c := range cols {
		labels[i] = c.Header
	}
	b.sheet.HeaderRow = b.writeHeader(labels)
	return b, nil
}

// Sheet returns the sheet under construction.
func (b *Builder) Sheet() *models.Sheet { return b.sheet }

// NextRow returns the 1-based index the next row will occupy.
func (b *Builder) NextRow() int { return len(b.sheet.Rows) + 1 }

func (b *Builder) width() int { return len(b.sheet.Columns) }

func (b *Builder) append(kind models.RowKind, height float64, cells []models.Cell) int {
	idx := b.NextRow()
	b.sheet.Rows = append(b.sheet.Rows, models.SheetRow{Index: idx, Kind: kind, Height: height, Cells: cells})
	return idx
}

func (b *Builder) blank() int {
	return b.append(models.RowBlank, 0, nil)
}

func (b *Builder) writeBanner(line BannerLine) error {
	row := b.NextRow()
	cells := make([]models.Cell, 0, b.width())
	col := 1
	for _, seg := range line.Segments {
		span := seg.Span
		if span == 0 {
			span = b.width() - col + 1
		}
		if span < 1 || col+span-1 > b.width() {
			return fmt.Errorf("sheet %q: banner segment %q exceeds %d columns", b.sheet.Name, seg.Text, b.width())
		}
		// Banner merges are laid out left to right and cannot collide.
		if span > 1 {
			if err := b.sheet.AddMerge(models.Range{R1: row, C1: col, R2: row, C2: col + span - 1}); err != nil {
				return err
			}
		}
		cells = append(cells, models.Cell{Value: models.Text(seg.Text), Style: seg.Style})
		for i := 1; i < span; i++ {
			cells = append(cells, models.Cell{Style: seg.Style})
		}
		col += span
	}
	b.append(models.RowBanner, line.Height, cells)
	return nil
}

func (b *Builder) writeHeader(labels []string) int {
	style := b.reg.Resolve(styles.Header)
	cells := make([]models.Cell, len(labels))
	for i, l := range labels {
		cells[i] = models.Cell{Style: style}
		if l != "" {
			cells[i].Value = models.Text(l)
		}
	}
	return b.append(models.RowHeader, 0, cells)
}

// AddRow appends a body row. A record whose length differs from the column
// count is rejected with ErrColumnCount and nothing is appended.
func (b *Builder) AddRow(rec models.RowRecord) error {
	if b.built {
		return fmt.Errorf("sheet %q: already built", b.sheet.Name)
	}
	row := b.NextRow()
	if len(rec.Values) != b.width() {
		return &RowError{
			Sheet: b.sheet.Name,
			Row:   row,
			Err:   fmt.Errorf("%w: got %d values, want %d", ErrColumnCount, len(rec.Values), b.width()),
		}
	}

	cells := make([]models.Cell, len(rec.Values))
	for i, v := range rec.Values {
		style, err := b.cellStyle(row, b.sheet.Columns[i], rec, v)
		if err != nil {
			return &RowError{Sheet: b.sheet.Name, Row: row, Err: err}
		}
		cells[i] = models.Cell{Value: v, Style: style}
	}
	b.append(models.RowBody, 0, cells)
	return nil
}

// cellStyle composes the style of a body cell: base body style, row shading,
// column alignment and number format, then the semantic override.
func (b *Builder) cellStyle(row int, col models.ColumnSpec, rec models.RowRecord, v models.Value) (models.StyleSpec, error) {
	base := styles.Body
	if col.Bold || rec.Emphasis {
		base = styles.BodyBold
	}

	var shade styles.Override
	switch {
	case rec.Fill != "":
		shade = styles.Fill(rec.Fill)
	case b.stripes:
		shade = b.reg.Stripe(row)
	}

	var align, numFmt styles.Override
	if col.Align != "" {
		align = styles.Align(col.Align)
	}
	if col.NumFmt != "" && v.IsNumeric() {
		numFmt = styles.NumFmt(col.NumFmt)
	}

	var semantic styles.Override
	if col.Palette != "" && v.Kind == models.KindText {
		ov, known := b.reg.Semantic(col.Palette, v.Text)
		if !known {
			if b.strict {
				return models.StyleSpec{}, fmt.Errorf("%w: %q in %s palette (column %q)", ErrUnknownValue, v.Text, col.Palette, col.Header)
			}
			b.log.Debug("value not in palette, using default style",
				zap.String("sheet", b.sheet.Name),
				zap.Int("row", row),
				zap.String("column", col.Header),
				zap.String("value", v.Text))
		}
		semantic = ov
	}

	return styles.WithOverride(b.reg.Resolve(base), shade, align, numFmt, semantic), nil
}

// AddSection appends a blank row, a section title and a header-styled row
// of labels. labels must have one entry per column.
func (b *Builder) AddSection(title string, labels []string) error {
	if len(labels) != b.width() {
		return &RowError{
			Sheet: b.sheet.Name,
			Row:   b.NextRow() + 2,
			Err:   fmt.Errorf("%w: got %d labels, want %d", ErrColumnCount, len(labels), b.width()),
		}
	}
	b.blank()
	b.append(models.RowSection, 0, []models.Cell{{
		Value: models.Text(title),
		Style: b.reg.Resolve(styles.Section),
	}})
	b.writeHeader(labels)
	return nil
}

// AddBlank appends an empty spacer row.
func (b *Builder) AddBlank() {
	b.blank()
}

// Build runs the registered merges, sets the frozen pane and print area,
// and returns the sheet. The builder cannot be used afterwards.
func (b *Builder) Build() (*models.Sheet, error) {
	if b.built {
		return nil, fmt.Errorf("sheet %q: already built", b.sheet.Name)
	}
	b.built = true

	for _, g := range b.groups {
		if _, err := MergeGroups(b.sheet, g.key, g.cols...); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", b.sheet.Name, err)
		}
	}
	if b.freeze {
		b.sheet.FreezeRow = b.sheet.HeaderRow
	}
	b.sheet.PrintArea = &models.Range{R1: 1, C1: 1, R2: len(b.sheet.Rows), C2: b.width()}
	return b.sheet, nil
}
