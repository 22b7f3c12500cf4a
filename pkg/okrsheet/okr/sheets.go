package okr

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/builder"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/styles"
)

// Sheet names in tab order. These are the published tab names; the
// summary, detailed results, action items and guide tabs are titled
// OKR Summary, Key Results, Initiatives and Structure Guide.
const (
	SummarySheet     = "OKR Summary"
	KeyResultsSheet  = "Key Results"
	InitiativesSheet = "Initiatives"
	GuideSheet       = "Structure Guide"
	SupportSheet     = "Support Tasks"
)

const (
	fmtAmount  = "#,##0"
	fmtPercent = "0.0%"
	fmtDate    = "dd mmm yyyy"
)

// Layout builds one sheet of the report. opts are applied after the
// layout's own builder options.
type Layout struct {
	Name  string
	Build func(reg *styles.Registry, opts ...builder.Option) (*models.Sheet, error)
}

// Layouts returns the report sheets in tab order.
func Layouts() []Layout {
	return []Layout{
		{Name: SummarySheet, Build: buildSummary},
		{Name: KeyResultsSheet, Build: buildKeyResults},
		{Name: InitiativesSheet, Build: buildInitiatives},
		{Name: GuideSheet, Build: buildGuide},
		{Name: SupportSheet, Build: buildSupportTasks},
	}
}

// Sheets builds every layout in order.
func Sheets(reg *styles.Registry, opts ...builder.Option) ([]*models.Sheet, error) {
	var sheets []*models.Sheet
	for _, l := range Layouts() {
		s, err := l.Build(reg, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.Name, err)
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

// text maps an empty string to an empty cell.
func text(s string) models.Value {
	if s == "" {
		return models.Null()
	}
	return models.Text(s)
}

func title(reg *styles.Registry, s string, size float64, height float64) builder.BannerLine {
	return builder.Line(s, styles.WithOverride(reg.Resolve(styles.Title), styles.FontSize(size)), height)
}

func revenueSplit() string {
	return fmt.Sprintf("Events: RM%s (%d%%)  |  AI Training: RM%s (%d%%)",
		humanize.Comma(EventsRevenue), EventsRevenue*100/RevenueTarget,
		humanize.Comma(TrainingRevenue), TrainingRevenue*100/RevenueTarget)
}

func buildSummary(reg *styles.Registry, opts ...builder.Option) (*models.Sheet, error) {
	cols := []models.ColumnSpec{
		{Header: "Obj #", Width: 7, Align: "center", Bold: true},
		{Header: "Objective", Width: 28, Bold: true},
		{Header: "KR #", Width: 8, Align: "center", Bold: true},
		{Header: "Key Result", Width: 58},
		{Header: "Target", Width: 12, Align: "center", NumFmt: fmtAmount},
		{Header: "Actual", Width: 10, Align: "center", NumFmt: fmtAmount},
		{Header: "Unit", Width: 20, Align: "center"},
		{Header: "Deadline", Width: 12, Align: "center"},
		{Header: "Progress %", Width: 12, Align: "center", NumFmt: fmtPercent},
		{Header: "Status", Width: 14, Align: "center", Palette: styles.PaletteStatus},
		{Header: "Owner", Width: 12, Align: "center"},
	}
	size := reg.Theme().FontSize
	banner := builder.WithBanner(
		title(reg, "MotionVii SAAP 2026 — OKR Summary", size+6, 35),
		builder.Line("Strategic Annual Action Plan — Scale Events Business & Launch AI Training Revenue Stream",
			reg.Resolve(styles.Subtitle), 0),
		builder.BannerLine{
			Height: 22,
			Segments: []builder.Segment{
				{Text: "Revenue Target:", Span: 2, Style: reg.Resolve(styles.BannerLabel)},
				{Text: "RM" + humanize.Comma(RevenueTarget), Span: 1, Style: reg.Resolve(styles.BannerValue)},
				{Text: revenueSplit(), Span: 3, Style: reg.Resolve(styles.BannerNote)},
			},
		},
	)

	b, err := builder.New(SummarySheet, cols, reg, append([]builder.Option{banner, builder.WithGroup(0, 1)}, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, o := range objectives {
		for _, kr := range o.KeyResults {
			err := b.AddRow(models.Row(
				models.Int(o.Num),
				models.Text(o.Name),
				models.Text(kr.ID),
				models.Text(kr.Description),
				models.Number(kr.Target),
				models.Number(kr.Actual),
				text(kr.Unit),
				text(kr.Deadline),
				models.Number(Progress(kr.Actual, kr.Target)),
				text(kr.Status),
				text(kr.Owner),
			))
			if err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

func buildKeyResults(reg *styles.Registry, opts ...builder.Option) (*models.Sheet, error) {
	cols := []models.ColumnSpec{
		{Header: "KR ID", Width: 8, Align: "center", Bold: true},
		{Header: "Objective", Width: 16},
		{Header: "Key Result Description", Width: 55},
		{Header: "Metric Type", Width: 14, Align: "center"},
		{Header: "Target", Width: 12, Align: "center", NumFmt: fmtAmount},
		{Header: "Actual", Width: 10, Align: "center"},
		{Header: "Unit", Width: 20, Align: "center"},
		{Header: "Progress %", Width: 12, Align: "center", NumFmt: fmtPercent},
		{Header: "Deadline", Width: 12, Align: "center"},
		{Header: "Status", Width: 14, Align: "center", Palette: styles.PaletteStatus},
		{Header: "Owner", Width: 12, Align: "center"},
		{Header: "How We Measure", Width: 60},
		{Header: "Notes", Width: 55},
	}
	banner := builder.WithBanner(title(reg, "Key Results — Detailed Tracking", reg.Theme().FontSize+4, 30))

	b, err := builder.New(KeyResultsSheet, cols, reg, append([]builder.Option{banner}, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, o := range objectives {
		for _, kr := range o.KeyResults {
			err := b.AddRow(models.Row(
				models.Text(kr.ID),
				models.Text(o.Short),
				models.Text(kr.Description),
				text(kr.Metric),
				models.Number(kr.Target),
				models.Number(kr.Actual),
				text(kr.Unit),
				models.Number(Progress(kr.Actual, kr.Target)),
				text(kr.Deadline),
				text(kr.Status),
				text(kr.Owner),
				text(kr.Measure),
				text(kr.Notes),
			))
			if err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

func buildInitiatives(reg *styles.Registry, opts ...builder.Option) (*models.Sheet, error) {
	cols := []models.ColumnSpec{
		{Header: "ID", Width: 5, Align: "center", Bold: true},
		{Header: "KR", Width: 8, Align: "center", Bold: true},
		{Header: "Objective", Width: 16},
		{Header: "Initiative", Width: 62},
		{Header: "Department", Width: 14, Align: "center"},
		{Header: "Start Date", Width: 14, Align: "center", NumFmt: fmtDate},
		{Header: "End Date", Width: 14, Align: "center", NumFmt: fmtDate},
		{Header: "Budget (RM)", Width: 13, Align: "right", NumFmt: fmtAmount},
		{Header: "Resources", Width: 22},
		{Header: "Person In Charge", Width: 16, Align: "center"},
		{Header: "Accountable", Width: 14, Align: "center"},
		{Header: "Status", Width: 12, Align: "center", Palette: styles.PaletteStatus},
		{Header: "Progress", Width: 10, Align: "center"},
		{Header: "Remarks", Width: 55},
	}
	banner := builder.WithBanner(title(reg, "Initiatives — Action Items", reg.Theme().FontSize+4, 30))

	b, err := builder.New(InitiativesSheet, cols, reg, append([]builder.Option{banner}, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, in := range initiatives {
		budget := models.Null()
		if in.Budget > 0 {
			budget = models.Number(in.Budget)
		}
		err := b.AddRow(models.Row(
			models.Int(in.ID),
			models.Text(in.KR),
			text(in.Objective),
			models.Text(in.Title),
			text(in.Department),
			models.Date(in.Start),
			models.Date(in.End),
			budget,
			text(in.Resources),
			text(in.PIC),
			text(in.Accountable),
			text(in.Status),
			models.Null(),
			text(in.Remarks),
		))
		if err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func buildGuide(reg *styles.Registry, opts ...builder.Option) (*models.Sheet, error) {
	widths := [guideColumns]float64{24, 30, 30, 38, 14, 14}
	cols := make([]models.ColumnSpec, guideColumns)
	for i := range cols {
		cols[i] = models.ColumnSpec{Header: guideTables[0].Headers[i], Width: widths[i]}
	}
	layout := []builder.Option{
		builder.WithBanner(title(reg, "OKR Structure Guide", reg.Theme().FontSize+4, 30)),
		builder.WithoutStripes(),
		builder.WithoutFreeze(),
	}

	b, err := builder.New(GuideSheet, cols, reg, append(layout, opts...)...)
	if err != nil {
		return nil, err
	}
	for i, t := range guideTables {
		if i > 0 {
			if err := b.AddSection(t.Title, t.Headers[:]); err != nil {
				return nil, err
			}
		}
		for _, r := range t.Rows {
			rec := models.RowRecord{
				Values:   make([]models.Value, len(r)),
				Emphasis: r[0] == "Total",
			}
			for j, s := range r {
				rec.Values[j] = text(s)
			}
			if err := b.AddRow(rec); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

func buildSupportTasks(reg *styles.Registry, opts ...builder.Option) (*models.Sheet, error) {
	cols := []models.ColumnSpec{
		{Header: "ID", Width: 5, Align: "center", Bold: true},
		{Header: "Category", Width: 18, Bold: true},
		{Header: "Task", Width: 55},
		{Header: "Supports", Width: 16, Align: "center"},
		{Header: "Owner", Width: 12, Align: "center"},
		{Header: "Frequency", Width: 16, Align: "center"},
		{Header: "Priority", Width: 10, Align: "center", Palette: styles.PalettePriority},
		{Header: "Notes", Width: 60},
	}
	size := reg.Theme().FontSize
	layout := []builder.Option{
		builder.WithBanner(
			title(reg, "Support Tasks — Operational Work Supporting SAAP Initiatives", size+4, 30),
			builder.Line("These are recurring, ad-hoc, or BAU tasks — not strategic initiatives, but needed to deliver them.",
				styles.WithOverride(reg.Resolve(styles.Subtitle), styles.FontSize(size)), 0),
		),
		// Rows take their category fill instead.
		builder.WithoutStripes(),
	}

	b, err := builder.New(SupportSheet, cols, reg, append(layout, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, t := range supportTasks {
		fill, _ := reg.CategoryFill(t.Category)
		err := b.AddRow(models.RowRecord{
			Values: []models.Value{
				models.Int(t.ID),
				models.Text(t.Category),
				models.Text(t.Task),
				text(t.Supports),
				text(t.Owner),
				text(t.Frequency),
				text(t.Priority),
				text(t.Notes),
			},
			Fill: fill,
		})
		if err != nil {
			return nil, err
		}
	}
	return b.Build()
}
