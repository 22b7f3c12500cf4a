package okr

import (
	"errors"
	"testing"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/builder"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/styles"
)

func TestCount(t *testing.T) {
	want := Counts{Objectives: 2, KeyResults: 6, Initiatives: 37, SupportTasks: 30}
	if got := Count(); got != want {
		t.Errorf("Count() = %+v, want %+v", got, want)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		actual, target, want float64
	}{
		{0, 800000, 0},
		{1, 3, 0.333},
		{2, 3, 0.667},
		{20, 20, 1},
		{5, 0, 0},
		{123456, 1000000, 0.123},
	}
	for _, tt := range tests {
		if got := Progress(tt.actual, tt.target); got != tt.want {
			t.Errorf("Progress(%v, %v) = %v, want %v", tt.actual, tt.target, got, tt.want)
		}
	}
}

func TestInitiativeData(t *testing.T) {
	seen := make(map[int]bool)
	krs := make(map[string]bool)
	for _, o := range objectives {
		for _, kr := range o.KeyResults {
			krs[kr.ID] = true
		}
	}
	for _, in := range initiatives {
		if seen[in.ID] {
			t.Errorf("duplicate initiative %d", in.ID)
		}
		seen[in.ID] = true
		if !krs[in.KR] {
			t.Errorf("initiative %d references unknown %s", in.ID, in.KR)
		}
		if in.End.Before(in.Start) {
			t.Errorf("initiative %d ends before it starts", in.ID)
		}
	}
}

func TestSheets(t *testing.T) {
	reg := styles.NewRegistry(styles.DefaultTheme())
	sheets, err := Sheets(reg, builder.WithStrict())
	if err != nil {
		t.Fatalf("Sheets failed: %v", err)
	}

	tests := []struct {
		name      string
		header    int
		freeze    int
		body      int
		columns   int
		merges    int
		printRows int
	}{
		{SummarySheet, 5, 5, 6, 11, 8, 11},
		{KeyResultsSheet, 3, 3, 6, 13, 1, 9},
		{InitiativesSheet, 3, 3, 37, 14, 1, 40},
		{GuideSheet, 3, 0, 14, 6, 1, 26},
		{SupportSheet, 4, 4, 30, 8, 2, 34},
	}
	if len(sheets) != len(tests) {
		t.Fatalf("got %d sheets, want %d", len(sheets), len(tests))
	}
	for i, tt := range tests {
		s := sheets[i]
		t.Run(tt.name, func(t *testing.T) {
			if s.Name != tt.name {
				t.Fatalf("sheet %d = %q, want %q", i, s.Name, tt.name)
			}
			if s.HeaderRow != tt.header || s.FreezeRow != tt.freeze {
				t.Errorf("header/freeze = %d/%d, want %d/%d", s.HeaderRow, s.FreezeRow, tt.header, tt.freeze)
			}
			if got := s.BodyRows(); got != tt.body {
				t.Errorf("BodyRows() = %d, want %d", got, tt.body)
			}
			if len(s.Columns) != tt.columns {
				t.Errorf("columns = %d, want %d", len(s.Columns), tt.columns)
			}
			if len(s.Merges) != tt.merges {
				t.Errorf("merges = %d, want %d: %v", len(s.Merges), tt.merges, s.Merges)
			}
			if s.PrintArea == nil || s.PrintArea.R2 != tt.printRows || s.PrintArea.C2 != tt.columns {
				t.Errorf("PrintArea = %+v", s.PrintArea)
			}
		})
	}
}

func TestSummaryLayout(t *testing.T) {
	reg := styles.NewRegistry(styles.DefaultTheme())
	s, err := buildSummary(reg)
	if err != nil {
		t.Fatalf("buildSummary failed: %v", err)
	}

	banner := s.Row(3)
	if got := banner.Cells[2].Value.Text; got != "RM1,000,000" {
		t.Errorf("revenue target = %q", got)
	}
	if got := banner.Cells[3].Value.Text; got != "Events: RM800,000 (80%)  |  AI Training: RM200,000 (20%)" {
		t.Errorf("revenue split = %q", got)
	}

	first := s.Row(6)
	if first.Cells[4].Style.NumFmt != "#,##0" || first.Cells[4].Value.Number != 800000 {
		t.Errorf("target cell = %+v", first.Cells[4])
	}
	if first.Cells[8].Style.NumFmt != "0.0%" || first.Cells[8].Value.Number != 0 {
		t.Errorf("progress cell = %+v", first.Cells[8])
	}
	if first.Cells[0].Style.Alignment.Vertical != "center" {
		t.Error("objective anchor is not vertically centered")
	}
	merged := map[models.Range]bool{}
	for _, m := range s.Merges {
		merged[m] = true
	}
	for _, r := range []models.Range{
		{R1: 6, C1: 1, R2: 8, C2: 1},
		{R1: 6, C1: 2, R2: 8, C2: 2},
		{R1: 9, C1: 1, R2: 11, C2: 1},
		{R1: 9, C1: 2, R2: 11, C2: 2},
	} {
		if !merged[r] {
			t.Errorf("missing merge %+v", r)
		}
	}
}

func TestSupportTaskFills(t *testing.T) {
	reg := styles.NewRegistry(styles.DefaultTheme())
	s, err := buildSupportTasks(reg)
	if err != nil {
		t.Fatalf("buildSupportTasks failed: %v", err)
	}
	for _, r := range s.Rows {
		if r.Kind != models.RowBody {
			continue
		}
		want, ok := reg.CategoryFill(r.Cells[1].Value.Text)
		if !ok {
			t.Fatalf("row %d: unknown category %q", r.Index, r.Cells[1].Value.Text)
		}
		for i, c := range r.Cells {
			if c.Style.Fill != want {
				t.Errorf("row %d col %d fill = %q, want %q", r.Index, i+1, c.Style.Fill, want)
			}
		}
	}
}

func TestGuideTotalRow(t *testing.T) {
	reg := styles.NewRegistry(styles.DefaultTheme())
	s, err := buildGuide(reg)
	if err != nil {
		t.Fatalf("buildGuide failed: %v", err)
	}
	total := s.Row(12)
	if total.Cells[0].Value.Text != "Total" || !total.Cells[0].Style.Font.Bold {
		t.Errorf("row 12 = %+v, want the emphasized total row", total.Cells[0])
	}
	for _, idx := range []int{8, 14, 22} {
		if s.Row(idx).Kind != models.RowSection {
			t.Errorf("row %d kind = %v, want section", idx, s.Row(idx).Kind)
		}
	}
	for _, idx := range []int{3, 9, 15, 23} {
		if s.Row(idx).Kind != models.RowHeader {
			t.Errorf("row %d kind = %v, want header", idx, s.Row(idx).Kind)
		}
	}
}

func TestStrictRejectsUnknownStatus(t *testing.T) {
	reg := styles.NewRegistry(styles.DefaultTheme())
	saved := initiatives[0].Status
	initiatives[0].Status = "Stalled"
	defer func() { initiatives[0].Status = saved }()

	if _, err := buildInitiatives(reg); err != nil {
		t.Fatalf("lenient build failed: %v", err)
	}
	_, err := buildInitiatives(reg, builder.WithStrict())
	if !errors.Is(err, builder.ErrUnknownValue) {
		t.Errorf("expected ErrUnknownValue, got %v", err)
	}
}

func TestLayoutsTabNames(t *testing.T) {
	want := []string{"OKR Summary", "Key Results", "Initiatives", "Structure Guide", "Support Tasks"}
	layouts := Layouts()
	if len(layouts) != len(want) {
		t.Fatalf("got %d layouts, want %d", len(layouts), len(want))
	}
	for i, l := range layouts {
		if l.Name != want[i] {
			t.Errorf("tab %d = %q, want %q", i, l.Name, want[i])
		}
	}
}
