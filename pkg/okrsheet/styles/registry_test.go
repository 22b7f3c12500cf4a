package styles

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveUnknownPanics(t *testing.T) {
	reg := NewRegistry(DefaultTheme())
	defer func() {
		if recover() == nil {
			t.Error("expected Resolve to panic on an unknown name")
		}
	}()
	reg.Resolve("missing")
}

func TestHeaderStyle(t *testing.T) {
	h := NewRegistry(DefaultTheme()).Resolve(Header)
	if !h.Font.Bold || h.Font.Color != "FFFFFF" || h.Fill != "00897B" {
		t.Errorf("unexpected header style: %+v", h)
	}
	if h.Alignment.Horizontal != "center" || !h.Alignment.Wrap {
		t.Errorf("header must be centered and wrapped: %+v", h.Alignment)
	}
	if h.Border.Style != 1 || h.Border.Color != "CFD8DC" {
		t.Errorf("header border = %+v", h.Border)
	}
}

func TestWithOverrideLeavesBaseUntouched(t *testing.T) {
	reg := NewRegistry(DefaultTheme())
	base := reg.Resolve(Body)
	before := base

	got := WithOverride(base, Fill("#F5F5F5"), Bold(true), nil, NumFmt("#,##0"))
	if diff := cmp.Diff(before, base); diff != "" {
		t.Errorf("base modified (-before +after):\n%s", diff)
	}
	if got.Fill != "F5F5F5" || !got.Font.Bold || got.NumFmt != "#,##0" {
		t.Errorf("overrides not applied: %+v", got)
	}
	if diff := cmp.Diff(base, reg.Resolve(Body)); diff != "" {
		t.Errorf("registry style modified (-want +got):\n%s", diff)
	}
}

func TestSemantic(t *testing.T) {
	theme := DefaultTheme()
	reg := NewRegistry(theme)
	body := reg.Resolve(Body)

	tests := []struct {
		palette, value string
		known          bool
		fill, font     string
		bold           bool
	}{
		{PaletteStatus, StatusOnTrack, true, "E8F5E9", "43A047", true},
		{PaletteStatus, StatusAtRisk, true, "FFF8E1", "FB8C00", true},
		{PaletteStatus, StatusBehind, true, "FFEBEE", "E53935", true},
		{PaletteStatus, StatusNotStarted, true, "", "263238", false},
		{PaletteStatus, "Stalled", false, "", "263238", false},
		{PalettePriority, "High", true, "", "E53935", true},
		{PalettePriority, "Low", true, "", "78909C", false},
		{"unknown", "High", false, "", "263238", false},
	}
	for _, tt := range tests {
		t.Run(tt.palette+"/"+tt.value, func(t *testing.T) {
			ov, known := reg.Semantic(tt.palette, tt.value)
			if known != tt.known {
				t.Fatalf("known = %v, want %v", known, tt.known)
			}
			got := WithOverride(body, ov)
			if got.Fill != tt.fill || got.Font.Color != tt.font || got.Font.Bold != tt.bold {
				t.Errorf("got fill=%q font=%q bold=%v, want %q %q %v",
					got.Fill, got.Font.Color, got.Font.Bold, tt.fill, tt.font, tt.bold)
			}
		})
	}
}

func TestStripe(t *testing.T) {
	reg := NewRegistry(DefaultTheme())
	for row := 1; row <= 10; row++ {
		if ShadeClass(row) == ShadeClass(row+1) {
			t.Errorf("rows %d and %d share a shade class", row, row+1)
		}
		got := WithOverride(reg.Resolve(Body), reg.Stripe(row)).Fill
		want := ""
		if row%2 == 0 {
			want = "F5F5F5"
		}
		if got != want {
			t.Errorf("row %d fill = %q, want %q", row, got, want)
		}
	}
}

func TestCategoryFill(t *testing.T) {
	reg := NewRegistry(DefaultTheme())
	if c, ok := reg.CategoryFill("Talenta Ideas"); !ok || c != "FFF3E0" {
		t.Errorf("CategoryFill(Talenta Ideas) = %q, %v", c, ok)
	}
	if _, ok := reg.CategoryFill("Finance"); ok {
		t.Error("expected unknown category")
	}
}
