package inspect

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A4", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	want := []models.CellRow{
		{R: 1, C: map[int]models.Value{1: models.Text("Header1"), 2: models.Text("Header2")}},
		{R: 2, C: map[int]models.Value{1: models.Number(100), 2: models.Number(200.5)}},
		{R: 4, C: map[int]models.Value{1: models.Text("Text")}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	bounds, ok := DataBounds(rows)
	if !ok {
		t.Fatal("expected bounds")
	}
	ref, err := RangeRef(bounds)
	if err != nil {
		t.Fatalf("RangeRef failed: %v", err)
	}
	if ref != "A1:B4" {
		t.Errorf("used range = %s, want A1:B4", ref)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"hello", models.Text("hello")},
		{"", models.Null()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if !result.Equal(tt.expected) {
			t.Errorf("parseValue(%q) = %v (%v), expected %v (%v)",
				tt.input, result, result.Kind, tt.expected, tt.expected.Kind)
		}
	}
}

func TestDataBoundsEmpty(t *testing.T) {
	if _, ok := DataBounds(nil); ok {
		t.Error("expected no bounds for an empty sheet")
	}
}
