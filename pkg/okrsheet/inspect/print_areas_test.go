package inspect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
)

func TestParseAreaReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		areas []models.Range
	}{
		{"'OKR Summary'!$A$1:$K$11", "OKR Summary", []models.Range{{R1: 1, C1: 1, R2: 11, C2: 11}}},
		{"Sheet1!A1:B2,Sheet1!$D$4:$E$5", "Sheet1", []models.Range{
			{R1: 1, C1: 1, R2: 2, C2: 2},
			{R1: 4, C1: 4, R2: 5, C2: 5},
		}},
		{"'It''s'!$A$1:$A$3", "It's", []models.Range{{R1: 1, C1: 1, R2: 3, C2: 1}}},
		{"$A$1:$B$2", "", nil},
		{"Sheet1!A1", "Sheet1", nil},
	}
	for _, tt := range tests {
		sheet, areas := parseAreaReference(tt.ref)
		if sheet != tt.sheet {
			t.Errorf("parseAreaReference(%q) sheet = %q, want %q", tt.ref, sheet, tt.sheet)
		}
		if diff := cmp.Diff(tt.areas, areas); diff != "" {
			t.Errorf("parseAreaReference(%q) areas mismatch (-want +got):\n%s", tt.ref, diff)
		}
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Key Results"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: "'Key Results'!$A$1:$M$9",
		Scope:    "Key Results",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	got := ExtractPrintAreas(f)
	want := map[string][]models.Range{
		"Key Results": {{R1: 1, C1: 1, R2: 9, C2: 13}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("print areas mismatch (-want +got):\n%s", diff)
	}
}
