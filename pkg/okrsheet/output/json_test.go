package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/inspect"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
)

func TestWriteFile(t *testing.T) {
	m := &Manifest{
		Report: &models.Report{
			Path:         "plan.xlsx",
			Size:         2048,
			Sheets:       []models.SheetReport{{Name: "OKR Summary", Columns: 11, HeaderRow: 5, FreezeRow: 5, BodyRows: 6, Merges: 8}},
			Objectives:   2,
			KeyResults:   6,
			Initiatives:  37,
			SupportTasks: 30,
		},
		Verified: &inspect.Result{Sheets: []inspect.SheetResult{{Name: "OKR Summary", Merges: 8, FreezeRow: 5}}},
	}
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := WriteFile(path, m); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Manifest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if diff := cmp.Diff(m, &got); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSONOmitsUnverified(t *testing.T) {
	data, err := ToJSON(&Manifest{Report: &models.Report{Path: "plan.xlsx"}}, false)
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if _, ok := fields["verified"]; ok {
		t.Errorf("unexpected verified field in %s", data)
	}
}
