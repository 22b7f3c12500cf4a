package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
)

func sheetOf(kinds []models.RowKind, keys []string) *models.Sheet {
	s := &models.Sheet{Columns: []models.ColumnSpec{{Header: "Key"}, {Header: "Value"}}}
	for i, k := range keys {
		s.Rows = append(s.Rows, models.SheetRow{
			Index: i + 1,
			Kind:  kinds[i],
			Cells: []models.Cell{{Value: models.Text(k)}, {Value: models.Int(i)}},
		})
	}
	return s
}

func bodyKinds(n int) []models.RowKind {
	kinds := make([]models.RowKind, n)
	for i := range kinds {
		kinds[i] = models.RowBody
	}
	return kinds
}

func TestMergeGroups(t *testing.T) {
	tests := []struct {
		name   string
		kinds  []models.RowKind
		keys   []string
		cols   []int
		groups int
		want   []models.Range
	}{
		{
			name:   "runs",
			kinds:  bodyKinds(6),
			keys:   []string{"A", "A", "A", "B", "B", "C"},
			groups: 2,
			want: []models.Range{
				{R1: 1, C1: 1, R2: 3, C2: 1},
				{R1: 4, C1: 1, R2: 5, C2: 1},
			},
		},
		{
			name:   "with companion column",
			kinds:  bodyKinds(3),
			keys:   []string{"A", "A", "B"},
			cols:   []int{1, 0},
			groups: 1,
			want: []models.Range{
				{R1: 1, C1: 1, R2: 2, C2: 1},
				{R1: 1, C1: 2, R2: 2, C2: 2},
			},
		},
		{
			name:   "all distinct",
			kinds:  bodyKinds(3),
			keys:   []string{"A", "B", "C"},
			groups: 0,
		},
		{
			name:   "non-body row breaks a run",
			kinds:  []models.RowKind{models.RowBody, models.RowBody, models.RowHeader, models.RowBody, models.RowBody},
			keys:   []string{"A", "A", "A", "A", "A"},
			groups: 2,
			want: []models.Range{
				{R1: 1, C1: 1, R2: 2, C2: 1},
				{R1: 4, C1: 1, R2: 5, C2: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sheetOf(tt.kinds, tt.keys)
			groups, err := MergeGroups(s, 0, tt.cols...)
			if err != nil {
				t.Fatalf("MergeGroups failed: %v", err)
			}
			if groups != tt.groups {
				t.Errorf("groups = %d, want %d", groups, tt.groups)
			}
			if diff := cmp.Diff(tt.want, s.Merges); diff != "" {
				t.Errorf("merges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeGroupsColumnRange(t *testing.T) {
	s := sheetOf(bodyKinds(2), []string{"A", "A"})
	if _, err := MergeGroups(s, 0, 5); err == nil {
		t.Error("expected an error for a column outside the sheet")
	}
}

func TestMergeGroupsShortRows(t *testing.T) {
	short := func(keys ...string) *models.Sheet {
		s := &models.Sheet{Columns: []models.ColumnSpec{{Header: "Key"}, {Header: "Value"}}}
		for i, k := range keys {
			s.Rows = append(s.Rows, models.SheetRow{
				Index: i + 1,
				Kind:  models.RowBody,
				Cells: []models.Cell{{Value: models.Text(k)}},
			})
		}
		return s
	}

	t.Run("key column present", func(t *testing.T) {
		s := short("A", "A", "B")
		groups, err := MergeGroups(s, 0)
		if err != nil {
			t.Fatalf("MergeGroups failed: %v", err)
		}
		if groups != 1 {
			t.Errorf("groups = %d, want 1", groups)
		}
		want := []models.Range{{R1: 1, C1: 1, R2: 2, C2: 1}}
		if diff := cmp.Diff(want, s.Merges); diff != "" {
			t.Errorf("merges mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("companion column missing", func(t *testing.T) {
		s := short("A", "A")
		if _, err := MergeGroups(s, 0, 1); err == nil {
			t.Error("expected an error for a row without the companion cell")
		}
		if len(s.Merges) != 0 {
			t.Errorf("merges = %v, want none", s.Merges)
		}
	})

	t.Run("key column missing", func(t *testing.T) {
		s := short("A", "B")
		if _, err := MergeGroups(s, 1); err == nil {
			t.Error("expected an error for rows without the key cell")
		}
	})

	t.Run("distinct keys never touch the missing column", func(t *testing.T) {
		s := short("A", "B", "C")
		groups, err := MergeGroups(s, 0, 1)
		if err != nil {
			t.Fatalf("MergeGroups failed: %v", err)
		}
		if groups != 0 {
			t.Errorf("groups = %d, want 0", groups)
		}
	})
}
