package builder

import (
	"fmt"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/styles"
)

// MergeGroups merges, for every run of two or more contiguous body rows
// sharing the same value in column key, the cells of key and of each of
// cols into one vertical range per column. Columns are 0-based. Any
// non-body row ends a run. A row without a cell in column key groups as
// an empty value. The anchor cell keeps its style, re-centered
// vertically, since merging discards the style of the other cells.
//
// It must run after every row is styled. It returns the number of groups
// merged.
func MergeGroups(sheet *models.Sheet, key int, cols ...int) (int, error) {
	columns := append([]int{key}, cols...)
	for _, c := range columns {
		if c < 0 || c >= len(sheet.Columns) {
			return 0, fmt.Errorf("merge column %d out of range [0,%d)", c, len(sheet.Columns))
		}
	}

	merged := 0
	start, end := 0, 0
	flush := func() error {
		if start == 0 || end <= start {
			return nil
		}
		anchor := sheet.Row(start)
		for _, c := range uniq(columns) {
			if c >= len(anchor.Cells) {
				return fmt.Errorf("row %d has no cell in merge column %d", start, c)
			}
		}
		for _, c := range uniq(columns) {
			if err := sheet.AddMerge(models.Range{R1: start, C1: c + 1, R2: end, C2: c + 1}); err != nil {
				return err
			}
			cell := &anchor.Cells[c]
			cell.Style = styles.WithOverride(cell.Style, styles.Vertical("center"))
		}
		merged++
		return nil
	}

	var current models.Value
	for _, r := range sheet.Rows {
		if r.Kind != models.RowBody {
			if err := flush(); err != nil {
				return merged, err
			}
			start, end = 0, 0
			continue
		}
		v := models.Null()
		if key < len(r.Cells) {
			v = r.Cells[key].Value
		}
		if start != 0 && v.Equal(current) {
			end = r.Index
			continue
		}
		if err := flush(); err != nil {
			return merged, err
		}
		start, end, current = r.Index, r.Index, v
	}
	if err := flush(); err != nil {
		return merged, err
	}
	return merged, nil
}

func uniq(cols []int) []int {
	seen := make(map[int]bool, len(cols))
	out := cols[:0:0]
	for _, c := range cols {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
