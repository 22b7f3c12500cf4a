package inspect

import (
	"fmt"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds returns the bounding box of the non-empty cells in rows.
// ok is false when rows hold no value.
func DataBounds(rows []models.CellRow) (r models.Range, ok bool) {
	for _, row := range rows {
		for col := range row.C {
			if !ok {
				r = models.Range{R1: row.R, C1: col, R2: row.R, C2: col}
				ok = true
				continue
			}
			r.R1 = min(r.R1, row.R)
			r.R2 = max(r.R2, row.R)
			r.C1 = min(r.C1, col)
			r.C2 = max(r.C2, col)
		}
	}
	return r, ok
}

// RangeRef formats r in A1 notation (e.g., "A1:K12").
func RangeRef(r models.Range) (string, error) {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}
