package writer

import (
	"fmt"
	"strings"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// cellRange returns the top-left and bottom-right cell names of r.
func cellRange(r models.Range) (string, string, error) {
	tl, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return "", "", err
	}
	br, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return "", "", err
	}
	return tl, br, nil
}

// absoluteRef formats r as a quoted, absolute reference: 'Sheet'!$A$1:$D$10.
func absoluteRef(sheet string, r models.Range) (string, error) {
	tl, err := excelize.CoordinatesToCellName(r.C1, r.R1, true)
	if err != nil {
		return "", err
	}
	br, err := excelize.CoordinatesToCellName(r.C2, r.R2, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("'%s'!%s:%s", strings.ReplaceAll(sheet, "'", "''"), tl, br), nil
}
