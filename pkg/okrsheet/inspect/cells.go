// Package inspect reads a written report back for verification.
package inspect

import (
	"strconv"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows reads the raw cell values of a sheet.
// Rows without any value are skipped.
func ExtractRows(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for i, row := range rows {
		cells := make(map[int]models.Value)
		for j, raw := range row {
			if v := parseValue(raw); !v.IsNull() {
				cells[j+1] = v
			}
		}
		if len(cells) > 0 {
			result = append(result, models.CellRow{R: i + 1, C: cells})
		}
	}
	return result, nil
}

// parseValue converts a raw cell string to a typed value. Dates come back
// as serial numbers.
func parseValue(s string) models.Value {
	if s == "" {
		return models.Null()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}
