package inspect

import (
	"strings"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Range {
	result := make(map[string][]models.Range)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheet, areas := parseAreaReference(dn.RefersTo)
		if dn.Scope != "" && dn.Scope != "Workbook" {
			sheet = dn.Scope
		}
		if sheet != "" && len(areas) > 0 {
			result[sheet] = append(result[sheet], areas...)
		}
	}
	return result
}

// parseAreaReference splits "'Sheet'!$A$1:$D$10,'Sheet'!$F$1:$G$2" into
// the sheet name and its ranges.
func parseAreaReference(ref string) (string, []models.Range) {
	var (
		sheet string
		areas []models.Range
	)
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheet == "" {
			sheet = strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
		}
		if r, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, r)
		}
	}
	return sheet, areas
}

// parseRange parses "$A$1:$D$10" (dollar signs optional).
func parseRange(s string) (models.Range, bool) {
	start, end, found := strings.Cut(strings.ReplaceAll(s, "$", ""), ":")
	if !found {
		return models.Range{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.Range{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.Range{}, false
	}
	return models.Range{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
