// Package writer serializes a workbook model to an xlsx file.
package writer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook without sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrDuplicateSheet indicates two sheets with the same name.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// Write renders wb and saves it to wb.Path in a single write.
// Filesystem errors are returned unmodified.
func Write(wb *models.Workbook) (*models.Report, error) {
	f, report, err := Render(wb)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := f.SaveAs(wb.Path); err != nil {
		return nil, err
	}
	report.Path = wb.Path
	if info, err := os.Stat(wb.Path); err == nil {
		report.Size = info.Size()
	}
	return report, nil
}

// WriteTo renders wb and writes the xlsx bytes to w.
func WriteTo(wb *models.Workbook, w io.Writer) (*models.Report, error) {
	f, report, err := Render(wb)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := f.WriteTo(w)
	if err != nil {
		return nil, err
	}
	report.Size = n
	return report, nil
}

// Render builds the in-memory excelize file for wb. The caller owns the
// returned file and must Close it.
func Render(wb *models.Workbook) (*excelize.File, *models.Report, error) {
	if len(wb.Sheets) == 0 {
		return nil, nil, ErrNoSheets
	}
	seen := make(map[string]bool, len(wb.Sheets))
	for _, s := range wb.Sheets {
		if seen[s.Name] {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateSheet, s.Name)
		}
		seen[s.Name] = true
	}

	f := excelize.NewFile()
	cache := newStyleCache(f)
	report := &models.Report{}

	for i, s := range wb.Sheets {
		if err := createSheet(f, i, s.Name); err != nil {
			f.Close()
			return nil, nil, err
		}
		if err := writeSheet(f, cache, s); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}
		sr := models.SheetReport{
			Name:      s.Name,
			Columns:   len(s.Columns),
			HeaderRow: s.HeaderRow,
			FreezeRow: s.FreezeRow,
			BodyRows:  s.BodyRows(),
			ValueRows: s.ValueRows(),
			Merges:    len(s.Merges),
		}
		if s.PrintArea != nil {
			tl, br, err := cellRange(*s.PrintArea)
			if err != nil {
				f.Close()
				return nil, nil, err
			}
			sr.PrintArea = tl + ":" + br
		}
		report.Sheets = append(report.Sheets, sr)
	}
	f.SetActiveSheet(0)

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   wb.Title,
		Creator: wb.Author,
		Created: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, report, nil
}

func createSheet(f *excelize.File, index int, name string) error {
	if index == 0 {
		return f.SetSheetName(f.GetSheetName(0), name)
	}
	_, err := f.NewSheet(name)
	return err
}

func writeSheet(f *excelize.File, cache *styleCache, s *models.Sheet) error {
	for i, c := range s.Columns {
		if c.Width <= 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.Name, col, col, c.Width); err != nil {
			return err
		}
	}

	for _, r := range s.Rows {
		if r.Height > 0 {
			if err := f.SetRowHeight(s.Name, r.Index, r.Height); err != nil {
				return err
			}
		}
		for ci, cell := range r.Cells {
			ref, err := excelize.CoordinatesToCellName(ci+1, r.Index)
			if err != nil {
				return err
			}
			// Values go first: setting a time.Time installs a default date
			// style that the cell style below replaces.
			if !cell.Value.IsNull() {
				if err := f.SetCellValue(s.Name, ref, cell.Value.Interface()); err != nil {
					return err
				}
			}
			id, err := cache.id(cell.Style)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(s.Name, ref, ref, id); err != nil {
				return err
			}
		}
	}

	for _, m := range s.Merges {
		tl, br, err := cellRange(m)
		if err != nil {
			return err
		}
		if err := f.MergeCell(s.Name, tl, br); err != nil {
			return err
		}
	}

	if s.FreezeRow > 0 {
		topLeft, err := excelize.CoordinatesToCellName(1, s.FreezeRow+1)
		if err != nil {
			return err
		}
		if err := f.SetPanes(s.Name, &excelize.Panes{
			Freeze:      true,
			YSplit:      s.FreezeRow,
			TopLeftCell: topLeft,
			ActivePane:  "bottomLeft",
			Selection: []excelize.Selection{
				{SQRef: topLeft, ActiveCell: topLeft, Pane: "bottomLeft"},
			},
		}); err != nil {
			return err
		}
	}

	if s.PrintArea != nil {
		ref, err := absoluteRef(s.Name, *s.PrintArea)
		if err != nil {
			return err
		}
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     printAreaName,
			RefersTo: ref,
			Scope:    s.Name,
		}); err != nil {
			return err
		}
	}
	return nil
}
