package inspect

import (
	"errors"
	"fmt"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
)

// ErrMismatch indicates the written file differs from the expected report.
var ErrMismatch = errors.New("written workbook does not match report")

// SheetResult is what was read back from one sheet.
type SheetResult struct {
	Name string `json:"name"`
	// UsedRange is the A1 range of non-empty cells.
	UsedRange string `json:"used_range,omitempty"`
	// ValueRows is the number of rows holding at least one value.
	ValueRows int `json:"value_rows"`
	// Merges is the number of merged ranges.
	Merges int `json:"merges"`
	// FreezeRow is the last frozen row, 0 when no pane is frozen.
	FreezeRow int `json:"freeze_row"`
	// PrintAreas holds the sheet's print areas.
	PrintAreas []models.Range `json:"print_areas,omitempty"`
}

// Result is what was read back from a workbook.
type Result struct {
	Sheets []SheetResult `json:"sheets"`
}

// Read opens path and collects a SheetResult per sheet in tab order.
func Read(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	areas := ExtractPrintAreas(f)
	res := &Result{}
	for _, name := range f.GetSheetList() {
		sr, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		sr.PrintAreas = areas[name]
		res.Sheets = append(res.Sheets, *sr)
	}
	return res, nil
}

func readSheet(f *excelize.File, name string) (*SheetResult, error) {
	rows, err := ExtractRows(f, name)
	if err != nil {
		return nil, err
	}
	sr := &SheetResult{Name: name, ValueRows: len(rows)}
	if bounds, ok := DataBounds(rows); ok {
		if sr.UsedRange, err = RangeRef(bounds); err != nil {
			return nil, err
		}
	}

	merges, err := f.GetMergeCells(name)
	if err != nil {
		return nil, err
	}
	sr.Merges = len(merges)

	panes, err := f.GetPanes(name)
	if err != nil {
		return nil, err
	}
	if panes.Freeze {
		sr.FreezeRow = panes.YSplit
	}
	return sr, nil
}

// Verify reads path back and compares it with the report produced when it
// was written. All differences are returned together, each wrapping
// ErrMismatch.
func Verify(path string, want *models.Report) (*Result, error) {
	got, err := Read(path)
	if err != nil {
		return nil, err
	}
	return got, Compare(got, want)
}

// Compare checks a read-back result against a report.
func Compare(got *Result, want *models.Report) error {
	if len(got.Sheets) != len(want.Sheets) {
		return fmt.Errorf("%w: %d sheets, want %d", ErrMismatch, len(got.Sheets), len(want.Sheets))
	}
	var errs error
	for i, w := range want.Sheets {
		g := got.Sheets[i]
		mismatch := func(what string, gv, wv interface{}) {
			errs = multierr.Append(errs, fmt.Errorf("%w: sheet %d %q: %s is %v, want %v", ErrMismatch, i+1, w.Name, what, gv, wv))
		}
		if g.Name != w.Name {
			mismatch("name", g.Name, w.Name)
			continue
		}
		if g.ValueRows != w.ValueRows {
			mismatch("rows with values", g.ValueRows, w.ValueRows)
		}
		if g.Merges != w.Merges {
			mismatch("merged ranges", g.Merges, w.Merges)
		}
		if g.FreezeRow != w.FreezeRow {
			mismatch("frozen rows", g.FreezeRow, w.FreezeRow)
		}
		if w.PrintArea == "" {
			continue
		}
		if len(g.PrintAreas) != 1 {
			mismatch("print areas", len(g.PrintAreas), 1)
			continue
		}
		if ref, err := RangeRef(g.PrintAreas[0]); err != nil || ref != w.PrintArea {
			mismatch("print area", ref, w.PrintArea)
		}
	}
	return errs
}
