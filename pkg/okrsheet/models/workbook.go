package models

// Workbook is an ordered set of sheets bound for one output file.
type Workbook struct {
	// Title is stored in the document properties.
	Title string
	// Author is stored in the document properties.
	Author string
	// Path is the output file path.
	Path string
	// Sheets in tab order.
	Sheets []*Sheet
}

// SheetReport summarizes one written sheet.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Columns is the table column count.
	Columns int `json:"columns"`
	// HeaderRow is the 1-based header row.
	HeaderRow int `json:"header_row"`
	// FreezeRow is the last frozen row, 0 when no pane is frozen.
	FreezeRow int `json:"freeze_row"`
	// BodyRows is the number of data rows.
	BodyRows int `json:"body_rows"`
	// ValueRows is the number of rows holding at least one value.
	ValueRows int `json:"value_rows"`
	// Merges is the number of merged ranges.
	Merges int `json:"merges"`
	// PrintArea is the A1 print area, empty for none.
	PrintArea string `json:"print_area,omitempty"`
}

// Report describes the result of a run.
type Report struct {
	// Path is the written file.
	Path string `json:"path"`
	// Size is the written file size in bytes.
	Size int64 `json:"size"`
	// Sheets in tab order.
	Sheets []SheetReport `json:"sheets"`
	// Objectives is the number of objectives rendered.
	Objectives int `json:"objectives"`
	// KeyResults is the number of key results rendered.
	KeyResults int `json:"key_results"`
	// Initiatives is the number of initiatives rendered.
	Initiatives int `json:"initiatives"`
	// SupportTasks is the number of support tasks rendered.
	SupportTasks int `json:"support_tasks"`
}

// CellRow is a row read back from a written sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps the 1-based column index to the cell value.
	C map[int]Value `json:"c"`
}
