package models

// UsedRange represents the bounding box of non-empty cells on a sheet.
type UsedRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Empty reports whether the range covers no cells.
func (u UsedRange) Empty() bool {
	return u.R1 == 0 || u.C1 == 0
}

// Columns returns the number of columns spanned by the range.
func (u UsedRange) Columns() int {
	if u.Empty() {
		return 0
	}
	return u.C2 - u.C1 + 1
}

// Table represents the used range of the first worksheet of a workbook.
type Table struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the name of the sheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// Range is the used range the rows were taken from.
	Range UsedRange `json:"range"`
	// Rows contains one entry per row of the used range, blank rows included.
	Rows []RawRow `json:"rows,omitempty"`
}
