// Package models defines data structures for lateral load processing.
package models

// RawRow represents a single row of a sheet's used range.
type RawRow struct {
	// Index is the row index on the sheet (1-based).
	Index int `json:"index"`
	// Cells holds the raw cell text, positioned relative to the first
	// column of the used range.
	Cells []string `json:"cells"`
}

// Cell returns the value at the 1-based position pos, or "" when the row
// is shorter than pos.
func (r RawRow) Cell(pos int) string {
	if pos < 1 || pos > len(r.Cells) {
		return ""
	}
	return r.Cells[pos-1]
}

// Len returns the number of cells present in the row.
func (r RawRow) Len() int {
	return len(r.Cells)
}
