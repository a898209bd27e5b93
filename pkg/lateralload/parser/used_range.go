package parser

import (
	"fmt"

	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding box of non-empty cells in rows, as 1-based
// sheet coordinates. The zero UsedRange is returned when every cell is empty.
func UsedRange(rows [][]string) models.UsedRange {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.UsedRange{}
	}
	return models.UsedRange{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}
}

// RangeRef converts a used range to Excel notation (e.g. "B2:M40").
func RangeRef(u models.UsedRange) string {
	if u.Empty() {
		return ""
	}
	startCell, _ := excelize.CoordinatesToCellName(u.C1, u.R1)
	endCell, _ := excelize.CoordinatesToCellName(u.C2, u.R2)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// sliceRange cuts rows down to the used range, keeping blank rows inside it.
func sliceRange(rows [][]string, u models.UsedRange) []models.RawRow {
	if u.Empty() {
		return nil
	}

	result := make([]models.RawRow, 0, u.R2-u.R1+1)
	for r := u.R1; r <= u.R2; r++ {
		var cells []string
		if r-1 < len(rows) {
			row := rows[r-1]
			if u.C1-1 < len(row) {
				end := u.C2
				if end > len(row) {
					end = len(row)
				}
				cells = append([]string(nil), row[u.C1-1:end]...)
			}
		}
		result = append(result, models.RawRow{Index: r, Cells: cells})
	}
	return result
}
