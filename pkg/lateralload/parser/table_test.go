package parser

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
	"github.com/xuri/excelize/v2"
)

func TestReadTable(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	table, err := ReadTable(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "test.xlsx", table.BookName)
	assert.Equal(t, sheetName, table.SheetName)
	assert.Equal(t, models.UsedRange{R1: 1, C1: 1, R2: 3, C2: 2}, table.Range)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, 1, table.Rows[0].Index)
	assert.Equal(t, "Header1", table.Rows[0].Cell(1))
	assert.Equal(t, "100", table.Rows[1].Cell(1))
	assert.Equal(t, 200.5, NumberOrZero(table.Rows[1].Cell(2)))
	assert.Equal(t, "", table.Rows[2].Cell(2))
}

func TestReadTableUsedRangeOffsets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// Data starts at C3: position 1 of every row must be column C.
	f.SetCellValue("Sheet1", "C3", "first")
	f.SetCellValue("Sheet1", "E3", 5)
	f.SetCellValue("Sheet1", "D5", "last")

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := ReadTableFrom(&buf, "offset.xlsx")
	require.NoError(t, err)

	assert.Equal(t, models.UsedRange{R1: 3, C1: 3, R2: 5, C2: 5}, table.Range)
	assert.Equal(t, "C3:E5", RangeRef(table.Range))
	require.Len(t, table.Rows, 3)

	assert.Equal(t, "first", table.Rows[0].Cell(1))
	assert.Equal(t, "5", table.Rows[0].Cell(3))
	// Blank rows inside the range are kept.
	assert.Equal(t, 4, table.Rows[1].Index)
	assert.Equal(t, 0, table.Rows[1].Len())
	assert.Equal(t, "last", table.Rows[2].Cell(2))
}

func TestReadTableFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "first sheet")
	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	f.SetCellValue("Other", "A1", "second sheet")
	f.SetCellValue("Other", "A2", "more")

	path := filepath.Join(t.TempDir(), "two.xlsx")
	require.NoError(t, f.SaveAs(path))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", table.SheetName)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "first sheet", table.Rows[0].Cell(1))
}

func TestReadTableEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.True(t, table.Range.Empty())
	assert.Empty(t, table.Rows)
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestReadTableRawValues(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", 1234.5678)
	style, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "A1", "A1", style))

	path := filepath.Join(t.TempDir(), "fmt.xlsx")
	require.NoError(t, f.SaveAs(path))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 1234.5678, NumberOrZero(table.Rows[0].Cell(1)))
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		rows                           [][]string
		minRow, maxRow, minCol, maxCol int
	}{
		{nil, -1, -1, -1, -1},
		{[][]string{{"", ""}, {}}, -1, -1, -1, -1},
		{[][]string{{"a"}}, 0, 0, 0, 0},
		{[][]string{{}, {"", "x"}, {"", "", "", "y"}}, 1, 2, 1, 3},
	}

	for _, tt := range tests {
		minRow, maxRow, minCol, maxCol := findDataBounds(tt.rows)
		if minRow != tt.minRow || maxRow != tt.maxRow || minCol != tt.minCol || maxCol != tt.maxCol {
			t.Errorf("findDataBounds(%v) = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
				tt.rows, minRow, maxRow, minCol, maxCol,
				tt.minRow, tt.maxRow, tt.minCol, tt.maxCol)
		}
	}
}
