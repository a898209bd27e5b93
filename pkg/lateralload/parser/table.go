package parser

import (
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads the used range of the first worksheet of the workbook at path.
// Cell values are read raw, so number formats applied in the workbook do not
// round the values.
func ReadTable(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", path)
	}
	defer f.Close()

	return readFirstSheet(f, filepath.Base(path))
}

// ReadTableFrom reads the used range of the first worksheet of a workbook
// streamed from r.
func ReadTableFrom(r io.Reader, bookName string) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", bookName)
	}
	defer f.Close()

	return readFirstSheet(f, bookName)
}

func readFirstSheet(f *excelize.File, bookName string) (*models.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Errorf("workbook %s has no worksheets", bookName)
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q of %s", sheetName, bookName)
	}

	used := UsedRange(rows)
	table := &models.Table{
		BookName:  bookName,
		SheetName: sheetName,
		Range:     used,
		Rows:      sliceRange(rows, used),
	}

	log.Debug().
		Str("book", bookName).
		Str("sheet", sheetName).
		Str("range", RangeRef(used)).
		Int("rows", len(table.Rows)).
		Msg("table read")

	return table, nil
}
