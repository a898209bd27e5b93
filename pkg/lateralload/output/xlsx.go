// Package output writes pipeline results as workbooks, text summaries and JSON.
package output

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultFilename is the report name used when none is given.
	DefaultFilename = "unique_points.xlsx"
	// Extension is forced onto report filenames.
	Extension = ".xlsx"
	// SheetName is the name of the single report worksheet.
	SheetName = "Sheet1"
)

// Header is the report header row.
var Header = []string{"X", "Y", "Z", "Fx", "Fy", "Fz", "Mx", "My", "Mz"}

// ResolvePath joins name onto folder and appends Extension unless the name
// already ends in it (case-insensitive). An empty name uses DefaultFilename.
func ResolvePath(folder, name string) string {
	if name == "" {
		name = DefaultFilename
	}
	path := filepath.Join(folder, name)
	if !strings.HasSuffix(strings.ToLower(path), Extension) {
		path += Extension
	}
	return path
}

// WriteWorkbook writes the aggregated points to a new workbook at path, one
// row per point in the given order below the Header row.
func WriteWorkbook(path string, points []models.AggregatedPoint) error {
	f := excelize.NewFile()
	defer f.Close()

	// A new file starts with a sheet named Sheet1.
	sheet := f.GetSheetName(0)
	if sheet != SheetName {
		if err := f.SetSheetName(sheet, SheetName); err != nil {
			return errors.Wrap(err, "rename report sheet")
		}
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return errors.Wrap(err, "write report header")
	}

	for i, p := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrapf(err, "report row %d", i+2)
		}
		values := p.Values()
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return errors.Wrapf(err, "write report row %d", i+2)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "save report %s", path)
	}
	return nil
}
