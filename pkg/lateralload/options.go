// Package lateralload joins column and wall reaction forces to joint
// coordinates and computes the resultant loads on one elevation plane.
package lateralload

import (
	"errors"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/output"
)

// Options configures one pipeline run.
type Options struct {
	// Folder is the directory every file name is resolved against.
	Folder string `validate:"required"`
	// ColumnFile is the column end-force workbook.
	ColumnFile string `validate:"required"`
	// WallFile is the wall end-force workbook.
	WallFile string `validate:"required"`
	// CoordinateFile is the joint coordinate workbook.
	CoordinateFile string `validate:"required"`
	// Elevation is the target Z.
	Elevation *float64 `validate:"required"`
	// OutputFile is the report name. Defaults to output.DefaultFilename;
	// the .xlsx extension is appended when missing.
	OutputFile string
}

var validate = validator.New()

// Validate checks that every required parameter is set.
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &InputError{
			Field:  strings.Join(fields, ", "),
			Reason: "please fill in all required fields",
		}
	}
	return &InputError{Reason: err.Error()}
}

// WithElevation returns a copy of o targeting elevation z.
func (o Options) WithElevation(z float64) Options {
	o.Elevation = &z
	return o
}

// ColumnPath returns the resolved column workbook path.
func (o Options) ColumnPath() string { return filepath.Join(o.Folder, o.ColumnFile) }

// WallPath returns the resolved wall workbook path.
func (o Options) WallPath() string { return filepath.Join(o.Folder, o.WallFile) }

// CoordinatePath returns the resolved coordinate workbook path.
func (o Options) CoordinatePath() string { return filepath.Join(o.Folder, o.CoordinateFile) }

// OutputPath returns the resolved report path.
func (o Options) OutputPath() string { return output.ResolvePath(o.Folder, o.OutputFile) }

// ParseElevation parses user supplied elevation text.
func ParseElevation(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &InputError{Field: "Elevation", Reason: "please fill in all required fields"}
	}
	z, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, &InputError{Field: "Elevation", Reason: "invalid Z elevation value " + strconv.Quote(text)}
	}
	return z, nil
}
