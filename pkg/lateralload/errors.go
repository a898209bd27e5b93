package lateralload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/lateralload-go/pkg/lateralload/aggregate"
)

var (
	// ErrFileNotFound indicates one or more input workbooks do not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidInput indicates missing or malformed run parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoCoordinateData indicates no force point could be located.
	ErrNoCoordinateData = aggregate.ErrNoCoordinateData
	// ErrNoPointsAtElevation indicates nothing lies on the requested elevation.
	ErrNoPointsAtElevation = aggregate.ErrNoPointsAtElevation
	// ErrRunInProgress is returned by Runner.Start while a run is active.
	ErrRunInProgress = errors.New("a run is already in progress")
)

// FileNotFoundError lists every missing input path.
type FileNotFoundError struct {
	Paths []string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", strings.Join(e.Paths, ", "))
}

func (e *FileNotFoundError) Unwrap() error {
	return ErrFileNotFound
}

// InputError describes an invalid run parameter.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
