package charming

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoCharts indicates the workbook yielded no chart at all.
var ErrNoCharts = errors.New("no charts found")

// ErrUnsupportedChart indicates an embedded chart type with no series kind.
var ErrUnsupportedChart = errors.New("unsupported chart type")

// ImportError represents a sheet or chart that could not be imported.
type ImportError struct {
	Sheet     string
	Component string // "table" or "chart"
	Name      string // chart name, empty for tables
	Err       error
}

func (e *ImportError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("import error in sheet %q (%s %q): %v", e.Sheet, e.Component, e.Name, e.Err)
	}
	return fmt.Sprintf("import error in sheet %q (%s): %v", e.Sheet, e.Component, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(sheet, component, name string, err error) *ImportError {
	return &ImportError{
		Sheet:     sheet,
		Component: component,
		Name:      name,
		Err:       err,
	}
}
