package charming

import (
	"github.com/rs/zerolog"
	"github.com/ukaji3/charming-go/pkg/charming/series"
	"github.com/ukaji3/charming-go/pkg/charming/workbook"
)

// Mode selects what Import reads from a workbook.
type Mode string

const (
	// ModeTable builds one chart per sheet from its data table.
	ModeTable Mode = "table"
	// ModeCharts rebuilds the charts embedded in the workbook.
	ModeCharts Mode = "charts"
)

// ImportOptions configures Import.
type ImportOptions struct {
	// Mode specifies the import mode (table, charts).
	Mode Mode
	// Kind is the series kind used in table mode. Defaults to "line".
	Kind string
	// Sheet restricts the import to one sheet when set.
	Sheet string
	// Table tunes data region detection in table mode.
	// If nil, workbook.DefaultTableParams() is used.
	Table *workbook.TableDetectionParams
	// Logger receives warnings about skipped sheets and charts.
	// If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultImportOptions returns default import options.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		Mode: ModeTable,
		Kind: series.TypeLine,
	}
}

func (o ImportOptions) kind() string {
	if o.Kind == "" {
		return series.TypeLine
	}
	return o.Kind
}

func (o ImportOptions) tableParams() workbook.TableDetectionParams {
	if o.Table != nil {
		return *o.Table
	}
	return workbook.DefaultTableParams()
}

func (o ImportOptions) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}

// includesSheet reports whether sheet passes the Sheet filter.
func (o ImportOptions) includesSheet(sheet string) bool {
	return o.Sheet == "" || o.Sheet == sheet
}
