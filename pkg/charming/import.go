package charming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/charming-go/pkg/charming/series"
	"github.com/ukaji3/charming-go/pkg/charming/workbook"
	"github.com/xuri/excelize/v2"
)

// Workbook is the result of importing an xlsx file.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Charts lists the imported charts in sheet order.
	Charts []SheetChart `json:"charts"`
}

// SheetChart is one imported chart document.
type SheetChart struct {
	// Sheet is the sheet the chart was built from.
	Sheet string `json:"sheet"`
	// Name is the embedded chart name; empty in table mode.
	Name string `json:"name,omitempty"`
	// Chart is the renderer document.
	Chart Chart `json:"option"`
}

// Import builds chart documents from an xlsx file.
// Sheets and charts that cannot be converted are logged and skipped; Import
// fails only when the file is unreadable or nothing could be converted.
func Import(path string, opts ImportOptions) (*Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	bookName := filepath.Base(path)
	log := opts.logger().With().Str("book", bookName).Logger()

	wb := &Workbook{BookName: bookName}
	var failures []error

	switch opts.Mode {
	case ModeCharts:
		defs, err := workbook.ExtractCharts(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}

		for _, def := range defs {
			if !opts.includesSheet(def.Sheet) {
				continue
			}
			chart, err := ChartFromDef(f, def)
			if err != nil {
				ie := NewImportError(def.Sheet, "chart", def.Name, err)
				log.Warn().Err(ie).Msg("skipping chart")
				failures = append(failures, ie)
				continue
			}
			log.Debug().Str("sheet", def.Sheet).Str("chart", def.Name).Int("series", chart.SeriesLen()).Msg("imported chart")
			wb.Charts = append(wb.Charts, SheetChart{Sheet: def.Sheet, Name: def.Name, Chart: chart})
		}

	case ModeTable, "":
		kind := opts.kind()
		if _, err := series.New(kind, "", nil); err != nil {
			return nil, err
		}

		for _, sheet := range f.GetSheetList() {
			if !opts.includesSheet(sheet) {
				continue
			}
			table, err := workbook.ReadTable(f, sheet, opts.tableParams())
			if err != nil {
				ie := NewImportError(sheet, "table", "", err)
				log.Warn().Err(ie).Msg("skipping sheet")
				failures = append(failures, ie)
				continue
			}
			if table == nil {
				log.Debug().Str("sheet", sheet).Msg("no data table")
				continue
			}
			chart, err := ChartFromTable(table, kind)
			if err != nil {
				ie := NewImportError(sheet, "table", "", err)
				log.Warn().Err(ie).Msg("skipping sheet")
				failures = append(failures, ie)
				continue
			}
			log.Debug().Str("sheet", sheet).Str("region", table.Region.String()).Int("series", chart.SeriesLen()).Msg("imported table")
			wb.Charts = append(wb.Charts, SheetChart{Sheet: sheet, Chart: chart})
		}

	default:
		return nil, fmt.Errorf("invalid import mode: %q", opts.Mode)
	}

	if len(wb.Charts) == 0 {
		return nil, errors.Join(append([]error{ErrNoCharts}, failures...)...)
	}
	return wb, nil
}
