package workbook

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads the data region of a sheet. The first row of the region is
// the header, the first column holds the categories and every other column
// becomes one named Column.
// Header and category cells keep their formatted text; value cells are read
// unformatted, so "1,234.50" or "25%" still yield numbers.
// When the sheet defines a print area, only its first area is searched.
// It returns nil without error when the sheet holds no usable table.
func ReadTable(f *excelize.File, sheetName string, params TableDetectionParams) (*Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	rawRows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if areas := PrintAreas(f)[sheetName]; len(areas) > 0 {
		rows = clipRows(rows, areas[0])
		rawRows = clipRows(rawRows, areas[0])
	}

	region, ok := DetectRegion(rows, params)
	if !ok {
		return nil, nil
	}

	cell := func(rows [][]string, r, c int) string {
		// r and c are 1-based; GetRows trims trailing empty cells.
		if r-1 >= len(rows) || c-1 >= len(rows[r-1]) {
			return ""
		}
		return strings.TrimSpace(rows[r-1][c-1])
	}

	table := &Table{Sheet: sheetName, Region: region}
	for r := region.R1 + 1; r <= region.R2; r++ {
		table.Categories = append(table.Categories, cell(rows, r, region.C1))
	}

	for c := region.C1 + 1; c <= region.C2; c++ {
		name := cell(rows, region.R1, c)
		if name == "" {
			name = fmt.Sprintf("Series %d", c-region.C1)
		}
		values := make(datatype.DataFrame, 0, region.Rows()-1)
		for r := region.R1 + 1; r <= region.R2; r++ {
			values = append(values, ParseCell(cell(rawRows, r, c)))
		}
		table.Columns = append(table.Columns, Column{Name: name, Values: values})
	}

	return table, nil
}

// ParseCell converts the text of a cell into a data point.
// Numbers become Number, empty text becomes Null, anything else String.
func ParseCell(s string) datatype.Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return datatype.Null
	}
	// "NaN" and "Inf" parse as floats but are labels in a sheet.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return datatype.Number(f)
	}
	return datatype.String(s)
}
