// Package workbook reads chart data out of xlsx files: plain data tables on
// sheets, and the chart parts Excel embeds in the package.
package workbook

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/xuri/excelize/v2"
)

// Region is a rectangular cell range, 1-based and inclusive.
type Region struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// String renders the region in A1 notation, e.g. "A1:D10".
func (r Region) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end
}

// Rows returns the number of rows covered.
func (r Region) Rows() int {
	return r.R2 - r.R1 + 1
}

// Cols returns the number of columns covered.
func (r Region) Cols() int {
	return r.C2 - r.C1 + 1
}

// Column is one named column of a Table.
type Column struct {
	Name   string
	Values datatype.DataFrame
}

// Table is the data region of a sheet split into categories and value columns.
type Table struct {
	Sheet string
	// Region is where the table was found.
	Region Region
	// Categories come from the first column, below the header row.
	Categories []string
	// Columns are the remaining columns, named by their header cell.
	Columns []Column
}

// SeriesRef is one series of an embedded chart, as cell references.
type SeriesRef struct {
	// PlotType is the OOXML plot element holding the series; combination
	// charts mix several.
	PlotType string `json:"plot_type"`
	// Kind is the series kind PlotType maps to; empty when unsupported.
	Kind string `json:"kind,omitempty"`
	// Name is the cached series name.
	Name string `json:"name"`
	// NameRange is the reference the name is read from.
	NameRange string `json:"name_range,omitempty"`
	// CategoryRange is the category (or scatter x) reference.
	CategoryRange string `json:"category_range,omitempty"`
	// ValueRange is the value (or scatter y) reference.
	ValueRange string `json:"value_range,omitempty"`
}

// ChartDef is an embedded chart as read from the xlsx package.
type ChartDef struct {
	// Sheet is the sheet the chart is drawn on.
	Sheet string `json:"sheet"`
	// Name is the drawing object name, e.g. "Chart 1".
	Name string `json:"name"`
	// PlotType is the first OOXML plot element, e.g. "lineChart".
	PlotType string `json:"plot_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is [min, max] when both are fixed.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// Series lists the chart series in plot order.
	Series []SeriesRef `json:"series"`
}
