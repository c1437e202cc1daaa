// Package charming builds chart documents for an ECharts-compatible renderer.
//
// A Chart is assembled with chained builder calls and serialized once:
//
//	chart := charming.NewChart().
//		XAxis(component.NewAxis().Type(element.AxisTypeCategory).Data("Mon", "Tue", "Wed")).
//		YAxis(component.NewAxis().Type(element.AxisTypeValue)).
//		Series(series.NewLine().Name("Visits").Data(datatype.Frame(820, 932, 901)))
//	data, err := output.ToJSON(chart, false)
//
// Options that are never set are absent from the output, so the renderer
// applies its own defaults.
package charming

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/element"
	"github.com/ukaji3/charming-go/pkg/charming/output"
	"github.com/ukaji3/charming-go/pkg/charming/series"
)

// Chart is the root document: shared components plus an ordered list of series.
type Chart struct {
	opts chartOptions
}

type chartOptions struct {
	Title           oneOrMany[component.Title]     `json:"title,omitempty"`
	Tooltip         *component.Tooltip             `json:"tooltip,omitempty"`
	Legend          *component.Legend              `json:"legend,omitempty"`
	Toolbox         *component.Toolbox             `json:"toolbox,omitempty"`
	Grid            oneOrMany[component.Grid]      `json:"grid,omitempty"`
	XAxis           oneOrMany[component.Axis]      `json:"xAxis,omitempty"`
	YAxis           oneOrMany[component.Axis]      `json:"yAxis,omitempty"`
	DataZoom        []component.DataZoom           `json:"dataZoom,omitempty"`
	VisualMap       oneOrMany[component.VisualMap] `json:"visualMap,omitempty"`
	Color           []element.Color                `json:"color,omitempty"`
	BackgroundColor *element.Color                 `json:"backgroundColor,omitempty"`
	Animation       *bool                          `json:"animation,omitempty"`
	Series          []series.Series                `json:"series,omitempty"`
}

// oneOrMany encodes a single element as an object and several as an array.
type oneOrMany[T any] []T

// MarshalJSON implements json.Marshaler.
func (m oneOrMany[T]) MarshalJSON() ([]byte, error) {
	if len(m) == 1 {
		return json.Marshal(m[0])
	}
	return json.Marshal([]T(m))
}

// NewChart returns an empty document.
func NewChart() Chart {
	return Chart{}
}

// appendClipped appends without writing into a backing array another Chart
// value may share.
func appendClipped[S ~[]E, E any](s S, v E) S {
	return append(slices.Clip(s), v)
}

// Title adds a title. Several titles are allowed.
func (c Chart) Title(t component.Title) Chart {
	c.opts.Title = appendClipped(c.opts.Title, t)
	return c
}

// Tooltip sets the tooltip shown on hover.
func (c Chart) Tooltip(t component.Tooltip) Chart {
	c.opts.Tooltip = &t
	return c
}

// Legend sets the legend.
func (c Chart) Legend(l component.Legend) Chart {
	c.opts.Legend = &l
	return c
}

// Toolbox sets the toolbox.
func (c Chart) Toolbox(t component.Toolbox) Chart {
	c.opts.Toolbox = &t
	return c
}

// Grid adds a grid; series and axes refer to grids by position.
func (c Chart) Grid(g component.Grid) Chart {
	c.opts.Grid = appendClipped(c.opts.Grid, g)
	return c
}

// XAxis adds an x axis; series refer to axes by position.
func (c Chart) XAxis(a component.Axis) Chart {
	c.opts.XAxis = appendClipped(c.opts.XAxis, a)
	return c
}

// YAxis adds a y axis; series refer to axes by position.
func (c Chart) YAxis(a component.Axis) Chart {
	c.opts.YAxis = appendClipped(c.opts.YAxis, a)
	return c
}

// DataZoom adds a zoom control; several encode as an array.
func (c Chart) DataZoom(z component.DataZoom) Chart {
	c.opts.DataZoom = appendClipped(c.opts.DataZoom, z)
	return c
}

// VisualMap adds a visual map; several encode as an array.
func (c Chart) VisualMap(v component.VisualMap) Chart {
	c.opts.VisualMap = appendClipped(c.opts.VisualMap, v)
	return c
}

// Color replaces the series palette.
func (c Chart) Color(palette ...element.Color) Chart {
	c.opts.Color = slices.Clone(palette)
	return c
}

// BackgroundColor sets the canvas background.
func (c Chart) BackgroundColor(bg element.Color) Chart {
	c.opts.BackgroundColor = &bg
	return c
}

// Animation toggles the renderer's animations.
func (c Chart) Animation(on bool) Chart {
	c.opts.Animation = &on
	return c
}

// Series appends a series. Series are drawn and listed in insertion order.
func (c Chart) Series(s series.Series) Chart {
	c.opts.Series = appendClipped(c.opts.Series, s)
	return c
}

// SeriesLen returns the number of series in the document.
func (c Chart) SeriesLen() int {
	return len(c.opts.Series)
}

// MarshalJSON implements json.Marshaler.
func (c Chart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.opts)
}

// String returns the indented JSON document. Every option type is
// representable, so an encoding failure means a broken record type and panics.
func (c Chart) String() string {
	data, err := output.ToJSON(c, true)
	if err != nil {
		panic(fmt.Sprintf("charming: chart is not serializable: %v", err))
	}
	return string(data)
}
