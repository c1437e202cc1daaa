package component

import (
	"encoding/json"
	"slices"

	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Axis is an x or y axis of a cartesian grid.
type Axis struct {
	opts axisOptions
}

type axisOptions struct {
	Show        *bool                `json:"show,omitempty"`
	Type        *element.AxisType    `json:"type,omitempty"`
	Name        *string              `json:"name,omitempty"`
	Position    *string              `json:"position,omitempty"`
	GridIndex   *int                 `json:"gridIndex,omitempty"`
	BoundaryGap *bool                `json:"boundaryGap,omitempty"`
	Min         *float64             `json:"min,omitempty"`
	Max         *float64             `json:"max,omitempty"`
	Scale       *bool                `json:"scale,omitempty"`
	AxisLabel   *element.AxisLabel   `json:"axisLabel,omitempty"`
	AxisPointer *element.AxisPointer `json:"axisPointer,omitempty"`
	SplitLine   *element.SplitLine   `json:"splitLine,omitempty"`
	Data        []string             `json:"data,omitempty"`
}

// NewAxis returns an axis with no options set.
func NewAxis() Axis {
	return Axis{}
}

// Show toggles the axis.
func (a Axis) Show(show bool) Axis {
	a.opts.Show = &show
	return a
}

// Type sets the axis type: value, category, time or log.
func (a Axis) Type(t element.AxisType) Axis {
	a.opts.Type = &t
	return a
}

// Name sets the axis title.
func (a Axis) Name(name string) Axis {
	a.opts.Name = &name
	return a
}

// Position is "top"/"bottom" for x axes and "left"/"right" for y axes.
func (a Axis) Position(position string) Axis {
	a.opts.Position = &position
	return a
}

// GridIndex places the axis in the grid at index i.
func (a Axis) GridIndex(i int) Axis {
	a.opts.GridIndex = &i
	return a
}

// BoundaryGap leaves space on both ends of a category axis when true.
func (a Axis) BoundaryGap(gap bool) Axis {
	a.opts.BoundaryGap = &gap
	return a
}

// Min fixes the lower bound.
func (a Axis) Min(min float64) Axis {
	a.opts.Min = &min
	return a
}

// Max fixes the upper bound.
func (a Axis) Max(max float64) Axis {
	a.opts.Max = &max
	return a
}

// Scale lets a value axis start away from zero.
func (a Axis) Scale(scale bool) Axis {
	a.opts.Scale = &scale
	return a
}

// AxisLabel configures the tick labels.
func (a Axis) AxisLabel(label element.AxisLabel) Axis {
	a.opts.AxisLabel = &label
	return a
}

// AxisPointer configures the pointer shown on hover.
func (a Axis) AxisPointer(pointer element.AxisPointer) Axis {
	a.opts.AxisPointer = &pointer
	return a
}

// SplitLine configures the grid lines drawn from the ticks.
func (a Axis) SplitLine(line element.SplitLine) Axis {
	a.opts.SplitLine = &line
	return a
}

// Data sets the categories of a category axis, in display order.
func (a Axis) Data(categories ...string) Axis {
	a.opts.Data = slices.Clone(categories)
	return a
}

// MarshalJSON implements json.Marshaler.
func (a Axis) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.opts)
}

// DataZoom lets the viewer zoom into a window of an axis.
type DataZoom struct {
	opts dataZoomOptions
}

type dataZoomOptions struct {
	Type       *string  `json:"type,omitempty"`
	Show       *bool    `json:"show,omitempty"`
	XAxisIndex []int    `json:"xAxisIndex,omitempty"`
	YAxisIndex []int    `json:"yAxisIndex,omitempty"`
	Start      *float64 `json:"start,omitempty"`
	End        *float64 `json:"end,omitempty"`
}

// NewDataZoom returns a zoom control with no options set.
func NewDataZoom() DataZoom {
	return DataZoom{}
}

// Type is "inside" or "slider".
func (z DataZoom) Type(t string) DataZoom {
	z.opts.Type = &t
	return z
}

// Show toggles the slider.
func (z DataZoom) Show(show bool) DataZoom {
	z.opts.Show = &show
	return z
}

// XAxisIndex lists the x axes the control zooms.
func (z DataZoom) XAxisIndex(indexes ...int) DataZoom {
	z.opts.XAxisIndex = slices.Clone(indexes)
	return z
}

// YAxisIndex lists the y axes the control zooms.
func (z DataZoom) YAxisIndex(indexes ...int) DataZoom {
	z.opts.YAxisIndex = slices.Clone(indexes)
	return z
}

// Start is the window start, in percent of the axis extent.
func (z DataZoom) Start(percent float64) DataZoom {
	z.opts.Start = &percent
	return z
}

// End is the window end, in percent of the axis extent.
func (z DataZoom) End(percent float64) DataZoom {
	z.opts.End = &percent
	return z
}

// MarshalJSON implements json.Marshaler.
func (z DataZoom) MarshalJSON() ([]byte, error) {
	return json.Marshal(z.opts)
}
