package series

import (
	"encoding/json"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Line is a line (or area) series.
type Line struct {
	opts lineOptions
}

type lineOptions struct {
	Type             string                    `json:"type"`
	ID               *string                   `json:"id,omitempty"`
	Name             *string                   `json:"name,omitempty"`
	ColorBy          *element.ColorBy          `json:"colorBy,omitempty"`
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	Symbol           *element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       *float64                  `json:"symbolSize,omitempty"`
	ShowSymbol       *bool                     `json:"showSymbol,omitempty"`
	Stack            *string                   `json:"stack,omitempty"`
	Smooth           *float64                  `json:"smooth,omitempty"`
	Step             *string                   `json:"step,omitempty"`
	LineStyle        *element.LineStyle        `json:"lineStyle,omitempty"`
	AreaStyle        *element.AreaStyle        `json:"areaStyle,omitempty"`
	ItemStyle        *element.ItemStyle        `json:"itemStyle,omitempty"`
	Label            *element.Label            `json:"label,omitempty"`
	MarkArea         *element.MarkArea         `json:"markArea,omitempty"`
	MarkLine         *element.MarkLine         `json:"markLine,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// NewLine returns a line series with no options and no data.
func NewLine() Line {
	return Line{}
}

// Type returns "line".
func (Line) Type() string { return TypeLine }
func (Line) isSeries()    {}

// ID sets the id used to refer to the line in option merges.
func (l Line) ID(id string) Line {
	l.opts.ID = &id
	return l
}

// Name sets the series name shown in the legend and tooltip.
func (l Line) Name(name string) Line {
	l.opts.Name = &name
	return l
}

// ColorBy picks whether the palette is applied per series or per data item.
func (l Line) ColorBy(c element.ColorBy) Line {
	l.opts.ColorBy = &c
	return l
}

// CoordinateSystem sets the coordinate system the series is drawn in.
func (l Line) CoordinateSystem(c element.CoordinateSystem) Line {
	l.opts.CoordinateSystem = &c
	return l
}

// XAxisIndex selects the x axis when the chart has several.
func (l Line) XAxisIndex(i int) Line {
	l.opts.XAxisIndex = &i
	return l
}

// YAxisIndex selects the y axis when the chart has several.
func (l Line) YAxisIndex(i int) Line {
	l.opts.YAxisIndex = &i
	return l
}

// Symbol sets the marker shape drawn at each point.
func (l Line) Symbol(s element.Symbol) Line {
	l.opts.Symbol = &s
	return l
}

// SymbolSize sets the symbol size in pixels.
func (l Line) SymbolSize(size float64) Line {
	l.opts.SymbolSize = &size
	return l
}

// ShowSymbol toggles the point markers.
func (l Line) ShowSymbol(show bool) Line {
	l.opts.ShowSymbol = &show
	return l
}

// Stack groups series that are stacked on top of each other.
func (l Line) Stack(group string) Line {
	l.opts.Stack = &group
	return l
}

// Smooth is the curve tension, 0 (straight) to 1.
func (l Line) Smooth(tension float64) Line {
	l.opts.Smooth = &tension
	return l
}

// Step draws a step line; position is "start", "middle" or "end".
func (l Line) Step(position string) Line {
	l.opts.Step = &position
	return l
}

// LineStyle styles the line itself.
func (l Line) LineStyle(style element.LineStyle) Line {
	l.opts.LineStyle = &style
	return l
}

// AreaStyle fills the area under the line; an empty AreaStyle uses the series color.
func (l Line) AreaStyle(style element.AreaStyle) Line {
	l.opts.AreaStyle = &style
	return l
}

// ItemStyle styles the point markers.
func (l Line) ItemStyle(style element.ItemStyle) Line {
	l.opts.ItemStyle = &style
	return l
}

// Label configures the value labels drawn at each point.
func (l Line) Label(label element.Label) Line {
	l.opts.Label = &label
	return l
}

// MarkArea highlights ranges of the plot.
func (l Line) MarkArea(area element.MarkArea) Line {
	l.opts.MarkArea = &area
	return l
}

// MarkLine adds reference lines such as the max or average value.
func (l Line) MarkLine(line element.MarkLine) Line {
	l.opts.MarkLine = &line
	return l
}

// Data replaces the dataset.
func (l Line) Data(data datatype.DataFrame) Line {
	l.opts.Data = data.Clone()
	return l
}

// MarshalJSON implements json.Marshaler.
func (l Line) MarshalJSON() ([]byte, error) {
	o := l.opts
	o.Type = TypeLine
	return json.Marshal(o)
}
