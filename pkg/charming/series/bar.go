package series

import (
	"encoding/json"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Bar is a bar (column) series.
type Bar struct {
	opts barOptions
}

type barOptions struct {
	Type             string                    `json:"type"`
	ID               *string                   `json:"id,omitempty"`
	Name             *string                   `json:"name,omitempty"`
	ColorBy          *element.ColorBy          `json:"colorBy,omitempty"`
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	Stack            *string                   `json:"stack,omitempty"`
	BarWidth         *string                   `json:"barWidth,omitempty"`
	BarGap           *string                   `json:"barGap,omitempty"`
	ShowBackground   *bool                     `json:"showBackground,omitempty"`
	ItemStyle        *element.ItemStyle        `json:"itemStyle,omitempty"`
	Label            *element.Label            `json:"label,omitempty"`
	MarkLine         *element.MarkLine         `json:"markLine,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// NewBar returns a bar series with no options and no data.
func NewBar() Bar {
	return Bar{}
}

// Type returns "bar".
func (Bar) Type() string { return TypeBar }
func (Bar) isSeries()    {}

// ID sets the id used to refer to the bar in option merges.
func (b Bar) ID(id string) Bar {
	b.opts.ID = &id
	return b
}

// Name sets the series name shown in the legend and tooltip.
func (b Bar) Name(name string) Bar {
	b.opts.Name = &name
	return b
}

// ColorBy picks whether the palette is applied per series or per data item.
func (b Bar) ColorBy(c element.ColorBy) Bar {
	b.opts.ColorBy = &c
	return b
}

// CoordinateSystem sets the coordinate system the series is drawn in.
func (b Bar) CoordinateSystem(c element.CoordinateSystem) Bar {
	b.opts.CoordinateSystem = &c
	return b
}

// XAxisIndex selects the x axis when the chart has several.
func (b Bar) XAxisIndex(i int) Bar {
	b.opts.XAxisIndex = &i
	return b
}

// YAxisIndex selects the y axis when the chart has several.
func (b Bar) YAxisIndex(i int) Bar {
	b.opts.YAxisIndex = &i
	return b
}

// Stack stacks this series on the others sharing group.
func (b Bar) Stack(group string) Bar {
	b.opts.Stack = &group
	return b
}

// BarWidth is a pixel value ("20") or a percentage of the band ("60%").
func (b Bar) BarWidth(width string) Bar {
	b.opts.BarWidth = &width
	return b
}

// BarGap is the gap between bars of different series in one band, e.g. "30%".
func (b Bar) BarGap(gap string) Bar {
	b.opts.BarGap = &gap
	return b
}

// ShowBackground draws a shaded background behind each bar.
func (b Bar) ShowBackground(show bool) Bar {
	b.opts.ShowBackground = &show
	return b
}

// ItemStyle styles the bars.
func (b Bar) ItemStyle(style element.ItemStyle) Bar {
	b.opts.ItemStyle = &style
	return b
}

// Label configures the value labels on the bars.
func (b Bar) Label(label element.Label) Bar {
	b.opts.Label = &label
	return b
}

// MarkLine adds reference lines such as the max or average value.
func (b Bar) MarkLine(line element.MarkLine) Bar {
	b.opts.MarkLine = &line
	return b
}

// Data replaces the dataset.
func (b Bar) Data(data datatype.DataFrame) Bar {
	b.opts.Data = data.Clone()
	return b
}

// MarshalJSON implements json.Marshaler.
func (b Bar) MarshalJSON() ([]byte, error) {
	o := b.opts
	o.Type = TypeBar
	return json.Marshal(o)
}
