package series

import (
	"encoding/json"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Scatter is a scatter (bubble) series. Its data points are usually Pairs.
type Scatter struct {
	opts scatterOptions
}

type scatterOptions struct {
	Type             string                    `json:"type"`
	ID               *string                   `json:"id,omitempty"`
	Name             *string                   `json:"name,omitempty"`
	ColorBy          *element.ColorBy          `json:"colorBy,omitempty"`
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	Symbol           *element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       *float64                  `json:"symbolSize,omitempty"`
	ItemStyle        *element.ItemStyle        `json:"itemStyle,omitempty"`
	Label            *element.Label            `json:"label,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// NewScatter returns a scatter series with no options and no data.
func NewScatter() Scatter {
	return Scatter{}
}

// Type returns "scatter".
func (Scatter) Type() string { return TypeScatter }
func (Scatter) isSeries()    {}

// ID sets the id used to refer to the scatter in option merges.
func (s Scatter) ID(id string) Scatter {
	s.opts.ID = &id
	return s
}

// Name sets the series name shown in the legend and tooltip.
func (s Scatter) Name(name string) Scatter {
	s.opts.Name = &name
	return s
}

// ColorBy picks whether the palette is applied per series or per data item.
func (s Scatter) ColorBy(c element.ColorBy) Scatter {
	s.opts.ColorBy = &c
	return s
}

// CoordinateSystem sets the coordinate system the series is drawn in.
func (s Scatter) CoordinateSystem(c element.CoordinateSystem) Scatter {
	s.opts.CoordinateSystem = &c
	return s
}

// XAxisIndex selects the x axis when the chart has several.
func (s Scatter) XAxisIndex(i int) Scatter {
	s.opts.XAxisIndex = &i
	return s
}

// YAxisIndex selects the y axis when the chart has several.
func (s Scatter) YAxisIndex(i int) Scatter {
	s.opts.YAxisIndex = &i
	return s
}

// Symbol sets the marker shape drawn at each point.
func (s Scatter) Symbol(sym element.Symbol) Scatter {
	s.opts.Symbol = &sym
	return s
}

// SymbolSize sets the symbol size in pixels.
func (s Scatter) SymbolSize(size float64) Scatter {
	s.opts.SymbolSize = &size
	return s
}

// ItemStyle styles the points.
func (s Scatter) ItemStyle(style element.ItemStyle) Scatter {
	s.opts.ItemStyle = &style
	return s
}

// Label configures the labels drawn next to the points.
func (s Scatter) Label(label element.Label) Scatter {
	s.opts.Label = &label
	return s
}

// Data replaces the dataset.
func (s Scatter) Data(data datatype.DataFrame) Scatter {
	s.opts.Data = data.Clone()
	return s
}

// MarshalJSON implements json.Marshaler.
func (s Scatter) MarshalJSON() ([]byte, error) {
	o := s.opts
	o.Type = TypeScatter
	return json.Marshal(o)
}
