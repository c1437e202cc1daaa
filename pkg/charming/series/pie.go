package series

import (
	"encoding/json"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Pie is a pie (or doughnut) series. Its data points are usually named Items.
type Pie struct {
	opts pieOptions
}

type pieOptions struct {
	Type      string             `json:"type"`
	ID        *string            `json:"id,omitempty"`
	Name      *string            `json:"name,omitempty"`
	Radius    []string           `json:"radius,omitempty"`
	Center    []string           `json:"center,omitempty"`
	RoseType  *string            `json:"roseType,omitempty"`
	ItemStyle *element.ItemStyle `json:"itemStyle,omitempty"`
	Label     *element.Label     `json:"label,omitempty"`
	Data      datatype.DataFrame `json:"data,omitempty"`
}

// NewPie returns a pie series with no options and no data.
func NewPie() Pie {
	return Pie{}
}

// Type returns "pie".
func (Pie) Type() string { return TypePie }
func (Pie) isSeries()    {}

// ID sets the id used to refer to the pie in option merges.
func (p Pie) ID(id string) Pie {
	p.opts.ID = &id
	return p
}

// Name sets the series name shown in the tooltip.
func (p Pie) Name(name string) Pie {
	p.opts.Name = &name
	return p
}

// Radius sets the inner and outer radius; an inner radius above 0 makes a doughnut.
func (p Pie) Radius(inner, outer string) Pie {
	p.opts.Radius = []string{inner, outer}
	return p
}

// Center positions the pie; x and y are pixels or percentages of the container.
func (p Pie) Center(x, y string) Pie {
	p.opts.Center = []string{x, y}
	return p
}

// RoseType is "radius" or "area" for a Nightingale chart.
func (p Pie) RoseType(rose string) Pie {
	p.opts.RoseType = &rose
	return p
}

// ItemStyle styles the slices.
func (p Pie) ItemStyle(style element.ItemStyle) Pie {
	p.opts.ItemStyle = &style
	return p
}

// Label configures the slice labels.
func (p Pie) Label(label element.Label) Pie {
	p.opts.Label = &label
	return p
}

// Data replaces the dataset.
func (p Pie) Data(data datatype.DataFrame) Pie {
	p.opts.Data = data.Clone()
	return p
}

// MarshalJSON implements json.Marshaler.
func (p Pie) MarshalJSON() ([]byte, error) {
	o := p.opts
	o.Type = TypePie
	return json.Marshal(o)
}
