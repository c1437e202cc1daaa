package component

import (
	"encoding/json"
	"slices"

	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Legend lists the series of a chart and lets the viewer toggle them.
type Legend struct {
	opts legendOptions
}

type legendOptions struct {
	Show   *bool           `json:"show,omitempty"`
	Type   *string         `json:"type,omitempty"`
	Orient *element.Orient `json:"orient,omitempty"`
	Left   *string         `json:"left,omitempty"`
	Top    *string         `json:"top,omitempty"`
	Bottom *string         `json:"bottom,omitempty"`
	Data   []string        `json:"data,omitempty"`
}

// NewLegend returns a legend with no options set.
func NewLegend() Legend {
	return Legend{}
}

// Show toggles the legend.
func (l Legend) Show(show bool) Legend {
	l.opts.Show = &show
	return l
}

// Type is "plain" or "scroll".
func (l Legend) Type(t string) Legend {
	l.opts.Type = &t
	return l
}

// Orient lays the items out horizontally or vertically.
func (l Legend) Orient(orient element.Orient) Legend {
	l.opts.Orient = &orient
	return l
}

// Left sets the distance from the left edge, in pixels or as a percentage.
func (l Legend) Left(left string) Legend {
	l.opts.Left = &left
	return l
}

// Top sets the distance from the top edge, in pixels or as a percentage.
func (l Legend) Top(top string) Legend {
	l.opts.Top = &top
	return l
}

// Bottom sets the distance from the bottom edge.
func (l Legend) Bottom(bottom string) Legend {
	l.opts.Bottom = &bottom
	return l
}

// Data restricts and orders the legend entries by series name.
func (l Legend) Data(names ...string) Legend {
	l.opts.Data = slices.Clone(names)
	return l
}

// MarshalJSON implements json.Marshaler.
func (l Legend) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.opts)
}

// Grid is the drawing area of cartesian charts.
type Grid struct {
	opts gridOptions
}

type gridOptions struct {
	Show         *bool   `json:"show,omitempty"`
	Left         *string `json:"left,omitempty"`
	Right        *string `json:"right,omitempty"`
	Top          *string `json:"top,omitempty"`
	Bottom       *string `json:"bottom,omitempty"`
	Height       *string `json:"height,omitempty"`
	ContainLabel *bool   `json:"containLabel,omitempty"`
}

// NewGrid returns a grid with no options set.
func NewGrid() Grid {
	return Grid{}
}

// Show draws the grid border and background.
func (g Grid) Show(show bool) Grid {
	g.opts.Show = &show
	return g
}

// Left sets the distance from the left edge, in pixels or as a percentage.
func (g Grid) Left(left string) Grid {
	g.opts.Left = &left
	return g
}

// Right sets the distance from the right edge.
func (g Grid) Right(right string) Grid {
	g.opts.Right = &right
	return g
}

// Top sets the distance from the top edge, in pixels or as a percentage.
func (g Grid) Top(top string) Grid {
	g.opts.Top = &top
	return g
}

// Bottom sets the distance from the bottom edge.
func (g Grid) Bottom(bottom string) Grid {
	g.opts.Bottom = &bottom
	return g
}

// Height sets the plot height.
func (g Grid) Height(height string) Grid {
	g.opts.Height = &height
	return g
}

// ContainLabel keeps the axis labels inside the grid bounds.
func (g Grid) ContainLabel(contain bool) Grid {
	g.opts.ContainLabel = &contain
	return g
}

// MarshalJSON implements json.Marshaler.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.opts)
}
