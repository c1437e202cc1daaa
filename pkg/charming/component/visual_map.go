package component

import (
	"encoding/json"
	"slices"

	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// VisualMap maps data values to visual channels such as color.
type VisualMap struct {
	opts visualMapOptions
}

type visualMapOptions struct {
	Type        *string         `json:"type,omitempty"`
	Show        *bool           `json:"show,omitempty"`
	Dimension   *int            `json:"dimension,omitempty"`
	SeriesIndex *int            `json:"seriesIndex,omitempty"`
	Min         *float64        `json:"min,omitempty"`
	Max         *float64        `json:"max,omitempty"`
	Pieces      []Piece         `json:"pieces,omitempty"`
	InRange     *visualMapRange `json:"inRange,omitempty"`
	OutOfRange  *visualMapRange `json:"outOfRange,omitempty"`
}

type visualMapRange struct {
	Color []element.Color `json:"color,omitempty"`
}

// NewVisualMap returns a visual map with no options set.
func NewVisualMap() VisualMap {
	return VisualMap{}
}

// Type is "continuous" or "piecewise".
func (v VisualMap) Type(t string) VisualMap {
	v.opts.Type = &t
	return v
}

// Show toggles the visual map control; the mapping applies either way.
func (v VisualMap) Show(show bool) VisualMap {
	v.opts.Show = &show
	return v
}

// Dimension is the index of the data dimension that is mapped.
func (v VisualMap) Dimension(d int) VisualMap {
	v.opts.Dimension = &d
	return v
}

// SeriesIndex limits the mapping to one series.
func (v VisualMap) SeriesIndex(i int) VisualMap {
	v.opts.SeriesIndex = &i
	return v
}

// Min sets the lower bound of a continuous map.
func (v VisualMap) Min(min float64) VisualMap {
	v.opts.Min = &min
	return v
}

// Max sets the upper bound of a continuous map.
func (v VisualMap) Max(max float64) VisualMap {
	v.opts.Max = &max
	return v
}

// Pieces sets the intervals of a piecewise visual map, in order.
func (v VisualMap) Pieces(pieces ...Piece) VisualMap {
	v.opts.Pieces = slices.Clone(pieces)
	return v
}

// InRange sets the color ramp for values inside [min, max].
func (v VisualMap) InRange(colors ...element.Color) VisualMap {
	v.opts.InRange = &visualMapRange{Color: slices.Clone(colors)}
	return v
}

// OutOfRange sets the colors for values outside [min, max].
func (v VisualMap) OutOfRange(colors ...element.Color) VisualMap {
	v.opts.OutOfRange = &visualMapRange{Color: slices.Clone(colors)}
	return v
}

// MarshalJSON implements json.Marshaler.
func (v VisualMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.opts)
}

// Piece is one interval of a piecewise visual map. Bounds left unset are open.
type Piece struct {
	opts pieceOptions
}

type pieceOptions struct {
	Gt    *float64       `json:"gt,omitempty"`
	Gte   *float64       `json:"gte,omitempty"`
	Lt    *float64       `json:"lt,omitempty"`
	Lte   *float64       `json:"lte,omitempty"`
	Value *float64       `json:"value,omitempty"`
	Label *string        `json:"label,omitempty"`
	Color *element.Color `json:"color,omitempty"`
}

// NewPiece returns an unbounded piece.
func NewPiece() Piece {
	return Piece{}
}

// Gt sets an exclusive lower bound.
func (p Piece) Gt(v float64) Piece {
	p.opts.Gt = &v
	return p
}

// Gte sets an inclusive lower bound.
func (p Piece) Gte(v float64) Piece {
	p.opts.Gte = &v
	return p
}

// Lt sets an exclusive upper bound.
func (p Piece) Lt(v float64) Piece {
	p.opts.Lt = &v
	return p
}

// Lte sets an inclusive upper bound.
func (p Piece) Lte(v float64) Piece {
	p.opts.Lte = &v
	return p
}

// Value matches a single exact value instead of an interval.
func (p Piece) Value(v float64) Piece {
	p.opts.Value = &v
	return p
}

// Label sets the text shown for the piece in the control.
func (p Piece) Label(label string) Piece {
	p.opts.Label = &label
	return p
}

// Color sets the color of values inside the piece.
func (p Piece) Color(c element.Color) Piece {
	p.opts.Color = &c
	return p
}

// MarshalJSON implements json.Marshaler.
func (p Piece) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.opts)
}
