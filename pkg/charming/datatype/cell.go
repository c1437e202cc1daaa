// Package datatype defines the values that make up a series dataset.
package datatype

import (
	"encoding/json"
	"math"

	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// DataPoint is a single entry of a series dataset.
// The set of implementations is closed: every Cell, and Candle.
type DataPoint interface {
	isDataPoint()
}

// Cell is a scalar-or-structured value: Number, String, NullValue, Pair or Item.
type Cell interface {
	DataPoint
	isCell()
}

// Number is a numeric cell. Non-finite values encode as null.
type Number float64

func (Number) isDataPoint() {}
func (Number) isCell()      {}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// String is a text cell, typically a category.
type String string

func (String) isDataPoint() {}
func (String) isCell()      {}

// NullValue marks a missing value. Use Null.
type NullValue struct{}

// Null is the missing-value cell.
var Null = NullValue{}

func (NullValue) isDataPoint() {}
func (NullValue) isCell()      {}

// MarshalJSON implements json.Marshaler.
func (NullValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Pair is an ordered 2-tuple, e.g. an x/y coordinate.
type Pair struct {
	X Cell
	Y Cell
}

// NewPair builds a Pair from two scalar literals.
func NewPair[X, Y Scalar](x X, y Y) Pair {
	return Pair{X: ScalarCell(x), Y: ScalarCell(y)}
}

func (Pair) isDataPoint() {}
func (Pair) isCell()      {}

// MarshalJSON implements json.Marshaler.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Cell{orNull(p.X), orNull(p.Y)})
}

// Item is a value decorated with a display name and a per-point style.
type Item struct {
	opts itemOptions
}

type itemOptions struct {
	Value     DataPoint          `json:"value,omitempty"`
	Name      *string            `json:"name,omitempty"`
	ItemStyle *element.ItemStyle `json:"itemStyle,omitempty"`
}

// NewItem wraps value into an Item with no name or style.
func NewItem[T Convertible](value T) Item {
	return Item{opts: itemOptions{Value: Point(value)}}
}

func (Item) isDataPoint() {}
func (Item) isCell()      {}

// Name sets the display name of the point.
func (i Item) Name(name string) Item {
	i.opts.Name = &name
	return i
}

// ItemStyle sets the style applied to this point only.
func (i Item) ItemStyle(style element.ItemStyle) Item {
	i.opts.ItemStyle = &style
	return i
}

// MarshalJSON implements json.Marshaler.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.opts)
}

func orNull(c Cell) Cell {
	if c == nil {
		return Null
	}
	return c
}
