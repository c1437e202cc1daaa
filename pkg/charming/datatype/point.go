package datatype

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Scalar lists the literal shapes accepted where a Cell is expected.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string | NullValue
}

// Convertible lists every shape accepted where a DataPoint is expected.
type Convertible interface {
	Scalar | Pair | Item | Candle
}

// Candle is one OHLC entry, stored in the renderer's order: open, close, low, high.
type Candle [4]float64

// NewCandle builds a Candle from its four prices.
func NewCandle(open, close, low, high float64) Candle {
	return Candle{open, close, low, high}
}

func (Candle) isDataPoint() {}

// Open returns the opening price.
func (c Candle) Open() float64 { return c[0] }

// Close returns the closing price.
func (c Candle) Close() float64 { return c[1] }

// Low returns the lowest price.
func (c Candle) Low() float64 { return c[2] }

// High returns the highest price.
func (c Candle) High() float64 { return c[3] }

// MarshalJSON implements json.Marshaler.
func (c Candle) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]Number{Number(c[0]), Number(c[1]), Number(c[2]), Number(c[3])})
}

// ScalarCell converts a scalar literal into a Cell. Integers widen to float64.
func ScalarCell[T Scalar](v T) Cell {
	if c, ok := any(v).(Cell); ok {
		return c
	}
	return literalCell(v)
}

// Point converts any Convertible value into a DataPoint.
func Point[T Convertible](v T) DataPoint {
	if p, ok := any(v).(DataPoint); ok {
		return p
	}
	return literalCell(v)
}

// literalCell handles the numeric and string kinds, including named types
// such as `type Celsius float64` that carry no DataPoint methods.
func literalCell(v any) Cell {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return String(rv.String())
	}
	// The type constraints make this unreachable.
	panic(fmt.Sprintf("datatype: no conversion for %T", v))
}
