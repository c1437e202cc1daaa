// Package series defines the chart kinds a document can hold. The set is
// closed: every kind is a type in this package and carries a fixed wire
// discriminator.
package series

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
)

// Wire discriminators.
const (
	TypeLine        = "line"
	TypeBar         = "bar"
	TypeCandlestick = "candlestick"
	TypeScatter     = "scatter"
	TypePie         = "pie"
)

// ErrUnknownKind is returned by New for a kind with no series type.
var ErrUnknownKind = errors.New("unknown series kind")

// Series is one chart kind with its options and dataset.
type Series interface {
	json.Marshaler
	// Type returns the wire discriminator, e.g. "line".
	Type() string
	isSeries()
}

var (
	_ Series = Line{}
	_ Series = Bar{}
	_ Series = Candlestick{}
	_ Series = Scatter{}
	_ Series = Pie{}
)

var kinds = map[string]func(name string, data datatype.DataFrame) Series{
	TypeLine: func(name string, data datatype.DataFrame) Series {
		return NewLine().Name(name).Data(data)
	},
	TypeBar: func(name string, data datatype.DataFrame) Series {
		return NewBar().Name(name).Data(data)
	},
	TypeCandlestick: func(name string, data datatype.DataFrame) Series {
		return NewCandlestick().Name(name).Data(data)
	},
	TypeScatter: func(name string, data datatype.DataFrame) Series {
		return NewScatter().Name(name).Data(data)
	},
	TypePie: func(name string, data datatype.DataFrame) Series {
		return NewPie().Name(name).Data(data)
	},
}

// New builds a series of the given kind with only its name and data set.
func New(kind, name string, data datatype.DataFrame) (Series, error) {
	build, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return build(name, data), nil
}

// Kinds returns the supported discriminators, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
