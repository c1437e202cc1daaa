package datatype

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

type celsius float64

type label string

func TestScalarCell(t *testing.T) {
	assert.Equal(t, Number(42), ScalarCell(42))
	assert.Equal(t, Number(7), ScalarCell(uint8(7)))
	assert.Equal(t, Number(1.5), ScalarCell(float32(1.5)))
	assert.Equal(t, Number(-3), ScalarCell(int64(-3)))
	assert.Equal(t, String("Mon"), ScalarCell("Mon"))
	assert.Equal(t, Cell(Null), ScalarCell(Null))
	assert.Equal(t, Number(21.5), ScalarCell(celsius(21.5)))
	assert.Equal(t, String("north"), ScalarCell(label("north")))
	// Number and String are scalars too, and pass through unchanged.
	assert.Equal(t, Number(2), ScalarCell(Number(2)))
	assert.Equal(t, String("x"), ScalarCell(String("x")))
}

func TestPoint(t *testing.T) {
	pair := NewPair(1, 2)
	item := NewItem(5).Name("five")
	candle := NewCandle(1, 2, 0.5, 3)

	assert.Equal(t, DataPoint(Number(3)), Point(3))
	assert.Equal(t, DataPoint(pair), Point(pair))
	assert.Equal(t, DataPoint(item), Point(item))
	assert.Equal(t, DataPoint(candle), Point(candle))
}

func TestNumberEncoding(t *testing.T) {
	assert.Equal(t, "12", marshal(t, Number(12)))
	assert.Equal(t, "0.25", marshal(t, Number(0.25)))
	assert.Equal(t, "null", marshal(t, Number(math.NaN())))
	assert.Equal(t, "null", marshal(t, Number(math.Inf(1))))
	assert.Equal(t, "null", marshal(t, Number(math.Inf(-1))))
}

func TestNullEncoding(t *testing.T) {
	assert.Equal(t, "null", marshal(t, Null))
	assert.Equal(t, `[1,null,"x"]`, marshal(t, DataFrame{Number(1), Null, String("x")}))
}

func TestPairEncoding(t *testing.T) {
	assert.Equal(t, `[1,2.5]`, marshal(t, NewPair(1, 2.5)))
	assert.Equal(t, `["Mon",120]`, marshal(t, NewPair("Mon", 120)))
	assert.Equal(t, `[null,3]`, marshal(t, Pair{Y: Number(3)}))
	assert.Equal(t, `[null,null]`, marshal(t, Pair{}))
}

func TestItemEncoding(t *testing.T) {
	assert.Equal(t, `{"value":1048,"name":"Search Engine"}`, marshal(t, NewItem(1048).Name("Search Engine")))
	assert.Equal(t, `{"value":[3,4]}`, marshal(t, NewItem(NewPair(3, 4))))
	assert.Equal(t,
		`{"value":10,"itemStyle":{"color":"#c23531"}}`,
		marshal(t, NewItem(10).ItemStyle(element.ItemStyleFromColor("#c23531"))))
}

func TestItemIsValue(t *testing.T) {
	base := NewItem(1)
	named := base.Name("one")

	assert.Equal(t, `{"value":1}`, marshal(t, base))
	assert.Equal(t, `{"value":1,"name":"one"}`, marshal(t, named))
}

func TestCandle(t *testing.T) {
	c := NewCandle(20, 34, 10, 38)
	assert.Equal(t, 20.0, c.Open())
	assert.Equal(t, 34.0, c.Close())
	assert.Equal(t, 10.0, c.Low())
	assert.Equal(t, 38.0, c.High())
	assert.Equal(t, `[20,34,10,38]`, marshal(t, c))
	assert.Equal(t, `[1,null,0,2]`, marshal(t, NewCandle(1, math.NaN(), 0, 2)))
}

func TestFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame DataFrame
		want  string
	}{
		{"ints", Frame(300, 280, 250), `[300,280,250]`},
		{"floats", Frame(1.5, -2.25), `[1.5,-2.25]`},
		{"strings", Frame("a", "b"), `["a","b"]`},
		{"named numeric type", Frame(celsius(1), celsius(2)), `[1,2]`},
		{"pairs", Frame(NewPair(1, 2), NewPair(3, 4)), `[[1,2],[3,4]]`},
		{"candles", Candles([4]float64{1, 2, 0, 3}), `[[1,2,0,3]]`},
		{"pair rows", Pairs([2]float64{10, 8.04}), `[[10,8.04]]`},
		{"items", Frame(NewItem(1).Name("a"), NewItem(2)), `[{"value":1,"name":"a"},{"value":2}]`},
		{"mixed", DataFrame{String("Mon"), Number(120), Null}, `["Mon",120,null]`},
		{"empty", Frame[int](), `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, marshal(t, tt.frame))
		})
	}
}

func TestFramePreservesOrder(t *testing.T) {
	in := []int{5, 3, 9, 1, 7}
	frame := Frame(in...)
	require.Len(t, frame, len(in))
	for i, v := range in {
		assert.Equal(t, DataPoint(Number(v)), frame[i])
	}
}

func TestClone(t *testing.T) {
	assert.Nil(t, DataFrame(nil).Clone())
	assert.Nil(t, DataFrame{}.Clone())

	orig := Frame(1, 2, 3)
	clone := orig.Clone()
	clone[0] = Number(99)
	assert.Equal(t, DataPoint(Number(1)), orig[0])
}
