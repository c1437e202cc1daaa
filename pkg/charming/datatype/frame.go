package datatype

// DataFrame is the ordered dataset of one series. Order is the category order
// for series that index points implicitly.
type DataFrame []DataPoint

// Frame converts values into a DataFrame, preserving order.
// Mixed shapes can be written as a DataFrame literal instead:
//
//	datatype.DataFrame{datatype.String("Mon"), datatype.Number(120), datatype.Null}
func Frame[T Convertible](values ...T) DataFrame {
	frame := make(DataFrame, 0, len(values))
	for _, v := range values {
		frame = append(frame, Point(v))
	}
	return frame
}

// Candles converts OHLC rows (open, close, low, high) into a DataFrame.
func Candles(rows ...[4]float64) DataFrame {
	frame := make(DataFrame, 0, len(rows))
	for _, r := range rows {
		frame = append(frame, Candle(r))
	}
	return frame
}

// Pairs converts [x, y] rows into a DataFrame of numeric Pairs.
func Pairs(rows ...[2]float64) DataFrame {
	frame := make(DataFrame, 0, len(rows))
	for _, r := range rows {
		frame = append(frame, Pair{X: Number(r[0]), Y: Number(r[1])})
	}
	return frame
}

// Clone returns a copy that does not share storage with f.
// A nil or empty frame stays empty.
func (f DataFrame) Clone() DataFrame {
	if len(f) == 0 {
		return nil
	}
	out := make(DataFrame, len(f))
	copy(out, f)
	return out
}
