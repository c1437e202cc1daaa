package series

import (
	"encoding/json"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// CandlestickItemStyle styles candles. The plain fields apply to rising
// candles and the "0" fields to falling ones.
type CandlestickItemStyle struct {
	opts candlestickItemStyleOptions
}

type candlestickItemStyleOptions struct {
	Color           *element.Color      `json:"color,omitempty"`
	Color0          *element.Color      `json:"color0,omitempty"`
	BorderColor     *element.Color      `json:"borderColor,omitempty"`
	BorderColor0    *element.Color      `json:"borderColor0,omitempty"`
	BorderColorDoji *element.Color      `json:"borderColorDoji,omitempty"`
	BorderWidth     *float64            `json:"borderWidth,omitempty"`
	BorderRadius    *float64            `json:"borderRadius,omitempty"`
	BorderType      *element.BorderType `json:"borderType,omitempty"`
	Opacity         *float64            `json:"opacity,omitempty"`
	ShadowColor     *element.Color      `json:"shadowColor,omitempty"`
	ShadowBlur      *float64            `json:"shadowBlur,omitempty"`
	ShadowOffsetX   *float64            `json:"shadowOffsetX,omitempty"`
	ShadowOffsetY   *float64            `json:"shadowOffsetY,omitempty"`
}

// NewCandlestickItemStyle returns a style with no options set.
func NewCandlestickItemStyle() CandlestickItemStyle {
	return CandlestickItemStyle{}
}

// CandlestickItemStyleFromColor is shorthand for NewCandlestickItemStyle().Color(c).
func CandlestickItemStyleFromColor(c element.Color) CandlestickItemStyle {
	return NewCandlestickItemStyle().Color(c)
}

// Color fills rising candles.
func (s CandlestickItemStyle) Color(c element.Color) CandlestickItemStyle {
	s.opts.Color = &c
	return s
}

// Color0 fills falling candles.
func (s CandlestickItemStyle) Color0(c element.Color) CandlestickItemStyle {
	s.opts.Color0 = &c
	return s
}

// BorderColor sets the outline color of rising candles.
func (s CandlestickItemStyle) BorderColor(c element.Color) CandlestickItemStyle {
	s.opts.BorderColor = &c
	return s
}

// BorderColor0 sets the outline color of falling candles.
func (s CandlestickItemStyle) BorderColor0(c element.Color) CandlestickItemStyle {
	s.opts.BorderColor0 = &c
	return s
}

// BorderColorDoji outlines candles whose open equals close.
func (s CandlestickItemStyle) BorderColorDoji(c element.Color) CandlestickItemStyle {
	s.opts.BorderColorDoji = &c
	return s
}

// BorderWidth sets the border width in pixels.
func (s CandlestickItemStyle) BorderWidth(w float64) CandlestickItemStyle {
	s.opts.BorderWidth = &w
	return s
}

// BorderRadius rounds the corners by r pixels.
func (s CandlestickItemStyle) BorderRadius(r float64) CandlestickItemStyle {
	s.opts.BorderRadius = &r
	return s
}

// BorderType sets the dash pattern of the border.
func (s CandlestickItemStyle) BorderType(t element.BorderType) CandlestickItemStyle {
	s.opts.BorderType = &t
	return s
}

// Opacity sets the opacity, from 0 to 1.
func (s CandlestickItemStyle) Opacity(o float64) CandlestickItemStyle {
	s.opts.Opacity = &o
	return s
}

// ShadowColor sets the shadow color.
func (s CandlestickItemStyle) ShadowColor(c element.Color) CandlestickItemStyle {
	s.opts.ShadowColor = &c
	return s
}

// ShadowBlur sets the blur radius of the shadow.
func (s CandlestickItemStyle) ShadowBlur(b float64) CandlestickItemStyle {
	s.opts.ShadowBlur = &b
	return s
}

// ShadowOffsetX sets the horizontal shadow offset.
func (s CandlestickItemStyle) ShadowOffsetX(x float64) CandlestickItemStyle {
	s.opts.ShadowOffsetX = &x
	return s
}

// ShadowOffsetY sets the vertical shadow offset.
func (s CandlestickItemStyle) ShadowOffsetY(y float64) CandlestickItemStyle {
	s.opts.ShadowOffsetY = &y
	return s
}

// MarshalJSON implements json.Marshaler.
func (s CandlestickItemStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.opts)
}

// Candlestick is an OHLC (k-line) series. Its data points are datatype.Candle.
type Candlestick struct {
	opts candlestickOptions
}

type candlestickOptions struct {
	Type             string                    `json:"type"`
	ID               *string                   `json:"id,omitempty"`
	Name             *string                   `json:"name,omitempty"`
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	ColorBy          *element.ColorBy          `json:"colorBy,omitempty"`
	LegendHoverLink  *bool                     `json:"legendHoverLink,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	BarWidth         *string                   `json:"barWidth,omitempty"`
	ItemStyle        *CandlestickItemStyle     `json:"itemStyle,omitempty"`
	MarkLine         *element.MarkLine         `json:"markLine,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// NewCandlestick returns a candlestick series with no options and no data.
func NewCandlestick() Candlestick {
	return Candlestick{}
}

// Type returns "candlestick".
func (Candlestick) Type() string { return TypeCandlestick }
func (Candlestick) isSeries()    {}

// ID sets the id used to refer to the candlestick in option merges.
func (c Candlestick) ID(id string) Candlestick {
	c.opts.ID = &id
	return c
}

// Name sets the series name shown in the legend and tooltip.
func (c Candlestick) Name(name string) Candlestick {
	c.opts.Name = &name
	return c
}

// CoordinateSystem sets the coordinate system the series is drawn in.
func (c Candlestick) CoordinateSystem(cs element.CoordinateSystem) Candlestick {
	c.opts.CoordinateSystem = &cs
	return c
}

// ColorBy picks whether the palette is applied per series or per data item.
func (c Candlestick) ColorBy(cb element.ColorBy) Candlestick {
	c.opts.ColorBy = &cb
	return c
}

// LegendHoverLink toggles highlighting the series when its legend entry is hovered.
func (c Candlestick) LegendHoverLink(link bool) Candlestick {
	c.opts.LegendHoverLink = &link
	return c
}

// XAxisIndex selects the x axis when the chart has several.
func (c Candlestick) XAxisIndex(i int) Candlestick {
	c.opts.XAxisIndex = &i
	return c
}

// YAxisIndex selects the y axis when the chart has several.
func (c Candlestick) YAxisIndex(i int) Candlestick {
	c.opts.YAxisIndex = &i
	return c
}

// BarWidth sets the bar width, in pixels or as a percentage of the band.
func (c Candlestick) BarWidth(width string) Candlestick {
	c.opts.BarWidth = &width
	return c
}

// ItemStyle styles the candles.
func (c Candlestick) ItemStyle(style CandlestickItemStyle) Candlestick {
	c.opts.ItemStyle = &style
	return c
}

// MarkLine adds reference lines such as the max or average value.
func (c Candlestick) MarkLine(line element.MarkLine) Candlestick {
	c.opts.MarkLine = &line
	return c
}

// Data replaces the dataset.
func (c Candlestick) Data(data datatype.DataFrame) Candlestick {
	c.opts.Data = data.Clone()
	return c
}

// MarshalJSON implements json.Marshaler.
func (c Candlestick) MarshalJSON() ([]byte, error) {
	o := c.opts
	o.Type = TypeCandlestick
	return json.Marshal(o)
}
