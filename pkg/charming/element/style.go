package element

import "encoding/json"

// ItemStyle styles the graphic of a data item.
type ItemStyle struct {
	opts itemStyleOptions
}

type itemStyleOptions struct {
	Color         *Color      `json:"color,omitempty"`
	BorderColor   *Color      `json:"borderColor,omitempty"`
	BorderWidth   *float64    `json:"borderWidth,omitempty"`
	BorderType    *BorderType `json:"borderType,omitempty"`
	BorderRadius  *float64    `json:"borderRadius,omitempty"`
	Opacity       *float64    `json:"opacity,omitempty"`
	ShadowBlur    *float64    `json:"shadowBlur,omitempty"`
	ShadowColor   *Color      `json:"shadowColor,omitempty"`
	ShadowOffsetX *float64    `json:"shadowOffsetX,omitempty"`
	ShadowOffsetY *float64    `json:"shadowOffsetY,omitempty"`
}

// NewItemStyle returns an ItemStyle with no options set.
func NewItemStyle() ItemStyle {
	return ItemStyle{}
}

// ItemStyleFromColor is shorthand for NewItemStyle().Color(c).
func ItemStyleFromColor(c Color) ItemStyle {
	return NewItemStyle().Color(c)
}

// Color sets the fill color.
func (s ItemStyle) Color(c Color) ItemStyle {
	s.opts.Color = &c
	return s
}

// BorderColor sets the outline color.
func (s ItemStyle) BorderColor(c Color) ItemStyle {
	s.opts.BorderColor = &c
	return s
}

// BorderWidth sets the border width in pixels.
func (s ItemStyle) BorderWidth(w float64) ItemStyle {
	s.opts.BorderWidth = &w
	return s
}

// BorderType sets the dash pattern of the border.
func (s ItemStyle) BorderType(t BorderType) ItemStyle {
	s.opts.BorderType = &t
	return s
}

// BorderRadius rounds the corners by r pixels.
func (s ItemStyle) BorderRadius(r float64) ItemStyle {
	s.opts.BorderRadius = &r
	return s
}

// Opacity sets the opacity, from 0 to 1.
func (s ItemStyle) Opacity(o float64) ItemStyle {
	s.opts.Opacity = &o
	return s
}

// ShadowBlur sets the blur radius of the shadow.
func (s ItemStyle) ShadowBlur(b float64) ItemStyle {
	s.opts.ShadowBlur = &b
	return s
}

// ShadowColor sets the shadow color.
func (s ItemStyle) ShadowColor(c Color) ItemStyle {
	s.opts.ShadowColor = &c
	return s
}

// ShadowOffsetX sets the horizontal shadow offset.
func (s ItemStyle) ShadowOffsetX(x float64) ItemStyle {
	s.opts.ShadowOffsetX = &x
	return s
}

// ShadowOffsetY sets the vertical shadow offset.
func (s ItemStyle) ShadowOffsetY(y float64) ItemStyle {
	s.opts.ShadowOffsetY = &y
	return s
}

// MarshalJSON implements json.Marshaler.
func (s ItemStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.opts)
}

// LineStyle styles a line: series lines, axis lines, split lines.
type LineStyle struct {
	opts lineStyleOptions
}

type lineStyleOptions struct {
	Color       *Color      `json:"color,omitempty"`
	Width       *float64    `json:"width,omitempty"`
	Type        *BorderType `json:"type,omitempty"`
	Opacity     *float64    `json:"opacity,omitempty"`
	ShadowBlur  *float64    `json:"shadowBlur,omitempty"`
	ShadowColor *Color      `json:"shadowColor,omitempty"`
}

// NewLineStyle returns a LineStyle with no options set.
func NewLineStyle() LineStyle {
	return LineStyle{}
}

// LineStyleFromColor is shorthand for NewLineStyle().Color(c).
func LineStyleFromColor(c Color) LineStyle {
	return NewLineStyle().Color(c)
}

// Color sets the stroke color.
func (s LineStyle) Color(c Color) LineStyle {
	s.opts.Color = &c
	return s
}

// Width sets the stroke width in pixels.
func (s LineStyle) Width(w float64) LineStyle {
	s.opts.Width = &w
	return s
}

// Type sets the dash pattern.
func (s LineStyle) Type(t BorderType) LineStyle {
	s.opts.Type = &t
	return s
}

// Opacity sets the opacity, from 0 to 1.
func (s LineStyle) Opacity(o float64) LineStyle {
	s.opts.Opacity = &o
	return s
}

// ShadowBlur sets the blur radius of the shadow.
func (s LineStyle) ShadowBlur(b float64) LineStyle {
	s.opts.ShadowBlur = &b
	return s
}

// ShadowColor sets the shadow color.
func (s LineStyle) ShadowColor(c Color) LineStyle {
	s.opts.ShadowColor = &c
	return s
}

// MarshalJSON implements json.Marshaler.
func (s LineStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.opts)
}

// AreaStyle fills the area under a line.
type AreaStyle struct {
	opts areaStyleOptions
}

type areaStyleOptions struct {
	Color   *Color   `json:"color,omitempty"`
	Origin  *string  `json:"origin,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// NewAreaStyle returns an AreaStyle with no options set. An empty AreaStyle
// still turns area filling on, since the key is present.
func NewAreaStyle() AreaStyle {
	return AreaStyle{}
}

// Color sets the fill color; unset, the series color is used.
func (s AreaStyle) Color(c Color) AreaStyle {
	s.opts.Color = &c
	return s
}

// Origin is "auto", "start" or "end".
func (s AreaStyle) Origin(origin string) AreaStyle {
	s.opts.Origin = &origin
	return s
}

// Opacity sets the opacity, from 0 to 1.
func (s AreaStyle) Opacity(o float64) AreaStyle {
	s.opts.Opacity = &o
	return s
}

// MarshalJSON implements json.Marshaler.
func (s AreaStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.opts)
}
