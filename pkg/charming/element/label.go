package element

import "encoding/json"

// Label is the text drawn next to a graphic element.
type Label struct {
	opts labelOptions
}

type labelOptions struct {
	Show      *bool    `json:"show,omitempty"`
	Position  *string  `json:"position,omitempty"`
	Formatter *string  `json:"formatter,omitempty"`
	Color     *Color   `json:"color,omitempty"`
	FontSize  *float64 `json:"fontSize,omitempty"`
	Rotate    *float64 `json:"rotate,omitempty"`
}

// NewLabel returns a label with no options set.
func NewLabel() Label {
	return Label{}
}

// Show toggles the label.
func (l Label) Show(show bool) Label {
	l.opts.Show = &show
	return l
}

// Position is a renderer keyword such as "top", "inside" or "outside".
func (l Label) Position(position string) Label {
	l.opts.Position = &position
	return l
}

// Formatter is a template string, e.g. "{b}: {c}".
func (l Label) Formatter(formatter string) Label {
	l.opts.Formatter = &formatter
	return l
}

// Color sets the text color.
func (l Label) Color(c Color) Label {
	l.opts.Color = &c
	return l
}

// FontSize sets the font size in pixels.
func (l Label) FontSize(size float64) Label {
	l.opts.FontSize = &size
	return l
}

// Rotate rotates the text by degrees, counterclockwise.
func (l Label) Rotate(degrees float64) Label {
	l.opts.Rotate = &degrees
	return l
}

// MarshalJSON implements json.Marshaler.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.opts)
}

// AxisLabel is the tick label of an axis.
type AxisLabel struct {
	opts axisLabelOptions
}

type axisLabelOptions struct {
	Show      *bool    `json:"show,omitempty"`
	Interval  *float64 `json:"interval,omitempty"`
	Inside    *bool    `json:"inside,omitempty"`
	Rotate    *float64 `json:"rotate,omitempty"`
	Margin    *float64 `json:"margin,omitempty"`
	Formatter *string  `json:"formatter,omitempty"`
	Color     *Color   `json:"color,omitempty"`
	FontSize  *float64 `json:"fontSize,omitempty"`
}

// NewAxisLabel returns axis label options with nothing set.
func NewAxisLabel() AxisLabel {
	return AxisLabel{}
}

// Show toggles the tick labels.
func (l AxisLabel) Show(show bool) AxisLabel {
	l.opts.Show = &show
	return l
}

// Interval skips labels: 0 shows every one, n shows one in n+1.
func (l AxisLabel) Interval(interval float64) AxisLabel {
	l.opts.Interval = &interval
	return l
}

// Inside draws the labels inside the grid.
func (l AxisLabel) Inside(inside bool) AxisLabel {
	l.opts.Inside = &inside
	return l
}

// Rotate rotates the text by degrees, counterclockwise.
func (l AxisLabel) Rotate(degrees float64) AxisLabel {
	l.opts.Rotate = &degrees
	return l
}

// Margin sets the gap between the labels and the axis line.
func (l AxisLabel) Margin(margin float64) AxisLabel {
	l.opts.Margin = &margin
	return l
}

// Formatter is a template string where {value} is the tick value.
func (l AxisLabel) Formatter(formatter string) AxisLabel {
	l.opts.Formatter = &formatter
	return l
}

// Color sets the text color.
func (l AxisLabel) Color(c Color) AxisLabel {
	l.opts.Color = &c
	return l
}

// FontSize sets the font size in pixels.
func (l AxisLabel) FontSize(size float64) AxisLabel {
	l.opts.FontSize = &size
	return l
}

// MarshalJSON implements json.Marshaler.
func (l AxisLabel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.opts)
}
