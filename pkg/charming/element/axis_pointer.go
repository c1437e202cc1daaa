package element

import "encoding/json"

// AxisPointer is the indicator that follows the cursor along an axis.
type AxisPointer struct {
	opts axisPointerOptions
}

type axisPointerOptions struct {
	Show      *bool            `json:"show,omitempty"`
	Type      *AxisPointerType `json:"type,omitempty"`
	Snap      *bool            `json:"snap,omitempty"`
	Label     *Label           `json:"label,omitempty"`
	LineStyle *LineStyle       `json:"lineStyle,omitempty"`
}

// NewAxisPointer returns an axis pointer with no options set.
func NewAxisPointer() AxisPointer {
	return AxisPointer{}
}

// Show toggles the pointer.
func (p AxisPointer) Show(show bool) AxisPointer {
	p.opts.Show = &show
	return p
}

// Type sets the pointer shape: a line, a shadow band or a cross.
func (p AxisPointer) Type(t AxisPointerType) AxisPointer {
	p.opts.Type = &t
	return p
}

// Snap makes the pointer jump to the nearest data point.
func (p AxisPointer) Snap(snap bool) AxisPointer {
	p.opts.Snap = &snap
	return p
}

// Label configures the value label drawn on the axis.
func (p AxisPointer) Label(label Label) AxisPointer {
	p.opts.Label = &label
	return p
}

// LineStyle styles a line or cross pointer.
func (p AxisPointer) LineStyle(style LineStyle) AxisPointer {
	p.opts.LineStyle = &style
	return p
}

// MarshalJSON implements json.Marshaler.
func (p AxisPointer) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.opts)
}

// SplitLine is the grid line drawn across the plot at each tick.
type SplitLine struct {
	opts splitLineOptions
}

type splitLineOptions struct {
	Show      *bool      `json:"show,omitempty"`
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
}

// NewSplitLine returns split line options with nothing set.
func NewSplitLine() SplitLine {
	return SplitLine{}
}

// Show toggles the grid lines drawn across the plot from each tick.
func (s SplitLine) Show(show bool) SplitLine {
	s.opts.Show = &show
	return s
}

// LineStyle styles the grid lines.
func (s SplitLine) LineStyle(style LineStyle) SplitLine {
	s.opts.LineStyle = &style
	return s
}

// MarshalJSON implements json.Marshaler.
func (s SplitLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.opts)
}
