package element

import (
	"encoding/json"
	"slices"
)

// MarkArea highlights ranges of a series, each given by two corner points.
type MarkArea struct {
	opts markAreaOptions
}

type markAreaOptions struct {
	Silent    *bool             `json:"silent,omitempty"`
	Label     *Label            `json:"label,omitempty"`
	ItemStyle *ItemStyle        `json:"itemStyle,omitempty"`
	Data      [][2]MarkAreaData `json:"data,omitempty"`
}

// NewMarkArea returns a mark area with no ranges.
func NewMarkArea() MarkArea {
	return MarkArea{}
}

// Silent makes the mark ignore mouse events.
func (m MarkArea) Silent(silent bool) MarkArea {
	m.opts.Silent = &silent
	return m
}

// Label configures the text drawn in each area.
func (m MarkArea) Label(label Label) MarkArea {
	m.opts.Label = &label
	return m
}

// ItemStyle sets the fill of the areas.
func (m MarkArea) ItemStyle(style ItemStyle) MarkArea {
	m.opts.ItemStyle = &style
	return m
}

// Data replaces the highlighted areas. Each entry is a [start, end] pair.
func (m MarkArea) Data(areas ...[2]MarkAreaData) MarkArea {
	m.opts.Data = slices.Clone(areas)
	return m
}

// MarshalJSON implements json.Marshaler.
func (m MarkArea) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.opts)
}

// MarkAreaData is one corner of a mark area.
type MarkAreaData struct {
	opts markAreaDataOptions
}

type markAreaDataOptions struct {
	Name  *string `json:"name,omitempty"`
	XAxis *string `json:"xAxis,omitempty"`
	YAxis *string `json:"yAxis,omitempty"`
}

// NewMarkAreaData returns one empty end of a mark area range.
func NewMarkAreaData() MarkAreaData {
	return MarkAreaData{}
}

// Name sets the label text of the area.
func (d MarkAreaData) Name(name string) MarkAreaData {
	d.opts.Name = &name
	return d
}

// XAxis is the category or value on the x axis where the corner sits.
func (d MarkAreaData) XAxis(x string) MarkAreaData {
	d.opts.XAxis = &x
	return d
}

// YAxis anchors this end at a y axis value or category.
func (d MarkAreaData) YAxis(y string) MarkAreaData {
	d.opts.YAxis = &y
	return d
}

// MarshalJSON implements json.Marshaler.
func (d MarkAreaData) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.opts)
}

// MarkLine draws reference lines on a series.
type MarkLine struct {
	opts markLineOptions
}

type markLineOptions struct {
	Silent    *bool          `json:"silent,omitempty"`
	Symbol    []Symbol       `json:"symbol,omitempty"`
	Label     *Label         `json:"label,omitempty"`
	LineStyle *LineStyle     `json:"lineStyle,omitempty"`
	Data      []MarkLineData `json:"data,omitempty"`
}

// NewMarkLine returns a mark line with no lines.
func NewMarkLine() MarkLine {
	return MarkLine{}
}

// Silent makes the mark ignore mouse events.
func (m MarkLine) Silent(silent bool) MarkLine {
	m.opts.Silent = &silent
	return m
}

// Symbol sets the start and end markers of every line.
func (m MarkLine) Symbol(start, end Symbol) MarkLine {
	m.opts.Symbol = []Symbol{start, end}
	return m
}

// Label configures the text at the end of each line.
func (m MarkLine) Label(label Label) MarkLine {
	m.opts.Label = &label
	return m
}

// LineStyle styles the lines.
func (m MarkLine) LineStyle(style LineStyle) MarkLine {
	m.opts.LineStyle = &style
	return m
}

// Data sets the lines, in order.
func (m MarkLine) Data(lines ...MarkLineData) MarkLine {
	m.opts.Data = slices.Clone(lines)
	return m
}

// MarshalJSON implements json.Marshaler.
func (m MarkLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.opts)
}

// MarkLineData places one mark line, either at a statistic (Type) or at a
// fixed axis value.
type MarkLineData struct {
	opts markLineDataOptions
}

type markLineDataOptions struct {
	Name       *string   `json:"name,omitempty"`
	Type       *MarkType `json:"type,omitempty"`
	ValueIndex *int      `json:"valueIndex,omitempty"`
	XAxis      *float64  `json:"xAxis,omitempty"`
	YAxis      *float64  `json:"yAxis,omitempty"`
}

// NewMarkLineData returns an empty line definition.
func NewMarkLineData() MarkLineData {
	return MarkLineData{}
}

// Name sets the line label.
func (d MarkLineData) Name(name string) MarkLineData {
	d.opts.Name = &name
	return d
}

// Type places the line at a statistic of the series, such as max or average.
func (d MarkLineData) Type(t MarkType) MarkLineData {
	d.opts.Type = &t
	return d
}

// ValueIndex selects the dimension the statistic is computed on.
func (d MarkLineData) ValueIndex(i int) MarkLineData {
	d.opts.ValueIndex = &i
	return d
}

// XAxis places a vertical line at x.
func (d MarkLineData) XAxis(x float64) MarkLineData {
	d.opts.XAxis = &x
	return d
}

// YAxis places a horizontal line at y.
func (d MarkLineData) YAxis(y float64) MarkLineData {
	d.opts.YAxis = &y
	return d
}

// MarshalJSON implements json.Marshaler.
func (d MarkLineData) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.opts)
}
