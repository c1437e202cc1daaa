// Package component defines the chart-level components that sit beside the
// series: title, tooltip, legend, toolbox, axes, grid, data zoom and visual map.
package component

import (
	"encoding/json"

	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Title is the main title and subtitle of a chart.
type Title struct {
	opts titleOptions
}

type titleOptions struct {
	Show      *bool   `json:"show,omitempty"`
	Text      *string `json:"text,omitempty"`
	Subtext   *string `json:"subtext,omitempty"`
	Link      *string `json:"link,omitempty"`
	Left      *string `json:"left,omitempty"`
	Top       *string `json:"top,omitempty"`
	TextAlign *string `json:"textAlign,omitempty"`
}

// NewTitle returns a title with no options set.
func NewTitle() Title {
	return Title{}
}

// Show toggles the title.
func (t Title) Show(show bool) Title {
	t.opts.Show = &show
	return t
}

// Text sets the main title.
func (t Title) Text(text string) Title {
	t.opts.Text = &text
	return t
}

// Subtext sets the smaller line under the title.
func (t Title) Subtext(subtext string) Title {
	t.opts.Subtext = &subtext
	return t
}

// Link makes the title a hyperlink.
func (t Title) Link(link string) Title {
	t.opts.Link = &link
	return t
}

// Left is a pixel value, a percentage or "left"/"center"/"right".
func (t Title) Left(left string) Title {
	t.opts.Left = &left
	return t
}

// Top sets the distance from the top edge, in pixels or as a percentage.
func (t Title) Top(top string) Title {
	t.opts.Top = &top
	return t
}

// TextAlign aligns the title text: left, center or right.
func (t Title) TextAlign(align string) Title {
	t.opts.TextAlign = &align
	return t
}

// MarshalJSON implements json.Marshaler.
func (t Title) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.opts)
}

// Tooltip is the popup shown when hovering data.
type Tooltip struct {
	opts tooltipOptions
}

type tooltipOptions struct {
	Show        *bool                   `json:"show,omitempty"`
	Trigger     *element.TooltipTrigger `json:"trigger,omitempty"`
	AxisPointer *element.AxisPointer    `json:"axisPointer,omitempty"`
	Formatter   *string                 `json:"formatter,omitempty"`
}

// NewTooltip returns a tooltip with no options set.
func NewTooltip() Tooltip {
	return Tooltip{}
}

// Show toggles the tooltip.
func (t Tooltip) Show(show bool) Tooltip {
	t.opts.Show = &show
	return t
}

// Trigger shows the tooltip per item or per axis position.
func (t Tooltip) Trigger(trigger element.TooltipTrigger) Tooltip {
	t.opts.Trigger = &trigger
	return t
}

// AxisPointer configures the pointer drawn with an axis trigger.
func (t Tooltip) AxisPointer(pointer element.AxisPointer) Tooltip {
	t.opts.AxisPointer = &pointer
	return t
}

// Formatter sets a template such as "{b}: {c}" for the tooltip content.
func (t Tooltip) Formatter(formatter string) Tooltip {
	t.opts.Formatter = &formatter
	return t
}

// MarshalJSON implements json.Marshaler.
func (t Tooltip) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.opts)
}
