package component

import (
	"encoding/json"
	"slices"

	"github.com/ukaji3/charming-go/pkg/charming/element"
)

// Toolbox is the row of action buttons in the chart corner.
type Toolbox struct {
	opts toolboxOptions
}

type toolboxOptions struct {
	Show    *bool           `json:"show,omitempty"`
	Orient  *element.Orient `json:"orient,omitempty"`
	Left    *string         `json:"left,omitempty"`
	Top     *string         `json:"top,omitempty"`
	Feature *Feature        `json:"feature,omitempty"`
}

// NewToolbox returns a toolbox with no tools.
func NewToolbox() Toolbox {
	return Toolbox{}
}

// Show toggles the toolbox.
func (t Toolbox) Show(show bool) Toolbox {
	t.opts.Show = &show
	return t
}

// Orient lays the items out horizontally or vertically.
func (t Toolbox) Orient(orient element.Orient) Toolbox {
	t.opts.Orient = &orient
	return t
}

// Left sets the distance from the left edge, in pixels or as a percentage.
func (t Toolbox) Left(left string) Toolbox {
	t.opts.Left = &left
	return t
}

// Top sets the distance from the top edge, in pixels or as a percentage.
func (t Toolbox) Top(top string) Toolbox {
	t.opts.Top = &top
	return t
}

// Feature sets the tools offered.
func (t Toolbox) Feature(feature Feature) Toolbox {
	t.opts.Feature = &feature
	return t
}

// MarshalJSON implements json.Marshaler.
func (t Toolbox) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.opts)
}

// Feature selects the toolbox buttons.
type Feature struct {
	opts featureOptions
}

type featureOptions struct {
	SaveAsImage *SaveAsImage `json:"saveAsImage,omitempty"`
	Restore     *ToolShow    `json:"restore,omitempty"`
	DataView    *DataView    `json:"dataView,omitempty"`
	DataZoom    *ToolShow    `json:"dataZoom,omitempty"`
	MagicType   *MagicType   `json:"magicType,omitempty"`
}

// NewFeature returns an empty tool set.
func NewFeature() Feature {
	return Feature{}
}

// SaveAsImage adds the export-to-image tool.
func (f Feature) SaveAsImage(s SaveAsImage) Feature {
	f.opts.SaveAsImage = &s
	return f
}

// Restore adds the tool that resets the chart options.
func (f Feature) Restore(r ToolShow) Feature {
	f.opts.Restore = &r
	return f
}

// DataView adds the tool that shows the data as a table.
func (f Feature) DataView(d DataView) Feature {
	f.opts.DataView = &d
	return f
}

// DataZoom adds the box-zoom tool.
func (f Feature) DataZoom(z ToolShow) Feature {
	f.opts.DataZoom = &z
	return f
}

// MagicType adds the tools that switch the series type.
func (f Feature) MagicType(m MagicType) Feature {
	f.opts.MagicType = &m
	return f
}

// MarshalJSON implements json.Marshaler.
func (f Feature) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.opts)
}

// ToolShow is a toolbox button whose only option is visibility.
type ToolShow struct {
	Show *bool `json:"show,omitempty"`
}

// NewToolShow returns a button record with show set.
func NewToolShow(show bool) ToolShow {
	return ToolShow{Show: &show}
}

// SaveAsImage exports the rendered chart as an image.
type SaveAsImage struct {
	opts saveAsImageOptions
}

type saveAsImageOptions struct {
	Show *bool   `json:"show,omitempty"`
	Type *string `json:"type,omitempty"`
	Name *string `json:"name,omitempty"`
}

// NewSaveAsImage returns the image tool with no options set.
func NewSaveAsImage() SaveAsImage {
	return SaveAsImage{}
}

// Show toggles the tool.
func (s SaveAsImage) Show(show bool) SaveAsImage {
	s.opts.Show = &show
	return s
}

// Type is "png", "jpg" or "svg".
func (s SaveAsImage) Type(t string) SaveAsImage {
	s.opts.Type = &t
	return s
}

// Name sets the downloaded file name.
func (s SaveAsImage) Name(name string) SaveAsImage {
	s.opts.Name = &name
	return s
}

// MarshalJSON implements json.Marshaler.
func (s SaveAsImage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.opts)
}

// DataView shows the underlying data as a table.
type DataView struct {
	opts dataViewOptions
}

type dataViewOptions struct {
	Show     *bool `json:"show,omitempty"`
	ReadOnly *bool `json:"readOnly,omitempty"`
}

// NewDataView returns the data view tool with no options set.
func NewDataView() DataView {
	return DataView{}
}

// Show toggles the tool.
func (d DataView) Show(show bool) DataView {
	d.opts.Show = &show
	return d
}

// ReadOnly stops the table from being edited.
func (d DataView) ReadOnly(readOnly bool) DataView {
	d.opts.ReadOnly = &readOnly
	return d
}

// MarshalJSON implements json.Marshaler.
func (d DataView) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.opts)
}

// MagicType switches the chart between series kinds, e.g. "line" and "bar".
type MagicType struct {
	opts magicTypeOptions
}

type magicTypeOptions struct {
	Show *bool    `json:"show,omitempty"`
	Type []string `json:"type,omitempty"`
}

// NewMagicType returns the switch tool with no options set.
func NewMagicType() MagicType {
	return MagicType{}
}

// Show toggles the tool.
func (m MagicType) Show(show bool) MagicType {
	m.opts.Show = &show
	return m
}

// Type lists the series types to switch between, such as "line" and "bar".
func (m MagicType) Type(kinds ...string) MagicType {
	m.opts.Type = slices.Clone(kinds)
	return m
}

// MarshalJSON implements json.Marshaler.
func (m MagicType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.opts)
}
