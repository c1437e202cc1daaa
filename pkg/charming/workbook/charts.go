package workbook

import (
	"archive/zip"
	"encoding/xml"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/charming-go/pkg/charming/series"
)

// PlotKinds maps OOXML plot elements to series kinds. Area plots become line
// series and doughnuts become pies; the importer decorates them.
var PlotKinds = map[string]string{
	"lineChart":     series.TypeLine,
	"line3DChart":   series.TypeLine,
	"areaChart":     series.TypeLine,
	"area3DChart":   series.TypeLine,
	"barChart":      series.TypeBar,
	"bar3DChart":    series.TypeBar,
	"pieChart":      series.TypePie,
	"pie3DChart":    series.TypePie,
	"doughnutChart": series.TypePie,
	"ofPieChart":    series.TypePie,
	"scatterChart":  series.TypeScatter,
	"bubbleChart":   series.TypeScatter,
	"stockChart":    series.TypeCandlestick,
}

// plotElements lists every plot element recognised, including those with no
// series kind, so their series are still reported.
var plotElements = map[string]bool{
	"radarChart":     true,
	"surfaceChart":   true,
	"surface3DChart": true,
}

func isPlotElement(local string) bool {
	_, ok := PlotKinds[local]
	return ok || plotElements[local]
}

// drawnChart is a chart anchored in a drawing part.
type drawnChart struct {
	name      string
	chartPath string
}

// ExtractCharts reads every chart embedded in an xlsx file, in sheet order
// and then drawing order.
func ExtractCharts(xlsxPath string) ([]ChartDef, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return extractCharts(&r.Reader)
}

func extractCharts(r *zip.Reader) ([]ChartDef, error) {
	var result []ChartDef

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}
	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result, err
	}
	sheetTargets := parseRelationships(wbRelsXML, "worksheet")

	for _, sheet := range parseWorkbookSheets(workbookXML) {
		target, ok := sheetTargets[sheet.rID]
		if !ok {
			continue
		}
		sheetPath := resolveRelativePath(target, "xl")

		for _, dc := range sheetCharts(r, sheetPath) {
			chartXML, err := readZipFile(r, dc.chartPath)
			if err != nil {
				return result, err
			}
			if chartXML == nil {
				continue
			}
			def := parseChartXML(chartXML)
			def.Sheet = sheet.name
			def.Name = dc.name
			result = append(result, def)
		}
	}

	return result, nil
}

// sheetCharts follows sheet -> drawing -> chart relationships.
func sheetCharts(r *zip.Reader, sheetPath string) []drawnChart {
	var result []drawnChart

	sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
	if err != nil || sheetRelsXML == nil {
		return result
	}

	drawings := parseRelationships(sheetRelsXML, "drawing")
	ids := make([]string, 0, len(drawings))
	for id := range drawings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		drawingPath := resolveRelativePath(drawings[id], "xl/drawings")
		drawingXML, err := readZipFile(r, drawingPath)
		if err != nil || drawingXML == nil {
			continue
		}
		relsXML, err := readZipFile(r, relsPathFor(drawingPath))
		if err != nil || relsXML == nil {
			continue
		}
		chartTargets := parseRelationships(relsXML, "chart")

		for _, frame := range parseDrawingForCharts(drawingXML) {
			if target, ok := chartTargets[frame.rID]; ok {
				result = append(result, drawnChart{
					name:      frame.name,
					chartPath: resolveRelativePath(target, "xl/charts"),
				})
			}
		}
	}

	return result
}

type graphicFrame struct {
	rID  string
	name string
}

// parseDrawingForCharts lists chart frames of a drawing in document order.
func parseDrawingForCharts(data []byte) []graphicFrame {
	var result []graphicFrame
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "graphicFrame" {
			if frame := parseGraphicFrameContent(decoder); frame.rID != "" {
				result = append(result, frame)
			}
		}
	}

	return result
}

// parseGraphicFrameContent reads the object name and chart relationship id.
func parseGraphicFrameContent(decoder *xml.Decoder) graphicFrame {
	var frame graphicFrame
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						frame.name = attr.Value
					}
				}
			case "chart":
				for _, attr := range t.Attr {
					if attr.Name.Local == "id" {
						frame.rID = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return frame
}

// parseChartXML parses a chart part (c:chartSpace).
func parseChartXML(data []byte) ChartDef {
	var def ChartDef
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &def)
		}
	}

	if def.PlotType == "" {
		def.PlotType = "unknown"
	}
	return def
}

// parseChartElement parses c:chart.
func parseChartElement(decoder *xml.Decoder, def *ChartDef) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				def.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, def)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle joins the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(parts, ""))
}

// parsePlotArea parses c:plotArea: one or more plot elements and the axes.
func parsePlotArea(decoder *xml.Decoder, def *ChartDef) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch {
			case isPlotElement(t.Name.Local):
				if def.PlotType == "" {
					def.PlotType = t.Name.Local
				}
				def.Series = append(def.Series, parseChartSeries(decoder, t.Name.Local)...)
				depth--
			case t.Name.Local == "valAx":
				title, axisRange, pos := parseValueAxis(decoder)
				// A horizontal value axis is the x axis of a scatter chart.
				if pos != "b" && pos != "t" {
					if def.YAxisTitle == "" {
						def.YAxisTitle = title
					}
					if def.YAxisRange == nil {
						def.YAxisRange = axisRange
					}
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses the c:ser elements of one plot element.
func parseChartSeries(decoder *xml.Decoder, plotType string) []SeriesRef {
	var refs []SeriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				s := parseSingleSeries(decoder)
				s.PlotType = plotType
				s.Kind = PlotKinds[plotType]
				refs = append(refs, s)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return refs
}

// parseSingleSeries parses a single c:ser element.
func parseSingleSeries(decoder *xml.Decoder) SeriesRef {
	var s SeriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.CategoryRange = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.ValueRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses c:tx: the name reference and its cached value.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange returns the formula reference of c:cat, c:val, c:xVal or c:yVal.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseValueAxis parses c:valAx: its title, fixed bounds and c:axPos.
func parseValueAxis(decoder *xml.Decoder) (title string, axisRange []float64, pos string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "scaling":
				axisRange = parseAxisScaling(decoder)
				depth--
			case "axPos":
				pos = stringAttr(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseAxisScaling returns [min, max] when both bounds are fixed.
func parseAxisScaling(decoder *xml.Decoder) []float64 {
	var min, max *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "min":
				min = floatAttr(t, "val")
			case "max":
				max = floatAttr(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	if min != nil && max != nil {
		return []float64{*min, *max}
	}
	return nil
}

func stringAttr(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func floatAttr(se xml.StartElement, name string) *float64 {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			if v, err := strconv.ParseFloat(attr.Value, 64); err == nil {
				return &v
			}
		}
	}
	return nil
}
