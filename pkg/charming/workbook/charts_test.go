package workbook

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/charming-go/pkg/charming/series"
	"github.com/xuri/excelize/v2"
)

const comboChartXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <c:chart>
    <c:title><c:tx><c:rich><a:p><a:r><a:t>Sales </a:t></a:r><a:r><a:t>2024</a:t></a:r></a:p></c:rich></c:tx></c:title>
    <c:plotArea>
      <c:barChart>
        <c:barDir val="col"/>
        <c:ser>
          <c:idx val="0"/>
          <c:tx><c:strRef><c:f>Data!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>North</c:v></c:pt></c:strCache></c:strRef></c:tx>
          <c:cat><c:strRef><c:f>Data!$A$2:$A$4</c:f></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Data!$B$2:$B$4</c:f></c:numRef></c:val>
        </c:ser>
      </c:barChart>
      <c:lineChart>
        <c:ser>
          <c:tx><c:v>Target</c:v></c:tx>
          <c:cat><c:strRef><c:f>Data!$A$2:$A$4</c:f></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Data!$C$2:$C$4</c:f></c:numRef></c:val>
        </c:ser>
      </c:lineChart>
      <c:catAx><c:axId val="1"/></c:catAx>
      <c:valAx>
        <c:axId val="2"/>
        <c:scaling><c:orientation val="minMax"/><c:max val="100"/><c:min val="0"/></c:scaling>
        <c:title><c:tx><c:rich><a:p><a:r><a:t>Units</a:t></a:r></a:p></c:rich></c:tx></c:title>
      </c:valAx>
    </c:plotArea>
  </c:chart>
</c:chartSpace>`

func TestParseChartXML(t *testing.T) {
	def := parseChartXML([]byte(comboChartXML))

	if def.PlotType != "barChart" {
		t.Errorf("PlotType = %q, want barChart", def.PlotType)
	}
	if def.Title != "Sales 2024" {
		t.Errorf("Title = %q, want 'Sales 2024'", def.Title)
	}
	if def.YAxisTitle != "Units" {
		t.Errorf("YAxisTitle = %q, want Units", def.YAxisTitle)
	}
	if !reflect.DeepEqual(def.YAxisRange, []float64{0, 100}) {
		t.Errorf("YAxisRange = %v, want [0 100]", def.YAxisRange)
	}

	want := []SeriesRef{
		{
			PlotType:      "barChart",
			Kind:          series.TypeBar,
			Name:          "North",
			NameRange:     "Data!$B$1",
			CategoryRange: "Data!$A$2:$A$4",
			ValueRange:    "Data!$B$2:$B$4",
		},
		{
			PlotType:      "lineChart",
			Kind:          series.TypeLine,
			Name:          "Target",
			CategoryRange: "Data!$A$2:$A$4",
			ValueRange:    "Data!$C$2:$C$4",
		},
	}
	if !reflect.DeepEqual(def.Series, want) {
		t.Errorf("Series = %+v, want %+v", def.Series, want)
	}
}

func TestParseChartXMLScatterAxes(t *testing.T) {
	xml := `<c:chartSpace xmlns:c="c" xmlns:a="a"><c:chart><c:plotArea>
		<c:scatterChart><c:ser>
			<c:xVal><c:numRef><c:f>S!$A$2:$A$4</c:f></c:numRef></c:xVal>
			<c:yVal><c:numRef><c:f>S!$B$2:$B$4</c:f></c:numRef></c:yVal>
		</c:ser></c:scatterChart>
		<c:valAx>
			<c:axId val="1"/>
			<c:scaling><c:max val="200"/><c:min val="100"/></c:scaling>
			<c:axPos val="b"/>
			<c:title><c:tx><c:rich><a:p><a:r><a:t>Height</a:t></a:r></a:p></c:rich></c:tx></c:title>
		</c:valAx>
		<c:valAx>
			<c:axId val="2"/>
			<c:scaling><c:orientation val="minMax"/></c:scaling>
			<c:axPos val="l"/>
			<c:title><c:tx><c:rich><a:p><a:r><a:t>Weight</a:t></a:r></a:p></c:rich></c:tx></c:title>
		</c:valAx>
	</c:plotArea></c:chart></c:chartSpace>`

	def := parseChartXML([]byte(xml))
	if def.YAxisTitle != "Weight" {
		t.Errorf("YAxisTitle = %q, want Weight", def.YAxisTitle)
	}
	if def.YAxisRange != nil {
		t.Errorf("YAxisRange = %v, want nil", def.YAxisRange)
	}
}

func TestParseChartXMLUnknown(t *testing.T) {
	def := parseChartXML([]byte(`<c:chartSpace xmlns:c="c"><c:chart><c:plotArea/></c:chart></c:chartSpace>`))
	if def.PlotType != "unknown" {
		t.Errorf("PlotType = %q, want unknown", def.PlotType)
	}
	if len(def.Series) != 0 {
		t.Errorf("Expected no series, got %d", len(def.Series))
	}
}

func TestParseChartXMLUnsupportedPlot(t *testing.T) {
	xml := `<c:chartSpace xmlns:c="c"><c:chart><c:plotArea><c:radarChart><c:ser>
		<c:val><c:numRef><c:f>S!$A$1:$A$3</c:f></c:numRef></c:val>
	</c:ser></c:radarChart></c:plotArea></c:chart></c:chartSpace>`

	def := parseChartXML([]byte(xml))
	if def.PlotType != "radarChart" {
		t.Errorf("PlotType = %q, want radarChart", def.PlotType)
	}
	if len(def.Series) != 1 || def.Series[0].Kind != "" {
		t.Errorf("Expected one series with no kind, got %+v", def.Series)
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target, baseDir, want string
	}{
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"../drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"../../charts/chart2.xml", "xl/charts", "xl/charts/chart2.xml"},
		{"/xl/worksheets/sheet2.xml", "xl", "xl/worksheets/sheet2.xml"},
	}

	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, tt.baseDir); got != tt.want {
			t.Errorf("resolveRelativePath(%q, %q) = %q, want %q", tt.target, tt.baseDir, got, tt.want)
		}
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := map[string]string{
		"xl/worksheets/sheet1.xml": "xl/worksheets/_rels/sheet1.xml.rels",
		"xl/drawings/drawing1.xml": "xl/drawings/_rels/drawing1.xml.rels",
		"workbook.xml":             "_rels/workbook.xml.rels",
	}
	for in, want := range tests {
		if got := relsPathFor(in); got != want {
			t.Errorf("relsPathFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseRelationships(t *testing.T) {
	rels := `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
</Relationships>`

	got := parseRelationships([]byte(rels), "worksheet")
	if !reflect.DeepEqual(got, map[string]string{"rId1": "worksheets/sheet1.xml"}) {
		t.Errorf("worksheet relationships = %v", got)
	}
	got = parseRelationships([]byte(rels), "drawing")
	if !reflect.DeepEqual(got, map[string]string{"rId3": "../drawings/drawing1.xml"}) {
		t.Errorf("drawing relationships = %v", got)
	}
}

func TestParseWorkbookSheets(t *testing.T) {
	wb := `<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><sheets>
  <sheet name="Zeta" sheetId="2" r:id="rId2"/>
  <sheet name="Alpha" sheetId="1" r:id="rId1"/>
</sheets></workbook>`

	got := parseWorkbookSheets([]byte(wb))
	want := []sheetEntry{{name: "Zeta", rID: "rId2"}, {name: "Alpha", rID: "rId1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseWorkbookSheets = %+v, want %+v", got, want)
	}
}

func TestExtractCharts(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"Month", "North", "South"},
		{"Jan", 10, 20},
		{"Feb", 15, 25},
		{"Mar", 12, 30},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	err := f.AddChart("Sheet1", "E1", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$B$1", Categories: "Sheet1!$A$2:$A$4", Values: "Sheet1!$B$2:$B$4"},
			{Name: "Sheet1!$C$1", Categories: "Sheet1!$A$2:$A$4", Values: "Sheet1!$C$2:$C$4"},
		},
		Title: []excelize.RichTextRun{{Text: "Regional Sales"}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	defs, err := ExtractCharts(path)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("Expected 1 chart, got %d", len(defs))
	}

	def := defs[0]
	if def.Sheet != "Sheet1" {
		t.Errorf("Sheet = %q, want Sheet1", def.Sheet)
	}
	if def.PlotType != "lineChart" {
		t.Errorf("PlotType = %q, want lineChart", def.PlotType)
	}
	if def.Title != "Regional Sales" {
		t.Errorf("Title = %q, want 'Regional Sales'", def.Title)
	}
	if len(def.Series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(def.Series))
	}
	s := def.Series[1]
	if s.Kind != series.TypeLine || s.NameRange != "Sheet1!$C$1" || s.ValueRange != "Sheet1!$C$2:$C$4" {
		t.Errorf("Unexpected series: %+v", s)
	}
}

func TestExtractChartsNoCharts(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := filepath.Join(t.TempDir(), "plain.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	defs, err := ExtractCharts(path)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	if len(defs) != 0 {
		t.Errorf("Expected no charts, got %d", len(defs))
	}
}
