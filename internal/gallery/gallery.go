// Package gallery holds ready-made demo charts served by `charming demo`.
package gallery

import (
	"sort"

	"github.com/ukaji3/charming-go/pkg/charming"
	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
	"github.com/ukaji3/charming-go/pkg/charming/series"
)

var demos = map[string]func() charming.Chart{
	"distribution-of-electricity": DistributionOfElectricity,
	"smoothed-line":               SmoothedLine,
	"basic-bar":                   BasicBar,
	"basic-candlestick":           BasicCandlestick,
	"basic-scatter":               BasicScatter,
	"basic-pie":                   BasicPie,
}

// Names returns the demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds the named demo.
func Get(name string) (charming.Chart, bool) {
	build, ok := demos[name]
	if !ok {
		return charming.Chart{}, false
	}
	return build(), true
}

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DistributionOfElectricity is a smoothed line over a day, with peak hours
// highlighted by a visual map and mark areas.
func DistributionOfElectricity() charming.Chart {
	return charming.NewChart().
		Title(component.NewTitle().Text("Distribution of Electricity").Subtext("Fake Data")).
		Tooltip(component.NewTooltip().
			Trigger(element.TooltipTriggerAxis).
			AxisPointer(element.NewAxisPointer().Type(element.AxisPointerTypeCross))).
		Toolbox(component.NewToolbox().Show(true).Feature(
			component.NewFeature().SaveAsImage(component.NewSaveAsImage().Show(true)))).
		XAxis(component.NewAxis().
			Type(element.AxisTypeCategory).
			BoundaryGap(false).
			Data(
				"00:00", "01:15", "02:30", "03:45", "05:00", "06:15", "07:30", "08:45",
				"10:00", "11:15", "12:30", "13:45", "15:00", "16:15", "17:30", "18:45",
				"20:00", "21:15", "22:30", "23:45",
			)).
		YAxis(component.NewAxis().
			Type(element.AxisTypeValue).
			AxisLabel(element.NewAxisLabel().Formatter("{value} W")).
			AxisPointer(element.NewAxisPointer().Snap(true))).
		VisualMap(component.NewVisualMap().
			Show(false).
			Dimension(0).
			Pieces(
				component.NewPiece().Lte(6).Color("green"),
				component.NewPiece().Gt(6).Lte(8).Color("red"),
				component.NewPiece().Gt(8).Lte(14).Color("green"),
				component.NewPiece().Gt(14).Lte(17).Color("red"),
				component.NewPiece().Gt(17).Color("green"),
			)).
		Series(series.NewLine().
			Name("Electricity").
			Smooth(0.5).
			Data(datatype.Frame(
				300, 280, 250, 260, 270, 300, 550, 500, 400, 390,
				380, 390, 400, 500, 600, 750, 800, 700, 600, 400,
			)).
			MarkArea(element.NewMarkArea().
				ItemStyle(element.ItemStyleFromColor("rgba(255, 173, 177, 0.4)")).
				Data(
					[2]element.MarkAreaData{
						element.NewMarkAreaData().Name("Morning Peak").XAxis("07:30"),
						element.NewMarkAreaData().XAxis("10:00"),
					},
					[2]element.MarkAreaData{
						element.NewMarkAreaData().Name("Evening Peak").XAxis("17:30"),
						element.NewMarkAreaData().XAxis("21:15"),
					},
				)))
}

// SmoothedLine is the minimal smoothed line chart.
func SmoothedLine() charming.Chart {
	return charming.NewChart().
		XAxis(component.NewAxis().Type(element.AxisTypeCategory).Data(weekdays...)).
		YAxis(component.NewAxis().Type(element.AxisTypeValue)).
		Series(series.NewLine().
			Smooth(0.5).
			Data(datatype.Frame(820, 932, 901, 934, 1290, 1330, 1320)))
}

// BasicBar is a single bar series over the days of a week.
func BasicBar() charming.Chart {
	return charming.NewChart().
		XAxis(component.NewAxis().Type(element.AxisTypeCategory).Data(weekdays...)).
		YAxis(component.NewAxis().Type(element.AxisTypeValue)).
		Series(series.NewBar().
			Data(datatype.Frame(120, 200, 150, 80, 70, 110, 130)))
}

// BasicCandlestick plots four days of open, close, low and high prices.
func BasicCandlestick() charming.Chart {
	return charming.NewChart().
		XAxis(component.NewAxis().Type(element.AxisTypeCategory).Data("2017-10-24", "2017-10-25", "2017-10-26", "2017-10-27")).
		YAxis(component.NewAxis().Type(element.AxisTypeValue).Scale(true)).
		Series(series.NewCandlestick().
			Data(datatype.Candles(
				[4]float64{20, 34, 10, 38},
				[4]float64{40, 35, 30, 50},
				[4]float64{31, 38, 33, 44},
				[4]float64{38, 15, 5, 42},
			)))
}

// BasicScatter plots x/y pairs on two value axes.
func BasicScatter() charming.Chart {
	return charming.NewChart().
		XAxis(component.NewAxis().Type(element.AxisTypeValue)).
		YAxis(component.NewAxis().Type(element.AxisTypeValue)).
		Series(series.NewScatter().
			SymbolSize(20).
			Data(datatype.Pairs(
				[2]float64{10.0, 8.04},
				[2]float64{8.07, 6.95},
				[2]float64{13.0, 7.58},
				[2]float64{9.05, 8.81},
				[2]float64{11.0, 8.33},
				[2]float64{14.0, 7.66},
				[2]float64{13.4, 6.81},
				[2]float64{10.0, 6.33},
				[2]float64{14.0, 8.96},
				[2]float64{12.5, 6.82},
			)))
}

// BasicPie shows named slices with an item tooltip.
func BasicPie() charming.Chart {
	return charming.NewChart().
		Title(component.NewTitle().Text("Referer of a Website").Subtext("Fake Data").Left("center")).
		Tooltip(component.NewTooltip().Trigger(element.TooltipTriggerItem)).
		Legend(component.NewLegend().Orient(element.OrientVertical).Left("left")).
		Series(series.NewPie().
			Name("Access From").
			Radius("0%", "50%").
			Data(datatype.Frame(
				datatype.NewItem(1048).Name("Search Engine"),
				datatype.NewItem(735).Name("Direct"),
				datatype.NewItem(580).Name("Email"),
				datatype.NewItem(484).Name("Union Ads"),
				datatype.NewItem(300).Name("Video Ads"),
			)))
}
