package charming

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/charming-go/pkg/charming/component"
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
	"github.com/ukaji3/charming-go/pkg/charming/series"
	"github.com/ukaji3/charming-go/pkg/charming/workbook"
	"github.com/xuri/excelize/v2"
)

// ChartFromTable builds a chart of the given series kind from a sheet table.
//
// Cartesian kinds plot every column against the categories. Pie uses the
// first column, one slice per category. Scatter reads the categories as x
// values. Candlestick needs four columns in open, high, low, close order.
func ChartFromTable(table *workbook.Table, kind string) (Chart, error) {
	if len(table.Columns) == 0 {
		return Chart{}, fmt.Errorf("sheet %q: table has no value columns", table.Sheet)
	}

	chart := NewChart().Title(component.NewTitle().Text(table.Sheet))

	switch kind {
	case series.TypePie:
		col := table.Columns[0]
		return chart.
			Tooltip(component.NewTooltip().Trigger(element.TooltipTriggerItem)).
			Legend(component.NewLegend().Data(table.Categories...)).
			Series(series.NewPie().Name(col.Name).Data(namedItems(col.Values, table.Categories))), nil

	case series.TypeScatter:
		xs := make(datatype.DataFrame, 0, len(table.Categories))
		for _, c := range table.Categories {
			xs = append(xs, workbook.ParseCell(c))
		}
		chart = chart.
			Tooltip(component.NewTooltip().Trigger(element.TooltipTriggerItem)).
			Legend(component.NewLegend().Data(columnNames(table.Columns)...)).
			XAxis(component.NewAxis().Type(element.AxisTypeValue)).
			YAxis(component.NewAxis().Type(element.AxisTypeValue))
		for _, col := range table.Columns {
			chart = chart.Series(series.NewScatter().Name(col.Name).Data(zipPairs(xs, col.Values)))
		}
		return chart, nil

	case series.TypeCandlestick:
		if len(table.Columns) < 4 {
			return Chart{}, fmt.Errorf("sheet %q: candlestick needs 4 value columns, found %d", table.Sheet, len(table.Columns))
		}
		c := table.Columns
		return chart.
			Tooltip(component.NewTooltip().Trigger(element.TooltipTriggerAxis)).
			XAxis(component.NewAxis().Type(element.AxisTypeCategory).Data(table.Categories...)).
			YAxis(component.NewAxis().Type(element.AxisTypeValue).Scale(true)).
			Series(series.NewCandlestick().Name(table.Sheet).Data(zipCandles(c[0].Values, c[1].Values, c[2].Values, c[3].Values))), nil
	}

	chart = chart.
		Tooltip(component.NewTooltip().Trigger(element.TooltipTriggerAxis)).
		Legend(component.NewLegend().Data(columnNames(table.Columns)...)).
		XAxis(component.NewAxis().Type(element.AxisTypeCategory).Data(table.Categories...)).
		YAxis(component.NewAxis().Type(element.AxisTypeValue))
	for _, col := range table.Columns {
		s, err := series.New(kind, col.Name, col.Values)
		if err != nil {
			return Chart{}, err
		}
		chart = chart.Series(s)
	}
	return chart, nil
}

// ChartFromDef rebuilds an embedded chart, reading its series data from f.
func ChartFromDef(f *excelize.File, def workbook.ChartDef) (Chart, error) {
	if len(def.Series) == 0 {
		return Chart{}, fmt.Errorf("%w: %s has no series", ErrUnsupportedChart, def.PlotType)
	}

	title := def.Title
	if title == "" {
		title = def.Name
	}
	chart := NewChart()
	if title != "" {
		chart = chart.Title(component.NewTitle().Text(title))
	}

	var (
		categories []string
		names      []string
		stock      []datatype.DataFrame
		stockNames []string
		trigger    = element.TooltipTriggerAxis
		xAxisType  = element.AxisTypeCategory
		polar      = true
	)

	for i, ref := range def.Series {
		name := workbook.ResolveName(f, ref.NameRange, ref.Name)
		if name == "" {
			name = fmt.Sprintf("Series %d", i+1)
		}
		values, err := workbook.ResolveValues(f, ref.ValueRange)
		if err != nil {
			return Chart{}, fmt.Errorf("series %q values: %w", name, err)
		}

		var labels []string
		if ref.CategoryRange != "" && ref.Kind != series.TypeScatter {
			if labels, err = workbook.ResolveLabels(f, ref.CategoryRange); err != nil {
				return Chart{}, fmt.Errorf("series %q categories: %w", name, err)
			}
			if categories == nil {
				categories = labels
			}
		}

		if ref.Kind != series.TypePie {
			polar = false
		}

		switch ref.Kind {
		case series.TypeLine:
			line := series.NewLine().Name(name).Data(values)
			if strings.HasPrefix(ref.PlotType, "area") {
				line = line.AreaStyle(element.NewAreaStyle())
			}
			chart = chart.Series(line)
			names = append(names, name)

		case series.TypeBar:
			chart = chart.Series(series.NewBar().Name(name).Data(values))
			names = append(names, name)

		case series.TypePie:
			pie := series.NewPie().Name(name).Data(namedItems(values, labels))
			if ref.PlotType == "doughnutChart" {
				pie = pie.Radius("40%", "70%")
			}
			chart = chart.Series(pie)
			trigger = element.TooltipTriggerItem
			names = append(names, labels...)

		case series.TypeScatter:
			var xs datatype.DataFrame
			if ref.CategoryRange != "" {
				if xs, err = workbook.ResolveValues(f, ref.CategoryRange); err != nil {
					return Chart{}, fmt.Errorf("series %q x values: %w", name, err)
				}
			} else {
				for n := range values {
					xs = append(xs, datatype.Number(n+1))
				}
			}
			chart = chart.Series(series.NewScatter().Name(name).Data(zipPairs(xs, values)))
			trigger = element.TooltipTriggerItem
			xAxisType = element.AxisTypeValue
			names = append(names, name)

		case series.TypeCandlestick:
			stock = append(stock, values)
			stockNames = append(stockNames, name)

		default:
			return Chart{}, fmt.Errorf("%w: %s", ErrUnsupportedChart, ref.PlotType)
		}
	}

	// Stock charts list open, high, low, close; anything else is drawn as lines.
	if len(stock) == 4 {
		stockName := title
		if stockName == "" {
			stockName = series.TypeCandlestick
		}
		chart = chart.Series(series.NewCandlestick().Name(stockName).Data(zipCandles(stock[0], stock[1], stock[2], stock[3])))
	} else {
		for i, values := range stock {
			chart = chart.Series(series.NewLine().Name(stockNames[i]).Data(values))
			names = append(names, stockNames[i])
		}
	}

	chart = chart.Tooltip(component.NewTooltip().Trigger(trigger))
	if len(names) > 0 {
		chart = chart.Legend(component.NewLegend().Data(names...))
	}
	if polar {
		return chart, nil
	}

	xAxis := component.NewAxis().Type(xAxisType)
	if xAxisType == element.AxisTypeCategory && len(categories) > 0 {
		xAxis = xAxis.Data(categories...)
	}
	yAxis := component.NewAxis().Type(element.AxisTypeValue)
	if def.YAxisTitle != "" {
		yAxis = yAxis.Name(def.YAxisTitle)
	}
	if len(def.YAxisRange) == 2 {
		yAxis = yAxis.Min(def.YAxisRange[0]).Max(def.YAxisRange[1])
	} else if len(stock) == 4 {
		yAxis = yAxis.Scale(true)
	}
	return chart.XAxis(xAxis).YAxis(yAxis), nil
}

func columnNames(cols []workbook.Column) []string {
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Name)
	}
	return names
}

// namedItems pairs each value with the label at the same position.
func namedItems(values datatype.DataFrame, labels []string) datatype.DataFrame {
	frame := make(datatype.DataFrame, 0, len(values))
	for i, v := range values {
		item := itemOf(v)
		if i < len(labels) && labels[i] != "" {
			item = item.Name(labels[i])
		}
		frame = append(frame, item)
	}
	return frame
}

func itemOf(p datatype.DataPoint) datatype.Item {
	switch v := p.(type) {
	case datatype.Number:
		return datatype.NewItem(v)
	case datatype.String:
		return datatype.NewItem(v)
	case datatype.Pair:
		return datatype.NewItem(v)
	case datatype.Item:
		return v
	case datatype.Candle:
		return datatype.NewItem(v)
	}
	return datatype.NewItem(datatype.Null)
}

// zipPairs joins x and y values; the shorter frame bounds the result.
func zipPairs(xs, ys datatype.DataFrame) datatype.DataFrame {
	n := min(len(xs), len(ys))
	frame := make(datatype.DataFrame, 0, n)
	for i := 0; i < n; i++ {
		frame = append(frame, datatype.Pair{X: cellOf(xs[i]), Y: cellOf(ys[i])})
	}
	return frame
}

// zipCandles builds candles from open, high, low and close columns.
func zipCandles(open, high, low, close datatype.DataFrame) datatype.DataFrame {
	n := min(len(open), len(high), len(low), len(close))
	frame := make(datatype.DataFrame, 0, n)
	for i := 0; i < n; i++ {
		frame = append(frame, datatype.NewCandle(number(open[i]), number(close[i]), number(low[i]), number(high[i])))
	}
	return frame
}

func cellOf(p datatype.DataPoint) datatype.Cell {
	if c, ok := p.(datatype.Cell); ok {
		return c
	}
	return datatype.Null
}

// number returns the numeric value of p, or NaN, which encodes as null.
func number(p datatype.DataPoint) float64 {
	if n, ok := p.(datatype.Number); ok {
		return float64(n)
	}
	return math.NaN()
}
