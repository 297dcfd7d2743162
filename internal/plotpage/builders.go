package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "100%"
	chartHeight = "480px"
)

// LineSeries defines one line of a line chart. Nil entries in Data are gaps.
type LineSeries struct {
	Name       string
	Data       []*float64
	Color      string // Optional, uses the theme palette if empty.
	ShowSymbol bool   // Draw a marker on every point.
	Step       bool   // Draw a step line instead of straight segments.
}

// BarSeries defines one series of a bar chart.
type BarSeries struct {
	Name  string
	Data  []int
	Color string // Optional, uses the theme palette if empty.
}

// BuildLineChart constructs a themed line chart. If cOpts is nil,
// DefaultChartOpts() is used.
func BuildLineChart(cOpts *ChartOpts, title string, labels []string, series []LineSeries, yAxisLabel string) *charts.Line {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, chartHeight)),
		charts.WithTitleOpts(cOpts.Title(title, "")),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithDataZoomOpts(cOpts.DataZoom()...),
		charts.WithXAxisOpts(cOpts.XAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(yAxisLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
	)

	line.SetXAxis(labels)

	for idx, s := range series {
		lineData := make([]opts.LineData, len(s.Data))
		for i, v := range s.Data {
			if v == nil {
				lineData[i] = opts.LineData{Value: "-"}

				continue
			}

			lineData[i] = opts.LineData{Value: *v}
		}

		color := s.Color
		if color == "" {
			color = cOpts.SeriesColor(idx)
		}

		lineOpts := opts.LineChart{ShowSymbol: opts.Bool(s.ShowSymbol), ConnectNulls: opts.Bool(true)}
		if s.Step {
			lineOpts.Step = "end"
		}

		line.AddSeries(s.Name, lineData,
			charts.WithLineChartOpts(lineOpts),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
		)
	}

	return line
}

// BuildBarChart constructs a themed bar chart. If cOpts is nil,
// DefaultChartOpts() is used.
func BuildBarChart(cOpts *ChartOpts, title string, labels []string, series []BarSeries, yAxisLabel string) *charts.Bar {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, chartHeight)),
		charts.WithTitleOpts(cOpts.Title(title, "")),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithXAxisOpts(cOpts.XAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(yAxisLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
	)

	bar.SetXAxis(labels)

	for idx, s := range series {
		barData := make([]opts.BarData, len(s.Data))
		for i, v := range s.Data {
			barData[i] = opts.BarData{Value: v}
		}

		color := s.Color
		if color == "" {
			color = cOpts.SeriesColor(idx)
		}

		bar.AddSeries(s.Name, barData, charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
	}

	return bar
}
