// Package plotpage renders an HTML page of ECharts charts that show how a
// series was resampled and how its indices were partitioned.
package plotpage

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/components"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Plot is the input for one page.
type Plot struct {
	Title string
	Theme Theme

	// Source is the input series.
	Source []float64

	// Indices maps each resampled position to a Source index.
	Indices []int

	// Bounds are optional partition boundaries over Source.
	Bounds []int
}

// Render writes the page to w. It holds an overlay of the kept samples on the
// source, the index mapping, and partition sizes when Bounds is set.
func Render(w io.Writer, p Plot) error {
	if len(p.Source) == 0 {
		return ErrNoData
	}

	cOpts := NewChartOpts(p.Theme)

	page := components.NewPage()
	page.PageTitle = p.Title
	page.AddCharts(
		OverlayChart(cOpts, p.Source, p.Indices),
		MappingChart(cOpts, p.Indices),
	)

	if len(p.Bounds) > 1 {
		page.AddCharts(PartitionChart(cOpts, p.Bounds))
	}

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render plot page: %w", err)
	}

	return nil
}

// OverlayChart draws the source series with the resampled points marked at
// the source positions they were taken from.
func OverlayChart(cOpts *ChartOpts, source []float64, indices []int) components.Charter {
	labels := indexLabels(len(source))

	src := make([]*float64, len(source))
	kept := make([]*float64, len(source))

	for i := range source {
		src[i] = &source[i]
	}

	for _, idx := range indices {
		if idx >= 0 && idx < len(source) {
			kept[idx] = &source[idx]
		}
	}

	return BuildLineChart(cOpts, "Resampled series", labels, []LineSeries{
		{Name: "source", Data: src},
		{Name: "kept", Data: kept, ShowSymbol: true},
	}, "value")
}

// MappingChart draws the output index to source index walk as a step line.
func MappingChart(cOpts *ChartOpts, indices []int) components.Charter {
	data := make([]*float64, len(indices))
	for i, idx := range indices {
		v := float64(idx)
		data[i] = &v
	}

	return BuildLineChart(cOpts, "Index mapping", indexLabels(len(indices)), []LineSeries{
		{Name: "source index", Data: data, Step: true},
	}, "source index")
}

// PartitionChart draws one bar per partition with its size.
func PartitionChart(cOpts *ChartOpts, bounds []int) components.Charter {
	sizes := make([]int, len(bounds)-1)
	for i := range sizes {
		sizes[i] = bounds[i+1] - bounds[i]
	}

	return BuildBarChart(cOpts, "Partition sizes", indexLabels(len(sizes)), []BarSeries{
		{Name: "elements", Data: sizes},
	}, "elements")
}

func indexLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return labels
}
