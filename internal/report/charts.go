// Package report renders the comparison output for human consumption:
// go-echarts HTML pages for the web surface and gonum/plot PNG exports
// for offline tooling. It consumes the analysis result structures and
// has no influence on the pipeline itself.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/volley-llc/volley-shot-analysis/internal/analysis"
)

const (
	proSeriesColor     = "#26828e"
	traineeSeriesColor = "#ff5252"
)

// metricChart describes one of the four rendered comparison charts.
type metricChart struct {
	title  string
	unit   string
	points []analysis.ComparisonPoint
}

// RenderComparisonHTML writes a single HTML page with one line chart per
// metric, both recordings plotted against the shared stroke-progress
// axis.
func RenderComparisonHTML(w io.Writer, res analysis.Result) error {
	page := components.NewPage()
	page.PageTitle = "Stroke Comparison"

	for _, mc := range comparisonCharts(res) {
		page.AddCharts(newComparisonLine(mc, res.Phases))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render comparison page: %w", err)
	}
	return nil
}

func comparisonCharts(res analysis.Result) []metricChart {
	return []metricChart{
		{title: "Wrist-Hip Differential", unit: "px", points: res.Comparison.WristHip},
		{title: "Shoulder Rotation", unit: "deg", points: res.Comparison.Rotation},
		{title: "Weight Transfer", unit: "% right foot", points: res.Comparison.Weight},
		{title: "Arm Extension", unit: "px", points: res.Comparison.Extension},
	}
}

func newComparisonLine(mc metricChart, phases []analysis.PhaseMarker) *charts.Line {
	x := make([]string, 0, len(mc.points))
	proData := make([]opts.LineData, 0, len(mc.points))
	traineeData := make([]opts.LineData, 0, len(mc.points))
	for _, p := range mc.points {
		x = append(x, fmt.Sprintf("%d%%", p.Percent))
		proData = append(proData, opts.LineData{Value: p.Pro})
		traineeData = append(traineeData, opts.LineData{Value: p.Trainee})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: mc.title, Subtitle: phaseSubtitle(phases)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: mc.unit}),
		charts.WithXAxisOpts(opts.XAxis{Name: "stroke progress"}),
	)

	line.SetXAxis(x).
		AddSeries(string(analysis.SidePro), proData,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: proSeriesColor}),
		).
		AddSeries(string(analysis.SideTrainee), traineeData,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: traineeSeriesColor}),
		)

	return line
}

// phaseSubtitle flattens the phase markers into the chart subtitle so
// the phase spans stay visible without a dedicated overlay.
func phaseSubtitle(phases []analysis.PhaseMarker) string {
	s := ""
	for i, ph := range phases {
		if i > 0 {
			s += "  |  "
		}
		s += fmt.Sprintf("%s %d-%d%%", ph.Name, ph.StartPercent, ph.EndPercent)
	}
	return s
}
