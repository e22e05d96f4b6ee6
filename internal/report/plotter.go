package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/volley-llc/volley-shot-analysis/internal/analysis"
)

var (
	proLineColor     = color.RGBA{R: 0x26, G: 0x82, B: 0x8e, A: 255}
	traineeLineColor = color.RGBA{R: 0xff, G: 0x52, B: 0x52, A: 255}
)

// SaveComparisonPNGs writes one PNG per metric into outputDir and
// returns the file paths. Used by the offline comparison tool; the web
// surface renders the same curves through go-echarts instead.
func SaveComparisonPNGs(res analysis.Result, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name  string
		chart metricChart
	}{
		{"wrist_hip.png", metricChart{title: "Wrist-Hip Differential", unit: "px", points: res.Comparison.WristHip}},
		{"shoulder_rotation.png", metricChart{title: "Shoulder Rotation", unit: "deg", points: res.Comparison.Rotation}},
		{"weight_transfer.png", metricChart{title: "Weight Transfer", unit: "% right foot", points: res.Comparison.Weight}},
		{"arm_extension.png", metricChart{title: "Arm Extension", unit: "px", points: res.Comparison.Extension}},
	}

	var paths []string
	for _, f := range files {
		path := filepath.Join(outputDir, f.name)
		if err := saveMetricPNG(f.chart, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func saveMetricPNG(mc metricChart, path string) error {
	p := plot.New()
	p.Title.Text = mc.title
	p.X.Label.Text = "stroke progress (%)"
	p.Y.Label.Text = mc.unit
	p.Legend.Top = true

	proPts := make(plotter.XYs, len(mc.points))
	traineePts := make(plotter.XYs, len(mc.points))
	for i, pt := range mc.points {
		proPts[i].X = float64(pt.Percent)
		proPts[i].Y = pt.Pro
		traineePts[i].X = float64(pt.Percent)
		traineePts[i].Y = pt.Trainee
	}

	proLine, err := plotter.NewLine(proPts)
	if err != nil {
		return fmt.Errorf("failed to build pro line for %s: %w", mc.title, err)
	}
	proLine.Color = proLineColor
	proLine.Width = vg.Points(1.5)

	traineeLine, err := plotter.NewLine(traineePts)
	if err != nil {
		return fmt.Errorf("failed to build trainee line for %s: %w", mc.title, err)
	}
	traineeLine.Color = traineeLineColor
	traineeLine.Width = vg.Points(1.5)

	p.Add(proLine, traineeLine)
	p.Legend.Add(string(analysis.SidePro), proLine)
	p.Legend.Add(string(analysis.SideTrainee), traineeLine)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
