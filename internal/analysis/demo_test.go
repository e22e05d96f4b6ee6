package analysis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/volley-llc/volley-shot-analysis/internal/config"
)

func TestDemoStatsFormatted(t *testing.T) {
	f := DemoStats().Formatted()

	tests := []struct {
		name string
		got  FormattedStat
		want FormattedStat
	}{
		{"strokeDuration", f.StrokeDuration, FormattedStat{Pro: "1.50", Trainee: "1.80", Difference: "300"}},
		{"peakRotation", f.PeakRotation, FormattedStat{Pro: "85.0", Trainee: "75.0", Difference: "-10.0"}},
		{"peakExtension", f.PeakExtension, FormattedStat{Pro: "58.0", Trainee: "52.0", Difference: "-6.0"}},
		{"wristDrop", f.WristDrop, FormattedStat{Pro: "-35.0", Trainee: "-20.0", Difference: "15.0"}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestDemoComparisonGrid(t *testing.T) {
	data := DemoComparison()

	for name, series := range map[string][]ComparisonPoint{
		"wristHip": data.WristHip, "rotation": data.Rotation,
		"weight": data.Weight, "extension": data.Extension,
	} {
		if len(series) != 51 {
			t.Fatalf("%s has %d points, want 51", name, len(series))
		}
		for i, p := range series {
			if p.Percent != i*2 {
				t.Fatalf("%s[%d].Percent = %d, want %d", name, i, p.Percent, i*2)
			}
		}
	}
}

func TestDemoComparisonDeterministic(t *testing.T) {
	if diff := cmp.Diff(DemoComparison(), DemoComparison()); diff != "" {
		t.Fatalf("demo curves differ between calls:\n%s", diff)
	}
}

func TestDemoCurvesMatchDemoStats(t *testing.T) {
	data := DemoComparison()
	stats := DemoStats()

	minOf := func(points []ComparisonPoint, pick func(ComparisonPoint) float64) float64 {
		m := math.Inf(1)
		for _, p := range points {
			if v := pick(p); v < m {
				m = v
			}
		}
		return m
	}
	maxOf := func(points []ComparisonPoint, pick func(ComparisonPoint) float64) float64 {
		m := math.Inf(-1)
		for _, p := range points {
			if v := pick(p); v > m {
				m = v
			}
		}
		return m
	}

	// Curve extrema land within a checkpoint of the advertised stats.
	const tol = 1.0
	if got := minOf(data.WristHip, func(p ComparisonPoint) float64 { return p.Pro }); math.Abs(got-stats.WristDrop.Pro) > tol {
		t.Errorf("pro wrist dip bottoms at %v, stats say %v", got, stats.WristDrop.Pro)
	}
	if got := minOf(data.WristHip, func(p ComparisonPoint) float64 { return p.Trainee }); math.Abs(got-stats.WristDrop.Trainee) > tol {
		t.Errorf("trainee wrist dip bottoms at %v, stats say %v", got, stats.WristDrop.Trainee)
	}
	if got := maxOf(data.Rotation, func(p ComparisonPoint) float64 { return p.Pro }); math.Abs(got-stats.PeakRotation.Pro) > tol {
		t.Errorf("pro rotation peaks at %v, stats say %v", got, stats.PeakRotation.Pro)
	}
	if got := maxOf(data.Extension, func(p ComparisonPoint) float64 { return p.Trainee }); math.Abs(got-stats.PeakExtension.Trainee) > tol {
		t.Errorf("trainee extension peaks at %v, stats say %v", got, stats.PeakExtension.Trainee)
	}
}

func TestDemoResultReport(t *testing.T) {
	res := DemoResult(config.DefaultAnalysisConfig())

	if !res.Demo {
		t.Error("demo result not flagged")
	}
	if res.Report.OverallScore != 82 {
		t.Errorf("demo overall score = %d, want 82", res.Report.OverallScore)
	}
	// Rotation, wrist and weight all land in the medium band.
	if len(res.Report.Priorities) != 3 {
		t.Fatalf("demo priorities = %d, want 3", len(res.Report.Priorities))
	}
	for _, p := range res.Report.Priorities {
		if p.Severity != SeverityMedium {
			t.Errorf("%s severity = %q, want medium", p.Metric, p.Severity)
		}
	}
	if len(res.Report.Drills) != 3 {
		t.Errorf("demo drills = %d, want 3", len(res.Report.Drills))
	}
	if len(res.Phases) == 0 {
		t.Error("demo result has no phase markers")
	}
}
