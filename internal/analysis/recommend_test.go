package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volley-llc/volley-shot-analysis/internal/config"
)

// weightCurve builds a comparison series whose pro side spans proRange
// and whose trainee side spans traineeRange, both starting at 30.
func weightCurve(proRange, traineeRange float64) []ComparisonPoint {
	points := make([]ComparisonPoint, 51)
	for i := range points {
		t := float64(i) / 50
		points[i] = ComparisonPoint{
			Percent: i * 2,
			Pro:     30 + proRange*t,
			Trainee: 30 + traineeRange*t,
		}
	}
	return points
}

func TestRecommendAllOnTarget(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	stats := Stats{
		StrokeDuration: StatComparison{Pro: 1.5, Trainee: 1.52, Difference: 20},
		PeakRotation:   StatComparison{Pro: 85, Trainee: 84, Difference: -1},
		PeakExtension:  StatComparison{Pro: 58, Trainee: 57, Difference: -1},
		WristDrop:      StatComparison{Pro: -35, Trainee: -33, Difference: 2},
	}
	data := ComparisonData{Weight: weightCurve(42, 40)}

	rpt := Recommend(stats, data, cfg)

	assert.Empty(t, rpt.Priorities)
	assert.Empty(t, rpt.Drills)
	assert.Len(t, rpt.Strengths, 5)
	// round(mean(95, 90, 90, 95, 95))
	assert.Equal(t, 93, rpt.OverallScore)
}

func TestRecommendAllFlagged(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	stats := Stats{
		StrokeDuration: StatComparison{Difference: 400},
		PeakRotation:   StatComparison{Difference: -20},
		PeakExtension:  StatComparison{Difference: -30},
		WristDrop:      StatComparison{Difference: 25},
	}
	data := ComparisonData{Weight: weightCurve(42, 15)}

	rpt := Recommend(stats, data, cfg)

	require.Len(t, rpt.Priorities, 5)
	// High severities first, in rule order, then the medium tempo flag.
	wantMetrics := []Metric{
		MetricShoulderRotation,
		MetricWristPosition,
		MetricWeightTransfer,
		MetricArmExtension,
		MetricStrokeTempo,
	}
	for i, want := range wantMetrics {
		assert.Equal(t, want, rpt.Priorities[i].Metric, "priority %d", i)
	}
	for _, p := range rpt.Priorities[:4] {
		assert.Equal(t, SeverityHigh, p.Severity)
	}
	assert.Equal(t, SeverityMedium, rpt.Priorities[4].Severity)

	assert.Empty(t, rpt.Strengths)

	// Drills come from the first three sorted priorities only.
	require.Len(t, rpt.Drills, 3)
	assert.Equal(t, drillCatalog[MetricShoulderRotation].Name, rpt.Drills[0].Name)
	assert.Equal(t, drillCatalog[MetricWristPosition].Name, rpt.Drills[1].Name)
	assert.Equal(t, drillCatalog[MetricWeightTransfer].Name, rpt.Drills[2].Name)

	// round(mean(60, 65, 60, 65, 70))
	assert.Equal(t, 64, rpt.OverallScore)
}

func TestRecommendSeveritySortIsStable(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()

	// Medium rotation flag fires before the high wrist flag in rule
	// order; the sort must still put the high flag first.
	stats := Stats{
		PeakRotation:  StatComparison{Difference: -10},
		WristDrop:     StatComparison{Difference: 25},
		PeakExtension: StatComparison{Difference: 0},
	}
	data := ComparisonData{Weight: weightCurve(42, 40)}

	rpt := Recommend(stats, data, cfg)

	require.GreaterOrEqual(t, len(rpt.Priorities), 2)
	assert.Equal(t, MetricWristPosition, rpt.Priorities[0].Metric)
	assert.Equal(t, SeverityHigh, rpt.Priorities[0].Severity)
	assert.Equal(t, MetricShoulderRotation, rpt.Priorities[1].Metric)
	assert.Equal(t, SeverityMedium, rpt.Priorities[1].Severity)
}

func TestRecommendNeutralBands(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()

	// Rotation diff between the medium threshold and the strength floor,
	// tempo diff between the strength floor and the medium threshold:
	// neither produces a priority or a strength.
	stats := Stats{
		StrokeDuration: StatComparison{Difference: 200},
		PeakRotation:   StatComparison{Difference: -6},
		PeakExtension:  StatComparison{Difference: 0},
		WristDrop:      StatComparison{Difference: 0},
	}
	data := ComparisonData{Weight: weightCurve(42, 40)}

	rpt := Recommend(stats, data, cfg)

	assert.Empty(t, rpt.Priorities)
	for _, s := range rpt.Strengths {
		assert.NotEqual(t, MetricShoulderRotation, s.Metric)
		assert.NotEqual(t, MetricStrokeTempo, s.Metric)
	}
	// round(mean(85, 90, 90, 95, 85))
	assert.Equal(t, 89, rpt.OverallScore)
}

func TestRecommendScoreBounds(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()

	cases := []struct {
		name  string
		stats Stats
		data  ComparisonData
	}{
		{"all on target", Stats{}, ComparisonData{Weight: weightCurve(42, 42)}},
		{"all flagged", Stats{
			StrokeDuration: StatComparison{Difference: 1000},
			PeakRotation:   StatComparison{Difference: -40},
			PeakExtension:  StatComparison{Difference: -40},
			WristDrop:      StatComparison{Difference: 40},
		}, ComparisonData{Weight: weightCurve(42, 0)}},
		{"empty curves", Stats{}, ComparisonData{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rpt := Recommend(tc.stats, tc.data, cfg)
			assert.GreaterOrEqual(t, rpt.OverallScore, 0)
			assert.LessOrEqual(t, rpt.OverallScore, 100)
			assert.LessOrEqual(t, len(rpt.Drills), maxDrills)
		})
	}
}

func TestDrillCatalogCoversAllMetrics(t *testing.T) {
	for _, m := range []Metric{
		MetricWristPosition, MetricShoulderRotation, MetricWeightTransfer,
		MetricArmExtension, MetricStrokeTempo,
	} {
		drill, ok := drillCatalog[m]
		require.True(t, ok, "no drill for %s", m)
		assert.NotEmpty(t, drill.Name)
		assert.NotEmpty(t, drill.Description)
		assert.NotEmpty(t, drill.Reps)
	}
}
