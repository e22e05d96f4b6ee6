package analysis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/volley-llc/volley-shot-analysis/internal/config"
)

// Compare computes the four pro-vs-trainee statistics from the metric
// sets and anchors. Differences are always trainee minus pro. Stroke
// duration assumes the configured capture framerate and reports its
// difference in milliseconds. No smoothing or outlier rejection is
// applied.
func Compare(pro, trainee MetricSet, proAnchors, traineeAnchors Anchors, cfg *config.AnalysisConfig) Stats {
	fps := cfg.GetCaptureFPS()
	proDuration := float64(proAnchors.Span()) / fps
	traineeDuration := float64(traineeAnchors.Span()) / fps

	proRotation := seriesMax(pro.Rotation)
	traineeRotation := seriesMax(trainee.Rotation)
	proExtension := seriesMax(pro.Extension)
	traineeExtension := seriesMax(trainee.Extension)

	return Stats{
		StrokeDuration: StatComparison{
			Pro:        proDuration,
			Trainee:    traineeDuration,
			Difference: (traineeDuration - proDuration) * 1000,
		},
		PeakRotation: StatComparison{
			Pro:        proRotation,
			Trainee:    traineeRotation,
			Difference: traineeRotation - proRotation,
		},
		PeakExtension: StatComparison{
			Pro:        proExtension,
			Trainee:    traineeExtension,
			Difference: traineeExtension - proExtension,
		},
		WristDrop: StatComparison{
			Pro:        proAnchors.MinValue,
			Trainee:    traineeAnchors.MinValue,
			Difference: traineeAnchors.MinValue - proAnchors.MinValue,
		},
	}
}

// seriesMax returns the maximum sample value, or 0 for an empty series.
func seriesMax(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	return floats.Max(seriesValues(samples))
}

func seriesValues(samples []Sample) []float64 {
	vals := make([]float64, len(samples))
	for i := range samples {
		vals[i] = samples[i].Value
	}
	return vals
}
