package analysis

import "math"

// The demo generator is a pure, data-free fallback. When either
// recording yields no usable wrist-hip samples (or the anchors span no
// frames) the pipeline substitutes this fixed synthetic comparison so
// consumers never see an empty state. Nothing here consults the inputs.

// DemoStats returns the fixed synthetic statistics bundle.
func DemoStats() Stats {
	return Stats{
		StrokeDuration: StatComparison{Pro: 1.5, Trainee: 1.8, Difference: 300},
		PeakRotation:   StatComparison{Pro: 85, Trainee: 75, Difference: -10},
		PeakExtension:  StatComparison{Pro: 58, Trainee: 52, Difference: -6},
		WristDrop:      StatComparison{Pro: -35, Trainee: -20, Difference: 15},
	}
}

// DemoComparison returns deterministic synthetic curves on the standard
// 51-checkpoint axis. The curve extrema agree with DemoStats: the pro
// wrist-hip dip bottoms at -35, the trainee at -20, rotation peaks at
// 85/75 degrees and extension at 58/52 px.
func DemoComparison() ComparisonData {
	data := ComparisonData{
		WristHip:  make([]ComparisonPoint, 0, checkpointCount),
		Rotation:  make([]ComparisonPoint, 0, checkpointCount),
		Weight:    make([]ComparisonPoint, 0, checkpointCount),
		Extension: make([]ComparisonPoint, 0, checkpointCount),
	}

	for percent := 0; percent <= 100; percent += percentStep {
		t := float64(percent) / 100

		data.WristHip = append(data.WristHip, ComparisonPoint{
			Percent: percent,
			Pro:     15 - 50*gauss(t, 0.35, 0.18),
			Trainee: 12 - 32*gauss(t, 0.40, 0.22),
		})
		data.Rotation = append(data.Rotation, ComparisonPoint{
			Percent: percent,
			Pro:     85 * math.Sin(math.Pi*t),
			Trainee: 75 * math.Sin(math.Pi*t),
		})
		data.Weight = append(data.Weight, ComparisonPoint{
			Percent: percent,
			Pro:     30 + 45*logistic(t, 0.45, 10),
			Trainee: 38 + 30*logistic(t, 0.50, 8),
		})
		data.Extension = append(data.Extension, ComparisonPoint{
			Percent: percent,
			Pro:     30 + 28*math.Sin(math.Pi*t),
			Trainee: 30 + 22*math.Sin(math.Pi*t),
		})
	}

	return data
}

func gauss(t, center, width float64) float64 {
	d := (t - center) / width
	return math.Exp(-d * d)
}

func logistic(t, center, steepness float64) float64 {
	return 1 / (1 + math.Exp(-steepness*(t-center)))
}
