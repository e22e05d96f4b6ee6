package analysis

import "math"

// The normalized timeline samples stroke progress at fixed checkpoints:
// 0, 2, 4, ..., 100 percent.
const (
	percentStep     = 2
	checkpointCount = 100/percentStep + 1
)

// Normalize maps both recordings onto the common stroke-progress axis
// and produces the four paired comparison series. Every metric kind uses
// its own value series but the same percent-to-index mapping derived
// from the wrist-hip anchors, so all four metrics share one phase
// timeline per recording.
func Normalize(pro, trainee MetricSet, proAnchors, traineeAnchors Anchors) ComparisonData {
	data := ComparisonData{
		WristHip:  make([]ComparisonPoint, 0, checkpointCount),
		Rotation:  make([]ComparisonPoint, 0, checkpointCount),
		Weight:    make([]ComparisonPoint, 0, checkpointCount),
		Extension: make([]ComparisonPoint, 0, checkpointCount),
	}

	for percent := 0; percent <= 100; percent += percentStep {
		proIdx := fractionalIndex(proAnchors, percent)
		traineeIdx := fractionalIndex(traineeAnchors, percent)

		data.WristHip = append(data.WristHip, ComparisonPoint{
			Percent: percent,
			Pro:     valueAt(pro.WristHip, proIdx),
			Trainee: valueAt(trainee.WristHip, traineeIdx),
		})
		data.Rotation = append(data.Rotation, ComparisonPoint{
			Percent: percent,
			Pro:     valueAt(pro.Rotation, proIdx),
			Trainee: valueAt(trainee.Rotation, traineeIdx),
		})
		data.Weight = append(data.Weight, ComparisonPoint{
			Percent: percent,
			Pro:     valueAt(pro.Weight, proIdx),
			Trainee: valueAt(trainee.Weight, traineeIdx),
		})
		data.Extension = append(data.Extension, ComparisonPoint{
			Percent: percent,
			Pro:     valueAt(pro.Extension, proIdx),
			Trainee: valueAt(trainee.Extension, traineeIdx),
		})
	}

	return data
}

// fractionalIndex maps a stroke-progress percent into the recording's
// native frame-index space spanned by its anchors.
func fractionalIndex(a Anchors, percent int) float64 {
	return float64(a.BackswingStart) + float64(a.Span())*float64(percent)/100
}

// valueAt linearly interpolates a series at a fractional index. Indices
// at or past the last sample clamp to the last value rather than
// extrapolating; an empty series yields 0.
func valueAt(samples []Sample, idx float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	lo := int(math.Floor(idx))
	if lo >= len(samples)-1 {
		return samples[len(samples)-1].Value
	}
	if lo < 0 {
		return samples[0].Value
	}
	frac := idx - float64(lo)
	return samples[lo].Value + (samples[lo+1].Value-samples[lo].Value)*frac
}
