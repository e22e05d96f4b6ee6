package analysis

import (
	"math"

	"github.com/volley-llc/volley-shot-analysis/internal/pose"
)

// makeStrokeFrames builds a deterministic 75-frame synthetic stroke with
// a clean backswing drop, a forward-swing rise and a settled
// follow-through. With default thresholds the wrist-hip anchors come out
// as backswingStart=6, backswingPeak=27, forwardSwingStart=28,
// followThroughEnd=55, minimum -42.
func makeStrokeFrames() []pose.Frame {
	const n = 75
	const (
		leftAnkleX = 280.0
		shoulderX  = 330.0
		shoulderY  = 200.0
	)

	frames := make([]pose.Frame, 0, n)
	for i := 0; i < n; i++ {
		d := strokeWristHip(i)
		wristY := 300.0 + d
		ext := strokeExtension(i)
		dy := wristY - shoulderY
		wristX := shoulderX + math.Sqrt(ext*ext-dy*dy)
		weight := strokeWeight(i)
		rightAnkleX := weight * leftAnkleX / (100 - weight)

		frames = append(frames, pose.Frame{
			FrameID:   i*2 + 4,
			Timestamp: float64(i) / 30,
			Primitives: &pose.Primitives{People: []pose.Person{{
				Pose: &pose.Pose{
					LeftShoulder:  &pose.Joint{X: shoulderX - strokeShoulderDX(i), Y: 198},
					RightShoulder: &pose.Joint{X: shoulderX, Y: shoulderY},
					RightWrist:    &pose.Joint{X: wristX, Y: wristY},
					RightHip:      &pose.Joint{X: 320, Y: 300},
					LeftHip:       &pose.Joint{X: 290, Y: 300},
					LeftAnkle:     &pose.Joint{X: leftAnkleX, Y: 452},
					RightAnkle:    &pose.Joint{X: rightAnkleX, Y: 450},
				},
			}}},
		})
	}
	return frames
}

func strokeWristHip(i int) float64 {
	switch {
	case i < 10:
		return 18
	case i <= 27:
		return 18 - 60*float64(i-10)/17
	case i <= 45:
		return -42 + 67*float64(i-27)/18
	case i <= 51:
		deltas := []float64{2.5, 2.0, 1.5, 1.2, 1.0, 0.5}
		v := 25.0
		for k := 0; k < i-45; k++ {
			v -= deltas[k]
		}
		return v
	default:
		return 16.3
	}
}

func strokeShoulderDX(i int) float64 {
	if i <= 27 {
		t := float64(i) / 27
		return 50 + 45*math.Sin(t*math.Pi/2)
	}
	t := math.Min(float64(i-27)/25, 1)
	return 95 - 47*math.Sin(t*math.Pi/2)
}

func strokeWeight(i int) float64 {
	return 30 + 42/(1+math.Exp(-0.35*float64(i-32)))
}

func strokeExtension(i int) float64 {
	if i <= 40 {
		t := float64(i) / 40
		return 130 + 25*math.Sin(t*math.Pi/2)
	}
	t := math.Min(float64(i-40)/30, 1)
	return 155 - 15*math.Sin(t*math.Pi/2)
}

// wristHipSeries builds a bare wrist-hip sample series from raw values.
func wristHipSeries(values []float64) []Sample {
	samples := make([]Sample, len(values))
	for i, v := range values {
		samples[i] = Sample{FrameID: i, Timestamp: float64(i) / 30, Value: v, Side: SideTrainee}
	}
	return samples
}
