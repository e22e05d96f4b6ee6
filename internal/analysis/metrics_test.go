package analysis

import (
	"math"
	"testing"

	"github.com/volley-llc/volley-shot-analysis/internal/pose"
)

func fullPoseFrame(id int) pose.Frame {
	return pose.Frame{
		FrameID:   id,
		Timestamp: float64(id) / 30,
		Primitives: &pose.Primitives{People: []pose.Person{{
			Pose: &pose.Pose{
				LeftShoulder:  &pose.Joint{X: 260, Y: 198},
				RightShoulder: &pose.Joint{X: 330, Y: 200},
				RightWrist:    &pose.Joint{X: 390, Y: 280},
				RightHip:      &pose.Joint{X: 320, Y: 300},
				LeftAnkle:     &pose.Joint{X: 280, Y: 452},
				RightAnkle:    &pose.Joint{X: 120, Y: 450},
			},
		}}},
	}
}

func TestExtractMetricsValues(t *testing.T) {
	set := ExtractMetrics([]pose.Frame{fullPoseFrame(7)}, SideTrainee)

	if len(set.WristHip) != 1 || len(set.Rotation) != 1 || len(set.Weight) != 1 || len(set.Extension) != 1 {
		t.Fatalf("expected one sample per metric, got %d/%d/%d/%d",
			len(set.WristHip), len(set.Rotation), len(set.Weight), len(set.Extension))
	}

	// wrist.y - hip.y
	if got := set.WristHip[0].Value; got != 280-300 {
		t.Errorf("wristHip = %v, want -20", got)
	}
	// |260-330|/50*45
	if got := set.Rotation[0].Value; math.Abs(got-63) > 1e-9 {
		t.Errorf("rotation = %v, want 63", got)
	}
	// 120/(280+120)*100
	if got := set.Weight[0].Value; math.Abs(got-30) > 1e-9 {
		t.Errorf("weight = %v, want 30", got)
	}
	// hypot(390-330, 280-200)
	if got := set.Extension[0].Value; math.Abs(got-100) > 1e-9 {
		t.Errorf("extension = %v, want 100", got)
	}

	if set.WristHip[0].Side != SideTrainee {
		t.Errorf("side = %q, want %q", set.WristHip[0].Side, SideTrainee)
	}
	if set.WristHip[0].FrameID != 7 {
		t.Errorf("frameID = %d, want 7", set.WristHip[0].FrameID)
	}
}

func TestExtractMetricsFiltersPerMetric(t *testing.T) {
	withHipMissing := fullPoseFrame(1)
	withHipMissing.Primitives.People[0].Pose.RightHip = nil

	withZeroAnkle := fullPoseFrame(2)
	withZeroAnkle.Primitives.People[0].Pose.RightAnkle = &pose.Joint{X: 0, Y: 450}

	noDetections := pose.Frame{FrameID: 3}

	set := ExtractMetrics([]pose.Frame{withHipMissing, withZeroAnkle, noDetections}, SidePro)

	// Missing hip drops only the wrist-hip sample for that frame.
	if len(set.WristHip) != 1 {
		t.Errorf("wristHip samples = %d, want 1", len(set.WristHip))
	}
	// A zero ankle coordinate is the undetected sentinel, not a position.
	if len(set.Weight) != 1 {
		t.Errorf("weight samples = %d, want 1", len(set.Weight))
	}
	if len(set.Rotation) != 2 {
		t.Errorf("rotation samples = %d, want 2", len(set.Rotation))
	}
	if len(set.Extension) != 2 {
		t.Errorf("extension samples = %d, want 2", len(set.Extension))
	}

	// Every frame ID is recorded regardless of validity.
	if len(set.FrameIDs) != 3 {
		t.Errorf("frameIDs = %d, want 3", len(set.FrameIDs))
	}
}

func TestExtractMetricsLengthBound(t *testing.T) {
	frames := makeStrokeFrames()
	set := ExtractMetrics(frames, SidePro)

	for name, series := range map[string][]Sample{
		"wristHip": set.WristHip, "rotation": set.Rotation,
		"weight": set.Weight, "extension": set.Extension,
	} {
		if len(series) > len(frames) {
			t.Errorf("%s has %d samples for %d frames", name, len(series), len(frames))
		}
	}
}

func TestExtractMetricsEmptyInput(t *testing.T) {
	set := ExtractMetrics(nil, SidePro)
	if len(set.WristHip) != 0 || len(set.FrameIDs) != 0 {
		t.Errorf("expected empty metric set, got %+v", set)
	}
}
