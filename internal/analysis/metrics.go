package analysis

import (
	"math"

	"github.com/volley-llc/volley-shot-analysis/internal/pose"
)

// rotationProxyScale converts shoulder x-separation to a degree figure:
// (|dx| / 50) * 45. This is a linear proxy, not a true rotation angle.
const (
	rotationProxyDivisor = 50.0
	rotationProxyDegrees = 45.0
)

// ExtractMetrics converts a frame sequence into the four metric series.
// Each extraction rule is evaluated independently per frame and only
// emits a sample when its joint-validity precondition holds, so the four
// series can differ in length. Frames without detections are skipped
// silently; every frame ID is still recorded in FrameIDs.
func ExtractMetrics(frames []pose.Frame, side Side) MetricSet {
	set := MetricSet{Side: side}

	for i := range frames {
		f := &frames[i]
		set.FrameIDs = append(set.FrameIDs, f.FrameID)

		p := f.FirstPose()
		if p == nil {
			continue
		}

		// Wrist-hip vertical differential. Signed; more negative means
		// the wrist sits higher above the hip (image y grows downward).
		if p.RightWrist.ValidY() && p.RightHip.ValidY() {
			set.WristHip = append(set.WristHip, Sample{
				FrameID:   f.FrameID,
				Timestamp: f.Timestamp,
				Value:     p.RightWrist.Y - p.RightHip.Y,
				Side:      side,
			})
		}

		// Shoulder rotation proxy from horizontal shoulder separation.
		if p.LeftShoulder.ValidX() && p.RightShoulder.ValidX() {
			dx := math.Abs(p.LeftShoulder.X - p.RightShoulder.X)
			set.Rotation = append(set.Rotation, Sample{
				FrameID:   f.FrameID,
				Timestamp: f.Timestamp,
				Value:     dx / rotationProxyDivisor * rotationProxyDegrees,
				Side:      side,
			})
		}

		// Percent of weight on the right foot. The positivity guard
		// excludes a zero denominator.
		if p.LeftAnkle.ValidX() && p.RightAnkle.ValidX() {
			set.Weight = append(set.Weight, Sample{
				FrameID:   f.FrameID,
				Timestamp: f.Timestamp,
				Value:     p.RightAnkle.X / (p.LeftAnkle.X + p.RightAnkle.X) * 100,
				Side:      side,
			})
		}

		// Arm extension as shoulder-to-wrist distance.
		if p.RightShoulder.Valid() && p.RightWrist.Valid() {
			set.Extension = append(set.Extension, Sample{
				FrameID:   f.FrameID,
				Timestamp: f.Timestamp,
				Value:     math.Hypot(p.RightWrist.X-p.RightShoulder.X, p.RightWrist.Y-p.RightShoulder.Y),
				Side:      side,
			})
		}
	}

	return set
}
