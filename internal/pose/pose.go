// Package pose models 2-D body-joint recordings produced by an upstream
// pose estimator. Recordings arrive as an ordered JSON array of frames;
// each frame optionally carries detected people with named joints.
package pose

import (
	"encoding/json"
	"fmt"
)

// Joint is a single 2-D joint coordinate in image space (pixels, y down).
type Joint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ValidX reports whether the x coordinate carries a real detection.
// The estimator emits zero or negative coordinates for joints it could
// not locate, so only strictly positive values count as detected.
func (j *Joint) ValidX() bool {
	return j != nil && j.X > 0
}

// ValidY reports whether the y coordinate carries a real detection.
func (j *Joint) ValidY() bool {
	return j != nil && j.Y > 0
}

// Valid reports whether both coordinates carry a real detection.
func (j *Joint) Valid() bool {
	return j != nil && j.X > 0 && j.Y > 0
}

// Pose holds the named joints the analysis pipeline consumes. Absent
// joints decode to nil; validity of present joints is still governed by
// the positive-coordinate convention.
type Pose struct {
	Nose          *Joint `json:"nose,omitempty"`
	LeftShoulder  *Joint `json:"leftShoulder,omitempty"`
	RightShoulder *Joint `json:"rightShoulder,omitempty"`
	LeftElbow     *Joint `json:"leftElbow,omitempty"`
	RightElbow    *Joint `json:"rightElbow,omitempty"`
	LeftWrist     *Joint `json:"leftWrist,omitempty"`
	RightWrist    *Joint `json:"rightWrist,omitempty"`
	LeftHip       *Joint `json:"leftHip,omitempty"`
	RightHip      *Joint `json:"rightHip,omitempty"`
	LeftKnee      *Joint `json:"leftKnee,omitempty"`
	RightKnee     *Joint `json:"rightKnee,omitempty"`
	LeftAnkle     *Joint `json:"leftAnkle,omitempty"`
	RightAnkle    *Joint `json:"rightAnkle,omitempty"`
}

// Person is one detected person within a frame.
type Person struct {
	Pose *Pose `json:"pose,omitempty"`
}

// Primitives wraps the detection output attached to a frame.
type Primitives struct {
	People []Person `json:"people"`
}

// Frame is one sample of a recording. FrameID is source-assigned and not
// necessarily contiguous; Timestamp defaults to 0 when absent.
type Frame struct {
	FrameID    int         `json:"frameId"`
	Timestamp  float64     `json:"timestamp"`
	Primitives *Primitives `json:"primitives,omitempty"`
}

// FirstPose returns the pose of the first detected person, or nil when
// the frame has no detections. Additional people are ignored.
func (f *Frame) FirstPose() *Pose {
	if f.Primitives == nil || len(f.Primitives.People) == 0 {
		return nil
	}
	return f.Primitives.People[0].Pose
}

// ParseRecording decodes a recording document. A malformed document is
// the only error the analysis boundary ever surfaces; a structurally
// valid but empty recording parses fine and is handled downstream.
func ParseRecording(data []byte) ([]Frame, error) {
	var frames []Frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("failed to parse recording JSON: %w", err)
	}
	return frames, nil
}
