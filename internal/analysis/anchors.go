package analysis

import (
	"math"

	"github.com/volley-llc/volley-shot-analysis/internal/config"
)

// DetectAnchors locates the four phase boundaries in a wrist-hip series.
// It returns false when the series is empty.
//
// The thresholds are fixed heuristics tuned for 30 fps captures: a first
// difference steeper than the onset delta marks the backswing and forward
// swing starts, and a first difference settling under the settle delta
// marks the follow-through end. They do not adapt to framerate or noise
// scale; this is a documented limitation of the detection scheme.
func DetectAnchors(samples []Sample, cfg *config.AnalysisConfig) (Anchors, bool) {
	if len(samples) == 0 {
		return Anchors{}, false
	}

	// Backswing peak: global minimum, first occurrence wins on ties.
	peak := 0
	for i := range samples {
		if samples[i].Value < samples[peak].Value {
			peak = i
		}
	}

	a := Anchors{
		BackswingPeak:     peak,
		ForwardSwingStart: peak,
		FollowThroughEnd:  len(samples) - 1,
		MinValue:          samples[peak].Value,
	}

	onset := cfg.GetSwingOnsetDelta()
	lead := cfg.GetBackswingLeadFrames()

	// Backswing start: first steep drop before the peak, backed up by the
	// lead allowance. Stays 0 if the drop is never steep enough.
	for i := 1; i < peak; i++ {
		if samples[i].Value-samples[i-1].Value < -onset {
			a.BackswingStart = max(0, i-lead)
			break
		}
	}

	// Forward swing start: first steep rise after the peak.
	for i := peak + 1; i < len(samples)-1; i++ {
		if samples[i+1].Value-samples[i].Value > onset {
			a.ForwardSwingStart = i
			break
		}
	}

	// Follow-through end: first settled frame after the forward swing has
	// had room to develop, padded forward. Defaults to the last index.
	settle := cfg.GetSettleDelta()
	skip := cfg.GetForwardSwingSkipFrames()
	pad := cfg.GetFollowThroughPadFrames()
	limit := min(len(samples)-pad, len(samples)-1)
	for i := a.ForwardSwingStart + skip; i < limit; i++ {
		if math.Abs(samples[i+1].Value-samples[i].Value) < settle {
			a.FollowThroughEnd = i + pad
			break
		}
	}

	return a, true
}
