package analysis

import (
	"github.com/volley-llc/volley-shot-analysis/internal/config"
	"github.com/volley-llc/volley-shot-analysis/internal/pose"
)

// Analyze runs the full comparison pipeline against two complete frame
// sequences and returns an immutable result. It never fails: recordings
// that produce no usable wrist-hip samples, or whose anchors span no
// frames, fall back to the deterministic demo output with Demo set.
func Analyze(proFrames, traineeFrames []pose.Frame, cfg *config.AnalysisConfig) Result {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}

	proSet := ExtractMetrics(proFrames, SidePro)
	traineeSet := ExtractMetrics(traineeFrames, SideTrainee)

	proAnchors, proOK := DetectAnchors(proSet.WristHip, cfg)
	traineeAnchors, traineeOK := DetectAnchors(traineeSet.WristHip, cfg)

	// A non-positive span means the anchors delimit nothing to
	// normalize; the heuristic does not guard against this itself, so
	// the degenerate case is routed to the demo fallback.
	if !proOK || !traineeOK || proAnchors.Span() <= 0 || traineeAnchors.Span() <= 0 {
		return DemoResult(cfg)
	}

	data := Normalize(proSet, traineeSet, proAnchors, traineeAnchors)
	stats := Compare(proSet, traineeSet, proAnchors, traineeAnchors, cfg)
	report := Recommend(stats, data, cfg)

	return Result{
		Comparison: data,
		Phases:     Phases(),
		Stats:      stats,
		Report:     report,
	}
}

// DemoResult assembles the full synthetic fallback result. The
// recommendation engine still runs so the demo report stays consistent
// with the demo statistics; since both are fixed, the result is too.
func DemoResult(cfg *config.AnalysisConfig) Result {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	stats := DemoStats()
	data := DemoComparison()
	return Result{
		Comparison: data,
		Phases:     Phases(),
		Stats:      stats,
		Report:     Recommend(stats, data, cfg),
		Demo:       true,
	}
}
