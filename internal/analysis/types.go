// Package analysis implements the stroke comparison pipeline: metric
// extraction from pose frames, phase-anchor detection, percent-based time
// normalization, comparative statistics, and the rule-based coaching
// report. The pipeline is synchronous and produces an immutable Result
// per invocation; callers own any state that outlives an invocation.
package analysis

import "strconv"

// Side labels which recording a sample or value came from.
type Side string

const (
	SidePro     Side = "Pro"
	SideTrainee Side = "Trainee"
)

// Metric identifies one of the derived kinematic measures.
type Metric string

const (
	MetricWristPosition    Metric = "wristPosition"
	MetricShoulderRotation Metric = "shoulderRotation"
	MetricWeightTransfer   Metric = "weightTransfer"
	MetricArmExtension     Metric = "armExtension"
	MetricStrokeTempo      Metric = "strokeTempo"
)

// Sample is one scalar measurement derived from a single valid frame.
type Sample struct {
	FrameID   int
	Timestamp float64
	Value     float64
	Side      Side
}

// MetricSet holds the four per-recording metric series. The series are
// filtered independently, so they may have different lengths and cover
// different subsets of FrameIDs.
type MetricSet struct {
	Side      Side
	WristHip  []Sample
	Rotation  []Sample
	Weight    []Sample
	Extension []Sample
	FrameIDs  []int
}

// Anchors are indices into a recording's wrist-hip series delimiting the
// stroke phases, plus the wrist-hip minimum itself. The detection
// heuristic keeps BackswingStart <= BackswingPeak <= ForwardSwingStart
// but does not guarantee ForwardSwingStart < FollowThroughEnd on
// pathological inputs.
type Anchors struct {
	BackswingStart    int
	BackswingPeak     int
	ForwardSwingStart int
	FollowThroughEnd  int
	MinValue          float64
}

// Span is the frame-index distance covered by the normalized timeline.
func (a Anchors) Span() int {
	return a.FollowThroughEnd - a.BackswingStart
}

// ComparisonPoint carries both recordings' values for one metric at one
// stroke-progress checkpoint.
type ComparisonPoint struct {
	Percent int     `json:"percent"`
	Pro     float64 `json:"pro"`
	Trainee float64 `json:"trainee"`
}

// ComparisonData is the shared output structure consumed by rendering
// and by the recommendation engine: four 51-point dual-value series on
// the common 0-100% stroke-progress axis.
type ComparisonData struct {
	WristHip  []ComparisonPoint `json:"wristHip"`
	Rotation  []ComparisonPoint `json:"shoulderRotation"`
	Weight    []ComparisonPoint `json:"weightTransfer"`
	Extension []ComparisonPoint `json:"armExtension"`
}

// PhaseMarker annotates a span of the aligned timeline with a named
// stroke phase. Markers are static; they do not depend on input.
type PhaseMarker struct {
	Name         string `json:"name"`
	StartPercent int    `json:"startPercent"`
	EndPercent   int    `json:"endPercent"`
	Color        string `json:"color"`
}

// StatComparison is one pro-vs-trainee statistic. Difference is always
// trainee minus pro. For StrokeDuration the Pro/Trainee values are
// seconds while Difference is milliseconds.
type StatComparison struct {
	Pro        float64 `json:"pro"`
	Trainee    float64 `json:"trainee"`
	Difference float64 `json:"difference"`
}

// Stats bundles the four comparative statistics.
type Stats struct {
	StrokeDuration StatComparison `json:"strokeDuration"`
	PeakRotation   StatComparison `json:"peakRotation"`
	PeakExtension  StatComparison `json:"peakExtension"`
	WristDrop      StatComparison `json:"wristDrop"`
}

// FormattedStat is the fixed-precision display form of a StatComparison.
type FormattedStat struct {
	Pro        string `json:"pro"`
	Trainee    string `json:"trainee"`
	Difference string `json:"difference"`
}

// FormattedStats is the display form of the statistics bundle: seconds
// to two decimals, millisecond differences as integers, everything else
// to one decimal.
type FormattedStats struct {
	StrokeDuration FormattedStat `json:"strokeDuration"`
	PeakRotation   FormattedStat `json:"peakRotation"`
	PeakExtension  FormattedStat `json:"peakExtension"`
	WristDrop      FormattedStat `json:"wristDrop"`
}

// Formatted renders the bundle at its publication precision.
func (s Stats) Formatted() FormattedStats {
	return FormattedStats{
		StrokeDuration: FormattedStat{
			Pro:        formatFixed(s.StrokeDuration.Pro, 2),
			Trainee:    formatFixed(s.StrokeDuration.Trainee, 2),
			Difference: formatFixed(s.StrokeDuration.Difference, 0),
		},
		PeakRotation:  formatStat(s.PeakRotation),
		PeakExtension: formatStat(s.PeakExtension),
		WristDrop:     formatStat(s.WristDrop),
	}
}

func formatStat(s StatComparison) FormattedStat {
	return FormattedStat{
		Pro:        formatFixed(s.Pro, 1),
		Trainee:    formatFixed(s.Trainee, 1),
		Difference: formatFixed(s.Difference, 1),
	}
}

func formatFixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Severity classifies a priority. Ordering is high > medium > low.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// SortRank maps severities to their sort position (high first).
func (s Severity) SortRank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// Priority is one issue found by the recommendation engine.
type Priority struct {
	Metric      Metric   `json:"metric"`
	Severity    Severity `json:"severity"`
	Issue       string   `json:"issue"`
	Detail      string   `json:"detail"`
	Improvement string   `json:"improvement"`
}

// Strength is one positive finding.
type Strength struct {
	Metric Metric `json:"metric"`
	Note   string `json:"note"`
}

// Drill is a practice prescription tied to one metric.
type Drill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Reps        string `json:"reps"`
}

// Report is the coaching output: severity-sorted priorities, strengths,
// up to three drills, and a 0-100 overall score.
type Report struct {
	Priorities   []Priority `json:"priorities"`
	Strengths    []Strength `json:"strengths"`
	Drills       []Drill    `json:"drills"`
	OverallScore int        `json:"overallScore"`
}

// Result is the full, immutable output of one pipeline invocation.
// Demo is true when the synthetic fallback replaced the comparison.
type Result struct {
	Comparison ComparisonData `json:"comparison"`
	Phases     []PhaseMarker  `json:"phases"`
	Stats      Stats          `json:"stats"`
	Report     Report         `json:"report"`
	Demo       bool           `json:"demo"`
}
