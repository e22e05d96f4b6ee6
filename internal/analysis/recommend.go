package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/volley-llc/volley-shot-analysis/internal/config"
)

// Per-rule component scores. Each of the five rule blocks contributes
// exactly one of these to the overall average.
const (
	scoreRotationHigh       = 60
	scoreRotationMedium     = 75
	scoreRotationStrength   = 95
	scoreRotationNeutral    = 85
	scoreWristHigh          = 65
	scoreWristMedium        = 80
	scoreWristStrength      = 90
	scoreWeightHigh         = 60
	scoreWeightMedium       = 75
	scoreWeightStrength     = 90
	scoreExtensionHigh      = 65
	scoreExtensionMedium    = 80
	scoreExtensionStrength  = 95
	scoreTempoMedium        = 70
	scoreTempoStrength      = 95
	scoreTempoNeutral       = 85
	maxDrills               = 3
)

// drillCatalog maps a priority metric to its practice drill. A priority
// whose metric has no catalog entry contributes no drill.
var drillCatalog = map[Metric]Drill{
	MetricShoulderRotation: {
		Name:        "Coil and hold",
		Description: "Shadow swings pausing at the top of the backswing with the shoulders turned fully away from the net.",
		Reps:        "3 sets of 10",
	},
	MetricWristPosition: {
		Name:        "Low-to-high wall brushes",
		Description: "Brush up the back of a dropped ball against a wall, starting with the wrist well below hip height.",
		Reps:        "3 sets of 15",
	},
	MetricWeightTransfer: {
		Name:        "Step-through feeds",
		Description: "Hit fed balls stepping from the back foot onto the front foot so the weight finishes forward at contact.",
		Reps:        "4 sets of 8",
	},
	MetricArmExtension: {
		Name:        "Reach-out targets",
		Description: "Swing at a target placed a racket length in front of the contact point, finishing with the hitting arm long.",
		Reps:        "3 sets of 12",
	},
	MetricStrokeTempo: {
		Name:        "Metronome swings",
		Description: "Full strokes timed against a metronome, matching the reference backswing-to-finish count.",
		Reps:        "2 sets of 10",
	},
}

// Recommend applies the fixed rule set to the statistics and normalized
// curves and assembles the coaching report. It is a pure function: the
// same inputs always produce the same report.
//
// Five rule blocks run in fixed order. Each appends at most one priority
// or strength and contributes one component score; the overall score is
// the rounded mean of the five components. Priorities are stable-sorted
// by severity afterwards, and the first three feed the drill list.
func Recommend(stats Stats, data ComparisonData, cfg *config.AnalysisConfig) Report {
	var rpt Report
	scores := make([]float64, 0, 5)

	// Shoulder rotation.
	rotationDiff := stats.PeakRotation.Difference
	switch {
	case rotationDiff < cfg.GetRotationHighDeficit():
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricShoulderRotation,
			Severity:    SeverityHigh,
			Issue:       "Limited shoulder rotation",
			Detail:      fmt.Sprintf("Peak shoulder turn is %.1f° short of the reference stroke.", -rotationDiff),
			Improvement: "Coil the shoulders fully away from the net before starting the forward swing.",
		})
		scores = append(scores, scoreRotationHigh)
	case rotationDiff < cfg.GetRotationMediumDeficit():
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricShoulderRotation,
			Severity:    SeverityMedium,
			Issue:       "Shoulder rotation falls short",
			Detail:      fmt.Sprintf("Peak shoulder turn is %.1f° below the reference stroke.", -rotationDiff),
			Improvement: "Lead the backswing with the shoulders rather than the arm.",
		})
		scores = append(scores, scoreRotationMedium)
	case rotationDiff > cfg.GetRotationStrengthFloor():
		rpt.Strengths = append(rpt.Strengths, Strength{
			Metric: MetricShoulderRotation,
			Note:   fmt.Sprintf("Shoulder rotation is within %.1f° of the reference stroke.", math.Abs(rotationDiff)),
		})
		scores = append(scores, scoreRotationStrength)
	default:
		scores = append(scores, scoreRotationNeutral)
	}

	// Wrist position. A positive difference means the trainee's wrist
	// drops less deep than the reference.
	wristDiff := stats.WristDrop.Difference
	switch {
	case wristDiff > cfg.GetWristDropHighExcess():
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricWristPosition,
			Severity:    SeverityHigh,
			Issue:       "Wrist stays too high in the backswing",
			Detail:      fmt.Sprintf("The racket drop is %.1f px shallower than the reference stroke.", wristDiff),
			Improvement: "Let the racket head drop below the hitting hand before driving forward.",
		})
		scores = append(scores, scoreWristHigh)
	case wristDiff > cfg.GetWristDropMediumExcess():
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricWristPosition,
			Severity:    SeverityMedium,
			Issue:       "Racket drop is a little shallow",
			Detail:      fmt.Sprintf("The racket drop is %.1f px shallower than the reference stroke.", wristDiff),
			Improvement: "Relax the wrist at the top of the backswing to deepen the drop.",
		})
		scores = append(scores, scoreWristMedium)
	default:
		rpt.Strengths = append(rpt.Strengths, Strength{
			Metric: MetricWristPosition,
			Note:   "Racket drop depth matches the reference stroke.",
		})
		scores = append(scores, scoreWristStrength)
	}

	// Weight transfer: compare observed ranges of the normalized curves.
	proRange := curveRange(data.Weight, func(p ComparisonPoint) float64 { return p.Pro })
	traineeRange := curveRange(data.Weight, func(p ComparisonPoint) float64 { return p.Trainee })
	switch {
	case traineeRange < cfg.GetWeightRangeHighRatio()*proRange:
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricWeightTransfer,
			Severity:    SeverityHigh,
			Issue:       "Weight stays on the back foot",
			Detail:      fmt.Sprintf("Weight shift covers %.1f%% of stance versus %.1f%% in the reference stroke.", traineeRange, proRange),
			Improvement: "Push off the back foot so the body weight arrives on the front foot at contact.",
		})
		scores = append(scores, scoreWeightHigh)
	case traineeRange < cfg.GetWeightRangeMediumRatio()*proRange:
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricWeightTransfer,
			Severity:    SeverityMedium,
			Issue:       "Weight transfer is incomplete",
			Detail:      fmt.Sprintf("Weight shift covers %.1f%% of stance versus %.1f%% in the reference stroke.", traineeRange, proRange),
			Improvement: "Finish the stroke with the chest over the front foot.",
		})
		scores = append(scores, scoreWeightMedium)
	default:
		rpt.Strengths = append(rpt.Strengths, Strength{
			Metric: MetricWeightTransfer,
			Note:   "Weight moves through the stroke like the reference.",
		})
		scores = append(scores, scoreWeightStrength)
	}

	// Arm extension.
	extensionDiff := stats.PeakExtension.Difference
	switch {
	case extensionDiff < cfg.GetExtensionHighDeficit():
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricArmExtension,
			Severity:    SeverityHigh,
			Issue:       "Hitting arm stays bent",
			Detail:      fmt.Sprintf("Peak arm extension is %.1f px short of the reference stroke.", -extensionDiff),
			Improvement: "Reach out toward the contact point instead of pulling the elbow in.",
		})
		scores = append(scores, scoreExtensionHigh)
	case extensionDiff < cfg.GetExtensionMediumDeficit():
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricArmExtension,
			Severity:    SeverityMedium,
			Issue:       "Arm extension falls short",
			Detail:      fmt.Sprintf("Peak arm extension is %.1f px below the reference stroke.", -extensionDiff),
			Improvement: "Extend through contact and let the arm lengthen into the follow-through.",
		})
		scores = append(scores, scoreExtensionMedium)
	default:
		rpt.Strengths = append(rpt.Strengths, Strength{
			Metric: MetricArmExtension,
			Note:   "Arm extension through contact matches the reference.",
		})
		scores = append(scores, scoreExtensionStrength)
	}

	// Stroke tempo.
	tempoDiff := stats.StrokeDuration.Difference
	switch {
	case tempoDiff > cfg.GetTempoMediumExcessMs():
		rpt.Priorities = append(rpt.Priorities, Priority{
			Metric:      MetricStrokeTempo,
			Severity:    SeverityMedium,
			Issue:       "Stroke runs slow",
			Detail:      fmt.Sprintf("The stroke takes %.0f ms longer than the reference.", tempoDiff),
			Improvement: "Compact the backswing so the forward swing can start sooner.",
		})
		scores = append(scores, scoreTempoMedium)
	case tempoDiff < cfg.GetTempoStrengthFloorMs():
		rpt.Strengths = append(rpt.Strengths, Strength{
			Metric: MetricStrokeTempo,
			Note:   "Stroke tempo tracks the reference closely.",
		})
		scores = append(scores, scoreTempoStrength)
	default:
		scores = append(scores, scoreTempoNeutral)
	}

	// Severity sort, preserving relative order within a severity.
	sort.SliceStable(rpt.Priorities, func(i, j int) bool {
		return rpt.Priorities[i].Severity.SortRank() < rpt.Priorities[j].Severity.SortRank()
	})

	// Up to the first three sorted priorities each contribute one drill.
	for i, p := range rpt.Priorities {
		if i == maxDrills {
			break
		}
		if drill, ok := drillCatalog[p.Metric]; ok {
			rpt.Drills = append(rpt.Drills, drill)
		}
	}

	rpt.OverallScore = int(math.Round(stat.Mean(scores, nil)))
	return rpt
}

// curveRange returns max-min of one side of a comparison series.
func curveRange(points []ComparisonPoint, pick func(ComparisonPoint) float64) float64 {
	if len(points) == 0 {
		return 0
	}
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = pick(p)
	}
	return floats.Max(vals) - floats.Min(vals)
}
