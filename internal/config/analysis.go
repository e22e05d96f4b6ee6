package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AnalysisConfig holds the tunable thresholds of the stroke analysis
// pipeline. All values are heuristics calibrated against 30 fps captures;
// they are not adaptive to framerate or noise scale. Fields omitted from
// a JSON config retain their defaults, so partial configs are safe.
type AnalysisConfig struct {
	// Anchor detection params
	SwingOnsetDelta        *float64 `json:"swing_onset_delta,omitempty"`
	SettleDelta            *float64 `json:"settle_delta,omitempty"`
	BackswingLeadFrames    *int     `json:"backswing_lead_frames,omitempty"`
	ForwardSwingSkipFrames *int     `json:"forward_swing_skip_frames,omitempty"`
	FollowThroughPadFrames *int     `json:"follow_through_pad_frames,omitempty"`

	// Comparator params
	CaptureFPS *float64 `json:"capture_fps,omitempty"`

	// Recommendation severity cutoffs
	RotationHighDeficit   *float64 `json:"rotation_high_deficit,omitempty"`
	RotationMediumDeficit *float64 `json:"rotation_medium_deficit,omitempty"`
	RotationStrengthFloor *float64 `json:"rotation_strength_floor,omitempty"`
	WristDropHighExcess   *float64 `json:"wrist_drop_high_excess,omitempty"`
	WristDropMediumExcess *float64 `json:"wrist_drop_medium_excess,omitempty"`
	WeightRangeHighRatio  *float64 `json:"weight_range_high_ratio,omitempty"`
	WeightRangeMedRatio   *float64 `json:"weight_range_medium_ratio,omitempty"`
	ExtensionHighDeficit  *float64 `json:"extension_high_deficit,omitempty"`
	ExtensionMedDeficit   *float64 `json:"extension_medium_deficit,omitempty"`
	TempoMediumExcessMs   *float64 `json:"tempo_medium_excess_ms,omitempty"`
	TempoStrengthFloorMs  *float64 `json:"tempo_strength_floor_ms,omitempty"`
}

// DefaultAnalysisConfig returns a config with all fields unset. The Get*
// accessors provide the canonical defaults for unset fields.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// LoadAnalysisConfig loads an AnalysisConfig from a JSON file.
// The file is validated to have a .json extension and to be under the max
// file size before parsing.
func LoadAnalysisConfig(path string) (*AnalysisConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultAnalysisConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *AnalysisConfig) Validate() error {
	if c.SwingOnsetDelta != nil && *c.SwingOnsetDelta <= 0 {
		return fmt.Errorf("swing_onset_delta must be positive, got %f", *c.SwingOnsetDelta)
	}
	if c.SettleDelta != nil && *c.SettleDelta <= 0 {
		return fmt.Errorf("settle_delta must be positive, got %f", *c.SettleDelta)
	}
	if c.BackswingLeadFrames != nil && *c.BackswingLeadFrames < 0 {
		return fmt.Errorf("backswing_lead_frames must be non-negative, got %d", *c.BackswingLeadFrames)
	}
	if c.ForwardSwingSkipFrames != nil && *c.ForwardSwingSkipFrames < 0 {
		return fmt.Errorf("forward_swing_skip_frames must be non-negative, got %d", *c.ForwardSwingSkipFrames)
	}
	if c.FollowThroughPadFrames != nil && *c.FollowThroughPadFrames < 0 {
		return fmt.Errorf("follow_through_pad_frames must be non-negative, got %d", *c.FollowThroughPadFrames)
	}
	if c.CaptureFPS != nil && *c.CaptureFPS <= 0 {
		return fmt.Errorf("capture_fps must be positive, got %f", *c.CaptureFPS)
	}
	if c.WeightRangeHighRatio != nil {
		if *c.WeightRangeHighRatio < 0 || *c.WeightRangeHighRatio > 1 {
			return fmt.Errorf("weight_range_high_ratio must be between 0 and 1, got %f", *c.WeightRangeHighRatio)
		}
	}
	if c.WeightRangeMedRatio != nil {
		if *c.WeightRangeMedRatio < 0 || *c.WeightRangeMedRatio > 1 {
			return fmt.Errorf("weight_range_medium_ratio must be between 0 and 1, got %f", *c.WeightRangeMedRatio)
		}
	}
	return nil
}

// GetSwingOnsetDelta returns the per-frame wrist-hip delta (pixels) that
// marks a swing onset, or the default.
func (c *AnalysisConfig) GetSwingOnsetDelta() float64 {
	if c.SwingOnsetDelta == nil {
		return 2.0
	}
	return *c.SwingOnsetDelta
}

// GetSettleDelta returns the per-frame delta (pixels) under which the
// follow-through is considered settled, or the default.
func (c *AnalysisConfig) GetSettleDelta() float64 {
	if c.SettleDelta == nil {
		return 1.0
	}
	return *c.SettleDelta
}

// GetBackswingLeadFrames returns the frames subtracted before a detected
// backswing onset, or the default.
func (c *AnalysisConfig) GetBackswingLeadFrames() int {
	if c.BackswingLeadFrames == nil {
		return 5
	}
	return *c.BackswingLeadFrames
}

// GetForwardSwingSkipFrames returns the frames skipped after the forward
// swing start before the settle scan begins, or the default.
func (c *AnalysisConfig) GetForwardSwingSkipFrames() int {
	if c.ForwardSwingSkipFrames == nil {
		return 10
	}
	return *c.ForwardSwingSkipFrames
}

// GetFollowThroughPadFrames returns the frames added past a detected
// settle point, or the default.
func (c *AnalysisConfig) GetFollowThroughPadFrames() int {
	if c.FollowThroughPadFrames == nil {
		return 5
	}
	return *c.FollowThroughPadFrames
}

// GetCaptureFPS returns the assumed capture framerate or the default.
func (c *AnalysisConfig) GetCaptureFPS() float64 {
	if c.CaptureFPS == nil {
		return 30.0
	}
	return *c.CaptureFPS
}

// GetRotationHighDeficit returns the rotation difference (degrees) below
// which the deficit is high severity, or the default.
func (c *AnalysisConfig) GetRotationHighDeficit() float64 {
	if c.RotationHighDeficit == nil {
		return -15.0
	}
	return *c.RotationHighDeficit
}

// GetRotationMediumDeficit returns the rotation difference (degrees)
// below which the deficit is medium severity, or the default.
func (c *AnalysisConfig) GetRotationMediumDeficit() float64 {
	if c.RotationMediumDeficit == nil {
		return -8.0
	}
	return *c.RotationMediumDeficit
}

// GetRotationStrengthFloor returns the rotation difference (degrees)
// above which rotation counts as a strength, or the default.
func (c *AnalysisConfig) GetRotationStrengthFloor() float64 {
	if c.RotationStrengthFloor == nil {
		return -5.0
	}
	return *c.RotationStrengthFloor
}

// GetWristDropHighExcess returns the wrist drop difference (pixels) above
// which the issue is high severity, or the default.
func (c *AnalysisConfig) GetWristDropHighExcess() float64 {
	if c.WristDropHighExcess == nil {
		return 20.0
	}
	return *c.WristDropHighExcess
}

// GetWristDropMediumExcess returns the wrist drop difference (pixels)
// above which the issue is medium severity, or the default.
func (c *AnalysisConfig) GetWristDropMediumExcess() float64 {
	if c.WristDropMediumExcess == nil {
		return 10.0
	}
	return *c.WristDropMediumExcess
}

// GetWeightRangeHighRatio returns the trainee/pro weight-transfer range
// ratio below which the issue is high severity, or the default.
func (c *AnalysisConfig) GetWeightRangeHighRatio() float64 {
	if c.WeightRangeHighRatio == nil {
		return 0.6
	}
	return *c.WeightRangeHighRatio
}

// GetWeightRangeMediumRatio returns the trainee/pro weight-transfer range
// ratio below which the issue is medium severity, or the default.
func (c *AnalysisConfig) GetWeightRangeMediumRatio() float64 {
	if c.WeightRangeMedRatio == nil {
		return 0.8
	}
	return *c.WeightRangeMedRatio
}

// GetExtensionHighDeficit returns the arm extension difference (pixels)
// below which the deficit is high severity, or the default.
func (c *AnalysisConfig) GetExtensionHighDeficit() float64 {
	if c.ExtensionHighDeficit == nil {
		return -25.0
	}
	return *c.ExtensionHighDeficit
}

// GetExtensionMediumDeficit returns the arm extension difference (pixels)
// below which the deficit is medium severity, or the default.
func (c *AnalysisConfig) GetExtensionMediumDeficit() float64 {
	if c.ExtensionMedDeficit == nil {
		return -15.0
	}
	return *c.ExtensionMedDeficit
}

// GetTempoMediumExcessMs returns the stroke duration difference (ms)
// above which tempo is a medium priority, or the default.
func (c *AnalysisConfig) GetTempoMediumExcessMs() float64 {
	if c.TempoMediumExcessMs == nil {
		return 300.0
	}
	return *c.TempoMediumExcessMs
}

// GetTempoStrengthFloorMs returns the stroke duration difference (ms)
// below which tempo counts as a strength, or the default.
func (c *AnalysisConfig) GetTempoStrengthFloorMs() float64 {
	if c.TempoStrengthFloorMs == nil {
		return 100.0
	}
	return *c.TempoStrengthFloorMs
}
