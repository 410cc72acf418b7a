package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressNone   = "none"
	ProgressScore  = "score"
	ProgressTime   = "time"
	ProgressLevels = "levels"
)

// Progress is what the game has achieved so far. Which field drives the
// difficulty depends on the configured progression type.
type Progress struct {
	Score         int
	Ticks         int
	LevelsCleared int
}

// DifficultyManager turns game progress into a launch speed.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64 // Level at zero progress, in [0, 1]
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:  cfg,
		base: unit(cfg.InitialLevel),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "" && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty in [0, 1]. It starts at the initial level
// and reaches 1 once the tracked progress hits progression.max_at.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.base
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = p.Score
	case ProgressTime:
		done = p.Ticks
	case ProgressLevels:
		done = p.LevelsCleared
	default:
		return d.base
	}

	target := float64(max(d.cfg.Progression.MaxAt, 1))
	return d.base + unit(float64(done)/target)*(1-d.base)
}

// LaunchSpeed scales base from 1x at level 0 up to (1 + speed_multiplier)x
// at level 1. The board clamps the result into the ball speed range.
func (d *DifficultyManager) LaunchSpeed(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
