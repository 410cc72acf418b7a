package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressScore, MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{400, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, d.Level(Progress{Score: tt.score}), 1e-9, "score %d", tt.score)
	}

	assert.InDelta(t, 1.5, d.LaunchSpeed(1.0, Progress{Score: 100}), 1e-9)
	assert.InDelta(t, 1.0, d.LaunchSpeed(1.0, Progress{Ticks: 1000}), 1e-9, "ticks do not count for score progression")
}

func TestDifficultyInitialLevelIsFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: ProgressLevels, MaxAt: 4},
	})

	assert.InDelta(t, 0.5, d.Level(Progress{}), 1e-9)
	assert.InDelta(t, 0.75, d.Level(Progress{LevelsCleared: 2}), 1e-9)
	assert.InDelta(t, 1.0, d.Level(Progress{LevelsCleared: 9}), 1e-9)
}

func TestDifficultyDisabledKeepsInitialLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  DifficultyConfig
	}{
		{"disabled", DifficultyConfig{Enabled: false, InitialLevel: 0.3, Progression: ProgressionConfig{Type: ProgressScore, MaxAt: 10}}},
		{"type none", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: ProgressNone, MaxAt: 10}}},
		{"type unset", DifficultyConfig{Enabled: true, InitialLevel: 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg)
			assert.False(t, d.IsEnabled())
			assert.InDelta(t, 0.3, d.Level(Progress{Score: 1000, Ticks: 1000, LevelsCleared: 10}), 1e-9)
		})
	}
}

func TestDifficultyClampsInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{InitialLevel: 4})
	assert.InDelta(t, 1.0, d.Level(Progress{}), 1e-9)
}

func TestDifficultyTimeProgressionZeroTarget(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressTime, MaxAt: 0},
	})
	// A target of zero behaves as 1.
	assert.InDelta(t, 1.0, d.Level(Progress{Ticks: 1}), 1e-9)
}
