package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseBreakout(DefaultYAML())
	require.NoError(t, err)

	def := DefaultBreakoutConfig()
	assert.Equal(t, def.Board, cfg.Board)
	assert.Equal(t, def.Paddle, cfg.Paddle)
	assert.Equal(t, def.Gameplay, cfg.Gameplay)
	assert.Equal(t, def.Difficulty, cfg.Difficulty)
	assert.InDelta(t, def.Ball.LaunchAngle, cfg.Ball.LaunchAngle, 1e-6)
	assert.InDelta(t, def.Ball.SpawnJitterAngle, cfg.Ball.SpawnJitterAngle, 1e-6)
	assert.Equal(t, def.Ball.MaxSpeed, cfg.Ball.MaxSpeed)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultBreakoutConfig().Validate())
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := ParseBreakout([]byte("board:\n  rows: 10\npaddle:\n  width: 24\n"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Board.Rows)
	assert.Equal(t, 8, cfg.Board.Columns)
	assert.Equal(t, 24, cfg.Paddle.Width)
	assert.Equal(t, 2.0, cfg.Ball.MaxSpeed)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *BreakoutConfig)
	}{
		{"tiny scale", func(c *BreakoutConfig) { c.Board.Scale = 1 }},
		{"no block rows", func(c *BreakoutConfig) { c.Board.Rows = 1 }},
		{"no columns", func(c *BreakoutConfig) { c.Board.Columns = 0 }},
		{"no slots", func(c *BreakoutConfig) { c.Board.MaxBallsInPlay = 0 }},
		{"ball larger than tile", func(c *BreakoutConfig) { c.Ball.Size = 9 }},
		{"margin eats ball", func(c *BreakoutConfig) { c.Ball.CollisionMargin = 4 }},
		{"inverted speed range", func(c *BreakoutConfig) { c.Ball.MinSpeed = 3; c.Ball.MaxSpeed = 2 }},
		{"tunnelling speed", func(c *BreakoutConfig) { c.Ball.MaxSpeed = 4 }},
		{"wide paddle", func(c *BreakoutConfig) { c.Paddle.Width = 65 }},
		{"cone outside half turn", func(c *BreakoutConfig) { c.Paddle.ConeHigh = math.Pi }},
		{"unknown progression", func(c *BreakoutConfig) { c.Difficulty.Progression.Type = "lunar" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  balls_per_game: 7\n"), 0o600))

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Board.BallsPerGame)
}

func TestLoadBreakoutCustomPathErrors(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board:\n  scale: 0\n"), 0o600))
	_, err = LoadBreakout(bad)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyBreakoutPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	assert.Equal(t, 5, easy.Board.BallsPerGame)
	assert.Equal(t, 24, easy.Paddle.Width)
	require.NoError(t, easy.Validate())

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	assert.Equal(t, 2, hard.Board.BallsPerGame)
	assert.Equal(t, 12, hard.Paddle.Width)
	assert.InDelta(t, 0.7, hard.Difficulty.InitialLevel, 1e-9)
	require.NoError(t, hard.Validate())

	fixed := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Difficulty.Enabled)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("nightmare"))
}

func TestGridExtents(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	assert.Equal(t, 80.0, cfg.GridWidth())
	assert.Equal(t, 80.0, cfg.GridHeight())
}
