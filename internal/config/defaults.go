package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Board: BoardConfig{
			Scale:          8,
			Rows:           8,
			Columns:        8,
			MaxBallsInPlay: 2,
			BallsPerGame:   3,
		},
		Ball: BallConfig{
			Size:             8,
			CollisionMargin:  1,
			LaunchAngle:      math.Pi / 8,
			LaunchSpeed:      1.0,
			MinSpeed:         0.5,
			MaxSpeed:         2.0,
			TouchDistance:    8,
			SpawnJitterAngle: math.Pi / 2,
			SpawnJitterSpeed: 0.5,
		},
		Paddle: PaddleConfig{
			Width:            16,
			Speed:            4,
			MaxTransferSpeed: 2.0,
			ConeLow:          0.5,
			ConeHigh:         2.6,
		},
		Gameplay: GameplayConfig{
			StartLevel: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
