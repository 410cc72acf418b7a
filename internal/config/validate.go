package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a configuration describes an impossible board.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks geometry and speed limits for consistency.
func (c BreakoutConfig) Validate() error {
	b := c.Board
	switch {
	case b.Scale < 2:
		return invalid("board.scale must be at least 2, got %d", b.Scale)
	case b.Rows < 2:
		return invalid("board.rows must be at least 2, got %d", b.Rows)
	case b.Columns < 1:
		return invalid("board.columns must be positive, got %d", b.Columns)
	case b.MaxBallsInPlay < 1:
		return invalid("board.max_balls_in_play must be positive, got %d", b.MaxBallsInPlay)
	case b.BallsPerGame < 1:
		return invalid("board.balls_per_game must be positive, got %d", b.BallsPerGame)
	}

	ball := c.Ball
	switch {
	case ball.Size < 1 || ball.Size > b.Scale:
		return invalid("ball.size must be within [1, %d], got %d", b.Scale, ball.Size)
	case ball.CollisionMargin < 0 || 2*ball.CollisionMargin >= ball.Size:
		return invalid("ball.collision_margin %d leaves no collision box", ball.CollisionMargin)
	case ball.MinSpeed <= 0 || ball.MaxSpeed < ball.MinSpeed:
		return invalid("ball speed range [%g, %g] is empty", ball.MinSpeed, ball.MaxSpeed)
	case ball.MaxSpeed >= float64(b.Scale)/2:
		// Faster balls can skip a whole tile between two collision passes.
		return invalid("ball.max_speed %g must stay below half a tile", ball.MaxSpeed)
	case ball.TouchDistance <= 0:
		return invalid("ball.touch_distance must be positive, got %g", ball.TouchDistance)
	case ball.SpawnJitterAngle < 0 || ball.SpawnJitterSpeed < 0:
		return invalid("ball spawn jitter must not be negative")
	}

	p := c.Paddle
	switch {
	case p.Width < 1 || p.Width > b.Columns*b.Scale:
		return invalid("paddle.width must be within [1, %d], got %d", b.Columns*b.Scale, p.Width)
	case p.Speed < 0:
		return invalid("paddle.speed must not be negative, got %g", p.Speed)
	case p.MaxTransferSpeed <= 0:
		return invalid("paddle.max_transfer_speed must be positive, got %g", p.MaxTransferSpeed)
	case p.ConeLow <= 0 || p.ConeHigh >= math.Pi || p.ConeLow >= p.ConeHigh:
		return invalid("paddle cone [%g, %g] must lie inside (0, pi)", p.ConeLow, p.ConeHigh)
	}

	if c.Gameplay.StartLevel < 0 {
		return invalid("gameplay.start_level must not be negative, got %d", c.Gameplay.StartLevel)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressNone, ProgressScore, ProgressTime, ProgressLevels:
	default:
		return invalid("difficulty.progression.type %q is unknown", c.Difficulty.Progression.Type)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
