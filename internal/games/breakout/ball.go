package breakout

import (
	"github.com/vovakirdan/gridbreak/internal/config"
	"github.com/vovakirdan/gridbreak/internal/core"
)

// Ball is a moving collider. The board keeps balls by value in fixed slots.
type Ball struct {
	Position core.Position
	Velocity core.Vector
	box      core.Box
}

// newLaunchBall places a ball just above the paddle's center.
func newLaunchBall(cfg config.BreakoutConfig, p *Paddle, speed float64) Ball {
	size := float64(cfg.Ball.Size)
	b := Ball{
		Position: core.Position{
			X: p.Position.X + float64(p.Width)/2 - size/2,
			Y: float64(2 * cfg.Board.Scale),
		},
		Velocity: core.NewVector(cfg.Ball.LaunchAngle, speed),
	}
	b.updateBox(cfg.Ball)
	return b
}

func newSpawnedBall(pos core.Position, vel core.Vector, cfg config.BallConfig) Ball {
	b := Ball{Position: pos, Velocity: vel}
	b.updateBox(cfg)
	return b
}

// boxFor derives the collision box for a ball at pos.
func boxFor(pos core.Position, cfg config.BallConfig) core.Box {
	m := float64(cfg.CollisionMargin)
	far := float64(cfg.Size-1) - m
	return core.NewBox(pos.Y+m, pos.X+m, pos.Y+far, pos.X+far)
}

func (b *Ball) updateBox(cfg config.BallConfig) {
	b.box = boxFor(b.Position, cfg)
}

// move translates the ball and clips it to the grid. The box is fresh on return.
func (b *Ball) move(cfg config.BreakoutConfig) {
	size := float64(cfg.Ball.Size)
	b.Position.MoveBy(b.Velocity)
	b.Position.ClipX(0, cfg.GridWidth()-size)
	b.Position.ClipY(0, cfg.GridHeight()-size)
	b.updateBox(cfg.Ball)
}

// Box returns the collision box.
func (b Ball) Box() core.Box { return b.box }

// Center returns the center of the collision box.
func (b Ball) Center() core.Position { return b.box.Center() }

func (b *Ball) addToVelocity(v core.Vector, cfg config.BallConfig) {
	b.Velocity = b.Velocity.Add(v).ClampMagnitude(cfg.MinSpeed, cfg.MaxSpeed)
}

func (b *Ball) subtractFromVelocity(v core.Vector, cfg config.BallConfig) {
	b.Velocity = b.Velocity.Sub(v).ClampMagnitude(cfg.MinSpeed, cfg.MaxSpeed)
}

func (b Ball) IsHeadingLeft() bool           { return b.Velocity.IsLeft() }
func (b Ball) IsHeadingRight() bool          { return b.Velocity.IsRight() }
func (b Ball) IsHeadingUp() bool             { return b.Velocity.IsUp() }
func (b Ball) IsHeadingDown() bool           { return b.Velocity.IsDown() }
func (b Ball) IsHeadingPrimarilyLeft() bool  { return b.Velocity.IsPrimarilyLeft() }
func (b Ball) IsHeadingPrimarilyRight() bool { return b.Velocity.IsPrimarilyRight() }
func (b Ball) IsHeadingPrimarilyUp() bool    { return b.Velocity.IsPrimarilyUp() }
func (b Ball) IsHeadingPrimarilyDown() bool  { return b.Velocity.IsPrimarilyDown() }

// Edge tiles are the tiles under the midpoints of the box edges. These are
// the tiles the collision pass probes.

func (b Ball) LeftTile(scale int) core.Tile   { return b.box.MiddleLeft().ToTile(scale) }
func (b Ball) RightTile(scale int) core.Tile  { return b.box.MiddleRight().ToTile(scale) }
func (b Ball) TopTile(scale int) core.Tile    { return b.box.TopCenter().ToTile(scale) }
func (b Ball) BottomTile(scale int) core.Tile { return b.box.BottomCenter().ToTile(scale) }

// Corner tiles combine the row of a horizontal edge with the column of a vertical one.

func (b Ball) TopLeftTile(scale int) core.Tile {
	return core.Tile{Row: b.TopTile(scale).Row, Col: b.LeftTile(scale).Col}
}

func (b Ball) TopRightTile(scale int) core.Tile {
	return core.Tile{Row: b.TopTile(scale).Row, Col: b.RightTile(scale).Col}
}

func (b Ball) BottomLeftTile(scale int) core.Tile {
	return core.Tile{Row: b.BottomTile(scale).Row, Col: b.LeftTile(scale).Col}
}

func (b Ball) BottomRightTile(scale int) core.Tile {
	return core.Tile{Row: b.BottomTile(scale).Row, Col: b.RightTile(scale).Col}
}
