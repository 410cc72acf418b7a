package breakout

import (
	"math"

	"github.com/vovakirdan/gridbreak/internal/config"
	"github.com/vovakirdan/gridbreak/internal/core"
)

// Paddle is the player's horizontal mover on grid row 1.
type Paddle struct {
	Position core.Position
	Velocity core.Vector
	Width    int
	Speed    float64

	scale   int
	columns int
}

// NewPaddle creates a stopped paddle centered on the board.
func NewPaddle(cfg config.BreakoutConfig) *Paddle {
	s := cfg.Board.Scale
	p := &Paddle{
		Position: core.Position{
			X: float64((cfg.Board.Columns+2)*s)/2 - float64(cfg.Paddle.Width)/2,
			Y: float64(s),
		},
		Width:   cfg.Paddle.Width,
		Speed:   cfg.Paddle.Speed,
		scale:   s,
		columns: cfg.Board.Columns,
	}
	p.clip()
	return p
}

// MoveLeft shifts the paddle one step toward column 1.
func (p *Paddle) MoveLeft() {
	p.moveBy(core.NewVector(math.Pi, p.Speed))
}

// MoveRight shifts the paddle one step toward column C.
func (p *Paddle) MoveRight() {
	p.moveBy(core.NewVector(0, p.Speed))
}

// Stop zeroes the velocity without moving.
func (p *Paddle) Stop() {
	p.Velocity = core.Vector{}
}

// Apply executes one tick of player intent.
func (p *Paddle) Apply(intent core.PaddleIntent) {
	switch intent {
	case core.IntentLeft:
		p.MoveLeft()
	case core.IntentRight:
		p.MoveRight()
	default:
		p.Stop()
	}
}

func (p *Paddle) moveBy(v core.Vector) {
	p.Velocity = v
	p.Position.MoveBy(v)
	p.clip()
}

func (p *Paddle) clip() {
	s := float64(p.scale)
	p.Position.ClipX(s, float64(p.columns+1)*s-float64(p.Width))
	p.Position.ClipY(s, s)
}

// Box returns the live collision box of the paddle.
func (p *Paddle) Box() core.Box {
	s := float64(p.scale)
	x := p.Position.X
	return core.NewBox(s, x, 2*s-1, x+float64(p.Width)-1)
}

// Columns returns the first and last grid column the paddle covers.
func (p *Paddle) Columns() (first, last int) {
	s := float64(p.scale)
	first = int(math.Floor(p.Position.X / s))
	last = int(math.Floor((p.Position.X + float64(p.Width) - 1) / s))
	return first, last
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.Position.X + float64(p.Width)/2
}

// shapeBounce folds the paddle's motion into a ball velocity heading into
// the paddle and returns the outgoing velocity. The incoming heading is held
// inside the mirror image of the outgoing cone, so after the flip the ball
// always leaves between coneLow and coneHigh.
func (p *Paddle) shapeBounce(v core.Vector, cfg config.BreakoutConfig) core.Vector {
	v = v.Add(p.Velocity).CapMagnitude(cfg.Paddle.MaxTransferSpeed)
	v = clampToCone(v.NormalizeAngle(), 2*math.Pi-cfg.Paddle.ConeHigh, 2*math.Pi-cfg.Paddle.ConeLow)
	return v.FlipY().ClampMagnitude(cfg.Ball.MinSpeed, cfg.Ball.MaxSpeed)
}

// clampToCone moves a normalized heading outside [lo, hi] to the nearer bound.
func clampToCone(v core.Vector, lo, hi float64) core.Vector {
	if v.Angle >= lo && v.Angle <= hi {
		return v
	}
	if core.AngleBetween(v.Angle, lo) <= core.AngleBetween(v.Angle, hi) {
		v.Angle = lo
	} else {
		v.Angle = hi
	}
	return v
}
