package breakout

import (
	"github.com/vovakirdan/gridbreak/internal/core"
)

// hitKind tells which stage of the collision pass fired.
type hitKind int

const (
	hitNone hitKind = iota
	hitBall
	hitEdge
	hitCorner
)

func (h hitKind) String() string {
	switch h {
	case hitBall:
		return "ball"
	case hitEdge:
		return "edge"
	case hitCorner:
		return "corner"
	default:
		return "none"
	}
}

// axis selects which reflectivity flag and flip a hit uses.
type axis int

const (
	axisVertical   axis = iota // left/right faces, flips x
	axisHorizontal             // top/bottom faces, flips y
)

// resolveCollisions runs the collision pass for the ball in slot i.
// Stages run in priority order and the first that fires ends the pass:
// another ball, then a single edge tile, then one corner tile.
func (b *Board) resolveCollisions(i int) hitKind {
	if b.ballCollision(i) {
		return hitBall
	}
	if b.edgeCollision(i) {
		return hitEdge
	}
	if b.cornerCollision(i) {
		return hitCorner
	}
	return hitNone
}

// ballCollision exchanges the velocity components along the line of
// centers with the first touching ball that the mover is approaching.
func (b *Board) ballCollision(i int) bool {
	self := &b.slots[i].ball
	for j := range b.slots {
		if j == i || !b.slots[j].used {
			continue
		}
		other := &b.slots[j].ball

		n := self.Center().SeparationFrom(other.Center())
		if n.Magnitude > b.cfg.Ball.TouchDistance {
			continue
		}
		// Already separating.
		if self.Velocity.IsInTheSameDirectionAs(n) {
			continue
		}

		normal := n.Normalize()
		p1 := project(self.Velocity, normal)
		p2 := project(other.Velocity, normal)
		delta := p2.Sub(p1)
		self.addToVelocity(delta, b.cfg.Ball)
		other.subtractFromVelocity(delta, b.cfg.Ball)

		b.logger.Debug("ball collision", "slot", i, "other", j, "vel", self.Velocity, "other_vel", other.Velocity)
		return true
	}
	return false
}

// project returns the component of v along a unit vector.
func project(v, unit core.Vector) core.Vector {
	d := unit.Dot(v)
	return core.VectorFromXY(unit.X()*d, unit.Y()*d)
}

// edgeCollision probes the four edge tiles in the order bottom, top, left,
// right. An edge only counts while the ball moves toward it, so a ball
// leaving a tile cannot hit it again on the way out.
func (b *Board) edgeCollision(i int) bool {
	ball := b.slots[i].ball
	s := b.scale

	if !ball.IsHeadingUp() && b.tryHit(i, ball.BottomTile(s), axisHorizontal) {
		return true
	}
	if !ball.IsHeadingDown() && b.tryHit(i, ball.TopTile(s), axisHorizontal) {
		return true
	}
	if !ball.IsHeadingRight() && b.tryHit(i, ball.LeftTile(s), axisVertical) {
		return true
	}
	if !ball.IsHeadingLeft() && b.tryHit(i, ball.RightTile(s), axisVertical) {
		return true
	}
	return false
}

// cornerCollision picks the single corner tile the heading points into
// and tests it once. Headings along an axis have no corner.
func (b *Board) cornerCollision(i int) bool {
	ball := b.slots[i].ball
	s := b.scale

	switch {
	case ball.IsHeadingPrimarilyUp():
		if ball.IsHeadingLeft() {
			return b.tryHit(i, ball.TopLeftTile(s), axisVertical)
		}
		if ball.IsHeadingRight() {
			return b.tryHit(i, ball.TopRightTile(s), axisVertical)
		}
	case ball.IsHeadingPrimarilyDown():
		if ball.IsHeadingLeft() {
			return b.tryHit(i, ball.BottomLeftTile(s), axisVertical)
		}
		if ball.IsHeadingRight() {
			return b.tryHit(i, ball.BottomRightTile(s), axisVertical)
		}
	case ball.IsHeadingPrimarilyLeft():
		if ball.IsHeadingUp() {
			return b.tryHit(i, ball.TopLeftTile(s), axisHorizontal)
		}
		if ball.IsHeadingDown() {
			return b.tryHit(i, ball.BottomLeftTile(s), axisHorizontal)
		}
	case ball.IsHeadingPrimarilyRight():
		if ball.IsHeadingUp() {
			return b.tryHit(i, ball.TopRightTile(s), axisHorizontal)
		}
		if ball.IsHeadingDown() {
			return b.tryHit(i, ball.BottomRightTile(s), axisHorizontal)
		}
	}
	return false
}

// tryHit tests one tile against the ball in slot i and, on a hit, applies
// the cell's effect and reflects the ball unless the cell consumed it.
func (b *Board) tryHit(i int, t core.Tile, ax axis) bool {
	c := b.cellAt(t)
	if ax == axisVertical && !c.IsVertical() {
		return false
	}
	if ax == axisHorizontal && !c.IsHorizontal() {
		return false
	}
	ball := &b.slots[i].ball
	if !b.IsHitBy(c, *ball) {
		return false
	}

	b.logger.Debug("hit", "slot", i, "cell", c.Kind, "row", t.Row, "col", t.Col, "vel", ball.Velocity)
	if b.processHit(c, i) {
		return true
	}
	if ax == axisVertical {
		ball.Velocity = b.reflectOffVertical(c, ball.Velocity)
	} else {
		ball.Velocity = b.reflectOffHorizontal(c, ball.Velocity)
	}
	return true
}

// processHit applies a cell's side effect for the ball in slot i and
// reports whether the ball was consumed.
func (b *Board) processHit(c Cell, i int) bool {
	switch {
	case c.Kind == KindOutOfBounds:
		b.wentOutOfBounds(i)
		return true
	case c.Kind.IsBlock():
		// Both depend on slot availability, so read them before spawning.
		value, removable := b.CellValue(c), b.CellRemovable(c)
		if removable {
			b.removeBlock(c)
		}
		b.addToScore(value)
		if c.Kind == KindExtraBall {
			b.spawnBall(c.Tile, b.slots[i].ball)
		}
	}
	return false
}

func (b *Board) reflectOffVertical(_ Cell, v core.Vector) core.Vector {
	return v.FlipX()
}

func (b *Board) reflectOffHorizontal(c Cell, v core.Vector) core.Vector {
	if c.Kind == KindPaddle {
		return b.paddle.shapeBounce(v, b.cfg)
	}
	return v.FlipY()
}
