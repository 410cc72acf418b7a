package core

import (
	"fmt"
	"math"
)

// Position is a 2-D point with sub-tile precision.
type Position struct {
	X, Y float64
}

// String formats the position for logs.
func (p Position) String() string {
	return fmt.Sprintf("(%6.2f, %6.2f)", p.X, p.Y)
}

// MoveBy translates the position by a vector.
func (p *Position) MoveBy(v Vector) {
	p.X += v.X()
	p.Y += v.Y()
}

// MoveByXY translates the position by raw deltas.
func (p *Position) MoveByXY(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// ClipX restricts X to [low, high].
func (p *Position) ClipX(low, high float64) {
	p.X = ClampF(p.X, low, high)
}

// ClipY restricts Y to [low, high].
func (p *Position) ClipY(low, high float64) {
	p.Y = ClampF(p.Y, low, high)
}

// OutOfBoundsX reports whether X lies outside [low, high].
func (p Position) OutOfBoundsX(low, high float64) bool {
	return p.X < low || p.X > high
}

// OutOfBoundsY reports whether Y lies outside [low, high].
func (p Position) OutOfBoundsY(low, high float64) bool {
	return p.Y < low || p.Y > high
}

// ToTile converts the position to grid coordinates by floor division.
func (p Position) ToTile(scale int) Tile {
	s := float64(scale)
	return Tile{
		Row: int(math.Floor(p.Y / s)),
		Col: int(math.Floor(p.X / s)),
	}
}

// SeparationFrom returns the vector pointing from other to p.
func (p Position) SeparationFrom(other Position) Vector {
	return VectorFromXY(p.X-other.X, p.Y-other.Y)
}
