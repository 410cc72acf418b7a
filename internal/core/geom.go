// Package core provides fundamental types and utilities for the game engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Tile addresses one grid square by row and column.
type Tile struct {
	Row, Col int
}

// Box is an axis-aligned rectangle in sub-tile units.
// Y grows with the row index, so Top is the smaller y and Bottom the larger.
// A box with Top > Bottom or Left > Right is empty: it never collides with
// anything and is the identity for Union.
type Box struct {
	Top, Left, Bottom, Right float64
}

// EmptyBox returns the canonical empty box.
func EmptyBox() Box {
	return Box{Top: 0, Left: 0, Bottom: -1, Right: -1}
}

// NewBox creates a box, returning EmptyBox when the edges are degenerate.
func NewBox(top, left, bottom, right float64) Box {
	if top > bottom || left > right {
		return EmptyBox()
	}
	return Box{Top: top, Left: left, Bottom: bottom, Right: right}
}

// IsEmpty reports whether the box covers no area.
func (b Box) IsEmpty() bool {
	return b.Top > b.Bottom || b.Left > b.Right
}

// CollidesWith reports whether two boxes overlap (edges touching counts).
func (b Box) CollidesWith(other Box) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	if b.Top > other.Bottom || b.Bottom < other.Top {
		return false
	}
	if b.Left > other.Right || b.Right < other.Left {
		return false
	}
	return true
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(other Box) Box {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return NewBox(
		math.Min(b.Top, other.Top),
		math.Min(b.Left, other.Left),
		math.Max(b.Bottom, other.Bottom),
		math.Max(b.Right, other.Right),
	)
}

// Intersect returns the overlapping region, or EmptyBox.
func (b Box) Intersect(other Box) Box {
	if b.IsEmpty() || other.IsEmpty() {
		return EmptyBox()
	}
	return NewBox(
		math.Max(b.Top, other.Top),
		math.Max(b.Left, other.Left),
		math.Min(b.Bottom, other.Bottom),
		math.Min(b.Right, other.Right),
	)
}

// Inset shrinks every edge by margin.
func (b Box) Inset(margin float64) Box {
	if b.IsEmpty() {
		return b
	}
	return NewBox(b.Top+margin, b.Left+margin, b.Bottom-margin, b.Right-margin)
}

func (b Box) midX() float64 { return (b.Left + b.Right) / 2 }
func (b Box) midY() float64 { return (b.Top + b.Bottom) / 2 }

// TopLeft returns the top-left corner.
func (b Box) TopLeft() Position { return Position{X: b.Left, Y: b.Top} }

// TopCenter returns the midpoint of the top edge.
func (b Box) TopCenter() Position { return Position{X: b.midX(), Y: b.Top} }

// TopRight returns the top-right corner.
func (b Box) TopRight() Position { return Position{X: b.Right, Y: b.Top} }

// MiddleLeft returns the midpoint of the left edge.
func (b Box) MiddleLeft() Position { return Position{X: b.Left, Y: b.midY()} }

// MiddleRight returns the midpoint of the right edge.
func (b Box) MiddleRight() Position { return Position{X: b.Right, Y: b.midY()} }

// BottomLeft returns the bottom-left corner.
func (b Box) BottomLeft() Position { return Position{X: b.Left, Y: b.Bottom} }

// BottomCenter returns the midpoint of the bottom edge.
func (b Box) BottomCenter() Position { return Position{X: b.midX(), Y: b.Bottom} }

// BottomRight returns the bottom-right corner.
func (b Box) BottomRight() Position { return Position{X: b.Right, Y: b.Bottom} }

// Center returns the center point.
func (b Box) Center() Position { return Position{X: b.midX(), Y: b.midY()} }

// TileBox returns the box covered by a grid tile at the given scale.
func TileBox(t Tile, scale int) Box {
	s := float64(scale)
	top := float64(t.Row) * s
	left := float64(t.Col) * s
	return NewBox(top, left, top+s-1, left+s-1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
