package core

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Vector is a 2-D motion quantity in polar form.
// Headings follow screen convention: +y is "down", so a vector with an angle
// in (0, π) is heading down and one in (π, 2π) is heading up.
//
// Vectors are values. Every combinator returns a new Vector and the caller
// applies it by assignment.
type Vector struct {
	Angle     float64 // Radians, logically periodic mod 2π
	Magnitude float64 // Non-negative
}

// NewVector creates a vector from an angle and magnitude.
func NewVector(angle, magnitude float64) Vector {
	return Vector{Angle: angle, Magnitude: magnitude}
}

// VectorFromXY creates a vector from Cartesian components.
func VectorFromXY(x, y float64) Vector {
	return Vector{Angle: math.Atan2(y, x), Magnitude: math.Hypot(x, y)}
}

// String formats the vector for logs.
func (v Vector) String() string {
	return fmt.Sprintf("a: %6.4f, s: %4.2f", v.Angle, v.Magnitude)
}

// X returns the horizontal projection.
func (v Vector) X() float64 {
	return v.Magnitude * math.Cos(v.Angle)
}

// Y returns the vertical projection.
func (v Vector) Y() float64 {
	return v.Magnitude * math.Sin(v.Angle)
}

// Add returns the vector sum, re-derived into polar form.
func (v Vector) Add(o Vector) Vector {
	return VectorFromXY(v.X()+o.X(), v.Y()+o.Y())
}

// Sub returns the vector difference, re-derived into polar form.
func (v Vector) Sub(o Vector) Vector {
	return VectorFromXY(v.X()-o.X(), v.Y()-o.Y())
}

// Scale multiplies the magnitude by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{Angle: v.Angle, Magnitude: v.Magnitude * k}
}

// Dot returns the dot product of the Cartesian projections.
func (v Vector) Dot(o Vector) float64 {
	return v.X()*o.X() + v.Y()*o.Y()
}

// Normalize forces the magnitude to 1 while keeping the angle.
func (v Vector) Normalize() Vector {
	return Vector{Angle: v.Angle, Magnitude: 1}
}

// ClampMagnitude restricts the magnitude to [lo, hi]. The angle is untouched.
func (v Vector) ClampMagnitude(lo, hi float64) Vector {
	v.Magnitude = ClampF(v.Magnitude, lo, hi)
	return v
}

// CapMagnitude restricts the magnitude to at most hi.
func (v Vector) CapMagnitude(hi float64) Vector {
	if v.Magnitude > hi {
		v.Magnitude = hi
	}
	return v
}

// ClampAngle restricts the raw angle to [lo, hi].
func (v Vector) ClampAngle(lo, hi float64) Vector {
	v.Angle = ClampF(v.Angle, lo, hi)
	return v
}

// NormalizeAngle reduces the angle into [0, 2π).
func (v Vector) NormalizeAngle() Vector {
	v.Angle = normalizeAngle(v.Angle)
	return v
}

// FlipX mirrors the vector across the vertical axis (reverses x).
func (v Vector) FlipX() Vector {
	v.Angle = normalizeAngle(math.Pi - v.Angle)
	return v
}

// FlipY mirrors the vector across the horizontal axis (reverses y).
func (v Vector) FlipY() Vector {
	v.Angle = normalizeAngle(twoPi - v.Angle)
	return v
}

// IsLeft reports a heading with a negative x component.
func (v Vector) IsLeft() bool {
	a := normalizeAngle(v.Angle)
	return a > 0.5*math.Pi && a < 1.5*math.Pi
}

// IsRight reports a heading with a positive x component.
func (v Vector) IsRight() bool {
	a := normalizeAngle(v.Angle)
	return a > 1.5*math.Pi || a < 0.5*math.Pi
}

// IsDown reports a heading with a positive y component.
func (v Vector) IsDown() bool {
	a := normalizeAngle(v.Angle)
	return a > 0 && a < math.Pi
}

// IsUp reports a heading with a negative y component.
func (v Vector) IsUp() bool {
	return normalizeAngle(v.Angle) > math.Pi
}

// The four octant bands below are half-open, so exactly one holds for any
// angle. A heading on an exact diagonal belongs to the band that starts there.

// IsPrimarilyRight reports a heading within 45° of +x.
func (v Vector) IsPrimarilyRight() bool {
	a := normalizeAngle(v.Angle)
	return a < 0.25*math.Pi || a >= 1.75*math.Pi
}

// IsPrimarilyDown reports a heading within 45° of +y.
func (v Vector) IsPrimarilyDown() bool {
	a := normalizeAngle(v.Angle)
	return a >= 0.25*math.Pi && a < 0.75*math.Pi
}

// IsPrimarilyLeft reports a heading within 45° of -x.
func (v Vector) IsPrimarilyLeft() bool {
	a := normalizeAngle(v.Angle)
	return a >= 0.75*math.Pi && a < 1.25*math.Pi
}

// IsPrimarilyUp reports a heading within 45° of -y.
func (v Vector) IsPrimarilyUp() bool {
	a := normalizeAngle(v.Angle)
	return a >= 1.25*math.Pi && a < 1.75*math.Pi
}

// IsInTheSameDirectionAs reports whether the two headings differ by less
// than 90°.
func (v Vector) IsInTheSameDirectionAs(o Vector) bool {
	return AngleBetween(v.Angle, o.Angle) < 0.5*math.Pi
}

// AngleBetween returns the smallest absolute difference of two angles,
// in [0, π].
func AngleBetween(a, b float64) float64 {
	d := normalizeAngle(a - b)
	if d > math.Pi {
		d = twoPi - d
	}
	return d
}

// normalizeAngle reduces an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}
