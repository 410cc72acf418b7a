package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyBoxNeverCollides(t *testing.T) {
	e := EmptyBox()
	b := NewBox(0, 0, 10, 10)

	assert.True(t, e.IsEmpty())
	assert.False(t, e.CollidesWith(b))
	assert.False(t, b.CollidesWith(e))
	assert.False(t, e.CollidesWith(e))
}

func TestNewBoxDegenerateIsEmpty(t *testing.T) {
	assert.True(t, NewBox(5, 0, 4, 10).IsEmpty())
	assert.True(t, NewBox(0, 5, 10, 4).IsEmpty())
	assert.False(t, NewBox(3, 3, 3, 3).IsEmpty(), "single point box covers one unit")
}

func TestBoxCollisionIsSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"overlap", NewBox(0, 0, 10, 10), NewBox(5, 5, 15, 15), true},
		{"edge touch", NewBox(0, 0, 7, 7), NewBox(7, 0, 14, 7), true},
		{"gap below", NewBox(0, 0, 7, 7), NewBox(8, 0, 15, 7), false},
		{"gap right", NewBox(0, 0, 7, 7), NewBox(0, 8, 7, 15), false},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 6, 6), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.CollidesWith(tt.b))
			assert.Equal(t, tt.want, tt.b.CollidesWith(tt.a))
		})
	}
}

func TestBoxUnionIdentity(t *testing.T) {
	b := NewBox(1, 2, 3, 4)
	assert.Equal(t, b, EmptyBox().Union(b))
	assert.Equal(t, b, b.Union(EmptyBox()))

	u := b.Union(NewBox(10, 0, 12, 3))
	assert.Equal(t, NewBox(1, 0, 12, 4), u)
}

func TestBoxIntersect(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	assert.Equal(t, NewBox(5, 5, 10, 10), a.Intersect(NewBox(5, 5, 20, 20)))
	assert.True(t, a.Intersect(NewBox(11, 11, 20, 20)).IsEmpty())
	assert.True(t, a.Intersect(EmptyBox()).IsEmpty())
}

func TestBoxInset(t *testing.T) {
	b := NewBox(0, 0, 7, 7).Inset(1)
	assert.Equal(t, NewBox(1, 1, 6, 6), b)
	assert.True(t, NewBox(0, 0, 1, 1).Inset(1).IsEmpty())
}

func TestBoxAnchors(t *testing.T) {
	b := NewBox(0, 10, 8, 20)

	assert.Equal(t, Position{X: 10, Y: 0}, b.TopLeft())
	assert.Equal(t, Position{X: 15, Y: 0}, b.TopCenter())
	assert.Equal(t, Position{X: 20, Y: 0}, b.TopRight())
	assert.Equal(t, Position{X: 10, Y: 4}, b.MiddleLeft())
	assert.Equal(t, Position{X: 20, Y: 4}, b.MiddleRight())
	assert.Equal(t, Position{X: 10, Y: 8}, b.BottomLeft())
	assert.Equal(t, Position{X: 15, Y: 8}, b.BottomCenter())
	assert.Equal(t, Position{X: 20, Y: 8}, b.BottomRight())
	assert.Equal(t, Position{X: 15, Y: 4}, b.Center())
}

func TestTileBox(t *testing.T) {
	b := TileBox(Tile{Row: 2, Col: 3}, 8)
	require.False(t, b.IsEmpty())
	assert.Equal(t, NewBox(16, 24, 23, 31), b)

	// Adjacent tiles do not overlap.
	assert.False(t, b.CollidesWith(TileBox(Tile{Row: 2, Col: 4}, 8)))
	assert.False(t, b.CollidesWith(TileBox(Tile{Row: 3, Col: 3}, 8)))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	assert.Equal(t, 0.5, ClampF(0.1, 0.5, 2))
	assert.Equal(t, 2.0, ClampF(3, 0.5, 2))
	assert.Equal(t, 1.25, ClampF(1.25, 0.5, 2))
}
