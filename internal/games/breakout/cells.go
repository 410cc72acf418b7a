package breakout

import "github.com/vovakirdan/gridbreak/internal/core"

// CellKind tags the occupant of one grid tile.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindSideWall
	KindTopWall
	KindPaddle
	KindOutOfBounds
	KindBallMarker
	KindRed
	KindGreen
	KindBlue
	KindSolid
	KindExtraBall
)

// cellTraits are the static attributes shared by every cell of a kind.
type cellTraits struct {
	name       string
	label      rune
	color      core.RGB
	vertical   bool // reflects left/right hits
	horizontal bool // reflects top/bottom hits
	value      int
	removable  bool
}

var traits = [...]cellTraits{
	KindEmpty:       {name: "empty", label: '.', color: core.ColorOff},
	KindSideWall:    {name: "side wall", label: '|', color: core.ColorWall, vertical: true},
	KindTopWall:     {name: "top wall", label: '-', color: core.ColorWall, horizontal: true},
	KindPaddle:      {name: "paddle", label: 'P', color: core.ColorYellow, horizontal: true},
	KindOutOfBounds: {name: "out of bounds", label: 'O', color: core.ColorOff, vertical: true, horizontal: true},
	KindBallMarker:  {name: "ball", label: 'b', color: core.ColorBall},
	KindRed:         {name: "red block", label: 'R', color: core.ColorRed, vertical: true, horizontal: true, value: 1, removable: true},
	KindGreen:       {name: "green block", label: 'G', color: core.ColorGreen, vertical: true, horizontal: true, value: 10, removable: true},
	KindBlue:        {name: "blue block", label: 'U', color: core.ColorBlue, vertical: true, horizontal: true, value: 5, removable: true},
	KindSolid:       {name: "solid block", label: 'S', color: core.ColorSolid, vertical: true, horizontal: true, value: 1},
	KindExtraBall:   {name: "extra ball block", label: 'o', color: core.ColorWhite, vertical: true, horizontal: true, value: 20, removable: true},
}

func (k CellKind) String() string {
	if int(k) < len(traits) {
		return traits[k].name
	}
	return "unknown"
}

// IsBlock reports whether the kind comes from level data.
func (k CellKind) IsBlock() bool {
	return k >= KindRed && k <= KindExtraBall
}

// clearable reports whether the block counts toward clearing a level.
func (k CellKind) clearable() bool {
	return k.IsBlock() && k != KindSolid
}

// Cell is the occupant of one tile. Paddle cells carry no box: theirs is
// derived from the paddle on every query.
type Cell struct {
	Kind CellKind
	Tile core.Tile
	box  core.Box
}

// Label returns the diagnostic character for the cell.
func (c Cell) Label() rune { return traits[c.Kind].label }

// Color returns the display color for the cell.
func (c Cell) Color() core.RGB { return traits[c.Kind].color }

// IsVertical reports whether the cell reflects balls hitting it from the side.
func (c Cell) IsVertical() bool { return traits[c.Kind].vertical }

// IsHorizontal reports whether the cell reflects balls hitting it from above or below.
func (c Cell) IsHorizontal() bool { return traits[c.Kind].horizontal }

func emptyCell(t core.Tile) Cell {
	return Cell{Kind: KindEmpty, Tile: t, box: core.EmptyBox()}
}

func tileCell(kind CellKind, t core.Tile, scale int) Cell {
	return Cell{Kind: kind, Tile: t, box: core.TileBox(t, scale)}
}

// BlockFromRune maps a level-data character to a block cell.
// Unrecognized characters produce Empty.
func BlockFromRune(r rune, t core.Tile, scale int) Cell {
	switch r {
	case 'B':
		return tileCell(KindBlue, t, scale)
	case 'G':
		return tileCell(KindGreen, t, scale)
	case 'R':
		return tileCell(KindRed, t, scale)
	case 'S':
		return tileCell(KindSolid, t, scale)
	case 'o':
		return tileCell(KindExtraBall, t, scale)
	default:
		return emptyCell(t)
	}
}
