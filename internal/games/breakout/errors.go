package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridbreak/internal/core"
)

var (
	// ErrLevelShape is returned when level data does not match the board size.
	ErrLevelShape = errors.New("level does not fit the board")
	// ErrGridInvariant marks a grid mutation that would corrupt the board.
	ErrGridInvariant = errors.New("grid invariant violated")
	// ErrUnknownLevel is returned for a level index outside the catalog.
	ErrUnknownLevel = errors.New("unknown level")
)

// GridError reports an attempt to overwrite a tile that must not change.
type GridError struct {
	Op    string
	Tile  core.Tile
	Found CellKind
}

func (e *GridError) Error() string {
	return fmt.Sprintf("%s: tile (%d,%d) holds %s", e.Op, e.Tile.Row, e.Tile.Col, e.Found)
}

// Unwrap lets errors.Is match ErrGridInvariant.
func (e *GridError) Unwrap() error {
	return ErrGridInvariant
}
