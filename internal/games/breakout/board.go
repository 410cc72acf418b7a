package breakout

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/gridbreak/internal/config"
	"github.com/vovakirdan/gridbreak/internal/core"
	"github.com/vovakirdan/gridbreak/internal/levels"
)

// Grid layout, rows indexed by y:
//
//	row 0        out-of-bounds sensor, full width
//	row 1        paddle row
//	rows 2..R    level blocks
//	row R+1      top wall
//	cols 0, C+1  side walls on every row but 0

type ballSlot struct {
	ball Ball
	used bool
}

// marker remembers the cell a ball marker covers.
type marker struct {
	tile  core.Tile
	saved Cell
}

// Board owns the tile grid, the ball roster and the round bookkeeping.
// It is not safe for concurrent use.
type Board struct {
	cfg     config.BreakoutConfig
	scale   int
	rows    int // Grid rows, halo included
	columns int // Grid columns, halo included
	cells   [][]Cell
	slots   []ballSlot
	markers []marker

	paddle     *Paddle
	catalog    []levels.Level
	levelIndex int
	blocksLeft int

	score          int
	ballsRemaining int
	inPlay         bool
	launchSpeed    float64

	rng    *rand.Rand
	logger *log.Logger
}

// NewBoard builds the walls, the out-of-bounds row and the paddle row.
// No level is loaded until SetUpLevel is called.
func NewBoard(cfg config.BreakoutConfig, paddle *Paddle, catalog []levels.Level, seed int64, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Board{
		cfg:         cfg,
		scale:       cfg.Board.Scale,
		rows:        cfg.Board.Rows + 2,
		columns:     cfg.Board.Columns + 2,
		slots:       make([]ballSlot, cfg.Board.MaxBallsInPlay),
		paddle:      paddle,
		catalog:     catalog,
		levelIndex:  -1,
		launchSpeed: cfg.Ball.LaunchSpeed,
		rng:         rand.New(rand.NewSource(uint64(seed))), //#nosec G115 -- seed bits are reused as is
		logger:      logger,
	}

	b.cells = make([][]Cell, b.rows)
	for r := range b.cells {
		b.cells[r] = make([]Cell, b.columns)
		for c := range b.cells[r] {
			b.cells[r][c] = emptyCell(core.Tile{Row: r, Col: c})
		}
	}
	b.addBorder()
	b.addOutOfBounds()
	_ = b.UpdatePaddle() // row 1 is empty on a fresh grid
	b.ResetGame()
	return b
}

func (b *Board) addBorder() {
	s := float64(b.scale)
	w := float64(b.columns) * s
	h := float64(b.rows) * s

	top := core.NewBox(h-s, 0, h-1, w-1)
	for c := 0; c < b.columns; c++ {
		t := core.Tile{Row: b.rows - 1, Col: c}
		b.setCell(t, Cell{Kind: KindTopWall, Tile: t, box: top})
	}

	left := core.NewBox(s, 0, h-1, s-1)
	right := core.NewBox(s, w-s, h-1, w-1)
	for r := 1; r < b.rows; r++ {
		lt := core.Tile{Row: r, Col: 0}
		rt := core.Tile{Row: r, Col: b.columns - 1}
		b.setCell(lt, Cell{Kind: KindSideWall, Tile: lt, box: left})
		b.setCell(rt, Cell{Kind: KindSideWall, Tile: rt, box: right})
	}
}

func (b *Board) addOutOfBounds() {
	s := float64(b.scale)
	box := core.NewBox(0, 0, s-1, float64(b.columns)*s-1)
	for c := 0; c < b.columns; c++ {
		t := core.Tile{Row: 0, Col: c}
		b.setCell(t, Cell{Kind: KindOutOfBounds, Tile: t, box: box})
	}
}

// setCell is the only path that writes the grid.
func (b *Board) setCell(t core.Tile, c Cell) {
	c.Tile = t
	b.cells[t.Row][t.Col] = c
}

func (b *Board) inGrid(t core.Tile) bool {
	return t.Row >= 0 && t.Row < b.rows && t.Col >= 0 && t.Col < b.columns
}

func (b *Board) cellAt(t core.Tile) Cell {
	if !b.inGrid(t) {
		return emptyCell(t)
	}
	return b.cells[t.Row][t.Col]
}

// CellAt returns the occupant of a tile, ball markers included.
// Tiles outside the grid read as Empty.
func (b *Board) CellAt(row, col int) Cell {
	return b.cellAt(core.Tile{Row: row, Col: col})
}

// Rows returns the grid height in tiles, halo included.
func (b *Board) Rows() int { return b.rows }

// Columns returns the grid width in tiles, halo included.
func (b *Board) Columns() int { return b.columns }

// Scale returns the number of sub-tile units per tile.
func (b *Board) Scale() int { return b.scale }

// Paddle returns the paddle the board reads on UpdatePaddle.
func (b *Board) Paddle() *Paddle { return b.paddle }

// CellBox returns the collision box of a cell. Paddle cells read the paddle.
func (b *Board) CellBox(c Cell) core.Box {
	if c.Kind == KindPaddle {
		return b.paddle.Box()
	}
	return c.box
}

// IsHitBy reports whether a ball's box overlaps the cell. Empty is never hit.
func (b *Board) IsHitBy(c Cell, ball Ball) bool {
	if c.Kind == KindEmpty {
		return false
	}
	return b.CellBox(c).CollidesWith(ball.Box())
}

// CellValue returns the score a hit on the cell awards right now.
func (b *Board) CellValue(c Cell) int {
	if c.Kind == KindExtraBall && !b.CanLaunchAnotherBall() {
		return 0
	}
	return traits[c.Kind].value
}

// CellRemovable reports whether a hit would clear the cell right now.
func (b *Board) CellRemovable(c Cell) bool {
	if c.Kind == KindExtraBall {
		return b.CanLaunchAnotherBall()
	}
	return traits[c.Kind].removable
}

// ResetGame starts a new game: score and ball count reset, no ball in play.
// The grid keeps whatever level is loaded.
func (b *Board) ResetGame() {
	b.liftMarkers()
	b.score = 0
	b.inPlay = false
	b.ballsRemaining = b.cfg.Board.BallsPerGame
	b.clearSlots()
}

// AddBlocks loads the first level.
func (b *Board) AddBlocks() error {
	return b.SetUpLevel(0)
}

// SetUpLevel replaces the block area with level n of the catalog.
func (b *Board) SetUpLevel(n int) error {
	if n < 0 || n >= len(b.catalog) {
		return fmt.Errorf("%w: index %d, catalog has %d", ErrUnknownLevel, n, len(b.catalog))
	}
	lvl := b.catalog[n]
	if err := lvl.CheckShape(b.cfg.Board.Rows-1, b.cfg.Board.Columns); err != nil {
		return fmt.Errorf("%w: %w", ErrLevelShape, err)
	}

	b.liftMarkers()
	defer b.placeMarkers()

	b.blocksLeft = 0
	for i, line := range lvl.TopDownRows() {
		row := b.rows - 2 - i
		col := 1
		for _, r := range line {
			t := core.Tile{Row: row, Col: col}
			cell := BlockFromRune(r, t, b.scale)
			b.setCell(t, cell)
			if cell.Kind.clearable() {
				b.blocksLeft++
			}
			col++
		}
	}
	b.levelIndex = n

	b.logger.Debug("level loaded", "index", n, "id", lvl.ID, "blocks", b.blocksLeft)
	for i, line := range strings.Split(b.Dump(), "\n") {
		b.logger.Debug("grid", "row", b.rows-1-i, "cells", line)
	}
	return nil
}

// UpdatePaddle redraws the paddle row from the paddle's position.
// Every playfield tile on row 1 must hold Empty or Paddle; anything else
// means the grid is corrupt and the row is left untouched.
func (b *Board) UpdatePaddle() error {
	b.liftMarkers()
	defer b.placeMarkers()

	for c := 1; c < b.columns-1; c++ {
		t := core.Tile{Row: 1, Col: c}
		if k := b.cells[1][c].Kind; k != KindEmpty && k != KindPaddle {
			return &GridError{Op: "update paddle", Tile: t, Found: k}
		}
	}

	first, last := b.paddle.Columns()
	for c := 1; c < b.columns-1; c++ {
		t := core.Tile{Row: 1, Col: c}
		if c >= first && c <= last {
			b.setCell(t, Cell{Kind: KindPaddle, Tile: t, box: core.EmptyBox()})
		} else {
			b.setCell(t, emptyCell(t))
		}
	}
	return nil
}

// SetLaunchSpeed sets the speed given to the next launched ball.
func (b *Board) SetLaunchSpeed(speed float64) {
	b.launchSpeed = core.ClampF(speed, b.cfg.Ball.MinSpeed, b.cfg.Ball.MaxSpeed)
}

// Launch starts a round with a single ball above the paddle. It does
// nothing while a round is running or once the game is over.
func (b *Board) Launch() bool {
	if b.inPlay || b.IsGameOver() {
		return false
	}
	b.liftMarkers()
	b.clearSlots()
	b.addBall(newLaunchBall(b.cfg, b.paddle, b.launchSpeed))
	b.inPlay = true
	b.placeMarkers()
	b.logger.Debug("launch", "speed", b.launchSpeed, "balls_remaining", b.ballsRemaining)
	return true
}

// MoveBalls advances every live ball one tick and resolves its collisions.
// Balls are processed in slot order, so a ball spawned into a later slot
// moves in the same tick.
func (b *Board) MoveBalls() {
	b.liftMarkers()
	for i := range b.slots {
		if !b.slots[i].used {
			continue
		}
		b.slots[i].ball.move(b.cfg)
		if hit := b.resolveCollisions(i); hit != hitNone {
			b.logger.Debug("collision", "slot", i, "kind", hit)
		}
	}
	b.placeMarkers()
}

// ClearBalls empties every slot and ends the round without costing a ball.
func (b *Board) ClearBalls() {
	b.liftMarkers()
	b.clearSlots()
	b.inPlay = false
}

func (b *Board) clearSlots() {
	for i := range b.slots {
		b.slots[i] = ballSlot{}
	}
}

// addBall puts a ball in the first free slot. Full slots make it a no-op.
func (b *Board) addBall(ball Ball) bool {
	for i := range b.slots {
		if b.slots[i].used {
			continue
		}
		b.slots[i] = ballSlot{ball: ball, used: true}
		b.logger.Debug("ball added", "slot", i, "pos", ball.Position, "vel", ball.Velocity)
		return true
	}
	return false
}

// spawnBall releases an extra ball from a tile, moving roughly like the
// ball that freed it.
func (b *Board) spawnBall(t core.Tile, hitter Ball) {
	if !b.CanLaunchAnotherBall() {
		return
	}
	vel := hitter.Velocity.Add(b.jitter()).ClampMagnitude(b.cfg.Ball.MinSpeed, b.cfg.Ball.MaxSpeed)
	pos := core.Position{X: float64(t.Col * b.scale), Y: float64(t.Row * b.scale)}
	b.addBall(newSpawnedBall(pos, vel, b.cfg.Ball))
}

// jitter draws a perturbation with angle and magnitude uniform in
// ±spawn_jitter_angle and ±spawn_jitter_speed.
func (b *Board) jitter() core.Vector {
	a := (b.rng.Float64()*2 - 1) * b.cfg.Ball.SpawnJitterAngle
	m := (b.rng.Float64()*2 - 1) * b.cfg.Ball.SpawnJitterSpeed
	return core.VectorFromXY(m*math.Cos(a), m*math.Sin(a))
}

func (b *Board) addToScore(v int) {
	if v > 0 {
		b.score += v
	}
}

func (b *Board) removeBlock(c Cell) {
	b.setCell(c.Tile, emptyCell(c.Tile))
	if c.Kind.clearable() {
		b.blocksLeft--
	}
}

// wentOutOfBounds drops the ball in slot i. Losing the last live ball
// ends the round and costs one of the remaining balls.
func (b *Board) wentOutOfBounds(i int) {
	b.slots[i] = ballSlot{}
	live := b.LiveBalls()
	b.logger.Debug("out of bounds", "slot", i, "live", live)
	if live > 0 {
		return
	}
	if b.ballsRemaining > 0 {
		b.ballsRemaining--
	}
	b.inPlay = false
	b.logger.Debug("round over", "balls_remaining", b.ballsRemaining)
	if b.IsGameOver() {
		b.logger.Info("game over", "score", b.score)
	}
}

// placeMarkers overlays a ball marker on the tile under each ball center.
func (b *Board) placeMarkers() {
	b.liftMarkers()
	for i := range b.slots {
		if !b.slots[i].used {
			continue
		}
		t := b.slots[i].ball.Center().ToTile(b.scale)
		if !b.inGrid(t) {
			continue
		}
		b.markers = append(b.markers, marker{tile: t, saved: b.cells[t.Row][t.Col]})
		b.setCell(t, tileCell(KindBallMarker, t, b.scale))
	}
}

// liftMarkers restores the cells under the markers, newest first.
func (b *Board) liftMarkers() {
	for i := len(b.markers) - 1; i >= 0; i-- {
		m := b.markers[i]
		b.setCell(m.tile, m.saved)
	}
	b.markers = b.markers[:0]
}

// Score returns the points earned this game.
func (b *Board) Score() int { return b.score }

// BallsRemaining returns how many rounds the player has left.
func (b *Board) BallsRemaining() int { return b.ballsRemaining }

// LevelIndex returns the catalog index of the loaded level, or -1.
func (b *Board) LevelIndex() int { return b.levelIndex }

// BlocksLeft returns the number of blocks still needed to clear the level.
func (b *Board) BlocksLeft() int { return b.blocksLeft }

// LiveBalls returns the number of occupied ball slots.
func (b *Board) LiveBalls() int {
	n := 0
	for _, s := range b.slots {
		if s.used {
			n++
		}
	}
	return n
}

// Balls returns copies of the live balls in slot order.
func (b *Board) Balls() []Ball {
	out := make([]Ball, 0, len(b.slots))
	for _, s := range b.slots {
		if s.used {
			out = append(out, s.ball)
		}
	}
	return out
}

// CanLaunchAnotherBall reports whether a ball slot is free.
func (b *Board) CanLaunchAnotherBall() bool {
	return b.LiveBalls() < len(b.slots)
}

// IsStillInPlay reports whether a round is running.
func (b *Board) IsStillInPlay() bool { return b.inPlay }

// IsGameOver reports whether no balls remain.
func (b *Board) IsGameOver() bool { return b.ballsRemaining == 0 }

// LevelCleared reports whether a loaded level has no clearable blocks left.
// Solid blocks never need clearing.
func (b *Board) LevelCleared() bool {
	return b.levelIndex >= 0 && b.blocksLeft == 0
}

// Dump renders the grid as text, top wall first, one label per tile.
func (b *Board) Dump() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.columns + 1))
	for r := b.rows - 1; r >= 0; r-- {
		for c := 0; c < b.columns; c++ {
			sb.WriteRune(b.cells[r][c].Label())
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
