// Package breakout implements a grid-based Breakout engine: a tile grid of
// cells, polar-vector balls, and a corner/edge collision pass that turns
// every hit into a reflection plus a score or roster effect.
package breakout

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridbreak/internal/config"
	"github.com/vovakirdan/gridbreak/internal/core"
	"github.com/vovakirdan/gridbreak/internal/levels"
	"github.com/vovakirdan/gridbreak/internal/registry"
)

// GameState constants
const (
	StateServe    = "serve"    // Waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No balls left
	StateWin      = "win"      // All levels completed (campaign only)
	StateFault    = "fault"    // Tick aborted on a corrupt grid
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Play forever, score until game over
)

// Settings set via CLI before the platform creates a game.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevelID     string
	showLabels       bool
	baseLogger       = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir adds a directory of YAML levels to the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel selects the first level by ID. Empty uses the config.
func SetStartLevel(id string) {
	startLevelID = id
}

// SetShowLabels renders diagnostic labels instead of colored tiles.
func SetShowLabels(on bool) {
	showLabels = on
}

// SetLogger sets the logger new games derive their session logger from.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	baseLogger = l
}

// Game adapts the board to the platform: input, round flow and rendering.
type Game struct {
	mode GameMode

	paddle     *Paddle
	board      *Board
	catalog    []levels.Level
	difficulty *config.DifficultyManager

	state        string
	resumeState  string // State to return to after pause
	levelIndex   int
	endlessCycle int
	cleared      int // Levels cleared this game
	tickCount    int
	fault        error

	runtime config.BreakoutConfig
	rt      core.RuntimeConfig
	logger  *log.Logger
	session string

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Grid Breakout (Endless)"
	}
	return "Grid Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.session = uuid.NewString()
	g.logger = baseLogger.With("session", g.session, "game", g.ID())

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.runtime = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.catalog = g.loadCatalog(cfg)

	g.paddle = NewPaddle(cfg)
	g.board = NewBoard(cfg, g.paddle, g.catalog, rt.Seed, g.logger)

	g.minScreenW = max(g.board.Columns()*2+2, 36)
	g.minScreenH = g.board.Rows() + 5
	g.screenTooSmall = rt.ScreenW < g.minScreenW || rt.ScreenH < g.minScreenH

	g.state = StateServe
	g.resumeState = ""
	g.tickCount = 0
	g.endlessCycle = 0
	g.cleared = 0
	g.fault = nil
	g.levelIndex = g.startIndex(cfg)

	if len(g.catalog) == 0 {
		g.setFault(fmt.Errorf("%w: no level fits a %dx%d board", ErrUnknownLevel, cfg.Board.Columns, cfg.Board.Rows))
		return
	}
	if err := g.board.SetUpLevel(g.levelIndex); err != nil {
		g.setFault(err)
		return
	}
	g.logger.Info("game started",
		"level", g.catalog[g.levelIndex].ID,
		"balls", g.board.BallsRemaining(),
		"progression", g.difficulty.IsEnabled(),
	)
}

// loadCatalog gathers built-in and directory levels, keeping only those
// that fit the configured board.
func (g *Game) loadCatalog(cfg config.BreakoutConfig) []levels.Level {
	dir := levelsDir
	if dir == "" {
		dir = cfg.Gameplay.LevelsDir
	}
	all, err := levels.Catalog(dir)
	if err != nil {
		g.logger.Warn("levels dir unreadable, using built-in levels", "dir", dir, "err", err)
		all = levels.Builtin()
	}

	fitting := make([]levels.Level, 0, len(all))
	for _, lvl := range all {
		if err := lvl.CheckShape(cfg.Board.Rows-1, cfg.Board.Columns); err != nil {
			g.logger.Warn("skipping level", "id", lvl.ID, "err", err)
			continue
		}
		fitting = append(fitting, lvl)
	}
	return fitting
}

func (g *Game) startIndex(cfg config.BreakoutConfig) int {
	if startLevelID != "" {
		for i, lvl := range g.catalog {
			if lvl.ID == startLevelID {
				return i
			}
		}
		g.logger.Warn("start level not found", "id", startLevelID)
	}
	if cfg.Gameplay.StartLevel < len(g.catalog) {
		return cfg.Gameplay.StartLevel
	}
	return 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.isFinished() {
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.resumeState
		case StatePlaying, StateServe:
			g.resumeState = g.state
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.isFinished() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.paddle.Apply(in.Intent())
	if err := g.board.UpdatePaddle(); err != nil {
		g.setFault(err)
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateServe:
		if in.Has(core.ActionLaunch) {
			g.launch()
		}
	case StatePlaying:
		g.board.MoveBalls()
		switch {
		case g.board.LevelCleared():
			g.handleLevelClear()
		case g.board.IsGameOver():
			g.state = StateGameOver
			g.logger.Info("game over", "score", g.board.Score(), "ticks", g.tickCount)
		case !g.board.IsStillInPlay():
			g.state = StateServe
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) launch() {
	speed := g.difficulty.LaunchSpeed(g.runtime.Ball.LaunchSpeed, config.Progress{
		Score:         g.board.Score(),
		Ticks:         g.tickCount,
		LevelsCleared: g.cleared,
	})
	if g.mode == ModeEndless {
		speed *= 1 + 0.1*float64(g.endlessCycle)
	}
	g.board.SetLaunchSpeed(speed)
	if g.board.Launch() {
		g.state = StatePlaying
	}
}

// handleLevelClear moves on to the next level without costing a ball.
func (g *Game) handleLevelClear() {
	g.logger.Info("level cleared", "level", g.catalog[g.levelIndex].ID, "score", g.board.Score())
	g.board.ClearBalls()
	g.cleared++

	next := g.levelIndex + 1
	if next >= len(g.catalog) {
		if g.mode == ModeCampaign {
			g.state = StateWin
			g.logger.Info("campaign won", "score", g.board.Score())
			return
		}
		// Endless mode: cycle through levels
		next = 0
		g.endlessCycle++
	}
	g.levelIndex = next

	if err := g.board.SetUpLevel(g.levelIndex); err != nil {
		g.setFault(err)
		return
	}
	g.state = StateServe
}

// setFault stops the game on an error the board cannot recover from.
func (g *Game) setFault(err error) {
	g.fault = err
	g.state = StateFault
	var gridErr *GridError
	if errors.As(err, &gridErr) {
		g.logger.Error("tick aborted", "err", err, "tile_row", gridErr.Tile.Row, "tile_col", gridErr.Tile.Col)
		return
	}
	g.logger.Error("game stopped", "err", err)
}

func (g *Game) isFinished() bool {
	return g.state == StateGameOver || g.state == StateWin || g.state == StateFault
}

// Board exposes the engine for headless tools.
func (g *Game) Board() *Board {
	return g.board
}

// Catalog returns the levels this game plays through.
func (g *Game) Catalog() []levels.Level {
	return g.catalog
}

// Session returns the id tagged on this game's log lines.
func (g *Game) Session() string {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Level:    g.levelIndex,
		GameOver: g.isFinished(),
		Paused:   g.state == StatePaused,
		Fault:    g.fault,
	}
	if g.board != nil {
		st.Score = g.board.Score()
		st.BallsRemaining = g.board.BallsRemaining()
		st.InPlay = g.board.IsStillInPlay()
	}
	return st
}

// Snapshot returns the full game state for determinism checks.
func (g *Game) Snapshot() Snapshot {
	snap := g.board.Snapshot()
	snap.Tick = uint64(g.tickCount) //#nosec G115 -- tick count is always positive
	snap.State = g.state
	snap.Mode = int(g.mode)
	snap.EndlessCycle = g.endlessCycle
	return snap
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_endless", func() registry.Game {
		return NewEndless()
	})
}
