// Package registry maps game mode IDs to factories. Each mode registers
// itself from init(), so the CLI and the TUI can create a game by ID
// without importing the engine's constructors.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/gridbreak/internal/core"
)

// Game is what the platform drives once per tick. Implementations hold pure
// logic with no Bubble Tea imports; the platform owns input mapping,
// timing and terminal output.
type Game interface {
	// ID is the mode ID the game was registered under.
	ID() string
	// Title is shown in the menu and the `levels` mode list.
	Title() string
	// Reset loads config and levels and starts a new game at the serve
	// state. The platform calls it on start, restart and resize.
	Reset(cfg core.RuntimeConfig)
	// Step runs one tick: paddle intent, launch, ball moves and round flow.
	Step(in core.InputFrame) core.StepResult
	// Render draws the HUD, the grid and any overlay into a cleared screen.
	Render(dst *core.Screen)
	// State reports score, balls, level and any fault.
	State() core.GameState
}

// ErrUnknownGame is returned by Create for an unregistered mode ID.
var ErrUnknownGame = errors.New("unknown game mode")

// GameInfo names one playable mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates one game for a mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register binds a mode ID ("breakout" or "breakout_endless") to its
// factory. The breakout package calls it from init for both modes; a second
// registration of the same ID is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// The title is only known to an instance.
	titles[id] = f().Title()
}

// List returns the registered modes sorted by ID, so campaign comes
// before endless in `gridbreak levels`.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	modes := make([]GameInfo, 0, len(factories))
	for id, title := range titles {
		modes = append(modes, GameInfo{ID: id, Title: title})
	}
	slices.SortFunc(modes, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return modes
}

// Create builds a fresh, not yet Reset game for a mode ID. Each call
// returns a new instance, so a restart from the menu never shares a board.
// Unknown IDs wrap ErrUnknownGame.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists reports whether a mode ID can be passed to Create. The CLI
// checks --mode with it before setting anything up.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
