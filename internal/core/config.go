package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score          int   // Current score
	BallsRemaining int   // Balls left before game over
	Level          int   // Zero-based level index
	InPlay         bool  // Whether a round is running
	GameOver       bool  // Whether the game has ended
	Paused         bool  // Whether the game is paused
	Fault          error // Set when a tick was aborted on a grid invariant violation
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
