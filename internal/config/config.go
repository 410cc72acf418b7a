// Package config provides YAML-based game configuration loading and
// difficulty management for gridbreak.
package config

// BreakoutConfig contains all configuration for the grid Breakout engine.
type BreakoutConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield geometry and the ball roster limits.
type BoardConfig struct {
	Scale          int `yaml:"scale"`             // Sub-tile units per tile
	Rows           int `yaml:"rows"`              // Playfield rows (R)
	Columns        int `yaml:"columns"`           // Playfield columns (C)
	MaxBallsInPlay int `yaml:"max_balls_in_play"` // Ball slot capacity
	BallsPerGame   int `yaml:"balls_per_game"`
}

// BallConfig defines ball geometry and speed limits. Speeds are in sub-tile
// units per tick, angles in radians.
type BallConfig struct {
	Size             int     `yaml:"size"`
	CollisionMargin  int     `yaml:"collision_margin"`
	LaunchAngle      float64 `yaml:"launch_angle"`
	LaunchSpeed      float64 `yaml:"launch_speed"`
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	TouchDistance    float64 `yaml:"touch_distance"`     // Center distance for ball-vs-ball contact
	SpawnJitterAngle float64 `yaml:"spawn_jitter_angle"` // Extra balls: ± angle jitter
	SpawnJitterSpeed float64 `yaml:"spawn_jitter_speed"` // Extra balls: ± speed jitter
}

// PaddleConfig defines paddle geometry and how it shapes bounces.
type PaddleConfig struct {
	Width            int     `yaml:"width"` // Sub-tile units
	Speed            float64 `yaml:"speed"`
	MaxTransferSpeed float64 `yaml:"max_transfer_speed"`
	ConeLow          float64 `yaml:"cone_low"`  // Lowest outgoing angle
	ConeHigh         float64 `yaml:"cone_high"` // Highest outgoing angle
}

// GameplayConfig defines level selection.
type GameplayConfig struct {
	StartLevel int    `yaml:"start_level"`
	LevelsDir  string `yaml:"levels_dir"` // Optional directory of YAML levels
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "levels" or "none"
	MaxAt int    `yaml:"max_at"` // Progress at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to launch speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// GridWidth returns the board width in sub-tile units, halo included.
func (c BreakoutConfig) GridWidth() float64 {
	return float64((c.Board.Columns + 2) * c.Board.Scale)
}

// GridHeight returns the board height in sub-tile units, halo included.
func (c BreakoutConfig) GridHeight() float64 {
	return float64((c.Board.Rows + 2) * c.Board.Scale)
}
