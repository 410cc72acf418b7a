// gridbreak is a grid-based Breakout game for the terminal.
//
// Usage:
//
//	gridbreak play           - Play interactively (mode and level picker)
//	gridbreak levels         - List built-in and directory levels
//	gridbreak dump           - Run a level headless and print the grid
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Shared game flags
	flagConfig    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridbreak",
	Short: "Grid Breakout - bounce balls through blocks in your terminal",
	Long: `Grid Breakout is a tile-grid Breakout game: balls move with sub-tile
precision, bounce off walls, blocks and the paddle, and break blocks for
points. Extra-ball blocks release another ball while a slot is free.

Available commands:
  play     - Play interactively
  levels   - List available levels
  dump     - Run a level without a terminal UI and print the grid

Examples:
  gridbreak play
  gridbreak play --level 03-columns --difficulty hard
  gridbreak levels --levels-dir ./levels
  gridbreak dump --level 02-spares --ticks 200 --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of extra YAML levels")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(dumpCmd)
}
