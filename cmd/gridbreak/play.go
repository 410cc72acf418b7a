package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridbreak/internal/config"
	"github.com/vovakirdan/gridbreak/internal/core"
	"github.com/vovakirdan/gridbreak/internal/games/breakout"
	"github.com/vovakirdan/gridbreak/internal/levels"
	"github.com/vovakirdan/gridbreak/internal/platform/tui"
	"github.com/vovakirdan/gridbreak/internal/registry"
)

var (
	flagDifficulty string
	flagLevel      string
	flagEndless    bool
	flagLabels     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Grid Breakout",
	Long: `Start playing. Without --level a menu offers campaign, endless and
level selection.

Controls:
  Left/A, Right/D  - Move paddle
  Space/Up         - Launch ball
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More balls, wider paddle, slower launch
  normal - Default board, launch speed grows with score
  hard   - Fewer balls, narrow paddle, faster launch
  fixed  - No progression, launch speed stays at the config value

Examples:
  gridbreak play
  gridbreak play --endless
  gridbreak play --level 04-fortress --difficulty hard
  gridbreak play --config ./my-breakout.yaml --log-file play.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start at the level with this ID (skips the menu)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Endless mode: levels repeat until the last ball is lost")
	playCmd.Flags().BoolVar(&flagLabels, "labels", false, "Draw tile labels instead of colored blocks")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := levels.Catalog(flagLevelsDir)
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}
	if flagLevel != "" {
		if _, err := levels.Find(catalog, flagLevel); err != nil {
			return err
		}
	}

	// Get terminal size early for the menu
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Settings for the game before creation
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	breakout.SetLevelsDir(flagLevelsDir)
	breakout.SetShowLabels(flagLabels)
	breakout.SetLogger(logger)

	gameID := "breakout"
	switch {
	case flagEndless:
		gameID = "breakout_endless"
		breakout.SetStartLevel(flagLevel)
	case flagLevel != "":
		breakout.SetStartLevel(flagLevel)
	default:
		selection, selErr := tui.RunLevelMenu(catalog, cfg)
		if selErr != nil {
			return selErr
		}
		// User quit the menu
		if selection == nil {
			return nil
		}
		if selection.Mode == tui.PlayModeEndless {
			gameID = "breakout_endless"
		}
		breakout.SetStartLevel(selection.LevelID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "game", gameID, "difficulty", flagDifficulty, "level", flagLevel, "seed", flagSeed)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
