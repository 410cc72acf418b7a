package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridbreak/internal/core"
	"github.com/vovakirdan/gridbreak/internal/games/breakout"
	"github.com/vovakirdan/gridbreak/internal/registry"
)

var (
	flagDumpMode   string
	flagDumpLevel  string
	flagDumpTicks  int
	flagDumpScript string
	flagDumpScreen bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Run a level headless and print the grid",
	Long: `Loads a level, launches a ball and runs a number of ticks without a
terminal UI, then prints the grid dump (top wall first, one label per tile)
and the round state.

The --script string drives the paddle one character per tick and repeats:
  L = left, R = right, . = stay

Labels: | side wall, - top wall, P paddle, O out of bounds, b ball,
R red, G green, U blue, S solid, o extra ball, . empty

Examples:
  gridbreak dump
  gridbreak dump --level 02-spares --ticks 300 --seed 7
  gridbreak dump --mode breakout_endless --ticks 2000
  gridbreak dump --ticks 120 --script LLLL....RRRR --screen`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&flagDumpMode, "mode", "breakout", "Game mode: breakout or breakout_endless")
	dumpCmd.Flags().StringVar(&flagDumpLevel, "level", "", "Level ID (default: first level)")
	dumpCmd.Flags().IntVar(&flagDumpTicks, "ticks", 0, "Ticks to run after launch (0 = only load the level)")
	dumpCmd.Flags().StringVar(&flagDumpScript, "script", ".", "Paddle script: L, R or . per tick, repeated")
	dumpCmd.Flags().BoolVar(&flagDumpScreen, "screen", false, "Print the rendered frame instead of the label grid")
}

func runDump(_ *cobra.Command, _ []string) error {
	if flagDumpScript == "" || strings.Trim(flagDumpScript, "LR.") != "" {
		return fmt.Errorf("invalid --script %q: use only L, R and .", flagDumpScript)
	}
	if !registry.Exists(flagDumpMode) {
		return fmt.Errorf("unknown --mode %q (see 'gridbreak levels')", flagDumpMode)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	breakout.SetConfigPath(flagConfig)
	breakout.SetLevelsDir(flagLevelsDir)
	breakout.SetStartLevel(flagDumpLevel)
	breakout.SetLogger(logger)

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = seed

	created, err := registry.Create(flagDumpMode)
	if err != nil {
		return err
	}
	g, ok := created.(*breakout.Game)
	if !ok {
		return fmt.Errorf("mode %q has no grid to dump", flagDumpMode)
	}
	g.Reset(rt)
	if st := g.State(); st.Fault != nil {
		return st.Fault
	}
	if flagDumpLevel != "" && g.Catalog()[g.State().Level].ID != flagDumpLevel {
		return fmt.Errorf("level %q not found or does not fit the board", flagDumpLevel)
	}

	if flagDumpTicks > 0 {
		launch := core.NewInputFrame()
		launch.Set(core.ActionLaunch)
		g.Step(launch)
	}
	for i := 0; i < flagDumpTicks; i++ {
		in := core.NewInputFrame()
		switch flagDumpScript[i%len(flagDumpScript)] {
		case 'L':
			in.Set(core.ActionLeft)
		case 'R':
			in.Set(core.ActionRight)
		}
		// A new round needs another launch.
		if !g.Board().IsStillInPlay() {
			in.Set(core.ActionLaunch)
		}
		if g.Step(in).State.GameOver {
			break
		}
	}

	if flagDumpScreen {
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		g.Render(screen)
		fmt.Println(screen.String())
	} else {
		fmt.Println(g.Board().Dump())
	}

	snap := g.Snapshot()
	st := g.State()
	fmt.Println()
	fmt.Printf("level:  %s\n", g.Catalog()[st.Level].ID)
	fmt.Printf("state:  %s\n", snap.State)
	fmt.Printf("tick:   %d\n", snap.Tick)
	fmt.Printf("score:  %d\n", st.Score)
	fmt.Printf("balls:  %d remaining, %d live\n", st.BallsRemaining, len(snap.Balls))
	fmt.Printf("blocks: %d left\n", snap.BlocksLeft)
	fmt.Printf("hash:   %016x\n", snap.Hash())
	if st.Fault != nil {
		return st.Fault
	}
	return nil
}
