package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridbreak/internal/config"
	"github.com/vovakirdan/gridbreak/internal/levels"
	"github.com/vovakirdan/gridbreak/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels followed by levels from --levels-dir.
A directory level with the same ID as a built-in one replaces it.
The last column reports whether the level fits the configured board.
The game modes accepted by 'dump --mode' are listed at the end.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	catalog, err := levels.Catalog(flagLevelsDir)
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}

	if len(catalog) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, lvl := range catalog {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	fmt.Printf("Board: %d columns x %d rows\n\n", cfg.Board.Columns, cfg.Board.Rows)
	fmt.Printf("  %-*s  %-*s  %6s  %-10s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Blocks", "Order", "Status")
	fmt.Printf("  %-*s  %-*s  %6s  %-10s  %s\n", maxIDLen, "--", maxNameLen, "----", "------", "-----", "------")

	for _, lvl := range catalog {
		status := "ok"
		if err := lvl.CheckShape(cfg.Board.Rows-1, cfg.Board.Columns); err != nil {
			status = err.Error()
		}
		order := lvl.Order
		if order == "" {
			order = levels.TopDown
		}
		fmt.Printf("  %-*s  %-*s  %6d  %-10s  %s\n", maxIDLen, lvl.ID, maxNameLen, lvl.Name, lvl.BlockCount(), order, status)
		if lvl.FilePath != "" {
			fmt.Printf("  %-*s  from %s\n", maxIDLen, "", lvl.FilePath)
		}
	}

	fmt.Println()
	fmt.Println("Modes:")
	for _, info := range registry.List() {
		fmt.Printf("  %-18s %s\n", info.ID, info.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gridbreak play --level <id>' to start at a level.")
	return nil
}
