package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadgrid/internal/config"
	"github.com/vovakirdan/roadgrid/internal/platform/tui"
	"github.com/vovakirdan/roadgrid/internal/storage"
)

var (
	flagBuildRows int
	flagBuildCols int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Interactive builder in the terminal",
	Long: `Open the interactive route builder: move the cursor over the grid,
place the start and end cells, and watch the solver lay the road.

Controls:
  Arrows/hjkl - Move the cursor
  Enter/Space - Place start, then end
  r           - Start over
  p           - Toggle lane ports
  Q/Ctrl+C    - Quit

Solved and failed searches are recorded in the runs database.

Examples:
  roadgrid build
  roadgrid build --rows 8 --cols 8`,
	Run: runBuild,
}

func init() {
	buildCmd.Flags().IntVar(&flagBuildRows, "rows", 0, "Grid rows (default from config)")
	buildCmd.Flags().IntVar(&flagBuildCols, "cols", 0, "Grid columns (default from config)")
}

func runBuild(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagBuildRows > 0 {
		cfg.Grid.Rows = flagBuildRows
	}
	if flagBuildCols > 0 {
		cfg.Grid.Cols = flagBuildCols
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Run history is best effort; the builder works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: runs database unavailable: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	if err := tui.Run(cfg, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running builder: %v\n", err)
		os.Exit(1)
	}
}
