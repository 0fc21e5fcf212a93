package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsStats string
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent solve runs",
	Long: `Display the most recent route searches recorded by 'roadgrid solve'
and the interactive builder, newest first.

With --stats ROWSxCOLS an aggregate over every recorded run on that grid is
shown instead: run count, solved count, and average and maximum iterations.

Examples:
  roadgrid runs
  roadgrid runs --limit 50
  roadgrid runs --stats 6x6
  roadgrid runs --clear`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagRunsStats, "stats", "", "Aggregate stats for a grid, as ROWSxCOLS")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open runs database: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagRunsStats != "" {
		grid, err := parseGrid(flagRunsStats)
		if err != nil {
			return fmt.Errorf("invalid --stats: %w", err)
		}
		stats, err := store.StatsForGrid(grid)
		if err != nil {
			return err
		}
		fmt.Printf("Runs on %dx%d\n", grid.Rows, grid.Cols)
		fmt.Println()
		if stats.RunCount == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}
		fmt.Printf("  Total:          %d\n", stats.RunCount)
		fmt.Printf("  Solved:         %d\n", stats.SolvedCount)
		fmt.Printf("  Avg iterations: %.0f\n", stats.AvgIterations)
		fmt.Printf("  Max iterations: %d\n", stats.MaxIterations)
		return nil
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'roadgrid solve' to record the first one.")
		return nil
	}

	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-16s  %-5s  %-7s  %-7s  %-7s  %-10s  %s\n",
		"Date", "Grid", "Start", "End", "Result", "Iterations", "Time")
	fmt.Printf("  %-16s  %-5s  %-7s  %-7s  %-7s  %-10s  %s\n",
		"----", "----", "-----", "---", "------", "----------", "----")
	for _, r := range runs {
		result := "failed"
		if r.Found {
			result = "solved"
		}
		fmt.Printf("  %-16s  %-5s  %-7s  %-7s  %-7s  %-10d  %dms\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Grid.Rows, r.Grid.Cols),
			fmt.Sprintf("%d,%d", r.Start.Row, r.Start.Col),
			fmt.Sprintf("%d,%d", r.End.Row, r.End.Col),
			result, r.Iterations, r.DurationMS)
	}
	return nil
}

// parseGrid parses "ROWSxCOLS" into a grid size.
func parseGrid(s string) (core.GridSize, error) {
	var rows, cols int
	if _, err := fmt.Sscanf(s, "%dx%d", &rows, &cols); err != nil {
		return core.GridSize{}, fmt.Errorf("expected ROWSxCOLS, got %q", s)
	}
	if rows <= 0 || cols <= 0 {
		return core.GridSize{}, fmt.Errorf("grid dimensions must be positive, got %q", s)
	}
	return core.GridSize{Rows: rows, Cols: cols}, nil
}
