package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadgrid/internal/config"
	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/pathfind"
	"github.com/vovakirdan/roadgrid/internal/platform/tui"
	"github.com/vovakirdan/roadgrid/internal/roadmap"
	"github.com/vovakirdan/roadgrid/internal/storage"
)

var (
	flagRows      int
	flagCols      int
	flagStart     string
	flagEnd       string
	flagMaxIter   int
	flagSolveJSON bool
	flagNoSave    bool
	flagVerbose   bool
	flagShowPorts bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a route and map it to tiles",
	Long: `Search for a single-pass route that starts and ends at the given
cells and visits every cell of the grid exactly once, then assign road tiles
along it.

Cells are given as row,col with 0,0 in the top-left corner. On grids with an
even number of cells a route only exists between cells of opposite
checkerboard parity; solve warns before spending the iteration budget on an
infeasible pair.

The outcome of every search is recorded in the runs database (see
'roadgrid runs') unless --no-save is given.

Examples:
  roadgrid solve --rows 5 --cols 5 --start 0,0 --end 4,4
  roadgrid solve --rows 8 --cols 8 --start 0,0 --end 0,1 --max-iterations 500000
  roadgrid solve --rows 4 --cols 4 --start 0,0 --end 3,0 --json`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (default from config)")
	solveCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (default from config)")
	solveCmd.Flags().StringVar(&flagStart, "start", "0,0", "Start cell as row,col")
	solveCmd.Flags().StringVar(&flagEnd, "end", "", "End cell as row,col (required)")
	solveCmd.Flags().IntVar(&flagMaxIter, "max-iterations", 0, "Iteration budget (default from config)")
	solveCmd.Flags().BoolVar(&flagSolveJSON, "json", false, "Emit the path and tile grid as JSON")
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record this run")
	solveCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log search progress details")
	solveCmd.Flags().BoolVar(&flagShowPorts, "ports", false, "Annotate tiles with lane ports")
	//nolint:errcheck // Flag is declared right above
	solveCmd.MarkFlagRequired("end")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	grid := core.GridSize{Rows: cfg.Grid.Rows, Cols: cfg.Grid.Cols}
	if flagRows > 0 {
		grid.Rows = flagRows
	}
	if flagCols > 0 {
		grid.Cols = flagCols
	}

	start, err := parseCell(flagStart)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := parseCell(flagEnd)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	if !grid.Contains(start) || !grid.Contains(end) {
		return fmt.Errorf("start %v and end %v must lie inside the %dx%d grid", start, end, grid.Rows, grid.Cols)
	}

	maxIter := cfg.Solver.MaxIterations
	if flagMaxIter > 0 {
		maxIter = flagMaxIter
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "roadgrid"})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if grid.Cells()%2 == 0 && !core.HasDifferentParity(start.Row, start.Col, end.Row, end.Col) {
		logger.Warn("start and end share checkerboard parity on an even grid; no route exists and the full budget will be spent",
			"start", flagStart, "end", flagEnd)
	}

	logger.Debug("starting search", "grid", fmt.Sprintf("%dx%d", grid.Rows, grid.Cols), "budget", maxIter)
	began := time.Now()
	search := pathfind.Find(start, end, grid, maxIter)
	elapsed := time.Since(began)
	logger.Debug("search finished", "found", search.Found, "iterations", search.Iterations, "elapsed", elapsed)

	var road roadmap.Result
	if search.Found {
		road, err = roadmap.MapPath(search.Path, grid)
		if err != nil {
			return err
		}
	}

	if !flagNoSave {
		saveRun(logger, storage.RunEntry{
			Grid:          grid,
			Start:         start,
			End:           end,
			Found:         search.Found,
			Iterations:    search.Iterations,
			MaxIterations: maxIter,
			DurationMS:    elapsed.Milliseconds(),
		})
	}

	if flagSolveJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			pathfind.Result
			Road *roadmap.Result `json:"road,omitempty"`
		}{Result: search, Road: roadPtr(road, search.Found)})
	}

	if !search.Found {
		fmt.Println(tui.RenderRunSummary(false, search.Iterations, grid))
		os.Exit(1)
	}

	render := cfg.Render
	if flagShowPorts {
		render.ShowPorts = true
	}
	fmt.Println(tui.RenderRoadGrid(road, render))
	fmt.Println()
	fmt.Println(tui.RenderRunSummary(true, search.Iterations, grid))
	return nil
}

func roadPtr(road roadmap.Result, found bool) *roadmap.Result {
	if !found {
		return nil
	}
	return &road
}

// saveRun records the search outcome, best effort.
func saveRun(logger *log.Logger, entry storage.RunEntry) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(entry); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}

// parseCell parses "row,col" into a point.
func parseCell(s string) (core.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return core.Point{}, fmt.Errorf("expected row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Point{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Point{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return core.Point{Row: row, Col: col}, nil
}
