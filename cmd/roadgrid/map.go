package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadgrid/internal/config"
	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/roadmap"
	"github.com/vovakirdan/roadgrid/internal/platform/tui"
)

var (
	flagMapRows  int
	flagMapCols  int
	flagMapFile  string
	flagMapJSON  bool
	flagMapPorts bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map an externally supplied path to tiles",
	Long: `Assign road tiles along a path you provide instead of one found by
'roadgrid solve'. The path is a JSON array of cells, each an object with
"row" and "col", read from --file or from stdin when --file is omitted.

Consecutive cells must be edge-adjacent and inside the grid; gaps, diagonal
steps and out-of-bounds cells are rejected. The first cell gets the start
marker, the last one the goal marker.

Examples:
  roadgrid map --rows 1 --cols 3 --file path.json
  echo '[{"row":0,"col":0},{"row":0,"col":1}]' | roadgrid map --rows 1 --cols 2`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagMapRows, "rows", 0, "Grid rows (default from config)")
	mapCmd.Flags().IntVar(&flagMapCols, "cols", 0, "Grid columns (default from config)")
	mapCmd.Flags().StringVar(&flagMapFile, "file", "", "Path JSON file (default: stdin)")
	mapCmd.Flags().BoolVar(&flagMapJSON, "json", false, "Emit the tile grid as JSON")
	mapCmd.Flags().BoolVar(&flagMapPorts, "ports", false, "Annotate tiles with lane ports")
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	grid := core.GridSize{Rows: cfg.Grid.Rows, Cols: cfg.Grid.Cols}
	if flagMapRows > 0 {
		grid.Rows = flagMapRows
	}
	if flagMapCols > 0 {
		grid.Cols = flagMapCols
	}

	path, err := readPath(flagMapFile)
	if err != nil {
		return err
	}
	if len(path) < 2 {
		return fmt.Errorf("path must contain at least two cells, got %d", len(path))
	}

	road, err := roadmap.MapPath(path, grid)
	if err != nil {
		return err
	}

	if flagMapJSON {
		return json.NewEncoder(os.Stdout).Encode(road)
	}

	render := cfg.Render
	if flagMapPorts {
		render.ShowPorts = true
	}
	fmt.Println(tui.RenderRoadGrid(road, render))
	if !road.Valid {
		fmt.Fprintln(os.Stderr, "no tile satisfies the lane constraints along this path")
		os.Exit(1)
	}
	return nil
}

// readPath decodes a JSON cell array from the given file, or stdin when the
// name is empty.
func readPath(name string) ([]core.Point, error) {
	var r io.Reader = os.Stdin
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open path file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var path []core.Point
	if err := json.NewDecoder(r).Decode(&path); err != nil {
		return nil, fmt.Errorf("decode path: %w", err)
	}
	return path, nil
}
