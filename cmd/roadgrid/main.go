// roadgrid finds single-pass routes over a rectangular grid and assigns
// two-lane road tiles along them.
//
// Usage:
//
//	roadgrid solve            - Find a route and map it to tiles
//	roadgrid map              - Map an externally supplied path to tiles
//	roadgrid catalog          - Inspect the tile catalog
//	roadgrid build            - Interactive builder in the terminal
//	roadgrid serve            - Serve the builder over SSH
//	roadgrid runs             - Show recent solve runs
//
// Global flags:
//
//	--config <path>  - Path to a config YAML (default search: ~/.roadgrid/config.yaml, ./roadgrid.yaml)
//	--db <path>      - Path to the runs database (default: ~/.roadgrid/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadgrid",
	Short: "Hamiltonian road routes with seamless two-lane tiles",
	Long: `roadgrid computes single-pass routes (Hamiltonian paths) across a
rectangular grid and converts them into pre-authored road tile assignments
with continuous lane connections.

Available commands:
  solve    - Find a route between two cells and map it to tiles
  map      - Map an externally supplied path to tiles
  catalog  - List or filter the tile catalog
  build    - Interactive builder in the terminal
  serve    - Serve the builder over SSH
  runs     - Show recent solve runs

Examples:
  roadgrid solve --rows 5 --cols 5 --start 0,0 --end 4,4
  roadgrid map --rows 1 --cols 3 --file path.json
  roadgrid catalog --entry left --ports 23
  roadgrid build
  roadgrid serve --ssh :23235`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadgrid/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
