package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/tiles"
)

var (
	flagCatEntry string
	flagCatExit  string
	flagCatPorts string
	flagCatJSON  bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List or filter the tile catalog",
	Long: `Show the fixed catalog of 40 road tiles: 16 curves, 16 sharp turns
and 8 straights, each connecting two edges with a lane port set of 12 or 23.

Without flags the whole catalog is printed in its canonical order, the same
order the mapper uses when it picks the first matching tile. With --entry,
--exit and --ports the listing is narrowed to tiles connecting those edges
with that port set on both of them.

Examples:
  roadgrid catalog
  roadgrid catalog --entry left --exit right --ports 23
  roadgrid catalog --entry up --exit right --ports 12 --json`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagCatEntry, "entry", "", "Entry edge: up, right, down or left")
	catalogCmd.Flags().StringVar(&flagCatExit, "exit", "", "Exit edge: up, right, down or left")
	catalogCmd.Flags().StringVar(&flagCatPorts, "ports", "", "Lane port set on both edges: 12 or 23")
	catalogCmd.Flags().BoolVar(&flagCatJSON, "json", false, "Emit the listing as JSON")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	defs := tiles.Catalog()

	filtered := flagCatEntry != "" || flagCatExit != "" || flagCatPorts != ""
	if filtered {
		if flagCatEntry == "" || flagCatExit == "" || flagCatPorts == "" {
			return fmt.Errorf("--entry, --exit and --ports must be given together")
		}
		entry, err := parseDirection(flagCatEntry)
		if err != nil {
			return fmt.Errorf("invalid --entry: %w", err)
		}
		exit, err := parseDirection(flagCatExit)
		if err != nil {
			return fmt.Errorf("invalid --exit: %w", err)
		}
		ports, err := parsePorts(flagCatPorts)
		if err != nil {
			return fmt.Errorf("invalid --ports: %w", err)
		}
		defs = tiles.Matching(entry, ports, exit, ports)
	}

	if flagCatJSON {
		type entry struct {
			ID      string        `json:"id"`
			Variant string        `json:"variant"`
			Edges   [2]edgeRecord `json:"edges"`
		}
		out := make([]entry, 0, len(defs))
		for _, d := range defs {
			out = append(out, entry{
				ID:      d.ID,
				Variant: d.Variant.String(),
				Edges: [2]edgeRecord{
					{Direction: d.Conn1.Dir.String(), Ports: d.Conn1.Ports.String()},
					{Direction: d.Conn2.Dir.String(), Ports: d.Conn2.Ports.String()},
				},
			})
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	if len(defs) == 0 {
		fmt.Println("No tiles match.")
		return nil
	}

	// Calculate column width
	maxIDLen := 2 // "ID" header
	for _, d := range defs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Variant", "Connections")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-------", "-----------")
	for _, d := range defs {
		fmt.Printf("  %-*s  %-8s  %s:%s %s:%s\n", maxIDLen, d.ID, d.Variant,
			d.Conn1.Dir, d.Conn1.Ports, d.Conn2.Dir, d.Conn2.Ports)
	}
	fmt.Println()
	fmt.Printf("%d tiles\n", len(defs))
	return nil
}

type edgeRecord struct {
	Direction string `json:"direction"`
	Ports     string `json:"ports"`
}

// parseDirection maps an edge name to its direction.
func parseDirection(s string) (core.Direction, error) {
	for _, d := range core.Directions() {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("expected up, right, down or left, got %q", s)
}

// parsePorts maps a port set wire name to its value.
func parsePorts(s string) (tiles.PortSet, error) {
	switch s {
	case "12":
		return tiles.Port12, nil
	case "23":
		return tiles.Port23, nil
	default:
		return 0, fmt.Errorf("expected 12 or 23, got %q", s)
	}
}
