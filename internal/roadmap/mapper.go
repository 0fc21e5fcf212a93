// Package roadmap converts a cell path into per-cell road tile assignments.
// It propagates the lane port set from tile to tile so the rendered lanes
// stay continuous across the whole route.
package roadmap

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/tiles"
)

// Marker tile ids used for the two endpoints of a route. They are not
// catalog entries; the art set ships dedicated start/goal tiles.
const (
	StartTileID = "start"
	GoalTileID  = "goal"
)

// ErrMalformedPath is returned when a supplied path violates the caller
// contract: consecutive points must be distinct, in-bounds, axis-aligned
// unit-distance neighbors. This is distinct from an infeasible mapping,
// which is reported through Result.Valid.
var ErrMalformedPath = errors.New("roadmap: malformed path")

// Connection is one edge of a placed tile: the edge's direction and the lane
// port set active on it. It serializes to the wire names used by renderers.
type Connection struct {
	Direction core.Direction `json:"direction"`
	Ports     tiles.PortSet  `json:"ports"`
}

// CellData describes the tile occupying one visited cell. Interior cells
// carry two connections (entry edge first, then exit edge); endpoint markers
// carry one.
type CellData struct {
	TileID      string       `json:"tile_id"`
	Connections []Connection `json:"connections"`
	PathIndex   int          `json:"path_index"`
}

// Result is a rows x cols grid of tile assignments. Cells the path does not
// touch are nil. When Valid is false the grid holds whatever was assigned
// before mapping failed and must not be used for rendering.
type Result struct {
	Grid  [][]*CellData `json:"grid"`
	Valid bool          `json:"valid"`
}

// MapPath assigns a road tile to every cell of the path. The first cell gets
// the start marker on the outer lane (ports 23), which seeds the port
// requirement propagated along the route; every interior cell must offer the
// propagated port set on its entry edge and the same set on its exit edge (a
// road cannot switch lanes mid-tile); the last cell gets the goal marker on
// whatever port arrived.
//
// Paths shorter than two points cannot form a connection and yield an empty
// invalid grid. The first cell with no satisfying tile stops the mapping
// immediately; the partially filled grid is returned with Valid set to false.
func MapPath(path []core.Point, grid core.GridSize) (Result, error) {
	out := make([][]*CellData, grid.Rows)
	for r := range out {
		out[r] = make([]*CellData, grid.Cols)
	}

	if len(path) < 2 {
		return Result{Grid: out, Valid: false}, nil
	}

	var (
		requiredPort tiles.PortSet
		haveRequired bool
	)

	for i, current := range path {
		if !grid.Contains(current) {
			return Result{}, fmt.Errorf("%w: point (%d,%d) at index %d is out of bounds", ErrMalformedPath, current.Row, current.Col, i)
		}

		var (
			entryDir, exitDir core.Direction
			hasEntry, hasExit bool
		)
		if i > 0 {
			dir, err := core.DirectionBetween(path[i-1], current)
			if err != nil {
				return Result{}, fmt.Errorf("%w: index %d: %v", ErrMalformedPath, i, err)
			}
			entryDir, hasEntry = dir, true
		}
		if i < len(path)-1 {
			dir, err := core.DirectionBetween(current, path[i+1])
			if err != nil {
				return Result{}, fmt.Errorf("%w: index %d: %v", ErrMalformedPath, i+1, err)
			}
			exitDir, hasExit = dir, true
		}

		var cell *CellData
		switch {
		case hasEntry && hasExit:
			id, port, ok := findTile(entryDir, exitDir, requiredPort, haveRequired)
			if !ok {
				// No lane-preserving tile fits here; the grid filled so
				// far is informational only.
				return Result{Grid: out, Valid: false}, nil
			}
			cell = &CellData{
				TileID: id,
				Connections: []Connection{
					{Direction: entryDir.Opposite(), Ports: port},
					{Direction: exitDir, Ports: port},
				},
				PathIndex: i,
			}
			requiredPort, haveRequired = port, true

		case hasExit:
			// Route start: fixed to the outer lane, which seeds propagation.
			cell = &CellData{
				TileID:      StartTileID,
				Connections: []Connection{{Direction: exitDir, Ports: tiles.Port23}},
				PathIndex:   i,
			}
			requiredPort, haveRequired = tiles.Port23, true

		case hasEntry:
			port := tiles.Port23
			if haveRequired {
				port = requiredPort
			}
			cell = &CellData{
				TileID:      GoalTileID,
				Connections: []Connection{{Direction: entryDir.Opposite(), Ports: port}},
				PathIndex:   i,
			}
		}

		out[current.Row][current.Col] = cell
	}

	return Result{Grid: out, Valid: true}, nil
}

// findTile returns the first catalog tile, in catalog order, that connects
// the entered edge to the exit edge with a single shared port set matching
// the propagated requirement. Catalog order is the whole tie-break: which
// curve or sharp variant wins is part of the observable behavior.
func findTile(entry, exit core.Direction, required tiles.PortSet, haveRequired bool) (id string, port tiles.PortSet, ok bool) {
	entryFrom := entry.Opposite()

	for _, t := range tiles.Catalog() {
		ep, hasEntryEdge := t.PortsFor(entryFrom)
		xp, hasExitEdge := t.PortsFor(exit)
		if !hasEntryEdge || !hasExitEdge {
			continue
		}
		if ep != xp {
			continue
		}
		if haveRequired && ep != required {
			continue
		}
		return t.ID, ep, true
	}
	return "", 0, false
}
