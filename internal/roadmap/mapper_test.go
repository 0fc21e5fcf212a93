package roadmap

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/pathfind"
	"github.com/vovakirdan/roadgrid/internal/tiles"
)

func mustMap(t *testing.T, path []core.Point, grid core.GridSize) Result {
	t.Helper()
	res, err := MapPath(path, grid)
	if err != nil {
		t.Fatalf("MapPath: unexpected error %v", err)
	}
	return res
}

// checkContinuity walks the mapped path and verifies that the exit port of
// every cell equals the entry port of the next.
func checkContinuity(t *testing.T, res Result, path []core.Point) {
	t.Helper()

	if !res.Valid {
		t.Fatal("expected a valid mapping")
	}

	for i, p := range path {
		cell := res.Grid[p.Row][p.Col]
		if cell == nil {
			t.Fatalf("cell (%d,%d) at path index %d has no assignment", p.Row, p.Col, i)
		}
		if cell.PathIndex != i {
			t.Errorf("cell (%d,%d) has path index %d, want %d", p.Row, p.Col, cell.PathIndex, i)
		}

		wantConns := 2
		if i == 0 || i == len(path)-1 {
			wantConns = 1
		}
		if len(cell.Connections) != wantConns {
			t.Fatalf("cell at index %d has %d connections, want %d", i, len(cell.Connections), wantConns)
		}

		if i == 0 {
			continue
		}
		prev := res.Grid[path[i-1].Row][path[i-1].Col]
		exitPort := prev.Connections[len(prev.Connections)-1].Ports
		entryPort := cell.Connections[0].Ports
		if exitPort != entryPort {
			t.Errorf("lane break between index %d and %d: exit %v, entry %v", i-1, i, exitPort, entryPort)
		}
	}
}

func TestMapStraightRow(t *testing.T) {
	path := []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	grid := core.GridSize{Rows: 1, Cols: 3}

	res := mustMap(t, path, grid)
	checkContinuity(t, res, path)

	start := res.Grid[0][0]
	if start.TileID != StartTileID {
		t.Errorf("first cell tile = %q, want %q", start.TileID, StartTileID)
	}
	if start.Connections[0].Direction != core.DirRight || start.Connections[0].Ports != tiles.Port23 {
		t.Errorf("start connection = %+v, want right/23", start.Connections[0])
	}

	mid := res.Grid[0][1]
	// Entered from the left, leaving right, outer lane propagated from the
	// start marker: the first catalog match is the 23/23 horizontal straight.
	if mid.TileID != "straight-h-88" {
		t.Errorf("interior tile = %q, want straight-h-88", mid.TileID)
	}
	if mid.Connections[0].Direction != core.DirLeft || mid.Connections[1].Direction != core.DirRight {
		t.Errorf("interior connections = %+v, want entry left then exit right", mid.Connections)
	}

	goal := res.Grid[0][2]
	if goal.TileID != GoalTileID {
		t.Errorf("last cell tile = %q, want %q", goal.TileID, GoalTileID)
	}
	if goal.Connections[0].Direction != core.DirLeft || goal.Connections[0].Ports != tiles.Port23 {
		t.Errorf("goal connection = %+v, want left/23", goal.Connections[0])
	}
}

func TestMapCornerPicksCatalogOrder(t *testing.T) {
	// Down then right: the interior cell is entered from above and leaves
	// right, on the propagated outer lane. Catalog order makes the curve
	// win over the sharp variant.
	path := []core.Point{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	res := mustMap(t, path, core.GridSize{Rows: 2, Cols: 2})
	checkContinuity(t, res, path)

	corner := res.Grid[1][0]
	if corner.TileID != "curve-0A" {
		t.Errorf("corner tile = %q, want curve-0A", corner.TileID)
	}
}

func TestMapBoustrophedon(t *testing.T) {
	// Row-snake over a 4x4 grid touches corners in all orientations.
	var path []core.Point
	for r := 0; r < 4; r++ {
		for i := 0; i < 4; i++ {
			c := i
			if r%2 == 1 {
				c = 3 - i
			}
			path = append(path, core.Point{Row: r, Col: c})
		}
	}

	grid := core.GridSize{Rows: 4, Cols: 4}
	res := mustMap(t, path, grid)
	checkContinuity(t, res, path)

	// Every cell of the grid is covered.
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if res.Grid[r][c] == nil {
				t.Errorf("cell (%d,%d) unassigned", r, c)
			}
		}
	}
}

func TestMapFoundPath(t *testing.T) {
	// End to end: map whatever the finder produces.
	grid := core.GridSize{Rows: 5, Cols: 4}
	found := pathfind.Find(core.Point{Row: 0, Col: 0}, core.Point{Row: 4, Col: 3}, grid, 2_000_000)
	if !found.Found {
		t.Fatal("finder failed on a feasible grid")
	}

	res := mustMap(t, found.Path, grid)
	checkContinuity(t, res, found.Path)
}

func TestMapIdempotent(t *testing.T) {
	path := []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}
	grid := core.GridSize{Rows: 2, Cols: 2}

	first := mustMap(t, path, grid)
	second := mustMap(t, path, grid)

	if !reflect.DeepEqual(first, second) {
		t.Error("mapping the same path twice produced different results")
	}
}

func TestMapShortPaths(t *testing.T) {
	grid := core.GridSize{Rows: 2, Cols: 2}

	for _, path := range [][]core.Point{nil, {{Row: 0, Col: 0}}} {
		res := mustMap(t, path, grid)
		if res.Valid {
			t.Errorf("path of length %d should be invalid", len(path))
		}
		for r := range res.Grid {
			for c := range res.Grid[r] {
				if res.Grid[r][c] != nil {
					t.Errorf("short path left an assignment at (%d,%d)", r, c)
				}
			}
		}
	}
}

func TestMapMalformedPath(t *testing.T) {
	grid := core.GridSize{Rows: 3, Cols: 3}

	cases := []struct {
		name string
		path []core.Point
	}{
		{"gap", []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}}},
		{"diagonal", []core.Point{{Row: 0, Col: 0}, {Row: 1, Col: 1}}},
		{"repeat", []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 0}}},
		{"out of bounds", []core.Point{{Row: 0, Col: 2}, {Row: 0, Col: 3}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := MapPath(c.path, grid); !errors.Is(err, ErrMalformedPath) {
				t.Errorf("expected ErrMalformedPath, got %v", err)
			}
		})
	}
}

func TestFindTileHonorsRequiredPort(t *testing.T) {
	// Entered moving right (so the entry edge is the left one), leaving
	// down. Both lane variants exist; the propagated port decides.
	id, port, ok := findTile(core.DirRight, core.DirDown, tiles.Port12, true)
	if !ok || id != "curve-50" || port != tiles.Port12 {
		t.Errorf("required 12: got (%q, %v, %v), want (curve-50, 12, true)", id, port, ok)
	}

	id, port, ok = findTile(core.DirRight, core.DirDown, tiles.Port23, true)
	if !ok || id != "curve-A0" || port != tiles.Port23 {
		t.Errorf("required 23: got (%q, %v, %v), want (curve-A0, 23, true)", id, port, ok)
	}

	// Without a requirement the first catalog match wins.
	id, _, ok = findTile(core.DirRight, core.DirDown, 0, false)
	if !ok || id != "curve-50" {
		t.Errorf("unconstrained: got (%q, %v), want curve-50", id, ok)
	}
}
