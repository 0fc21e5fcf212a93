// Package core provides the grid geometry shared by the path finder and the
// tile mapper. It contains no external dependencies (especially no Bubble Tea)
// to keep the route logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrNotAdjacent is returned when two points are not axis-aligned,
// unit-distance neighbors on the grid.
var ErrNotAdjacent = errors.New("core: points are not adjacent")

// Point is a cell coordinate on the grid. Points compare by value and can be
// used as map keys.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the point one step away in the given direction.
func (p Point) Add(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// GridSize describes the bounds of a rectangular grid.
type GridSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Contains reports whether the point lies inside the grid.
func (g GridSize) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Cells returns the total number of cells in the grid.
func (g GridSize) Cells() int {
	return g.Rows * g.Cols
}

// Direction is one of the four axis-aligned movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions returns all four directions in canonical enumeration order:
// Up, Right, Down, Left. Neighbor iteration follows this order, and the
// search heuristic's stable sort preserves it on ties, so the order is part
// of the reproducibility contract.
func Directions() [4]Direction {
	return [4]Direction{DirUp, DirRight, DirDown, DirLeft}
}

// Delta returns the (row, col) step for the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the inverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// String returns the lowercase wire name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the direction as its wire name ("up", "down", ...).
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// DirectionBetween returns the direction of travel from one point to an
// adjacent point. Non-adjacent pairs return ErrNotAdjacent; callers feeding
// externally supplied paths must treat that as a contract violation.
func DirectionBetween(from, to Point) (Direction, error) {
	dr := to.Row - from.Row
	dc := to.Col - from.Col

	switch {
	case dr == -1 && dc == 0:
		return DirUp, nil
	case dr == 1 && dc == 0:
		return DirDown, nil
	case dr == 0 && dc == -1:
		return DirLeft, nil
	case dr == 0 && dc == 1:
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: from (%d,%d) to (%d,%d)", ErrNotAdjacent, from.Row, from.Col, to.Row, to.Col)
}

// CellParity returns the checkerboard parity (0 or 1) of a cell. On a grid
// with an even total cell count, a Hamiltonian path can only exist between
// cells of opposite parity; callers use this to pre-screen endpoints.
func CellParity(row, col int) int {
	p := (row + col) % 2
	if p < 0 {
		p += 2
	}
	return p
}

// HasDifferentParity reports whether two cells sit on opposite colors of the
// checkerboard.
func HasDifferentParity(r1, c1, r2, c2 int) bool {
	return CellParity(r1, c1) != CellParity(r2, c2)
}
