// Package pathfind searches for Hamiltonian paths on a rectangular grid
// using depth-first backtracking with a Warnsdorff-style neighbor ordering.
package pathfind

import (
	"sort"

	"github.com/vovakirdan/roadgrid/internal/core"
)

// Result is the outcome of one search. When Found is false the path is empty
// but Iterations still reflects the work performed, which is useful for
// tuning the budget.
type Result struct {
	Found      bool         `json:"found"`
	Path       []core.Point `json:"path"`
	Iterations int          `json:"iterations"`
}

// state is the working set of a single search invocation. It is never shared:
// every call to Find owns its own state, so independent searches can run on
// separate goroutines without coordination.
type state struct {
	visited       [][]bool
	path          []core.Point
	grid          core.GridSize
	iterations    int
	maxIterations int
}

// Find attempts to build an ordered sequence of points starting at start,
// ending at end, and visiting every cell of the grid exactly once, moving
// only between axis-adjacent cells. The search is deterministic: neighbors
// are visited in ascending order of their own unvisited-neighbor count, with
// ties broken by the canonical direction order.
//
// The iteration budget is the only cancellation mechanism. It is checked
// before each cell is processed, so Iterations never exceeds maxIterations.
func Find(start, end core.Point, grid core.GridSize, maxIterations int) Result {
	if grid.Rows <= 0 || grid.Cols <= 0 || !grid.Contains(start) || !grid.Contains(end) {
		return Result{Path: []core.Point{}}
	}

	visited := make([][]bool, grid.Rows)
	for r := range visited {
		visited[r] = make([]bool, grid.Cols)
	}

	s := &state{
		visited:       visited,
		path:          make([]core.Point, 0, grid.Cells()),
		grid:          grid,
		maxIterations: maxIterations,
	}

	found := s.walk(start, end)

	res := Result{Found: found, Iterations: s.iterations}
	if found {
		res.Path = s.path
	} else {
		res.Path = []core.Point{}
	}
	return res
}

// walk visits current and recurses into its neighbors. It returns true as
// soon as a complete path is found; otherwise it unmarks current and reports
// failure so the caller can try its remaining siblings.
func (s *state) walk(current, end core.Point) bool {
	if s.iterations >= s.maxIterations {
		return false
	}
	s.iterations++

	s.visit(current)

	if current == end {
		if s.allVisited() {
			return true
		}
		// Reached the end with cells left over: dead end.
		s.unvisit(current)
		return false
	}

	if s.allVisited() {
		s.unvisit(current)
		return false
	}

	for _, next := range s.orderedNeighbors(current) {
		if s.walk(next, end) {
			return true
		}
	}

	s.unvisit(current)
	return false
}

func (s *state) visit(p core.Point) {
	s.visited[p.Row][p.Col] = true
	s.path = append(s.path, p)
}

func (s *state) unvisit(p core.Point) {
	s.visited[p.Row][p.Col] = false
	s.path = s.path[:len(s.path)-1]
}

func (s *state) allVisited() bool {
	return len(s.path) == s.grid.Cells()
}

func (s *state) isFree(p core.Point) bool {
	return s.grid.Contains(p) && !s.visited[p.Row][p.Col]
}

// orderedNeighbors returns the unvisited in-bounds neighbors of p, sorted
// ascending by their own count of unvisited neighbors (Warnsdorff's rule:
// move into the most constrained region first). The sort is stable, so equal
// counts keep the Up, Right, Down, Left enumeration order.
func (s *state) orderedNeighbors(p core.Point) []core.Point {
	type candidate struct {
		point  core.Point
		degree int
	}

	candidates := make([]candidate, 0, 4)
	for _, dir := range core.Directions() {
		next := p.Add(dir)
		if s.isFree(next) {
			candidates = append(candidates, candidate{next, s.freeDegree(next)})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].degree < candidates[j].degree
	})

	out := make([]core.Point, len(candidates))
	for i, c := range candidates {
		out[i] = c.point
	}
	return out
}

// freeDegree counts the unvisited in-bounds neighbors of p.
func (s *state) freeDegree(p core.Point) int {
	n := 0
	for _, dir := range core.Directions() {
		if s.isFree(p.Add(dir)) {
			n++
		}
	}
	return n
}
