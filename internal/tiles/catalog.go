// Package tiles defines the fixed catalog of two-lane road tile shapes.
// Each tile connects exactly two of its four edges, and each connecting edge
// carries one of two lane pairings (port sets). The catalog is built once at
// package init and is read-only shared data; its order is observable, because
// the mapper picks the first tile that satisfies its constraints.
package tiles

import "github.com/vovakirdan/roadgrid/internal/core"

// PortSet identifies which pair of the three lane slots is active on a tile
// edge. Two tiles connect seamlessly only when the touching edges offer the
// same port set.
type PortSet int

const (
	Port12 PortSet = iota // lane slots 1 and 2
	Port23                // lane slots 2 and 3
)

// String returns the wire name of the port set ("12" or "23").
func (p PortSet) String() string {
	if p == Port12 {
		return "12"
	}
	return "23"
}

// MarshalJSON encodes the port set as its wire name.
func (p PortSet) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// Variant is the shape class of a tile.
type Variant int

const (
	VariantCurve Variant = iota
	VariantSharp
	VariantStraight
)

func (v Variant) String() string {
	switch v {
	case VariantCurve:
		return "curve"
	case VariantSharp:
		return "sharp"
	case VariantStraight:
		return "straight"
	default:
		return "unknown"
	}
}

// Edge describes one connecting edge of a tile.
type Edge struct {
	Dir   core.Direction
	Ports PortSet
}

// Definition is an immutable catalog entry. Mask mirrors the identifier byte
// of the original tile art set and is kept for provenance and debugging.
type Definition struct {
	ID      string
	Variant Variant
	Mask    uint8
	Conn1   Edge
	Conn2   Edge
}

// PortsFor returns the port set the tile offers on the given edge, if any.
func (d Definition) PortsFor(dir core.Direction) (PortSet, bool) {
	if d.Conn1.Dir == dir {
		return d.Conn1.Ports, true
	}
	if d.Conn2.Dir == dir {
		return d.Conn2.Ports, true
	}
	return 0, false
}

// HasDirection reports whether the tile connects on the given edge.
func (d Definition) HasDirection(dir core.Direction) bool {
	return d.Conn1.Dir == dir || d.Conn2.Dir == dir
}

// catalog holds all 40 tile definitions: every combination of the two port
// sets on each connecting edge, for 8 curve orientations, 8 sharp
// orientations, and 2 straight orientations.
var catalog = buildCatalog()

// Catalog returns the shared tile table. Callers must treat it as read-only.
func Catalog() []Definition {
	return catalog
}

// Matching returns every tile offering the given port set toward entryFrom
// and the given port set toward exit, in catalog order.
func Matching(entryFrom core.Direction, entryPorts PortSet, exit core.Direction, exitPorts PortSet) []Definition {
	var out []Definition
	for _, t := range catalog {
		ep, ok1 := t.PortsFor(entryFrom)
		xp, ok2 := t.PortsFor(exit)
		if ok1 && ok2 && ep == entryPorts && xp == exitPorts {
			out = append(out, t)
		}
	}
	return out
}

func buildCatalog() []Definition {
	return []Definition{
		// Curve tiles (16)
		{ID: "curve-05", Variant: VariantCurve, Mask: 0x05, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirRight, Port12}},
		{ID: "curve-06", Variant: VariantCurve, Mask: 0x06, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirRight, Port12}},
		{ID: "curve-09", Variant: VariantCurve, Mask: 0x09, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirRight, Port23}},
		{ID: "curve-0A", Variant: VariantCurve, Mask: 0x0A, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirRight, Port23}},
		{ID: "curve-14", Variant: VariantCurve, Mask: 0x14, Conn1: Edge{core.DirRight, Port12}, Conn2: Edge{core.DirDown, Port12}},
		{ID: "curve-18", Variant: VariantCurve, Mask: 0x18, Conn1: Edge{core.DirRight, Port23}, Conn2: Edge{core.DirDown, Port12}},
		{ID: "curve-24", Variant: VariantCurve, Mask: 0x24, Conn1: Edge{core.DirRight, Port12}, Conn2: Edge{core.DirDown, Port23}},
		{ID: "curve-28", Variant: VariantCurve, Mask: 0x28, Conn1: Edge{core.DirRight, Port23}, Conn2: Edge{core.DirDown, Port23}},
		{ID: "curve-41", Variant: VariantCurve, Mask: 0x41, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirLeft, Port12}},
		{ID: "curve-42", Variant: VariantCurve, Mask: 0x42, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirLeft, Port12}},
		{ID: "curve-50", Variant: VariantCurve, Mask: 0x50, Conn1: Edge{core.DirDown, Port12}, Conn2: Edge{core.DirLeft, Port12}},
		{ID: "curve-60", Variant: VariantCurve, Mask: 0x60, Conn1: Edge{core.DirDown, Port23}, Conn2: Edge{core.DirLeft, Port12}},
		{ID: "curve-81", Variant: VariantCurve, Mask: 0x81, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirLeft, Port23}},
		{ID: "curve-82", Variant: VariantCurve, Mask: 0x82, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirLeft, Port23}},
		{ID: "curve-90", Variant: VariantCurve, Mask: 0x90, Conn1: Edge{core.DirDown, Port12}, Conn2: Edge{core.DirLeft, Port23}},
		{ID: "curve-A0", Variant: VariantCurve, Mask: 0xA0, Conn1: Edge{core.DirDown, Port23}, Conn2: Edge{core.DirLeft, Port23}},

		// Sharp tiles (16)
		{ID: "sharp-05", Variant: VariantSharp, Mask: 0x05, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirRight, Port12}},
		{ID: "sharp-06", Variant: VariantSharp, Mask: 0x06, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirRight, Port12}},
		{ID: "sharp-09", Variant: VariantSharp, Mask: 0x09, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirRight, Port23}},
		{ID: "sharp-0A", Variant: VariantSharp, Mask: 0x0A, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirRight, Port23}},
		{ID: "sharp-14", Variant: VariantSharp, Mask: 0x14, Conn1: Edge{core.DirRight, Port12}, Conn2: Edge{core.DirDown, Port12}},
		{ID: "sharp-18", Variant: VariantSharp, Mask: 0x18, Conn1: Edge{core.DirRight, Port23}, Conn2: Edge{core.DirDown, Port12}},
		{ID: "sharp-24", Variant: VariantSharp, Mask: 0x24, Conn1: Edge{core.DirRight, Port12}, Conn2: Edge{core.DirDown, Port23}},
		{ID: "sharp-28", Variant: VariantSharp, Mask: 0x28, Conn1: Edge{core.DirRight, Port23}, Conn2: Edge{core.DirDown, Port23}},
		{ID: "sharp-41", Variant: VariantSharp, Mask: 0x41, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirLeft, Port12}},
		{ID: "sharp-42", Variant: VariantSharp, Mask: 0x42, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirLeft, Port12}},
		{ID: "sharp-50", Variant: VariantSharp, Mask: 0x50, Conn1: Edge{core.DirDown, Port12}, Conn2: Edge{core.DirLeft, Port12}},
		{ID: "sharp-60", Variant: VariantSharp, Mask: 0x60, Conn1: Edge{core.DirDown, Port23}, Conn2: Edge{core.DirLeft, Port12}},
		{ID: "sharp-81", Variant: VariantSharp, Mask: 0x81, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirLeft, Port23}},
		{ID: "sharp-82", Variant: VariantSharp, Mask: 0x82, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirLeft, Port23}},
		{ID: "sharp-90", Variant: VariantSharp, Mask: 0x90, Conn1: Edge{core.DirDown, Port12}, Conn2: Edge{core.DirLeft, Port23}},
		{ID: "sharp-A0", Variant: VariantSharp, Mask: 0xA0, Conn1: Edge{core.DirDown, Port23}, Conn2: Edge{core.DirLeft, Port23}},

		// Straight tiles - vertical (4)
		{ID: "straight-v-11", Variant: VariantStraight, Mask: 0x11, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirDown, Port12}},
		{ID: "straight-v-12", Variant: VariantStraight, Mask: 0x12, Conn1: Edge{core.DirUp, Port12}, Conn2: Edge{core.DirDown, Port23}},
		{ID: "straight-v-21", Variant: VariantStraight, Mask: 0x21, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirDown, Port12}},
		{ID: "straight-v-22", Variant: VariantStraight, Mask: 0x22, Conn1: Edge{core.DirUp, Port23}, Conn2: Edge{core.DirDown, Port23}},
		// Straight tiles - horizontal (4)
		{ID: "straight-h-44", Variant: VariantStraight, Mask: 0x44, Conn1: Edge{core.DirLeft, Port12}, Conn2: Edge{core.DirRight, Port12}},
		{ID: "straight-h-48", Variant: VariantStraight, Mask: 0x48, Conn1: Edge{core.DirLeft, Port12}, Conn2: Edge{core.DirRight, Port23}},
		{ID: "straight-h-84", Variant: VariantStraight, Mask: 0x84, Conn1: Edge{core.DirLeft, Port23}, Conn2: Edge{core.DirRight, Port12}},
		{ID: "straight-h-88", Variant: VariantStraight, Mask: 0x88, Conn1: Edge{core.DirLeft, Port23}, Conn2: Edge{core.DirRight, Port23}},
	}
}
