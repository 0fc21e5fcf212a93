package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/roadgrid/internal/config"
	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/roadmap"
	"github.com/vovakirdan/roadgrid/internal/tiles"
)

func interiorCell(d1, d2 core.Direction) *roadmap.CellData {
	return &roadmap.CellData{
		TileID: "straight-h-88",
		Connections: []roadmap.Connection{
			{Direction: d1, Ports: tiles.Port23},
			{Direction: d2, Ports: tiles.Port23},
		},
	}
}

func TestTileGlyph(t *testing.T) {
	cases := []struct {
		name string
		cell *roadmap.CellData
		want rune
	}{
		{"start", &roadmap.CellData{TileID: roadmap.StartTileID}, 'S'},
		{"goal", &roadmap.CellData{TileID: roadmap.GoalTileID}, 'G'},
		{"vertical", interiorCell(core.DirUp, core.DirDown), '│'},
		{"horizontal", interiorCell(core.DirLeft, core.DirRight), '─'},
		{"up-right", interiorCell(core.DirUp, core.DirRight), '└'},
		{"right-down", interiorCell(core.DirRight, core.DirDown), '┌'},
		{"down-left", interiorCell(core.DirDown, core.DirLeft), '┐'},
		{"up-left", interiorCell(core.DirLeft, core.DirUp), '┘'},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := tileGlyph(c.cell, false); got != c.want {
				t.Errorf("tileGlyph = %q, want %q", got, c.want)
			}
		})
	}
}

func TestTileGlyphASCII(t *testing.T) {
	if got := tileGlyph(interiorCell(core.DirUp, core.DirDown), true); got != '|' {
		t.Errorf("ascii vertical glyph = %q, want '|'", got)
	}
	if got := tileGlyph(interiorCell(core.DirUp, core.DirRight), true); got != '+' {
		t.Errorf("ascii corner glyph = %q, want '+'", got)
	}
}

func TestRenderRoadGrid(t *testing.T) {
	path := []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	res, err := roadmap.MapPath(path, core.GridSize{Rows: 2, Cols: 3})
	if err != nil {
		t.Fatalf("MapPath: %v", err)
	}

	out := RenderRoadGrid(res, config.RenderConfig{ASCII: true})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "S") || !strings.Contains(lines[0], "G") {
		t.Errorf("first row should contain the start and goal markers: %q", lines[0])
	}
	if !strings.Contains(lines[0], "-") {
		t.Errorf("first row should contain a horizontal tile: %q", lines[0])
	}
	if !strings.Contains(lines[1], ".") {
		t.Errorf("untouched row should render empty markers: %q", lines[1])
	}
}

func TestRenderRoadGridShowPorts(t *testing.T) {
	path := []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	res, err := roadmap.MapPath(path, core.GridSize{Rows: 1, Cols: 3})
	if err != nil {
		t.Fatalf("MapPath: %v", err)
	}

	out := RenderRoadGrid(res, config.RenderConfig{ASCII: true, ShowPorts: true})
	if !strings.Contains(out, "23") {
		t.Errorf("port annotations missing from output: %q", out)
	}
}
