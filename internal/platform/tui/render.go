// Package tui renders routes and tile grids in the terminal and hosts the
// interactive builder, both locally and over SSH via Wish.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roadgrid/internal/config"
	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/roadmap"
	"github.com/vovakirdan/roadgrid/internal/tiles"
)

var (
	styleStart  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleGoal   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	stylePort12 = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	stylePort23 = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleInfo   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleTitle  = lipgloss.NewStyle().Bold(true)
)

// tileGlyph maps a cell assignment to a single display rune. The glyph is
// derived from the directions the tile connects, not from the tile id, so
// curve and sharp variants of the same orientation share a glyph.
func tileGlyph(cell *roadmap.CellData, ascii bool) rune {
	switch cell.TileID {
	case roadmap.StartTileID:
		return 'S'
	case roadmap.GoalTileID:
		return 'G'
	}

	var connects [4]bool
	for _, conn := range cell.Connections {
		connects[conn.Direction] = true
	}

	up, right := connects[core.DirUp], connects[core.DirRight]
	down, left := connects[core.DirDown], connects[core.DirLeft]

	if ascii {
		switch {
		case up && down:
			return '|'
		case left && right:
			return '-'
		default:
			return '+'
		}
	}

	switch {
	case up && down:
		return '│'
	case left && right:
		return '─'
	case up && right:
		return '└'
	case right && down:
		return '┌'
	case down && left:
		return '┐'
	case up && left:
		return '┘'
	}
	return '?'
}

// cellStyle colors a cell by the lane it carries: the two port sets get
// distinct colors so lane continuity is visible at a glance.
func cellStyle(cell *roadmap.CellData) lipgloss.Style {
	switch cell.TileID {
	case roadmap.StartTileID:
		return styleStart
	case roadmap.GoalTileID:
		return styleGoal
	}
	if len(cell.Connections) > 0 && cell.Connections[0].Ports == tiles.Port12 {
		return stylePort12
	}
	return stylePort23
}

// RenderRoadGrid draws a mapped grid as styled text, one tile per cell.
// With ShowPorts enabled each cell is widened to include its port set.
func RenderRoadGrid(res roadmap.Result, cfg config.RenderConfig) string {
	var sb strings.Builder

	emptyGlyph := "·"
	if cfg.ASCII {
		emptyGlyph = "."
	}

	for r, row := range res.Grid {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteRune(' ')
			}
			if cell == nil {
				sb.WriteString(styleEmpty.Render(padCell(emptyGlyph, cfg.ShowPorts)))
				continue
			}
			text := string(tileGlyph(cell, cfg.ASCII))
			if cfg.ShowPorts {
				text += portSuffix(cell)
			}
			sb.WriteString(cellStyle(cell).Render(padCell(text, cfg.ShowPorts)))
		}
	}

	return sb.String()
}

// portSuffix returns the lane annotation for a cell, e.g. "23" for a route
// riding the outer lane through this tile.
func portSuffix(cell *roadmap.CellData) string {
	if len(cell.Connections) == 0 {
		return ""
	}
	return cell.Connections[0].Ports.String()
}

// padCell keeps column widths uniform when port annotations are shown.
func padCell(text string, showPorts bool) string {
	if !showPorts {
		return text
	}
	for len([]rune(text)) < 3 {
		text += " "
	}
	return text
}

// RenderRunSummary formats a one-line outcome for a solve.
func RenderRunSummary(found bool, iterations int, grid core.GridSize) string {
	if found {
		return styleTitle.Render("route found") +
			styleInfo.Render(fmt.Sprintf(" · %d cells · %d iterations", grid.Cells(), iterations))
	}
	return styleError.Render("no route") +
		styleInfo.Render(fmt.Sprintf(" · %d iterations spent", iterations))
}
