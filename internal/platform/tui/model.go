package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roadgrid/internal/config"
	"github.com/vovakirdan/roadgrid/internal/core"
	"github.com/vovakirdan/roadgrid/internal/pathfind"
	"github.com/vovakirdan/roadgrid/internal/roadmap"
	"github.com/vovakirdan/roadgrid/internal/storage"
)

// phase tracks where the builder session is in its flow.
type phase int

const (
	phasePickStart phase = iota
	phasePickEnd
	phaseSolving
	phaseDone
)

var (
	styleCursor   = lipgloss.NewStyle().Reverse(true)
	styleSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleFree     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleWarn     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// solveDoneMsg carries the search outcome back into the update loop.
type solveDoneMsg struct {
	search   pathfind.Result
	road     roadmap.Result
	duration time.Duration
}

// BuilderModel is the Bubble Tea model for the interactive route builder.
// The user places a start and an end cell on the grid; the model runs the
// solver off the update loop and displays the resulting tile assignments.
type BuilderModel struct {
	cfg     config.Config
	store   *storage.Store
	grid    core.GridSize
	cursor  core.Point
	start   core.Point
	end     core.Point
	phase   phase
	search  pathfind.Result
	road    roadmap.Result
	spin    spinner.Model
	keys    BuilderKeyMap
	help    help.Model
	width   int
	height  int
	elapsed time.Duration
	saved   bool
	quit    bool
}

// NewBuilderModel creates a builder for the given grid dimensions.
// The store may be nil; runs are then simply not recorded.
func NewBuilderModel(cfg config.Config, store *storage.Store, width, height int) BuilderModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return BuilderModel{
		cfg:    cfg,
		store:  store,
		grid:   core.GridSize{Rows: cfg.Grid.Rows, Cols: cfg.Grid.Cols},
		keys:   DefaultBuilderKeyMap(),
		help:   help.New(),
		spin:   sp,
		width:  width,
		height: height,
	}
}

// Init implements tea.Model.
func (m BuilderModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseSolving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case solveDoneMsg:
		m.phase = phaseDone
		m.search = msg.search
		m.road = msg.road
		m.elapsed = msg.duration
		m.saveRun()
		return m, nil
	}

	return m, nil
}

func (m BuilderModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.phase = phasePickStart
		m.search = pathfind.Result{}
		m.road = roadmap.Result{}
		m.saved = false
		return m, nil

	case key.Matches(msg, m.keys.Ports):
		m.cfg.Render.ShowPorts = !m.cfg.Render.ShowPorts
		return m, nil
	}

	if m.phase == phaseSolving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(core.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(core.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(core.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(core.DirRight)
	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()
	}

	return m, nil
}

func (m *BuilderModel) moveCursor(d core.Direction) {
	next := m.cursor.Add(d)
	if m.grid.Contains(next) {
		m.cursor = next
	}
}

func (m BuilderModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePickStart:
		m.start = m.cursor
		m.phase = phasePickEnd
		return m, nil

	case phasePickEnd:
		if m.cursor == m.start {
			return m, nil
		}
		m.end = m.cursor
		m.phase = phaseSolving
		return m, tea.Batch(m.spin.Tick, solveCmd(m.start, m.end, m.grid, m.cfg.Solver.MaxIterations))
	}
	return m, nil
}

// solveCmd runs the search and the tile mapping off the update loop.
func solveCmd(start, end core.Point, grid core.GridSize, maxIterations int) tea.Cmd {
	return func() tea.Msg {
		began := time.Now()
		search := pathfind.Find(start, end, grid, maxIterations)

		var road roadmap.Result
		if search.Found {
			// The finder only emits well-formed paths, so the mapping
			// cannot return a malformed-path error here.
			road, _ = roadmap.MapPath(search.Path, grid)
		}

		return solveDoneMsg{search: search, road: road, duration: time.Since(began)}
	}
}

// saveRun records the finished search once per solve.
func (m *BuilderModel) saveRun() {
	if m.store == nil || m.saved {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveRun(storage.RunEntry{
		Grid:          m.grid,
		Start:         m.start,
		End:           m.end,
		Found:         m.search.Found,
		Iterations:    m.search.Iterations,
		MaxIterations: m.cfg.Solver.MaxIterations,
		DurationMS:    m.elapsed.Milliseconds(),
	})
	m.saved = true
}

// View implements tea.Model.
func (m BuilderModel) View() string {
	if m.quit {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styleTitle.Render(fmt.Sprintf("roadgrid builder — %dx%d", m.grid.Rows, m.grid.Cols)))
	sb.WriteString("\n\n")

	switch m.phase {
	case phaseDone:
		sb.WriteString(m.viewResult())
	default:
		sb.WriteString(m.viewPicker())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// viewPicker draws the bare grid with the cursor and any placed endpoints.
func (m BuilderModel) viewPicker() string {
	var sb strings.Builder
	for r := 0; r < m.grid.Rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < m.grid.Cols; c++ {
			if c > 0 {
				sb.WriteRune(' ')
			}
			p := core.Point{Row: r, Col: c}
			cell := "·"
			style := styleFree
			if m.phase != phasePickStart && p == m.start {
				cell = "S"
				style = styleSelected
			}
			if p == m.cursor && m.phase != phaseSolving {
				style = styleCursor
			}
			sb.WriteString(style.Render(cell))
		}
	}
	return sb.String()
}

// viewResult draws the solved tile grid, or the failure notice.
func (m BuilderModel) viewResult() string {
	if !m.search.Found {
		parityHint := ""
		if m.grid.Cells()%2 == 0 && !core.HasDifferentParity(m.start.Row, m.start.Col, m.end.Row, m.end.Col) {
			parityHint = "\n" + styleWarn.Render("start and end share parity on an even grid; no route can exist")
		}
		return RenderRunSummary(false, m.search.Iterations, m.grid) + parityHint
	}
	return RenderRoadGrid(m.road, m.cfg.Render) + "\n\n" +
		RenderRunSummary(true, m.search.Iterations, m.grid) +
		styleInfo.Render(fmt.Sprintf(" · %s", m.elapsed.Round(time.Millisecond)))
}

func (m BuilderModel) statusLine() string {
	switch m.phase {
	case phasePickStart:
		return styleInfo.Render("place the start cell")
	case phasePickEnd:
		return styleInfo.Render("place the end cell")
	case phaseSolving:
		return m.spin.View() + styleInfo.Render(" searching...")
	default:
		return styleInfo.Render("press r to start over")
	}
}

// Run starts the local builder in the current terminal.
func Run(cfg config.Config, store *storage.Store, width, height int) error {
	model := NewBuilderModel(cfg, store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
