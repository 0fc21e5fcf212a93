package tui

import "github.com/charmbracelet/bubbles/key"

// BuilderKeyMap defines the key bindings for the interactive builder.
type BuilderKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Reset  key.Binding
	Ports  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BuilderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BuilderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Reset, k.Ports, k.Quit},
	}
}

// DefaultBuilderKeyMap returns default key bindings.
func DefaultBuilderKeyMap() BuilderKeyMap {
	return BuilderKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place start/end"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Ports: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle ports"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
