// Package config provides YAML-based configuration loading for the roadgrid
// tool: solver budget, default grid dimensions, and render options.
package config

// Config is the top-level roadgrid configuration.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Grid   GridConfig   `yaml:"grid"`
	Render RenderConfig `yaml:"render"`
}

// SolverConfig tunes the Hamiltonian path search.
type SolverConfig struct {
	// MaxIterations caps the number of cells the backtracking search may
	// process before giving up. This is the only cancellation mechanism;
	// there is no wall-clock timeout.
	MaxIterations int `yaml:"max_iterations"`
}

// GridConfig sets the grid dimensions used when none are given on the
// command line.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RenderConfig controls how routes and tiles are drawn in the terminal.
type RenderConfig struct {
	// ShowPorts annotates each tile with its lane port sets.
	ShowPorts bool `yaml:"show_ports"`
	// ASCII restricts output to plain ASCII glyphs instead of box drawing.
	ASCII bool `yaml:"ascii"`
}

// Default returns the built-in configuration used when no config file is
// found anywhere in the search path.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			MaxIterations: 2_000_000,
		},
		Grid: GridConfig{
			Rows: 6,
			Cols: 6,
		},
		Render: RenderConfig{
			ShowPorts: false,
			ASCII:     false,
		},
	}
}
