package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("solver:\n  max_iterations: 500\ngrid:\n  rows: 3\n  cols: 9\nrender:\n  show_ports: true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Solver.MaxIterations != 500 {
		t.Errorf("max iterations = %d, want 500", cfg.Solver.MaxIterations)
	}
	if cfg.Grid.Rows != 3 || cfg.Grid.Cols != 9 {
		t.Errorf("grid = %dx%d, want 3x9", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if !cfg.Render.ShowPorts {
		t.Error("show_ports should be true")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  rows: 4\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg.Grid.Rows != 4 {
		t.Errorf("rows = %d, want 4", cfg.Grid.Rows)
	}
	if cfg.Grid.Cols != def.Grid.Cols {
		t.Errorf("cols = %d, want default %d", cfg.Grid.Cols, def.Grid.Cols)
	}
	if cfg.Solver.MaxIterations != def.Solver.MaxIterations {
		t.Errorf("max iterations = %d, want default %d", cfg.Solver.MaxIterations, def.Solver.MaxIterations)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if normalize(cfg) != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", normalize(cfg), Default())
	}
}
