package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the roadgrid configuration.
// Search order: customPath -> ~/.roadgrid/config.yaml -> ./roadgrid.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the fallback
// locations are tried silently.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("roadgrid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadgrid", "config.yaml")
}

// normalize fills zero values left by a partial config file with defaults.
func normalize(cfg Config) Config {
	def := Default()
	if cfg.Solver.MaxIterations <= 0 {
		cfg.Solver.MaxIterations = def.Solver.MaxIterations
	}
	if cfg.Grid.Rows <= 0 {
		cfg.Grid.Rows = def.Grid.Rows
	}
	if cfg.Grid.Cols <= 0 {
		cfg.Grid.Cols = def.Grid.Cols
	}
	return cfg
}
