package config

import (
	_ "embed"
)

//go:embed defaults/roadgrid.yaml
var defaultYAML []byte
