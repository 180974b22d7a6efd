package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultSimConfig returns the hardcoded default simulation parameters.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Grid: GridConfig{
			Width:  40,
			Height: 24,
		},
		Pattern:  "glider",
		Toroidal: false,
		TickRate: 10,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
