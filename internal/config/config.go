// Package config provides YAML-based simulation configuration loading for
// the life workbench.
package config

// SimConfig contains the default simulation parameters used when flags do
// not override them.
type SimConfig struct {
	Grid     GridConfig `yaml:"grid"`
	Pattern  string     `yaml:"pattern"`
	Toroidal bool       `yaml:"toroidal"`
	TickRate int        `yaml:"tick_rate"`
}

// GridConfig defines the board the initial pattern is centred on.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Normalize clamps nonsense values back to usable defaults.
func (c *SimConfig) Normalize() {
	def := DefaultSimConfig()
	if c.Grid.Width <= 0 {
		c.Grid.Width = def.Grid.Width
	}
	if c.Grid.Height <= 0 {
		c.Grid.Height = def.Grid.Height
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Pattern == "" {
		c.Pattern = def.Pattern
	}
}
