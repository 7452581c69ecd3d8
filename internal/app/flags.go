package app

import (
	"flag"

	"lifegrid/internal/config"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	HUD     int
	Grid    bool
	Config  string
	Pattern string
	Edge    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 30, Seed: 42, HUD: 220, Edge: "toroidal"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the parameter panel in pixels (0 hides it)")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "start with grid lines shown")
	fs.StringVar(&c.Config, "config", c.Config, "TOML or YAML settings file")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "zoo pattern to start from instead of a random soup")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge policy: bounded or toroidal")
}

// SimConfig merges an optional settings file with the flags. Flags that were
// set explicitly on fs win over the file.
func (c *Config) SimConfig(fs *flag.FlagSet) (map[string]string, error) {
	settings := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if c.Config == "" || set["edge"] {
		settings.Edge = c.Edge
	}
	if c.Config == "" || set["pattern"] {
		settings.Pattern = c.Pattern
	}
	if c.Config != "" && !set["seed"] {
		c.Seed = settings.Seed
	}
	if c.Config != "" && !set["scale"] {
		c.Scale = settings.Scale
	}
	if c.Config != "" && !set["tps"] && settings.TPS > 0 {
		c.TPS = settings.TPS
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings.SimConfig(), nil
}
