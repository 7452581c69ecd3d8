package life

import "strconv"

// Config controls the Life simulation registered with the sim registry.
type Config struct {
	Width    int
	Height   int
	Toroidal bool
	// Density is the chance of a cell starting alive on a random reset.
	Density float64
	// Pattern names a zoo pattern placed in the centre on reset. When empty
	// the board is filled randomly.
	Pattern string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Toroidal: true, Density: 0.5}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["toroidal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Toroidal = parsed
		}
	}
	if v, ok := cfg["edge"]; ok {
		if parsed, err := ParseEdge(v); err == nil {
			c.Toroidal = parsed == Toroidal
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c
}
