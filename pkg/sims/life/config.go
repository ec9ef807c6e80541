package life

import "strconv"

// Config controls the grid dimensions and the density used by Reset.
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the standard 50x50 configuration.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 50, Density: 0.3}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Density = clampDensity(parsed)
		}
	}
	return c
}

func clampDensity(d float64) float64 {
	switch {
	case d != d:
		return 0
	case d < 0:
		return 0
	case d > 1:
		return 1
	}
	return d
}
