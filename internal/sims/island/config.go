package island

import (
	"flag"

	"watershed/internal/heightmap"
	"watershed/internal/hydro"
)

// Config combines the heightmap generator and pipeline settings.
type Config struct {
	Map   heightmap.Config
	Hydro hydro.Config
}

// DefaultConfig returns a 256x256 island with the default pipeline.
func DefaultConfig() Config {
	m := heightmap.DefaultConfig()
	m.Width = 256
	m.Height = 256
	return Config{Map: m, Hydro: hydro.DefaultConfig()}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Keys of both packages share one namespace.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	m := heightmap.FromMap(cfg)
	if _, ok := cfg["width"]; !ok {
		m.Width = c.Map.Width
	}
	if _, ok := cfg["height"]; !ok {
		m.Height = c.Map.Height
	}
	c.Map = m
	c.Hydro = hydro.FromMap(cfg)
	return c
}

// Bind attaches both configurations to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Map.Bind(fs)
	c.Hydro.Bind(fs)
}
