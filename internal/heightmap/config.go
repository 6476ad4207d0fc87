package heightmap

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strconv"

	"go.uber.org/multierr"
)

// Noise backend names.
const (
	NoiseSimplex = "simplex"
	NoisePerlin  = "perlin"
)

// ErrUnknownNoise is returned for a noise backend name that is not supported.
var ErrUnknownNoise = errors.New("unknown noise backend")

// Config describes a generated island heightmap.
type Config struct {
	Width  int
	Height int
	Seed   int64
	// Noise selects the backend, NoiseSimplex or NoisePerlin.
	Noise       string
	Octaves     int
	Persistence float64
	// Scale is the base noise frequency in cycles per cell. Zero means 5.02/Width.
	Scale       float64
	EdgeScaling bool
	// ChunkSize is the side of the square tiles the map is assembled from.
	ChunkSize int
	Workers   int
}

// DefaultConfig returns the configuration of a 512x512 simplex island.
func DefaultConfig() Config {
	return Config{
		Width:       512,
		Height:      512,
		Seed:        1,
		Noise:       NoiseSimplex,
		Octaves:     4,
		Persistence: 0.3,
		EdgeScaling: true,
		ChunkSize:   64,
		Workers:     runtime.NumCPU(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise"]; ok && (v == NoiseSimplex || v == NoisePerlin) {
		c.Noise = v
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Octaves = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Persistence = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["edge_scaling"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.EdgeScaling = parsed
		}
	}
	if v, ok := cfg["chunk"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "heightmap width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "heightmap height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise backend (simplex, perlin)")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "noise octaves")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "amplitude falloff per octave")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "base noise frequency (0 derives it from the width)")
	fs.BoolVar(&c.EdgeScaling, "edge-scaling", c.EdgeScaling, "fade the map to zero towards the edges")
	fs.IntVar(&c.ChunkSize, "chunk", c.ChunkSize, "tile size used to assemble the map")
	fs.IntVar(&c.Workers, "map-workers", c.Workers, "goroutines used to generate chunks")
}

// Validate reports every unusable setting.
func (c Config) Validate() error {
	var err error
	if c.Width <= 0 || c.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Noise != NoiseSimplex && c.Noise != NoisePerlin {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrUnknownNoise, c.Noise))
	}
	if c.Octaves <= 0 {
		err = multierr.Append(err, fmt.Errorf("octaves %d must be positive", c.Octaves))
	}
	if c.Persistence <= 0 {
		err = multierr.Append(err, fmt.Errorf("persistence %v must be positive", c.Persistence))
	}
	if c.ChunkSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("chunk size %d must be positive", c.ChunkSize))
	}
	return err
}

func (c Config) frequency() float64 {
	if c.Scale > 0 {
		return c.Scale
	}
	return 5.02 / float64(c.Width)
}
