package hydro

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"runtime"
	"strconv"

	"go.uber.org/multierr"
)

// ErrInvalidRadius is returned when the flow search radius does not fit the grid.
var ErrInvalidRadius = errors.New("invalid search radius")

// Depth policy names accepted by FromMap and the command line.
const (
	DepthRim   = "rim"
	DepthGamma = "gamma"
)

// Config holds every tunable consumed by the hydrology pipeline.
type Config struct {
	// Radius bounds the flow target search disc and the permanent-water
	// border band.
	Radius int
	// OceanLevel marks every cell below it as permanent water.
	OceanLevel float64
	// VolumeThreshold is the accumulated volume a sink needs to seed a lake.
	VolumeThreshold float64
	// MinArea discards lake regions with this many cells or fewer.
	MinArea int
	// Depth selects the lake surface policy, DepthRim or DepthGamma.
	Depth      string
	DepthGamma float64
	// RiverGamma is applied to the rasterized river grid before terrain
	// synthesis; 1 leaves it unchanged.
	RiverGamma float64
	Slope      Slope
	// Workers bounds the goroutines used by flow resolution.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Radius:          6,
		OceanLevel:      20,
		VolumeThreshold: 100,
		MinArea:         10,
		Depth:           DepthRim,
		DepthGamma:      0.8,
		RiverGamma:      0.45,
		Slope:           DefaultSlope(),
		Workers:         runtime.NumCPU(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["ocean"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.OceanLevel = parsed
		}
	}
	if v, ok := cfg["volume_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.VolumeThreshold = parsed
		}
	}
	if v, ok := cfg["min_area"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MinArea = parsed
		}
	}
	if v, ok := cfg["depth"]; ok && (v == DepthRim || v == DepthGamma) {
		c.Depth = v
	}
	if v, ok := cfg["depth_gamma"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.DepthGamma = parsed
		}
	}
	if v, ok := cfg["river_gamma"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.RiverGamma = parsed
		}
	}
	if v, ok := cfg["slope_base"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Slope.Base = parsed
		}
	}
	if v, ok := cfg["slope_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Slope.Scale = parsed
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
	fs.IntVar(&c.Radius, "radius", c.Radius, "flow target search radius")
	fs.Float64Var(&c.OceanLevel, "ocean", c.OceanLevel, "elevation below which cells are ocean")
	fs.Float64Var(&c.VolumeThreshold, "volume-threshold", c.VolumeThreshold, "accumulated volume a sink needs to seed a lake")
	fs.IntVar(&c.MinArea, "min-area", c.MinArea, "lake regions with this many cells or fewer are dropped")
	fs.StringVar(&c.Depth, "depth", c.Depth, "lake depth policy (rim, gamma)")
	fs.Float64Var(&c.DepthGamma, "depth-gamma", c.DepthGamma, "exponent of the gamma depth policy")
	fs.Float64Var(&c.RiverGamma, "river-gamma", c.RiverGamma, "exponent applied to river volume before terrain synthesis")
	fs.Float64Var(&c.Slope.Base, "slope-base", c.Slope.Base, "valley slope law base term")
	fs.Float64Var(&c.Slope.Scale, "slope-scale", c.Slope.Scale, "valley slope law scale")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used for flow resolution")
}

// Validate reports every setting that cannot be used on a w*h heightmap.
func (c Config) Validate(w, h int) error {
	var err error
	err = multierr.Append(err, checkRadius(c.Radius, w, h))
	if c.MinArea < 0 {
		err = multierr.Append(err, fmt.Errorf("min area %d is negative", c.MinArea))
	}
	if c.VolumeThreshold < 0 || math.IsNaN(c.VolumeThreshold) {
		err = multierr.Append(err, fmt.Errorf("volume threshold %v is negative", c.VolumeThreshold))
	}
	switch c.Depth {
	case DepthRim:
	case DepthGamma:
		if c.DepthGamma <= 0 {
			err = multierr.Append(err, fmt.Errorf("depth gamma %v must be positive", c.DepthGamma))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown depth policy %q", c.Depth))
	}
	if c.RiverGamma <= 0 {
		err = multierr.Append(err, fmt.Errorf("river gamma %v must be positive", c.RiverGamma))
	}
	if c.Slope.Base <= 0 || c.Slope.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("slope law %+v must have positive terms", c.Slope))
	}
	return err
}

// DepthPolicy returns the lake surface policy selected by the config.
func (c Config) DepthPolicy() DepthPolicy {
	if c.Depth == DepthGamma {
		return GammaDepth{Gamma: c.DepthGamma}
	}
	return RimFill{}
}

// LakeParams extracts the lake detector settings.
func (c Config) LakeParams() LakeParams {
	return LakeParams{
		OceanLevel:      c.OceanLevel,
		Radius:          c.Radius,
		VolumeThreshold: c.VolumeThreshold,
		MinArea:         c.MinArea,
		Depth:           c.DepthPolicy(),
	}
}

func checkRadius(radius, w, h int) error {
	if radius < 1 || radius >= w || radius >= h {
		return fmt.Errorf("%w: radius %d on %dx%d grid", ErrInvalidRadius, radius, w, h)
	}
	return nil
}
