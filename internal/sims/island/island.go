package island

import (
	"time"

	"watershed/internal/core"
	"watershed/internal/heightmap"
	"watershed/internal/hydro"
	"watershed/internal/render"
)

// Layer selects which grid of a pipeline run is displayed.
type Layer int

const (
	LayerHeightmap Layer = iota
	LayerRivers
	LayerLakes
	LayerTerrain
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerHeightmap:
		return "heightmap"
	case LayerRivers:
		return "rivers"
	case LayerLakes:
		return "lakes"
	case LayerTerrain:
		return "terrain"
	}
	return "unknown"
}

// Timing records how long one pipeline stage took.
type Timing struct {
	Stage   string
	Elapsed time.Duration
}

// World generates an island, runs the hydrology pipeline on it and exposes one
// layer at a time as display cells. Step advances to the next layer.
type World struct {
	cfg     Config
	hm      *core.Grid
	res     *hydro.Result
	err     error
	timings []Timing

	layer   Layer
	display []uint8
}

// New returns a world of the given size with default settings.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Map.Width = w
	cfg.Map.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world for cfg. Nothing is generated until Reset.
func NewWithConfig(cfg Config) *World {
	if cfg.Map.Width <= 0 {
		cfg.Map.Width = 1
	}
	if cfg.Map.Height <= 0 {
		cfg.Map.Height = 1
	}
	return &World{
		cfg:     cfg,
		display: make([]uint8, cfg.Map.Width*cfg.Map.Height),
	}
}

func (w *World) Name() string { return "island" }

func (w *World) Size() core.Size { return core.Size{W: w.cfg.Map.Width, H: w.cfg.Map.Height} }

// Cells returns the current layer quantized to 0..255.
func (w *World) Cells() []uint8 { return w.display }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Result returns the latest pipeline output, nil if the last run failed.
func (w *World) Result() *hydro.Result { return w.res }

// Err reports why the last generation or pipeline run failed.
func (w *World) Err() error { return w.err }

// Timings returns the stage durations of the latest pipeline run.
func (w *World) Timings() []Timing { return w.timings }

// Layer returns the displayed layer.
func (w *World) Layer() Layer { return w.layer }

// SetLayer switches the displayed layer.
func (w *World) SetLayer(l Layer) {
	if l < 0 || l >= layerCount {
		return
	}
	w.layer = l
	w.refresh()
}

// Reset generates a new heightmap from seed and runs the pipeline on it.
func (w *World) Reset(seed int64) {
	w.cfg.Map.Seed = seed
	w.hm, w.err = heightmap.Generate(w.cfg.Map)
	if w.err != nil {
		w.res = nil
		w.refresh()
		return
	}
	w.run()
}

// Step advances to the next layer.
func (w *World) Step() {
	w.layer = (w.layer + 1) % layerCount
	w.refresh()
}

// Grid returns the grid behind l, or nil when nothing has been generated.
func (w *World) Grid(l Layer) *core.Grid {
	if w.res == nil {
		return nil
	}
	switch l {
	case LayerHeightmap:
		return w.res.Heightmap
	case LayerRivers:
		return w.res.Flow.Rivers
	case LayerLakes:
		return w.res.Lakes
	case LayerTerrain:
		return w.res.Terrain
	}
	return nil
}

func (w *World) run() {
	w.timings = w.timings[:0]
	p := &hydro.Pipeline{
		Config: w.cfg.Hydro,
		Observe: func(stage string, elapsed time.Duration) {
			w.timings = append(w.timings, Timing{Stage: stage, Elapsed: elapsed})
		},
	}
	w.res, w.err = p.Run(w.hm)
	w.refresh()
}

// rerun reruns the pipeline on the current heightmap with next, keeping the
// previous settings when next does not validate.
func (w *World) rerun(next hydro.Config) bool {
	if w.hm == nil {
		if next.Validate(w.cfg.Map.Width, w.cfg.Map.Height) != nil {
			return false
		}
		w.cfg.Hydro = next
		return true
	}
	if next.Validate(w.hm.W, w.hm.H) != nil {
		return false
	}
	w.cfg.Hydro = next
	w.run()
	return true
}

func (w *World) refresh() {
	g := w.Grid(w.layer)
	if g == nil {
		for i := range w.display {
			w.display[i] = 0
		}
		return
	}
	render.QuantizeInto(w.display, g)
}

func init() {
	core.Register("island", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
