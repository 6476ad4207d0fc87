package heightmap

import (
	"math"

	"watershed/internal/core"

	"golang.org/x/sync/errgroup"
)

const edgePower = 8.5

type chunkKey struct {
	cx, cy int
}

// Generator produces island heightmaps. Chunks are cached, so asking for the
// same map twice only evaluates the noise once.
type Generator struct {
	cfg    Config
	src    Source
	chunks *core.Memo[chunkKey, *core.Grid]
}

// New validates cfg and prepares a generator for it.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := NewSource(cfg.Noise, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, src: src, chunks: core.NewMemo[chunkKey, *core.Grid]()}, nil
}

// Generate builds the heightmap described by cfg.
func Generate(cfg Config) (*core.Grid, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Heightmap()
}

// Heightmap assembles the full map from its chunks.
func (g *Generator) Heightmap() (*core.Grid, error) {
	cfg := g.cfg
	size := cfg.ChunkSize
	nx := (cfg.Width + size - 1) / size
	ny := (cfg.Height + size - 1) / size

	var eg errgroup.Group
	if cfg.Workers > 0 {
		eg.SetLimit(cfg.Workers)
	}
	for cy := 0; cy < ny; cy++ {
		for cx := 0; cx < nx; cx++ {
			key := chunkKey{cx: cx, cy: cy}
			eg.Go(func() error {
				g.chunks.Get(key, g.chunk)
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := core.NewGrid(cfg.Width, cfg.Height)
	replace := func(_, b float64) float64 { return b }
	for cy := 0; cy < ny; cy++ {
		for cx := 0; cx < nx; cx++ {
			tile := g.chunks.Get(chunkKey{cx: cx, cy: cy}, g.chunk)
			out.CombineAt(tile, replace, cx*size, cy*size)
		}
	}
	return out, nil
}

// CachedChunks reports how many chunks have been evaluated so far.
func (g *Generator) CachedChunks() int { return g.chunks.Len() }

func (g *Generator) chunk(key chunkKey) *core.Grid {
	cfg := g.cfg
	ox, oy := key.cx*cfg.ChunkSize, key.cy*cfg.ChunkSize
	w := min(cfg.ChunkSize, cfg.Width-ox)
	h := min(cfg.ChunkSize, cfg.Height-oy)
	tile := core.NewGrid(w, h)
	tile.MapCoords(func(x, y int, _ float64) float64 {
		return g.At(ox+x, oy+y)
	})
	return tile
}

// At evaluates the height of a single cell without touching the cache.
func (g *Generator) At(x, y int) float64 {
	cfg := g.cfg
	n := Octave(g.src, float64(x), float64(y), cfg.Octaves, cfg.frequency(), cfg.Persistence)
	h := (n + 1.06) * 16 * mountain(x, y, cfg.Width, cfg.Height)
	if cfg.EdgeScaling {
		h *= edge(x, y, cfg.Width, cfg.Height)
	}
	return h
}

// mountain raises the middle of the map.
func mountain(x, y, w, h int) float64 {
	s := 4.5 / float64(w)
	fx := (float64(x) - float64(w)*0.5) * s
	fy := (float64(y) - float64(h)*0.5) * s
	return 6 / (fx*fx + fy*fy + 1)
}

// edge fades from 1 in the interior to 0 at the map border along a
// superellipse, so the island is surrounded by water.
func edge(x, y, w, h int) float64 {
	dx := math.Abs(float64(x) - float64(w)/2)
	dy := math.Abs(float64(y) - float64(h)/2)
	dist := math.Pow(dx, edgePower) + math.Pow(dy, edgePower)
	midp := math.Pow(0.5*float64(min(w, h)), edgePower)

	fade0 := midp
	fade1 := math.Pow(0.8, edgePower) * midp
	v := (dist - fade0) / (fade1 - fade0)
	v = math.Max(0, math.Min(1, v))
	return (math.Sin((v-0.5)*math.Pi) + 1) * 0.5
}
