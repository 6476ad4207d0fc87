package core

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrSizeMismatch is returned when two grids of different dimensions are combined.
var ErrSizeMismatch = errors.New("grid size mismatch")

// Coord addresses a single grid cell.
type Coord struct {
	X, Y int
}

// Grid stores a 2D field of float64 values in row-major order. Heightmaps,
// river volumes, lake depths and synthesized terrain all share it.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// GridFrom wraps an existing row-major slice. The slice length must be w*h.
func GridFrom(w, h int, cells []float64) (*Grid, error) {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil, fmt.Errorf("%w: %dx%d grid from %d cells", ErrSizeMismatch, w, h, len(cells))
	}
	return &Grid{W: w, H: h, data: cells}, nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value stored at (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// AtCoord is At for a Coord.
func (g *Grid) AtCoord(c Coord) float64 { return g.data[c.Y*g.W+c.X] }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]float64(nil), g.data...)}
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Map replaces every value with f(value).
func (g *Grid) Map(f func(float64) float64) {
	for i, v := range g.data {
		g.data[i] = f(v)
	}
}

// MapCoords replaces every value with f(x, y, value).
func (g *Grid) MapCoords(f func(x, y int, v float64) float64) {
	for y := 0; y < g.H; y++ {
		row := g.data[y*g.W : (y+1)*g.W]
		for x, v := range row {
			row[x] = f(x, y, v)
		}
	}
}

// Combine replaces each value a with f(a, b) where b is the value of other at
// the same position.
func (g *Grid) Combine(other *Grid, f func(a, b float64) float64) error {
	if other.W != g.W || other.H != g.H {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, g.W, g.H, other.W, other.H)
	}
	for i, b := range other.data {
		g.data[i] = f(g.data[i], b)
	}
	return nil
}

// CombineAt combines other into the rectangle of g whose top-left corner is
// (ox, oy). Cells of other falling outside g are ignored.
func (g *Grid) CombineAt(other *Grid, f func(a, b float64) float64, ox, oy int) {
	for y := 0; y < other.H; y++ {
		gy := oy + y
		if gy < 0 || gy >= g.H {
			continue
		}
		for x := 0; x < other.W; x++ {
			gx := ox + x
			if gx < 0 || gx >= g.W {
				continue
			}
			i := gy*g.W + gx
			g.data[i] = f(g.data[i], other.data[y*other.W+x])
		}
	}
}

// MinMax returns the smallest and largest values of the grid.
func (g *Grid) MinMax() (float64, float64) {
	return floats.Min(g.data), floats.Max(g.data)
}

// Sum returns the sum of all cell values.
func (g *Grid) Sum() float64 { return floats.Sum(g.data) }
