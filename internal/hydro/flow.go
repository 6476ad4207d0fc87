package hydro

import (
	"watershed/internal/core"

	"golang.org/x/sync/errgroup"
)

// ChunkWidth is the column span resolved by one goroutine. It is fixed so
// results do not depend on the worker count.
const ChunkWidth = 64

// Targets stores the flow target of every cell: the lowest cell within the
// search disc, or the cell itself when nothing in reach is strictly lower.
type Targets struct {
	W, H  int
	cells []core.Coord
}

func newTargets(w, h int) *Targets {
	return &Targets{W: w, H: h, cells: make([]core.Coord, w*h)}
}

// At returns the target of (x, y).
func (t *Targets) At(x, y int) core.Coord { return t.cells[y*t.W+x] }

// IsSink reports whether (x, y) drains into itself.
func (t *Targets) IsSink(x, y int) bool {
	c := t.cells[y*t.W+x]
	return c.X == x && c.Y == y
}

// Sinks lists all sinks in row-major order.
func (t *Targets) Sinks() []core.Coord {
	var sinks []core.Coord
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if t.IsSink(x, y) {
				sinks = append(sinks, core.Coord{X: x, Y: y})
			}
		}
	}
	return sinks
}

// disc holds the relative offsets of a search disc, plus the three residual
// sets left over when the left neighbour's disc, the upper neighbour's disc
// or both already cover the rest. Index with a bitmask: 1 left, 2 up.
type disc struct {
	radius int
	limit  int
	sets   [4][]core.Coord
}

func newDisc(radius int) *disc {
	d := &disc{radius: radius, limit: radius * (radius + 1)}
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if !d.contains(dx, dy) {
				continue
			}
			off := core.Coord{X: dx, Y: dy}
			notLeft := !d.contains(dx+1, dy)
			notUp := !d.contains(dx, dy+1)
			d.sets[0] = append(d.sets[0], off)
			if notLeft {
				d.sets[1] = append(d.sets[1], off)
			}
			if notUp {
				d.sets[2] = append(d.sets[2], off)
			}
			if notLeft && notUp {
				d.sets[3] = append(d.sets[3], off)
			}
		}
	}
	return d
}

// contains reports whether offset (dx, dy) lies in the disc. The bound
// r*(r+1) is the lattice disc of radius r+1/2, so radius 1 is the full
// 8-neighbourhood.
func (d *disc) contains(dx, dy int) bool {
	return dx*dx+dy*dy <= d.limit
}

// Resolve finds the flow target of every cell using a single worker. The
// search disc of radius r reaches offsets up to about r+1/2, see disc.contains.
func Resolve(hm *core.Grid, radius int) (*Targets, error) {
	return ResolveParallel(hm, radius, 1)
}

// ResolveParallel finds the flow target of every cell, resolving column
// chunks concurrently on up to workers goroutines.
func ResolveParallel(hm *core.Grid, radius, workers int) (*Targets, error) {
	if err := checkRadius(radius, hm.W, hm.H); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	t := newTargets(hm.W, hm.H)
	lows := make([]core.Coord, hm.W*hm.H)
	d := newDisc(radius)

	var g errgroup.Group
	g.SetLimit(workers)
	for x0 := 0; x0 < hm.W; x0 += ChunkWidth {
		x0, x1 := x0, min(x0+ChunkWidth, hm.W)
		g.Go(func() error {
			resolveChunk(hm, t, lows, d, x0, x1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

// BruteForce resolves every cell with a full disc scan in offset order,
// keeping a candidate only when it is strictly lower. It is the reference
// the incremental resolver is checked against.
func BruteForce(hm *core.Grid, radius int) (*Targets, error) {
	if err := checkRadius(radius, hm.W, hm.H); err != nil {
		return nil, err
	}
	t := newTargets(hm.W, hm.H)
	d := newDisc(radius)
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			best := core.Coord{X: x, Y: y}
			bestZ := hm.At(x, y)
			for _, off := range d.sets[0] {
				px, py := x+off.X, y+off.Y
				if !hm.InBounds(px, py) {
					continue
				}
				if z := hm.At(px, py); z < bestZ {
					best, bestZ = core.Coord{X: px, Y: py}, z
				}
			}
			t.cells[y*t.W+x] = best
		}
	}
	return t, nil
}

// resolveChunk resolves columns [x0, x1) row by row. The upper neighbour is
// always finished by then; the left one only once x passes x0.
//
// lows holds the lowest cell of every resolved disc under the total order
// (elevation, x, y). Offsets are scanned dx then dy, so this order breaks
// ties exactly like the offset scan, and unlike the target it is a plain
// minimum that neighbours can reuse.
func resolveChunk(hm *core.Grid, t *Targets, lows []core.Coord, d *disc, x0, x1 int) {
	r := d.radius
	for y := 0; y < hm.H; y++ {
		rowInterior := y >= r && y < hm.H-r
		for x := x0; x < x1; x++ {
			var low core.Coord
			if rowInterior && x >= r && x < hm.W-r {
				low = reuseScan(hm, lows, d, x, y, x > x0)
			} else {
				low = scan(hm, x, y, d.sets[0], true, core.Coord{X: x, Y: y})
			}
			i := y*t.W + x
			lows[i] = low
			// The cell keeps itself unless something is strictly lower.
			if hm.AtCoord(low) < hm.At(x, y) {
				t.cells[i] = low
			} else {
				t.cells[i] = core.Coord{X: x, Y: y}
			}
		}
	}
}

// reuseScan finds the lowest cell of an interior disc. A neighbour's lowest
// cell is the minimum of the neighbour's whole disc, so when it falls inside
// this cell's disc it stands in for every offset the two discs share and only
// the residual boundary needs to be read.
func reuseScan(hm *core.Grid, lows []core.Coord, d *disc, x, y int, useLeft bool) core.Coord {
	best := core.Coord{X: x, Y: y}
	mask := 0

	if useLeft {
		c := lows[y*hm.W+x-1]
		if d.contains(c.X-x, c.Y-y) {
			mask |= 1
			if lower(hm, c, best) {
				best = c
			}
		}
	}
	c := lows[(y-1)*hm.W+x]
	if d.contains(c.X-x, c.Y-y) {
		mask |= 2
		if lower(hm, c, best) {
			best = c
		}
	}

	return scan(hm, x, y, d.sets[mask], false, best)
}

func scan(hm *core.Grid, x, y int, offsets []core.Coord, clip bool, best core.Coord) core.Coord {
	for _, off := range offsets {
		p := core.Coord{X: x + off.X, Y: y + off.Y}
		if clip && !hm.InBounds(p.X, p.Y) {
			continue
		}
		if lower(hm, p, best) {
			best = p
		}
	}
	return best
}

// lower orders cells by elevation, then x, then y.
func lower(hm *core.Grid, a, b core.Coord) bool {
	za, zb := hm.AtCoord(a), hm.AtCoord(b)
	if za != zb {
		return za < zb
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
