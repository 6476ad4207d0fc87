package hydro

import (
	"fmt"
	"math"

	"watershed/internal/core"
)

const (
	dry        = 0.0
	water      = 1.0
	inProgress = -1.0

	// minLakeValue keeps lake cells positive when a depth policy yields 0,
	// e.g. GammaDepth at the rim.
	minLakeValue = 1e-6
)

// LakeParams configures DetectLakes.
type LakeParams struct {
	OceanLevel      float64
	Radius          int
	VolumeThreshold float64
	MinArea         int
	Depth           DepthPolicy
}

// Region summarizes a 4-connected set of lake cells.
type Region struct {
	Area     int
	Min, Max float64
	// Seed is the first cell of the region in row-major order.
	Seed core.Coord
}

// DetectLakes floods basins around high-volume sinks and returns the lake
// grid: 0 for dry land, a positive depth value for water.
//
// Cells below the ocean level or within radius of the border are water from
// the start. Each origin is flooded lowest cell first; the flood is committed
// only if it reaches existing water, otherwise it is rolled back. Connected
// regions no larger than MinArea are then dropped and the rest receive their
// value from the depth policy.
func DetectLakes(hm, volume *core.Grid, t *Targets, p LakeParams) (*core.Grid, error) {
	if volume.W != hm.W || volume.H != hm.H || t.W != hm.W || t.H != hm.H {
		return nil, fmt.Errorf("%w: lake inputs do not match %dx%d heightmap", core.ErrSizeMismatch, hm.W, hm.H)
	}
	if err := checkRadius(p.Radius, hm.W, hm.H); err != nil {
		return nil, err
	}
	if p.Depth == nil {
		p.Depth = RimFill{}
	}

	w, h, r := hm.W, hm.H, p.Radius
	atBorder := func(x, y int) bool {
		return x < r || x >= w-r || y < r || y >= h-r
	}

	lakes := core.NewGrid(w, h)
	lk := lakes.Cells()
	var origins []core.Coord
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case hm.At(x, y) < p.OceanLevel || atBorder(x, y):
				lk[y*w+x] = water
			case t.IsSink(x, y) && volume.At(x, y) > p.VolumeThreshold:
				origins = append(origins, core.Coord{X: x, Y: y})
			}
		}
	}

	queue := NewPointQueue(256)
	var points []int
	for _, origin := range origins {
		queue.Reset()
		points = points[:0]

		enqueue := func(x, y int) bool {
			i := y*w + x
			if lk[i] == dry {
				queue.Push(Point{X: x, Y: y, Z: hm.At(x, y)})
				lk[i] = inProgress
				points = append(points, i)
			}
			return lk[i] > 0
		}

		if enqueue(origin.X, origin.Y) {
			continue
		}

		reached := false
		for !reached {
			cur, ok := queue.Pop()
			if !ok {
				break
			}
			candidates := [5]core.Coord{
				{X: cur.X - 1, Y: cur.Y},
				{X: cur.X + 1, Y: cur.Y},
				{X: cur.X, Y: cur.Y - 1},
				{X: cur.X, Y: cur.Y + 1},
				t.At(cur.X, cur.Y),
			}
			for _, c := range candidates {
				if !hm.InBounds(c.X, c.Y) {
					continue
				}
				if enqueue(c.X, c.Y) {
					reached = true
					break
				}
			}
		}

		value := dry
		if reached {
			value = water
		}
		for _, i := range points {
			lk[i] = value
		}
	}

	labels, regions := label(hm, lakes, p.OceanLevel)
	for i, l := range labels {
		if l == 0 {
			lk[i] = dry
			continue
		}
		region := regions[l]
		if region.Area <= p.MinArea {
			lk[i] = dry
			continue
		}
		lk[i] = math.Max(p.Depth.Depth(hm.Cells()[i], region), minLakeValue)
	}
	return lakes, nil
}

// LakeRegions labels the water of a finished lake grid and returns one
// Region per connected component, in row-major order of first appearance.
func LakeRegions(hm, lakes *core.Grid) ([]Region, error) {
	if lakes.W != hm.W || lakes.H != hm.H {
		return nil, fmt.Errorf("%w: lakes %dx%d for heightmap %dx%d", core.ErrSizeMismatch, lakes.W, lakes.H, hm.W, hm.H)
	}
	_, regions := label(hm, lakes, math.Inf(-1))
	return regions[1:], nil
}

// label assigns a region id to every positive cell using 4-connectivity.
// Label 0 means dry; regions[0] is a placeholder. Region maxima start at
// floor, so ocean-bound regions never report a rim below sea level.
func label(hm, lakes *core.Grid, floor float64) ([]int32, []Region) {
	w, h := lakes.W, lakes.H
	lk := lakes.Cells()
	labels := make([]int32, len(lk))
	regions := []Region{{}}
	var stack []int

	for seed := range lk {
		if labels[seed] != 0 || lk[seed] <= 0 {
			continue
		}
		id := int32(len(regions))
		region := Region{
			Min:  math.Inf(1),
			Max:  floor,
			Seed: core.Coord{X: seed % w, Y: seed / w},
		}
		labels[seed] = id
		stack = append(stack[:0], seed)

		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%w, i/w
			z := hm.Cells()[i]
			region.Area++
			region.Min = math.Min(region.Min, z)
			region.Max = math.Max(region.Max, z)

			visit := func(nx, ny int) {
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					return
				}
				j := ny*w + nx
				if labels[j] == 0 && lk[j] > 0 {
					labels[j] = id
					stack = append(stack, j)
				}
			}
			visit(x-1, y)
			visit(x+1, y)
			visit(x, y-1)
			visit(x, y+1)
		}
		regions = append(regions, region)
	}
	return labels, regions
}
