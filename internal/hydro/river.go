package hydro

import (
	"fmt"
	"math"

	"watershed/internal/core"
)

// Flow holds the two products of accumulation.
type Flow struct {
	// Volume is the accumulated unit flow of every cell: its own 1.0 plus
	// everything draining through it. A sink holds the size of its basin.
	Volume *core.Grid
	// Rivers is the river network rasterized along every source to target
	// step, each segment weighted by the volume leaving its source.
	Rivers *core.Grid
}

// Accumulate routes one unit of water from every cell down the drainage
// forest described by t.
//
// Cells are processed in topological order without a queue: every cell
// nobody drains into starts a chain, and a chain only continues into its
// target once all of the target's sources are done. Each node has at most
// one outgoing edge, so every cell is visited exactly once.
func Accumulate(hm *core.Grid, t *Targets) (*Flow, error) {
	if t.W != hm.W || t.H != hm.H {
		return nil, fmt.Errorf("%w: targets %dx%d for heightmap %dx%d", core.ErrSizeMismatch, t.W, t.H, hm.W, hm.H)
	}
	w := hm.W
	pending := make([]int32, len(t.cells))
	for i, c := range t.cells {
		if j := c.Y*w + c.X; j != i {
			pending[j]++
		}
	}

	volume := core.NewGrid(hm.W, hm.H)
	volume.Fill(1)
	rivers := core.NewGrid(hm.W, hm.H)
	vol := volume.Cells()

	for head := range pending {
		if pending[head] != 0 {
			continue
		}
		for i := head; ; {
			pending[i] = -1
			c := t.cells[i]
			j := c.Y*w + c.X
			if j == i {
				break
			}
			rivers.DrawLine(i%w, i/w, c.X, c.Y, core.Add(vol[i]))
			vol[j] += vol[i]
			pending[j]--
			if pending[j] != 0 {
				break
			}
			i = j
		}
	}

	return &Flow{Volume: volume, Rivers: rivers}, nil
}

// Adjusted returns a copy of the river grid with every value raised to
// gamma, which flattens the contrast between trickles and trunk rivers.
func (f *Flow) Adjusted(gamma float64) *core.Grid {
	adjusted := f.Rivers.Clone()
	if gamma == 1 {
		return adjusted
	}
	adjusted.Map(func(v float64) float64 {
		if v <= 0 {
			return 0
		}
		return math.Pow(v, gamma)
	})
	return adjusted
}
