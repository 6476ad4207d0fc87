package hydro

import (
	"fmt"

	"watershed/internal/core"
)

// Slope is the valley slope law: stepping away from a cell raises the
// terrain by Scale / (Base + river volume at that cell), so heavy flow
// carves wide, gentle valleys.
type Slope struct {
	Base  float64
	Scale float64
}

// DefaultSlope returns the law 1 / (0.5 + volume).
func DefaultSlope() Slope { return Slope{Base: 0.5, Scale: 1} }

// Increment returns the rise for leaving a cell carrying volume.
func (s Slope) Increment(volume float64) float64 {
	return s.Scale / (s.Base + volume)
}

// Synthesize grows terrain outward from every lake cell. It is a multi-source
// shortest path: the lowest pending cell is finalized first, then offers its
// eight neighbours its own elevation plus the slope increment. A cell keeps
// the first elevation it is popped with. Border cells are finalized but not
// expanded, and cells no wavefront reaches stay 0.
func Synthesize(rivers, lakes *core.Grid, s Slope) (*core.Grid, error) {
	if rivers.W != lakes.W || rivers.H != lakes.H {
		return nil, fmt.Errorf("%w: rivers %dx%d vs lakes %dx%d", core.ErrSizeMismatch, rivers.W, rivers.H, lakes.W, lakes.H)
	}
	w, h := lakes.W, lakes.H
	terrain := core.NewGrid(w, h)
	tr := terrain.Cells()
	rv := rivers.Cells()
	done := make([]bool, len(tr))

	queue := NewPointQueue(len(tr) / 4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if z := lakes.At(x, y); z > 0 {
				queue.Push(Point{X: x, Y: y, Z: z})
				tr[y*w+x] = z
			}
		}
	}

	for {
		cur, ok := queue.Pop()
		if !ok {
			break
		}
		i := cur.Y*w + cur.X
		if done[i] {
			continue
		}
		done[i] = true
		tr[i] = cur.Z

		if cur.X == 0 || cur.Y == 0 || cur.X == w-1 || cur.Y == h-1 {
			continue
		}

		nz := cur.Z + s.Increment(rv[i])
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := cur.X+dx, cur.Y+dy
				j := ny*w + nx
				if done[j] {
					continue
				}
				if tr[j] != 0 && tr[j] <= nz {
					continue
				}
				tr[j] = nz
				queue.Push(Point{X: nx, Y: ny, Z: nz})
			}
		}
	}
	return terrain, nil
}
