package hydro

import (
	"math"
	"testing"

	"watershed/internal/core"
	prng "watershed/pkg/core"

	"github.com/stretchr/testify/require"
)

func randomGrid(t *testing.T, w, h int, seed int64) *core.Grid {
	t.Helper()
	g := core.NewGrid(w, h)
	prng.FillUniform(prng.NewRNG(seed).Source(), g.Cells(), 0, 100)
	return g
}

// terracedGrid rounds a random grid to a handful of levels so elevation ties
// are everywhere.
func terracedGrid(t *testing.T, w, h int, seed int64) *core.Grid {
	t.Helper()
	g := randomGrid(t, w, h, seed)
	g.Map(func(v float64) float64 { return math.Floor(v / 20) })
	return g
}

func pitGrid(t *testing.T) *core.Grid {
	t.Helper()
	g := core.NewGrid(5, 5)
	g.Fill(10)
	g.Set(2, 2, 0)
	return g
}

func discMinimum(hm *core.Grid, radius, x, y int) float64 {
	lowest := math.Inf(1)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy > radius*(radius+1) || !hm.InBounds(x+dx, y+dy) {
				continue
			}
			lowest = math.Min(lowest, hm.At(x+dx, y+dy))
		}
	}
	return lowest
}

func mustResolve(t *testing.T, hm *core.Grid, radius int) *Targets {
	t.Helper()
	targets, err := Resolve(hm, radius)
	require.NoError(t, err)
	return targets
}
