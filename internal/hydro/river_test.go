package hydro

import (
	"testing"

	"watershed/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatePit(t *testing.T) {
	hm := pitGrid(t)
	flow, err := Accumulate(hm, mustResolve(t, hm, 1))
	require.NoError(t, err)

	assert.Equal(t, 9.0, flow.Volume.At(2, 2))
	assert.Equal(t, 1.0, flow.Volume.At(1, 1))
	assert.Equal(t, 1.0, flow.Volume.At(0, 0))
	assert.Equal(t, 25.0, flow.Volume.Sum()-8, "each neighbour's unit is counted at itself and at the pit")

	// Eight one-step segments, each adding 1 at both ends.
	assert.Equal(t, 8.0, flow.Rivers.At(2, 2))
	assert.Equal(t, 1.0, flow.Rivers.At(3, 1))
	assert.Equal(t, 0.0, flow.Rivers.At(0, 0))
}

func TestAccumulateConservesVolume(t *testing.T) {
	hm := randomGrid(t, 48, 40, 21)
	targets := mustResolve(t, hm, 2)
	flow, err := Accumulate(hm, targets)
	require.NoError(t, err)

	basin := make(map[core.Coord]float64)
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			c := core.Coord{X: x, Y: y}
			for !targets.IsSink(c.X, c.Y) {
				c = targets.At(c.X, c.Y)
			}
			basin[c]++
		}
	}

	total := 0.0
	for _, sink := range targets.Sinks() {
		assert.Equalf(t, basin[sink], flow.Volume.AtCoord(sink), "sink %v", sink)
		total += flow.Volume.AtCoord(sink)
	}
	assert.Equal(t, float64(hm.W*hm.H), total)
}

func TestAccumulateVolumeGrowsDownstream(t *testing.T) {
	hm := terracedGrid(t, 30, 30, 8)
	targets := mustResolve(t, hm, 3)
	flow, err := Accumulate(hm, targets)
	require.NoError(t, err)

	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			if targets.IsSink(x, y) {
				continue
			}
			next := targets.At(x, y)
			assert.GreaterOrEqual(t, flow.Volume.AtCoord(next), flow.Volume.At(x, y)+1)
		}
	}
}

func TestAccumulateSizeMismatch(t *testing.T) {
	targets := mustResolve(t, pitGrid(t), 1)
	_, err := Accumulate(core.NewGrid(6, 5), targets)
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
}

func TestAdjustedRivers(t *testing.T) {
	hm := pitGrid(t)
	flow, err := Accumulate(hm, mustResolve(t, hm, 1))
	require.NoError(t, err)

	adjusted := flow.Adjusted(0.5)
	assert.InDelta(t, 2.8284, adjusted.At(2, 2), 1e-4)
	assert.Equal(t, 8.0, flow.Rivers.At(2, 2), "source grid must stay untouched")
	assert.Equal(t, flow.Rivers.Cells(), flow.Adjusted(1).Cells())
}
