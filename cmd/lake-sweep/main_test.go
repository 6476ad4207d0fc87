package main

import (
	"testing"

	"watershed/internal/core"
	"watershed/internal/hydro"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLakesSkipsSea(t *testing.T) {
	regions := []hydro.Region{
		{Area: 400, Min: 0, Max: 30, Seed: core.Coord{X: 0, Y: 0}},
		{Area: 9, Min: 5, Max: 20, Seed: core.Coord{X: 10, Y: 10}},
		{Area: 12, Min: 31, Max: 40, Seed: core.Coord{X: 14, Y: 6}},
		{Area: 30, Min: 25, Max: 33, Seed: core.Coord{X: 4, Y: 20}},
	}
	count, cells, largest := countLakes(regions, 2, 20)
	assert.Equal(t, 2, count)
	assert.Equal(t, 42, cells)
	assert.Equal(t, 30, largest)
}

func TestInteriorSeaIsNotALake(t *testing.T) {
	hm := core.NewGrid(30, 30)
	hm.Fill(50)
	for y := 10; y <= 12; y++ {
		for x := 10; x <= 12; x++ {
			hm.Set(x, y, 5)
		}
	}
	d := drain(hm, 2)
	require.NoError(t, d.err)

	res := runScenario(hm, d, paramSet{radius: 2, threshold: 100, minArea: 0}, 20)
	require.NoError(t, res.err)
	assert.Zero(t, res.regions)
}
