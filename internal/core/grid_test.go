package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	assert.Equal(t, Size{W: 1, H: 1}, g.Size())
	assert.Len(t, g.Cells(), 1)
}

func TestGridFromRejectsWrongLength(t *testing.T) {
	_, err := GridFrom(3, 3, make([]float64, 8))
	require.ErrorIs(t, err, ErrSizeMismatch)

	g, err := GridFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3.0, g.At(0, 1))
}

func TestMapAndMapCoords(t *testing.T) {
	g := NewGrid(3, 2)
	g.MapCoords(func(x, y int, _ float64) float64 { return float64(10*y + x) })
	assert.Equal(t, []float64{0, 1, 2, 10, 11, 12}, g.Cells())

	g.Map(func(v float64) float64 { return v * 2 })
	assert.Equal(t, 24.0, g.At(2, 1))
}

func TestCombine(t *testing.T) {
	a := NewGrid(2, 2)
	b := NewGrid(2, 2)
	a.Fill(1)
	b.MapCoords(func(x, y int, _ float64) float64 { return float64(x + y) })

	require.NoError(t, a.Combine(b, func(l, r float64) float64 { return l + r }))
	assert.Equal(t, []float64{1, 2, 2, 3}, a.Cells())

	err := a.Combine(NewGrid(3, 2), func(l, r float64) float64 { return l })
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestCombineAtClipsToReceiver(t *testing.T) {
	dst := NewGrid(4, 4)
	tile := NewGrid(3, 3)
	tile.Fill(5)

	dst.CombineAt(tile, func(a, b float64) float64 { return a + b }, 2, -1)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := 0.0
			if x >= 2 && y <= 1 {
				want = 5
			}
			assert.Equalf(t, want, dst.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestMinMaxAndSum(t *testing.T) {
	g, err := GridFrom(3, 1, []float64{4, -2, 7})
	require.NoError(t, err)

	lo, hi := g.MinMax()
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 7.0, hi)
	assert.Equal(t, 9.0, g.Sum())
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.Clone()
	c.Set(1, 1, 3)
	assert.Equal(t, 0.0, g.At(1, 1))
	assert.True(t, g.InBounds(1, 1))
	assert.False(t, g.InBounds(2, 0))
}
