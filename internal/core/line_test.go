package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visitOrder(g *Grid, x1, y1, x2, y2 int) []Coord {
	var visited []Coord
	// Tag each cell with its visit index so the walk order can be recovered.
	order := 0.0
	g.DrawLine(x1, y1, x2, y2, func(v float64) float64 {
		order++
		return v + order
	})
	for step := 1; step <= int(order); step++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if g.At(x, y) == float64(step) {
					visited = append(visited, Coord{x, y})
				}
			}
		}
	}
	return visited
}

func TestDrawLineHorizontalAdd(t *testing.T) {
	g := NewGrid(6, 2)
	g.DrawLine(0, 0, 4, 0, Add(1))

	for x := 0; x < 6; x++ {
		want := 0.0
		if x <= 4 {
			want = 1
		}
		assert.Equalf(t, want, g.At(x, 0), "x=%d", x)
		assert.Equal(t, 0.0, g.At(x, 1))
	}
	assert.Equal(t, 5.0, g.Sum())

	order := visitOrder(NewGrid(6, 2), 0, 0, 4, 0)
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, order)
}

func TestDrawLineSinglePoint(t *testing.T) {
	g := NewGrid(3, 3)
	g.DrawLine(1, 1, 1, 1, Add(2.5))
	assert.Equal(t, 2.5, g.At(1, 1))
	assert.Equal(t, 2.5, g.Sum())
}

func TestDrawLineGaplessInAllOctants(t *testing.T) {
	ends := []Coord{
		{10, 3}, {3, 10}, {-3, 10}, {-10, 3},
		{-10, -3}, {-3, -10}, {3, -10}, {10, -3},
		{10, 10}, {0, -10}, {-10, 0},
	}
	for _, end := range ends {
		g := NewGrid(21, 21)
		x1, y1 := 10, 10
		x2, y2 := x1+end.X, y1+end.Y
		order := visitOrder(g, x1, y1, x2, y2)

		major := max(abs(end.X), abs(end.Y))
		require.Lenf(t, order, major+1, "line to %v", end)
		assert.Equal(t, Coord{x1, y1}, order[0])
		assert.Equal(t, Coord{x2, y2}, order[len(order)-1])

		for i := 1; i < len(order); i++ {
			dx := abs(order[i].X - order[i-1].X)
			dy := abs(order[i].Y - order[i-1].Y)
			assert.LessOrEqualf(t, dx, 1, "gap on line to %v at step %d", end, i)
			assert.LessOrEqualf(t, dy, 1, "gap on line to %v at step %d", end, i)
		}
	}
}

func TestDrawLineConstantOverwrites(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(7)
	g.DrawLine(0, 3, 3, 0, Constant(1))
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1.0, g.At(i, 3-i))
	}
	assert.Equal(t, 7.0, g.At(0, 0))
}

func TestDrawLineSkipsOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	assert.NotPanics(t, func() { g.DrawLine(-2, 1, 4, 1, Add(1)) })
	assert.Equal(t, 3.0, g.Sum())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
