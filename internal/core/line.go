package core

// Stroke computes the new value of a cell visited by DrawLine from its
// existing value.
type Stroke func(float64) float64

// Add returns a stroke that adds v to the existing value.
func Add(v float64) Stroke {
	return func(h float64) float64 { return h + v }
}

// Constant returns a stroke that overwrites the existing value with v.
func Constant(v float64) Stroke {
	return func(float64) float64 { return v }
}

// DrawLine applies stroke to every cell on the segment from (x1, y1) to
// (x2, y2), both endpoints included, each cell exactly once. It is a
// generalized Bresenham walk: the major axis advances every step and the
// minor axis catches up through the error term, so steep and shallow lines
// are both gapless. Cells outside the grid are skipped.
func (g *Grid) DrawLine(x1, y1, x2, y2 int, stroke Stroke) {
	dx, sx := absSign(x2 - x1)
	dy, sy := absSign(y2 - y1)

	steep := dy > dx
	if steep {
		dx, dy = dy, dx
	}

	d := 2*dy - dx
	x, y := x1, y1
	for i := 0; i < dx; i++ {
		g.stroke(x, y, stroke)
		for d >= 0 {
			if steep {
				x += sx
			} else {
				y += sy
			}
			d -= 2 * dx
		}
		if steep {
			y += sy
		} else {
			x += sx
		}
		d += 2 * dy
	}
	g.stroke(x, y, stroke)
}

func (g *Grid) stroke(x, y int, stroke Stroke) {
	if !g.InBounds(x, y) {
		return
	}
	i := y*g.W + x
	g.data[i] = stroke(g.data[i])
}

func absSign(v int) (int, int) {
	if v > 0 {
		return v, 1
	}
	return -v, -1
}
