package hydro

import "math"

// depthEpsilon bounds the elevation span of a region from below so flat
// regions do not divide by zero.
const depthEpsilon = 1e-6

// DepthPolicy assigns the lake grid value of a cell inside a surviving lake
// region.
type DepthPolicy interface {
	Depth(elevation float64, r Region) float64
}

// RimFill sets every lake cell to the region's highest elevation: a flat
// water surface at the basin rim.
type RimFill struct{}

func (RimFill) Depth(_ float64, r Region) float64 { return r.Max }

// GammaDepth maps elevation to a relative depth in [0, 1], deepest at the
// region minimum, shaped by (1 - t)^Gamma.
type GammaDepth struct {
	Gamma float64
}

func (g GammaDepth) Depth(elevation float64, r Region) float64 {
	span := math.Max(r.Max-r.Min, depthEpsilon)
	t := (elevation - r.Min) / span
	t = math.Min(math.Max(t, 0), 1)
	return math.Pow(1-t, g.Gamma)
}
