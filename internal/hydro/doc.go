// Package hydro derives a river and lake network from a heightmap and grows
// a new terrain around it.
//
// The stages run in a fixed order, each consuming the previous output:
//
//	Resolve     heightmap -> flow targets
//	Accumulate  targets   -> accumulated volume and rasterized rivers
//	DetectLakes volume    -> lake grid
//	Synthesize  rivers and lakes -> terrain
//
// Every stage is deterministic. Where equal elevations leave a choice, the
// order is fixed. A cell drains to itself unless something in its disc is
// strictly lower; otherwise it drains to the first lowest offset with dx
// ascending, then dy ascending. Resolve, ResolveParallel and BruteForce agree
// cell for cell. Priority queues break elevation ties by y, then x.
package hydro
