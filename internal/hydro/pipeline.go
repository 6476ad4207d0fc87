package hydro

import (
	"fmt"
	"time"

	"watershed/internal/core"
)

// Stage names reported to Pipeline.Observe.
const (
	StageTargets = "Finding Flow Targets"
	StageRivers  = "Generating River Map"
	StageLakes   = "Generating Lake Map"
	StageTerrain = "Generating Terrain"
)

// Result bundles every grid produced by a pipeline run.
type Result struct {
	Heightmap *core.Grid
	Targets   *Targets
	Flow      *Flow
	Lakes     *core.Grid
	Terrain   *core.Grid
}

// Pipeline runs all stages over a heightmap.
type Pipeline struct {
	Config Config
	// Observe, when set, receives the wall time of each stage.
	Observe func(stage string, elapsed time.Duration)
}

// Run validates the configuration against hm and then runs every stage.
// Nothing is computed when validation fails.
func (p *Pipeline) Run(hm *core.Grid) (*Result, error) {
	cfg := p.Config
	if err := cfg.Validate(hm.W, hm.H); err != nil {
		return nil, fmt.Errorf("hydro config: %w", err)
	}

	res := &Result{Heightmap: hm}
	err := p.stage(StageTargets, func() (err error) {
		res.Targets, err = ResolveParallel(hm, cfg.Radius, cfg.Workers)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = p.stage(StageRivers, func() (err error) {
		res.Flow, err = Accumulate(hm, res.Targets)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = p.stage(StageLakes, func() (err error) {
		res.Lakes, err = DetectLakes(hm, res.Flow.Volume, res.Targets, cfg.LakeParams())
		return err
	})
	if err != nil {
		return nil, err
	}
	err = p.stage(StageTerrain, func() (err error) {
		res.Terrain, err = Synthesize(res.Flow.Adjusted(cfg.RiverGamma), res.Lakes, cfg.Slope)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Pipeline) stage(name string, fn func() error) error {
	start := time.Now()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if p.Observe != nil {
		p.Observe(name, time.Since(start))
	}
	return nil
}
