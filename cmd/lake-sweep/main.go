package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"watershed/internal/core"
	"watershed/internal/heightmap"
	"watershed/internal/hydro"

	"golang.org/x/sync/errgroup"
)

type paramSet struct {
	radius    int
	threshold float64
	minArea   int
}

func (p paramSet) String() string {
	return fmt.Sprintf("radius=%d volume=%.0f minArea=%d", p.radius, p.threshold, p.minArea)
}

type scenarioResult struct {
	params    paramSet
	regions   int
	lakeCells int
	largest   int
	err       error
}

// drainage is the part of the pipeline that depends only on the radius.
type drainage struct {
	targets *hydro.Targets
	flow    *hydro.Flow
	err     error
}

func main() {
	mapCfg := heightmap.DefaultConfig()
	mapCfg.Width = 256
	mapCfg.Height = 256
	mapCfg.Bind(flag.CommandLine)
	ocean := flag.Float64("ocean", hydro.DefaultConfig().OceanLevel, "ocean level")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "configurations to print")
	flag.Parse()

	hm, err := heightmap.Generate(mapCfg)
	if err != nil {
		log.Fatal(err)
	}

	radiusOptions := []int{2, 4, 6, 8}
	thresholdOptions := []float64{25, 50, 100, 200, 400}
	minAreaOptions := []int{0, 10, 40}

	var sets []paramSet
	for _, radius := range radiusOptions {
		for _, threshold := range thresholdOptions {
			for _, minArea := range minAreaOptions {
				sets = append(sets, paramSet{radius: radius, threshold: threshold, minArea: minArea})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %dx%d map)\n", len(sets), *workers, hm.W, hm.H)

	// Each radius is resolved once, up front, so workers never race to
	// compute the same drainage.
	drains := make(map[int]*drainage, len(radiusOptions))
	var mu sync.Mutex
	var eg errgroup.Group
	eg.SetLimit(*workers)
	for _, radius := range radiusOptions {
		eg.Go(func() error {
			d := drain(hm, radius)
			mu.Lock()
			drains[radius] = d
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(hm, drains[params.radius], params, *ocean)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.params, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].regions != all[j].regions {
			return all[i].regions > all[j].regions
		}
		return all[i].lakeCells > all[j].lakeCells
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) lakes=%d cells=%d largest=%d params=%s\n",
			i+1, res.regions, res.lakeCells, res.largest, res.params)
	}
}

func drain(hm *core.Grid, radius int) *drainage {
	t, err := hydro.Resolve(hm, radius)
	if err != nil {
		return &drainage{err: err}
	}
	f, err := hydro.Accumulate(hm, t)
	return &drainage{targets: t, flow: f, err: err}
}

func runScenario(hm *core.Grid, d *drainage, params paramSet, ocean float64) scenarioResult {
	res := scenarioResult{params: params}
	if d.err != nil {
		res.err = d.err
		return res
	}
	lakes, err := hydro.DetectLakes(hm, d.flow.Volume, d.targets, hydro.LakeParams{
		OceanLevel:      ocean,
		Radius:          params.radius,
		VolumeThreshold: params.threshold,
		MinArea:         params.minArea,
		Depth:           hydro.RimFill{},
	})
	if err != nil {
		res.err = err
		return res
	}
	regions, err := hydro.LakeRegions(hm, lakes)
	if err != nil {
		res.err = err
		return res
	}
	res.regions, res.lakeCells, res.largest = countLakes(regions, params.radius, ocean)
	return res
}

// countLakes skips the sea: the region holding the permanent border ring,
// which always starts at a cell inside the band, and any region reaching
// below the ocean level.
func countLakes(regions []hydro.Region, radius int, ocean float64) (count, cells, largest int) {
	for _, r := range regions {
		if r.Seed.X < radius || r.Seed.Y < radius || r.Min < ocean {
			continue
		}
		count++
		cells += r.Area
		if r.Area > largest {
			largest = r.Area
		}
	}
	return count, cells, largest
}
