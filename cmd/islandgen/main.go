package main

import (
	"flag"
	"fmt"
	"log"
	"path"
	"time"

	"watershed/internal/heightmap"
	"watershed/internal/hydro"
	"watershed/internal/render"

	"gopkg.in/src-d/go-billy.v4/osfs"
)

func main() {
	mapCfg := heightmap.DefaultConfig()
	mapCfg.Bind(flag.CommandLine)
	hydroCfg := hydro.DefaultConfig()
	hydroCfg.Bind(flag.CommandLine)
	out := flag.String("out", "out", "output directory")
	name := flag.String("name", "island", "file name prefix")
	flag.Parse()

	start := time.Now()
	hm, err := heightmap.Generate(mapCfg)
	if err != nil {
		log.Fatal(err)
	}
	logStage("Generating Heightmap", time.Since(start))

	p := &hydro.Pipeline{Config: hydroCfg, Observe: logStage}
	res, err := p.Run(hm)
	if err != nil {
		log.Fatal(err)
	}

	exportStart := time.Now()
	exp := &render.Exporter{FS: osfs.New(*out)}
	if err := exp.WriteResult(*name, res); err != nil {
		log.Fatal(err)
	}
	logStage("Exporting", time.Since(exportStart))

	lakes, err := hydro.LakeRegions(res.Heightmap, res.Lakes)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%-25s (%.3f s)\n", "Total", time.Since(start).Seconds())
	fmt.Printf("%d lakes, %d sinks -> %s\n", len(lakes), len(res.Targets.Sinks()), path.Join(*out, render.LayerFile(*name, "*")))
}

func logStage(stage string, elapsed time.Duration) {
	fmt.Printf("%-25s (%.3f s)\n", stage, elapsed.Seconds())
}
