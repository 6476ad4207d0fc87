//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"watershed/internal/core"
	"watershed/internal/render"
	"watershed/internal/sims/island"
	prng "watershed/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const oceanStep = 1.0

type layerProvider interface {
	Layer() island.Layer
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Game adapts a core generator to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	pacer   *core.Pacer
	seeds   *prng.RNG

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided generator. Layers advance every
// interval unless paused.
func New(sim core.Sim, scale int, seed int64, interval time.Duration) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:     sim,
		painter: gp,
		pacer:   core.NewPacer(interval),
		seeds:   prng.NewRNG(seed),
		scale:   scale,
		seed:    seed,
	}
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.pacer.Reset()
}

// Update handles per-frame logic and advances the displayed layer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(g.seeds.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.nudgeOcean(oceanStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.nudgeOcean(-oceanStep)
	}

	if g.tickOnce || (!g.paused && g.pacer.Ready()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) nudgeOcean(delta float64) {
	setter, ok := g.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	level, ok := g.param("ocean")
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(level, 64)
	if err != nil {
		return
	}
	setter.SetFloatParameter("ocean", v+delta)
}

func (g *Game) param(key string) (string, bool) {
	provider, ok := g.sim.(parameterProvider)
	if !ok {
		return "", false
	}
	p, ok := provider.Parameters().Lookup(key)
	return p.Value, ok
}

// Draw renders the current layer and its caption.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette(), g.scale)
	text.Draw(screen, g.caption(), basicfont.Face7x13, 8, 16, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (g *Game) palette() *render.Palette {
	lp, ok := g.sim.(layerProvider)
	if !ok {
		return render.Gray
	}
	switch lp.Layer() {
	case island.LayerRivers, island.LayerLakes:
		return render.Water
	case island.LayerTerrain:
		return render.Terrain
	}
	return render.Gray
}

func (g *Game) caption() string {
	s := fmt.Sprintf("%s  seed %d", g.sim.Name(), g.seed)
	if layer, ok := g.param("layer"); ok {
		s += "  " + layer
	}
	if ocean, ok := g.param("ocean"); ok {
		s += "  ocean " + ocean
	}
	if g.paused {
		s += "  [paused]"
	}
	return s
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
