package render

import (
	"errors"
	"image"
	"image/png"
	"testing"

	"watershed/internal/core"
	"watershed/internal/hydro"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"
)

func decode(t *testing.T, e *Exporter, name string) *image.Gray {
	t.Helper()
	f, err := e.FS.Open(name)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	gray, ok := img.(*image.Gray)
	require.True(t, ok, "expected grayscale image, got %T", img)
	return gray
}

func TestWriteGrid(t *testing.T) {
	e := &Exporter{FS: memfs.New()}
	g, err := core.GridFrom(3, 2, []float64{0, 5, 10, 10, 5, 0})
	require.NoError(t, err)

	require.NoError(t, e.WriteGrid("out/map.png", g))

	img := decode(t, e, "out/map.png")
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(128), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(2, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 1).Y)

	entries, err := e.FS.ReadDir("out")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file is renamed away")
	assert.Equal(t, "map.png", entries[0].Name())
}

func TestWriteResult(t *testing.T) {
	hm := core.NewGrid(12, 12)
	hm.MapCoords(func(x, y int, _ float64) float64 { return float64(x + y) })
	cfg := hydro.DefaultConfig()
	cfg.Radius = 1
	cfg.OceanLevel = 3
	res, err := (&hydro.Pipeline{Config: cfg}).Run(hm)
	require.NoError(t, err)

	e := &Exporter{FS: memfs.New()}
	require.NoError(t, e.WriteResult("maps/island", res))
	for _, layer := range []string{"heightmap", "rivers", "lakes", "terrain"} {
		img := decode(t, e, LayerFile("maps/island", layer))
		assert.Equal(t, 12, img.Bounds().Dx(), layer)
	}
}

type fullFS struct {
	billy.Filesystem
}

func (fullFS) TempFile(string, string) (billy.File, error) {
	return nil, errors.New("no space left")
}

func TestWriteResultCollectsErrors(t *testing.T) {
	e := &Exporter{FS: fullFS{memfs.New()}}
	g := core.NewGrid(2, 2)
	res := &hydro.Result{Heightmap: g, Flow: &hydro.Flow{Volume: g, Rivers: g}, Lakes: g, Terrain: g}

	err := e.WriteResult("maps/island", res)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "heightmap")
	assert.Contains(t, errs[3].Error(), "terrain")
}

func TestWriteGridWithoutDirectory(t *testing.T) {
	e := &Exporter{FS: memfs.New()}
	require.NoError(t, e.WriteGrid("flat.png", core.NewGrid(2, 2)))
	img := decode(t, e, "flat.png")
	assert.Equal(t, uint8(0), img.GrayAt(1, 1).Y)
}
