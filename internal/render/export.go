package render

import (
	"fmt"
	"image"
	"image/png"
	"path"

	"watershed/internal/core"
	"watershed/internal/hydro"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// Exporter writes grids as grayscale PNG files.
type Exporter struct {
	FS billy.Filesystem
}

// WriteGrid writes g to name as an 8-bit grayscale PNG normalised over the
// grid's own range. The image is written to a temporary file first and then
// renamed, so readers never observe a partial file.
func (e *Exporter) WriteGrid(name string, g *core.Grid) (err error) {
	img := &image.Gray{
		Pix:    Quantize(g),
		Stride: g.W,
		Rect:   image.Rect(0, 0, g.W, g.H),
	}

	dir := path.Dir(name)
	if dir != "." {
		if err := e.FS.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	temp, err := e.FS.TempFile(dir, path.Base(name))
	if err != nil {
		return err
	}
	err = png.Encode(temp, img)
	err = multierr.Append(err, temp.Close())
	if err != nil {
		return multierr.Append(err, e.FS.Remove(temp.Name()))
	}
	return e.FS.Rename(temp.Name(), name)
}

// WriteResult writes every layer of a pipeline result as <prefix>_<layer>.png.
// All layers are attempted; failures are combined into one error.
func (e *Exporter) WriteResult(prefix string, res *hydro.Result) error {
	layers := []struct {
		name string
		grid *core.Grid
	}{
		{"heightmap", res.Heightmap},
		{"rivers", res.Flow.Rivers},
		{"lakes", res.Lakes},
		{"terrain", res.Terrain},
	}
	var err error
	for _, l := range layers {
		if werr := e.WriteGrid(LayerFile(prefix, l.name), l.grid); werr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", l.name, werr))
		}
	}
	return err
}

// LayerFile names the file a layer is exported to.
func LayerFile(prefix, layer string) string {
	return prefix + "_" + layer + ".png"
}
