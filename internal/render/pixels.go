package render

import (
	"image/color"

	"watershed/internal/core"
)

// Palette maps an 8-bit level to a colour.
type Palette [256]color.RGBA

// Gradient returns a palette blending linearly from lo at level 0 to hi at
// level 255.
func Gradient(lo, hi color.RGBA) *Palette {
	var p Palette
	for i := range p {
		t := float64(i) / 255
		p[i] = color.RGBA{
			R: lerp8(lo.R, hi.R, t),
			G: lerp8(lo.G, hi.G, t),
			B: lerp8(lo.B, hi.B, t),
			A: lerp8(lo.A, hi.A, t),
		}
	}
	return &p
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// Palettes used for the pipeline layers.
var (
	Gray    = Gradient(color.RGBA{A: 0xff}, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	Water   = Gradient(color.RGBA{R: 0x08, G: 0x10, B: 0x20, A: 0xff}, color.RGBA{R: 0x9c, G: 0xd8, B: 0xff, A: 0xff})
	Terrain = Gradient(color.RGBA{R: 0x1e, G: 0x4d, B: 0x2b, A: 0xff}, color.RGBA{R: 0xe8, G: 0xdc, B: 0xc0, A: 0xff})
)

// Quantize maps the grid onto 0..255 relative to its own min..max. A flat
// grid maps to all zeros.
func Quantize(g *core.Grid) []uint8 {
	return QuantizeInto(make([]uint8, len(g.Cells())), g)
}

// QuantizeInto is Quantize writing into dst, which must hold one byte per cell.
func QuantizeInto(dst []uint8, g *core.Grid) []uint8 {
	lo, hi := g.MinMax()
	span := hi - lo
	for i, v := range g.Cells() {
		if span <= 0 {
			dst[i] = 0
			continue
		}
		dst[i] = uint8((v-lo)/span*255 + 0.5)
	}
	return dst
}

// fillPaletteRGBA converts levels into RGBA pixels using a palette. A nil
// palette clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, levels []uint8, palette *Palette) {
	if palette == nil {
		for i := range levels {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	for i, c := range levels {
		base := i * 4
		col := palette[c]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
