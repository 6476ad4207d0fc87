package heightmap

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source evaluates 2D coherent noise in roughly [-1, 1].
type Source interface {
	Eval2(x, y float64) float64
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 { return s.p.Noise2D(x, y) }

// NewSource returns the noise backend named by kind.
func NewSource(kind string, seed int64) (Source, error) {
	switch kind {
	case NoiseSimplex:
		return opensimplex.New(seed), nil
	case NoisePerlin:
		// One octave per call; Octave layers the frequencies itself.
		return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoise, kind)
	}
}

// Octave sums octaves layers of src starting at frequency and doubling it each
// layer, each weighted by persistence relative to the previous one. The result
// is normalised by the total amplitude.
func Octave(src Source, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += src.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}
