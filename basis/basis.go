// Package basis generates seamless fractal noise fields used as pipeline
// input. It is a convenience for the CLI; the effects core accepts any grid.
package basis

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/tessellate/tessera/grid"
)

// Params shapes the fractal sum.
type Params struct {
	Scale      float64 // base feature frequency across the grid
	Octaves    int
	Lacunarity float64 // frequency multiplier per octave
	Gain       float64 // amplitude multiplier per octave
	Contrast   float64 // output exponent (1 = linear)
}

// DefaultParams returns a mid-detail FBM setup.
func DefaultParams() Params {
	return Params{Scale: 3, Octaves: 4, Lacunarity: 2, Gain: .5, Contrast: 1}
}

// FBM builds an [h,w,c] grid of fractal OpenSimplex noise. The grid tiles
// seamlessly: each octave is sampled on a torus embedded in 4-D noise space.
// Channels use consecutive seeds.
func FBM(h, w, c int, p Params, seed int64) (*grid.Grid, error) {
	out, err := grid.New(h, w, c)
	if err != nil {
		return nil, err
	}
	if p.Octaves <= 0 {
		return nil, fmt.Errorf("basis: octaves must be positive, got %d", p.Octaves)
	}

	for ch := 0; ch < c; ch++ {
		noise := opensimplex.New(seed + int64(ch))

		for y := 0; y < h; y++ {
			v := float64(y) / float64(h)
			for x := 0; x < w; x++ {
				u := float64(x) / float64(w)

				var sum, amp float64
				freq := p.Scale
				amplitude := 1.0
				for o := 0; o < p.Octaves; o++ {
					sum += amplitude * torusNoise(noise, u, v, freq)
					amp += amplitude
					amplitude *= p.Gain
					freq *= p.Lacunarity
				}

				n := sum/amp*.5 + .5 // [-1,1] -> [0,1]
				if p.Contrast != 1 {
					n = math.Pow(n, p.Contrast)
				}
				out.Set(y, x, ch, float32(n))
			}
		}
	}

	return grid.Normalize(out), nil
}

// torusNoise samples 2-D noise on a torus so opposite grid edges meet.
func torusNoise(noise opensimplex.Noise, u, v, freq float64) float64 {
	r := freq / (2 * math.Pi)
	return noise.Eval4(
		r*math.Cos(2*math.Pi*u),
		r*math.Sin(2*math.Pi*u),
		r*math.Cos(2*math.Pi*v),
		r*math.Sin(2*math.Pi*v),
	)
}
