package effects

import (
	"fmt"
	"math"

	"github.com/tessellate/tessera/grid"
)

// Spline orders accepted by Resample. Anything above linear selects bicubic.
const (
	SplineNearest = 0
	SplineLinear  = 1
	SplineBicubic = 3
)

// Resample resizes the grid to h x w with toroidal edges, so the result
// tiles as seamlessly as its source. splineOrder selects the interpolant:
// 0 nearest, 1 bilinear, anything else bicubic (Catmull-Rom). Output values
// are saturated into [0,1].
func Resample(g *grid.Grid, h, w, splineOrder int) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("effects: invalid resample target %dx%d", h, w)
	}

	out := &grid.Grid{H: h, W: w, C: g.C, Data: make([]float32, h*w*g.C)}
	scaleY := float64(g.H) / float64(h)
	scaleX := float64(g.W) / float64(w)

	forEachRowChunk(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			// Half-pixel centers keep same-size resampling an identity.
			srcY := (float64(y)+.5)*scaleY - .5
			for x := 0; x < w; x++ {
				srcX := (float64(x)+.5)*scaleX - .5
				px := out.Data[(y*w+x)*g.C : (y*w+x+1)*g.C]
				switch splineOrder {
				case SplineNearest:
					sampleNearest(g, srcY, srcX, px)
				case SplineLinear:
					sampleBilinear(g, srcY, srcX, px)
				default:
					sampleBicubic(g, srcY, srcX, px)
				}
			}
		}
	})

	return out.Clamp01(), nil
}

func sampleNearest(g *grid.Grid, srcY, srcX float64, dst []float32) {
	y := int(math.Floor(srcY + .5))
	x := int(math.Floor(srcX + .5))
	copy(dst, g.Pixel(y, x))
}

func sampleBilinear(g *grid.Grid, srcY, srcX float64, dst []float32) {
	y0 := int(math.Floor(srcY))
	x0 := int(math.Floor(srcX))
	fy := float32(srcY - math.Floor(srcY))
	fx := float32(srcX - math.Floor(srcX))

	p00 := g.Pixel(y0, x0)
	p01 := g.Pixel(y0, x0+1)
	p10 := g.Pixel(y0+1, x0)
	p11 := g.Pixel(y0+1, x0+1)
	for c := range dst {
		top := p00[c]*(1-fx) + p01[c]*fx
		bot := p10[c]*(1-fx) + p11[c]*fx
		dst[c] = top*(1-fy) + bot*fy
	}
}

// cubicWeights fills w with Catmull-Rom (a = -0.5) weights for taps at
// offsets -1..2 around the sample point with fractional position t.
func cubicWeights(t float64, w *[4]float32) {
	t2 := t * t
	t3 := t2 * t
	w[0] = float32(-.5*t3 + t2 - .5*t)
	w[1] = float32(1.5*t3 - 2.5*t2 + 1)
	w[2] = float32(-1.5*t3 + 2*t2 + .5*t)
	w[3] = float32(.5*t3 - .5*t2)
}

func sampleBicubic(g *grid.Grid, srcY, srcX float64, dst []float32) {
	y0 := int(math.Floor(srcY))
	x0 := int(math.Floor(srcX))

	var wy, wx [4]float32
	cubicWeights(srcY-math.Floor(srcY), &wy)
	cubicWeights(srcX-math.Floor(srcX), &wx)

	for c := range dst {
		dst[c] = 0
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			wt := wy[i] * wx[j]
			if wt == 0 {
				continue
			}
			px := g.Pixel(y0-1+i, x0-1+j)
			for c := range dst {
				dst[c] += px[c] * wt
			}
		}
	}
}
