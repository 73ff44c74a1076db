package effects

import (
	"math"

	"github.com/tessellate/tessera/grid"
)

// Derivative extracts a normalized finite-difference gradient magnitude,
// using toroidally wrapped central differences per channel.
func Derivative(g *grid.Grid) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	out := g.Like()
	forEachRowChunk(g.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				up := g.Pixel(y-1, x)
				down := g.Pixel(y+1, x)
				left := g.Pixel(y, x-1)
				right := g.Pixel(y, x+1)
				px := out.Pixel(y, x)
				for c := range px {
					gy := (down[c] - up[c]) * .5
					gx := (right[c] - left[c]) * .5
					px[c] = float32(math.Sqrt(float64(gy*gy + gx*gx)))
				}
			}
		}
	})
	return grid.Normalize(out), nil
}

// Sobel applies the sobel operator and folds the normalized magnitude into a
// centered edge map.
func Sobel(g *grid.Grid) (*grid.Grid, error) {
	x, err := Convolve(KernelSobelX, g)
	if err != nil {
		return nil, err
	}
	y, err := Convolve(KernelSobelY, g)
	if err != nil {
		return nil, err
	}
	return centeredMagnitude(x, y), nil
}

// NormalMap derives a 3-channel tangent-space normal map from the grid's
// brightness field.
func NormalMap(g *grid.Grid) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	ref := grid.ValueMap(g)

	x, err := Convolve(KernelSobelX, ref)
	if err != nil {
		return nil, err
	}
	for i, v := range x.Data {
		x.Data[i] = 1 - v
	}
	x = grid.Normalize(x)

	y, err := Convolve(KernelSobelY, ref)
	if err != nil {
		return nil, err
	}
	y = grid.Normalize(y)

	z := centeredMagnitude(x, y)

	out := &grid.Grid{H: g.H, W: g.W, C: 3, Data: make([]float32, g.H*g.W*3)}
	for i := 0; i < g.H*g.W; i++ {
		out.Data[i*3] = x.Data[i]
		out.Data[i*3+1] = y.Data[i]
		out.Data[i*3+2] = 1 - z.Data[i]*.5 + .5
	}
	return out, nil
}

// centeredMagnitude is |normalize(sqrt(x^2 + y^2)) * 2 - 1|.
func centeredMagnitude(x, y *grid.Grid) *grid.Grid {
	mag := x.Like()
	for i := range mag.Data {
		xv, yv := x.Data[i], y.Data[i]
		mag.Data[i] = float32(math.Sqrt(float64(xv*xv + yv*yv)))
	}
	mag = grid.Normalize(mag)
	for i, v := range mag.Data {
		d := v*2 - 1
		if d < 0 {
			d = -d
		}
		mag.Data[i] = d
	}
	return mag
}

// Wavelet returns the band-pass residual between the grid and a half-size
// blur-and-restore of itself.
func Wavelet(g *grid.Grid) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	small, err := Resample(g, g.H/2, g.W/2, SplineBicubic)
	if err != nil {
		return nil, err
	}
	restored, err := Resample(small, g.H, g.W, SplineBicubic)
	if err != nil {
		return nil, err
	}

	out := g.Like()
	for i := range out.Data {
		out.Data[i] = g.Data[i] - restored.Data[i]
	}
	return grid.Normalize(out), nil
}

// Crease folds midpoint values into ridges: 1 - |v*2 - 1|.
func Crease(g *grid.Grid) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out := g.Like()
	for i, v := range g.Data {
		d := v*2 - 1
		if d < 0 {
			d = -d
		}
		out.Data[i] = 1 - d
	}
	return out, nil
}
