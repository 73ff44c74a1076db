package effects

import (
	"github.com/tessellate/tessera/grid"
)

// ColorMap recolors the grid through a color-lookup image. The clut is
// resampled (bicubic) to the grid's spatial shape, then gathered with a
// brightness-driven offset along X — and along Y too unless horizontal is
// set. Output channels follow the clut, saturated into [0,1].
//
// Decoding the clut from a file is the caller's job; see render.LoadCLUT.
func ColorMap(g, clut *grid.Grid, horizontal bool, displacement float32) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := clut.Validate(); err != nil {
		return nil, err
	}

	h, w := g.H, g.W

	ref := grid.ValueMap(g)
	for i := range ref.Data {
		ref.Data[i] *= displacement
	}

	xIdx := grid.RowIndex(h, w)
	yIdx := grid.ColumnIndex(h, w)
	for i := range xIdx {
		xIdx[i] = (xIdx[i] + int32(ref.Data[i]*float32(w-1))) % int32(w)
		if !horizontal {
			yIdx[i] = (yIdx[i] + int32(ref.Data[i]*float32(h-1))) % int32(h)
		}
	}

	palette, err := Resample(clut, h, w, SplineBicubic)
	if err != nil {
		return nil, err
	}

	out := grid.Gather(palette, &grid.Index{H: h, W: w, Y: yIdx, X: xIdx})
	return out.Clamp01(), nil
}
