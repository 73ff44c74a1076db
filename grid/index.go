package grid

import (
	"math/rand"
)

// Index is a per-pixel coordinate pair used by Gather. Y and X hold one
// entry per output pixel in row-major order; entries are interpreted modulo
// the source grid's spatial bounds.
type Index struct {
	H, W int
	Y, X []int32
}

// RowIndex returns a flat [h*w] field whose value at (y,x) is x.
func RowIndex(h, w int) []int32 {
	out := make([]int32, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = int32(x)
		}
	}
	return out
}

// ColumnIndex returns a flat [h*w] field whose value at (y,x) is y.
func ColumnIndex(h, w int) []int32 {
	out := make([]int32, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = int32(y)
		}
	}
	return out
}

// OffsetIndex combines Y and X index fields into a gather index, shifting the
// Y axis by a random amount in [h/2, h) and the X axis by a random amount in
// [0, w/2), both drawn once per call. Displacing the two axes away from each
// other keeps a shared scalar warp field from producing diagonal banding.
func OffsetIndex(yIdx []int32, h int, xIdx []int32, w int, rng *rand.Rand) *Index {
	yOff := int32(float64(h)*.5 + rng.Float64()*float64(h)*.5)
	xOff := int32(rng.Float64() * float64(w) * .5)

	idx := &Index{H: h, W: w, Y: make([]int32, len(yIdx)), X: make([]int32, len(xIdx))}
	for i := range yIdx {
		idx.Y[i] = (yIdx[i] + yOff) % int32(h)
		idx.X[i] = (xIdx[i] + xOff) % int32(w)
	}
	return idx
}

// Gather builds a new grid by sampling g at the coordinates in idx, one pixel
// per index entry, with toroidal wrapping.
func Gather(g *Grid, idx *Index) *Grid {
	out := &Grid{H: idx.H, W: idx.W, C: g.C, Data: make([]float32, idx.H*idx.W*g.C)}
	for i := range idx.Y {
		y := WrapInt(int(idx.Y[i]), g.H)
		x := WrapInt(int(idx.X[i]), g.W)
		copy(out.Data[i*g.C:(i+1)*g.C], g.Data[(y*g.W+x)*g.C:(y*g.W+x+1)*g.C])
	}
	return out
}
