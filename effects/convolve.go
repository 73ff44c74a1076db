package effects

import (
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/tessellate/tessera/grid"
)

// Convolve applies a catalog kernel to the grid depth-wise (each channel
// independently) with toroidal edges, then renormalizes to [0,1]. The edges
// kernel additionally folds its signed residual into a magnitude map.
func Convolve(k Kernel, g *grid.Grid) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	weights, err := k.Weights()
	if err != nil {
		return nil, err
	}

	n := len(weights)
	h, w, c := g.H, g.W, g.C
	rowLen := w * c
	out := g.Like()

	forEachRowChunk(h, func(y0, y1 int) {
		// One wrap-padded source row per kernel row, reused down the chunk.
		padded := make([][]float32, n)
		for i := range padded {
			padded[i] = make([]float32, (w+n-1)*c)
		}

		for y := y0; y < y1; y++ {
			for i := 0; i < n; i++ {
				src := g.Row(grid.WrapInt(y+i, h))
				copy(padded[i], src)
				copy(padded[i][rowLen:], src[:(n-1)*c])
			}

			dst := blas32.Vector{N: rowLen, Inc: 1, Data: out.Row(y)}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					wij := weights[i][j]
					if wij == 0 {
						continue
					}
					src := blas32.Vector{N: rowLen, Inc: 1, Data: padded[i][j*c : j*c+rowLen]}
					blas32.Axpy(wij, src, dst)
				}
			}
		}
	})

	out = grid.Normalize(out)

	if k == KernelEdges {
		for i, v := range out.Data {
			d := v - .5
			if d < 0 {
				d = -d
			}
			out.Data[i] = d * 2
		}
	}

	return out, nil
}
