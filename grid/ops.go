package grid

import (
	"gonum.org/v1/gonum/blas/blas32"
)

// MinMax returns the smallest and largest sample in the grid.
func MinMax(g *Grid) (min, max float32) {
	min, max = g.Data[0], g.Data[0]
	for _, v := range g.Data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Normalize linearly rescales the grid so its minimum maps to 0 and its
// maximum to 1. A constant-valued grid comes back as all zeros instead of
// dividing by zero.
func Normalize(g *Grid) *Grid {
	min, max := MinMax(g)
	out := g.Like()
	if max == min {
		return out
	}
	inv := 1 / (max - min)
	for i, v := range g.Data {
		out.Data[i] = (v - min) * inv
	}
	return out
}

// ValueMap reduces the grid to a single-channel brightness field: sum across
// the channel axis, then normalize.
func ValueMap(g *Grid) *Grid {
	out := &Grid{H: g.H, W: g.W, C: 1, Data: make([]float32, g.H*g.W)}
	if g.C == 1 {
		copy(out.Data, g.Data)
	} else {
		for i := 0; i < g.H*g.W; i++ {
			var sum float32
			px := g.Data[i*g.C : (i+1)*g.C]
			for _, v := range px {
				sum += v
			}
			out.Data[i] = sum
		}
	}
	return Normalize(out)
}

// Blend mixes two same-shape grids with a scalar weight: a*(1-t) + b*t.
func Blend(a, b *Grid, t float32) *Grid {
	out := a.Clone()
	va := blas32.Vector{N: len(out.Data), Inc: 1, Data: out.Data}
	vb := blas32.Vector{N: len(b.Data), Inc: 1, Data: b.Data}
	blas32.Scal(1-t, va)
	blas32.Axpy(t, vb, va)
	return out
}

// BlendMap mixes two same-shape grids with a per-pixel weight grid. A
// single-channel mask broadcasts across channels.
func BlendMap(a, b, mask *Grid) *Grid {
	out := a.Like()
	for i := range out.Data {
		var m float32
		if mask.C == 1 && a.C != 1 {
			m = mask.Data[i/a.C]
		} else {
			m = mask.Data[i]
		}
		out.Data[i] = a.Data[i]*(1-m) + b.Data[i]*m
	}
	return out
}
