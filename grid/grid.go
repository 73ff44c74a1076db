// Package grid provides the dense float32 image grid that every tessera
// transform consumes and produces. Spatial coordinates are toroidal: indices
// outside [0,H) or [0,W) wrap around.
package grid

import (
	"fmt"
)

// Grid is a dense [H, W, C] array of float32 samples stored row-major as a
// flat slice. Values are conventionally in [0,1] but not clamped except where
// a transform explicitly saturates.
type Grid struct {
	H, W, C int
	Data    []float32
}

// New allocates a zero-valued grid with the given shape.
func New(h, w, c int) (*Grid, error) {
	if h <= 0 || w <= 0 || c <= 0 {
		return nil, fmt.Errorf("grid: invalid shape %dx%dx%d", h, w, c)
	}
	return &Grid{H: h, W: w, C: c, Data: make([]float32, h*w*c)}, nil
}

// MustNew is like New but panics on an invalid shape. Intended for tests and
// compile-time-known shapes.
func MustNew(h, w, c int) *Grid {
	g, err := New(h, w, c)
	if err != nil {
		panic(err)
	}
	return g
}

// Validate reports whether the grid has a usable shape and backing slice.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("grid: nil grid")
	}
	if g.H <= 0 || g.W <= 0 || g.C <= 0 {
		return fmt.Errorf("grid: invalid shape %dx%dx%d", g.H, g.W, g.C)
	}
	if len(g.Data) != g.H*g.W*g.C {
		return fmt.Errorf("grid: data length %d does not match shape %dx%dx%d", len(g.Data), g.H, g.W, g.C)
	}
	return nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{H: g.H, W: g.W, C: g.C, Data: make([]float32, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// Like returns a zero grid with the same shape as g.
func (g *Grid) Like() *Grid {
	return &Grid{H: g.H, W: g.W, C: g.C, Data: make([]float32, len(g.Data))}
}

// At returns the sample at (y, x, c) with toroidal wrapping of y and x.
func (g *Grid) At(y, x, c int) float32 {
	return g.Data[(WrapInt(y, g.H)*g.W+WrapInt(x, g.W))*g.C+c]
}

// Set stores a sample at (y, x, c) with toroidal wrapping of y and x.
func (g *Grid) Set(y, x, c int, v float32) {
	g.Data[(WrapInt(y, g.H)*g.W+WrapInt(x, g.W))*g.C+c] = v
}

// Pixel returns the channel slice at (y, x), wrapped. The slice aliases the
// grid's backing storage.
func (g *Grid) Pixel(y, x int) []float32 {
	i := (WrapInt(y, g.H)*g.W + WrapInt(x, g.W)) * g.C
	return g.Data[i : i+g.C]
}

// Row returns the backing slice for row y (unwrapped; y must be in range).
func (g *Grid) Row(y int) []float32 {
	i := y * g.W * g.C
	return g.Data[i : i+g.W*g.C]
}

// Clamp01 saturates every sample into [0,1] in place and returns g.
func (g *Grid) Clamp01() *Grid {
	for i, v := range g.Data {
		if v < 0 {
			g.Data[i] = 0
		} else if v > 1 {
			g.Data[i] = 1
		}
	}
	return g
}

// WrapInt wraps i into [0,n) with floored modulo semantics.
func WrapInt(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// WrapFloat wraps v into [0,n) with floored modulo semantics.
func WrapFloat(v float32, n int) float32 {
	f := float32(n)
	for v < 0 {
		v += f
	}
	for v >= f {
		v -= f
	}
	return v
}
