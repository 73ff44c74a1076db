package effects

import (
	"math/rand"
	"testing"

	"github.com/tessellate/tessera/grid"
)

func randomGrid(t *testing.T, h, w, c int, seed int64) *grid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := grid.MustNew(h, w, c)
	for i := range g.Data {
		g.Data[i] = rng.Float32()
	}
	return g
}

func gridsClose(a, b *grid.Grid, tol float32) bool {
	if a.H != b.H || a.W != b.W || a.C != b.C {
		return false
	}
	for i := range a.Data {
		d := a.Data[i] - b.Data[i]
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// shift returns the grid translated toroidally by (dy, dx).
func shift(g *grid.Grid, dy, dx int) *grid.Grid {
	out := g.Like()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			copy(out.Pixel(y, x), g.Pixel(y+dy, x+dx))
		}
	}
	return out
}

func TestConvolveShape(t *testing.T) {
	kernels := []Kernel{
		KernelEmboss, KernelRand, KernelShadow, KernelEdges,
		KernelSharpen, KernelUnsharpMask, KernelInvert,
		KernelSobelX, KernelSobelY,
	}

	g := randomGrid(t, 10, 14, 3, 1)
	for _, k := range kernels {
		t.Run(k.String(), func(t *testing.T) {
			out, err := Convolve(k, g)
			if err != nil {
				t.Fatalf("Convolve(%v) failed: %v", k, err)
			}
			if out.H != g.H || out.W != g.W || out.C != g.C {
				t.Errorf("shape = %dx%dx%d, want %dx%dx%d", out.H, out.W, out.C, g.H, g.W, g.C)
			}
			min, max := grid.MinMax(out)
			if min < 0 || max > 1 {
				t.Errorf("output range [%v, %v] outside [0,1]", min, max)
			}
		})
	}
}

// Toroidal wraparound means convolution commutes with translation.
func TestConvolvePeriodic(t *testing.T) {
	g := randomGrid(t, 12, 12, 1, 2)

	out, err := Convolve(KernelSharpen, g)
	if err != nil {
		t.Fatal(err)
	}
	shiftedOut, err := Convolve(KernelSharpen, shift(g, 5, 3))
	if err != nil {
		t.Fatal(err)
	}

	if !gridsClose(shift(out, 5, 3), shiftedOut, 1e-5) {
		t.Error("convolution should commute with toroidal translation")
	}
}

// The invert kernel negates the image; after renormalization that is one
// minus the normalized input. The kernel is anchored at its top-left corner,
// so the lone center weight lands one pixel down and right of each output
// position and the result carries a (+1,+1) toroidal translation.
func TestConvolveInvert(t *testing.T) {
	g := randomGrid(t, 8, 8, 1, 3)

	out, err := Convolve(KernelInvert, g)
	if err != nil {
		t.Fatal(err)
	}

	norm := grid.Normalize(g)
	for i := range norm.Data {
		norm.Data[i] = 1 - norm.Data[i]
	}
	if !gridsClose(out, shift(norm, 1, 1), 1e-5) {
		t.Error("invert kernel should produce a translated 1 - normalize(input)")
	}
}

func TestConvolveUnknownKernel(t *testing.T) {
	g := randomGrid(t, 4, 4, 1, 4)
	if _, err := Convolve(Kernel(99), g); err == nil {
		t.Error("unknown kernel should fail")
	}
}

func TestParseKernel(t *testing.T) {
	k, err := ParseKernel("unsharp_mask")
	if err != nil || k != KernelUnsharpMask {
		t.Errorf("ParseKernel(unsharp_mask) = %v, %v", k, err)
	}
	if _, err := ParseKernel("gaussian"); err == nil {
		t.Error("unknown kernel name should fail")
	}
}

func TestRandKernelIsStable(t *testing.T) {
	a, _ := KernelRand.Weights()
	b := makeRandKernel()
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatal("rand kernel should be reproducible from its fixed seed")
			}
		}
	}
}
