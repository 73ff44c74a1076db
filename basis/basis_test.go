package basis

import (
	"testing"

	"github.com/tessellate/tessera/grid"
)

func TestFBMShapeAndRange(t *testing.T) {
	g, err := FBM(32, 48, 3, DefaultParams(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.H != 32 || g.W != 48 || g.C != 3 {
		t.Fatalf("shape = %dx%dx%d, want 32x48x3", g.H, g.W, g.C)
	}
	min, max := grid.MinMax(g)
	if min != 0 || max != 1 {
		t.Errorf("normalized range [%v, %v], want [0, 1]", min, max)
	}
}

func TestFBMDeterministic(t *testing.T) {
	a, err := FBM(16, 16, 1, DefaultParams(), 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FBM(16, 16, 1, DefaultParams(), 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatal("same seed should reproduce the same field")
		}
	}

	c, err := FBM(16, 16, 1, DefaultParams(), 43)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a.Data {
		if a.Data[i] != c.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different fields")
	}
}

func TestFBMChannelsDiffer(t *testing.T) {
	g, err := FBM(16, 16, 2, DefaultParams(), 7)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := 0; i < 16*16; i++ {
		if g.Data[i*2] != g.Data[i*2+1] {
			same = false
			break
		}
	}
	if same {
		t.Error("channels should use distinct seeds")
	}
}

func TestFBMInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.Octaves = 0
	if _, err := FBM(8, 8, 1, p, 1); err == nil {
		t.Error("zero octaves should fail")
	}
	if _, err := FBM(0, 8, 1, DefaultParams(), 1); err == nil {
		t.Error("invalid shape should fail")
	}
}
