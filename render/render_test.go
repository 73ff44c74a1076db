package render

import (
	"testing"

	"github.com/tessellate/tessera/grid"
)

func TestGridImageRGB(t *testing.T) {
	g := grid.MustNew(2, 2, 3)
	g.Set(0, 0, 0, 1) // red pixel
	g.Set(1, 1, 2, 1) // blue pixel

	img := GridImage(g)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", img.Bounds())
	}

	r, _, _, a := img.At(0, 0).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("red pixel = %v", img.At(0, 0))
	}
	_, _, b, _ := img.At(1, 1).RGBA()
	if b != 0xffff {
		t.Errorf("blue pixel = %v", img.At(1, 1))
	}
}

func TestGridImageReplicatesGray(t *testing.T) {
	g := grid.MustNew(1, 1, 1)
	g.Set(0, 0, 0, .5)

	img := GridImage(g)
	r, gg, b, _ := img.At(0, 0).RGBA()
	if r != gg || gg != b {
		t.Errorf("gray pixel should replicate across RGB, got %v", img.At(0, 0))
	}
}

func TestGridImageSaturates(t *testing.T) {
	g := grid.MustNew(1, 2, 1)
	g.Set(0, 0, 0, -3)
	g.Set(0, 1, 0, 7)

	img := GridImage(g)
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Errorf("negative sample should clamp to black, got %v", img.At(0, 0))
	}
	if r, _, _, _ := img.At(1, 0).RGBA(); r != 0xffff {
		t.Errorf("overrange sample should clamp to white, got %v", img.At(1, 0))
	}
}
