package effects

import (
	"bytes"
	"image"
	"image/jpeg"
	"math/rand"

	"github.com/tessellate/tessera/grid"
)

// JPEGDecimate degrades the grid with two successive lossy re-encodes at very
// low quality, the first in [10,15), the second in [0,5). The exact artifact
// pattern depends on the codec; only the degradation is the contract.
func JPEGDecimate(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	img := gridToRGBA(g)

	img, err := recompress(img, int(rng.Float64()*5+10))
	if err != nil {
		return nil, err
	}
	img, err = recompress(img, int(rng.Float64()*5))
	if err != nil {
		return nil, err
	}

	return rgbaToGrid(img, g.C), nil
}

func recompress(img *image.RGBA, quality int) (*image.RGBA, error) {
	if quality < 1 {
		quality = 1 // image/jpeg floor
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	decoded, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, err
	}

	b := decoded.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, decoded.At(x, y))
		}
	}
	return out, nil
}

func gridToRGBA(g *grid.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			px := g.Pixel(y, x)
			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				v := px[c%g.C]
				if v < 0 {
					v = 0
				} else if v > 1 {
					v = 1
				}
				img.Pix[i+c] = uint8(v*255 + .5)
			}
			img.Pix[i+3] = 255
		}
	}
	return img
}

func rgbaToGrid(img *image.RGBA, channels int) *grid.Grid {
	b := img.Bounds()
	out := &grid.Grid{H: b.Dy(), W: b.Dx(), C: channels, Data: make([]float32, b.Dy()*b.Dx()*channels)}
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			px := out.Pixel(y, x)
			for c := range px {
				px[c] = float32(img.Pix[i+c%3]) / 255
			}
		}
	}
	return out
}
