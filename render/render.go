// Package render converts grids to and from raster images: color-lookup
// decode, PNG export, and an optional preview window. It keeps all file and
// display concerns outside the numerical core.
package render

import (
	"fmt"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tessellate/tessera/grid"
)

// GridImage converts a grid to an 8-bit RGBA image, saturating samples into
// [0,1]. Single-channel grids replicate across RGB.
func GridImage(g *grid.Grid) *image.RGBA {
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
			if g.C >= 4 {
				a := px[3]
				if a < 0 {
					a = 0
				} else if a > 1 {
					a = 1
				}
				img.Pix[i+3] = uint8(a*255 + .5)
			} else {
				img.Pix[i+3] = 255
			}
		}
	}
	return img
}

// Export writes the grid to an image file; the format follows the path
// extension (png recommended).
func Export(g *grid.Grid, path string) error {
	if err := g.Validate(); err != nil {
		return err
	}
	img := rl.NewImageFromImage(GridImage(g))
	defer rl.UnloadImage(img)
	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("render: exporting %s failed", path)
	}
	return nil
}

// LoadCLUT decodes a color-lookup image into a 3-channel grid. Decode
// failures surface unchanged; nothing is retried.
func LoadCLUT(path string) (*grid.Grid, error) {
	img := rl.LoadImage(path)
	defer rl.UnloadImage(img)
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("render: decoding %s failed", path)
	}

	colors := rl.LoadImageColors(img)
	h, w := int(img.Height), int(img.Width)
	out := &grid.Grid{H: h, W: w, C: 3, Data: make([]float32, h*w*3)}
	for i, c := range colors {
		out.Data[i*3] = float32(c.R) / 255
		out.Data[i*3+1] = float32(c.G) / 255
		out.Data[i*3+2] = float32(c.B) / 255
	}
	return out, nil
}

// Preview opens a window showing the grid until the user closes it.
func Preview(g *grid.Grid, title string) {
	rl.InitWindow(int32(g.W), int32(g.H), title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	img := rl.NewImageFromImage(GridImage(g))
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexture(texture, 0, 0, rl.White)
		rl.EndDrawing()
	}
}
