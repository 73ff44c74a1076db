package effects

import (
	"math"
	"math/rand"

	"github.com/tessellate/tessera/grid"
)

// Reindex recolors the grid by gathering along its own diagonal at a rate
// driven by per-pixel brightness. The same scalar offset drives both axes,
// which produces the effect's characteristic self-similar banding.
func Reindex(g *grid.Grid, displacement float32) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	ref := grid.ValueMap(g)
	mod := g.H
	if g.W < mod {
		mod = g.W
	}

	offset := make([]int32, len(ref.Data))
	for i, v := range ref.Data {
		offset[i] = int32(math.Mod(float64(v)*float64(displacement)*float64(mod)+float64(v), float64(mod)))
	}

	return grid.Gather(g, &grid.Index{H: g.H, W: g.W, Y: offset, X: offset}), nil
}

// Refract displaces each pixel along both axes by an amount proportional to
// local brightness (a self-driven domain warp). The Y warp field is the X
// field read through a decorrelating offset so the two axes do not band
// diagonally. Wraparound is toroidal.
func Refract(g *grid.Grid, displacement float32, rng *rand.Rand) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	h, w := g.H, g.W

	refX := grid.ValueMap(g)
	for i := range refX.Data {
		refX.Data[i] *= displacement
	}

	xIdx := grid.RowIndex(h, w)
	yIdx := grid.ColumnIndex(h, w)

	refY := grid.Gather(refX, grid.OffsetIndex(yIdx, h, xIdx, w, rng))

	warpY := make([]int32, len(yIdx))
	warpX := make([]int32, len(xIdx))
	for i := range yIdx {
		warpY[i] = yIdx[i] + int32(refY.Data[i]*float32(h))
		warpX[i] = xIdx[i] + int32(refX.Data[i]*float32(w))
	}

	return grid.Gather(g, grid.OffsetIndex(warpY, h, warpX, w, rng)), nil
}
