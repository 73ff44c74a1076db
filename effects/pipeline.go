package effects

import (
	"math/rand"

	"github.com/tessellate/tessera/grid"
	"github.com/tessellate/tessera/worms"
)

// Options selects and parameterizes the post-processing stages. Zero ranges
// and false flags disable their stages.
type Options struct {
	RefractRange float32
	ReindexRange float32

	// CLUT is a decoded color-lookup image, or nil. Decoding from a file
	// is a collaborator's job (see render.LoadCLUT).
	CLUT           *grid.Grid
	CLUTHorizontal bool
	CLUTRange      float32

	WithWorms bool
	Worms     worms.Options

	WithSobel     bool
	WithNormalMap bool
	Deriv         bool
}

// PostProcess applies the configured effects in a fixed order: refract,
// reindex, color map (or plain normalize), worms, derivative, sobel, normal
// map.
func PostProcess(g *grid.Grid, opts Options, rng *rand.Rand) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	var err error

	if opts.RefractRange != 0 {
		if g, err = Refract(g, opts.RefractRange, rng); err != nil {
			return nil, err
		}
	}

	if opts.ReindexRange != 0 {
		if g, err = Reindex(g, opts.ReindexRange); err != nil {
			return nil, err
		}
	}

	if opts.CLUT != nil {
		if g, err = ColorMap(g, opts.CLUT, opts.CLUTHorizontal, opts.CLUTRange); err != nil {
			return nil, err
		}
	} else {
		g = grid.Normalize(g)
	}

	if opts.WithWorms {
		if g, err = worms.Simulate(g, opts.Worms, rng); err != nil {
			return nil, err
		}
	}

	if opts.Deriv {
		if g, err = Derivative(g); err != nil {
			return nil, err
		}
	}

	if opts.WithSobel {
		if g, err = Sobel(g); err != nil {
			return nil, err
		}
	}

	if opts.WithNormalMap {
		if g, err = NormalMap(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}
