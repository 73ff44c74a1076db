// Package worms implements the flow-field agent simulation: a swarm of
// "worms" walks a brightness-derived heading field, additively smearing each
// agent's starting color across the canvas. Agents live in an ECS world
// scoped to a single Simulate call.
package worms

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/tessellate/tessera/grid"
)

// Behavior selects the heading-bias distribution worms are born with.
type Behavior int

const (
	// Obedient worms follow the flow field exactly.
	Obedient Behavior = iota
	// Crosshatch worms are biased 0 or 90, per worm.
	Crosshatch
	// Unruly worms get a small normally distributed bias. This is the
	// default, and the fallback for unrecognized behavior values.
	Unruly
	// Chaotic worms get a large bias anywhere in [-360,360].
	Chaotic
)

var behaviorNames = map[string]Behavior{
	"obedient":   Obedient,
	"crosshatch": Crosshatch,
	"unruly":     Unruly,
	"chaotic":    Chaotic,
}

// ParseBehavior resolves a behavior name from configuration.
func ParseBehavior(s string) (Behavior, error) {
	b, ok := behaviorNames[s]
	if !ok {
		return 0, fmt.Errorf("worms: unknown behavior %q", s)
	}
	return b, nil
}

// Options are the simulation parameters.
type Options struct {
	Behavior        Behavior
	Density         float32 // worms per pixel of the longer axis
	Duration        float32 // iteration multiplier
	Stride          float32 // mean travel distance per iteration
	StrideDeviation float32 // per-worm stride deviation
	Background      float32 // brightness of the dimmed source under the trails
}

// DefaultOptions returns the conventional worm parameters.
func DefaultOptions() Options {
	return Options{
		Behavior:        Unruly,
		Density:         4,
		Duration:        4,
		Stride:          1,
		StrideDeviation: .05,
		Background:      .5,
	}
}

// Per-agent components.
type position struct {
	Y, X float32
}

type motion struct {
	Bias   float32
	Stride float32
}

type paint struct {
	Color []float32
}

// Simulate runs the worm walk over the grid and returns the accumulated
// canvas, saturated and normalized to [0,1].
func Simulate(g *grid.Grid, opts Options, rng *rand.Rand) (*grid.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if opts.Density < 0 || opts.Duration < 0 {
		return nil, fmt.Errorf("worms: negative density or duration")
	}

	h, w := g.H, g.W
	longer, shorter := h, w
	if w > h {
		longer, shorter = w, h
	}
	count := int(float32(longer) * opts.Density)
	iterations := int(math.Sqrt(float64(shorter)) * float64(opts.Duration))

	world := ecs.NewWorld()
	mapper := ecs.NewMap3[position, motion, paint](world)
	filter := ecs.NewFilter3[position, motion, paint](world)

	for i := 0; i < count; i++ {
		pos := position{
			Y: rng.Float32() * float32(h),
			X: rng.Float32() * float32(w),
		}
		mot := motion{
			Bias:   headingBias(opts.Behavior, rng),
			Stride: float32(rng.NormFloat64())*opts.StrideDeviation + opts.Stride,
		}
		color := make([]float32, g.C)
		copy(color, g.Pixel(int(pos.Y), int(pos.X)))
		mapper.NewEntity(&pos, &mot, &paint{Color: color})
	}

	// Static heading field: brightness drives direction, one full turn
	// across the value range.
	flow := grid.ValueMap(g)
	for i := range flow.Data {
		flow.Data[i] *= 360 * math.Pi / 180
	}

	canvas := g.Clone()
	for i := range canvas.Data {
		canvas.Data[i] *= opts.Background
	}

	// Iterations are strictly sequential: each step reads positions the
	// previous step wrote.
	for i := 0; i < iterations; i++ {
		exposure := float32(1)
		if iterations > 1 {
			exposure = 1 - abs32(1-float32(i)/float32(iterations-1)*2)
		}

		query := filter.Query()
		for query.Next() {
			pos, mot, pnt := query.Get()

			cell := canvas.Pixel(int(pos.Y), int(pos.X))
			for c := range cell {
				cell[c] += pnt.Color[c] * exposure
			}

			heading := flow.Data[int(pos.Y)*w+int(pos.X)] + mot.Bias
			pos.Y = grid.WrapFloat(pos.Y+float32(math.Cos(float64(heading)))*mot.Stride, h)
			pos.X = grid.WrapFloat(pos.X+float32(math.Sin(float64(heading)))*mot.Stride, w)
		}
	}

	return grid.Normalize(canvas.Clamp01()), nil
}

// headingBias draws one worm's fixed bias for the given behavior. Unknown
// behaviors deliberately fall back to the unruly distribution.
func headingBias(b Behavior, rng *rand.Rand) float32 {
	switch b {
	case Obedient:
		return 0
	case Crosshatch:
		m := math.Mod(math.Floor(rng.NormFloat64()*100), 2)
		if m < 0 {
			m += 2
		}
		return float32(m) * 90
	case Chaotic:
		return float32(rng.NormFloat64()) * 360
	default:
		return float32(rng.NormFloat64())
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
