// Package points generates recursive fractal point distributions. The point
// sets seed external noise generators (Voronoi cells, DLA growth); nothing in
// this package consumes them.
package points

import (
	"fmt"
	"math"
	"math/rand"
)

// Distribution names a point placement strategy.
type Distribution int

const (
	Random Distribution = iota
	Square
	Waffle
	Chess
	HHex
	VHex
	Spiral
	Circular
	Concentric
)

var distributionNames = map[string]Distribution{
	"random":     Random,
	"square":     Square,
	"waffle":     Waffle,
	"chess":      Chess,
	"h_hex":      HHex,
	"v_hex":      VHex,
	"spiral":     Spiral,
	"circular":   Circular,
	"concentric": Concentric,
}

// ParseDistribution resolves a distribution name from configuration.
func ParseDistribution(s string) (Distribution, error) {
	d, ok := distributionNames[s]
	if !ok {
		return 0, fmt.Errorf("points: unknown distribution %q", s)
	}
	return d, nil
}

func (d Distribution) String() string {
	for name, v := range distributionNames {
		if v == d {
			return name
		}
	}
	return fmt.Sprintf("Distribution(%d)", int(d))
}

// isGrid reports whether d is one of the lattice layouts.
func (d Distribution) isGrid() bool {
	switch d {
	case Square, Waffle, Chess, HHex, VHex:
		return true
	}
	return false
}

// isCircular reports whether d is one of the radial layouts.
func (d Distribution) isCircular() bool {
	return d == Circular || d == Concentric
}

// Set is an ordered point cloud. X and Y are equal-length coordinate lists;
// consumers must not read meaning into the order.
type Set struct {
	X, Y []float64
}

// Len returns the number of points.
func (s *Set) Len() int { return len(s.X) }

// Options parameterizes Cloud.
type Options struct {
	Freq         int
	Distribution Distribution
	// Height and Width give the pixel shape. When both are zero the cloud
	// covers the unit square and points are not snapped to integers.
	Height, Width int
	Center        bool
	Generations   int
}

// frontierPoint is a parent point awaiting recursive expansion.
type frontierPoint struct {
	x, y       float64
	generation int
}

// Cloud produces a recursively refined point arrangement. Each generation
// re-applies the distribution around every point of the previous one, with
// the placement range shrinking as 1/max(2(g-1),1). The expansion frontier
// is a FIFO queue, so output order is deterministic for a given rng.
func Cloud(opts Options, rng *rand.Rand) (*Set, error) {
	if opts.Freq <= 0 {
		return nil, fmt.Errorf("points: freq must be positive, got %d", opts.Freq)
	}
	if (opts.Height > 0) != (opts.Width > 0) {
		return nil, fmt.Errorf("points: invalid shape %dx%d", opts.Height, opts.Width)
	}
	if _, ok := distributionNames[opts.Distribution.String()]; !ok {
		return nil, fmt.Errorf("points: unknown distribution %v", opts.Distribution)
	}

	width, height := 1.0, 1.0
	snap := false
	if opts.Width > 0 {
		width = float64(opts.Width)
		height = float64(opts.Height)
		snap = true
	}

	rangeX := width * .5
	rangeY := height * .5

	out := &Set{}
	seen := make(map[[2]int]bool)

	var frontier []frontierPoint
	if opts.Distribution.isGrid() {
		frontier = append(frontier, frontierPoint{0, 0, 1})
	} else {
		frontier = append(frontier, frontierPoint{rangeX, rangeY, 1})
	}

	for len(frontier) > 0 {
		parent := frontier[0]
		frontier = frontier[1:]

		if parent.generation > opts.Generations {
			continue
		}
		multiplier := float64(2 * (parent.generation - 1))
		if multiplier < 1 {
			multiplier = 1
		}

		p := placement{
			freq:    opts.Freq,
			distrib: opts.Distribution,
			center:  opts.Center,
			cx:      parent.x,
			cy:      parent.y,
			rangeX:  rangeX / multiplier,
			rangeY:  rangeY / multiplier,
			width:   width,
			height:  height,
		}

		var xs, ys []float64
		switch {
		case opts.Distribution.isGrid():
			xs, ys = p.squareGrid()
		case opts.Distribution == Spiral:
			xs, ys = p.spiral(rng)
		case opts.Distribution.isCircular():
			xs, ys = p.circular()
		default:
			xs, ys = p.rand(rng)
		}

		for i := range xs {
			x, y := xs[i], ys[i]

			if snap {
				x = math.Trunc(x)
				y = math.Trunc(y)
				key := [2]int{int(x), int(y)}
				if seen[key] {
					continue
				}
				seen[key] = true
			}

			frontier = append(frontier, frontierPoint{x, y, parent.generation + 1})
			out.X = append(out.X, x)
			out.Y = append(out.Y, y)
		}
	}

	return out, nil
}

// placement carries one expansion step's scaled parameters.
type placement struct {
	freq          int
	distrib       Distribution
	center        bool
	cx, cy        float64
	rangeX        float64
	rangeY        float64
	width, height float64
}

func (p placement) rand(rng *rand.Rand) (xs, ys []float64) {
	for i := 0; i < p.freq*p.freq; i++ {
		xs = append(xs, wrap(p.cx+rng.Float64()*(p.rangeX*2)-p.rangeX, p.width))
		ys = append(ys, wrap(p.cy+rng.Float64()*(p.rangeY*2)-p.rangeY, p.height))
	}
	return xs, ys
}

func (p placement) squareGrid() (xs, ys []float64) {
	freq := float64(p.freq)

	// Keep a node in the center of the image, or pin to corner, depending
	// on lattice parity.
	driftAmount := .5 / freq
	var drift float64
	if (p.freq*p.freq)%2 == 0 {
		if !p.center {
			drift = driftAmount
		}
	} else {
		if p.center {
			drift = driftAmount
		}
	}

	for a := 0; a < p.freq; a++ {
		for b := 0; b < p.freq; b++ {
			if p.distrib == Waffle && b%2 == 0 && a%2 == 0 {
				continue
			}
			if p.distrib == Chess && a%2 == b%2 {
				continue
			}

			var xDrift, yDrift float64
			if p.distrib == HHex && b%2 == 1 {
				xDrift = driftAmount
			}
			if p.distrib == VHex && a%2 == 0 {
				yDrift = driftAmount
			}

			xs = append(xs, wrap(p.cx+(float64(a)/freq+drift+xDrift)*p.rangeX*2, p.width))
			ys = append(ys, wrap(p.cy+(float64(b)/freq+drift+yDrift)*p.rangeY*2, p.height))
		}
	}
	return xs, ys
}

func (p placement) spiral(rng *rand.Rand) (xs, ys []float64) {
	// Random kink multiplier distorting the angular rate, drawn once per
	// expansion.
	kink := rng.Float64()*100 - 50

	count := p.freq * p.freq
	for i := 0; i < count; i++ {
		fract := float64(i) / float64(count)
		rads := fract * 360 * (math.Pi / 180) * kink

		xs = append(xs, wrap(p.cx+math.Sin(rads)*fract*p.rangeX, p.width))
		ys = append(ys, wrap(p.cy+math.Cos(rads)*fract*p.rangeY, p.height))
	}
	return xs, ys
}

func (p placement) circular() (xs, ys []float64) {
	ringCount := p.freq
	dotCount := p.freq

	xs = append(xs, p.cx)
	ys = append(ys, p.cy)

	rotation := (1 / float64(dotCount)) * 360 * (math.Pi / 180)

	for i := 1; i <= ringCount; i++ {
		distFract := float64(i) / float64(ringCount)

		for j := 1; j <= dotCount; j++ {
			rads := float64(j) * rotation

			// Rotating each ring by half the dot spacing breaks the
			// radial alignment that concentric keeps.
			if p.distrib == Circular {
				rads += rotation * .5 * float64(i)
			}

			xs = append(xs, wrap(p.cx+math.Sin(rads)*distFract*p.rangeX, p.width))
			ys = append(ys, wrap(p.cy+math.Cos(rads)*distFract*p.rangeY, p.height))
		}
	}
	return xs, ys
}

// wrap folds v into [0,bound) with floored modulo semantics. Adding the bound
// to a tiny negative remainder can round back up to the bound itself, so the
// upper edge is re-checked after each correction.
func wrap(v, bound float64) float64 {
	v = math.Mod(v, bound)
	for v < 0 {
		v += bound
	}
	for v >= bound {
		v -= bound
	}
	return v
}
