package points

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Centroid returns the mean point of the set.
func (s *Set) Centroid() (x, y float64) {
	if s.Len() == 0 {
		return 0, 0
	}
	return stat.Mean(s.X, nil), stat.Mean(s.Y, nil)
}

// Spread returns the mean and standard deviation of point distances from the
// centroid. A lattice has low deviation; a random cloud does not.
func (s *Set) Spread() (mean, stddev float64) {
	if s.Len() == 0 {
		return 0, 0
	}
	cx, cy := s.Centroid()
	dists := make([]float64, s.Len())
	for i := range dists {
		dx := s.X[i] - cx
		dy := s.Y[i] - cy
		dists[i] = math.Hypot(dx, dy)
	}
	if len(dists) < 2 {
		return dists[0], 0
	}
	return stat.Mean(dists, nil), stat.StdDev(dists, nil)
}
