// Package curve reduces continuous soil resistance curves to the fixed
// small point sets used in industry-standard design tables.
package curve

import "math"

// Curve is a continuous resistance curve: X is displacement in metres, Y is
// resistance in the generator's working units. Both slices share one length.
type Curve struct {
	X []float64
	Y []float64
}

func (c Curve) Empty() bool {
	return len(c.X) == 0
}

// MaxY returns the largest resistance ordinate, or 0 for an empty curve.
func (c Curve) MaxY() float64 {
	max := 0.0
	for i, v := range c.Y {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

// nearestIndex finds the first sample whose ordinate is closest to target.
// On a coarse source curve this can select non-monotonic or duplicate
// points; that is the accepted behaviour of nearest-sample discretization.
func nearestIndex(ys []float64, target float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, v := range ys {
		d := math.Abs(v - target)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

var (
	fiveRatios = []float64{0.0, 0.25, 0.50, 0.75, 1.0}
	fourRatios = []float64{0.0, 0.33, 0.67, 1.0}
)

// TZPoints discretizes a t-z curve to the 5-point design format.
// Resistance converts from kPa to MN/m2, displacement from m to mm.
// An empty curve yields all zeros.
func TZPoints(c Curve) (t [5]float64, z [5]float64) {
	if c.Empty() {
		return t, z
	}
	max := c.MaxY()
	for i, ratio := range fiveRatios {
		idx := nearestIndex(c.Y, ratio*max)
		t[i] = c.Y[idx] / 1000.0
		z[i] = c.X[idx] * 1000.0
	}
	return t, z
}

// QZPoints discretizes a Q-z curve to the 5-point design format.
// Resistance converts from kN to MN, displacement from m to mm.
func QZPoints(c Curve) (q [5]float64, z [5]float64) {
	if c.Empty() {
		return q, z
	}
	max := c.MaxY()
	for i, ratio := range fiveRatios {
		idx := nearestIndex(c.Y, ratio*max)
		q[i] = c.Y[idx] / 1000.0
		z[i] = c.X[idx] * 1000.0
	}
	return q, z
}

// PYPoints discretizes a p-y curve to the 4-point design format.
// Resistance stays in kN/m, displacement converts from m to mm.
func PYPoints(c Curve) (p [4]float64, y [4]float64) {
	if c.Empty() {
		return p, y
	}
	max := c.MaxY()
	for i, ratio := range fourRatios {
		idx := nearestIndex(c.Y, ratio*max)
		p[i] = c.Y[idx]
		y[i] = c.X[idx] * 1000.0
	}
	return p, y
}
