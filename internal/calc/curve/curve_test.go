package curve_test

import (
	"testing"

	"Pylon/internal/calc/curve"

	"github.com/stretchr/testify/assert"
)

func TestEmptyCurveDiscretizesToZeros(t *testing.T) {
	var empty curve.Curve

	tVals, zVals := curve.TZPoints(empty)
	assert.Equal(t, [5]float64{}, tVals)
	assert.Equal(t, [5]float64{}, zVals)

	qVals, zVals := curve.QZPoints(empty)
	assert.Equal(t, [5]float64{}, qVals)
	assert.Equal(t, [5]float64{}, zVals)

	pVals, yVals := curve.PYPoints(empty)
	assert.Equal(t, [4]float64{}, pVals)
	assert.Equal(t, [4]float64{}, yVals)
}

func TestDiscretizationEndpoints(t *testing.T) {
	// Rising curve with its single maximum at the last point.
	c := curve.Curve{
		X: []float64{0, 0.01, 0.02, 0.03, 0.04},
		Y: []float64{0, 250, 500, 750, 1000},
	}

	tVals, zVals := curve.TZPoints(c)

	// Ratio 0 maps to the first (zero) sample, ratio 1 to the exact last
	// sample, in converted units.
	assert.InDelta(t, 0.0, tVals[0], 1e-12)
	assert.InDelta(t, 0.0, zVals[0], 1e-12)
	assert.InDelta(t, 1.0, tVals[4], 1e-12)  // 1000 kPa -> 1 MN/m2
	assert.InDelta(t, 40.0, zVals[4], 1e-12) // 0.04 m -> 40 mm

	// Interior ratios pick the nearest samples.
	assert.InDelta(t, 0.25, tVals[1], 1e-12)
	assert.InDelta(t, 0.50, tVals[2], 1e-12)
	assert.InDelta(t, 0.75, tVals[3], 1e-12)
}

func TestDiscretizationNearestOnCoarseCurve(t *testing.T) {
	// Coarse curve: several targets snap to the same sample. Accepted
	// behaviour of nearest-sample selection, not an error.
	c := curve.Curve{
		X: []float64{0, 1},
		Y: []float64{0, 100},
	}

	pVals, yVals := curve.PYPoints(c)

	assert.Equal(t, 0.0, pVals[0])
	assert.Equal(t, 0.0, pVals[1]) // 33 is nearer to 0 than to 100
	assert.Equal(t, 100.0, pVals[2])
	assert.Equal(t, 100.0, pVals[3])
	assert.Equal(t, 1000.0, yVals[3])
}

func TestQZPointsUnits(t *testing.T) {
	c := curve.Curve{
		X: []float64{0, 0.05, 0.15},
		Y: []float64{0, 2500, 5000},
	}

	qVals, zVals := curve.QZPoints(c)

	assert.InDelta(t, 5.0, qVals[4], 1e-12)   // 5000 kN -> 5 MN
	assert.InDelta(t, 150.0, zVals[4], 1e-12) // 0.15 m -> 150 mm
}

func TestMaxY(t *testing.T) {
	c := curve.Curve{X: []float64{0, 1, 2}, Y: []float64{5, 20, 10}}
	assert.Equal(t, 20.0, c.MaxY())
	assert.Equal(t, 0.0, curve.Curve{}.MaxY())
}
