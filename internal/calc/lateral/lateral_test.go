package lateral_test

import (
	"math"
	"testing"

	"Pylon/internal/calc/lateral"
	"Pylon/internal/pile"
	"Pylon/internal/soil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformLayer(t *testing.T, name string, soilType soil.SoilType, top, bot float64, props map[soil.Property]float64) *soil.Layer {
	t.Helper()
	layer, err := soil.NewLayer(name, soilType, top, bot)
	require.NoError(t, err)
	for prop, value := range props {
		for _, depth := range []float64{top, bot} {
			pt, err := soil.NewPoint(depth, value)
			require.NoError(t, err)
			layer.AddPoint(prop, pt)
		}
	}
	return layer
}

func clayProfile(t *testing.T, suKPa float64) *soil.Profile {
	t.Helper()
	layer := uniformLayer(t, "clay", soil.TypeClay, 0, 30, map[soil.Property]float64{
		soil.GammaPrime: 7,
		soil.Su:         suKPa,
	})
	return &soil.Profile{SiteName: "clay site", Layers: []*soil.Layer{layer}}
}

func sandProfile(t *testing.T) *soil.Profile {
	t.Helper()
	layer := uniformLayer(t, "sand", soil.TypeSand, 0, 30, map[soil.Property]float64{
		soil.GammaPrime: 9,
		soil.PhiPrime:   35,
	})
	layer.RelativeDensityPct = 70
	return &soil.Profile{SiteName: "sand site", Layers: []*soil.Layer{layer}}
}

func testPile(t *testing.T) *pile.Properties {
	t.Helper()
	p, err := pile.New(1.5, 0.05, 20, "steel", pile.DrivenPipeOpen)
	require.NoError(t, err)
	return p
}

func TestCCoefficients(t *testing.T) {
	c1, c2, c3 := lateral.CCoefficients(35)

	phiRad := 35 * math.Pi / 180
	kp := math.Pow(math.Tan(math.Pi/4+phiRad/2), 2)
	ka := math.Pow(math.Tan(math.Pi/4-phiRad/2), 2)

	assert.InDelta(t, kp, c1, 1e-12)
	assert.InDelta(t, (0.4+ka)*math.Tan(phiRad), c2, 1e-12)
	assert.InDelta(t, kp*math.Tan(phiRad), c3, 1e-12)
}

func TestMatlockSoftClayStaticShape(t *testing.T) {
	profile := clayProfile(t, 50)
	p := testPile(t)

	c := lateral.MatlockSoftClay(5, profile, p, lateral.Static)
	require.False(t, c.Empty())

	// Non-decreasing resistance, plateau at ultimate.
	for i := 1; i < len(c.Y); i++ {
		assert.GreaterOrEqual(t, c.Y[i], c.Y[i-1])
	}
	assert.Equal(t, c.Y[len(c.Y)-1], c.Y[len(c.Y)-2])

	// Displacements never exceed the 1 m cap.
	for _, y := range c.X {
		assert.LessOrEqual(t, y, 1.0)
	}
}

func TestMatlockRejectsStiffClay(t *testing.T) {
	profile := clayProfile(t, 150)
	p := testPile(t)

	c := lateral.MatlockSoftClay(5, profile, p, lateral.Static)
	assert.True(t, c.Empty())
}

func TestMatlockCyclicDegradesAboveTransition(t *testing.T) {
	profile := clayProfile(t, 50)
	p := testPile(t)

	static := lateral.MatlockSoftClay(2, profile, p, lateral.Static)
	cyclic := lateral.MatlockSoftClay(2, profile, p, lateral.Cyclic)
	require.False(t, static.Empty())
	require.False(t, cyclic.Empty())

	// Shallow cyclic curve saturates at 72% of ultimate.
	assert.InDelta(t, 0.72*static.MaxY(), cyclic.MaxY(), 1e-9)
}

func TestReeseStiffClayBoundsAndCyclicTruncation(t *testing.T) {
	profile := clayProfile(t, 200)
	p := testPile(t)

	static := lateral.ReeseStiffClay(5, profile, p, lateral.Static)
	require.False(t, static.Empty())

	// Ultimate resistance capped at 9*su*D; static curve reaches 95%.
	su, d := 200.0, p.DiameterM
	assert.LessOrEqual(t, static.MaxY(), 0.95*9*su*d+1e-9)

	cyclic := lateral.ReeseStiffClay(5, profile, p, lateral.Cyclic)
	require.False(t, cyclic.Empty())
	assert.InDelta(t, 0.5/0.95, cyclic.MaxY()/static.MaxY(), 1e-9)
}

func TestReeseRejectsSoftClay(t *testing.T) {
	// The stiff clay precondition is strict: su of exactly 100 is soft.
	profile := clayProfile(t, 100)
	p := testPile(t)

	assert.True(t, lateral.ReeseStiffClay(5, profile, p, lateral.Static).Empty())
	assert.False(t, lateral.MatlockSoftClay(5, profile, p, lateral.Static).Empty())
}

func TestSandPYHyperbolicShape(t *testing.T) {
	profile := sandProfile(t)
	p := testPile(t)

	c := lateral.SandPY(5, profile, p, lateral.Static)
	require.False(t, c.Empty())
	require.Len(t, c.X, 20)

	// tanh law: starts at zero, monotonically non-decreasing, bounded by
	// A*pu.
	assert.Equal(t, 0.0, c.Y[0])
	for i := 1; i < len(c.Y); i++ {
		assert.GreaterOrEqual(t, c.Y[i], c.Y[i-1])
	}
}

func TestSandPYCyclicReduction(t *testing.T) {
	profile := sandProfile(t)
	p := testPile(t)

	// Shallow depth: static A = 3 - 0.8*z/D well above the 0.9 floor.
	static := lateral.SandPY(1, profile, p, lateral.Static)
	cyclic := lateral.SandPY(1, profile, p, lateral.Cyclic)
	require.False(t, static.Empty())

	assert.Less(t, cyclic.MaxY(), static.MaxY())
}

func TestSandPYMissingFrictionAngle(t *testing.T) {
	layer := uniformLayer(t, "sand", soil.TypeSand, 0, 30, map[soil.Property]float64{
		soil.GammaPrime: 9,
	})
	profile := &soil.Profile{SiteName: "site", Layers: []*soil.Layer{layer}}
	p := testPile(t)

	assert.True(t, lateral.SandPY(5, profile, p, lateral.Static).Empty())
}

func TestTableRoutesByStrength(t *testing.T) {
	p := testPile(t)

	// su = 100 exactly: the soft clay generator governs at the boundary.
	soft := lateral.Table(clayProfile(t, 100), p, []float64{5}, lateral.Static)
	require.Len(t, soft, 1)
	assert.Equal(t, "clay", soft[0].Soil)

	stiff := lateral.Table(clayProfile(t, 150), p, []float64{5}, lateral.Static)
	require.Len(t, stiff, 1)

	sand := lateral.Table(sandProfile(t), p, []float64{5, 10}, lateral.Cyclic)
	require.Len(t, sand, 2)
	assert.Equal(t, "sand", sand[0].Soil)
}

func TestTableSkipsUncoveredDepths(t *testing.T) {
	p := testPile(t)
	rows := lateral.Table(clayProfile(t, 50), p, []float64{5, 50}, lateral.Static)
	// Depth 50 is below the profile: skipped, not an error.
	require.Len(t, rows, 1)
	assert.Equal(t, 5.0, rows[0].DepthM)
}
