package transfer_test

import (
	"testing"

	"Pylon/internal/calc/axial"
	"Pylon/internal/calc/transfer"
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

func clayProfile(t *testing.T) *soil.Profile {
	t.Helper()
	layer := uniformLayer(t, "clay", soil.TypeClay, 0, 30, map[soil.Property]float64{
		soil.GammaPrime: 7,
		soil.Su:         50,
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

func testPile(t *testing.T, pileType pile.PileType) *pile.Properties {
	t.Helper()
	p, err := pile.New(1.5, 0.05, 20, "steel", pileType)
	require.NoError(t, err)
	return p
}

func TestTZClaySoftensToResidual(t *testing.T) {
	profile := clayProfile(t)
	p := testPile(t, pile.DrivenPipeOpen)

	c := transfer.TZClay(10, profile, p, false)
	require.False(t, c.Empty())
	require.Len(t, c.Y, 8)

	tMax := axial.ClayShaftFriction(10, profile, p, false)

	// Peak at one percent of diameter, residual at 80% of peak.
	assert.InDelta(t, tMax, c.MaxY(), 1e-9)
	assert.InDelta(t, 0.8*tMax, c.Y[len(c.Y)-1], 1e-9)
	assert.InDelta(t, 0.01*p.DiameterM, c.X[5], 1e-12)
}

func TestTZSandHoldsPeak(t *testing.T) {
	profile := sandProfile(t)
	p := testPile(t, pile.DrivenPipeOpen)

	c := transfer.TZSand(10, profile, p, false)
	require.False(t, c.Empty())
	require.Len(t, c.Y, 7)

	// No softening: the plateau keeps 100% of peak.
	assert.InDelta(t, c.MaxY(), c.Y[len(c.Y)-1], 1e-9)

	// Displacements are capped.
	for _, z := range c.X {
		assert.LessOrEqual(t, z, 0.5)
	}
}

func TestTZEmptyWhenNoFriction(t *testing.T) {
	// Clay profile with no strength data mobilizes nothing.
	layer := uniformLayer(t, "clay", soil.TypeClay, 0, 30, map[soil.Property]float64{
		soil.GammaPrime: 7,
	})
	profile := &soil.Profile{SiteName: "site", Layers: []*soil.Layer{layer}}
	p := testPile(t, pile.DrivenPipeOpen)

	assert.True(t, transfer.TZClay(10, profile, p, false).Empty())
}

func TestQZFullMobilizationAtTenthDiameter(t *testing.T) {
	profile := sandProfile(t)
	p := testPile(t, pile.DrivenPipeOpen)

	c := transfer.QZ(15, profile, p)
	require.False(t, c.Empty())

	q := axial.SandEndBearing(15, profile)
	assert.InDelta(t, q*p.AreaGrossM2, c.MaxY(), 1e-9)

	// Peak reached at a tenth of the diameter.
	assert.InDelta(t, 0.10*p.DiameterM, c.X[5], 1e-12)
}

func TestTZTablePairsCompressionAndTension(t *testing.T) {
	profile := clayProfile(t)
	p := testPile(t, pile.DrivenPipeOpen)

	rows := transfer.TZTable(profile, p, []float64{5, 10})
	require.Len(t, rows, 4)

	assert.Equal(t, "c", rows[0].Mode)
	assert.Equal(t, "t", rows[1].Mode)
	assert.Equal(t, 5.0, rows[0].DepthM)
	assert.Equal(t, 10.0, rows[2].DepthM)

	// Clay tension rows carry the reduced friction.
	assert.Less(t, rows[1].T[4], rows[0].T[4])
}

func TestQZTable(t *testing.T) {
	profile := sandProfile(t)

	open := testPile(t, pile.DrivenPipeOpen)
	rows := transfer.QZTable(profile, open, 15)
	require.Len(t, rows, 1)
	assert.Equal(t, 15.0, rows[0].DepthM)
	assert.Equal(t, "sand", rows[0].Soil)
	assert.Equal(t, 0, rows[0].Plugged)

	closed := testPile(t, pile.DrivenPipeClosed)
	rows = transfer.QZTable(profile, closed, 15)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Plugged)

	// Invalid tip depth yields an empty table, not an error.
	assert.Empty(t, transfer.QZTable(profile, open, 0))
	// A tip below the profile has no bearing layer.
	assert.Empty(t, transfer.QZTable(profile, open, 50))
}
