package analysis_test

import (
	"testing"

	"Pylon/internal/calc/analysis"
	"Pylon/internal/calc/lateral"
	"Pylon/internal/calc/request"
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

// Single 20 m dense sand layer, 1.5 m open driven pipe embedded 15 m.
func denseSandScenario(t *testing.T) (*soil.Profile, *pile.Properties) {
	t.Helper()
	layer := uniformLayer(t, "dense sand", soil.TypeSand, 0, 20, map[soil.Property]float64{
		soil.GammaPrime: 9,
		soil.PhiPrime:   35,
	})
	layer.RelativeDensityPct = 70
	profile := &soil.Profile{SiteName: "sand site", Layers: []*soil.Layer{layer}}

	p, err := pile.New(1.5, 0.05, 15, "steel", pile.DrivenPipeOpen)
	require.NoError(t, err)
	return profile, p
}

func TestCompleteAnalysisDenseSand(t *testing.T) {
	profile, p := denseSandScenario(t)

	bundle := analysis.Run(profile, p, analysis.Options{
		MaxDepthM: 20,
		DZ:        0.5,
		Analysis:  lateral.Static,
	})

	require.NotEmpty(t, bundle.CapacityCompression)
	require.NotEmpty(t, bundle.CapacityTension)
	require.NotEmpty(t, bundle.TZTable)
	require.NotEmpty(t, bundle.QZTable)
	require.NotEmpty(t, bundle.PYTable)

	// Compression capacity strictly increases over the embedded length in
	// a uniform layer.
	var prev float64
	for _, row := range bundle.CapacityCompression {
		if row.DepthM == 0 || row.DepthM > 15 {
			continue
		}
		assert.Greater(t, row.TotalCapacityKN, prev,
			"capacity at %.1fm must exceed the row above", row.DepthM)
		prev = row.TotalCapacityKN
	}

	// Tension rows carry no end bearing.
	for _, row := range bundle.CapacityTension {
		assert.Equal(t, 0.0, row.EndBearingKPa)
	}

	// Q-z table sits at the embedded length, not the analysis depth.
	require.Len(t, bundle.QZTable, 1)
	assert.Equal(t, 15.0, bundle.QZTable[0].DepthM)
	assert.Equal(t, 0, bundle.QZTable[0].Plugged)

	// Default curve sampling: every 5 m from 5 up to (not including) 20.
	require.Len(t, bundle.PYTable, 3)
	assert.Equal(t, []float64{5, 10, 15},
		[]float64{bundle.PYTable[0].DepthM, bundle.PYTable[1].DepthM, bundle.PYTable[2].DepthM})
}

func TestCompleteAnalysisSoftClayLateral(t *testing.T) {
	layer := uniformLayer(t, "soft clay", soil.TypeClay, 0, 30, map[soil.Property]float64{
		soil.GammaPrime: 7,
		soil.Su:         50,
	})
	profile := &soil.Profile{SiteName: "clay site", Layers: []*soil.Layer{layer}}
	p, err := pile.New(1.5, 0.05, 20, "steel", pile.DrivenPipeOpen)
	require.NoError(t, err)

	bundle := analysis.Run(profile, p, analysis.Options{
		MaxDepthM: 25,
		PYDepthsM: []float64{5},
		Analysis:  lateral.Static,
	})

	// su = 50 routes through the soft clay generator.
	require.Len(t, bundle.PYTable, 1)
	row := bundle.PYTable[0]
	assert.Equal(t, "clay", row.Soil)

	// Discretized resistances non-decreasing up to the plateau.
	for i := 1; i < 4; i++ {
		assert.GreaterOrEqual(t, row.P[i], row.P[i-1])
	}
	assert.Greater(t, row.P[3], 0.0)
}

func TestUnfactoredRunForcesUnitFactor(t *testing.T) {
	profile, p := denseSandScenario(t)

	raw := analysis.Run(profile, p, analysis.Options{MaxDepthM: 15})
	factored := analysis.Run(profile, p, analysis.Options{MaxDepthM: 15, UseFactored: true})

	last := len(raw.CapacityCompression) - 1
	assert.Equal(t, 1.0, raw.CapacityCompression[last].ResistanceFactor)
	assert.Equal(t, 0.70, factored.CapacityCompression[last].ResistanceFactor)
	assert.InDelta(t, 0.70*raw.CapacityCompression[last].TotalCapacityKN,
		factored.CapacityCompression[last].TotalCapacityKN, 1e-6)
}

func TestRunInputValidation(t *testing.T) {
	input := analysis.Input{
		Profile: request.ProfileSpec{
			SiteName: "site",
			Layers: []request.LayerSpec{{
				Name:      "sand",
				SoilType:  "sand",
				DepthTopM: 0,
				DepthBotM: 20,
				GammaPrimeKNM3: []request.PointSpec{
					{DepthM: 0, Value: 9}, {DepthM: 20, Value: 9},
				},
				PhiPrimeDeg: []request.PointSpec{
					{DepthM: 0, Value: 35}, {DepthM: 20, Value: 35},
				},
			}},
		},
		Pile: request.PileSpec{
			DiameterM: 1.5, WallThicknessM: 0.05, LengthM: 15,
			PileType: "driven_pipe_open",
		},
		Options: analysis.Options{MaxDepthM: 20},
	}

	bundle, err := analysis.RunInput(input)
	require.NoError(t, err)
	assert.NotEmpty(t, bundle.CapacityCompression)

	bad := input
	bad.Pile.PileType = "submarine"
	_, err = analysis.RunInput(bad)
	require.Error(t, err)

	gapped := input
	gapped.Profile.Layers = append(gapped.Profile.Layers, request.LayerSpec{
		Name: "deep", SoilType: "clay", DepthTopM: 25, DepthBotM: 30,
	})
	_, err = analysis.RunInput(gapped)
	require.Error(t, err)
}
