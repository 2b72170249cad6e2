package export_test

import (
	"testing"

	"Pylon/internal/calc/analysis"
	"Pylon/internal/calc/export"
	"Pylon/internal/calc/lateral"
	"Pylon/internal/pile"
	"Pylon/internal/soil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkbook(t *testing.T) {
	layer, err := soil.NewLayer("dense sand", soil.TypeSand, 0, 20)
	require.NoError(t, err)
	layer.RelativeDensityPct = 70
	for _, depth := range []float64{0, 20} {
		g, err := soil.NewPoint(depth, 9)
		require.NoError(t, err)
		layer.AddPoint(soil.GammaPrime, g)
		phi, err := soil.NewPoint(depth, 35)
		require.NoError(t, err)
		layer.AddPoint(soil.PhiPrime, phi)
	}
	profile := &soil.Profile{SiteName: "site", Layers: []*soil.Layer{layer}}

	p, err := pile.New(1.5, 0.05, 15, "steel", pile.DrivenPipeOpen)
	require.NoError(t, err)

	bundle := analysis.Run(profile, p, analysis.Options{
		MaxDepthM: 20,
		Analysis:  lateral.Static,
	})

	f, err := export.Build(bundle)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{
		"Capacity Compression", "Capacity Tension", "t-z Curves", "Q-z Curve", "p-y Curves",
	}, sheets)

	rows, err := f.GetRows("Capacity Compression")
	require.NoError(t, err)
	// Header plus one row per swept depth.
	assert.Equal(t, len(bundle.CapacityCompression)+1, len(rows))
	assert.Equal(t, "Depth (m)", rows[0][0])

	qzRows, err := f.GetRows("Q-z Curve")
	require.NoError(t, err)
	require.Len(t, qzRows, 2)
}
