// Package analysis orchestrates a complete pile design run: axial capacity
// profiles in both loading directions plus the t-z, Q-z and p-y design
// tables, packaged as one bundle.
package analysis

import (
	"Pylon/internal/calc/axial"
	"Pylon/internal/calc/lateral"
	"Pylon/internal/calc/transfer"
	"Pylon/internal/pile"
	"Pylon/internal/soil"
)

// Options controls one analysis run. Zero-valued fields take the defaults:
// dz 0.5 m, curve depths every 5 m from 5 up to (not including) MaxDepthM,
// static analysis.
type Options struct {
	MaxDepthM   float64              `json:"max_depth_m"`
	DZ          float64              `json:"dz_m"`
	TZDepthsM   []float64            `json:"tz_depths_m,omitempty"`
	PYDepthsM   []float64            `json:"py_depths_m,omitempty"`
	Analysis    lateral.AnalysisType `json:"analysis_type"`
	UseFactored bool                 `json:"use_factored"`
}

// Bundle carries every table of a complete analysis.
type Bundle struct {
	CapacityCompression []axial.ProfileRow `json:"capacity_compression"`
	CapacityTension     []axial.ProfileRow `json:"capacity_tension"`
	TZTable             []transfer.TZRow   `json:"tz_table"`
	QZTable             []transfer.QZRow   `json:"qz_table"`
	PYTable             []lateral.Row      `json:"py_table"`
}

func defaultCurveDepths(maxDepthM float64) []float64 {
	var depths []float64
	for z := 5.0; z < maxDepthM; z += 5.0 {
		depths = append(depths, z)
	}
	return depths
}

// Run executes a complete analysis. The Q-z table is generated at the
// pile's embedded length when set, otherwise at the maximum analysis depth.
func Run(profile *soil.Profile, p *pile.Properties, opts Options) Bundle {
	if opts.DZ <= 0 {
		opts.DZ = 0.5
	}
	if opts.Analysis == "" {
		opts.Analysis = lateral.Static
	}

	// Unfactored runs force a unit resistance factor.
	var factor *float64
	if !opts.UseFactored {
		one := 1.0
		factor = &one
	}

	tzDepths := opts.TZDepthsM
	if tzDepths == nil {
		tzDepths = defaultCurveDepths(opts.MaxDepthM)
	}
	pyDepths := opts.PYDepthsM
	if pyDepths == nil {
		pyDepths = defaultCurveDepths(opts.MaxDepthM)
	}

	tipDepth := p.LengthM
	if tipDepth <= 0 {
		tipDepth = opts.MaxDepthM
	}

	return Bundle{
		CapacityCompression: axial.CapacityProfile(profile, p, opts.MaxDepthM, opts.DZ, axial.Compression, factor),
		CapacityTension:     axial.CapacityProfile(profile, p, opts.MaxDepthM, opts.DZ, axial.Tension, factor),
		TZTable:             transfer.TZTable(profile, p, tzDepths),
		QZTable:             transfer.QZTable(profile, p, tipDepth),
		PYTable:             lateral.Table(profile, p, pyDepths, opts.Analysis),
	}
}
