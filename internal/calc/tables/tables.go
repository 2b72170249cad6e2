// Package tables holds the constant design lookup tables shared by the
// axial and load-transfer calculators: the shaft friction / end bearing
// parameter table for siliceous soils, LRFD resistance factors, and
// carbonate soil reduction factors. All tables are read-only.
package tables

import (
	"Pylon/internal/pile"
	"Pylon/internal/soil"
)

// DesignParams is one row of the cohesionless design parameter table.
type DesignParams struct {
	Beta             float64 // shaft friction coefficient
	FrictionLimitKPa float64 // limiting unit shaft friction
	Nq               float64 // end bearing factor
	BearingLimitMPa  float64 // limiting unit end bearing
}

type paramKey struct {
	density  soil.RelativeDensity
	soilDesc soil.SoilType
}

// Combinations weaker than medium-dense sand-silt carry no tabulated values;
// callers fall back to conservative closed-form estimates for those.
var designTable = map[paramKey]DesignParams{
	{soil.MediumDense, soil.TypeSandSilt}: {Beta: 0.29, FrictionLimitKPa: 67, Nq: 12, BearingLimitMPa: 3.0},
	{soil.Dense, soil.TypeSandSilt}:       {Beta: 0.37, FrictionLimitKPa: 81, Nq: 20, BearingLimitMPa: 5.0},
	{soil.Dense, soil.TypeSand}:           {Beta: 0.46, FrictionLimitKPa: 96, Nq: 40, BearingLimitMPa: 10.0},
	{soil.VeryDense, soil.TypeSand}:       {Beta: 0.58, FrictionLimitKPa: 115, Nq: 50, BearingLimitMPa: 12.0},
	{soil.MediumDense, soil.TypeSilt}:     {},
	{soil.MediumDense, soil.TypeSand}:     {},
	{soil.Loose, soil.TypeSand}:           {},
	{soil.Loose, soil.TypeSandSilt}:       {},
	{soil.VeryLoose, soil.TypeSand}:       {},
}

// DesignParamsFor looks up the design parameters for a density band and soil
// description. The second result is false when the combination has no
// tabulated values and a fallback estimate must be used instead.
func DesignParamsFor(density soil.RelativeDensity, soilDesc soil.SoilType) (DesignParams, bool) {
	p, ok := designTable[paramKey{density, soilDesc}]
	if !ok || p.Beta == 0 {
		return DesignParams{}, false
	}
	return p, true
}

// LRFD resistance factors by installation method and loading direction.
const (
	factorCompressionDriven  = 0.70
	factorCompressionDrilled = 0.55
	factorTensionDriven      = 0.60
	factorTensionDrilled     = 0.50

	FactorLateral    = 0.65
	FactorEndBearing = 0.60
)

// ResistanceFactor selects the axial LRFD resistance factor for a pile
// installation method and loading direction.
func ResistanceFactor(pileType pile.PileType, tension bool) float64 {
	if pileType.Driven() {
		if tension {
			return factorTensionDriven
		}
		return factorCompressionDriven
	}
	if tension {
		return factorTensionDrilled
	}
	return factorCompressionDrilled
}

// Carbonate content band boundaries, percent.
const (
	lowCarbonatePct  = 30.0
	highCarbonatePct = 70.0
)

// CarbonateReduction returns the shaft friction multiplier for carbonate
// soils. Driven piles degrade with carbonate content unless the material is
// cemented; drilled and grouted piles take a flat factor regardless of
// content. Silica soils (low carbonate) are unaffected.
func CarbonateReduction(pileType pile.PileType, carbonatePct float64, cemented bool) float64 {
	if !pileType.Driven() {
		if carbonatePct >= lowCarbonatePct || cemented {
			return 0.85
		}
		return 1.0
	}
	if cemented {
		return 1.2
	}
	switch {
	case carbonatePct < lowCarbonatePct:
		return 1.0
	case carbonatePct <= highCarbonatePct:
		return 0.75
	default:
		return 0.50
	}
}
