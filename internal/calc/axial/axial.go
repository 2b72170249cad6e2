// Package axial computes axial pile capacity from a layered soil profile:
// unit shaft friction by the alpha method in clay and the beta method with
// the tabulated design parameters in sand, unit end bearing, penetration
// checks, and LRFD-factored capacity profiles over depth.
package axial

import (
	"fmt"
	"math"

	"Pylon/internal/calc/tables"
	"Pylon/internal/pile"
	"Pylon/internal/soil"
)

type LoadingType string

const (
	Compression LoadingType = "compression"
	Tension     LoadingType = "tension"
	Lateral     LoadingType = "lateral"
	Combined    LoadingType = "combined"
)

func ParseLoadingType(s string) (LoadingType, error) {
	switch LoadingType(s) {
	case Compression, Tension, Lateral, Combined:
		return LoadingType(s), nil
	}
	return "", fmt.Errorf("unknown loading type %q", s)
}

const (
	overburdenDZ = 0.1  // m, overburden integration step
	frictionDZ   = 0.25 // m, shaft friction integration step

	// Tension shaft friction in clay is reduced by a flat 20%. A policy
	// default, not a code-mandated value.
	clayTensionReduction = 0.8

	// Fallback friction coefficient for soils outside the design table.
	fallbackBeta = 0.25
)

// ClayShaftFriction returns unit shaft friction in clay, kPa. The alpha
// factor follows from the strength-to-stress ratio and is capped at one.
func ClayShaftFriction(depthM float64, profile *soil.Profile, p *pile.Properties, tension bool) float64 {
	su := profile.PropertyAt(depthM, soil.Su)
	if math.IsNaN(su) || su <= 0 {
		return 0.0
	}

	po := profile.OverburdenStressKPa(depthM, overburdenDZ)
	if po <= 0 {
		po = 1.0
	}

	psi := su / po
	var alpha float64
	if psi <= 1.0 {
		alpha = 0.5 * math.Pow(psi, -0.5)
	} else {
		alpha = 0.5 * math.Pow(psi, -0.25)
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	f := alpha * su
	if tension {
		return clayTensionReduction * f
	}
	return f
}

// SandShaftFriction returns unit shaft friction in cohesionless soil, kPa.
// The tabulated beta and friction limit are used when the layer's density
// band and description are covered; otherwise a conservative fallback beta
// applies with no limit. Sand keeps the same friction in tension. The
// carbonate reduction factor for the layer is applied in both cases.
func SandShaftFriction(depthM float64, profile *soil.Profile, p *pile.Properties, tension bool) float64 {
	f, _ := sandShaftFriction(depthM, profile, p)
	return f
}

func sandShaftFriction(depthM float64, profile *soil.Profile, p *pile.Properties) (float64, bool) {
	layer := profile.LayerAt(depthM)
	if layer == nil || !layer.Type.Granular() {
		return 0.0, true
	}

	po := profile.OverburdenStressKPa(depthM, overburdenDZ)
	if po <= 0 {
		return 0.0, true
	}

	var f float64
	params, ok := tables.DesignParamsFor(layer.DensityClass(), layer.Type)
	if ok {
		f = math.Min(params.Beta*po, params.FrictionLimitKPa)
	} else {
		f = fallbackBeta * po
	}

	f *= tables.CarbonateReduction(p.Type, layer.CarbonateContentPct, layer.IsCemented)
	return f, ok
}

// ClayEndBearing returns unit end bearing in clay, kPa, with Nc = 9.
func ClayEndBearing(depthM float64, profile *soil.Profile) float64 {
	su := profile.PropertyAt(depthM, soil.Su)
	if math.IsNaN(su) || su <= 0 {
		return 0.0
	}
	return 9.0 * su
}

// SandEndBearing returns unit end bearing in cohesionless soil, kPa. Uses
// the tabulated Nq and bearing limit when covered; otherwise falls back to
// the closed-form bearing factor from the friction angle.
func SandEndBearing(depthM float64, profile *soil.Profile) float64 {
	q, _ := sandEndBearing(depthM, profile)
	return q
}

func sandEndBearing(depthM float64, profile *soil.Profile) (float64, bool) {
	layer := profile.LayerAt(depthM)
	if layer == nil || !layer.Type.Granular() {
		return 0.0, true
	}

	po := profile.OverburdenStressKPa(depthM, overburdenDZ)
	if po <= 0 {
		return 0.0, true
	}

	params, ok := tables.DesignParamsFor(layer.DensityClass(), layer.Type)
	if ok {
		qL := params.BearingLimitMPa * 1000.0
		return math.Min(params.Nq*po, qL), true
	}

	phi := profile.PropertyAt(depthM, soil.PhiPrime)
	if math.IsNaN(phi) || phi <= 0 {
		return 0.0, false
	}
	phiRad := phi * math.Pi / 180.0
	nq := math.Exp(math.Pi*math.Tan(phiRad)) * math.Pow(math.Tan(math.Pi/4+phiRad/2), 2)
	return nq * po, false
}

// PenetrationCheck validates tip embedment into the bearing layer: below
// two diameters end bearing may not be counted, between two and three is
// adequate, three or more is good.
func PenetrationCheck(depthM float64, p *pile.Properties, layer *soil.Layer) (bool, string) {
	penetration := depthM - layer.DepthTopM
	min := 2.0 * p.DiameterM
	recommended := 3.0 * p.DiameterM

	switch {
	case penetration < min:
		return false, fmt.Sprintf("Insufficient penetration: %.1fm < %.1fm (2D)", penetration, min)
	case penetration < recommended:
		return true, fmt.Sprintf("Adequate penetration: %.1fm (< 3D recommended)", penetration)
	default:
		return true, fmt.Sprintf("Good penetration: %.1fm (> 3D)", penetration)
	}
}

// LayerContribution records one layer's share of the total shaft friction.
type LayerContribution struct {
	Layer      string  `json:"layer"`
	FrictionKN float64 `json:"friction_kn"`
}

// CapacityResult is the factored axial capacity at a single depth with the
// per-layer breakdown and validation status a caller needs to distinguish
// "computed zero" from "incomplete inputs" from "code limit violated".
type CapacityResult struct {
	TotalCapacityKN    float64             `json:"total_capacity_kn"`
	ShaftFrictionKN    float64             `json:"shaft_friction_kn"`
	EndBearingKN       float64             `json:"end_bearing_kn"`
	LayerContributions []LayerContribution `json:"layer_contributions"`
	PenetrationStatus  string              `json:"penetration_status"`
	ResistanceFactor   float64             `json:"resistance_factor"`
	Warnings           []string            `json:"warnings,omitempty"`
}

// TotalCapacity computes the factored axial capacity at a tip depth. Shaft
// friction is integrated in fixed steps with per-layer tracking; the layer
// contributions always sum to the unfactored shaft total. End bearing is
// added for compression only and zeroed when the penetration check fails.
// A nil resistanceFactor selects the LRFD factor for the pile installation
// method and loading direction; the unfactored value is the quotient of the
// reported total and the applied factor.
func TotalCapacity(profile *soil.Profile, p *pile.Properties, depthM float64,
	loading LoadingType, resistanceFactor *float64) CapacityResult {

	if depthM <= 0 {
		return CapacityResult{
			PenetrationStatus: "Invalid depth",
			ResistanceFactor:  1.0,
		}
	}

	tension := loading == Tension

	var (
		totalFrictionKN float64
		contributions   []LayerContribution
		warnings        []string
		warned          = map[string]bool{}
		currentName     string
		currentFriction float64
		haveCurrent     bool
	)

	perimeter := p.PerimeterM()
	for z := 0.0; z < depthM; z += frictionDZ {
		layer := profile.LayerAt(z)
		if layer == nil {
			continue
		}

		var fz float64
		switch {
		case layer.Type.Cohesive():
			fz = ClayShaftFriction(z, profile, p, tension)
		case layer.Type.Granular():
			// Same friction applies in tension for driven piles.
			var ok bool
			fz, ok = sandShaftFriction(z, profile, p)
			if !ok && !warned[layer.Name] {
				warned[layer.Name] = true
				warnings = append(warnings,
					fmt.Sprintf("layer %q (%s, %s) outside design parameter table, conservative beta used",
						layer.Name, layer.Type, layer.DensityClass()))
			}
		default:
			fz = 0.0
		}

		increment := fz * perimeter * frictionDZ
		totalFrictionKN += increment

		if !haveCurrent || layer.Name != currentName {
			if haveCurrent {
				contributions = append(contributions, LayerContribution{Layer: currentName, FrictionKN: currentFriction})
			}
			currentName = layer.Name
			currentFriction = increment
			haveCurrent = true
		} else {
			currentFriction += increment
		}
	}
	if haveCurrent {
		contributions = append(contributions, LayerContribution{Layer: currentName, FrictionKN: currentFriction})
	}

	endBearingKN := 0.0
	penetrationStatus := "N/A"

	if !tension {
		if tipLayer := profile.LayerAt(depthM); tipLayer != nil {
			ok, msg := PenetrationCheck(depthM, p, tipLayer)
			penetrationStatus = msg
			if ok {
				var q float64
				if tipLayer.Type.Cohesive() {
					q = ClayEndBearing(depthM, profile)
				} else {
					q = SandEndBearing(depthM, profile)
				}
				endBearingKN = q * p.AreaGrossM2
			} else {
				penetrationStatus = "WARNING: " + msg
			}
		}
	}

	factor := 0.0
	if resistanceFactor != nil {
		factor = *resistanceFactor
	} else {
		factor = tables.ResistanceFactor(p.Type, tension)
	}

	return CapacityResult{
		TotalCapacityKN:    (totalFrictionKN + endBearingKN) * factor,
		ShaftFrictionKN:    totalFrictionKN * factor,
		EndBearingKN:       endBearingKN * factor,
		LayerContributions: contributions,
		PenetrationStatus:  penetrationStatus,
		ResistanceFactor:   factor,
		Warnings:           warnings,
	}
}

// ProfileRow is one depth of a capacity profile sweep.
type ProfileRow struct {
	DepthM               float64 `json:"depth_m"`
	Layer                string  `json:"layer"`
	SoilType             string  `json:"soil_type"`
	UnitFrictionKPa      float64 `json:"unit_friction_kpa"`
	CumulativeFrictionKN float64 `json:"cumulative_friction_kn"`
	EndBearingKPa        float64 `json:"end_bearing_kpa"`
	TotalCapacityKN      float64 `json:"total_capacity_kn"`
	PenetrationStatus    string  `json:"penetration_status"`
	ResistanceFactor     float64 `json:"resistance_factor"`
}

// CapacityProfile sweeps TotalCapacity from the mudline to maxDepth at step
// dz, one row per depth.
func CapacityProfile(profile *soil.Profile, p *pile.Properties, maxDepthM, dz float64,
	loading LoadingType, resistanceFactor *float64) []ProfileRow {

	if dz <= 0 {
		dz = 0.5
	}

	var rows []ProfileRow
	for z := 0.0; z <= maxDepthM+dz/2; z += dz {
		res := TotalCapacity(profile, p, z, loading, resistanceFactor)

		layerName, soilType := "N/A", "N/A"
		if layer := profile.LayerAt(z); layer != nil {
			layerName = layer.Name
			soilType = string(layer.Type)
		}

		rows = append(rows, ProfileRow{
			DepthM:               z,
			Layer:                layerName,
			SoilType:             soilType,
			UnitFrictionKPa:      res.ShaftFrictionKN / (p.PerimeterM()*z + 0.001),
			CumulativeFrictionKN: res.ShaftFrictionKN,
			EndBearingKPa:        safeDiv(res.EndBearingKN, p.AreaGrossM2),
			TotalCapacityKN:      res.TotalCapacityKN,
			PenetrationStatus:    res.PenetrationStatus,
			ResistanceFactor:     res.ResistanceFactor,
		})
	}
	return rows
}

func safeDiv(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}
