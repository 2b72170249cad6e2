// Package request holds the JSON payload shapes shared by the calculation
// endpoints and their conversion into validated engine inputs.
package request

import (
	"fmt"

	"Pylon/internal/pile"
	"Pylon/internal/soil"
)

type PointSpec struct {
	DepthM float64 `json:"depth_m"`
	Value  float64 `json:"value"`
}

type LayerSpec struct {
	Name      string  `json:"name"`
	SoilType  string  `json:"soil_type"`
	DepthTopM float64 `json:"depth_top_m"`
	DepthBotM float64 `json:"depth_bot_m"`

	GammaPrimeKNM3 []PointSpec `json:"gamma_prime_kn_m3,omitempty"`
	SuKPa          []PointSpec `json:"su_kpa,omitempty"`
	PhiPrimeDeg    []PointSpec `json:"phi_prime_deg,omitempty"`
	E50KPa         []PointSpec `json:"e50_kpa,omitempty"`

	RelativeDensityPct  *float64 `json:"relative_density_pct,omitempty"`
	IsCemented          bool     `json:"is_cemented,omitempty"`
	CarbonateContentPct float64  `json:"carbonate_content_pct,omitempty"`
	OCR                 *float64 `json:"ocr,omitempty"`
	PI                  float64  `json:"pi,omitempty"`
}

type ProfileSpec struct {
	SiteName           string      `json:"site_name"`
	WaterDepthM        float64     `json:"water_depth_m"`
	SeafloorElevationM float64     `json:"seafloor_elevation_m"`
	Layers             []LayerSpec `json:"layers"`
}

type PileSpec struct {
	DiameterM      float64 `json:"diameter_m"`
	WallThicknessM float64 `json:"wall_thickness_m"`
	LengthM        float64 `json:"length_m"`
	Material       string  `json:"material"`
	PileType       string  `json:"pile_type"`
}

func buildCurve(layer *soil.Layer, prop soil.Property, points []PointSpec) error {
	for _, ps := range points {
		pt, err := soil.NewPoint(ps.DepthM, ps.Value)
		if err != nil {
			return err
		}
		layer.AddPoint(prop, pt)
	}
	return nil
}

// BuildProfile converts the payload into a validated soil profile. Layering
// is checked eagerly: unsorted, overlapping or gapped layers are rejected
// rather than silently producing near-zero capacities.
func (s ProfileSpec) BuildProfile() (*soil.Profile, error) {
	profile := &soil.Profile{
		SiteName:           s.SiteName,
		WaterDepthM:        s.WaterDepthM,
		SeafloorElevationM: s.SeafloorElevationM,
	}

	for i, ls := range s.Layers {
		soilType, err := soil.ParseSoilType(ls.SoilType)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layer, err := soil.NewLayer(ls.Name, soilType, ls.DepthTopM, ls.DepthBotM)
		if err != nil {
			return nil, err
		}

		if ls.RelativeDensityPct != nil {
			layer.RelativeDensityPct = *ls.RelativeDensityPct
		}
		if ls.OCR != nil {
			layer.OCR = *ls.OCR
		}
		layer.IsCemented = ls.IsCemented
		layer.CarbonateContentPct = ls.CarbonateContentPct
		layer.PI = ls.PI

		for _, c := range []struct {
			prop   soil.Property
			points []PointSpec
		}{
			{soil.GammaPrime, ls.GammaPrimeKNM3},
			{soil.Su, ls.SuKPa},
			{soil.PhiPrime, ls.PhiPrimeDeg},
			{soil.E50, ls.E50KPa},
		} {
			if err := buildCurve(layer, c.prop, c.points); err != nil {
				return nil, fmt.Errorf("layer %q: %w", ls.Name, err)
			}
		}

		profile.Layers = append(profile.Layers, layer)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// BuildPile converts the payload into validated pile properties.
func (s PileSpec) BuildPile() (*pile.Properties, error) {
	pileType, err := pile.ParsePileType(s.PileType)
	if err != nil {
		return nil, err
	}
	return pile.New(s.DiameterM, s.WallThicknessM, s.LengthM, s.Material, pileType)
}
