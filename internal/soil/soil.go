package soil

import (
	"fmt"
	"math"
	"sort"
)

type SoilType string

const (
	TypeClay     SoilType = "clay"
	TypeSilt     SoilType = "silt"
	TypeSand     SoilType = "sand"
	TypeSandSilt SoilType = "sand-silt"
	TypeRock     SoilType = "rock"
)

// Cohesive reports whether shaft friction and end bearing for this soil
// follow the clay formulas rather than the sand table.
func (s SoilType) Cohesive() bool {
	return s == TypeClay || s == TypeSilt
}

func (s SoilType) Granular() bool {
	return s == TypeSand || s == TypeSandSilt
}

func ParseSoilType(s string) (SoilType, error) {
	switch SoilType(s) {
	case TypeClay, TypeSilt, TypeSand, TypeSandSilt, TypeRock:
		return SoilType(s), nil
	}
	return "", fmt.Errorf("unknown soil type %q", s)
}

type RelativeDensity string

const (
	VeryLoose   RelativeDensity = "very_loose"
	Loose       RelativeDensity = "loose"
	MediumDense RelativeDensity = "medium_dense"
	Dense       RelativeDensity = "dense"
	VeryDense   RelativeDensity = "very_dense"
)

// RelativeDensityFromPct maps a relative density percentage to its band.
func RelativeDensityFromPct(pct float64) RelativeDensity {
	switch {
	case pct < 15:
		return VeryLoose
	case pct < 35:
		return Loose
	case pct < 65:
		return MediumDense
	case pct < 85:
		return Dense
	default:
		return VeryDense
	}
}

// Property identifies one of the depth-varying soil parameter curves.
type Property string

const (
	GammaPrime Property = "gamma_prime" // submerged unit weight, kN/m3
	Su         Property = "su"          // undrained shear strength, kPa
	PhiPrime   Property = "phi_prime"   // effective friction angle, deg
	E50        Property = "E50"         // secant modulus, kPa
)

// Point is a single measurement of a soil parameter at a depth.
type Point struct {
	DepthM float64 `json:"depth_m"`
	Value  float64 `json:"value"`
}

func NewPoint(depthM, value float64) (Point, error) {
	if depthM < 0 {
		return Point{}, fmt.Errorf("depth must be non-negative, got %g", depthM)
	}
	if value < 0 {
		return Point{}, fmt.Errorf("value must be non-negative, got %g", value)
	}
	return Point{DepthM: depthM, Value: value}, nil
}

// Layer is a soil layer with depth-varying properties. Property curves are
// kept sorted by depth; depths in the curves are absolute (from mudline).
type Layer struct {
	Name      string   `json:"name"`
	Type      SoilType `json:"soil_type"`
	DepthTopM float64  `json:"depth_top_m"`
	DepthBotM float64  `json:"depth_bot_m"`

	GammaPrimeKNM3 []Point `json:"gamma_prime_kn_m3"`
	SuKPa          []Point `json:"su_kpa"`
	PhiPrimeDeg    []Point `json:"phi_prime_deg"`
	E50KPa         []Point `json:"e50_kpa"`

	RelativeDensityPct  float64 `json:"relative_density_pct"`
	IsCemented          bool    `json:"is_cemented"`
	CarbonateContentPct float64 `json:"carbonate_content_pct"`
	OCR                 float64 `json:"ocr"`
	PI                  float64 `json:"pi"`
}

func NewLayer(name string, soilType SoilType, depthTopM, depthBotM float64) (*Layer, error) {
	if depthBotM <= depthTopM {
		return nil, fmt.Errorf("layer %q: depth_bot (%g) must be > depth_top (%g)", name, depthBotM, depthTopM)
	}
	return &Layer{
		Name:               name,
		Type:               soilType,
		DepthTopM:          depthTopM,
		DepthBotM:          depthBotM,
		RelativeDensityPct: 50.0,
		OCR:                1.0,
	}, nil
}

func (l *Layer) curve(prop Property) []Point {
	switch prop {
	case GammaPrime:
		return l.GammaPrimeKNM3
	case Su:
		return l.SuKPa
	case PhiPrime:
		return l.PhiPrimeDeg
	case E50:
		return l.E50KPa
	}
	return nil
}

// AddPoint appends a measurement to a property curve and keeps it sorted.
func (l *Layer) AddPoint(prop Property, p Point) {
	switch prop {
	case GammaPrime:
		l.GammaPrimeKNM3 = insertSorted(l.GammaPrimeKNM3, p)
	case Su:
		l.SuKPa = insertSorted(l.SuKPa, p)
	case PhiPrime:
		l.PhiPrimeDeg = insertSorted(l.PhiPrimeDeg, p)
	case E50:
		l.E50KPa = insertSorted(l.E50KPa, p)
	}
}

func insertSorted(curve []Point, p Point) []Point {
	curve = append(curve, p)
	sort.SliceStable(curve, func(i, j int) bool { return curve[i].DepthM < curve[j].DepthM })
	return curve
}

// SortCurves re-sorts every property curve by depth. Called after bulk
// construction from decoded input.
func (l *Layer) SortCurves() {
	for _, c := range [][]Point{l.GammaPrimeKNM3, l.SuKPa, l.PhiPrimeDeg, l.E50KPa} {
		sort.SliceStable(c, func(i, j int) bool { return c[i].DepthM < c[j].DepthM })
	}
}

// PropertyAt interpolates a property at a depth measured from the layer top.
// Depths beyond the curve ends clamp to the end values. An empty curve
// yields NaN; callers must check finiteness.
func (l *Layer) PropertyAt(relDepthM float64, prop Property) float64 {
	curve := l.curve(prop)
	if len(curve) == 0 {
		return math.NaN()
	}

	absDepth := l.DepthTopM + relDepthM

	if absDepth <= curve[0].DepthM {
		return curve[0].Value
	}
	if absDepth >= curve[len(curve)-1].DepthM {
		return curve[len(curve)-1].Value
	}

	for i := 1; i < len(curve); i++ {
		if curve[i-1].DepthM <= absDepth && absDepth <= curve[i].DepthM {
			z1, v1 := curve[i-1].DepthM, curve[i-1].Value
			z2, v2 := curve[i].DepthM, curve[i].Value
			if z2 == z1 {
				return v1
			}
			return v1 + (absDepth-z1)*(v2-v1)/(z2-z1)
		}
	}

	return math.NaN()
}

// DensityClass returns the relative density band for table lookups.
func (l *Layer) DensityClass() RelativeDensity {
	return RelativeDensityFromPct(l.RelativeDensityPct)
}

// Profile is the complete layered soil column at a site.
type Profile struct {
	SiteName           string   `json:"site_name"`
	Layers             []*Layer `json:"layers"`
	WaterDepthM        float64  `json:"water_depth_m"`
	SeafloorElevationM float64  `json:"seafloor_elevation_m"`
}

// LayerAt returns the layer containing the depth, or nil. Layer intervals
// are half-open: top inclusive, bottom exclusive, so a depth on an interior
// boundary belongs to the lower layer.
func (p *Profile) LayerAt(depthM float64) *Layer {
	for _, l := range p.Layers {
		if l.DepthTopM <= depthM && depthM < l.DepthBotM {
			return l
		}
	}
	return nil
}

// PropertyAt interpolates a property at an absolute depth, or NaN when no
// layer covers the depth or the layer's curve is empty.
func (p *Profile) PropertyAt(depthM float64, prop Property) float64 {
	layer := p.LayerAt(depthM)
	if layer == nil {
		return math.NaN()
	}
	return layer.PropertyAt(depthM-layer.DepthTopM, prop)
}

// OverburdenStressKPa integrates submerged unit weight from the mudline down
// to depth with trapezoidal quadrature at step dz. Samples where the unit
// weight curve is undefined are skipped; fewer than two valid samples yields
// zero effective stress.
func (p *Profile) OverburdenStressKPa(depthM, dz float64) float64 {
	if depthM <= 0 {
		return 0.0
	}
	if dz <= 0 {
		dz = 0.1
	}

	var depths, gammas []float64
	for z := 0.0; z <= depthM+dz/2; z += dz {
		g := p.PropertyAt(z, GammaPrime)
		if math.IsNaN(g) {
			continue
		}
		depths = append(depths, z)
		gammas = append(gammas, g)
	}

	if len(gammas) < 2 {
		return 0.0
	}

	stress := 0.0
	for i := 1; i < len(gammas); i++ {
		stress += 0.5 * (gammas[i] + gammas[i-1]) * (depths[i] - depths[i-1])
	}
	return stress
}

// Validate checks that layers are sorted by top depth and tile the depth
// range with no gaps or overlaps. LayerAt assumes this; silently violating
// it degrades capacities toward zero, so handlers reject such profiles.
func (p *Profile) Validate() error {
	if len(p.Layers) == 0 {
		return fmt.Errorf("profile %q has no layers", p.SiteName)
	}
	for i, l := range p.Layers {
		if l.DepthBotM <= l.DepthTopM {
			return fmt.Errorf("layer %q: depth_bot must be > depth_top", l.Name)
		}
		if i == 0 {
			continue
		}
		prev := p.Layers[i-1]
		if l.DepthTopM < prev.DepthBotM {
			return fmt.Errorf("layers %q and %q overlap", prev.Name, l.Name)
		}
		if l.DepthTopM > prev.DepthBotM {
			return fmt.Errorf("gap between layers %q and %q", prev.Name, l.Name)
		}
	}
	return nil
}
