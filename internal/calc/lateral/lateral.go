// Package lateral generates p-y curves: Matlock soft clay, Reese stiff
// clay, and the hyperbolic-tangent sand formulation, plus the wide-format
// p-y design table.
package lateral

import (
	"fmt"
	"math"

	"Pylon/internal/calc/curve"
	"Pylon/internal/pile"
	"Pylon/internal/soil"
)

type AnalysisType string

const (
	Static       AnalysisType = "static"
	Cyclic       AnalysisType = "cyclic"
	PseudoStatic AnalysisType = "pseudo_static"
)

func ParseAnalysisType(s string) (AnalysisType, error) {
	switch AnalysisType(s) {
	case Static, Cyclic, PseudoStatic:
		return AnalysisType(s), nil
	}
	return "", fmt.Errorf("unknown analysis type %q", s)
}

const (
	// Soft/stiff clay boundary. Exactly 100 kPa routes to the soft clay
	// formulation; the stiff clay precondition is strict.
	softClayLimitKPa = 100.0

	matlockJ        = 0.5
	matlockStrain   = 0.02  // epsilon_c for soft clay
	reeseStrain     = 0.015 // epsilon_c for stiff clay
	sandCyclicA     = 0.9
	maxLateralDispM = 1.0
)

// CCoefficients derives the sand lateral coefficients C1, C2, C3 from the
// effective friction angle in degrees, via the earth pressure coefficients.
func CCoefficients(phiDeg float64) (c1, c2, c3 float64) {
	phiRad := phiDeg * math.Pi / 180.0

	k0 := 0.4
	ka := math.Pow(math.Tan(math.Pi/4-phiRad/2), 2)
	kp := math.Pow(math.Tan(math.Pi/4+phiRad/2), 2)

	c1 = kp
	c2 = (k0 + ka) * math.Tan(phiRad)
	c3 = kp * math.Tan(phiRad)
	return c1, c2, c3
}

// MatlockSoftClay builds the p-y curve for soft clay (su <= 100 kPa).
// Returns an empty curve when the strength precondition fails. Cyclic
// loading above the transition depth truncates the curve at 72% of
// ultimate, reflecting post-cyclic degradation.
func MatlockSoftClay(depthM float64, profile *soil.Profile, p *pile.Properties, analysis AnalysisType) curve.Curve {
	su := profile.PropertyAt(depthM, soil.Su)
	gamma := profile.PropertyAt(depthM, soil.GammaPrime)

	if math.IsNaN(su) || su <= 0 || su > softClayLimitKPa {
		return curve.Curve{}
	}

	d := p.DiameterM

	// Transition depth between the wedge and flow-around mechanisms.
	denom := d*gamma/su + matlockJ
	zR := (6 * d) / math.Max(denom, 0.01)

	var puD float64
	if depthM <= zR {
		puD = 3*su*d + gamma*depthM*d + matlockJ*su*depthM
	} else {
		puD = 9 * su * d
	}

	var pRatios, yRatios []float64
	if analysis == Static {
		pRatios = []float64{0.0, 0.23, 0.33, 0.50, 0.72, 1.00, 1.00}
		yRatios = []float64{0.0, 0.1, 0.3, 1.0, 3.0, 8.0, math.Inf(1)}
	} else if depthM <= zR {
		pRatios = []float64{0.0, 0.23, 0.33, 0.50, 0.72, 0.72}
		yRatios = []float64{0.0, 0.1, 0.3, 1.0, 3.0, math.Inf(1)}
	} else {
		pRatios = []float64{0.0, 0.23, 0.33, 0.50, 0.72, 1.00, 1.00}
		yRatios = []float64{0.0, 0.1, 0.3, 1.0, 3.0, 8.0, math.Inf(1)}
	}

	return shapeCurve(pRatios, yRatios, puD, matlockStrain*d)
}

// ReeseStiffClay builds the p-y curve for stiff clay (su > 100 kPa,
// strictly). The cyclic curve truncates at half of ultimate.
func ReeseStiffClay(depthM float64, profile *soil.Profile, p *pile.Properties, analysis AnalysisType) curve.Curve {
	su := profile.PropertyAt(depthM, soil.Su)

	if math.IsNaN(su) || su <= softClayLimitKPa {
		return curve.Curve{}
	}

	d := p.DiameterM
	puD := math.Min(3+0.3*depthM/d, 9) * su * d

	var pRatios, yRatios []float64
	if analysis == Static {
		pRatios = []float64{0.0, 0.25, 0.50, 0.75, 0.95, 0.95}
		yRatios = []float64{0.0, 0.3, 1.0, 3.0, 10.0, math.Inf(1)}
	} else {
		pRatios = []float64{0.0, 0.25, 0.50, 0.50}
		yRatios = []float64{0.0, 0.3, 1.0, math.Inf(1)}
	}

	return shapeCurve(pRatios, yRatios, puD, reeseStrain*d)
}

func shapeCurve(pRatios, yRatios []float64, puD, yPeak float64) curve.Curve {
	c := curve.Curve{
		X: make([]float64, len(yRatios)),
		Y: make([]float64, len(pRatios)),
	}
	for i := range yRatios {
		c.X[i] = math.Min(yRatios[i]*yPeak, maxLateralDispM)
		c.Y[i] = pRatios[i] * puD
	}
	return c
}

// Initial modulus rate k (MN/m3) versus friction angle, interpolated
// linearly and clamped at the table ends.
var (
	kTablePhi = []float64{25, 30, 35, 40}
	kTableVal = []float64{5.4, 11, 22, 45}
)

func sandModulusRate(phiDeg float64) float64 {
	if phiDeg <= kTablePhi[0] {
		return kTableVal[0]
	}
	if phiDeg >= kTablePhi[len(kTablePhi)-1] {
		return kTableVal[len(kTableVal)-1]
	}
	for i := 1; i < len(kTablePhi); i++ {
		if phiDeg <= kTablePhi[i] {
			frac := (phiDeg - kTablePhi[i-1]) / (kTablePhi[i] - kTablePhi[i-1])
			return kTableVal[i-1] + frac*(kTableVal[i]-kTableVal[i-1])
		}
	}
	return kTableVal[len(kTableVal)-1]
}

const sandCurvePoints = 20

// SandPY builds the p-y curve for cohesionless soil as the hyperbolic
// tangent law on the lesser of the shallow wedge and deep flow-around
// ultimate pressures. Returns an empty curve when no friction angle is
// defined at the depth.
func SandPY(depthM float64, profile *soil.Profile, p *pile.Properties, analysis AnalysisType) curve.Curve {
	phi := profile.PropertyAt(depthM, soil.PhiPrime)
	gamma := profile.PropertyAt(depthM, soil.GammaPrime)

	if math.IsNaN(phi) || phi <= 0 {
		return curve.Curve{}
	}

	d := p.DiameterM
	z := depthM

	c1, c2, c3 := CCoefficients(phi)

	puShallow := (c1*z + c2*d) * gamma * z
	puDeep := c3 * d * gamma * z
	pu := math.Min(puShallow, puDeep)

	k := sandModulusRate(phi) * 1000.0 // MN/m3 to kPa/m

	var a float64
	if analysis == Cyclic {
		a = sandCyclicA
	} else {
		a = math.Max(3.0-0.8*z/d, sandCyclicA)
	}

	c := curve.Curve{
		X: make([]float64, sandCurvePoints),
		Y: make([]float64, sandCurvePoints),
	}
	for i := 0; i < sandCurvePoints; i++ {
		y := maxLateralDispM * float64(i) / float64(sandCurvePoints-1)
		c.X[i] = y
		c.Y[i] = a * pu * math.Tanh(k*z*y/(a*pu+0.01))
	}
	return c
}

// Row is one depth of the wide-format p-y design table: four resistance
// points in kN/m paired with displacements in mm.
type Row struct {
	DepthM float64    `json:"depth_m"`
	Soil   string     `json:"soil"`
	P      [4]float64 `json:"p_kn_m"`
	Y      [4]float64 `json:"y_mm"`
}

// Table builds the p-y design table over the given depths. Depths without a
// layer or with an unavailable strength are skipped.
func Table(profile *soil.Profile, p *pile.Properties, depthsM []float64, analysis AnalysisType) []Row {
	var rows []Row

	for _, depth := range depthsM {
		layer := profile.LayerAt(depth)
		if layer == nil {
			continue
		}

		var c curve.Curve
		if layer.Type.Cohesive() {
			su := profile.PropertyAt(depth, soil.Su)
			switch {
			case !math.IsNaN(su) && su <= softClayLimitKPa:
				c = MatlockSoftClay(depth, profile, p, analysis)
			case !math.IsNaN(su):
				c = ReeseStiffClay(depth, profile, p, analysis)
			default:
				continue
			}
		} else {
			c = SandPY(depth, profile, p, analysis)
		}

		if c.Empty() {
			continue
		}

		pVals, yVals := curve.PYPoints(c)
		rows = append(rows, Row{
			DepthM: depth,
			Soil:   string(layer.Type),
			P:      pVals,
			Y:      yVals,
		})
	}
	return rows
}
