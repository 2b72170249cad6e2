// Package transfer generates axial load-transfer curves: t-z along the
// shaft and Q-z at the tip, reusing the unit capacities from the axial
// package as the curve peaks.
package transfer

import (
	"math"

	"Pylon/internal/calc/axial"
	"Pylon/internal/calc/curve"
	"Pylon/internal/pile"
	"Pylon/internal/soil"
)

const (
	peakDispRatio = 0.01 // z_peak as fraction of pile diameter
	maxShaftDispM = 0.5

	// Clay softens to a fixed residual after peak; sand holds its peak.
	clayResidualRatio = 0.8
)

// TZClay builds the t-z curve for cohesive soil. The curve rises to the
// unit shaft friction at one percent of diameter and softens to a residual
// plateau. Empty when no friction is mobilized at the depth.
func TZClay(depthM float64, profile *soil.Profile, p *pile.Properties, tension bool) curve.Curve {
	tMax := axial.ClayShaftFriction(depthM, profile, p, tension)
	if tMax <= 0 {
		return curve.Curve{}
	}

	zPeak := peakDispRatio * p.DiameterM

	zRatios := []float64{0.0, 0.16, 0.31, 0.57, 0.80, 1.00, 2.00, math.Inf(1)}
	tRatios := []float64{0.0, 0.30, 0.50, 0.75, 0.90, 1.00, clayResidualRatio, clayResidualRatio}

	return buildTZ(zRatios, tRatios, zPeak, tMax)
}

// TZSand builds the t-z curve for cohesionless soil; no post-peak
// softening.
func TZSand(depthM float64, profile *soil.Profile, p *pile.Properties, tension bool) curve.Curve {
	tMax := axial.SandShaftFriction(depthM, profile, p, tension)
	if tMax <= 0 {
		return curve.Curve{}
	}

	zPeak := peakDispRatio * p.DiameterM

	zRatios := []float64{0.0, 0.16, 0.31, 0.57, 0.80, 1.00, math.Inf(1)}
	tRatios := []float64{0.0, 0.30, 0.50, 0.75, 0.90, 1.00, 1.00}

	return buildTZ(zRatios, tRatios, zPeak, tMax)
}

func buildTZ(zRatios, tRatios []float64, zPeak, tMax float64) curve.Curve {
	c := curve.Curve{
		X: make([]float64, len(zRatios)),
		Y: make([]float64, len(tRatios)),
	}
	for i := range zRatios {
		c.X[i] = math.Min(zRatios[i]*zPeak, maxShaftDispM)
		c.Y[i] = tRatios[i] * tMax
	}
	return c
}

// QZ builds the Q-z curve at a tip depth: tip force in kN against tip
// displacement, fully mobilized at ten percent of diameter. Empty when the
// depth has no layer or no bearing.
func QZ(depthM float64, profile *soil.Profile, p *pile.Properties) curve.Curve {
	layer := profile.LayerAt(depthM)
	if layer == nil {
		return curve.Curve{}
	}

	var q float64
	if layer.Type.Cohesive() {
		q = axial.ClayEndBearing(depthM, profile)
	} else {
		q = axial.SandEndBearing(depthM, profile)
	}

	qp := q * p.AreaGrossM2
	if qp <= 0 {
		return curve.Curve{}
	}

	zDRatios := []float64{0.0, 0.002, 0.013, 0.042, 0.073, 0.100, math.Inf(1)}
	qRatios := []float64{0.0, 0.25, 0.50, 0.75, 0.90, 1.00, 1.00}

	c := curve.Curve{
		X: make([]float64, len(zDRatios)),
		Y: make([]float64, len(qRatios)),
	}
	for i := range zDRatios {
		c.X[i] = math.Min(zDRatios[i], 0.100) * p.DiameterM
		c.Y[i] = qRatios[i] * qp
	}
	return c
}

// TZRow is one row of the wide-format t-z design table. Mode is "c" for
// compression or "t" for tension; resistances are MN/m2, displacements mm.
type TZRow struct {
	DepthM float64    `json:"depth_m"`
	Mode   string     `json:"mode"`
	T      [5]float64 `json:"t_mn_m2"`
	Z      [5]float64 `json:"z_mm"`
}

// TZTable builds the t-z design table: per sampled depth one compression
// row and one tension row, each discretized to five points.
func TZTable(profile *soil.Profile, p *pile.Properties, depthsM []float64) []TZRow {
	var rows []TZRow

	for _, depth := range depthsM {
		layer := profile.LayerAt(depth)
		if layer == nil {
			continue
		}

		for _, mode := range []string{"c", "t"} {
			tension := mode == "t"

			var c curve.Curve
			if layer.Type.Cohesive() {
				c = TZClay(depth, profile, p, tension)
			} else {
				c = TZSand(depth, profile, p, tension)
			}
			if c.Empty() {
				continue
			}

			tVals, zVals := curve.TZPoints(c)
			rows = append(rows, TZRow{DepthM: depth, Mode: mode, T: tVals, Z: zVals})
		}
	}
	return rows
}

// QZRow is the single-row wide-format Q-z design table for the tip.
// Plugged is 1 for a closed-end driven pipe, 0 otherwise; resistances are
// MN, displacements mm.
type QZRow struct {
	DepthM  float64    `json:"depth_m"`
	Soil    string     `json:"soil"`
	Plugged int        `json:"plugged"`
	Q       [5]float64 `json:"q_mn"`
	Z       [5]float64 `json:"z_mm"`
}

// QZTable builds the tip Q-z design table at the given tip depth, or an
// empty table when the depth is invalid or no bearing is available.
func QZTable(profile *soil.Profile, p *pile.Properties, tipDepthM float64) []QZRow {
	if tipDepthM <= 0 {
		return nil
	}

	c := QZ(tipDepthM, profile, p)
	if c.Empty() {
		return nil
	}

	qVals, zVals := curve.QZPoints(c)

	soilTag := string(soil.TypeSand)
	if layer := profile.LayerAt(tipDepthM); layer != nil {
		soilTag = string(layer.Type)
	}

	plugged := 0
	if p.Type.Plugged() {
		plugged = 1
	}

	return []QZRow{{
		DepthM:  tipDepthM,
		Soil:    soilTag,
		Plugged: plugged,
		Q:       qVals,
		Z:       zVals,
	}}
}
