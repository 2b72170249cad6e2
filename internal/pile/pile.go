package pile

import (
	"fmt"
	"math"
)

type PileType string

const (
	DrivenPipeOpen   PileType = "driven_pipe_open"
	DrivenPipeClosed PileType = "driven_pipe_closed"
	DrilledShaft     PileType = "drilled_shaft"
	GroutedPile      PileType = "grouted_pile"
)

func ParsePileType(s string) (PileType, error) {
	switch PileType(s) {
	case DrivenPipeOpen, DrivenPipeClosed, DrilledShaft, GroutedPile:
		return PileType(s), nil
	}
	return "", fmt.Errorf("unknown pile type %q", s)
}

// Driven reports whether the pile is installed by driving, which selects the
// driven row of the resistance factor table.
func (t PileType) Driven() bool {
	return t == DrivenPipeOpen || t == DrivenPipeClosed
}

// Pipe reports whether the pile is a steel pipe section with a wall
// thickness.
func (t PileType) Pipe() bool {
	return t == DrivenPipeOpen || t == DrivenPipeClosed
}

// Plugged reports whether the tip behaves plugged for Q-z purposes. Only the
// closed-end driven pipe is treated as plugged; open-end plugging from D/t
// ratio is not modelled.
func (t PileType) Plugged() bool {
	return t == DrivenPipeClosed
}

// Properties holds pile geometry plus derived section values. Construct with
// New; the derived fields are not recomputed afterwards.
type Properties struct {
	DiameterM      float64  `json:"diameter_m"`
	WallThicknessM float64  `json:"wall_thickness_m"`
	LengthM        float64  `json:"length_m"`
	Material       string   `json:"material"`
	Type           PileType `json:"pile_type"`

	AreaGrossM2    float64 `json:"area_gross_m2"`
	AreaShaftM2    float64 `json:"area_shaft_m2"`
	InnerDiameterM float64 `json:"inner_diameter_m"`
}

func New(diameterM, wallThicknessM, lengthM float64, material string, pileType PileType) (*Properties, error) {
	if diameterM <= 0 {
		return nil, fmt.Errorf("pile diameter must be positive, got %g", diameterM)
	}
	if wallThicknessM < 0 {
		return nil, fmt.Errorf("wall thickness must be non-negative, got %g", wallThicknessM)
	}
	if pileType.Pipe() && diameterM <= 2*wallThicknessM {
		return nil, fmt.Errorf("pipe pile diameter %g must exceed twice the wall thickness %g", diameterM, wallThicknessM)
	}
	if material == "" {
		material = "steel"
	}

	p := &Properties{
		DiameterM:      diameterM,
		WallThicknessM: wallThicknessM,
		LengthM:        lengthM,
		Material:       material,
		Type:           pileType,
	}
	p.AreaGrossM2 = math.Pi * diameterM * diameterM / 4.0
	p.AreaShaftM2 = math.Pi * diameterM * lengthM
	p.InnerDiameterM = diameterM - 2*wallThicknessM
	return p, nil
}

// PerimeterM is the shaft circumference used for friction integration.
func (p *Properties) PerimeterM() float64 {
	return math.Pi * p.DiameterM
}
