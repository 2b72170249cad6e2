package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"Pylon/internal/calc/analysis"
	"Pylon/internal/calc/axial"
	"Pylon/internal/calc/request"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`

	Profile request.ProfileSpec `json:"profile"`
	Pile    request.PileSpec    `json:"pile"`
	Options analysis.Options    `json:"options"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Pile Capacity Report"
	}

	profile, err := input.Profile.BuildProfile()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := input.Pile.BuildPile()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tipDepth := p.LengthM
	if tipDepth <= 0 {
		tipDepth = input.Options.MaxDepthM
	}
	compression := axial.TotalCapacity(profile, p, tipDepth, axial.Compression, nil)
	tension := axial.TotalCapacity(profile, p, tipDepth, axial.Tension, nil)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Site: %s", profile.SiteName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Pile")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Type: %s, diameter %.2f m, wall %.0f mm, embedded %.1f m",
		p.Type, p.DiameterM, p.WallThicknessM*1000, p.LengthM))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Axial capacity at %.1f m (LRFD factored)", tipDepth))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Compression: %.0f kN (shaft %.0f, tip %.0f, factor %.2f)",
		compression.TotalCapacityKN, compression.ShaftFrictionKN,
		compression.EndBearingKN, compression.ResistanceFactor))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Tension: %.0f kN (factor %.2f)",
		tension.TotalCapacityKN, tension.ResistanceFactor))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Penetration: %s", compression.PenetrationStatus))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Shaft friction by layer")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, c := range compression.LayerContributions {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %.0f kN", c.Layer, c.FrictionKN))
		pdf.Ln(6)
	}

	for _, warning := range compression.Warnings {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "Note: "+warning)
		pdf.Ln(6)
	}

	if input.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pile_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
