// Package export renders a complete analysis bundle as an Excel workbook,
// one sheet per design table.
package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	"Pylon/internal/calc/analysis"
	"Pylon/internal/calc/axial"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

func (h *Handler) Workbook(w http.ResponseWriter, r *http.Request) {
	var input analysis.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	bundle, err := analysis.RunInput(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := Build(bundle)
	if err != nil {
		http.Error(w, "Export generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pile_analysis.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export generation error", http.StatusInternalServerError)
		return
	}
}

// Build assembles the workbook from a computed bundle.
func Build(bundle analysis.Bundle) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := capacitySheet(f, "Capacity Compression", bundle.CapacityCompression, true); err != nil {
		return nil, err
	}
	if err := capacitySheet(f, "Capacity Tension", bundle.CapacityTension, false); err != nil {
		return nil, err
	}
	if err := tzSheet(f, bundle); err != nil {
		return nil, err
	}
	if err := qzSheet(f, bundle); err != nil {
		return nil, err
	}
	if err := pySheet(f, bundle); err != nil {
		return nil, err
	}

	return f, nil
}

func capacitySheet(f *excelize.File, name string, rows []axial.ProfileRow, first bool) error {
	if first {
		// Rename the default sheet so the workbook opens on it.
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := []interface{}{
		"Depth (m)", "Layer", "Soil type", "Unit friction (kPa)",
		"Cumulative friction (kN)", "End bearing (kPa)", "Total capacity (kN)",
		"Penetration status", "Resistance factor",
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.DepthM, row.Layer, row.SoilType, row.UnitFrictionKPa,
			row.CumulativeFrictionKN, row.EndBearingKPa, row.TotalCapacityKN,
			row.PenetrationStatus, row.ResistanceFactor,
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func tzSheet(f *excelize.File, bundle analysis.Bundle) error {
	const name = "t-z Curves"
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := []interface{}{"Depth (m)", "Mode"}
	for i := 1; i <= 5; i++ {
		header = append(header, fmt.Sprintf("t%d (MN/m2)", i), fmt.Sprintf("z%d (mm)", i))
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range bundle.TZTable {
		values := []interface{}{row.DepthM, row.Mode}
		for j := 0; j < 5; j++ {
			values = append(values, row.T[j], row.Z[j])
		}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	return nil
}

func qzSheet(f *excelize.File, bundle analysis.Bundle) error {
	const name = "Q-z Curve"
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := []interface{}{"Depth (m)", "Soil", "Plugged"}
	for i := 1; i <= 5; i++ {
		header = append(header, fmt.Sprintf("q%d (MN)", i), fmt.Sprintf("z%d (mm)", i))
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range bundle.QZTable {
		values := []interface{}{row.DepthM, row.Soil, row.Plugged}
		for j := 0; j < 5; j++ {
			values = append(values, row.Q[j], row.Z[j])
		}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	return nil
}

func pySheet(f *excelize.File, bundle analysis.Bundle) error {
	const name = "p-y Curves"
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := []interface{}{"Depth (m)", "Soil"}
	for i := 1; i <= 4; i++ {
		header = append(header, fmt.Sprintf("p%d (kN/m)", i), fmt.Sprintf("y%d (mm)", i))
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range bundle.PYTable {
		values := []interface{}{row.DepthM, row.Soil}
		for j := 0; j < 4; j++ {
			values = append(values, row.P[j], row.Y[j])
		}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	return nil
}
