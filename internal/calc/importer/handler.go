// Package importer accepts a spreadsheet of soil layers, builds a profile
// from it and runs a complete analysis. One sheet row per layer with
// constant properties over the layer span.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"Pylon/internal/calc/analysis"
	"Pylon/internal/calc/lateral"
	"Pylon/internal/calc/request"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

// Profile runs an analysis from an uploaded layer sheet. Pile geometry and
// run options arrive as form values alongside the file.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var layers []request.LayerSpec
	for i := 1; i < len(rows); i++ {
		layer, err := parseLayerRow(rows[i])
		if err != nil {
			continue
		}
		layers = append(layers, layer)
	}
	if len(layers) == 0 {
		http.Error(w, "No valid layer rows", http.StatusBadRequest)
		return
	}

	input := analysis.Input{
		Profile: request.ProfileSpec{
			SiteName: r.FormValue("site_name"),
			Layers:   layers,
		},
		Pile: request.PileSpec{
			DiameterM:      formFloat(r, "diameter_m"),
			WallThicknessM: formFloat(r, "wall_thickness_m"),
			LengthM:        formFloat(r, "length_m"),
			PileType:       r.FormValue("pile_type"),
		},
		Options: analysis.Options{
			MaxDepthM:   formFloat(r, "max_depth_m"),
			DZ:          formFloat(r, "dz_m"),
			Analysis:    lateral.AnalysisType(r.FormValue("analysis_type")),
			UseFactored: r.FormValue("use_factored") == "true",
		},
	}
	if input.Options.Analysis == "" {
		input.Options.Analysis = lateral.Static
	}
	if input.Options.MaxDepthM <= 0 {
		input.Options.MaxDepthM = input.Pile.LengthM
	}

	bundle, err := analysis.RunInput(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bundle)
}

// parseLayerRow reads one sheet row:
// name, soil_type, depth_top_m, depth_bot_m, gamma_kn_m3, su_kpa, phi_deg,
// relative_density_pct(optional), carbonate_pct(optional)
func parseLayerRow(row []string) (request.LayerSpec, error) {
	if len(row) < 5 {
		return request.LayerSpec{}, fmt.Errorf("bad row")
	}
	top, err := toFloat(row[2])
	if err != nil {
		return request.LayerSpec{}, err
	}
	bot, err := toFloat(row[3])
	if err != nil {
		return request.LayerSpec{}, err
	}
	gamma, err := toFloat(row[4])
	if err != nil {
		return request.LayerSpec{}, err
	}

	layer := request.LayerSpec{
		Name:      row[0],
		SoilType:  row[1],
		DepthTopM: top,
		DepthBotM: bot,
		GammaPrimeKNM3: []request.PointSpec{
			{DepthM: top, Value: gamma},
			{DepthM: bot, Value: gamma},
		},
	}

	if len(row) > 5 && row[5] != "" {
		if su, err := toFloat(row[5]); err == nil && su > 0 {
			layer.SuKPa = []request.PointSpec{
				{DepthM: top, Value: su},
				{DepthM: bot, Value: su},
			}
		}
	}
	if len(row) > 6 && row[6] != "" {
		if phi, err := toFloat(row[6]); err == nil && phi > 0 {
			layer.PhiPrimeDeg = []request.PointSpec{
				{DepthM: top, Value: phi},
				{DepthM: bot, Value: phi},
			}
		}
	}
	if len(row) > 7 && row[7] != "" {
		if dr, err := toFloat(row[7]); err == nil {
			layer.RelativeDensityPct = &dr
		}
	}
	if len(row) > 8 && row[8] != "" {
		if cc, err := toFloat(row[8]); err == nil {
			layer.CarbonateContentPct = cc
		}
	}

	return layer, nil
}

func formFloat(r *http.Request, key string) float64 {
	v, err := toFloat(r.FormValue(key))
	if err != nil {
		return 0
	}
	return v
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
