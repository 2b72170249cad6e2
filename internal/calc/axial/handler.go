package axial

import (
	"encoding/json"
	"net/http"

	"Pylon/internal/calc/request"
)

type Input struct {
	Profile          request.ProfileSpec `json:"profile"`
	Pile             request.PileSpec    `json:"pile"`
	MaxDepthM        float64             `json:"max_depth_m"`
	DZ               float64             `json:"dz_m"`
	LoadingType      string              `json:"loading_type"`
	ResistanceFactor *float64            `json:"resistance_factor,omitempty"`
}

type Output struct {
	Rows []ProfileRow `json:"rows"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
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
	loading, err := ParseLoadingType(input.LoadingType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.MaxDepthM <= 0 {
		http.Error(w, "max_depth_m must be positive", http.StatusBadRequest)
		return
	}

	rows := CapacityProfile(profile, p, input.MaxDepthM, input.DZ, loading, input.ResistanceFactor)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{Rows: rows})
}
