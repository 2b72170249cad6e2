package transfer

import (
	"encoding/json"
	"net/http"

	"Pylon/internal/calc/request"
)

type TZInput struct {
	Profile request.ProfileSpec `json:"profile"`
	Pile    request.PileSpec    `json:"pile"`
	DepthsM []float64           `json:"depths_m"`
}

type TZOutput struct {
	Rows []TZRow `json:"rows"`
}

type QZInput struct {
	Profile   request.ProfileSpec `json:"profile"`
	Pile      request.PileSpec    `json:"pile"`
	TipDepthM float64             `json:"tip_depth_m"`
}

type QZOutput struct {
	Rows []QZRow `json:"rows"`
}

type Handler struct{}

func (h *Handler) CalcTZ(w http.ResponseWriter, r *http.Request) {
	var input TZInput
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
	if len(input.DepthsM) == 0 {
		http.Error(w, "depths_m must not be empty", http.StatusBadRequest)
		return
	}

	rows := TZTable(profile, p, input.DepthsM)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TZOutput{Rows: rows})
}

func (h *Handler) CalcQZ(w http.ResponseWriter, r *http.Request) {
	var input QZInput
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
	if input.TipDepthM <= 0 {
		http.Error(w, "tip_depth_m must be positive", http.StatusBadRequest)
		return
	}

	rows := QZTable(profile, p, input.TipDepthM)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(QZOutput{Rows: rows})
}
