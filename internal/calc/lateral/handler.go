package lateral

import (
	"encoding/json"
	"net/http"

	"Pylon/internal/calc/request"
)

type Input struct {
	Profile      request.ProfileSpec `json:"profile"`
	Pile         request.PileSpec    `json:"pile"`
	DepthsM      []float64           `json:"depths_m"`
	AnalysisType string              `json:"analysis_type"`
}

type Output struct {
	Rows []Row `json:"rows"`
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
	analysis, err := ParseAnalysisType(input.AnalysisType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(input.DepthsM) == 0 {
		http.Error(w, "depths_m must not be empty", http.StatusBadRequest)
		return
	}

	rows := Table(profile, p, input.DepthsM, analysis)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{Rows: rows})
}
