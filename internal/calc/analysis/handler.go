package analysis

import (
	"encoding/json"
	"net/http"

	"Pylon/internal/calc/lateral"
	"Pylon/internal/calc/request"
)

type Input struct {
	Profile request.ProfileSpec `json:"profile"`
	Pile    request.PileSpec    `json:"pile"`
	Options Options             `json:"options"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	bundle, err := RunInput(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bundle)
}

// RunInput validates a decoded payload and executes the analysis. Shared by
// the direct endpoint, the batch endpoint and the exporters.
func RunInput(input Input) (Bundle, error) {
	profile, err := input.Profile.BuildProfile()
	if err != nil {
		return Bundle{}, err
	}
	p, err := input.Pile.BuildPile()
	if err != nil {
		return Bundle{}, err
	}
	if input.Options.Analysis != "" {
		if _, err := lateral.ParseAnalysisType(string(input.Options.Analysis)); err != nil {
			return Bundle{}, err
		}
	}
	return Run(profile, p, input.Options), nil
}
