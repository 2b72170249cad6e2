// Package batch runs several complete pile analyses in one request, e.g.
// candidate pile geometries against the same site.
package batch

import (
	"fmt"

	"Pylon/internal/calc/analysis"
)

type Input struct {
	Items []analysis.Input `json:"items"`
}

type Result struct {
	Results []analysis.Bundle `json:"results"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]analysis.Bundle, 0, len(in.Items))}
	for i, item := range in.Items {
		bundle, err := analysis.RunInput(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, bundle)
	}
	return out, nil
}
