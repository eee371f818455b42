package batch

import (
	"fmt"

	group "Anchorage/internal/calc/group"
)

type EnvelopeBatchInput struct {
	Items []group.ModelRequest `json:"items"`
}

type EnvelopeBatchResult struct {
	Results []group.EnvelopeResponse `json:"results"`
}

// CalculateEnvelope runs the full load-case envelope for every model in
// the batch. One bad model fails the whole batch, with its index.
func CalculateEnvelope(in EnvelopeBatchInput) (EnvelopeBatchResult, error) {
	if len(in.Items) == 0 {
		return EnvelopeBatchResult{}, fmt.Errorf("no items")
	}
	out := EnvelopeBatchResult{Results: make([]group.EnvelopeResponse, 0, len(in.Items))}
	for i, item := range in.Items {
		store, err := group.FromSnapshot(item.Fasteners, item.LoadCases, item.ActiveCaseID)
		if err != nil {
			return EnvelopeBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		rows, err := store.RunEnvelope(item.Capacity)
		if err != nil {
			return EnvelopeBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		res, err := group.GroupResistance(store.Fasteners(), item.Capacity)
		if err != nil {
			return EnvelopeBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, group.EnvelopeResponse{Resistance: res, Rows: rows})
	}
	return out, nil
}
