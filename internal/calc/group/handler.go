package group

import (
	"encoding/json"
	"net/http"
)

// ModelRequest is the full snapshot the UI sends for any computation.
type ModelRequest struct {
	Fasteners    []Fastener    `json:"fasteners"`
	LoadCases    []LoadCase    `json:"load_cases"`
	ActiveCaseID int           `json:"active_case_id"`
	Capacity     CapacityInput `json:"capacity"`
}

type EnvelopeResponse struct {
	Resistance Resistance    `json:"resistance"`
	Rows       []EnvelopeRow `json:"rows"`
}

type SpacingResponse struct {
	SpacingMM   float64   `json:"spacing_mm"`
	PerFastener []float64 `json:"per_fastener_mm"`
	Manual      bool      `json:"manual"`
	Warnings    []string  `json:"warnings"`
}

type Handler struct{}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*ModelStore, ModelRequest, bool) {
	var input ModelRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return nil, ModelRequest{}, false
	}
	store, err := FromSnapshot(input.Fasteners, input.LoadCases, input.ActiveCaseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, ModelRequest{}, false
	}
	return store, input, true
}

// Case evaluates the active load case.
func (h *Handler) Case(w http.ResponseWriter, r *http.Request) {
	store, input, ok := h.decode(w, r)
	if !ok {
		return
	}
	res, err := store.RunActive(input.Capacity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Cases evaluates every load case, keyed by load case id.
func (h *Handler) Cases(w http.ResponseWriter, r *http.Request) {
	store, input, ok := h.decode(w, r)
	if !ok {
		return
	}
	results, _, err := store.RunAll(input.Capacity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// Envelope evaluates every load case and returns the governing table.
func (h *Handler) Envelope(w http.ResponseWriter, r *http.Request) {
	store, input, ok := h.decode(w, r)
	if !ok {
		return
	}
	rows, err := store.RunEnvelope(input.Capacity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := GroupResistance(store.Fasteners(), input.Capacity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(EnvelopeResponse{Resistance: res, Rows: rows})
}

// Spacing reports the governing spacing and the code-minimum warnings.
func (h *Handler) Spacing(w http.ResponseWriter, r *http.Request) {
	var input ModelRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Fasteners) == 0 {
		http.Error(w, ErrEmptyGroup.Error(), http.StatusBadRequest)
		return
	}
	spacing, err := ResolveSpacing(input.Fasteners, input.Capacity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := SpacingResponse{
		SpacingMM: spacing,
		Manual:    input.Capacity.SpacingMM > 0,
		Warnings: SpacingWarnings(spacing, input.Capacity.EdgeDistanceMM,
			input.Capacity.DiameterMM, input.Capacity.HefMM),
	}
	// Nearest-neighbor distances are undefined below two fasteners; the
	// +Inf sentinel must never reach the JSON boundary.
	if len(input.Fasteners) >= 2 {
		_, out.PerFastener = MinimumSpacing(input.Fasteners)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
	}
}
