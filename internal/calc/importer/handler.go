package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	group "Anchorage/internal/calc/group"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	FastenerCount int                    `json:"fastener_count"`
	LoadCaseCount int                    `json:"load_case_count"`
	Skipped       int                    `json:"skipped"`
	Envelope      group.EnvelopeResponse `json:"envelope"`
}

// Model imports an analysis model from an xlsx workbook. Sheet
// "Fasteners" carries x, y per row; sheet "LoadCases" carries name, Vx,
// Vy, Mz and optionally Px, Py. The first row of each sheet is a header.
// Capacity parameters ride along as a JSON form field.
func (h *Handler) Model(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var cap group.CapacityInput
	if raw := r.FormValue("capacity"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cap); err != nil {
			http.Error(w, "Invalid capacity parameters", http.StatusBadRequest)
			return
		}
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	store := group.NewModelStore()
	skipped := 0

	fastRows, err := f.GetRows("Fasteners")
	if err != nil || len(fastRows) < 2 {
		http.Error(w, "Sheet Fasteners is missing or empty", http.StatusBadRequest)
		return
	}
	for i := 1; i < len(fastRows); i++ {
		x, y, err := parseFastenerRow(fastRows[i])
		if err != nil {
			skipped++
			continue
		}
		if _, err := store.AddFastener(x, y); err != nil {
			skipped++
		}
	}

	caseRows, err := f.GetRows("LoadCases")
	if err != nil || len(caseRows) < 2 {
		http.Error(w, "Sheet LoadCases is missing or empty", http.StatusBadRequest)
		return
	}
	seeded := store.LoadCases()[0]
	imported := 0
	for i := 1; i < len(caseRows); i++ {
		lc, err := parseLoadCaseRow(caseRows[i])
		if err != nil {
			skipped++
			continue
		}
		added, err := store.AddLoadCase(lc.Name, lc.VxKN, lc.VyKN, lc.MzKNM)
		if err != nil {
			skipped++
			continue
		}
		if !lc.AtCentroid {
			lc.ID = added.ID
			if err := store.UpdateLoadCase(added.ID, lc); err != nil {
				skipped++
				continue
			}
		}
		imported++
	}
	if imported == 0 {
		http.Error(w, "No valid load case rows", http.StatusBadRequest)
		return
	}
	// The seeded empty case only exists so the store is never caseless.
	_ = store.DeleteLoadCase(seeded.ID)

	rows, err := store.RunEnvelope(cap)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := group.GroupResistance(store.Fasteners(), cap)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out := ImportResult{
		FastenerCount: len(store.Fasteners()),
		LoadCaseCount: len(store.LoadCases()),
		Skipped:       skipped,
		Envelope:      group.EnvelopeResponse{Resistance: res, Rows: rows},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseFastenerRow(row []string) (float64, float64, error) {
	if len(row) < 2 {
		return 0, 0, fmt.Errorf("bad row")
	}
	x, err := toFloat(row[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := toFloat(row[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseLoadCaseRow(row []string) (group.LoadCase, error) {
	// expected: name, vx_kn, vy_kn, mz_knm, px_mm(optional), py_mm(optional)
	if len(row) < 4 {
		return group.LoadCase{}, fmt.Errorf("bad row")
	}
	name := strings.TrimSpace(row[0])
	if name == "" {
		return group.LoadCase{}, fmt.Errorf("missing name")
	}
	vx, err := toFloat(row[1])
	if err != nil {
		return group.LoadCase{}, err
	}
	vy, err := toFloat(row[2])
	if err != nil {
		return group.LoadCase{}, err
	}
	mz, err := toFloat(row[3])
	if err != nil {
		return group.LoadCase{}, err
	}
	lc := group.LoadCase{Name: name, VxKN: vx, VyKN: vy, MzKNM: mz, AtCentroid: true}
	if len(row) >= 6 && strings.TrimSpace(row[4]) != "" && strings.TrimSpace(row[5]) != "" {
		px, err := toFloat(row[4])
		if err != nil {
			return group.LoadCase{}, err
		}
		py, err := toFloat(row[5])
		if err != nil {
			return group.LoadCase{}, err
		}
		lc.AtCentroid = false
		lc.PxMM = px
		lc.PyMM = py
	}
	return lc, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
