package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	group "Anchorage/internal/calc/group"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string             `json:"project"`
	Author  string             `json:"author"`
	Title   string             `json:"title"`
	Notes   string             `json:"notes"`
	Model   group.ModelRequest `json:"model"`
}

type Handler struct{}

// Generate renders the load-case envelope of the supplied model as a
// PDF: header, resistance breakdown, one table row per fastener.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Fastener Group Report"
	}

	store, err := group.FromSnapshot(input.Model.Fasteners, input.Model.LoadCases, input.Model.ActiveCaseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rows, err := store.RunEnvelope(input.Model.Capacity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := group.GroupResistance(store.Fasteners(), input.Model.Capacity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Group pry-out resistance")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("NRk,c0 = %.2f kN   psi_edge = %.3f   psi_spacing = %.3f   psi_group = %.3f",
		res.NRkC0KN, res.PsiEdge, res.PsiSpacing, res.PsiGroup))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("VRd,cp = %.2f kN", res.VRdCpKN))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{12, 22, 22, 22, 22, 22, 20, 38}
	headers := []string{"#", "Vx, kN", "Vy, kN", "Vres, kN", "VRd, kN", "Util.", "Check", "Governing case"}
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 7, hd, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		check := "OK"
		if !row.OK {
			check = "FAIL"
		}
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", row.FastenerID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.2f", row.VxKN), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.2f", row.VyKN), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.2f", row.VResKN), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.2f", row.VRdCpKN), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%.3f", row.Utilization), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, check, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[7], 6, row.CriticalCase, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
