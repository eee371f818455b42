package group

import "errors"

var (
	ErrEmptyGroup         = errors.New("fastener group is empty")
	ErrDegenerateGeometry = errors.New("all fasteners coincide, polar moment is zero")
	ErrLastLoadCase       = errors.New("cannot delete the last load case")
	ErrInvalidInput       = errors.New("invalid input")
)

// Fastener is one anchor or stud in the fixture plane. Coordinates are
// millimeters in the local fixture system.
type Fastener struct {
	ID  int     `json:"id"`
	XMM float64 `json:"x_mm"`
	YMM float64 `json:"y_mm"`
}

// LoadCase is one set of in-plane actions on the fixture. Shear in kN,
// moment in kN*m. Px/Py are used only when AtCentroid is false.
type LoadCase struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	VxKN       float64 `json:"vx_kn"`
	VyKN       float64 `json:"vy_kn"`
	MzKNM      float64 `json:"mz_knm"`
	AtCentroid bool    `json:"at_centroid"`
	PxMM       float64 `json:"px_mm"`
	PyMM       float64 `json:"py_mm"`
}

// CapacityInput collects the material and geometry parameters for the
// pry-out resistance. SpacingMM = 0 means derive spacing from the
// fastener layout; a positive value is a manual override and always wins.
type CapacityInput struct {
	FckMPa         float64 `json:"fck_mpa"`
	HefMM          float64 `json:"hef_mm"`
	DiameterMM     float64 `json:"diameter_mm"`
	EdgeDistanceMM float64 `json:"edge_distance_mm"`
	SpacingMM      float64 `json:"spacing_mm"`
	GammaMc        float64 `json:"gamma_mc"`
	KCp            float64 `json:"k_cp"`
}

// FastenerForce is the demand on one fastener under one load case.
type FastenerForce struct {
	FastenerID int     `json:"fastener_id"`
	XMM        float64 `json:"x_mm"`
	YMM        float64 `json:"y_mm"`
	VxKN       float64 `json:"vx_kn"`
	VyKN       float64 `json:"vy_kn"`
	VResKN     float64 `json:"vres_kn"`
}

// Distribution is the full result of distributing one load case over the
// group, with the bookkeeping a caller needs to draw arrows or audit the
// numbers: centroid, effective application point and total moment.
type Distribution struct {
	Forces      []FastenerForce `json:"forces"`
	CentroidXMM float64         `json:"centroid_x_mm"`
	CentroidYMM float64         `json:"centroid_y_mm"`
	PxMM        float64         `json:"px_mm"`
	PyMM        float64         `json:"py_mm"`
	MTotalKNMM  float64         `json:"m_total_knmm"`
}

// Resistance is the group-level pry-out design resistance. One value is
// shared by every fastener in the group.
type Resistance struct {
	VRdCpKN    float64 `json:"vrd_cp_kn"`
	PsiEdge    float64 `json:"psi_edge"`
	PsiSpacing float64 `json:"psi_spacing"`
	PsiGroup   float64 `json:"psi_group"`
	NRkC0KN    float64 `json:"nrk_c0_kn"`
}

// CaseRow pairs one fastener's demand with the group resistance.
type CaseRow struct {
	FastenerID  int     `json:"fastener_id"`
	VxKN        float64 `json:"vx_kn"`
	VyKN        float64 `json:"vy_kn"`
	VResKN      float64 `json:"vres_kn"`
	VRdCpKN     float64 `json:"vrd_cp_kn"`
	Utilization float64 `json:"utilization"`
	OK          bool    `json:"ok"`
}

// CaseResult is the evaluated table for one load case.
type CaseResult struct {
	LoadCaseID   int        `json:"load_case_id"`
	LoadCaseName string     `json:"load_case_name"`
	CentroidXMM  float64    `json:"centroid_x_mm"`
	CentroidYMM  float64    `json:"centroid_y_mm"`
	MTotalKNMM   float64    `json:"m_total_knmm"`
	Resistance   Resistance `json:"resistance"`
	Rows         []CaseRow  `json:"rows"`
}

// EnvelopeRow is the governing result for one fastener across all load
// cases, together with the case that produced it.
type EnvelopeRow struct {
	FastenerID   int     `json:"fastener_id"`
	VxKN         float64 `json:"vx_kn"`
	VyKN         float64 `json:"vy_kn"`
	VResKN       float64 `json:"vres_kn"`
	VRdCpKN      float64 `json:"vrd_cp_kn"`
	Utilization  float64 `json:"utilization"`
	OK           bool    `json:"ok"`
	CriticalCase string  `json:"critical_case"`
}
