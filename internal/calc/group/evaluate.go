package group

// Evaluate pairs each fastener's demand with the shared group resistance.
// Pure function of its inputs.
func Evaluate(forces []FastenerForce, res Resistance) []CaseRow {
	rows := make([]CaseRow, 0, len(forces))
	for _, f := range forces {
		util := f.VResKN / res.VRdCpKN
		rows = append(rows, CaseRow{
			FastenerID:  f.FastenerID,
			VxKN:        f.VxKN,
			VyKN:        f.VyKN,
			VResKN:      f.VResKN,
			VRdCpKN:     res.VRdCpKN,
			Utilization: util,
			OK:          util <= 1.0,
		})
	}
	return rows
}

// RunCase distributes one load case and evaluates it against the group
// resistance.
func RunCase(fs []Fastener, lc LoadCase, cap CapacityInput) (CaseResult, error) {
	dist, err := Distribute(fs, lc)
	if err != nil {
		return CaseResult{}, err
	}
	res, err := GroupResistance(fs, cap)
	if err != nil {
		return CaseResult{}, err
	}
	return CaseResult{
		LoadCaseID:   lc.ID,
		LoadCaseName: lc.Name,
		CentroidXMM:  dist.CentroidXMM,
		CentroidYMM:  dist.CentroidYMM,
		MTotalKNMM:   dist.MTotalKNMM,
		Resistance:   res,
		Rows:         Evaluate(dist.Forces, res),
	}, nil
}
