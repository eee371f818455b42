package group

import "fmt"

// Envelope folds the per-case tables into one governing table: for each
// fastener index the row with the largest resultant wins, and the name
// of the case that produced it is kept. Ties go to the first case in
// stored order.
func Envelope(results map[int]CaseResult, order []int, fastenerCount int) ([]EnvelopeRow, error) {
	if fastenerCount < 1 {
		return nil, ErrEmptyGroup
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: no evaluated load cases", ErrInvalidInput)
	}
	for _, id := range order {
		res, ok := results[id]
		if !ok || len(res.Rows) != fastenerCount {
			return nil, fmt.Errorf("%w: result table for load case %d is missing or misaligned", ErrInvalidInput, id)
		}
	}

	out := make([]EnvelopeRow, 0, fastenerCount)
	for i := 0; i < fastenerCount; i++ {
		var best CaseRow
		var bestName string
		first := true
		for _, id := range order {
			res := results[id]
			row := res.Rows[i]
			if first || row.VResKN > best.VResKN {
				best = row
				bestName = res.LoadCaseName
				first = false
			}
		}
		out = append(out, EnvelopeRow{
			FastenerID:   best.FastenerID,
			VxKN:         best.VxKN,
			VyKN:         best.VyKN,
			VResKN:       best.VResKN,
			VRdCpKN:      best.VRdCpKN,
			Utilization:  best.Utilization,
			OK:           best.OK,
			CriticalCase: bestName,
		})
	}
	return out, nil
}
