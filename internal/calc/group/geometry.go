package group

import (
	"fmt"
	"math"
)

// Centroid returns the arithmetic mean position of the group.
func Centroid(fs []Fastener) (float64, float64, error) {
	if len(fs) == 0 {
		return 0, 0, ErrEmptyGroup
	}
	var sx, sy float64
	for _, f := range fs {
		sx += f.XMM
		sy += f.YMM
	}
	n := float64(len(fs))
	return sx / n, sy / n, nil
}

// PolarMoment returns the polar moment of inertia of the group about
// (xc, yc): the sum of squared distances of each fastener from that
// point, in mm^2. Callers must check > 0 before using it to distribute
// a torsional moment.
func PolarMoment(fs []Fastener, xc, yc float64) float64 {
	var j float64
	for _, f := range fs {
		dx := f.XMM - xc
		dy := f.YMM - yc
		j += dx*dx + dy*dy
	}
	return j
}

// MinimumSpacing returns the governing inter-fastener spacing: for each
// fastener the distance to its nearest neighbor, and the minimum of
// those. With fewer than two fasteners the spacing is undefined and
// +Inf is returned; the caller must fall back to a manual value.
func MinimumSpacing(fs []Fastener) (float64, []float64) {
	per := make([]float64, len(fs))
	min := math.Inf(1)
	for i := range fs {
		nearest := math.Inf(1)
		for k := range fs {
			if i == k {
				continue
			}
			dx := fs[i].XMM - fs[k].XMM
			dy := fs[i].YMM - fs[k].YMM
			d := math.Hypot(dx, dy)
			if d < nearest {
				nearest = d
			}
		}
		per[i] = nearest
		if nearest < min {
			min = nearest
		}
	}
	return min, per
}

// SpacingWarnings checks spacing and edge distance against the code
// minima: spacing >= max(3d, 100mm), edge >= max(1.5*hef, 2d). The
// warnings are advisory; computation proceeds regardless.
func SpacingWarnings(spacingMM, edgeMM, dMM, hefMM float64) []string {
	var warns []string
	sMin := math.Max(3*dMM, 100.0)
	if spacingMM < sMin {
		warns = append(warns, fmt.Sprintf("spacing %.1f mm is below the minimum %.1f mm", spacingMM, sMin))
	}
	eMin := math.Max(1.5*hefMM, 2*dMM)
	if edgeMM < eMin {
		warns = append(warns, fmt.Sprintf("edge distance %.1f mm is below the minimum %.1f mm", edgeMM, eMin))
	}
	return warns
}

// ResolveSpacing applies the override contract: a positive SpacingMM is
// the manual value and wins, otherwise the spacing is derived from the
// layout. Auto-derivation needs at least two fasteners.
func ResolveSpacing(fs []Fastener, in CapacityInput) (float64, error) {
	if in.SpacingMM > 0 {
		return in.SpacingMM, nil
	}
	min, _ := MinimumSpacing(fs)
	if math.IsInf(min, 1) {
		return 0, fmt.Errorf("%w: spacing undefined for %d fastener(s), set it manually", ErrInvalidInput, len(fs))
	}
	return min, nil
}
