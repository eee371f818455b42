package group

import (
	"fmt"
	"math"
)

// Positions are mm, moments kN*m on input.
const momentToKNmm = 1000.0

func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite number", ErrInvalidInput)
		}
	}
	return nil
}

// Distribute superposes the direct and torsional shear of one load case
// over the group. Rigid-plate elastic method: every fastener is an
// identical linear spring, so direct shear splits equally and torsional
// shear splits proportionally to the distance from the centroid. The
// centroid of stiffness is taken as the centroid of geometry, which
// holds only while all fasteners are the same size.
func Distribute(fs []Fastener, lc LoadCase) (Distribution, error) {
	if err := checkFinite(lc.VxKN, lc.VyKN, lc.MzKNM, lc.PxMM, lc.PyMM); err != nil {
		return Distribution{}, err
	}
	for _, f := range fs {
		if err := checkFinite(f.XMM, f.YMM); err != nil {
			return Distribution{}, err
		}
	}

	xc, yc, err := Centroid(fs)
	if err != nil {
		return Distribution{}, err
	}

	px, py := lc.PxMM, lc.PyMM
	if lc.AtCentroid {
		px, py = xc, yc
	}

	// Moment from the eccentricity of the shear force about the centroid,
	// plus the applied torsion converted to kN*mm.
	mOffset := lc.VxKN*(py-yc) - lc.VyKN*(px-xc)
	mTotal := lc.MzKNM*momentToKNmm + mOffset

	j := PolarMoment(fs, xc, yc)
	if mTotal != 0 && j <= 0 {
		return Distribution{}, ErrDegenerateGeometry
	}

	n := float64(len(fs))
	forces := make([]FastenerForce, 0, len(fs))
	for _, f := range fs {
		xr := f.XMM - xc
		yr := f.YMM - yc
		vx := lc.VxKN / n
		vy := lc.VyKN / n
		if mTotal != 0 {
			vx += -mTotal * yr / j
			vy += mTotal * xr / j
		}
		forces = append(forces, FastenerForce{
			FastenerID: f.ID,
			XMM:        f.XMM,
			YMM:        f.YMM,
			VxKN:       vx,
			VyKN:       vy,
			VResKN:     math.Hypot(vx, vy),
		})
	}

	return Distribution{
		Forces:      forces,
		CentroidXMM: xc,
		CentroidYMM: yc,
		PxMM:        px,
		PyMM:        py,
		MTotalKNMM:  mTotal,
	}, nil
}
