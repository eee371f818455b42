package group

import (
	"fmt"
	"math"
)

// PryoutResistance computes the design pry-out shear resistance of the
// whole group. The characteristic cone resistance NRk,c0 comes out in N
// for fck in MPa and hef in mm and is reported in kN. Every psi factor
// is capped at 1.0, so a generous edge or spacing never amplifies the
// resistance.
func PryoutResistance(in CapacityInput, spacingMM float64, n int) (Resistance, error) {
	if n < 1 {
		return Resistance{}, ErrEmptyGroup
	}
	if err := checkFinite(in.FckMPa, in.HefMM, in.DiameterMM, in.EdgeDistanceMM, spacingMM, in.GammaMc, in.KCp); err != nil {
		return Resistance{}, err
	}
	if in.FckMPa <= 0 || in.HefMM <= 0 || in.EdgeDistanceMM <= 0 || spacingMM <= 0 {
		return Resistance{}, fmt.Errorf("%w: fck, hef, edge distance and spacing must be positive", ErrInvalidInput)
	}
	gammaMc := in.GammaMc
	if gammaMc <= 0 {
		gammaMc = 1.5
	}
	kCp := in.KCp
	if kCp <= 0 {
		kCp = 2.0
	}

	psiEdge := math.Min(1.0, math.Pow(in.EdgeDistanceMM/(1.5*in.HefMM), 1.5))
	psiSpacing := math.Min(1.0, math.Pow(spacingMM/(3.0*in.HefMM), 1.5))
	psiGroup := 1.0 / math.Sqrt(float64(n))

	nrk := 7.2 * math.Sqrt(in.FckMPa) * math.Pow(in.HefMM, 1.5) / 1000.0 // kN
	psi := psiEdge * psiSpacing * psiGroup
	vrd := kCp * nrk * psi / gammaMc

	return Resistance{
		VRdCpKN:    vrd,
		PsiEdge:    psiEdge,
		PsiSpacing: psiSpacing,
		PsiGroup:   psiGroup,
		NRkC0KN:    nrk,
	}, nil
}

// GroupResistance resolves the governing spacing from the layout (or the
// manual override) and computes the pry-out resistance for it.
func GroupResistance(fs []Fastener, in CapacityInput) (Resistance, error) {
	if len(fs) == 0 {
		return Resistance{}, ErrEmptyGroup
	}
	spacing, err := ResolveSpacing(fs, in)
	if err != nil {
		return Resistance{}, err
	}
	return PryoutResistance(in, spacing, len(fs))
}
