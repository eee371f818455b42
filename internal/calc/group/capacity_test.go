package group

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPryoutResistance_FactorsSaturateAtOne(t *testing.T) {
	in := CapacityInput{
		FckMPa:         30,
		HefMM:          100,
		EdgeDistanceMM: 150, // exactly 1.5*hef
		GammaMc:        1.5,
		KCp:            2.0,
	}
	res, err := PryoutResistance(in, 300, 4) // exactly 3*hef
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.PsiEdge)
	assert.Equal(t, 1.0, res.PsiSpacing)
	assert.InDelta(t, 0.5, res.PsiGroup, 1e-12)

	// NRk,c0 = 7.2 * sqrt(30) * 100^1.5 / 1000 kN
	wantNrk := 7.2 * math.Sqrt(30) * math.Pow(100, 1.5) / 1000.0
	assert.InDelta(t, wantNrk, res.NRkC0KN, 1e-9)
	assert.InDelta(t, 2.0*wantNrk*0.5/1.5, res.VRdCpKN, 1e-9)
}

func TestPryoutResistance_CloseEdgeReduces(t *testing.T) {
	in := CapacityInput{FckMPa: 30, HefMM: 100, EdgeDistanceMM: 75, GammaMc: 1.5, KCp: 2.0}
	res, err := PryoutResistance(in, 300, 1)
	require.NoError(t, err)
	// (75 / 150)^1.5
	assert.InDelta(t, math.Pow(0.5, 1.5), res.PsiEdge, 1e-12)
	assert.Equal(t, 1.0, res.PsiSpacing)
	assert.Equal(t, 1.0, res.PsiGroup)
}

func TestPryoutResistance_FactorsBounded(t *testing.T) {
	cases := []struct {
		edge, spacing float64
		n             int
	}{
		{50, 80, 2},
		{1000, 2000, 16},
		{150, 120, 1},
		{5, 5, 100},
	}
	for _, tc := range cases {
		in := CapacityInput{FckMPa: 25, HefMM: 120, EdgeDistanceMM: tc.edge}
		res, err := PryoutResistance(in, tc.spacing, tc.n)
		require.NoError(t, err)
		assert.Greater(t, res.PsiEdge, 0.0)
		assert.LessOrEqual(t, res.PsiEdge, 1.0)
		assert.Greater(t, res.PsiSpacing, 0.0)
		assert.LessOrEqual(t, res.PsiSpacing, 1.0)
		assert.Greater(t, res.PsiGroup, 0.0)
		assert.LessOrEqual(t, res.PsiGroup, 1.0)
	}
}

func TestPryoutResistance_Defaults(t *testing.T) {
	in := CapacityInput{FckMPa: 30, HefMM: 100, EdgeDistanceMM: 150}
	res, err := PryoutResistance(in, 300, 1)
	require.NoError(t, err)
	// gammaMc defaults to 1.5, kCp to 2.0.
	want := 2.0 * res.NRkC0KN / 1.5
	assert.InDelta(t, want, res.VRdCpKN, 1e-9)
}

func TestPryoutResistance_InvalidInput(t *testing.T) {
	_, err := PryoutResistance(CapacityInput{FckMPa: -1, HefMM: 100, EdgeDistanceMM: 150}, 300, 2)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = PryoutResistance(CapacityInput{FckMPa: math.NaN(), HefMM: 100, EdgeDistanceMM: 150}, 300, 2)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = PryoutResistance(CapacityInput{FckMPa: 30, HefMM: 100, EdgeDistanceMM: 150}, 300, 0)
	require.ErrorIs(t, err, ErrEmptyGroup)
}

func TestGroupResistance_AutoSpacing(t *testing.T) {
	fs := []Fastener{
		{ID: 1, XMM: 0, YMM: 0},
		{ID: 2, XMM: 150, YMM: 0}, // governing spacing 150 = hef*1.5
	}
	in := CapacityInput{FckMPa: 30, HefMM: 100, EdgeDistanceMM: 150, GammaMc: 1.5, KCp: 2.0}
	res, err := GroupResistance(fs, in)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(150.0/300.0, 1.5), res.PsiSpacing, 1e-12)
}

func TestGroupResistance_EmptyGroup(t *testing.T) {
	_, err := GroupResistance(nil, CapacityInput{FckMPa: 30, HefMM: 100, EdgeDistanceMM: 150})
	require.ErrorIs(t, err, ErrEmptyGroup)
}
