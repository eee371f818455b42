package group

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentroid_Square(t *testing.T) {
	fs := []Fastener{
		{ID: 1, XMM: 0, YMM: 0},
		{ID: 2, XMM: 200, YMM: 0},
		{ID: 3, XMM: 200, YMM: 100},
		{ID: 4, XMM: 0, YMM: 100},
	}
	xc, yc, err := Centroid(fs)
	require.NoError(t, err)
	assert.Equal(t, 100.0, xc)
	assert.Equal(t, 50.0, yc)
}

func TestCentroid_Empty(t *testing.T) {
	_, _, err := Centroid(nil)
	require.ErrorIs(t, err, ErrEmptyGroup)
}

func TestPolarMoment(t *testing.T) {
	fs := []Fastener{
		{ID: 1, XMM: 100, YMM: 100},
		{ID: 2, XMM: -100, YMM: 100},
		{ID: 3, XMM: -100, YMM: -100},
		{ID: 4, XMM: 100, YMM: -100},
	}
	j := PolarMoment(fs, 0, 0)
	assert.InDelta(t, 80000.0, j, 1e-9)
}

func TestPolarMoment_Coincident(t *testing.T) {
	fs := []Fastener{
		{ID: 1, XMM: 50, YMM: 50},
		{ID: 2, XMM: 50, YMM: 50},
	}
	assert.Equal(t, 0.0, PolarMoment(fs, 50, 50))
}

func TestMinimumSpacing_TwoFasteners(t *testing.T) {
	fs := []Fastener{
		{ID: 1, XMM: 0, YMM: 0},
		{ID: 2, XMM: 100, YMM: 0},
	}
	min, per := MinimumSpacing(fs)
	assert.Equal(t, 100.0, min)
	require.Len(t, per, 2)
	assert.Equal(t, 100.0, per[0])
	assert.Equal(t, 100.0, per[1])
}

func TestMinimumSpacing_NearestNeighborWins(t *testing.T) {
	fs := []Fastener{
		{ID: 1, XMM: 0, YMM: 0},
		{ID: 2, XMM: 60, YMM: 0},
		{ID: 3, XMM: 500, YMM: 0},
	}
	min, per := MinimumSpacing(fs)
	assert.Equal(t, 60.0, min)
	assert.Equal(t, 440.0, per[2])
}

func TestMinimumSpacing_SingleFastenerUndefined(t *testing.T) {
	min, per := MinimumSpacing([]Fastener{{ID: 1}})
	assert.True(t, math.IsInf(min, 1))
	require.Len(t, per, 1)
	assert.True(t, math.IsInf(per[0], 1))
}

func TestResolveSpacing_ManualOverrideWins(t *testing.T) {
	fs := []Fastener{
		{ID: 1, XMM: 0, YMM: 0},
		{ID: 2, XMM: 100, YMM: 0},
	}
	s, err := ResolveSpacing(fs, CapacityInput{SpacingMM: 250})
	require.NoError(t, err)
	assert.Equal(t, 250.0, s)
}

func TestResolveSpacing_AutoNeedsTwoFasteners(t *testing.T) {
	_, err := ResolveSpacing([]Fastener{{ID: 1}}, CapacityInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSpacingWarnings(t *testing.T) {
	// d=16 -> min spacing max(48, 100) = 100; hef=100, d=16 -> min edge max(150, 32) = 150.
	warns := SpacingWarnings(80, 120, 16, 100)
	require.Len(t, warns, 2)

	warns = SpacingWarnings(120, 200, 16, 100)
	assert.Empty(t, warns)
}

func TestSpacingWarnings_LargeDiameterGoverns(t *testing.T) {
	// d=40 -> min spacing 120, min edge max(1.5*60, 80) = 90.
	warns := SpacingWarnings(110, 85, 40, 60)
	require.Len(t, warns, 2)
}
