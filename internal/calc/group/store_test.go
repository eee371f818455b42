package group

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelStore_SeedsOneLoadCase(t *testing.T) {
	s := NewModelStore()
	cases := s.LoadCases()
	require.Len(t, cases, 1)
	assert.Equal(t, "LC1", cases[0].Name)
	assert.True(t, cases[0].AtCentroid)
	assert.Equal(t, cases[0].ID, s.ActiveCase().ID)
}

func TestModelStore_FastenerIDsNeverReused(t *testing.T) {
	s := NewModelStore()
	f1, err := s.AddFastener(0, 0)
	require.NoError(t, err)
	f2, err := s.AddFastener(100, 0)
	require.NoError(t, err)
	require.NoError(t, s.RemoveFastener(f2.ID))
	f3, err := s.AddFastener(200, 0)
	require.NoError(t, err)
	assert.Greater(t, f3.ID, f2.ID)
	assert.NotEqual(t, f1.ID, f3.ID)
}

func TestModelStore_RemoveUnknownFastener(t *testing.T) {
	s := NewModelStore()
	require.ErrorIs(t, s.RemoveFastener(42), ErrInvalidInput)
}

func TestModelStore_DeleteLastLoadCaseForbidden(t *testing.T) {
	s := NewModelStore()
	only := s.LoadCases()[0]
	require.ErrorIs(t, s.DeleteLoadCase(only.ID), ErrLastLoadCase)

	lc2, err := s.AddLoadCase("LC2", 1, 0, 0)
	require.NoError(t, err)
	require.NoError(t, s.DeleteLoadCase(only.ID))
	require.ErrorIs(t, s.DeleteLoadCase(lc2.ID), ErrLastLoadCase)
}

func TestModelStore_DeleteActiveCaseFallsBack(t *testing.T) {
	s := NewModelStore()
	lc2, err := s.AddLoadCase("LC2", 1, 0, 0)
	require.NoError(t, err)
	require.NoError(t, s.SetActiveCase(lc2.ID))
	require.NoError(t, s.DeleteLoadCase(lc2.ID))
	assert.Equal(t, s.LoadCases()[0].ID, s.ActiveCase().ID)
}

func TestModelStore_UpdateLoadCaseKeepsID(t *testing.T) {
	s := NewModelStore()
	lc := s.LoadCases()[0]
	err := s.UpdateLoadCase(lc.ID, LoadCase{ID: 999, Name: "wind", VxKN: 5, AtCentroid: true})
	require.NoError(t, err)
	got := s.LoadCases()[0]
	assert.Equal(t, lc.ID, got.ID)
	assert.Equal(t, "wind", got.Name)
	assert.Equal(t, 5.0, got.VxKN)
}

func TestModelStore_RejectsNonFinite(t *testing.T) {
	s := NewModelStore()
	_, err := s.AddFastener(math.NaN(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.AddLoadCase("bad", math.Inf(1), 0, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFromSnapshot_ContinuesCounters(t *testing.T) {
	fs := []Fastener{{ID: 7, XMM: 0, YMM: 0}, {ID: 3, XMM: 100, YMM: 0}}
	cases := []LoadCase{{ID: 5, Name: "LC5", AtCentroid: true}}
	s, err := FromSnapshot(fs, cases, 5)
	require.NoError(t, err)
	f, err := s.AddFastener(50, 50)
	require.NoError(t, err)
	assert.Equal(t, 8, f.ID)
	lc, err := s.AddLoadCase("LC6", 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, lc.ID)
}

func TestFromSnapshot_NoLoadCases(t *testing.T) {
	_, err := FromSnapshot([]Fastener{{ID: 1}}, nil, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFromSnapshot_UnknownActiveFallsBackToFirst(t *testing.T) {
	cases := []LoadCase{{ID: 2, Name: "a"}, {ID: 4, Name: "b"}}
	s, err := FromSnapshot(nil, cases, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, s.ActiveCase().ID)
}

func testCapacity() CapacityInput {
	return CapacityInput{FckMPa: 30, HefMM: 100, EdgeDistanceMM: 150, GammaMc: 1.5, KCp: 2.0}
}

func TestModelStore_RunAllKeyedByCase(t *testing.T) {
	s := NewModelStore()
	_, err := s.AddFastener(0, 0)
	require.NoError(t, err)
	_, err = s.AddFastener(200, 0)
	require.NoError(t, err)

	lc1 := s.LoadCases()[0]
	require.NoError(t, s.UpdateLoadCase(lc1.ID, LoadCase{Name: "dead", VxKN: 10, AtCentroid: true}))
	lc2, err := s.AddLoadCase("wind", 0, 20, 0)
	require.NoError(t, err)

	results, order, err := s.RunAll(testCapacity())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []int{lc1.ID, lc2.ID}, order)
	assert.Equal(t, "dead", results[lc1.ID].LoadCaseName)
	require.Len(t, results[lc2.ID].Rows, 2)
	assert.InDelta(t, 10.0, results[lc2.ID].Rows[0].VResKN, 1e-9)
}

func TestModelStore_RunActive(t *testing.T) {
	s := NewModelStore()
	_, err := s.AddFastener(0, 0)
	require.NoError(t, err)
	_, err = s.AddFastener(200, 0)
	require.NoError(t, err)
	lc := s.LoadCases()[0]
	require.NoError(t, s.UpdateLoadCase(lc.ID, LoadCase{Name: "LC1", VxKN: 8, VyKN: 6, AtCentroid: true}))

	res, err := s.RunActive(testCapacity())
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.InDelta(t, 5.0, res.Rows[0].VResKN, 1e-9)
	assert.True(t, res.Rows[0].OK)
}

func TestModelStore_RunAllEmptyGroupFails(t *testing.T) {
	s := NewModelStore()
	_, _, err := s.RunAll(testCapacity())
	require.ErrorIs(t, err, ErrEmptyGroup)
}
