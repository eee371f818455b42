package batch

import (
	"testing"

	group "Anchorage/internal/calc/group"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(vx float64) group.ModelRequest {
	return group.ModelRequest{
		Fasteners: []group.Fastener{
			{ID: 1, XMM: 0, YMM: 0},
			{ID: 2, XMM: 200, YMM: 0},
		},
		LoadCases: []group.LoadCase{
			{ID: 1, Name: "LC1", VxKN: vx, AtCentroid: true},
		},
		Capacity: group.CapacityInput{FckMPa: 30, HefMM: 100, EdgeDistanceMM: 150, GammaMc: 1.5, KCp: 2.0},
	}
}

func TestCalculateEnvelope(t *testing.T) {
	in := EnvelopeBatchInput{Items: []group.ModelRequest{testModel(10), testModel(40)}}
	out, err := CalculateEnvelope(in)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.InDelta(t, 5.0, out.Results[0].Rows[0].VResKN, 1e-9)
	assert.InDelta(t, 20.0, out.Results[1].Rows[0].VResKN, 1e-9)
}

func TestCalculateEnvelope_Empty(t *testing.T) {
	_, err := CalculateEnvelope(EnvelopeBatchInput{})
	require.Error(t, err)
}

func TestCalculateEnvelope_BadItemReportsIndex(t *testing.T) {
	bad := testModel(10)
	bad.LoadCases = nil
	in := EnvelopeBatchInput{Items: []group.ModelRequest{testModel(10), bad}}
	_, err := CalculateEnvelope(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	assert.ErrorIs(t, err, group.ErrInvalidInput)
}
