package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwpf/codes"
	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/solver"
	"github.com/katalvlaran/mwpf/weight"
)

// TestWeightFromProbability pins the quantization: p=0.1 → ln(9) ≈ 2.1972 →
// 2197 at scale 1000.
func TestWeightFromProbability(t *testing.T) {
	w, err := codes.WeightFromProbability(0.1)
	require.NoError(t, err)
	assert.True(t, w.Equal(weight.FromInt(2197)))

	_, err = codes.WeightFromProbability(0)
	assert.ErrorIs(t, err, codes.ErrBadProbability)
	_, err = codes.WeightFromProbability(0.5)
	assert.ErrorIs(t, err, codes.ErrBadProbability)
}

// TestNewRepetitionCode verifies the chain-with-boundaries shape.
func TestNewRepetitionCode(t *testing.T) {
	g, err := codes.NewRepetitionCode(5, 0.1)
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexNum())
	assert.Equal(t, 5, g.EdgeNum())
	assert.Equal(t, []hypergraph.VertexID{0}, g.Vertices(0), "left boundary half-edge")
	assert.Equal(t, []hypergraph.VertexID{1, 2}, g.Vertices(2))
	assert.Equal(t, []hypergraph.VertexID{3}, g.Vertices(4), "right boundary half-edge")

	_, err = codes.NewRepetitionCode(1, 0.1)
	assert.ErrorIs(t, err, codes.ErrBadDistance)
}

// TestRepetitionCode_Decodes runs a full decode on the generated graph: a
// single flipped qubit in the middle produces two defects whose cheapest
// explanation is that one edge.
func TestRepetitionCode_Decodes(t *testing.T) {
	g, err := codes.NewRepetitionCode(5, 0.1)
	require.NoError(t, err)

	s := solver.New(g)
	require.NoError(t, s.Solve(hypergraph.Syndrome{DefectVertices: []hypergraph.VertexID{1, 2}}))
	sub, rng, err := s.SubgraphRange()
	require.NoError(t, err)

	assert.Equal(t, []hypergraph.EdgeID{2}, sub, "qubit 2 flips detectors 1 and 2")
	assert.True(t, rng.IsOptimal())
	assert.True(t, rng.Upper.Equal(weight.FromInt(2197)))
}

// TestNewRingCode verifies the periodic shape and a wrap-around decode.
func TestNewRingCode(t *testing.T) {
	g, err := codes.NewRingCode(4, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexNum())
	assert.Equal(t, []hypergraph.VertexID{3, 0}, g.Vertices(3), "edge 3 wraps")

	s := solver.New(g)
	require.NoError(t, s.Solve(hypergraph.Syndrome{DefectVertices: []hypergraph.VertexID{0, 3}}))
	sub, rng, err := s.SubgraphRange()
	require.NoError(t, err)
	assert.Equal(t, []hypergraph.EdgeID{3}, sub)
	assert.True(t, rng.IsOptimal())

	_, err = codes.NewRingCode(2, 0.1)
	assert.ErrorIs(t, err, codes.ErrBadDistance)
}
