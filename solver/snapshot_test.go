package solver_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/solver"
)

// TestVisualizer_Export solves scenario A with a recorder attached and
// checks the stable document schema.
func TestVisualizer_Export(t *testing.T) {
	vis := solver.NewVisualizer([]solver.Position{
		{T: 0, I: 0, J: 0}, {T: 0, I: 0, J: 1}, {T: 0, I: 0, J: 2}, {T: 0, I: 0, J: 3},
	})
	s := solver.New(graphA(t)).WithVisualizer(vis)
	require.NoError(t, s.Solve(hypergraph.Syndrome{DefectVertices: []hypergraph.VertexID{0, 1, 3}}))
	require.Equal(t, 2, vis.Len(), `automatic "syndrome" and "solved" snapshots`)

	raw, err := vis.Export()
	require.NoError(t, err)

	var doc struct {
		Format    string            `json:"format"`
		Version   string            `json:"version"`
		Positions []map[string]any  `json:"positions"`
		Snapshots [][2]json.RawMessage `json:"snapshots"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, solver.FormatName, doc.Format)
	assert.Equal(t, solver.FormatVersion, doc.Version)
	require.Len(t, doc.Positions, 4)
	assert.Contains(t, doc.Positions[1], "t")
	assert.Contains(t, doc.Positions[1], "i")
	assert.Contains(t, doc.Positions[1], "j")
	require.Len(t, doc.Snapshots, 2)

	var name string
	require.NoError(t, json.Unmarshal(doc.Snapshots[1][0], &name))
	assert.Equal(t, "solved", name)

	var snap struct {
		DualNodes []struct {
			Vertices     []int           `json:"vertices"`
			Hair         []int           `json:"hair"`
			DualVariable json.RawMessage `json:"dual_variable"`
			Dn           int64           `json:"dn"`
			Dd           int64           `json:"dd"`
			GrowRate     int             `json:"grow_rate"`
			Rn           int64           `json:"rn"`
			Rd           int64           `json:"rd"`
		} `json:"dual_nodes"`
		Edges []struct {
			Weight   json.RawMessage `json:"weight"`
			Grown    json.RawMessage `json:"grown"`
			Vertices []int           `json:"vertices"`
		} `json:"edges"`
		Interface struct {
			SumDual json.RawMessage `json:"sum_dual"`
			Sdn     int64           `json:"sdn"`
			Sdd     int64           `json:"sdd"`
		} `json:"interface"`
		Vertices []struct {
			S bool `json:"s"`
		} `json:"vertices"`
		Subgraph    []int `json:"subgraph"`
		WeightRange struct {
			Lower json.RawMessage `json:"lower"`
			Upper json.RawMessage `json:"upper"`
			Ln    int64           `json:"ln"`
			Ld    int64           `json:"ld"`
			Un    int64           `json:"un"`
			Ud    int64           `json:"ud"`
		} `json:"weight_range"`
	}
	require.NoError(t, json.Unmarshal(doc.Snapshots[1][1], &snap))

	assert.NotEmpty(t, snap.DualNodes)
	assert.Len(t, snap.Edges, 5)
	assert.Len(t, snap.Vertices, 4)
	assert.True(t, snap.Vertices[0].S)
	assert.False(t, snap.Vertices[2].S)
	assert.Equal(t, []int{2, 4}, snap.Subgraph)
	assert.JSONEq(t, `[1, [160]]`, string(snap.WeightRange.Lower), "rationals use the [sign, digits] form")
	assert.JSONEq(t, `[1, [160]]`, string(snap.WeightRange.Upper))
	assert.JSONEq(t, `[1, [160]]`, string(snap.Interface.SumDual))

	// Numerator/denominator companions mirror the rational fields.
	assert.Equal(t, int64(160), snap.Interface.Sdn)
	assert.Equal(t, int64(1), snap.Interface.Sdd)
	assert.Equal(t, int64(160), snap.WeightRange.Ln)
	assert.Equal(t, int64(1), snap.WeightRange.Ld)
	assert.Equal(t, int64(160), snap.WeightRange.Un)
	assert.Equal(t, int64(1), snap.WeightRange.Ud)

	// All grow rates are zero at termination, with companions in lockstep.
	// Scenario A stays on integers, so every dd is 1 and the dn sum to sdn.
	sum := int64(0)
	for _, n := range snap.DualNodes {
		assert.Zero(t, n.GrowRate)
		assert.Equal(t, int64(0), n.Rn)
		assert.Equal(t, int64(1), n.Rd)
		assert.Equal(t, int64(1), n.Dd)
		sum += n.Dn
	}
	assert.Equal(t, snap.Interface.Sdn, sum, "dual variables sum to sdn")
}

// TestVisualizer_EmptyExport keeps the schema stable with no snapshots.
func TestVisualizer_EmptyExport(t *testing.T) {
	raw, err := solver.NewVisualizer(nil).Export()
	require.NoError(t, err)
	assert.JSONEq(t, `{"format":"mwpf","version":"1.0","positions":[],"snapshots":[]}`, string(raw))
}
