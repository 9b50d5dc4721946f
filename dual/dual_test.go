package dual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/weight"
)

// pair builds two defect vertices joined by a weight-100 edge, with a
// weight-60 hyperedge over {0,1,2}.
func pair(t *testing.T) *hypergraph.Graph {
	t.Helper()
	g, err := hypergraph.New(3, []hypergraph.EdgeSpec{
		{Vertices: []hypergraph.VertexID{0, 1}, Weight: weight.FromInt(100)},
		{Vertices: []hypergraph.VertexID{0, 1, 2}, Weight: weight.FromInt(60)},
	})
	require.NoError(t, err)
	require.NoError(t, g.ApplySyndrome(hypergraph.Syndrome{DefectVertices: []hypergraph.VertexID{0, 1}}))

	return g
}

// TestSeedDefect verifies the singleton node shape and its +1 rate.
func TestSeedDefect(t *testing.T) {
	g := pair(t)
	m := dual.NewModule(g)

	id := m.SeedDefect(0)
	n := m.Node(id)

	assert.Equal(t, []hypergraph.VertexID{0}, n.Vertices())
	assert.Empty(t, n.Internal())
	assert.Equal(t, []hypergraph.EdgeID{0, 1}, n.Hair())
	assert.True(t, n.Value().IsZero())
	assert.Equal(t, dual.RateGrow, n.Rate())
	assert.True(t, n.IsSeed())
	assert.Equal(t, hypergraph.VertexID(0), n.SeedVertex())
}

// TestNextObstacle_EdgeTight verifies the earliest tight event wins: two
// seeds grow into e1 (w=60, ρ=2 → Δt=30) before e0 (w=100, ρ=2 → Δt=50).
func TestNextObstacle_EdgeTight(t *testing.T) {
	g := pair(t)
	m := dual.NewModule(g)
	m.SeedDefect(0)
	m.SeedDefect(1)

	ob := m.NextObstacle()
	require.Equal(t, dual.ObstacleEdgeTight, ob.Kind)
	assert.Equal(t, hypergraph.EdgeID(1), ob.Edge)
	assert.True(t, ob.Dt.Equal(weight.FromInt(30)), "Δt = (60−0)/2")

	require.NoError(t, m.Advance(ob.Dt))
	assert.True(t, g.IsTight(1))
	assert.True(t, g.Grown(0).Equal(weight.FromInt(60)), "e0 grew 2×30")
	assert.True(t, m.SumDual().Equal(weight.FromInt(60)))
}

// TestNextObstacle_TieBreak verifies the lowest edge index wins an exact tie.
func TestNextObstacle_TieBreak(t *testing.T) {
	g, err := hypergraph.New(2, []hypergraph.EdgeSpec{
		{Vertices: []hypergraph.VertexID{0}, Weight: weight.FromInt(50)},
		{Vertices: []hypergraph.VertexID{0, 1}, Weight: weight.FromInt(50)},
	})
	require.NoError(t, err)
	require.NoError(t, g.ApplySyndrome(hypergraph.Syndrome{DefectVertices: []hypergraph.VertexID{0}}))
	m := dual.NewModule(g)
	m.SeedDefect(0)

	ob := m.NextObstacle()
	require.Equal(t, dual.ObstacleEdgeTight, ob.Kind)
	assert.Equal(t, hypergraph.EdgeID(0), ob.Edge, "both tight at Δt=50; index 0 first")

	require.NoError(t, m.Advance(ob.Dt))
	assert.True(t, g.IsTight(0))
	assert.True(t, g.IsTight(1), "e1 became tight in the same advance")
	// Already-tight edges are not re-reported; the primal discovers them by
	// scanning cluster incidences.
	assert.Equal(t, dual.ObstacleNone, m.NextObstacle().Kind)
}

// TestNextObstacle_StaleEntries verifies a rate change supersedes previously
// scheduled events.
func TestNextObstacle_StaleEntries(t *testing.T) {
	g := pair(t)
	m := dual.NewModule(g)
	a := m.SeedDefect(0)
	b := m.SeedDefect(1)

	m.SetRate(b, dual.RateIdle) // only node a keeps growing: ρ(e1)=1 → Δt=60
	ob := m.NextObstacle()
	require.Equal(t, dual.ObstacleEdgeTight, ob.Kind)
	assert.Equal(t, hypergraph.EdgeID(1), ob.Edge)
	assert.True(t, ob.Dt.Equal(weight.FromInt(60)), "Δt recomputed for ρ=1, not the stale ρ=2 entry")

	m.SetRate(a, dual.RateIdle)
	assert.Equal(t, dual.ObstacleNone, m.NextObstacle().Kind, "all rates zero → NoObstacle")
}

// TestDualBecomesZero verifies the shrink path and its zero boundary.
func TestDualBecomesZero(t *testing.T) {
	g := pair(t)
	m := dual.NewModule(g)
	a := m.SeedDefect(0)
	b := m.SeedDefect(1)

	require.NoError(t, m.Advance(weight.FromInt(10))) // y_a = y_b = 10
	m.SetRate(b, dual.RateIdle)
	m.SetRate(a, dual.RateShrink)

	ob := m.NextObstacle()
	require.Equal(t, dual.ObstacleDualZero, ob.Kind)
	assert.Equal(t, a, ob.Node)
	assert.True(t, ob.Dt.Equal(weight.FromInt(10)), "y_S / |−1|")

	require.NoError(t, m.Advance(ob.Dt))
	assert.True(t, m.Node(a).Value().IsZero())
	m.SetRate(a, dual.RateIdle)
	assert.Equal(t, dual.ObstacleNone, m.NextObstacle().Kind)
}

// TestAdvance_InvariantViolation verifies fatal arithmetic inconsistencies.
func TestAdvance_InvariantViolation(t *testing.T) {
	g := pair(t)
	m := dual.NewModule(g)
	a := m.SeedDefect(0)

	m.SetRate(a, dual.RateShrink)
	err := m.Advance(weight.FromInt(1)) // y_a would become −1
	assert.ErrorIs(t, err, dual.ErrInternalInvariant)

	m2 := dual.NewModule(pair(t))
	m2.SeedDefect(0)
	m2.SeedDefect(1)
	err = m2.Advance(weight.FromInt(31)) // g_e1 would exceed w=60
	assert.ErrorIs(t, err, dual.ErrInternalInvariant)
}

// TestGrownIdentity verifies g_e == Σ{y_S : e ∈ δ(S)} after growth, both for
// seed hairs and for a created node with a promoted internal edge.
func TestGrownIdentity(t *testing.T) {
	g := pair(t)
	m := dual.NewModule(g)
	a := m.SeedDefect(0)
	b := m.SeedDefect(1)

	require.NoError(t, m.Advance(weight.FromInt(30))) // e1 tight
	m.SetRate(a, dual.RateIdle)
	m.SetRate(b, dual.RateIdle)

	blob := m.CreateNode([]hypergraph.VertexID{0, 1, 2}, []hypergraph.EdgeID{1})
	n := m.Node(blob)
	assert.Equal(t, []hypergraph.EdgeID{0}, n.Hair(), "e1 promoted to internal; e0 stays hair")
	assert.Equal(t, dual.RateIdle, n.Rate(), "created nodes start idle")

	m.SetRate(blob, dual.RateGrow)
	ob := m.NextObstacle()
	require.Equal(t, dual.ObstacleEdgeTight, ob.Kind)
	assert.Equal(t, hypergraph.EdgeID(0), ob.Edge)
	assert.True(t, ob.Dt.Equal(weight.FromInt(40)), "(100 − 60)/1")
	require.NoError(t, m.Advance(ob.Dt))

	for _, e := range []hypergraph.EdgeID{0, 1} {
		assert.True(t, g.Grown(e).Equal(m.GrownFromHairs(e)), "running identity for edge %d", e)
	}
	assert.True(t, m.SumDual().Equal(weight.FromInt(100)), "30+30+40")
}
