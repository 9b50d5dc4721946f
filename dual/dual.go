package dual

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/weight"
)

// Module owns the dual-node arena for one solve and answers growth requests.
//
// A Module is built fresh per solve (the arena resets with it) against a
// graph whose syndrome has already been applied.
type Module struct {
	g     *hypergraph.Graph
	nodes []*Node

	elapsed  weight.W                       // total advanced time
	edgeRate map[hypergraph.EdgeID]int      // net rate ρ_e over hairs; absent == 0
	queue    *obstacleQueue
}

// NewModule creates an empty dual module over g.
func NewModule(g *hypergraph.Graph) *Module {
	return &Module{
		g:        g,
		edgeRate: make(map[hypergraph.EdgeID]int),
		queue:    newObstacleQueue(),
	}
}

// NodeCount returns the number of materialized dual nodes.
func (m *Module) NodeCount() int { return len(m.nodes) }

// Node returns the dual node with the given id.
func (m *Module) Node(id NodeID) *Node { return m.nodes[id] }

// Elapsed returns the total time advanced so far.
func (m *Module) Elapsed() weight.W { return m.elapsed }

// NetRate returns ρ_e = Σ{r_S : e ∈ δ(S)}.
func (m *Module) NetRate(e hypergraph.EdgeID) int { return m.edgeRate[e] }

// SeedDefect creates the singleton dual node for a defect vertex:
// V_S = {v}, E_S = ∅, δ(S) = incident(v), y_S = 0, r_S = +1.
func (m *Module) SeedDefect(v hypergraph.VertexID) NodeID {
	hair := make([]hypergraph.EdgeID, len(m.g.IncidentEdges(v)))
	copy(hair, m.g.IncidentEdges(v))
	id := m.append(&Node{
		vertices: []hypergraph.VertexID{v},
		hair:     hair,
		seed:     v,
	})
	m.SetRate(id, RateGrow)

	return id
}

// CreateNode materializes a relaxer-produced node with the given vertex set
// and promoted internal edges, at y_S = 0 and r_S = 0. The hair is every
// edge incident to V_S that was not promoted, deduplicated and ascending.
func (m *Module) CreateNode(vertices []hypergraph.VertexID, internal []hypergraph.EdgeID) NodeID {
	vs := make([]hypergraph.VertexID, len(vertices))
	copy(vs, vertices)
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })

	promoted := make(map[hypergraph.EdgeID]bool, len(internal))
	in := make([]hypergraph.EdgeID, len(internal))
	copy(in, internal)
	sort.Slice(in, func(i, j int) bool { return in[i] < in[j] })
	for _, e := range in {
		promoted[e] = true
	}

	seen := make(map[hypergraph.EdgeID]bool)
	var hair []hypergraph.EdgeID
	for _, v := range vs {
		for _, e := range m.g.IncidentEdges(v) {
			if !promoted[e] && !seen[e] {
				seen[e] = true
				hair = append(hair, e)
			}
		}
	}
	sort.Slice(hair, func(i, j int) bool { return hair[i] < hair[j] })

	return m.append(&Node{vertices: vs, internal: in, hair: hair, seed: -1})
}

func (m *Module) append(n *Node) NodeID {
	m.nodes = append(m.nodes, n)

	return NodeID(len(m.nodes) - 1)
}

// SetRate sets r_S and reschedules the affected obstacle candidates: every
// hair edge whose net rate becomes positive gets a fresh tight-time entry,
// and a shrinking node gets a zero-time entry.
func (m *Module) SetRate(id NodeID, r Rate) {
	n := m.nodes[id]
	delta := int(r) - int(n.rate)
	if delta == 0 {
		return
	}
	n.rate = r

	for _, e := range n.hair {
		rho := m.edgeRate[e] + delta
		if rho == 0 {
			delete(m.edgeRate, e)
		} else {
			m.edgeRate[e] = rho
		}
		if rho > 0 && !m.g.IsTight(e) {
			at, _ := m.g.Untight(e).DivInt(int64(rho)) // rho > 0, division is total
			m.queue.push(entry{at: m.elapsed.Add(at), kind: ObstacleEdgeTight, idx: int(e)})
		}
	}
	if r == RateShrink {
		// Event at y_S / |−1| from now.
		m.queue.push(entry{at: m.elapsed.Add(n.value), kind: ObstacleDualZero, idx: int(id)})
	}
}

// NextObstacle reports the earliest event blocking further uniform growth,
// or ObstacleNone when nothing is growing. Stale queue entries are validated
// against current state and discarded.
func (m *Module) NextObstacle() Obstacle {
	for {
		e, ok := m.queue.pop()
		if !ok {
			return Obstacle{Kind: ObstacleNone}
		}
		switch e.kind {
		case ObstacleEdgeTight:
			edge := hypergraph.EdgeID(e.idx)
			rho := m.edgeRate[edge]
			if rho <= 0 || m.g.IsTight(edge) {
				continue
			}
			dt, _ := m.g.Untight(edge).DivInt(int64(rho))
			if !m.elapsed.Add(dt).Equal(e.at) {
				continue // superseded by a rate change
			}

			return Obstacle{Kind: ObstacleEdgeTight, Edge: edge, Node: -1, Dt: dt}
		case ObstacleDualZero:
			id := NodeID(e.idx)
			n := m.nodes[id]
			if n.rate != RateShrink {
				continue
			}
			dt := n.value // y_S / |−1|
			if !m.elapsed.Add(dt).Equal(e.at) {
				continue
			}

			return Obstacle{Kind: ObstacleDualZero, Edge: -1, Node: id, Dt: dt}
		default:
			continue
		}
	}
}

// Advance grows every non-idle node and every non-zero-rate edge by dt,
// preserving y_S ≥ 0 and 0 ≤ g_e ≤ w_e (equality expected at boundaries).
func (m *Module) Advance(dt weight.W) error {
	if dt.Sign() < 0 {
		return errors.Wrapf(ErrInternalInvariant, "negative advance %s", dt)
	}
	for id, n := range m.nodes {
		if n.rate == RateIdle {
			continue
		}
		n.value = n.value.Add(dt.MulInt(int64(n.rate)))
		if n.value.Sign() < 0 {
			return errors.Wrapf(ErrInternalInvariant, "node %d driven below zero (y=%s)", id, n.value)
		}
	}
	for e, rho := range m.edgeRate {
		m.g.AddGrown(e, dt.MulInt(int64(rho)))
		if m.g.Grown(e).Sign() < 0 || m.g.Grown(e).Cmp(m.g.Weight(e)) > 0 {
			return errors.Wrapf(ErrInternalInvariant,
				"edge %d grown outside [0, w] (g=%s, w=%s)", e, m.g.Grown(e), m.g.Weight(e))
		}
	}
	m.elapsed = m.elapsed.Add(dt)

	return nil
}

// SumDual returns Σ y_S over all nodes — the certified lower bound at
// termination.
func (m *Module) SumDual() weight.W {
	sum := weight.Zero()
	for _, n := range m.nodes {
		sum = sum.Add(n.value)
	}

	return sum
}

// GrownFromHairs recomputes Σ{y_S : e ∈ δ(S)} from scratch. It exists for
// invariant checking (tests, postmortems); the hot path maintains the same
// quantity incrementally in the graph store.
func (m *Module) GrownFromHairs(e hypergraph.EdgeID) weight.W {
	sum := weight.Zero()
	for _, n := range m.nodes {
		for _, h := range n.hair {
			if h == e {
				sum = sum.Add(n.value)

				break
			}
		}
	}

	return sum
}
