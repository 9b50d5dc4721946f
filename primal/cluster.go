package primal

import (
	"time"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/parity"
)

// newCluster seeds a singleton cluster around a defect vertex.
func (m *Module) newCluster(v hypergraph.VertexID, seed dual.NodeID) *cluster {
	c := &cluster{
		id:      len(m.clusters),
		tableau: parity.NewTableau(m.g, m.opts.Strategy),
		nodes:   []dual.NodeID{seed},
		seeds:   []dual.NodeID{seed},
		status:  clusterAwaiting,
		created: m.now(),
	}
	c.tableau.AddVertex(v)
	m.clusters = append(m.clusters, c)
	m.parent = append(m.parent, c.id)
	m.vertexCluster[v] = c.id

	return c
}

// find returns the root cluster id of x with path compression.
func (m *Module) find(x int) int {
	for m.parent[x] != x {
		m.parent[x] = m.parent[m.parent[x]]
		x = m.parent[x]
	}

	return x
}

// clusterOf returns the root cluster containing v, or nil.
func (m *Module) clusterOf(v hypergraph.VertexID) *cluster {
	id := m.vertexCluster[v]
	if id < 0 {
		return nil
	}

	return m.clusters[m.find(id)]
}

// union merges two root clusters by size (vertex count), ties rooted at the
// lower id so merge order stays deterministic. The merged cluster inherits
// the earliest creation time (per-cluster timeout keeps ticking across
// merges) and is activated if either side was.
func (m *Module) union(a, b *cluster) *cluster {
	if a.id == b.id {
		return a
	}
	sa, sb := len(a.tableau.Vertices()), len(b.tableau.Vertices())
	if sb > sa || (sb == sa && b.id < a.id) {
		a, b = b, a
	}
	m.parent[b.id] = a.id
	a.tableau.Merge(b.tableau)
	a.nodes = append(a.nodes, b.nodes...)
	a.seeds = append(a.seeds, b.seeds...)
	a.activated = a.activated || b.activated
	a.gapped = a.gapped || b.gapped
	if b.created.Before(a.created) {
		a.created = b.created
	}
	// A resolved side rejoins the growing pool: its subgraph is recomputed
	// from the merged tableau at the next resolution.
	a.status = clusterAwaiting
	a.subgraph = nil
	b.tableau = nil
	b.subgraph = nil

	return a
}

// absorb registers a free vertex (in no cluster) as a row of c.
func (m *Module) absorb(c *cluster, v hypergraph.VertexID) {
	c.tableau.AddVertex(v)
	m.vertexCluster[v] = c.id
}

// expired reports whether the per-cluster timeout has elapsed.
func (m *Module) expired(c *cluster) bool {
	if m.opts.Timeout <= 0 {
		return false
	}

	return m.now().Sub(c.created) > m.opts.Timeout
}

// overLimit reports whether the cluster would exceed the dual-node cap with
// extra more nodes.
func (m *Module) overLimit(c *cluster, extra int) bool {
	if m.opts.ClusterNodeLimit == nil {
		return false
	}

	return len(c.nodes)+extra > *m.opts.ClusterNodeLimit
}

// now is indirect for testability of the timeout path.
func (m *Module) now() time.Time {
	if m.clock != nil {
		return m.clock()
	}

	return time.Now()
}
