package primal

import (
	"io"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/weight"
)

// Module drives one solve. Build it after the syndrome has been applied to
// the graph; it is single-use (New per solve, matching the dual arena).
type Module struct {
	g    *hypergraph.Graph
	d    *dual.Module
	opts Options
	log  logrus.FieldLogger

	clusters      []*cluster
	parent        []int // union-find over cluster ids
	vertexCluster []int // vertex → cluster id, −1 when free

	needFallback bool
	solved       bool
	subgraph     []hypergraph.EdgeID
	bound        WeightRange

	clock func() time.Time // test seam for the timeout path
}

// New creates a primal module over g and its dual module.
func New(g *hypergraph.Graph, d *dual.Module, opts Options) *Module {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	vc := make([]int, g.VertexNum())
	for i := range vc {
		vc[i] = -1
	}

	return &Module{g: g, d: d, opts: opts, log: log, vertexCluster: vc}
}

// Solve runs the obstacle dispatch loop to completion and assembles the
// subgraph and weight range.
//
// Errors: ErrSolveFinished on reuse; dual.ErrInternalInvariant (fatal, with
// cluster and obstacle context); ErrNoParityFactor when the syndrome is
// undecodable on this topology.
func (m *Module) Solve() error {
	if m.solved {
		return ErrSolveFinished
	}
	m.solved = true

	for _, v := range m.g.Defects() {
		seed := m.d.SeedDefect(v)
		c := m.newCluster(v, seed)
		if m.opts.GrowingStrategy == SingleCluster {
			// Seeds wait for activation; only one cluster grows at a time.
			m.d.SetRate(seed, dual.RateIdle)
		} else {
			c.activated = true
			c.status = clusterGrowing
		}
	}

	if err := m.processInitialTight(); err != nil {
		return err
	}

	for {
		ob := m.d.NextObstacle()
		switch ob.Kind {
		case dual.ObstacleNone:
			c := m.firstUnresolved()
			if c == nil {
				return m.assemble()
			}
			if err := m.stalledStep(c); err != nil {
				return err
			}
		case dual.ObstacleEdgeTight:
			if err := m.d.Advance(ob.Dt); err != nil {
				return errors.Wrapf(err, "advancing %s toward tight edge %d", ob.Dt, ob.Edge)
			}
			m.g.SetGrown(ob.Edge, m.g.Weight(ob.Edge)) // pin the boundary exactly
			m.log.WithFields(logrus.Fields{"edge": ob.Edge, "dt": ob.Dt.String()}).
				Debug("obstacle: edge became tight")
			if err := m.handleTight(ob.Edge); err != nil {
				return err
			}
		case dual.ObstacleDualZero:
			if err := m.d.Advance(ob.Dt); err != nil {
				return errors.Wrapf(err, "advancing %s toward zero of node %d", ob.Dt, ob.Node)
			}
			m.d.SetRate(ob.Node, dual.RateIdle)
			m.log.WithFields(logrus.Fields{"node": ob.Node, "dt": ob.Dt.String()}).
				Debug("obstacle: dual variable hit zero")
		}
	}
}

// processInitialTight feeds the edges that are tight before any growth
// (heralded and zero-weight edges) through the regular tight-edge path.
// Edges touching no cluster are skipped; syncTight chases chains.
func (m *Module) processInitialTight() error {
	for e := 0; e < m.g.EdgeNum(); e++ {
		id := hypergraph.EdgeID(e)
		if !m.g.IsTight(id) {
			continue
		}
		touches := false
		for _, v := range m.g.Vertices(id) {
			if m.vertexCluster[v] >= 0 {
				touches = true

				break
			}
		}
		if touches {
			if err := m.handleTight(id); err != nil {
				return err
			}
		}
	}

	return nil
}

// handleTight merges the clusters touched by a tight edge, absorbs free
// endpoints, syncs every incident tight edge into the tableau, and
// re-evaluates the merged cluster.
func (m *Module) handleTight(e hypergraph.EdgeID) error {
	var c *cluster
	for _, v := range m.g.Vertices(e) {
		if o := m.clusterOf(v); o != nil {
			if c == nil {
				c = o
			} else {
				c = m.union(c, o)
			}
		}
	}
	if c == nil {
		return nil // tight edge away from any cluster
	}
	for _, v := range m.g.Vertices(e) {
		if m.vertexCluster[v] < 0 {
			m.absorb(c, v)
		}
	}
	if err := m.syncTight(c); err != nil {
		return err
	}

	return m.evaluate(c)
}

// syncTight brings the cluster's tableau up to date with every tight edge
// incident to its vertices, absorbing endpoints (and merging further
// clusters) as needed. Simultaneously-tight edges that never produced their
// own obstacle event are picked up here.
func (m *Module) syncTight(c *cluster) error {
	for changed := true; changed; {
		changed = false
		// The row registry may grow while scanning; index explicitly.
		for i := 0; i < len(c.tableau.Vertices()); i++ {
			v := c.tableau.Vertices()[i]
			for _, e := range m.g.IncidentEdges(v) {
				if !m.g.IsTight(e) || c.tableau.HasEdge(e) {
					continue
				}
				for _, u := range m.g.Vertices(e) {
					if o := m.clusterOf(u); o != nil && o.id != c.id {
						c = m.union(c, o)
						changed = true
					} else if m.vertexCluster[u] < 0 {
						m.absorb(c, u)
					}
				}
				if err := c.tableau.AddTightEdge(e); err != nil {
					return errors.Wrapf(dual.ErrInternalInvariant,
						"cluster %d: %v while syncing edge %d", c.id, err, e)
				}
				changed = true
			}
		}
	}

	return nil
}

// evaluate decides a cluster's fate after a structural change: resolve when
// satisfiable, force-resolve past a resource cap, relax when growth is
// blocked by a tight edge, otherwise keep growing.
func (m *Module) evaluate(c *cluster) error {
	c = m.clusters[m.find(c.id)]
	if c.tableau.IsSatisfiable() {
		return m.resolve(c)
	}
	if m.overLimit(c, 0) || m.expired(c) {
		m.forceResolve(c)

		return nil
	}
	blocked := false
	for _, e := range c.tableau.Edges() {
		if m.d.NetRate(e) > 0 {
			blocked = true

			break
		}
	}
	if blocked {
		return m.relax(c)
	}
	if !c.activated {
		c.status = clusterAwaiting
	} else {
		c.status = clusterGrowing
	}

	return nil
}

// stalledStep handles a cluster that is unresolved while nothing grows:
// resolve it if it became satisfiable, release its seeds on first
// activation (virgin clusters only), otherwise request a relaxer.
func (m *Module) stalledStep(c *cluster) error {
	if err := m.syncTight(c); err != nil {
		return err
	}
	c = m.clusters[m.find(c.id)]
	if c.tableau.IsSatisfiable() {
		return m.resolve(c)
	}
	if !c.activated && len(c.tableau.Edges()) == 0 {
		c.activated = true
		c.status = clusterGrowing
		for _, s := range c.seeds {
			m.d.SetRate(s, dual.RateGrow)
		}
		m.log.WithField("cluster", c.id).Debug("activated seeds")

		return nil
	}
	c.activated = true

	return m.relax(c)
}

// relax applies one relaxer to a blocked cluster: idle every positive-rate
// node, then create and grow the proposed direction. Resource caps and
// degenerate relaxations force-resolve instead.
func (m *Module) relax(c *cluster) error {
	if m.overLimit(c, 1) || m.expired(c) {
		m.forceResolve(c)

		return nil
	}
	r, err := c.tableau.ProposeRelaxer()
	if err != nil {
		return errors.Wrapf(dual.ErrInternalInvariant, "cluster %d: %v", c.id, err)
	}
	if r == nil {
		m.forceResolve(c)

		return nil
	}

	for _, id := range c.nodes {
		if m.d.Node(id).Rate() == dual.RateGrow {
			m.d.SetRate(id, dual.RateIdle)
		}
	}
	for _, id := range r.Shrink {
		m.d.SetRate(id, dual.RateShrink)
	}
	for _, dir := range r.Grow {
		id := m.d.CreateNode(dir.Vertices, dir.Internal)
		c.nodes = append(c.nodes, id)
		m.d.SetRate(id, dual.RateGrow)
		m.log.WithFields(logrus.Fields{
			"cluster": c.id, "node": id, "vertices": len(dir.Vertices), "internal": len(dir.Internal),
		}).Debug("relaxer: new dual node growing")
	}
	c.status = clusterGrowing

	return nil
}

// resolve extracts the cluster's minimum-weight subgraph and stops its
// growth.
func (m *Module) resolve(c *cluster) error {
	sub, err := c.tableau.ExtractSubgraph()
	if err != nil {
		return errors.Wrapf(dual.ErrInternalInvariant, "cluster %d: %v", c.id, err)
	}
	m.stopGrowth(c)
	c.status = clusterResolved
	c.subgraph = sub
	m.log.WithFields(logrus.Fields{"cluster": c.id, "edges": len(sub)}).Debug("cluster resolved")

	return nil
}

// forceResolve stops a cluster past a resource cap (or out of relaxers)
// with its best known subgraph. An unsatisfiable tableau defers to the
// global fallback solve so the final answer stays a valid parity factor.
func (m *Module) forceResolve(c *cluster) {
	m.stopGrowth(c)
	c.status = clusterResolved
	c.gapped = true
	if sub, err := c.tableau.ExtractSubgraph(); err == nil {
		c.subgraph = sub
	} else {
		c.subgraph = nil
		m.needFallback = true
	}
	m.log.WithField("cluster", c.id).Debug("cluster force-resolved (bound gap)")
}

// stopGrowth idles every node of the cluster.
func (m *Module) stopGrowth(c *cluster) {
	for _, id := range c.nodes {
		if m.d.Node(id).Rate() != dual.RateIdle {
			m.d.SetRate(id, dual.RateIdle)
		}
	}
}

// firstUnresolved returns the root cluster of the lowest-id unresolved
// cluster, or nil when all are resolved.
func (m *Module) firstUnresolved() *cluster {
	for _, c := range m.clusters {
		root := m.clusters[m.find(c.id)]
		if root.status != clusterResolved {
			return root
		}
	}

	return nil
}

// assemble combines per-cluster subgraphs (clusters are vertex-disjoint)
// and computes the weight range. A pending fallback replaces the subgraph
// with one global solve.
func (m *Module) assemble() error {
	var sub []hypergraph.EdgeID
	if m.needFallback {
		fs, err := m.fallbackSolve()
		if err != nil {
			return err
		}
		sub = fs
	} else {
		for _, c := range m.clusters {
			if m.find(c.id) == c.id && c.status == clusterResolved {
				sub = append(sub, c.subgraph...)
			}
		}
	}
	sort.Slice(sub, func(i, j int) bool { return sub[i] < sub[j] })
	m.subgraph = sub

	upper := weight.Zero()
	for _, e := range sub {
		upper = upper.Add(m.g.Weight(e))
	}
	m.bound = WeightRange{Lower: m.d.SumDual(), Upper: upper}

	return nil
}

// Subgraph returns the final subgraph, ascending. Valid after Solve.
func (m *Module) Subgraph() []hypergraph.EdgeID { return m.subgraph }

// Range returns the certified weight range. Valid after Solve.
func (m *Module) Range() WeightRange { return m.bound }
