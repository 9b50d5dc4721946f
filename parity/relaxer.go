package parity

import (
	"sort"

	"github.com/katalvlaran/mwpf/hypergraph"
)

// ProposeRelaxer builds a growth direction for an unsatisfiable cluster, or
// returns nil when no untight hair exists (degenerate case: the caller
// force-resolves with its best known subgraph).
//
// StrategySingleHair seeds the direction with the vertices that the first
// unsatisfied echelon row depends on, then closes the set under tight-edge
// incidence so the new node's boundary crosses untight edges only — growing
// it violates no tight constraint and tightens at least one new hair.
// StrategyUnionFind always proposes the whole cluster. When the closure
// reaches the whole cluster the two coincide.
//
// Errors: ErrAlreadySatisfiable when no relaxer is needed.
func (t *Tableau) ProposeRelaxer() (*Relaxer, error) {
	e := t.echelonize()
	if e.unsatRow < 0 {
		return nil, ErrAlreadySatisfiable
	}

	inSet := make(map[hypergraph.VertexID]bool, len(t.rows))
	switch t.strategy {
	case StrategyUnionFind:
		for _, v := range t.rows {
			inSet[v] = true
		}
	default: // StrategySingleHair
		for i, v := range t.rows {
			if bitGet(e.comb[e.unsatRow], i) {
				inSet[v] = true
			}
		}
		t.closeUnderTight(inSet)
		if !t.hasUntightHair(inSet) {
			// The dependency closure is saturated; fall back to the whole
			// cluster before declaring the relaxation degenerate.
			for _, v := range t.rows {
				inSet[v] = true
			}
		}
	}

	if !t.hasUntightHair(inSet) {
		return nil, nil
	}

	vertices := make([]hypergraph.VertexID, 0, len(inSet))
	for v := range inSet {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })

	// Promote the tight columns fully inside the set.
	internal := make([]hypergraph.EdgeID, 0)
	for _, col := range t.cols {
		if t.allInside(col, inSet) {
			internal = append(internal, col)
		}
	}

	return &Relaxer{Grow: []Direction{{Vertices: vertices, Internal: internal}}}, nil
}

// closeUnderTight absorbs, to a fixpoint, the endpoints of every tight
// column that crosses the boundary of the set. Afterwards no tight edge is
// hair of the set.
func (t *Tableau) closeUnderTight(inSet map[hypergraph.VertexID]bool) {
	for changed := true; changed; {
		changed = false
		for _, col := range t.cols {
			touches, covered := false, true
			for _, v := range t.g.Vertices(col) {
				if inSet[v] {
					touches = true
				} else {
					covered = false
				}
			}
			if touches && !covered {
				for _, v := range t.g.Vertices(col) {
					inSet[v] = true
				}
				changed = true
			}
		}
	}
}

// hasUntightHair reports whether any edge incident to the set is untight —
// the edge a new node could grow through.
func (t *Tableau) hasUntightHair(inSet map[hypergraph.VertexID]bool) bool {
	for v := range inSet {
		for _, e := range t.g.IncidentEdges(v) {
			if !t.g.IsTight(e) {
				return true
			}
		}
	}

	return false
}

// allInside reports whether every endpoint of e lies in the set.
func (t *Tableau) allInside(e hypergraph.EdgeID, inSet map[hypergraph.VertexID]bool) bool {
	for _, v := range t.g.Vertices(e) {
		if !inSet[v] {
			return false
		}
	}

	return true
}
