package hypergraph

import (
	"sort"

	"github.com/katalvlaran/mwpf/weight"
)

// edge is the internal static record of one hyperedge.
type edge struct {
	vertices []VertexID
	weight   weight.W // base weight from the initializer
}

// Graph is the decoding-graph store: immutable topology plus per-solve state.
//
// Graph is not safe for concurrent mutation; the solver drives it from a
// single goroutine per solve (spec'd scheduling model).
type Graph struct {
	edges    []edge
	incident [][]EdgeID // vertex → incident edge indices, ascending

	// per-solve state, restored by Reset
	weights []weight.W // effective weights (base, unless overridden)
	grown   []weight.W
	defect  []bool
	defects []VertexID // sorted, deduplicated
}

// New validates and builds a decoding graph with vertexNum vertices and the
// given hyperedges. Edge indices are assigned in input order.
//
// Errors: ErrVertexOutOfRange, ErrEmptyEdge, ErrRepeatedVertex,
// ErrNegativeWeight — all matching ErrInvalidTopology.
//
// Complexity: O(V + Σ|e|).
func New(vertexNum int, specs []EdgeSpec) (*Graph, error) {
	g := &Graph{
		edges:    make([]edge, 0, len(specs)),
		incident: make([][]EdgeID, vertexNum),
		weights:  make([]weight.W, len(specs)),
		grown:    make([]weight.W, len(specs)),
		defect:   make([]bool, vertexNum),
	}

	var seen = make(map[VertexID]bool)
	for i, spec := range specs {
		if len(spec.Vertices) == 0 {
			return nil, ErrEmptyEdge
		}
		if spec.Weight.Sign() < 0 {
			return nil, ErrNegativeWeight
		}
		clear(seen)
		vs := make([]VertexID, 0, len(spec.Vertices))
		for _, v := range spec.Vertices {
			if v < 0 || int(v) >= vertexNum {
				return nil, ErrVertexOutOfRange
			}
			if seen[v] {
				return nil, ErrRepeatedVertex
			}
			seen[v] = true
			vs = append(vs, v)
			g.incident[v] = append(g.incident[v], EdgeID(i))
		}
		g.edges = append(g.edges, edge{vertices: vs, weight: spec.Weight})
		g.weights[i] = spec.Weight
	}

	return g, nil
}

// VertexNum returns the number of vertices.
func (g *Graph) VertexNum() int { return len(g.incident) }

// EdgeNum returns the number of hyperedges.
func (g *Graph) EdgeNum() int { return len(g.edges) }

// IncidentEdges returns the edges incident to v, ascending. The returned
// slice is owned by the graph and must not be mutated.
func (g *Graph) IncidentEdges(v VertexID) []EdgeID { return g.incident[v] }

// Vertices returns the vertex set of e in initializer order. The returned
// slice is owned by the graph and must not be mutated.
func (g *Graph) Vertices(e EdgeID) []VertexID { return g.edges[e].vertices }

// Weight returns the effective weight of e for the current solve.
func (g *Graph) Weight(e EdgeID) weight.W { return g.weights[e] }

// Grown returns the grown amount g_e of e.
func (g *Graph) Grown(e EdgeID) weight.W { return g.grown[e] }

// Untight returns w_e − g_e.
func (g *Graph) Untight(e EdgeID) weight.W { return g.weights[e].Sub(g.grown[e]) }

// IsTight reports whether g_e == w_e.
func (g *Graph) IsTight(e EdgeID) bool { return g.grown[e].Equal(g.weights[e]) }

// IsDefect reports the defect flag of v for the current solve.
func (g *Graph) IsDefect(v VertexID) bool { return g.defect[v] }

// Defects returns the current defect vertices, sorted ascending. The
// returned slice is owned by the graph and must not be mutated.
func (g *Graph) Defects() []VertexID { return g.defects }

// SetGrown overwrites g_e. Callers (the dual module) are responsible for the
// 0 ≤ g_e ≤ w_e invariant; the store does not re-validate on the hot path.
func (g *Graph) SetGrown(e EdgeID, v weight.W) { g.grown[e] = v }

// AddGrown adds delta to g_e.
func (g *Graph) AddGrown(e EdgeID, delta weight.W) { g.grown[e] = g.grown[e].Add(delta) }

// Reset restores the graph to its post-construction state: zero grown
// amounts, no defects, base weights. Topology is untouched.
func (g *Graph) Reset() {
	for i := range g.edges {
		g.grown[i] = weight.Zero()
		g.weights[i] = g.edges[i].weight
	}
	for v := range g.defect {
		g.defect[v] = false
	}
	g.defects = nil
}

// ApplySyndrome loads one solve's online input: defect flags, per-solve
// weight overrides (validated ≥ 0), and heralded edges forced to weight 0.
//
// The graph is left unchanged when validation fails, so a rejected syndrome
// never poisons a later solve.
//
// Errors: ErrDefectOutOfRange, ErrEdgeOutOfRange, ErrNegativeOverride — all
// matching ErrInvalidSyndrome.
func (g *Graph) ApplySyndrome(s Syndrome) error {
	for _, v := range s.DefectVertices {
		if v < 0 || int(v) >= g.VertexNum() {
			return ErrDefectOutOfRange
		}
	}
	for _, o := range s.EdgeWeightOverrides {
		if o.Edge < 0 || int(o.Edge) >= g.EdgeNum() {
			return ErrEdgeOutOfRange
		}
		if o.Weight.Sign() < 0 {
			return ErrNegativeOverride
		}
	}
	for _, e := range s.HeraldedEdges {
		if e < 0 || int(e) >= g.EdgeNum() {
			return ErrEdgeOutOfRange
		}
	}

	for _, v := range s.DefectVertices {
		if !g.defect[v] {
			g.defect[v] = true
			g.defects = append(g.defects, v)
		}
	}
	sort.Slice(g.defects, func(i, j int) bool { return g.defects[i] < g.defects[j] })
	for _, o := range s.EdgeWeightOverrides {
		g.weights[o.Edge] = o.Weight
	}
	for _, e := range s.HeraldedEdges {
		g.weights[e] = weight.Zero()
	}

	return nil
}
