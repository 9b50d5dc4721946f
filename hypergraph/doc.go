// Package hypergraph implements the decoding-graph store: the immutable
// topology of a weighted decoding hypergraph (detectors as vertices, error
// mechanisms as hyperedges) plus the mutable per-solve state — defect flags,
// per-edge grown amounts, and per-solve weight overrides.
//
// Topology is fixed at construction and validated once; every solve then
// mutates only the per-solve state and Reset restores it. This split is what
// lets one solver instance decode many syndromes against the same graph.
//
// Invariants:
//
//	– 0 ≤ Grown(e) ≤ Weight(e) for every edge at every quiescent moment.
//	– After Reset, Grown(e) == 0, no defect flags, base weights restored.
//	– ApplySyndrome never increases Grown(e).
//
// Errors (sentinel):
//
//	– ErrInvalidTopology  and its refinements (out-of-range vertex, empty or
//	  repeated-vertex edge, negative weight) at construction time.
//	– ErrInvalidSyndrome  and its refinements (out-of-range defect, edge, or
//	  negative override) at ApplySyndrome time.
//
// Complexity: construction is O(V + Σ|e|); all read accessors are O(1); a
// Reset is O(V + E).
package hypergraph
