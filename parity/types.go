package parity

import (
	"errors"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/hypergraph"
)

// Sentinel errors for tableau misuse and invariant breaks.
var (
	// ErrUnsatisfiable indicates ExtractSubgraph on a tableau whose syndrome
	// is not in the span of the tight columns.
	ErrUnsatisfiable = errors.New("parity: cluster syndrome not satisfiable by tight edges")

	// ErrAlreadySatisfiable indicates ProposeRelaxer on a satisfiable tableau.
	ErrAlreadySatisfiable = errors.New("parity: relaxer requested for a satisfiable cluster")

	// ErrVertexMissing indicates a tight edge whose endpoint was never added
	// as a cluster row — a primal bookkeeping bug, fatal by taxonomy.
	ErrVertexMissing = errors.New("parity: tight edge endpoint not in cluster")
)

// Strategy selects the relaxer-construction variant.
type Strategy int

const (
	// StrategySingleHair grows the unsatisfied row's dependency closure —
	// the default, and the variant that certifies hyperedge-aware bounds.
	StrategySingleHair Strategy = iota

	// StrategyUnionFind only ever grows whole clusters; it never promotes a
	// proper vertex subset and is the MWPM-equivalent degenerate strategy.
	StrategyUnionFind
)

// String implements fmt.Stringer for configuration display.
func (s Strategy) String() string {
	switch s {
	case StrategySingleHair:
		return "single-hair"
	case StrategyUnionFind:
		return "union-find"
	default:
		return "unknown"
	}
}

// Direction is one new dual variable a relaxer asks the primal to create:
// the vertex set V_S and the tight edges promoted to E_S. The node grows at
// rate +1 once created.
type Direction struct {
	Vertices []hypergraph.VertexID
	Internal []hypergraph.EdgeID
}

// Relaxer is a signed adjustment of dual variables: nodes to create and grow
// (+1) and existing nodes to shrink (−1). The primal additionally idles every
// positive-rate node of the blocked cluster, so the net hair growth is
// positive on at least one untight edge and no tight edge overgrows.
type Relaxer struct {
	Grow   []Direction
	Shrink []dual.NodeID
}
