package solver_test

import (
	"fmt"

	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/solver"
	"github.com/katalvlaran/mwpf/weight"
)

// ExampleSolver decodes a three-defect syndrome on a small hypergraph: the
// weight-60 hyperedge makes the parity-factor solution strictly cheaper
// than any matching.
func ExampleSolver() {
	g, _ := hypergraph.New(4, []hypergraph.EdgeSpec{
		{Vertices: []hypergraph.VertexID{0, 1}, Weight: weight.FromInt(100)},
		{Vertices: []hypergraph.VertexID{1, 2}, Weight: weight.FromInt(100)},
		{Vertices: []hypergraph.VertexID{2, 3}, Weight: weight.FromInt(100)},
		{Vertices: []hypergraph.VertexID{0}, Weight: weight.FromInt(100)},
		{Vertices: []hypergraph.VertexID{0, 1, 2}, Weight: weight.FromInt(60)},
	})

	s := solver.New(g)
	if err := s.Solve(hypergraph.Syndrome{DefectVertices: []hypergraph.VertexID{0, 1, 3}}); err != nil {
		fmt.Println("solve:", err)

		return
	}
	sub, rng, _ := s.SubgraphRange()
	fmt.Printf("subgraph: %v\n", sub)
	fmt.Printf("weight range: [%s, %s] optimal=%v\n", rng.Lower, rng.Upper, rng.IsOptimal())

	// Output:
	// subgraph: [2 4]
	// weight range: [160, 160] optimal=true
}
