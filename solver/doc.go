// Package solver ties the decoder together: it owns a decoding graph, runs
// the primal–dual loop per syndrome, and exposes the results.
//
// Typical usage:
//
//	g, err := hypergraph.New(4, edges)
//	if err != nil { ... }
//	s := solver.New(g, solver.WithGrowingStrategy(primal.MultipleClusters))
//	if err := s.Solve(hypergraph.Syndrome{DefectVertices: defects}); err != nil { ... }
//	sub, rng, _ := s.SubgraphRange()
//	if rng.IsOptimal() { /* sub is proven minimum-weight */ }
//	s.Clear() // reuse for the next syndrome
//
// Configuration is a Config struct built from functional options
// (WithTimeout, WithClusterNodeLimit, WithStrategy, …) or loaded from a YAML
// file via LoadConfig. The parallel-execution and thread-pool fields are
// hints for an external partitioner and are ignored by this core, which is
// single-threaded per solve.
//
// A Visualizer can be attached with WithVisualizer to record named snapshots
// of the dual state in the stable JSON schema (format/version/positions/
// snapshots); see snapshot.go.
//
// Errors (sentinel):
//
//	– ErrNotSolved  when results are requested before a successful Solve.
//	– ErrMustClear  when Solve is called again without Clear.
//	– ErrBadConfig  from LoadConfig for a malformed configuration file or a
//	  bad value in it; functional options are not validated.
package solver
