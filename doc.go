// Package mwpf is a hypergraph Minimum-Weight Parity Factor (MWPF) decoder
// for quantum error correction — given a weighted decoding hypergraph and a
// syndrome (a set of defect detectors), it computes a subset of hyperedges
// whose incidence parity matches the syndrome, together with a certified
// lower/upper weight bound.
//
// 🚀 What is mwpf?
//
//	A deterministic decoding core that extends the blossom-style primal–dual
//	method from matchings on graphs to parity factors on hypergraphs:
//		• weight/     — exact rational weight algebra (no FP drift in bounds)
//		• hypergraph/ — decoding-graph store: static incidence, per-solve state
//		• dual/       — dual variables y_S, growth rates, obstacle priority queue
//		• parity/     — per-cluster GF(2) echelon tableau, relaxer strategies
//		• primal/     — clusters, obstacle dispatch loop, bounds, assembly
//		• solver/     — the façade: Solve / Subgraph / SubgraphRange / Clear
//		• codes/      — example decoding hypergraphs for tests and demos
//
// ✨ Why choose mwpf?
//
//   - Certified results – every solve returns a WeightRange; lower == upper
//     proves the returned subgraph optimal
//   - Deterministic – identical initializer + syndrome + configuration always
//     produce identical subgraphs and bounds
//   - Near-linear average time at low error densities via cluster growing
//   - Pure Go core – exact rational arithmetic, no cgo
//
// Quick ASCII example (repetition-code chain, defects ◉):
//
//	◉───◉───○───◉
//	 e0  e1  e2
//
// Dive into solver/ for the entry points and codes/ for ready-made graphs.
//
//	go get github.com/katalvlaran/mwpf
package mwpf
