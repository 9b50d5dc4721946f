// Package primal drives the MWPF algorithm: it owns the clusters (connected
// components under tight edges), dispatches obstacles reported by the dual
// module, applies relaxers, and assembles the final subgraph with its
// certified weight range.
//
// The main loop asks the dual module for the next obstacle and resolves it:
// an edge becoming tight merges clusters and extends the blocked cluster's
// parity tableau; a dual variable hitting zero idles its node; when nothing
// grows, the first unresolved cluster is activated or relaxed. The loop ends
// when every cluster is Resolved, and the per-cluster subgraphs are combined
// into the answer.
//
// Ordering is deterministic: EdgeBecomesTight before DualBecomesZero at equal
// times, lowest index within a kind, cluster unions by size with ties rooted
// at the lower cluster id, defect seeding in ascending vertex order. Two runs
// with the same initializer, syndrome and configuration return identical
// subgraphs and identical bounds.
//
// Resource caps (per-cluster timeout, dual-node limit) are recovered locally:
// the affected cluster is force-Resolved and, if its tableau is still
// unsatisfiable, a global GF(2) fallback solve guarantees the returned
// subgraph is a valid parity factor — the gap shows up as lower < upper in
// the WeightRange instead of an error.
package primal
