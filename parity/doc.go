// Package parity implements the per-cluster GF(2) solver: a row-echelon
// tableau with one parity check per cluster vertex (right-hand side 1 on
// defects) and one column per tight edge known to the cluster.
//
// The tableau answers three questions for the primal module:
//
//  1. Satisfiability — is the cluster syndrome in the span of the tight
//     columns?
//  2. Extraction — a minimum-weight satisfying subset of tight edges, with a
//     deterministic tie-break (exact kernel enumeration while the number of
//     free columns stays tractable, else the echelon basis solution; ties go
//     to the lexicographically smallest edge-index list).
//  3. Relaxation — when unsatisfiable, a direction of dual growth (a new
//     vertex subset with promoted internal edges, plus optional shrink set)
//     whose growth produces a new tight edge toward satisfiability.
//
// Two relaxer strategies are provided. StrategySingleHair starts from the
// vertex dependency of an unsatisfied parity row and closes it under
// tight-edge incidence, so the proposed node grows through untight hair
// only. StrategyUnionFind is the degenerate MWPM-equivalent: it always
// proposes the whole cluster.
//
// The echelon form is cached and rebuilt from scratch, deterministically, on
// the first query after any structural change (new row, new column or
// merge); a column insertion does not extend an existing echelon in place.
// Every elimination carries a provenance bitset so unsatisfied rows can name
// the vertices that produced them.
package parity
