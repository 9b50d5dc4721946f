package parity

import (
	"sort"

	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/weight"
)

// maxFreeEnum bounds exact kernel enumeration: up to 2^maxFreeEnum candidate
// subsets are scored. Beyond that the echelon basis solution is returned
// (still a valid parity factor, possibly not minimum-weight).
const maxFreeEnum = 16

// ExtractSubgraph returns a minimum-weight subset of tight edges whose XOR of
// incidences equals the cluster syndrome.
//
// Tie-break contract: among equal-weight subsets the lexicographically
// smallest ascending edge-index list wins; the result is fully determined by
// the initializer, the syndrome and the configuration.
//
// Errors: ErrUnsatisfiable when the syndrome is not in the column span.
//
// Complexity: O(2^F · (R + C)) with F = min(free columns, 16).
func (t *Tableau) ExtractSubgraph() ([]hypergraph.EdgeID, error) {
	e := t.echelonize()
	if e.unsatRow >= 0 {
		return nil, ErrUnsatisfiable
	}

	// Particular solution: pivot columns take their row's rhs, free columns 0.
	var particular []uint64
	for c := range t.cols {
		if p := e.pivotOfCol[c]; p >= 0 && e.rhs[p] {
			bitSet(&particular, c)
		}
	}

	free := make([]int, 0)
	for c := range t.cols {
		if e.pivotOfCol[c] < 0 {
			free = append(free, c)
		}
	}
	if len(free) == 0 || len(free) > maxFreeEnum {
		return t.edgesOf(particular), nil
	}

	// Kernel basis vector for free column f: x_f = 1 and, for every pivot
	// column c, x_c = coefficient of f in c's pivot row.
	kernel := make([][]uint64, len(free))
	for i, f := range free {
		var k []uint64
		bitSet(&k, f)
		for c := range t.cols {
			if p := e.pivotOfCol[c]; p >= 0 && bitGet(e.rows[p], f) {
				bitSet(&k, c)
			}
		}
		kernel[i] = k
	}

	best := t.edgesOf(particular)
	bestW := t.weightOf(best)
	for mask := 1; mask < 1<<len(free); mask++ {
		sol := bitClone(particular)
		for i := range free {
			if mask>>i&1 == 1 {
				bitXor(&sol, kernel[i])
			}
		}
		cand := t.edgesOf(sol)
		candW := t.weightOf(cand)
		if c := candW.Cmp(bestW); c < 0 || (c == 0 && lessEdges(cand, best)) {
			best, bestW = cand, candW
		}
	}

	return best, nil
}

// edgesOf converts a column bitset to an ascending edge-index list.
func (t *Tableau) edgesOf(sol []uint64) []hypergraph.EdgeID {
	out := make([]hypergraph.EdgeID, 0)
	for c, e := range t.cols {
		if bitGet(sol, c) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// weightOf sums the effective weights of the listed edges.
func (t *Tableau) weightOf(edges []hypergraph.EdgeID) weight.W {
	sum := weight.Zero()
	for _, e := range edges {
		sum = sum.Add(t.g.Weight(e))
	}

	return sum
}

// lessEdges is the lexicographic order on ascending edge-index lists.
func lessEdges(a, b []hypergraph.EdgeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
