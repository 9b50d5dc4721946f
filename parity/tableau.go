package parity

import (
	"github.com/katalvlaran/mwpf/hypergraph"
)

// wordBits is the width of one bitset word.
const wordBits = 64

// bitset helpers — rows are []uint64 indexed LSB-first.

func bitGet(b []uint64, i int) bool {
	w := i / wordBits
	if w >= len(b) {
		return false
	}

	return b[w]>>(uint(i)%wordBits)&1 == 1
}

func bitSet(b *[]uint64, i int) {
	w := i / wordBits
	for len(*b) <= w {
		*b = append(*b, 0)
	}
	(*b)[w] |= 1 << (uint(i) % wordBits)
}

func bitXor(dst *[]uint64, src []uint64) {
	for len(*dst) < len(src) {
		*dst = append(*dst, 0)
	}
	for i, w := range src {
		(*dst)[i] ^= w
	}
}

func bitClone(b []uint64) []uint64 {
	c := make([]uint64, len(b))
	copy(c, b)

	return c
}

// Tableau is the per-cluster GF(2) state: raw parity checks plus a cached
// echelon form rebuilt lazily after structural changes.
type Tableau struct {
	g        *hypergraph.Graph
	strategy Strategy

	rows  []hypergraph.VertexID // insertion order
	rowOf map[hypergraph.VertexID]int
	cols  []hypergraph.EdgeID // tight edges, insertion order
	colOf map[hypergraph.EdgeID]int

	bits [][]uint64 // raw incidence, one bitset per row over columns
	rhs  []bool     // defect flag per row

	ech *echelon // nil when dirty
}

// echelon is the reduced form of the raw tableau. comb carries elimination
// provenance: comb[i] has bit j set iff original row j was XORed into row i.
type echelon struct {
	rows [][]uint64
	rhs  []bool
	comb [][]uint64
	// pivotOfCol maps a column to its pivot row, −1 for free columns.
	pivotOfCol []int
	rank       int
	// unsatRow is the first all-zero row with rhs 1, or −1 when satisfiable.
	unsatRow int
}

// NewTableau creates an empty tableau over g with the given relaxer strategy.
func NewTableau(g *hypergraph.Graph, strategy Strategy) *Tableau {
	return &Tableau{
		g:        g,
		strategy: strategy,
		rowOf:    make(map[hypergraph.VertexID]int),
		colOf:    make(map[hypergraph.EdgeID]int),
	}
}

// Strategy returns the configured relaxer strategy.
func (t *Tableau) Strategy() Strategy { return t.strategy }

// Vertices returns the cluster vertices in insertion order. Owned by the
// tableau; do not mutate.
func (t *Tableau) Vertices() []hypergraph.VertexID { return t.rows }

// Edges returns the tight-edge columns in insertion order. Owned by the
// tableau; do not mutate.
func (t *Tableau) Edges() []hypergraph.EdgeID { return t.cols }

// HasVertex reports whether v is a cluster row.
func (t *Tableau) HasVertex(v hypergraph.VertexID) bool { _, ok := t.rowOf[v]; return ok }

// HasEdge reports whether e is already a column.
func (t *Tableau) HasEdge(e hypergraph.EdgeID) bool { _, ok := t.colOf[e]; return ok }

// AddVertex appends a parity-check row for v; the right-hand side is its
// defect flag. Adding a present vertex is a no-op.
func (t *Tableau) AddVertex(v hypergraph.VertexID) {
	if t.HasVertex(v) {
		return
	}
	t.rowOf[v] = len(t.rows)
	t.rows = append(t.rows, v)
	t.bits = append(t.bits, nil)
	t.rhs = append(t.rhs, t.g.IsDefect(v))
	t.ech = nil
}

// AddTightEdge appends a column for a newly tight edge. Every endpoint must
// already be a cluster row.
//
// Errors: ErrVertexMissing (fatal taxonomy) on a missing endpoint.
func (t *Tableau) AddTightEdge(e hypergraph.EdgeID) error {
	if t.HasEdge(e) {
		return nil
	}
	for _, v := range t.g.Vertices(e) {
		if !t.HasVertex(v) {
			return ErrVertexMissing
		}
	}
	c := len(t.cols)
	t.colOf[e] = c
	t.cols = append(t.cols, e)
	for _, v := range t.g.Vertices(e) {
		bitSet(&t.bits[t.rowOf[v]], c)
	}
	t.ech = nil

	return nil
}

// Merge absorbs another cluster's tableau (vertex- and edge-disjoint by the
// cluster invariant): rows and columns are appended in the other's insertion
// order and the echelon is rebuilt on next use.
func (t *Tableau) Merge(other *Tableau) {
	colBase := len(t.cols)
	for j, e := range other.cols {
		t.colOf[e] = colBase + j
	}
	t.cols = append(t.cols, other.cols...)

	for i, v := range other.rows {
		t.rowOf[v] = len(t.rows)
		t.rows = append(t.rows, v)
		t.rhs = append(t.rhs, other.rhs[i])
		// shift the other row's bits by colBase
		var shifted []uint64
		for j := range other.cols {
			if bitGet(other.bits[i], j) {
				bitSet(&shifted, colBase+j)
			}
		}
		t.bits = append(t.bits, shifted)
	}
	t.ech = nil
}

// echelonize (re)builds the cached echelon form: column-major Gauss–Jordan
// with first-match pivoting, fully deterministic for fixed insertion orders.
func (t *Tableau) echelonize() *echelon {
	if t.ech != nil {
		return t.ech
	}
	n := len(t.rows)
	e := &echelon{
		rows:       make([][]uint64, n),
		rhs:        make([]bool, n),
		comb:       make([][]uint64, n),
		pivotOfCol: make([]int, len(t.cols)),
		unsatRow:   -1,
	}
	for i := 0; i < n; i++ {
		e.rows[i] = bitClone(t.bits[i])
		e.rhs[i] = t.rhs[i]
		var c []uint64
		bitSet(&c, i)
		e.comb[i] = c
	}

	pivot := 0
	for c := range t.cols {
		e.pivotOfCol[c] = -1
		row := -1
		for r := pivot; r < n; r++ {
			if bitGet(e.rows[r], c) {
				row = r

				break
			}
		}
		if row < 0 {
			continue // free column
		}
		e.rows[pivot], e.rows[row] = e.rows[row], e.rows[pivot]
		e.rhs[pivot], e.rhs[row] = e.rhs[row], e.rhs[pivot]
		e.comb[pivot], e.comb[row] = e.comb[row], e.comb[pivot]
		for r := 0; r < n; r++ {
			if r != pivot && bitGet(e.rows[r], c) {
				bitXor(&e.rows[r], e.rows[pivot])
				e.rhs[r] = e.rhs[r] != e.rhs[pivot]
				bitXor(&e.comb[r], e.comb[pivot])
			}
		}
		e.pivotOfCol[c] = pivot
		pivot++
	}
	e.rank = pivot
	for r := pivot; r < n; r++ {
		if e.rhs[r] {
			e.unsatRow = r

			break
		}
	}
	t.ech = e

	return e
}

// IsSatisfiable reports whether the cluster syndrome lies in the span of the
// tight columns.
func (t *Tableau) IsSatisfiable() bool { return t.echelonize().unsatRow < 0 }
