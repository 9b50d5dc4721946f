package primal

import (
	"sort"

	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/parity"
)

// fallbackSolve runs one global GF(2) solve over every edge of the graph,
// with columns in weight-ascending order so cheap edges take the pivots.
// It is the recovery path for force-resolved clusters: whatever the caps cut
// short, the returned subgraph is always a valid parity factor for the full
// syndrome.
//
// Errors: ErrNoParityFactor when the syndrome is not decodable at all.
func (m *Module) fallbackSolve() ([]hypergraph.EdgeID, error) {
	tb := parity.NewTableau(m.g, m.opts.Strategy)
	for v := 0; v < m.g.VertexNum(); v++ {
		tb.AddVertex(hypergraph.VertexID(v))
	}

	order := make([]hypergraph.EdgeID, m.g.EdgeNum())
	for e := range order {
		order[e] = hypergraph.EdgeID(e)
	}
	sort.SliceStable(order, func(i, j int) bool {
		c := m.g.Weight(order[i]).Cmp(m.g.Weight(order[j]))
		if c != 0 {
			return c < 0
		}

		return order[i] < order[j]
	})
	for _, e := range order {
		// Every vertex is a row, so this cannot fail.
		if err := tb.AddTightEdge(e); err != nil {
			return nil, err
		}
	}

	sub, err := tb.ExtractSubgraph()
	if err != nil {
		return nil, ErrNoParityFactor
	}

	return sub, nil
}
