package solver

import (
	"encoding/json"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/weight"
)

// Snapshot schema constants. The schema is stable for this major version.
const (
	FormatName    = "mwpf"
	FormatVersion = "1.0"
)

// Position is an optional layout hint for one vertex: time coordinate t and
// planar coordinates i, j.
type Position struct {
	T float64 `json:"t"`
	I float64 `json:"i"`
	J float64 `json:"j"`
}

// DualNodeSnapshot describes one dual variable y_S. The numerator and
// denominator companions (dn/dd, rn/rd) mirror the wire format so consumers
// without a rational parser can reconstruct exact values.
type DualNodeSnapshot struct {
	Edges        []int    `json:"edges"` // internal edge set E_S
	Vertices     []int    `json:"vertices"`
	Hair         []int    `json:"hair"`
	DualVariable weight.W `json:"dual_variable"`
	DualNumer    int64    `json:"dn"`
	DualDenom    int64    `json:"dd"`
	GrowRate     int      `json:"grow_rate"`
	RateNumer    int64    `json:"rn"`
	RateDenom    int64    `json:"rd"`
}

// EdgeSnapshot describes one hyperedge's per-solve state.
type EdgeSnapshot struct {
	Weight   weight.W `json:"weight"`
	Grown    weight.W `json:"grown"`
	Vertices []int    `json:"vertices"`
}

// VertexSnapshot carries the defect flag under its abbreviated wire key.
type VertexSnapshot struct {
	IsDefect bool `json:"s"`
}

// InterfaceSnapshot carries module-level aggregates with the sdn/sdd
// companions of Σ y_S.
type InterfaceSnapshot struct {
	SumDual      weight.W `json:"sum_dual"`
	SumDualNumer int64    `json:"sdn"`
	SumDualDenom int64    `json:"sdd"`
}

// WeightRangeSnapshot is the certified bound pair with the ln/ld and un/ud
// companions.
type WeightRangeSnapshot struct {
	Lower      weight.W `json:"lower"`
	Upper      weight.W `json:"upper"`
	LowerNumer int64    `json:"ln"`
	LowerDenom int64    `json:"ld"`
	UpperNumer int64    `json:"un"`
	UpperDenom int64    `json:"ud"`
}

// Snapshot is one named frame of solver state.
type Snapshot struct {
	DualNodes   []DualNodeSnapshot   `json:"dual_nodes"`
	Edges       []EdgeSnapshot       `json:"edges"`
	Interface   InterfaceSnapshot    `json:"interface"`
	Vertices    []VertexSnapshot     `json:"vertices"`
	Subgraph    []int                `json:"subgraph,omitempty"`
	WeightRange *WeightRangeSnapshot `json:"weight_range,omitempty"`
}

// namedSnapshot serializes as the wire pair [name, snapshot].
type namedSnapshot struct {
	name string
	snap Snapshot
}

// MarshalJSON implements the [name, Snapshot] pair encoding.
func (n namedSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{n.name, n.snap})
}

// Visualizer accumulates named snapshots and exports the persistent JSON
// document.
type Visualizer struct {
	positions []Position
	snapshots []namedSnapshot
}

// NewVisualizer creates a recorder with optional vertex positions.
func NewVisualizer(positions []Position) *Visualizer {
	return &Visualizer{positions: positions}
}

// Len returns the number of recorded snapshots.
func (v *Visualizer) Len() int { return len(v.snapshots) }

func (v *Visualizer) record(name string, s Snapshot) {
	v.snapshots = append(v.snapshots, namedSnapshot{name: name, snap: s})
}

// Export renders the stable document: {format, version, positions,
// snapshots: [[name, Snapshot], …]}.
func (v *Visualizer) Export() ([]byte, error) {
	doc := struct {
		Format    string          `json:"format"`
		Version   string          `json:"version"`
		Positions []Position      `json:"positions"`
		Snapshots []namedSnapshot `json:"snapshots"`
	}{
		Format:    FormatName,
		Version:   FormatVersion,
		Positions: v.positions,
		Snapshots: v.snapshots,
	}
	if doc.Positions == nil {
		doc.Positions = []Position{}
	}
	if doc.Snapshots == nil {
		doc.Snapshots = []namedSnapshot{}
	}

	return json.Marshal(doc)
}

// buildSnapshot captures the current dual/graph state (and results once
// solved).
func (s *Solver) buildSnapshot() Snapshot {
	sum := s.d.SumDual()
	sn, sd := ratParts(sum)
	snap := Snapshot{
		Interface: InterfaceSnapshot{SumDual: sum, SumDualNumer: sn, SumDualDenom: sd},
	}
	for id := 0; id < s.d.NodeCount(); id++ {
		n := s.d.Node(dual.NodeID(id))
		dn, dd := ratParts(n.Value())
		snap.DualNodes = append(snap.DualNodes, DualNodeSnapshot{
			Edges:        asInts(n.Internal()),
			Vertices:     asInts(n.Vertices()),
			Hair:         asInts(n.Hair()),
			DualVariable: n.Value(),
			DualNumer:    dn,
			DualDenom:    dd,
			GrowRate:     int(n.Rate()),
			RateNumer:    int64(n.Rate()),
			RateDenom:    1,
		})
	}
	for e := 0; e < s.g.EdgeNum(); e++ {
		id := hypergraph.EdgeID(e)
		snap.Edges = append(snap.Edges, EdgeSnapshot{
			Weight:   s.g.Weight(id),
			Grown:    s.g.Grown(id),
			Vertices: asInts(s.g.Vertices(id)),
		})
	}
	for v := 0; v < s.g.VertexNum(); v++ {
		snap.Vertices = append(snap.Vertices, VertexSnapshot{IsDefect: s.g.IsDefect(hypergraph.VertexID(v))})
	}
	if s.solved {
		snap.Subgraph = asInts(s.p.Subgraph())
		rng := s.p.Range()
		ln, ld := ratParts(rng.Lower)
		un, ud := ratParts(rng.Upper)
		snap.WeightRange = &WeightRangeSnapshot{
			Lower:      rng.Lower,
			Upper:      rng.Upper,
			LowerNumer: ln,
			LowerDenom: ld,
			UpperNumer: un,
			UpperDenom: ud,
		}
	}

	return snap
}

// ratParts returns the reduced numerator and denominator of w as int64, like
// the wire format expects. The conversion is big.Int.Int64, which does not
// clamp: values outside the int64 range give undefined results (solver values
// stay far below that).
func ratParts(w weight.W) (int64, int64) {
	return w.Numer().Int64(), w.Denom().Int64()
}

// asInts flattens any of the typed index slices for serialization.
func asInts[T ~int](ids []T) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}

	return out
}
