package dual

import (
	"errors"

	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/weight"
)

// NodeID is the dense index of a dual node within its module's arena.
type NodeID int

// Rate is a growth rate from {−1, 0, +1}, scaled by the shared step.
type Rate int

// Growth rates.
const (
	RateShrink Rate = -1
	RateIdle   Rate = 0
	RateGrow   Rate = +1
)

// ErrInternalInvariant is the fatal taxonomy root for arithmetic
// inconsistencies: an advance that would drive y_S below zero or g_e outside
// [0, w_e]. It aborts the solve and is surfaced with context for postmortem.
var ErrInternalInvariant = errors.New("dual: internal invariant violation")

// ObstacleKind discriminates the events reported by NextObstacle.
type ObstacleKind int

// Obstacle kinds, in tie-break order: EdgeTight before DualZero.
const (
	// ObstacleNone means all rates are zero (or no event is reachable).
	ObstacleNone ObstacleKind = iota

	// ObstacleEdgeTight: an edge reaches g_e == w_e after Dt.
	ObstacleEdgeTight

	// ObstacleDualZero: a shrinking node reaches y_S == 0 after Dt.
	ObstacleDualZero
)

// Obstacle is the earliest event blocking uniform growth. Dt is relative to
// the current module time; exactly one of Edge/Node is meaningful, by Kind.
type Obstacle struct {
	Kind ObstacleKind
	Edge hypergraph.EdgeID
	Node NodeID
	Dt   weight.W
}

// Node is one dual variable y_S with its defining subset.
//
// Vertices, Internal and Hair are fixed at creation: δ(S) is every edge
// incident to V_S that was not promoted to E_S when the node was created
// (fully-internal untight edges stay in the hair; promotion is the relaxer's
// job and only happens for new nodes).
type Node struct {
	vertices []hypergraph.VertexID
	internal []hypergraph.EdgeID
	hair     []hypergraph.EdgeID
	value    weight.W
	rate     Rate
	seed     hypergraph.VertexID // −1 unless this is a defect-seeded singleton
}

// Vertices returns V_S. Owned by the node; do not mutate.
func (n *Node) Vertices() []hypergraph.VertexID { return n.vertices }

// Internal returns E_S. Owned by the node; do not mutate.
func (n *Node) Internal() []hypergraph.EdgeID { return n.internal }

// Hair returns δ(S). Owned by the node; do not mutate.
func (n *Node) Hair() []hypergraph.EdgeID { return n.hair }

// Value returns y_S.
func (n *Node) Value() weight.W { return n.value }

// Rate returns the current growth rate r_S.
func (n *Node) Rate() Rate { return n.rate }

// IsSeed reports whether the node is a defect-seeded singleton.
func (n *Node) IsSeed() bool { return n.seed >= 0 }

// SeedVertex returns the seeding defect vertex, or −1.
func (n *Node) SeedVertex() hypergraph.VertexID { return n.seed }
