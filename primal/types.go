package primal

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/parity"
	"github.com/katalvlaran/mwpf/weight"
)

// ErrNoParityFactor indicates the syndrome admits no parity factor at all on
// this topology (for example, a defect on an isolated vertex). This is an
// input property, not an algorithm failure.
var ErrNoParityFactor = errors.New("primal: syndrome admits no parity factor")

// ErrSolveFinished indicates Solve was called twice on the same module; a
// module runs exactly one solve.
var ErrSolveFinished = errors.New("primal: module already solved")

// GrowingStrategy selects how defect clusters grow.
type GrowingStrategy int

const (
	// SingleCluster grows one live cluster at a time (best average time at
	// low error density). This is the default.
	SingleCluster GrowingStrategy = iota

	// MultipleClusters grows every seed concurrently.
	MultipleClusters
)

// String implements fmt.Stringer for configuration display.
func (s GrowingStrategy) String() string {
	switch s {
	case SingleCluster:
		return "single-cluster"
	case MultipleClusters:
		return "multiple-clusters"
	default:
		return "unknown"
	}
}

// Options configures one primal module.
type Options struct {
	// GrowingStrategy is SingleCluster (default) or MultipleClusters.
	GrowingStrategy GrowingStrategy

	// Strategy selects the relaxer-construction variant.
	Strategy parity.Strategy

	// ClusterNodeLimit caps dual nodes per cluster; nil means no limit.
	// On exceed the cluster is force-Resolved (bound gap, never an error).
	ClusterNodeLimit *int

	// Timeout caps wall time per cluster, checked at cluster-step
	// boundaries; zero means no limit. Same recovery as the node limit.
	Timeout time.Duration

	// Logger receives Debug-level drive-loop tracing. Nil disables logging.
	Logger logrus.FieldLogger
}

// WeightRange is the certified result bound: Lower = Σ y_S (dual
// feasibility certificate), Upper = total weight of the returned subgraph.
type WeightRange struct {
	Lower weight.W
	Upper weight.W
}

// IsOptimal reports whether the bound proves optimality (lower == upper).
func (r WeightRange) IsOptimal() bool { return r.Lower.Equal(r.Upper) }

// clusterStatus tracks a cluster through its lifecycle.
type clusterStatus int

const (
	// clusterGrowing: dual variables of the cluster are (or may be) growing.
	clusterGrowing clusterStatus = iota

	// clusterAwaiting: nothing grows and the parity check is unsatisfied;
	// the cluster waits for activation or a relaxer.
	clusterAwaiting

	// clusterResolved: the cluster carries its final subgraph.
	clusterResolved
)

// cluster is one connected component under tight edges. Vertices live in the
// tableau's row registry; dual nodes are referenced by arena index only
// (index-based weak references, never owning pointers).
type cluster struct {
	id      int
	tableau *parity.Tableau
	nodes   []dual.NodeID
	seeds   []dual.NodeID
	status  clusterStatus

	// activated: seeds have been released (or the cluster has been relaxed).
	activated bool

	// gapped: force-resolved; the weight range may show lower < upper.
	gapped bool

	created  time.Time
	subgraph []hypergraph.EdgeID
}
