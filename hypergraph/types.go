package hypergraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mwpf/weight"
)

// VertexID is the dense index of a detector vertex.
type VertexID int

// EdgeID is the dense index of a hyperedge, in initializer order.
type EdgeID int

// Sentinel errors for topology construction and syndrome application.
//
// The two taxonomy roots (ErrInvalidTopology, ErrInvalidSyndrome) are
// wrapped by the refined sentinels so callers can match either level with
// errors.Is.
var (
	// ErrInvalidTopology is the root of all initializer validation failures.
	ErrInvalidTopology = errors.New("hypergraph: invalid topology")

	// ErrVertexOutOfRange indicates an edge referencing a vertex ≥ VertexNum.
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex index out of range", ErrInvalidTopology)

	// ErrEmptyEdge indicates an edge with no vertices.
	ErrEmptyEdge = fmt.Errorf("%w: edge has no vertices", ErrInvalidTopology)

	// ErrRepeatedVertex indicates an edge listing the same vertex twice.
	ErrRepeatedVertex = fmt.Errorf("%w: edge repeats a vertex", ErrInvalidTopology)

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrInvalidTopology)

	// ErrInvalidSyndrome is the root of all syndrome validation failures.
	ErrInvalidSyndrome = errors.New("hypergraph: invalid syndrome")

	// ErrDefectOutOfRange indicates a defect vertex index ≥ VertexNum.
	ErrDefectOutOfRange = fmt.Errorf("%w: defect vertex out of range", ErrInvalidSyndrome)

	// ErrEdgeOutOfRange indicates an edge index ≥ EdgeNum in a syndrome.
	ErrEdgeOutOfRange = fmt.Errorf("%w: edge index out of range", ErrInvalidSyndrome)

	// ErrNegativeOverride indicates a negative per-solve weight override.
	ErrNegativeOverride = fmt.Errorf("%w: negative weight override", ErrInvalidSyndrome)
)

// EdgeSpec describes one hyperedge of the initializer: its vertex set (an
// ordered set, |e| ≥ 1) and its non-negative weight.
type EdgeSpec struct {
	Vertices []VertexID
	Weight   weight.W
}

// WeightOverride replaces one edge's weight for the duration of a solve.
type WeightOverride struct {
	Edge   EdgeID
	Weight weight.W
}

// Syndrome is the online input of a solve: the defect vertices, optional
// per-edge weight overrides, and optional heralded-erasure edges whose weight
// is forced to zero for this solve.
type Syndrome struct {
	DefectVertices      []VertexID
	EdgeWeightOverrides []WeightOverride
	HeraldedEdges       []EdgeID
}
