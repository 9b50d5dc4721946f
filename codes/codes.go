package codes

import (
	"errors"
	"math"

	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/weight"
)

// WeightScale is the integer quantization of log-likelihood weights.
const WeightScale = 1000

// Sentinel errors for code construction.
var (
	// ErrBadDistance indicates a code distance below the minimum.
	ErrBadDistance = errors.New("codes: code distance too small")

	// ErrBadProbability indicates p outside (0, 0.5).
	ErrBadProbability = errors.New("codes: error probability must be in (0, 0.5)")
)

// WeightFromProbability converts a physical error rate into the quantized
// log-likelihood edge weight round(WeightScale · ln((1−p)/p)).
func WeightFromProbability(p float64) (weight.W, error) {
	if !(p > 0 && p < 0.5) {
		return weight.W{}, ErrBadProbability
	}

	return weight.FromInt(int64(math.Round(WeightScale * math.Log((1-p)/p)))), nil
}

// NewRepetitionCode builds the decoding graph of a distance-d repetition
// code under uniform error rate p: detectors 0..d−2, one edge per data
// qubit. Qubit 0 and qubit d−1 touch a single detector (boundary
// half-edges); every other qubit i flips detectors {i−1, i}.
//
// Errors: ErrBadDistance when d < 2, ErrBadProbability for p.
func NewRepetitionCode(d int, p float64) (*hypergraph.Graph, error) {
	if d < 2 {
		return nil, ErrBadDistance
	}
	w, err := WeightFromProbability(p)
	if err != nil {
		return nil, err
	}

	specs := make([]hypergraph.EdgeSpec, 0, d)
	for q := 0; q < d; q++ {
		var vs []hypergraph.VertexID
		switch {
		case q == 0:
			vs = []hypergraph.VertexID{0}
		case q == d-1:
			vs = []hypergraph.VertexID{hypergraph.VertexID(d - 2)}
		default:
			vs = []hypergraph.VertexID{hypergraph.VertexID(q - 1), hypergraph.VertexID(q)}
		}
		specs = append(specs, hypergraph.EdgeSpec{Vertices: vs, Weight: w})
	}

	return hypergraph.New(d-1, specs)
}

// NewRingCode builds the periodic repetition code: d detectors on a ring,
// edge i joining detectors i and (i+1) mod d.
//
// Errors: ErrBadDistance when d < 3, ErrBadProbability for p.
func NewRingCode(d int, p float64) (*hypergraph.Graph, error) {
	if d < 3 {
		return nil, ErrBadDistance
	}
	w, err := WeightFromProbability(p)
	if err != nil {
		return nil, err
	}

	specs := make([]hypergraph.EdgeSpec, 0, d)
	for i := 0; i < d; i++ {
		specs = append(specs, hypergraph.EdgeSpec{
			Vertices: []hypergraph.VertexID{hypergraph.VertexID(i), hypergraph.VertexID((i + 1) % d)},
			Weight:   w,
		})
	}

	return hypergraph.New(d, specs)
}
