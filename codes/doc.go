// Package codes builds example decoding hypergraphs for tests, examples and
// benchmarks: small standard QEC codes with uniform physical error rate p.
//
// Edge weights follow the usual log-likelihood convention
// w = ln((1−p)/p), quantized to an integer at WeightScale resolution so the
// decoder's exact arithmetic stays on small rationals.
//
// Constructors:
//
//	– NewRepetitionCode(d, p): distance-d repetition code — d−1 detectors in
//	  a chain, one data-qubit edge between neighbours and one boundary
//	  half-edge at each end.
//	– NewRingCode(d, p): the periodic variant — d detectors on a ring.
//
// Errors (sentinel):
//
//	– ErrBadDistance    if the code distance is too small.
//	– ErrBadProbability if p is outside (0, 0.5).
package codes
