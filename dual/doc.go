// Package dual maintains the dual side of the MWPF linear program: the
// monotone-growing dual variables y_S (one per materialized vertex subset S),
// their growth rates, their hair δ(S), and the priority queue of obstacles —
// the events that block further growth.
//
// The dual program maximizes Σ y_S subject to y_S ≥ 0 and, per edge e,
// Σ{y_S : e ∈ δ(S)} ≤ w_e. Only the subsets touched by the algorithm are
// materialized; the module keeps the running identity g_e = Σ{y_S : e ∈ δ(S)}
// by growing edges and nodes in lockstep.
//
// Obstacle detection uses a binary heap with lazy deletion: every rate change
// pushes fresh entries keyed by absolute event time, and stale entries are
// discarded on pop by recomputing the event time from current state. Ties are
// deterministic — earlier time first, EdgeTight before DualZero, then lowest
// index.
//
// All mutations happen from the primal drive loop; the module is
// single-threaded per solve by design.
//
// Errors:
//
//	– ErrInternalInvariant (fatal) when an Advance would drive some y_S below
//	  zero or some g_e outside [0, w_e]; wrapped with node/edge context.
package dual
