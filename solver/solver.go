package solver

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/hypergraph"
	"github.com/katalvlaran/mwpf/primal"
)

// Sentinel errors for façade misuse.
var (
	// ErrNotSolved indicates Subgraph/SubgraphRange before a successful Solve.
	ErrNotSolved = errors.New("solver: no solve has completed")

	// ErrMustClear indicates Solve without Clear after a previous solve.
	ErrMustClear = errors.New("solver: Clear before reusing the solver")
)

// Solver decodes syndromes against one decoding graph. It is single-use per
// solve: Solve, read results, Clear, repeat. Not safe for concurrent use.
type Solver struct {
	g   *hypergraph.Graph
	cfg Config

	d      *dual.Module
	p      *primal.Module
	vis    *Visualizer
	solved bool
}

// New creates a solver over an initialized decoding graph.
func New(g *hypergraph.Graph, opts ...Option) *Solver {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{g: g, cfg: cfg}
}

// WithVisualizer attaches a snapshot recorder; Solve then records
// "syndrome" and "solved" snapshots, and Snapshot records more on demand.
func (s *Solver) WithVisualizer(v *Visualizer) *Solver {
	s.vis = v

	return s
}

// Solve decodes one syndrome. The graph's per-solve state is reset first, so
// no state leaks between solves.
//
// Errors: ErrMustClear on reuse without Clear; hypergraph.ErrInvalidSyndrome
// refinements on bad input; dual.ErrInternalInvariant (fatal) and
// primal.ErrNoParityFactor from the drive loop. Resource caps never error —
// they surface as lower < upper in the weight range.
func (s *Solver) Solve(syn hypergraph.Syndrome) error {
	if s.solved {
		return ErrMustClear
	}
	s.g.Reset()
	if err := s.g.ApplySyndrome(syn); err != nil {
		return err
	}

	s.d = dual.NewModule(s.g)
	s.p = primal.New(s.g, s.d, primal.Options{
		GrowingStrategy:  s.cfg.GrowingStrategy,
		Strategy:         s.cfg.Strategy,
		ClusterNodeLimit: s.cfg.ClusterNodeLimit,
		Timeout:          s.cfg.Timeout,
		Logger:           s.cfg.Logger,
	})
	s.snapshot("syndrome")
	if err := s.p.Solve(); err != nil {
		return err
	}
	s.solved = true
	s.snapshot("solved")

	if s.cfg.Logger != nil {
		rng := s.p.Range()
		s.cfg.Logger.WithFields(logrus.Fields{
			"defects": len(s.g.Defects()),
			"edges":   len(s.p.Subgraph()),
			"lower":   rng.Lower.String(),
			"upper":   rng.Upper.String(),
			"optimal": rng.IsOptimal(),
		}).Info("solve finished")
	}

	return nil
}

// Subgraph returns the decoded subgraph as ascending edge indices.
func (s *Solver) Subgraph() ([]hypergraph.EdgeID, error) {
	if !s.solved {
		return nil, ErrNotSolved
	}

	return s.p.Subgraph(), nil
}

// SubgraphRange returns the subgraph together with its certified weight
// range; lower == upper proves optimality.
func (s *Solver) SubgraphRange() ([]hypergraph.EdgeID, primal.WeightRange, error) {
	if !s.solved {
		return nil, primal.WeightRange{}, ErrNotSolved
	}

	return s.p.Subgraph(), s.p.Range(), nil
}

// Clear resets the per-solve state so the solver can decode another
// syndrome. The topology (and any attached visualizer) is kept.
func (s *Solver) Clear() {
	s.g.Reset()
	s.d = nil
	s.p = nil
	s.solved = false
}

// Snapshot records a named snapshot of the current dual state into the
// attached visualizer; a no-op without one.
func (s *Solver) Snapshot(name string) { s.snapshot(name) }

func (s *Solver) snapshot(name string) {
	if s.vis == nil || s.d == nil {
		return
	}
	s.vis.record(name, s.buildSnapshot())
}
