package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cubeforge/kociemba/cube"
	"github.com/cubeforge/kociemba/search"
	"github.com/cubeforge/kociemba/tables"
)

// Option customizes a Solver at construction time.
type Option func(*Solver)

// WithDepthCaps overrides the default phase-1/phase-2 IDA* depth caps.
func WithDepthCaps(phase1, phase2 int) Option {
	return func(s *Solver) {
		s.opts.Phase1DepthCap = phase1
		s.opts.Phase2DepthCap = phase2
	}
}

// Solver orchestrates the two-phase search over a shared, read-only set
// of pruning tables. A Solver is safe for concurrent use: Solve only ever
// builds and mutates a cube private to that call.
type Solver struct {
	ctx  *search.Context
	opts search.Options
}

// New builds a Solver around an already-loaded set of pruning tables.
func New(t *tables.Tables, opts ...Option) *Solver {
	s := &Solver{
		ctx:  search.NewContext(t),
		opts: search.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromDir loads the pruning tables from dir (see tables.Load) and
// builds a Solver around them. Table load failures (tables.ErrTableMissing,
// tables.ErrTableSize, tables.ErrTableCorrupt) are returned unwrapped: they
// are already errors.Is-checkable sentinels and are a fatal startup
// condition, not a per-solve error.
func NewFromDir(dir string, opts ...Option) (*Solver, error) {
	t, err := tables.Load(dir)
	if err != nil {
		return nil, err
	}
	return New(t, opts...), nil
}

// Solve parses scramble, drives the cube through phase 1 and phase 2, and
// returns the concatenated solution as a whitespace-separated move string.
// An empty scramble (or one that fully cancels) yields an empty solution.
// Equivalent to SolveContext(context.Background(), scramble).
func (s *Solver) Solve(scramble string) (string, error) {
	return s.SolveContext(context.Background(), scramble)
}

// SolveContext is Solve with a caller-supplied context: a cancelled or
// timed-out ctx aborts an in-flight search phase without waiting for its
// depth-cap escalation, surfacing as ErrCancelled with ctx.Err()'s message
// appended (ctx.Err() itself is not wrapped). Each call gets its own copy of the Solver's depth-cap
// options with Ctx overridden, so concurrent SolveContext calls on the
// same Solver never interfere.
func (s *Solver) SolveContext(ctx context.Context, scramble string) (string, error) {
	c := cube.New()
	if err := cube.Apply(c, scramble); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}

	opts := s.opts
	opts.Ctx = ctx

	phase1, err := search.Run(s.ctx, c, search.Phase1, opts)
	if err != nil {
		return "", classifyPhase1(err)
	}

	phase2, err := search.Run(s.ctx, c, search.Phase2, opts)
	if err != nil {
		return "", classifyPhase2(err)
	}

	solution := strings.Join(append(phase1, phase2...), " ")

	if !s.verify(scramble, solution) {
		return "", ErrPhase2Incomplete
	}
	return solution, nil
}

// verify replays scramble followed by solution on a fresh cube, confirming
// it truly reaches the solved state. Phase 2's heuristic and goal test
// already require the corner-permutation, edge-permutation and
// slice-edge-permutation coordinates to reach their solved value, so this
// should always pass; it remains as a cheap, final correctness gate
// rather than trusting the search result unchecked.
func (s *Solver) verify(scramble, solution string) bool {
	c := cube.New()
	if err := cube.Apply(c, scramble); err != nil {
		return false
	}
	if err := cube.Apply(c, solution); err != nil {
		return false
	}
	return c.IsSolved()
}

func classifyPhase1(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	case errors.Is(err, search.ErrDepthExceeded):
		return ErrPhase1DepthExceeded
	case errors.Is(err, search.ErrPhaseUnreachable):
		return ErrPhaseUnreachable
	default:
		return err
	}
}

func classifyPhase2(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	case errors.Is(err, search.ErrDepthExceeded):
		return ErrPhase2DepthExceeded
	case errors.Is(err, search.ErrPhaseUnreachable):
		return ErrPhaseUnreachable
	default:
		return err
	}
}
