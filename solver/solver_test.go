package solver_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/cubeforge/kociemba/cube"
	"github.com/cubeforge/kociemba/solver"
	"github.com/cubeforge/kociemba/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	solverOnce sync.Once
	sv         *solver.Solver
	svErr      error
)

func mustSolver(t *testing.T) *solver.Solver {
	t.Helper()
	solverOnce.Do(func() {
		tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
		if err != nil {
			svErr = err
			return
		}
		sv = solver.New(tb)
	})
	require.NoError(t, svErr)
	return sv
}

func TestSolve_EmptyScramble(t *testing.T) {
	s := mustSolver(t)
	out, err := s.Solve("")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestSolve_InvalidMove(t *testing.T) {
	s := mustSolver(t)
	_, err := s.Solve("X")
	assert.ErrorIs(t, err, solver.ErrInvalidMove)
}

func TestSolve_EndToEndScenarios(t *testing.T) {
	s := mustSolver(t)
	cases := []struct {
		name     string
		scramble string
		maxLen   int
	}{
		{"single move", "U", 3},
		{"sexy move", "R U R' U'", 36},
		{"repeated face turns", "R R R R R R", 36},
		{"superflip-like", "L2 F2 U2 R2 B2 D2 F2 L2 U2 B2 R2 D2", 36},
		{"mixed scramble", "F L D B' U' R F'", 36},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out, err := s.Solve(tc.scramble)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(strings.Fields(out)), tc.maxLen)

			c := cube.New()
			require.NoError(t, cube.Apply(c, tc.scramble))
			require.NoError(t, cube.Apply(c, out))
			assert.True(t, c.IsSolved())
		})
	}
}

func TestSolve_FullFaceCycleIsEmpty(t *testing.T) {
	// R applied four times is the identity, so the scramble cancels
	// itself and the zero heuristic at the start returns no moves.
	s := mustSolver(t)
	out, err := s.Solve("R R R R")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestSolve_Deterministic(t *testing.T) {
	s := mustSolver(t)
	const scramble = "R U R' U' R' F R2 U' R' U' R U R' F'"
	out1, err := s.Solve(scramble)
	require.NoError(t, err)
	out2, err := s.Solve(scramble)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestSolve_DepthCapsSurfaceAsPhaseErrors(t *testing.T) {
	tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
	require.NoError(t, err)

	tight := solver.New(tb, solver.WithDepthCaps(0, 0))
	// "R U R' U'" leaves corners twisted, so phase 1 needs at least one
	// move and a zero cap surfaces as a phase-1 failure.
	_, err = tight.Solve("R U R' U'")
	assert.ErrorIs(t, err, solver.ErrPhase1DepthExceeded)

	// An all-half-turn scramble keeps orientations and slice membership
	// solved, so phase 1 succeeds with no moves and the zero cap is hit
	// by phase 2 instead.
	_, err = tight.Solve("L2 F2 U2 R2 B2 D2 F2 L2 U2 B2 R2 D2")
	assert.ErrorIs(t, err, solver.ErrPhase2DepthExceeded)
}

func TestSolveContext_CancelledSurfacesAsError(t *testing.T) {
	s := mustSolver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.SolveContext(ctx, "L2 F2 U2 R2 B2 D2 F2 L2 U2 B2 R2 D2")
	assert.ErrorIs(t, err, solver.ErrCancelled)
}

