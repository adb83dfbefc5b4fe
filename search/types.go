package search

import (
	"context"

	"github.com/cubeforge/kociemba/cube"
)

// Phase selects the allowed move set and heuristic for a search.
type Phase int

const (
	// Phase1 uses all 18 moves and the max of the three phase-1 pruning
	// tables as its heuristic; its goal is membership in G1.
	Phase1 Phase = 1
	// Phase2 uses the 10-move G1 stabilizer (cube.Phase2Moves) and the max
	// of the corner-permutation, edge-permutation and slice-edge-
	// permutation pruning tables as its heuristic; its goal is the fully
	// solved cube.
	Phase2 Phase = 2
)

// Default depth caps: past these, a search is declared failed rather
// than left to run unbounded on a possibly-corrupt table.
const (
	DefaultPhase1DepthCap = 14
	DefaultPhase2DepthCap = 22
)

// Options configures one Run call.
type Options struct {
	// Phase1DepthCap aborts phase-1 search with ErrDepthExceeded once the
	// IDA* bound would exceed this value.
	Phase1DepthCap int
	// Phase2DepthCap is the same cap for phase 2.
	Phase2DepthCap int
	// Ctx, if non-nil, allows an in-flight search to be cancelled; Run
	// checks it periodically during DFS and returns ctx.Err() once it is
	// done. Defaults to context.Background() (never cancelled).
	Ctx context.Context
}

// DefaultOptions returns the default depth caps and a non-cancellable
// background context.
func DefaultOptions() Options {
	return Options{
		Phase1DepthCap: DefaultPhase1DepthCap,
		Phase2DepthCap: DefaultPhase2DepthCap,
		Ctx:            context.Background(),
	}
}

// moveSet resolves the allowed move indices (into cube.Moves) for phase.
func moveSet(phase Phase) []int {
	if phase == Phase2 {
		idx := make([]int, len(cube.Phase2MoveIndices))
		copy(idx, cube.Phase2MoveIndices[:])
		return idx
	}
	idx := make([]int, cube.NumMoves)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
