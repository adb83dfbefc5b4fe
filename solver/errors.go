package solver

import "errors"

var (
	// ErrInvalidMove is returned when the scramble contains a token
	// outside the 18-move alphabet. No search is started.
	ErrInvalidMove = errors.New("solver: scramble contains an invalid move")

	// ErrPhase1DepthExceeded is returned when phase-1 IDA* exceeds its
	// configured depth cap without finding a solution.
	ErrPhase1DepthExceeded = errors.New("solver: phase 1 search exceeded depth limit")

	// ErrPhase2DepthExceeded is the phase-2 counterpart.
	ErrPhase2DepthExceeded = errors.New("solver: phase 2 search exceeded depth limit")

	// ErrPhaseUnreachable is returned when a search phase exhausts its
	// move set without any branch ever exceeding the bound, which
	// indicates a corrupt or disconnected pruning table rather than a
	// genuinely unsolvable cube.
	ErrPhaseUnreachable = errors.New("solver: search phase found no reachable bound increase; tables may be corrupt")

	// ErrPhase2Incomplete is returned when phase 2 reports success but
	// replaying scramble+solution from a fresh cube does not land on the
	// solved state. Under a correct phase-2 heuristic and goal test this
	// should never trigger; Solve treats it as a hard failure rather than
	// ever returning a solution that does not actually solve the cube.
	ErrPhase2Incomplete = errors.New("solver: phase 2 reported success but the solution does not solve the cube")

	// ErrCancelled is returned when SolveContext's context is cancelled or
	// times out while a search phase is in flight.
	ErrCancelled = errors.New("solver: search cancelled")
)
