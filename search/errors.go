package search

import "errors"

var (
	// ErrDepthExceeded is returned when IDA*'s bound escalates past the
	// configured cap without finding a solution.
	ErrDepthExceeded = errors.New("search: bound exceeded configured depth cap")

	// ErrPhaseUnreachable is returned when a DFS pass prunes every
	// successor without any of them exceeding the current bound, which
	// implies a corrupt or disconnected pruning table rather than a
	// genuinely unsolvable state.
	ErrPhaseUnreachable = errors.New("search: no successor exceeded the bound; tables may be corrupt")
)
