package tables

import "errors"

// Sentinel errors for table generation, persistence and loading.
var (
	// ErrTableMissing indicates a pruning-table file is absent at the
	// expected path.
	ErrTableMissing = errors.New("tables: pruning table file missing")

	// ErrTableSize indicates a pruning-table file exists but is not the
	// expected fixed size for its coordinate space.
	ErrTableSize = errors.New("tables: pruning table has wrong size")

	// ErrTableCorrupt indicates a pruning-table file matches its expected
	// size but fails its BLAKE2b-256 checksum against the sidecar file
	// written alongside it at generation time.
	ErrTableCorrupt = errors.New("tables: pruning table failed checksum")

	// ErrBFSIncomplete indicates the BFS generator finished with at least
	// one coordinate still at the 255 sentinel, meaning the move table
	// used to generate it is disconnected from the seed. That is a sign
	// of a bug in the cube model, not a user-facing condition.
	ErrBFSIncomplete = errors.New("tables: breadth-first search left unreachable coordinates")
)
