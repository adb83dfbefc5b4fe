package tables

// sentinel is the "not yet visited" byte value used while a pruning table
// is under construction.
const sentinel = 255

// Canonical on-disk file names: raw bytes, no header, sizes exactly
// matching the coordinate space.
const (
	COFileName      = "co_prune.dat"
	EOFileName      = "eo_prune.dat"
	UDSFileName     = "uds_prune.dat"
	CPFileName      = "cp_prune.dat"
	EPFileName      = "ep_prune.dat"
	SliceEPFileName = "sliceep_prune.dat"

	checksumSuffix = ".b2b"
)

// Tables bundles the finished pruning tables: the three phase-1 tables
// (CO, EO, UDS) plus the three phase-2-only permutation tables (CP, EP,
// SliceEP) that let phase 2 do genuine corner/edge-permutation work
// instead of stopping the instant UDS membership is reached. Once built
// or loaded, a Tables value is read-only and safe to share across
// concurrent solves.
type Tables struct {
	CO      []byte // len == cube.NumCOCoords
	EO      []byte // len == cube.NumEOCoords
	UDS     []byte // len == cube.NumUDSCoords
	CP      []byte // len == cube.NumCPCoords
	EP      []byte // len == cube.NumEPCoords
	SliceEP []byte // len == cube.NumSliceEPCoords
}

// ProgressEvent reports the completion of one pruning-table generation
// stage.
type ProgressEvent struct {
	// Table names the coordinate space ("CO", "EO", "UDS", "CP", "EP" or
	// "SliceEP").
	Table string
	// Visited is the number of coordinates assigned a finite distance.
	Visited int
	// Total is the size of the coordinate space.
	Total int
}

// GenerateOptions configures table generation.
type GenerateOptions struct {
	// Progress, if non-nil, is invoked once per finished pruning table.
	Progress func(ProgressEvent)
}

// DefaultGenerateOptions returns options with a no-op progress hook.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Progress: func(ProgressEvent) {}}
}

// moveTable is next[coord][i] for one coordinate space, where i indexes
// whatever move list the table was built with (the full 18 for phase 1,
// cube.Phase2Moves' 10 for the phase-2-only tables); transient, used only
// while building the corresponding pruning table.
type moveTable [][]int
