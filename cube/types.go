package cube

// NumCorners and NumEdges are the fixed cubie counts of a 3x3x3 cube.
const (
	NumCorners = 8
	NumEdges   = 12
)

// Cube is a mutable, cheap-to-copy cube state: corner/edge permutation and
// orientation, indexed by the fixed slot numbering the quarter-turn
// tables in this package are written against.
//
// The zero value is not meaningful; use New for the solved state.
type Cube struct {
	// CP holds, for each corner slot, the identity of the cubie occupying it.
	CP [NumCorners]int
	// CO holds each corner cubie's orientation in {0,1,2}.
	CO [NumCorners]int
	// EP holds, for each edge slot, the identity of the cubie occupying it.
	EP [NumEdges]int
	// EO holds each edge cubie's orientation in {0,1}.
	EO [NumEdges]int
}

// New returns a solved cube: CP/EP are the identity permutation, CO/EO are
// all zero.
func New() *Cube {
	c := &Cube{}
	for i := 0; i < NumCorners; i++ {
		c.CP[i] = i
	}
	for i := 0; i < NumEdges; i++ {
		c.EP[i] = i
	}
	return c
}

// IsSolved reports whether c is exactly the identity state.
func (c *Cube) IsSolved() bool {
	for i := 0; i < NumCorners; i++ {
		if c.CP[i] != i || c.CO[i] != 0 {
			return false
		}
	}
	for i := 0; i < NumEdges; i++ {
		if c.EP[i] != i || c.EO[i] != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of c.
func (c *Cube) Clone() *Cube {
	cp := *c
	return &cp
}

// Face identifies one of the six faces a quarter turn can act on.
type Face byte

// The six faces, in the canonical order used throughout this package and
// by the move-index tables in package tables.
const (
	FaceU Face = 'U'
	FaceD Face = 'D'
	FaceL Face = 'L'
	FaceR Face = 'R'
	FaceF Face = 'F'
	FaceB Face = 'B'
)

// Faces lists the six faces in canonical order.
var Faces = [6]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Moves is the canonical, index-stable enumeration of the 18 standard face
// turns: for each face in Faces order, the quarter (""), half ("2") and
// counter-quarter ("'") turn, in that order. Move tables in package tables
// are indexed by position in this slice; the search packages rely on that
// indexing being stable, so this slice must never be reordered.
var Moves = [18]string{
	"U", "U2", "U'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"B", "B2", "B'",
}

// NumMoves is len(Moves).
const NumMoves = 18

// MoveIndex maps a move token to its index in Moves, or -1 if unknown.
func MoveIndex(move string) int {
	for i, m := range Moves {
		if m == move {
			return i
		}
	}
	return -1
}

// Phase2Moves is the 10-move G1 stabilizer used by phase 2 of the
// two-phase search: quarter and half turns of U/D, half turns only of
// L/R/F/B. Defined here, alongside Moves, so both
// package tables (phase-2-only coordinate move tables) and package
// search (phase-2 move enumeration) share one canonical list.
var Phase2Moves = [10]string{
	"U", "U2", "U'",
	"D", "D2", "D'",
	"L2", "R2", "F2", "B2",
}

// Phase2MoveIndices holds Phase2Moves' positions in Moves, in the same
// order, for packages that step a move table by index rather than token.
var Phase2MoveIndices = func() [10]int {
	var idx [10]int
	for i, mv := range Phase2Moves {
		idx[i] = MoveIndex(mv)
	}
	return idx
}()
