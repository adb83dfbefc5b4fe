package cube

import (
	"fmt"
	"strings"
)

// quarterTurn describes a single clockwise quarter turn as a 4-cycle on
// four corner slots and four edge slots, plus the per-position orientation
// delta applied (mod 3 for corners, mod 2 for edges) to the pieces in their
// new positions.
type quarterTurn struct {
	cornerCycle [4]int
	cornerDelta [4]int
	edgeCycle   [4]int
	edgeDelta   [4]int
}

// quarterTurns is keyed by Face, one entry for each of the six faces in Faces.
var quarterTurns = map[Face]quarterTurn{
	FaceU: {
		cornerCycle: [4]int{0, 1, 2, 3}, cornerDelta: [4]int{0, 0, 0, 0},
		edgeCycle: [4]int{0, 1, 2, 3}, edgeDelta: [4]int{0, 0, 0, 0},
	},
	FaceD: {
		cornerCycle: [4]int{4, 7, 6, 5}, cornerDelta: [4]int{0, 0, 0, 0},
		edgeCycle: [4]int{4, 5, 6, 7}, edgeDelta: [4]int{0, 0, 0, 0},
	},
	FaceL: {
		cornerCycle: [4]int{0, 4, 5, 1}, cornerDelta: [4]int{2, 1, 2, 1},
		edgeCycle: [4]int{0, 11, 4, 8}, edgeDelta: [4]int{0, 0, 0, 0},
	},
	FaceR: {
		cornerCycle: [4]int{2, 6, 7, 3}, cornerDelta: [4]int{1, 2, 1, 2},
		edgeCycle: [4]int{2, 9, 6, 10}, edgeDelta: [4]int{0, 0, 0, 0},
	},
	FaceF: {
		cornerCycle: [4]int{1, 5, 6, 2}, cornerDelta: [4]int{1, 2, 1, 2},
		edgeCycle: [4]int{1, 8, 5, 9}, edgeDelta: [4]int{1, 1, 1, 1},
	},
	FaceB: {
		cornerCycle: [4]int{3, 7, 4, 0}, cornerDelta: [4]int{1, 2, 1, 2},
		edgeCycle: [4]int{3, 10, 7, 11}, edgeDelta: [4]int{1, 1, 1, 1},
	},
}

// cyclePieces performs the permutation-and-orientation cycle described in
// quarterTurn: the piece at pieces[i] moves to pieces[i+1] (wrapping), and
// delta[i] (mod m) is added to the orientation that ends up at pieces[i].
func cyclePieces(p []int, o []int, pieces, delta [4]int, mod int) {
	lastPiece := p[pieces[3]]
	lastOrient := o[pieces[3]]
	for i := 3; i > 0; i-- {
		p[pieces[i]] = p[pieces[i-1]]
		o[pieces[i]] = o[pieces[i-1]]
	}
	p[pieces[0]] = lastPiece
	o[pieces[0]] = lastOrient

	for i := 0; i < 4; i++ {
		o[pieces[i]] = (o[pieces[i]] + delta[i]) % mod
	}
}

// applyQuarterTurn applies one clockwise quarter turn of face f to c.
func (c *Cube) applyQuarterTurn(f Face) {
	qt := quarterTurns[f]
	cyclePieces(c.CP[:], c.CO[:], qt.cornerCycle, qt.cornerDelta, 3)
	cyclePieces(c.EP[:], c.EO[:], qt.edgeCycle, qt.edgeDelta, 2)
}

// ApplyToken applies a single move token ("U", "U2" or "U'" style) to c.
// Returns ErrInvalidMove if the token is not one of the 18 standard moves.
func (c *Cube) ApplyToken(move string) error {
	idx := MoveIndex(move)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidMove, move)
	}
	face := Face(move[0])
	count := 1
	if len(move) == 2 {
		if move[1] == '2' {
			count = 2
		} else {
			count = 3 // trailing "'"
		}
	}
	for i := 0; i < count; i++ {
		c.applyQuarterTurn(face)
	}
	return nil
}

// Apply parses moveStr as whitespace-separated move tokens and applies each
// in order. On the first invalid token, c is left with every move up to
// that point already applied and ErrInvalidMove is returned; the
// orchestrator (package solver) is responsible for not starting a search
// once this occurs.
func Apply(c *Cube, moveStr string) error {
	for _, tok := range strings.Fields(moveStr) {
		if err := c.ApplyToken(tok); err != nil {
			return err
		}
	}
	return nil
}

// Inverse returns the move that undoes a single token: U <-> U', U2 -> U2.
func Inverse(move string) (string, error) {
	idx := MoveIndex(move)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidMove, move)
	}
	switch {
	case len(move) == 1:
		return move + "'", nil
	case move[1] == '\'':
		return move[:1], nil
	default: // "2"
		return move, nil
	}
}

// InverseSequence returns the whitespace-joined inverse of a whole move
// sequence: reversed order, each token inverted. An empty input yields an
// empty output.
func InverseSequence(moveStr string) (string, error) {
	toks := strings.Fields(moveStr)
	inv := make([]string, len(toks))
	for i, tok := range toks {
		m, err := Inverse(tok)
		if err != nil {
			return "", err
		}
		inv[len(toks)-1-i] = m
	}
	return strings.Join(inv, " "), nil
}
