package cube

import "errors"

// ErrInvalidMove indicates a scramble token outside the 18-move alphabet.
var ErrInvalidMove = errors.New("cube: invalid move token")
