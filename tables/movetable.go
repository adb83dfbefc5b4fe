package tables

import "github.com/cubeforge/kociemba/cube"

// buildMoveTable produces next[coord][i] for one coordinate space, i
// indexing moves: for every coordinate, decode a representative cube,
// apply each move in moves to an independent clone, and re-encode. Taking
// the move list as a parameter lets the same machinery build both the
// full-18-move phase-1 tables and the 10-move phase-2-only tables.
func buildMoveTable(size int, moves []string, decode func(int) *cube.Cube, encode func(*cube.Cube) int) moveTable {
	mt := make(moveTable, size)
	for coord := 0; coord < size; coord++ {
		base := decode(coord)
		row := make([]int, len(moves))
		for mi, mv := range moves {
			c := base.Clone()
			_ = c.ApplyToken(mv) // mv is always a known token, never invalid
			row[mi] = encode(c)
		}
		mt[coord] = row
	}
	return mt
}

func buildCOMoveTable() moveTable {
	return buildMoveTable(cube.NumCOCoords, cube.Moves[:], decodeCO, (*cube.Cube).CornerOrientationCoord)
}

func buildEOMoveTable() moveTable {
	return buildMoveTable(cube.NumEOCoords, cube.Moves[:], decodeEO, (*cube.Cube).EdgeOrientationCoord)
}

func buildUDSMoveTable() moveTable {
	return buildMoveTable(cube.NumUDSCoords, cube.Moves[:], decodeUDS, (*cube.Cube).UDSliceCoord)
}

// buildCPMoveTable, buildEPMoveTable and buildSliceEPMoveTable build the
// three phase-2-only permutation tables, restricted to cube.Phase2Moves:
// the 10-move G1 stabilizer is closed over corner permutation and, per
// cube/moves.go's edge cycles, closed separately over the 8 non-slice
// edge positions and the 4 slice edge positions, so each table only ever
// needs to step through that one move set.
func buildCPMoveTable() moveTable {
	return buildMoveTable(cube.NumCPCoords, cube.Phase2Moves[:], decodeCP, (*cube.Cube).CornerPermCoord)
}

func buildEPMoveTable() moveTable {
	return buildMoveTable(cube.NumEPCoords, cube.Phase2Moves[:], decodeEP, (*cube.Cube).EdgePermCoord)
}

func buildSliceEPMoveTable() moveTable {
	return buildMoveTable(cube.NumSliceEPCoords, cube.Phase2Moves[:], decodeSliceEP, (*cube.Cube).SliceEdgePermCoord)
}
