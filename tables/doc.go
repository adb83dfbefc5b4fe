// Package tables builds and persists the move tables and pruning tables
// that drive the two-phase IDA* search in package search.
//
// What
//
//   - decodeCO/decodeEO/decodeUDS reconstruct a representative cube.Cube
//     for a given coordinate, for table generation only.
//     decodeCP/decodeEP/decodeSliceEP do the same for the three
//     phase-2-only permutation coordinates.
//   - buildMoveTable produces next[coord][i] for one coordinate space by
//     decoding, applying each move in a given move list, and re-encoding;
//     the phase-1 tables use all 18 moves, the phase-2 tables use only
//     cube.Phase2Moves' 10.
//   - generatePruneTable runs a breadth-first search over a move table
//     from a seed coordinate, assigning each reachable coordinate its
//     exact distance in face turns.
//   - Tables bundles the six finished pruning tables (CO, EO, UDS for
//     phase 1; CP, EP, SliceEP for phase 2); Save/Load persist them as
//     fixed-size raw byte files with a BLAKE2b-256 integrity sidecar.
//
// Why
//
//   - Exhaustive BFS over each small coordinate space (2187, 2048, 495 for
//     phase 1; 40320, 40320, 24 for phase 2) is cheap to precompute once
//     and is the admissible heuristic source for phase 1 and phase 2 of
//     the search. The phase-2 tables exist because UDS membership alone
//     is not a useful phase-2 heuristic: phase 1's goal already forces it
//     to 0, so phase 2 needs its own coordinates (corner permutation,
//     U/D-edge permutation, slice-edge permutation) to measure progress
//     past G1.
//
// Complexity
//
//   - Move table: O(|C| x |moves|) cube operations per coordinate space.
//   - Pruning table: O(|C| x |moves|) with O(1) work per edge (FIFO BFS).
//   - Memory: O(|C|) bytes per pruning table (2187 + 2048 + 495 + 40320 +
//     40320 + 24 bytes total); move tables are transient, discarded once
//     the pruning table for that space is built.
//
// Determinism
//
//	BFS visits coordinates breadth-first in a fixed move order (cube.Moves
//	for the phase-1 tables, cube.Phase2Moves for the phase-2 tables), so
//	every pruning table value is the unique, reproducible shortest distance
//	from the seed coordinate under that table's move set.
package tables
