// Package cube implements the 3x3x3 Rubik's Cube permutation/orientation
// model: cube state, move application, and the three coordinate encoders
// used by the two-phase solver.
//
// What
//
//   - A Cube is the 4-tuple (CP, CO, EP, EO): corner permutation/orientation
//     and edge permutation/orientation, following the fixed slot numbering
//     of the package-level move tables.
//   - Apply mutates a Cube in place by parsing and applying a
//     whitespace-separated sequence of the 18 standard face turns.
//   - CornerOrientationCoord, EdgeOrientationCoord and UDSliceCoord map a
//     Cube to the three integer coordinates that drive phase-1 pruning;
//     CornerPermCoord, EdgePermCoord and SliceEdgePermCoord are the
//     Lehmer-rank permutation coordinates phase 2 prunes on.
//
// Why
//
//   - The coordinates compress an intractably large state space (8! x 3^7 x
//     12! x 2^11 / 2 reachable states) down to three small integer domains
//     (2187, 2048, 495) that admit exhaustive breadth-first precomputation;
//     see package tables.
//
// Invariants
//
//   - sum(CO) mod 3 == 0 and sum(EO) mod 2 == 0 hold before and after every
//     Apply call.
//   - CP and EP always remain permutations of 0..7 and 0..11 respectively.
//
// Determinism
//
//	Move application is a pure function of the move token and the prior
//	state; identical inputs always yield identical states.
package cube
