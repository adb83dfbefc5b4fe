// Package search implements the two-phase IDA* engine that drives a cube
// from any scrambled state into the G1 subgroup (phase 1) and then from G1
// to solved (phase 2).
//
// What: iterative-deepening A* (IDA*): repeated depth-limited DFS with a
// monotonically increasing f-cost bound, f(n) = g(n) + h(n), where h is an
// admissible lower bound read from precomputed pruning tables. Phase 1's h
// is the max of the CO/EO/UDS tables; phase 2's h is the max of the
// corner-permutation, edge-permutation and slice-edge-permutation tables,
// so phase 2 keeps searching past G1 membership until corners and edges
// are actually back in their solved permutation rather than stopping the
// instant phase 1's own goal condition is met.
//
// Why: the full state space (≈4.3×10^19 states) is far too large for plain
// BFS/A*; IDA* trades memory (O(depth) instead of O(states)) for repeated
// work, and the admissible max-of-pruning-tables heuristic keeps the
// repeated work small in practice.
//
// Complexity: each DFS pass is exponential in the remaining bound in the
// worst case, but the branching factor actually explored is bounded by the
// 18 (phase 1) or 10 (phase 2) move set minus the inverse/same-face pruning
// rules, and the heuristic typically closes the search within single-digit
// iterations for scrambles up to 20 moves.
//
// Determinism: move enumeration order is fixed (cube.Moves order, filtered
// to the phase's allowed subset) and the pruning-table lookups are pure, so
// identical inputs produce identical outputs across runs.
//
// Cancellation: Options.Ctx, if set, is checked up front and then sparsely
// (every 4096 DFS node visits) during the search; a done context aborts
// Run with its Err() rather than running to a depth-cap failure.
package search
