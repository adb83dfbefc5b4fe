// Package solver is the orchestrator: it parses a scramble, runs phase 1,
// then phase 2, concatenates the move lists, and classifies any failure
// into the sentinel error kinds the external collaborators (HTTP/CLI
// layers) are expected to map to user-facing responses.
//
// What: a single operation, Solve(scramble) -> (solution, error).
//
// Why: keeps phase sequencing, error classification and the post-solve
// sanity check in one place so the search package itself stays a pure
// two-phase search engine.
package solver
