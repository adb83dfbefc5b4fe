// Package httpapi exposes the solver over HTTP/JSON: a single GET
// endpoint that accepts a scramble query parameter and returns either a
// solution or a classified error.
//
// What: GET /solve?scramble=<moves> -> {"scramble","solution"} JSON, or
// {"error"} JSON (plus the echoed "scramble" when it is non-empty) with an
// HTTP 400 (invalid input) or 500 (search failure) status.
//
// Why: deliberately thin. All algorithmic weight lives in package solver;
// this package only parses the query, calls solver.SolveContext, and maps
// errors to status codes.
package httpapi
