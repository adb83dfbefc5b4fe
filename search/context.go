package search

import "github.com/cubeforge/kociemba/tables"

// Context bundles the pruning tables the IDA* engine reads as its
// heuristic source. It is built once per process, injected explicitly
// instead of living in package-level globals populated at init time, and
// is safe to share across concurrent searches: Run only ever reads from
// it.
type Context struct {
	tables *tables.Tables
}

// NewContext wraps a loaded set of pruning tables for use by Run.
func NewContext(t *tables.Tables) *Context {
	return &Context{tables: t}
}
