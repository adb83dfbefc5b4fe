package search

import (
	"context"
	"math"

	"github.com/cubeforge/kociemba/cube"
)

// infBound stands in for "no child ever exceeded the current bound".
const infBound = math.MaxInt32

// engine holds all state for one Run call: the move set, the pruning
// tables, and the single cube being mutated and restored across the
// recursive DFS. Keeping it in one struct avoids package-level globals
// and keeps concurrent Run calls independent.
type engine struct {
	ctx    *Context
	runCtx context.Context
	phase  Phase
	moves  []int // indices into cube.Moves, in enumeration order
	cap    int

	c         *cube.Cube
	path      []string
	steps     int   // sparse cancellation-check counter
	cancelErr error // set once cancelled() observes a done context
}

func newEngine(ctx *Context, runCtx context.Context, c *cube.Cube, phase Phase, cap int) *engine {
	return &engine{
		ctx:    ctx,
		runCtx: runCtx,
		phase:  phase,
		moves:  moveSet(phase),
		cap:    cap,
		c:      c,
		path:   make([]string, 0, cap),
	}
}

// cancelled performs a rare context check (every 4096 DFS node visits):
// a per-node context read would dominate the cost of a single
// coordinate-table lookup.
func (e *engine) cancelled() bool {
	e.steps++
	if e.runCtx == nil || (e.steps&4095) != 0 {
		return false
	}
	select {
	case <-e.runCtx.Done():
		return true
	default:
		return false
	}
}

// heuristic computes h(n) for the engine's current cube state. For phase 1
// it is the max of the CO/EO/UDS pruning tables, admissible for reaching
// G1. For phase 2, UDS alone is useless: phase 1's own goal condition
// already forces uds_coord to cube.SolvedUDSCoord, so a phase-2 heuristic
// built only from the UDS table is always 0 and never drives any further
// search. Phase 2 instead takes the max of the corner-permutation,
// edge-permutation and slice-edge-permutation pruning tables, each
// restricted to the 10-move G1 stabilizer, so h reaches
// 0 only once corners, U/D edges and slice edges are all back in place.
func (e *engine) heuristic() int {
	t := e.ctx.tables
	if e.phase == Phase2 {
		cp := int(t.CP[e.c.CornerPermCoord()])
		ep := int(t.EP[e.c.EdgePermCoord()])
		sep := int(t.SliceEP[e.c.SliceEdgePermCoord()])
		h := cp
		if ep > h {
			h = ep
		}
		if sep > h {
			h = sep
		}
		return h
	}
	co := int(t.CO[e.c.CornerOrientationCoord()])
	eo := int(t.EO[e.c.EdgeOrientationCoord()])
	uds := int(t.UDS[e.c.UDSliceCoord()])
	h := co
	if eo > h {
		h = eo
	}
	if uds > h {
		h = uds
	}
	return h
}

func sameFace(a, b string) bool { return a[0] == b[0] }

// dfs runs one depth-limited branch. g is moves taken so far, bound is the
// current IDA* f-cost ceiling. It returns whether a solution was found
// (in which case e.path holds it) and, if not, the smallest f value among
// pruned children (infBound if there were none).
func (e *engine) dfs(g, bound int) (bool, int) {
	if e.cancelled() {
		e.cancelErr = e.runCtx.Err()
		return false, infBound
	}

	h := e.heuristic()
	f := g + h
	if f > bound {
		return false, f
	}
	if h == 0 {
		return true, bound
	}

	var lastMove string
	if len(e.path) > 0 {
		lastMove = e.path[len(e.path)-1]
	}

	minExceeded := infBound
	for _, mi := range e.moves {
		if e.cancelErr != nil {
			break
		}
		mv := cube.Moves[mi]
		// Same-face ban also covers the "no direct inverse of the last
		// move" rule: every variant of a face (X, X2, X') shares its
		// first byte, so forbidding any repeat on lastMove's face
		// already forbids its inverse.
		if lastMove != "" && sameFace(mv, lastMove) {
			continue
		}

		_ = e.c.ApplyToken(mv) // mv is always a member of cube.Moves
		e.path = append(e.path, mv)

		found, next := e.dfs(g+1, bound)

		if !found {
			inv, _ := cube.Inverse(mv)
			_ = e.c.ApplyToken(inv)
			e.path = e.path[:len(e.path)-1]
		}

		if found {
			return true, bound
		}
		if next < minExceeded {
			minExceeded = next
		}
	}
	return false, minExceeded
}

// Run performs iterative-deepening A* from start in the given phase,
// returning the move sequence that drives start to h==0 under that
// phase's goal test. On success start is left mutated into that goal
// state (ready to seed a following phase-2 Run); on failure start is
// restored to the state it had on entry.
func Run(ctx *Context, start *cube.Cube, phase Phase, opts Options) ([]string, error) {
	cap := opts.Phase1DepthCap
	if phase == Phase2 {
		cap = opts.Phase2DepthCap
	}

	if opts.Ctx != nil && opts.Ctx.Err() != nil {
		return nil, opts.Ctx.Err()
	}

	e := newEngine(ctx, opts.Ctx, start, phase, cap)
	bound := e.heuristic()

	for {
		if bound > cap {
			return nil, ErrDepthExceeded
		}
		e.path = e.path[:0]
		found, next := e.dfs(0, bound)
		if e.cancelErr != nil {
			return nil, e.cancelErr
		}
		if found {
			out := make([]string, len(e.path))
			copy(out, e.path)
			return out, nil
		}
		if next >= infBound {
			return nil, ErrPhaseUnreachable
		}
		bound = next
	}
}
