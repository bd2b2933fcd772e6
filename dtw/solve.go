package dtw

import "math"

// solve returns the minimal accumulated cost of (p, q), computing the cell
// and all of its missing predecessors on demand (memoized recursion).
//
// Virtual cells are pre-tagged at construction, so the base cases
// (free start = 0, illegal border = +Inf) fall out of the same lookup as
// memoized real cells. Recursion depth is bounded by n1+n2.
func (e *Engine[T]) solve(p, q int) float64 {
	c := e.m.at(p, q)
	if c.kind != cellPending {
		return c.cost
	}
	// Resolve predecessors in pattern order; relax then reads them back.
	for _, s := range e.steps {
		e.solve(p+s.DP, q+s.DQ)
	}

	return e.relax(p, q)
}

// fill computes every real cell bottom-up in increasing (p, q) order.
// Each step decreases p or q (and increases neither), so every predecessor
// is resolved before the cell that reads it.
func (e *Engine[T]) fill() {
	var p, q int
	for p = 0; p < e.m.n1; p++ {
		for q = 0; q < e.m.n2; q++ {
			if e.m.at(p, q).kind == cellPending {
				e.relax(p, q)
			}
		}
	}
}

// relax computes (p, q) from its already-resolved predecessors and stores
// the cost together with the chosen step.
//
// Tie-break: the first step (in pattern order) reaching the minimum wins.
// The step index is recorded here and replayed by Path, so the backtrack
// never re-derives the choice.
func (e *Engine[T]) relax(p, q int) float64 {
	best := math.Inf(1)
	bestStep := noStep
	for i, s := range e.steps {
		v := e.m.at(p+s.DP, q+s.DQ).cost
		if bestStep == noStep || v < best {
			best, bestStep = v, int8(i)
		}
	}

	c := e.m.at(p, q)
	c.cost = e.dist(e.seq1[p], e.seq2[q]) + best
	c.step = bestStep
	c.kind = cellComputed

	return c.cost
}
