package dtw

import "slices"

// Engine computes the DTW alignment of two fixed sequences under one step
// pattern. It owns a single cost matrix, populated lazily and incrementally
// across calls to Calculate, Path and CostAt.
//
// An Engine is not safe for concurrent use. Independent Engines share no
// state and may run in parallel freely (see package batch).
type Engine[T any] struct {
	seq1, seq2 []T
	dist       DistanceFunc[T]
	pattern    StepPattern
	mode       FillMode
	steps      []Step // read-only offset table of pattern
	m          *costMatrix
	filled     bool // Eager: whole matrix computed
}

// New validates the configuration and allocates the cost matrix.
//
// Stage 1 (Validate): both sequences non-empty, dist non-nil, pattern and
// fill mode among the enumerated values. opts == nil means DefaultOptions().
// Stage 2 (Prepare): copy the sequences (they are immutable for the lifetime
// of the Engine) and write the virtual border of the matrix.
//
// No cell is computed here.
//
// Errors (all wrap ErrInvalidConfig):
//   - ErrEmptySequence, ErrNilDistance, ErrInvalidPattern, ErrInvalidFill.
//
// Complexity: O(n1·n2) memory.
func New[T any](seq1, seq2 []T, dist DistanceFunc[T], opts *Options) (*Engine[T], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if len(seq1) == 0 || len(seq2) == 0 {
		return nil, ErrEmptySequence
	}
	if dist == nil {
		return nil, ErrNilDistance
	}
	if !o.Pattern.Valid() {
		return nil, ErrInvalidPattern
	}
	if o.Fill != Lazy && o.Fill != Eager {
		return nil, ErrInvalidFill
	}

	return &Engine[T]{
		seq1:    slices.Clone(seq1),
		seq2:    slices.Clone(seq2),
		dist:    dist,
		pattern: o.Pattern,
		mode:    o.Fill,
		steps:   o.Pattern.steps(),
		m:       newCostMatrix(len(seq1), len(seq2)),
	}, nil
}

// Calculate returns the minimal accumulated alignment cost, i.e. the cost of
// the terminal cell (n1−1, n2−1). It is +Inf when the pattern admits no
// alignment (e.g. Case1 with one sequence more than twice as long as the other).
//
// Idempotent: later calls return the memoized value.
func (e *Engine[T]) Calculate() float64 {
	if e.mode == Eager && !e.filled {
		e.fill()
		e.filled = true
	}

	return e.solve(e.m.n1-1, e.m.n2-1)
}

// Path returns the optimal alignment path in reverse-chronological order,
// starting at (n1−1, n2−1). Each cell's recorded predecessor step is followed
// until the predecessor has a negative coordinate; that virtual cell is
// never emitted and never used as a sequence index.
//
// Calls Calculate first if needed. Use Path.Chronological for forward order.
func (e *Engine[T]) Path() Path {
	e.Calculate()

	path := make(Path, 0, e.m.n1+e.m.n2)
	p, q := e.m.n1-1, e.m.n2-1
	for p >= 0 && q >= 0 {
		path = append(path, Coord{P: p, Q: q})
		s := e.steps[e.m.at(p, q).step]
		p, q = p+s.DP, q+s.DQ
	}

	return path
}

// CostAt returns the accumulated cost of the real cell (p, q) and true if it
// has been computed; (0, false) for out-of-range or not yet computed cells.
// It never triggers computation.
func (e *Engine[T]) CostAt(p, q int) (float64, bool) {
	if !e.m.inRange(p, q) {
		return 0, false
	}
	c := e.m.at(p, q)
	if c.kind != cellComputed {
		return 0, false
	}

	return c.cost, true
}

// Pattern returns the step pattern the Engine was built with.
func (e *Engine[T]) Pattern() StepPattern { return e.pattern }

// Fill returns the fill mode the Engine was built with.
func (e *Engine[T]) Fill() FillMode { return e.mode }

// Len returns the lengths of the two sequences.
func (e *Engine[T]) Len() (n1, n2 int) { return e.m.n1, e.m.n2 }

// LocalCost returns dist(seq1[p], seq2[q]) for a real cell; (0, false) otherwise.
func (e *Engine[T]) LocalCost(p, q int) (float64, bool) {
	if !e.m.inRange(p, q) {
		return 0, false
	}

	return e.dist(e.seq1[p], e.seq2[q]), true
}
