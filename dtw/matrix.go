package dtw

import "math"

// pad is the width of the virtual border on the low side of each axis.
// The deepest step of any pattern is 2, so logical indices range over
// [−2, n−1] on both axes.
const pad = 2

// noStep marks a cell without a recorded predecessor (virtual cells).
const noStep int8 = -1

// cellKind tags the state of a matrix cell explicitly; the accumulated cost
// is never used to encode state.
type cellKind uint8

const (
	cellPending  cellKind = iota // real cell, not computed yet
	cellComputed                 // real cell, cost and step are final
	cellStart                    // virtual free start (p<0 && q<0), cost 0
	cellIllegal                  // virtual off-axis border (exactly one of p,q < 0), cost +Inf
)

// cell is one entry of the cost matrix.
type cell struct {
	cost float64  // accumulated cost; meaningful unless kind == cellPending
	step int8     // index of the chosen predecessor in the pattern's step table
	kind cellKind // state tag
}

// costMatrix is the padded (n1+2)×(n2+2) store of accumulated costs.
// Storage is a flat row-major slice; at() is the only place that translates
// logical (p, q) into a storage offset.
type costMatrix struct {
	n1, n2 int    // real extent (sequence lengths)
	stride int    // row length in storage: n2 + pad
	cells  []cell // len == (n1+pad)*(n2+pad)
}

// newCostMatrix allocates the store and writes the virtual border.
// Real cells start as cellPending (the zero value); they are written
// exactly once afterwards, by the solver.
//
// Complexity: O(n1·n2) memory, O(n1+n2) border initialization.
func newCostMatrix(n1, n2 int) *costMatrix {
	m := &costMatrix{
		n1:     n1,
		n2:     n2,
		stride: n2 + pad,
		cells:  make([]cell, (n1+pad)*(n2+pad)),
	}
	inf := math.Inf(1)

	// Top band: rows p ∈ {−2, −1}.
	for p := -pad; p < 0; p++ {
		for q := -pad; q < n2; q++ {
			if q < 0 {
				*m.at(p, q) = cell{cost: 0, step: noStep, kind: cellStart}
			} else {
				*m.at(p, q) = cell{cost: inf, step: noStep, kind: cellIllegal}
			}
		}
	}
	// Left band: columns q ∈ {−2, −1} of the real rows.
	for p := 0; p < n1; p++ {
		for q := -pad; q < 0; q++ {
			*m.at(p, q) = cell{cost: inf, step: noStep, kind: cellIllegal}
		}
	}

	return m
}

// at returns the cell at logical coordinates (p, q), p ∈ [−2, n1), q ∈ [−2, n2).
// Callers guarantee the range; the solver never steps further than pad.
func (m *costMatrix) at(p, q int) *cell {
	return &m.cells[(p+pad)*m.stride+(q+pad)]
}

// inRange reports whether (p, q) is a real (non-virtual) cell.
func (m *costMatrix) inRange(p, q int) bool {
	return p >= 0 && q >= 0 && p < m.n1 && q < m.n2
}
