package dtw

import (
	"fmt"
	"strings"
)

// FillMode controls when the cost matrix is populated.
//
//   - Lazy  — memoized recursion from the terminal cell; only cells reachable
//     through the step pattern are ever computed. Recursion depth is O(n1+n2).
//   - Eager — explicit bottom-up fill in increasing (p, q) order on the first
//     Calculate. Every real cell is computed; no recursion, bounded stack.
//
// Both modes produce identical costs and identical paths.
type FillMode uint8

const (
	// Lazy computes cells on demand through memoized recursion.
	Lazy FillMode = iota + 1

	// Eager fills the whole matrix iteratively before answering.
	Eager
)

// String implements fmt.Stringer.
func (m FillMode) String() string {
	switch m {
	case Lazy:
		return "lazy"
	case Eager:
		return "eager"
	default:
		return fmt.Sprintf("FillMode(%d)", uint8(m))
	}
}

// ParseFillMode converts "lazy" or "eager" (case-insensitive) into a FillMode.
func ParseFillMode(s string) (FillMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lazy":
		return Lazy, nil
	case "eager":
		return Eager, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFill, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m FillMode) MarshalText() ([]byte, error) {
	if m != Lazy && m != Eager {
		return nil, ErrInvalidFill
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FillMode) UnmarshalText(text []byte) error {
	parsed, err := ParseFillMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Options configures an Engine.
//
// Fields:
//   - Pattern — step pattern (local continuity constraint). Must be Case1, Case2 or Case3.
//   - Fill    — Lazy (memoized recursion) or Eager (bottom-up table fill).
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Pattern = dtw.Case2
//	eng, err := dtw.New(a, b, dtw.AbsDiff[float64], &opts)
type Options struct {
	Pattern StepPattern
	Fill    FillMode
}

// DefaultOptions returns Options{Pattern: Case1, Fill: Lazy}.
func DefaultOptions() Options {
	return Options{
		Pattern: Case1,
		Fill:    Lazy,
	}
}

// Coord is a (P, Q) index pair of the alignment grid: P indexes the first
// sequence, Q the second.
type Coord struct {
	P, Q int
}

// Path is an alignment path. Engine.Path returns it reverse-chronologically:
// from the terminal cell (n1−1, n2−1) back to the first real cell.
type Path []Coord

// Chronological returns a reversed copy of p (first real cell first).
func (p Path) Chronological() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}

	return out
}

// Number is the set of element types the built-in distance functions accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DistanceFunc maps a pair of elements (x from the first sequence, y from the
// second) to a local cost. It must be total and non-negative; neither property
// is checked. A NaN result makes the minimum selection undefined.
type DistanceFunc[T any] func(x, y T) float64
