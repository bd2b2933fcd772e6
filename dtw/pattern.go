package dtw

import (
	"fmt"
	"strings"
)

// Step is a single predecessor offset (ΔP, ΔQ) of a step pattern.
// Both components are ≤ 0 and at least one is < 0, so every step moves
// strictly backwards in the alignment grid.
type Step struct {
	DP, DQ int
}

// StepPattern selects the local continuity constraint of the recurrence.
//
//   - Case1 — slope-constrained: (−2,−1), (−1,−1), (−1,−2).
//     No index may repeat twice in a row; forbids horizontal/vertical runs.
//   - Case2 — classic DTW: (−1,0), (−1,−1), (0,−1).
//   - Case3 — union of Case1 and Case2, five offsets.
//
// The zero value is not a valid pattern; New rejects it with ErrInvalidPattern.
type StepPattern uint8

const (
	// Case1 is the slope-constrained pattern (default, as in the classic formulation).
	Case1 StepPattern = iota + 1
	// Case2 is the unconstrained symmetric pattern.
	Case2
	// Case3 is the most permissive pattern, a superset of Case1 and Case2.
	Case3
)

// Offset tables. Order is part of the contract: the first step reaching the
// minimum wins, in both the forward pass and the backtrack.
var (
	case1Steps = [...]Step{{-2, -1}, {-1, -1}, {-1, -2}}
	case2Steps = [...]Step{{-1, 0}, {-1, -1}, {0, -1}}
	case3Steps = [...]Step{{-2, -1}, {-1, 0}, {-1, -1}, {0, -1}, {-1, -2}}
)

// patternNames maps textual names (as used by config files and CLI flags) to patterns.
var patternNames = map[string]StepPattern{
	"case1": Case1,
	"case2": Case2,
	"case3": Case3,
}

// Patterns lists every valid step pattern in declaration order.
func Patterns() []StepPattern {
	return []StepPattern{Case1, Case2, Case3}
}

// Valid reports whether sp is one of the enumerated patterns.
func (sp StepPattern) Valid() bool {
	return sp >= Case1 && sp <= Case3
}

// steps returns the shared, read-only offset table of sp (nil if invalid).
func (sp StepPattern) steps() []Step {
	switch sp {
	case Case1:
		return case1Steps[:]
	case Case2:
		return case2Steps[:]
	case Case3:
		return case3Steps[:]
	default:
		return nil
	}
}

// Steps returns a copy of the ordered predecessor offsets of sp.
// An invalid pattern yields nil.
func (sp StepPattern) Steps() []Step {
	src := sp.steps()
	if src == nil {
		return nil
	}
	out := make([]Step, len(src))
	copy(out, src)

	return out
}

// String implements fmt.Stringer ("case1", "case2", "case3").
func (sp StepPattern) String() string {
	if !sp.Valid() {
		return fmt.Sprintf("StepPattern(%d)", uint8(sp))
	}

	return fmt.Sprintf("case%d", uint8(sp))
}

// ParseStepPattern converts a textual name into a StepPattern.
// Matching is case-insensitive; "1", "2", "3" are accepted as shorthands.
func ParseStepPattern(s string) (StepPattern, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) == 1 {
		name = "case" + name
	}
	if sp, ok := patternNames[name]; ok {
		return sp, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
}

// MarshalText implements encoding.TextMarshaler.
func (sp StepPattern) MarshalText() ([]byte, error) {
	if !sp.Valid() {
		return nil, ErrInvalidPattern
	}

	return []byte(sp.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sp *StepPattern) UnmarshalText(text []byte) error {
	parsed, err := ParseStepPattern(string(text))
	if err != nil {
		return err
	}
	*sp = parsed

	return nil
}
