package dtw

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the umbrella for every construction-time failure.
// All other sentinels below wrap it, so callers may test either:
//
//	errors.Is(err, dtw.ErrInvalidConfig)  // any bad configuration
//	errors.Is(err, dtw.ErrEmptySequence)  // this specific one
var ErrInvalidConfig = errors.New("dtw: invalid configuration")

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = fmt.Errorf("%w: input sequences must be non-empty", ErrInvalidConfig)

	// ErrInvalidPattern indicates a StepPattern outside Case1..Case3.
	ErrInvalidPattern = fmt.Errorf("%w: unknown step pattern", ErrInvalidConfig)

	// ErrInvalidFill indicates a FillMode other than Lazy or Eager.
	ErrInvalidFill = fmt.Errorf("%w: unknown fill mode", ErrInvalidConfig)

	// ErrNilDistance indicates a nil DistanceFunc.
	ErrNilDistance = fmt.Errorf("%w: distance function is nil", ErrInvalidConfig)
)
