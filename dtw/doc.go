// Package dtw computes Dynamic Time Warping (DTW) alignments between two
// ordered sequences under a selectable step pattern, and reconstructs the
// optimal alignment path.
//
// 🚀 What is DTW?
//
//	DTW finds the minimal-cost monotone alignment between two sequences by
//	warping the time axis. It is widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - generic element type: any T with a pluggable DistanceFunc[T]
//   - three step patterns (local continuity constraints):
//     Case1 (slope-constrained), Case2 (classic), Case3 (union of both)
//   - lazy memoized recursion or eager bottom-up fill (FillMode)
//   - deterministic tie-break: the first step of the pattern reaching the
//     minimum wins, recorded once and replayed by the backtrack
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/warp/dtw"
//
//	opts := dtw.Options{Pattern: dtw.Case2, Fill: dtw.Lazy}
//	eng, err := dtw.New(a, b, dtw.AbsDiff[float64], &opts)
//	if err != nil {
//	  // errors.Is(err, dtw.ErrInvalidConfig)
//	}
//	cost := eng.Calculate()
//	path := eng.Path() // terminal cell first
//
// Boundary handling:
//
//	The cost matrix is padded by two virtual rows and columns. Virtual cells
//	with both coordinates negative are free starts (cost 0); cells with
//	exactly one negative coordinate are illegal (+∞). Cell states are tagged
//	explicitly, never encoded in the cost value.
//
// Performance:
//
//   - Time:   O(N·M·k), k = number of steps in the pattern (3 or 5)
//   - Memory: O(N·M)
//   - Stack:  O(N+M) in Lazy mode, O(1) in Eager mode
package dtw
