// Package warp aligns numeric sequences with Dynamic Time Warping (DTW):
// the minimal-cost monotone matching of two series that may run at
// different speeds or be locally stretched.
//
// 🚀 What is in the box?
//
//	• Core engine: three classic step patterns (case1, case2, case3),
//	  memoized or bottom-up fill, deterministic tie-break, warping path
//	• Pluggable local distance: |x−y|, squared, Euclidean, or your own
//	• Batch: many pairs on a worker pool with an optional Redis cache
//	• Output: YAML, protobuf, Go templates, ASCII path masks and cost tables
//	• CLI: warp align / warp batch
//
// Under the hood the repository is organized as:
//
//	dtw/      — step patterns, padded cost matrix, solver, path reconstruction
//	pb/       — protobuf alignment messages
//	cache/    — result fingerprints and Store backends (memory, Redis)
//	batch/    — parallel alignment of independent jobs
//	seqio/    — numeric sequence parsing (inline, memory-mapped files)
//	config/   — YAML configuration and job files
//	render/   — result encoders
//	cmd/warp/ — the command line tool
//
// Quick start:
//
//	opts := dtw.Options{Pattern: dtw.Case2, Fill: dtw.Lazy}
//	eng, err := dtw.New(a, b, dtw.AbsDiff[float64], &opts)
//	if err != nil {
//		// dtw.ErrInvalidConfig
//	}
//	cost := eng.Calculate()
//	path := eng.Path().Chronological()
package warp
