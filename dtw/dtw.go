package dtw

import "math"

// DTW — Dynamic Time Warping over float64 series with |x−y| local cost.
//
// Description:
//
//	Convenience wrapper around Engine for the common scalar case.
//	It builds an Engine with AbsDiff, computes the cost and the path.
//
// Algorithm Outline:
//  1. Allocate the padded (n+2)x(m+2) matrix; corner = free start (0),
//     off-axis border = illegal (+∞).
//  2. cost(p,q) = |a[p]-b[q]| + min over the pattern's steps of cost(p+ΔP, q+ΔQ),
//     first step reaching the minimum wins.
//  3. distance = cost(n-1, m-1).
//  4. Backtrack from (n-1, m-1) following the recorded steps.
//
// Unlike Engine.Path, the returned path is chronological (first real cell first).
//
// Example:
//
//	opts := dtw.Options{Pattern: dtw.Case2, Fill: dtw.Eager}
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
func DTW(a, b []float64, opts *Options) (distance float64, path Path, err error) {
	eng, err := New(a, b, AbsDiff[float64], opts)
	if err != nil {
		return 0, nil, err
	}
	distance = eng.Calculate()

	return distance, eng.Path().Chronological(), nil
}

// AbsDiff is the scalar distance |x − y|.
func AbsDiff[T Number](x, y T) float64 {
	return math.Abs(float64(x) - float64(y))
}

// SquaredDiff is the scalar distance (x − y)².
func SquaredDiff[T Number](x, y T) float64 {
	d := float64(x) - float64(y)

	return d * d
}

// Euclidean is the L2 distance between two vectors.
// Components beyond the shorter vector count against zero, so the function
// stays total for ragged inputs.
func Euclidean(x, y []float64) float64 {
	long, short := x, y
	if len(short) > len(long) {
		long, short = short, long
	}
	var sum float64
	var i int
	for i = range short {
		d := long[i] - short[i]
		sum += d * d
	}
	for i = len(short); i < len(long); i++ {
		sum += long[i] * long[i]
	}

	return math.Sqrt(sum)
}
