package dtw_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/warp/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	scenarioA = []float64{71, 73, 75}
	scenarioB = []float64{69, 69, 73}
)

// allModes enumerates every (pattern, fill) combination.
func allModes() []dtw.Options {
	var out []dtw.Options
	for _, sp := range dtw.Patterns() {
		for _, fm := range []dtw.FillMode{dtw.Lazy, dtw.Eager} {
			out = append(out, dtw.Options{Pattern: sp, Fill: fm})
		}
	}

	return out
}

func newEngine(t testing.TB, a, b []float64, opts dtw.Options) *dtw.Engine[float64] {
	t.Helper()
	eng, err := dtw.New(a, b, dtw.AbsDiff[float64], &opts)
	require.NoError(t, err)

	return eng
}

// pathCost sums the local costs over the path cells.
func pathCost(t testing.TB, eng *dtw.Engine[float64], path dtw.Path) float64 {
	t.Helper()
	var sum float64
	for _, c := range path {
		v, ok := eng.LocalCost(c.P, c.Q)
		require.True(t, ok, "path cell %v must be real", c)
		sum += v
	}

	return sum
}

// intSeq returns a deterministic pseudo-random integer-valued series, so
// float sums are exact regardless of evaluation order.
func intSeq(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(r.Intn(20))
	}

	return out
}

// TestEngine_Scenario checks the hand-computed 3×3 grid for each pattern.
//
//	local |x−y|:   q=0 q=1 q=2
//	       p=0      2   2   2
//	       p=1      4   4   0
//	       p=2      6   6   2
func TestEngine_Scenario(t *testing.T) {
	cases := []struct {
		pattern dtw.StepPattern
		cost    float64
		path    dtw.Path
	}{
		{dtw.Case1, 4, dtw.Path{{2, 2}, {0, 1}}},
		{dtw.Case2, 6, dtw.Path{{2, 2}, {1, 2}, {0, 1}, {0, 0}}},
		{dtw.Case3, 4, dtw.Path{{2, 2}, {0, 1}}},
	}
	for _, tc := range cases {
		for _, fm := range []dtw.FillMode{dtw.Lazy, dtw.Eager} {
			t.Run(tc.pattern.String()+"/"+fm.String(), func(t *testing.T) {
				eng := newEngine(t, scenarioA, scenarioB, dtw.Options{Pattern: tc.pattern, Fill: fm})
				assert.Equal(t, tc.cost, eng.Calculate())
				assert.Equal(t, tc.path, eng.Path())
			})
		}
	}
}

// TestEngine_CostMatrixCase2 checks every accumulated cost of the Case2 scenario.
func TestEngine_CostMatrixCase2(t *testing.T) {
	eng := newEngine(t, scenarioA, scenarioB, dtw.Options{Pattern: dtw.Case2, Fill: dtw.Eager})
	eng.Calculate()

	want := [][]float64{
		{2, 4, 6},
		{6, 6, 4},
		{12, 12, 6},
	}
	for p, row := range want {
		for q, v := range row {
			got, ok := eng.CostAt(p, q)
			require.True(t, ok, "(%d,%d) computed", p, q)
			assert.Equal(t, v, got, "(%d,%d)", p, q)
		}
	}
}

// TestEngine_LazyComputesOnDemand verifies lazy mode leaves unreachable cells untouched
// and CostAt never triggers computation.
func TestEngine_LazyComputesOnDemand(t *testing.T) {
	eng := newEngine(t, scenarioA, scenarioB, dtw.Options{Pattern: dtw.Case1, Fill: dtw.Lazy})

	_, ok := eng.CostAt(2, 2)
	assert.False(t, ok, "nothing computed before Calculate")

	eng.Calculate()
	v, ok := eng.CostAt(2, 2)
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	// (2,2) under Case1 only looks at (0,1), (1,1), (1,0); (0,2) is never needed.
	_, ok = eng.CostAt(0, 2)
	assert.False(t, ok, "(0,2) is not a Case1 predecessor of the terminal chain")

	_, ok = eng.CostAt(-1, 0)
	assert.False(t, ok, "virtual cells are not exposed")
	_, ok = eng.CostAt(3, 0)
	assert.False(t, ok)
}

// TestEngine_Determinism verifies repeated calls return identical results.
func TestEngine_Determinism(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a, b := intSeq(r, 17), intSeq(r, 23)
	for _, opts := range allModes() {
		eng := newEngine(t, a, b, opts)
		c1, p1 := eng.Calculate(), eng.Path()
		c2, p2 := eng.Calculate(), eng.Path()
		assert.Equal(t, c1, c2)
		assert.Equal(t, p1, p2)
	}
}

// TestEngine_LazyEagerAgree verifies both fill modes yield identical costs and paths.
func TestEngine_LazyEagerAgree(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		a, b := intSeq(r, 1+r.Intn(15)), intSeq(r, 1+r.Intn(15))
		for _, sp := range dtw.Patterns() {
			lazy := newEngine(t, a, b, dtw.Options{Pattern: sp, Fill: dtw.Lazy})
			eager := newEngine(t, a, b, dtw.Options{Pattern: sp, Fill: dtw.Eager})
			assert.Equal(t, eager.Calculate(), lazy.Calculate(), "trial %d %s", trial, sp)
			assert.Equal(t, eager.Path(), lazy.Path(), "trial %d %s", trial, sp)
		}
	}
}

// TestEngine_PathCostConsistency: the total equals the sum of local costs along the path.
func TestEngine_PathCostConsistency(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		a, b := intSeq(r, 1+r.Intn(12)), intSeq(r, 1+r.Intn(12))
		for _, opts := range allModes() {
			eng := newEngine(t, a, b, opts)
			total := eng.Calculate()
			if math.IsInf(total, 1) {
				continue // no admissible alignment under the slope limit
			}
			assert.Equal(t, total, pathCost(t, eng, eng.Path()), "trial %d %v", trial, opts)
		}
	}
}

// TestEngine_PathShape checks ordering, uniqueness and strict descent of the path.
func TestEngine_PathShape(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		a, b := intSeq(r, 1+r.Intn(12)), intSeq(r, 1+r.Intn(12))
		for _, opts := range allModes() {
			eng := newEngine(t, a, b, opts)
			path := eng.Path()
			require.NotEmpty(t, path)
			assert.Equal(t, dtw.Coord{P: len(a) - 1, Q: len(b) - 1}, path[0], "starts at the terminal cell")

			seen := make(map[dtw.Coord]bool, len(path))
			for i, c := range path {
				assert.False(t, seen[c], "duplicate %v", c)
				seen[c] = true
				assert.True(t, c.P >= 0 && c.Q >= 0, "no virtual cell in path")
				if i == 0 {
					continue
				}
				prev := path[i-1]
				assert.True(t, c.P <= prev.P && c.Q <= prev.Q, "non-increasing")
				assert.True(t, c.P < prev.P || c.Q < prev.Q, "strictly decreasing in one coordinate")
			}
		}
	}
}

// TestEngine_SymmetryCase2 verifies cost(a,b) == cost(b,a) for the symmetric pattern.
func TestEngine_SymmetryCase2(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for trial := 0; trial < 25; trial++ {
		a, b := intSeq(r, 1+r.Intn(14)), intSeq(r, 1+r.Intn(14))
		ab := newEngine(t, a, b, dtw.Options{Pattern: dtw.Case2, Fill: dtw.Lazy})
		ba := newEngine(t, b, a, dtw.Options{Pattern: dtw.Case2, Fill: dtw.Lazy})
		assert.Equal(t, ab.Calculate(), ba.Calculate(), "trial %d", trial)
	}
}

// TestEngine_IdentityAlignment: a sequence aligned with itself costs 0 along the diagonal.
func TestEngine_IdentityAlignment(t *testing.T) {
	s := []float64{3, 1, 4, 5, 9, 2, 6}
	diag := make(dtw.Path, len(s))
	for i := range s {
		diag[len(s)-1-i] = dtw.Coord{P: i, Q: i}
	}
	for _, opts := range allModes() {
		eng := newEngine(t, s, s, opts)
		assert.Equal(t, 0.0, eng.Calculate(), "%v", opts)
		assert.Equal(t, diag, eng.Path(), "%v", opts)
	}
}

// TestEngine_SingleElement: [a] vs [b] costs dist(a, b) under every pattern.
func TestEngine_SingleElement(t *testing.T) {
	for _, opts := range allModes() {
		eng := newEngine(t, []float64{3}, []float64{10}, opts)
		assert.Equal(t, 7.0, eng.Calculate(), "%v", opts)
		assert.Equal(t, dtw.Path{{0, 0}}, eng.Path(), "%v", opts)
	}
}

// TestEngine_UnreachablePath: with +Inf cost the path still starts at the terminal
// cell and never contains a virtual coordinate.
func TestEngine_UnreachablePath(t *testing.T) {
	eng := newEngine(t, []float64{1}, []float64{1, 2, 3}, dtw.Options{Pattern: dtw.Case1, Fill: dtw.Lazy})
	assert.True(t, math.IsInf(eng.Calculate(), 1))
	assert.Equal(t, dtw.Path{{0, 2}}, eng.Path())
}

// TestEngine_InputsAreCopied: mutating the caller's slices does not affect the Engine.
func TestEngine_InputsAreCopied(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3}
	eng := newEngine(t, a, b, dtw.Options{Pattern: dtw.Case2, Fill: dtw.Lazy})
	a[0], b[2] = 100, -100
	assert.Equal(t, 0.0, eng.Calculate())
}

// TestEngine_GenericElements aligns vector-valued elements through Euclidean.
func TestEngine_GenericElements(t *testing.T) {
	a := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	b := [][]float64{{0, 0}, {1, 1}, {1, 1}, {2, 2}}
	opts := dtw.Options{Pattern: dtw.Case3, Fill: dtw.Eager}
	eng, err := dtw.New(a, b, dtw.Euclidean, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, eng.Calculate())

	n1, n2 := eng.Len()
	assert.Equal(t, 3, n1)
	assert.Equal(t, 4, n2)
	assert.Equal(t, dtw.Case3, eng.Pattern())
	assert.Equal(t, dtw.Eager, eng.Fill())
}

// TestEngine_Validation covers every construction error.
func TestEngine_Validation(t *testing.T) {
	_, err := dtw.New[float64](nil, []float64{1}, dtw.AbsDiff[float64], nil)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)

	_, err = dtw.New([]float64{1}, []float64{1}, nil, nil)
	assert.ErrorIs(t, err, dtw.ErrNilDistance)
	assert.ErrorIs(t, err, dtw.ErrInvalidConfig)

	_, err = dtw.New([]float64{1}, []float64{1}, dtw.AbsDiff[float64], &dtw.Options{Pattern: 9, Fill: dtw.Lazy})
	assert.ErrorIs(t, err, dtw.ErrInvalidPattern)

	_, err = dtw.New([]float64{1}, []float64{1}, dtw.AbsDiff[float64], &dtw.Options{Pattern: dtw.Case1, Fill: 7})
	assert.ErrorIs(t, err, dtw.ErrInvalidFill)

	eng, err := dtw.New([]float64{1}, []float64{1}, dtw.AbsDiff[float64], nil)
	require.NoError(t, err, "nil options fall back to defaults")
	assert.Equal(t, dtw.Case1, eng.Pattern())
	assert.Equal(t, dtw.Lazy, eng.Fill())
}

func TestPath_Chronological(t *testing.T) {
	p := dtw.Path{{2, 2}, {1, 1}, {0, 0}}
	assert.Equal(t, dtw.Path{{0, 0}, {1, 1}, {2, 2}}, p.Chronological())
	assert.Equal(t, dtw.Coord{P: 2, Q: 2}, p[0], "receiver untouched")
	assert.Nil(t, dtw.Path(nil).Chronological())
}
