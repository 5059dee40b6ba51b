// SPDX-License-Identifier: MIT
package jacobi_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/itersolve/jacobi"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, rows, cols int, data ...float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromSlice(rows, cols, data)
	require.NoError(t, err)
	return m
}

// randomSystem builds a diagonally dominant n×n system with a random right-hand side.
func randomSystem(t *testing.T, n int, seed int64) (a, b *matrix.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewDiagonallyDominant(n, rng)
	require.NoError(t, err)
	b, err = matrix.NewRandom(n, 1, rng, matrix.DefaultMinValue, matrix.DefaultMaxValue)
	require.NoError(t, err)
	return a, b
}

// offDiagonalNorm returns the Frobenius norm of A without its diagonal.
// Since B − A·x_{k+1} = R·(x_k − x_{k+1}), it bounds the residual in terms of the step.
func offDiagonalNorm(a *matrix.Dense) float64 {
	n := a.Rows()
	var s float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				v := float64(a.Data()[i*n+j])
				s += v * v
			}
		}
	}
	return math.Sqrt(s)
}

// TestSolve_TwoByTwo checks the classic 2×2 system converges to [1/11, 7/11].
func TestSolve_TwoByTwo(t *testing.T) {
	t.Parallel()

	a := dense(t, 2, 2, 4, 1, 1, 3)
	b := dense(t, 2, 1, 1, 2)
	x := dense(t, 2, 1, 0, 0)

	opts := jacobi.DefaultOptions()
	opts.Workers = 2
	res, err := jacobi.Solve(a, x, b, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Less(t, res.Iterations, jacobi.DefaultMaxIterations)
	require.Less(t, res.Residual, jacobi.DefaultThreshold)
	require.Same(t, x, res.X, "the solution is written into the caller's x")

	assert.InDelta(t, 1.0/11.0, float64(x.Data()[0]), 1e-4)
	assert.InDelta(t, 7.0/11.0, float64(x.Data()[1]), 1e-4)
}

// TestSolve_PureDiagonal: the first sweep already yields the exact solution,
// but its step from x₀ is non-zero, so convergence is only detected by the
// second sweep (step 0). A full run therefore reports 2 iterations, not 1.
func TestSolve_PureDiagonal(t *testing.T) {
	t.Parallel()

	a := dense(t, 3, 3, 2, 0, 0, 0, 4, 0, 0, 0, 5)
	b := dense(t, 3, 1, 2, 8, 10)

	one := jacobi.DefaultOptions()
	one.MaxIterations = 1
	x := dense(t, 3, 1, 0, 0, 0)
	res, err := jacobi.Solve(a, x, b, one)
	require.NoError(t, err)
	require.Equal(t, 1, res.Iterations)
	require.Equal(t, []float32{1, 2, 2}, x.Data(), "exact after one sweep")

	d, err := matrix.Diagnose(a, x, b)
	require.NoError(t, err)
	require.Zero(t, d.ResidualNorm)

	x = dense(t, 3, 1, 0, 0, 0)
	res, err = jacobi.Solve(a, x, b, jacobi.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 2, res.Iterations)
	require.Zero(t, res.Residual)
	require.Equal(t, []float32{1, 2, 2}, x.Data())
}

// TestSolve_ResidualSmallAtConvergence checks ‖A·x − B‖₂ against the bound implied by the step norm.
// The stopping rule bounds the step, not the residual: B − A·x_{k+1} = R·(x_k − x_{k+1}),
// so the residual is at most ‖R‖_F·Threshold plus float32 rounding.
func TestSolve_ResidualSmallAtConvergence(t *testing.T) {
	t.Parallel()

	for _, n := range []int{3, 17, 64} {
		a, b := randomSystem(t, n, int64(100+n))
		x, err := matrix.NewVector(n)
		require.NoError(t, err)

		opts := jacobi.DefaultOptions()
		opts.Workers = 4
		res, err := jacobi.Solve(a, x, b, opts)
		require.NoError(t, err)
		require.Truef(t, res.Converged, "n=%d did not converge in %d sweeps", n, res.Iterations)

		d, err := matrix.Diagnose(a, x, b)
		require.NoError(t, err)
		bound := offDiagonalNorm(a)*opts.Threshold + 1e-4
		assert.Lessf(t, d.ResidualNorm, bound, "n=%d", n)
	}
}

// TestSolve_Idempotent: after convergence one more sweep moves x by less than the threshold.
func TestSolve_Idempotent(t *testing.T) {
	t.Parallel()

	a, b := randomSystem(t, 32, 9)
	x, err := matrix.NewVector(32)
	require.NoError(t, err)

	res, err := jacobi.Solve(a, x, b, jacobi.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)

	pool := parallel.New(3)
	defer pool.Close()
	next, err := matrix.NewVector(32)
	require.NoError(t, err)
	step, err := jacobi.Sweep(pool, a, b, x, next)
	require.NoError(t, err)
	assert.Less(t, step, jacobi.DefaultThreshold)
}

// TestSolve_MatchesSequentialBitForBit compares the parallel solver with the
// sequential oracle for several worker counts, including a single worker.
func TestSolve_MatchesSequentialBitForBit(t *testing.T) {
	t.Parallel()

	a, b := randomSystem(t, 48, 42)

	ref, err := matrix.NewVector(48)
	require.NoError(t, err)
	refRes, err := jacobi.SolveSequential(a, ref, b, jacobi.DefaultOptions())
	require.NoError(t, err)
	require.True(t, refRes.Converged)

	for _, workers := range []int{1, 2, 5, 16} {
		x, err := matrix.NewVector(48)
		require.NoError(t, err)
		opts := jacobi.DefaultOptions()
		opts.Workers = workers
		res, err := jacobi.Solve(a, x, b, opts)
		require.NoError(t, err)

		require.Equalf(t, refRes.Iterations, res.Iterations, "workers=%d", workers)
		require.Equalf(t, refRes.Residual, res.Residual, "workers=%d", workers)
		require.Equalf(t, ref.Data(), x.Data(), "workers=%d", workers)
	}
}

// TestSolve_FixedIterationCountMatchesOracle uses a cap small enough that neither run converges.
func TestSolve_FixedIterationCountMatchesOracle(t *testing.T) {
	t.Parallel()

	a, b := randomSystem(t, 20, 3)
	for _, iters := range []int{1, 2, 7} {
		opts := jacobi.DefaultOptions()
		opts.MaxIterations = iters
		opts.Workers = 1

		x1, _ := matrix.NewVector(20)
		x2, _ := matrix.NewVector(20)
		r1, err := jacobi.Solve(a, x1, b, opts)
		require.NoError(t, err)
		r2, err := jacobi.SolveSequential(a, x2, b, opts)
		require.NoError(t, err)

		require.Equal(t, iters, r1.Iterations)
		require.False(t, r1.Converged)
		require.Equal(t, r2.Iterations, r1.Iterations)
		require.Equal(t, r2.Residual, r1.Residual)
		require.Equal(t, x2.Data(), x1.Data())
	}
}

// TestSolve_IterationCap: a non-dominant system runs to the cap when the check is skipped.
func TestSolve_IterationCap(t *testing.T) {
	t.Parallel()

	a := dense(t, 2, 2, 1, 2, 2, 1)
	b := dense(t, 2, 1, 1, 1)

	x := dense(t, 2, 1, 0, 0)
	_, err := jacobi.Solve(a, x, b, jacobi.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNotDiagonallyDominant)

	opts := jacobi.DefaultOptions()
	opts.MaxIterations = 40
	opts.SkipDominanceCheck = true
	res, err := jacobi.Solve(a, x, b, opts)
	require.NoError(t, err, "reaching the cap is not an error")
	assert.False(t, res.Converged)
	assert.Equal(t, 40, res.Iterations)
	assert.Greater(t, res.Residual, opts.Threshold)
}

func TestSolve_Progress(t *testing.T) {
	t.Parallel()

	a := dense(t, 2, 2, 4, 1, 1, 3)
	b := dense(t, 2, 1, 1, 2)
	x := dense(t, 2, 1, 0, 0)

	var calls []int
	var last float64
	opts := jacobi.DefaultOptions()
	opts.Progress = func(iteration int, mse float64) {
		calls = append(calls, iteration)
		last = mse
	}
	res, err := jacobi.Solve(a, x, b, opts)
	require.NoError(t, err)
	require.Len(t, calls, res.Iterations)
	for i, c := range calls {
		require.Equal(t, i+1, c)
	}
	require.Equal(t, res.Residual, last)
}

func TestSolve_InvalidInput(t *testing.T) {
	t.Parallel()

	a := dense(t, 2, 2, 4, 1, 1, 3)
	b := dense(t, 2, 1, 1, 2)
	x := dense(t, 2, 1, 0, 0)

	tests := []struct {
		name    string
		a, x, b *matrix.Dense
		mutate  func(*jacobi.Options)
		want    error
	}{
		{"zero iterations", a, x, b, func(o *jacobi.Options) { o.MaxIterations = 0 }, jacobi.ErrBadOptions},
		{"zero threshold", a, x, b, func(o *jacobi.Options) { o.Threshold = 0 }, jacobi.ErrBadOptions},
		{"NaN threshold", a, x, b, func(o *jacobi.Options) { o.Threshold = math.NaN() }, jacobi.ErrBadOptions},
		{"nil A", nil, x, b, nil, matrix.ErrNilMatrix},
		{"non-square A", dense(t, 2, 3, 4, 1, 0, 1, 3, 0), x, b, nil, matrix.ErrNonSquare},
		{"short B", a, x, dense(t, 1, 1, 1), nil, matrix.ErrDimensionMismatch},
		{"row x", a, dense(t, 1, 2, 0, 0), b, nil, matrix.ErrNotColumnVector},
		{"nil x", a, nil, b, nil, matrix.ErrNilMatrix},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			opts := jacobi.DefaultOptions()
			if tc.mutate != nil {
				tc.mutate(&opts)
			}
			_, err := jacobi.Solve(tc.a, tc.x, tc.b, opts)
			require.ErrorIs(t, err, tc.want)
			_, err = jacobi.SolveSequential(tc.a, tc.x, tc.b, opts)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := jacobi.SolveWithPool(nil, a, x, b, jacobi.DefaultOptions())
	require.ErrorIs(t, err, jacobi.ErrNilPool)
}

func TestSweep_RejectsAliasedBuffers(t *testing.T) {
	t.Parallel()

	pool := parallel.New(2)
	defer pool.Close()

	a := dense(t, 2, 2, 4, 1, 1, 3)
	b := dense(t, 2, 1, 1, 2)
	x := dense(t, 2, 1, 0, 0)
	_, err := jacobi.Sweep(pool, a, b, x, x)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSweep_MatchesSequential(t *testing.T) {
	t.Parallel()

	a, b := randomSystem(t, 37, 5)
	prev, err := matrix.NewRandom(37, 1, rand.New(rand.NewSource(6)), -3, 3)
	require.NoError(t, err)

	pool := parallel.New(4)
	defer pool.Close()

	n1, _ := matrix.NewVector(37)
	n2, _ := matrix.NewVector(37)
	s1, err := jacobi.Sweep(pool, a, b, prev, n1)
	require.NoError(t, err)
	s2, err := jacobi.SweepSequential(a, b, prev, n2)
	require.NoError(t, err)

	require.Equal(t, s2, s1)
	require.Equal(t, n2.Data(), n1.Data())

	_, err = jacobi.SweepSequential(a, b, prev, prev)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
