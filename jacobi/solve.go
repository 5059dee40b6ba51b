// SPDX-License-Identifier: MIT

package jacobi

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/parallel"
)

// sweepFunc performs one full sweep reading prev and writing next.
type sweepFunc func(prev, next []float32)

// Solve runs parallel Jacobi iteration on A·x = B, starting from the values
// in x and leaving the answer in x. A pool of opts.Workers workers is created
// for the call and closed before returning.
//
// Errors: ErrBadOptions, or wrapped matrix sentinels (ErrNilMatrix,
// ErrNonSquare, ErrNotColumnVector, ErrDimensionMismatch,
// ErrNotDiagonallyDominant). Reaching MaxIterations is reported through
// Result.Converged, not as an error.
func Solve(a, x, b *matrix.Dense, opts Options) (Result, error) {
	pool := parallel.New(opts.Workers)
	defer pool.Close()

	return SolveWithPool(pool, a, x, b, opts)
}

// SolveWithPool is Solve on a caller-owned pool.
func SolveWithPool(pool *parallel.Pool, a, x, b *matrix.Dense, opts Options) (Result, error) {
	if pool == nil {
		return Result{}, ErrNilPool
	}
	if err := validate(a, x, b, opts); err != nil {
		return Result{}, err
	}

	n := a.Rows()
	ad, bd := a.Data(), b.Data()

	return iterate(x, opts, func(prev, next []float32) {
		pool.ParallelFor(n, func(start, end int) {
			sweepRows(ad, bd, prev, next, n, start, end)
		})
	})
}

// Sweep performs exactly one parallel sweep from prev into next and returns
// the step norm sqrt(Σ (next[i]−prev[i])²). prev and next must be distinct
// n×1 vectors.
func Sweep(pool *parallel.Pool, a, b, prev, next *matrix.Dense) (float64, error) {
	if pool == nil {
		return 0, ErrNilPool
	}
	if err := validateSystem(a, prev, b); err != nil {
		return 0, err
	}
	if err := matrix.ValidateColumnVector(next, a.Rows()); err != nil {
		return 0, fmt.Errorf("jacobi: next: %w", err)
	}
	if prev == next {
		return 0, fmt.Errorf("jacobi: prev and next alias: %w", matrix.ErrDimensionMismatch)
	}

	n := a.Rows()
	ad, bd, pd, nd := a.Data(), b.Data(), prev.Data(), next.Data()
	pool.ParallelFor(n, func(start, end int) {
		sweepRows(ad, bd, pd, nd, n, start, end)
	})

	return stepNorm(pd, nd), nil
}

// iterate drives the double-buffered loop. bufs[0] is the caller's x and
// bufs[1] a scratch vector; sweep k reads bufs[k%2] and writes bufs[(k+1)%2].
func iterate(x *matrix.Dense, opts Options, sweep sweepFunc) (Result, error) {
	start := time.Now()

	scratch, err := matrix.NewVector(x.Rows())
	if err != nil {
		return Result{}, fmt.Errorf("jacobi: scratch: %w", err)
	}
	bufs := [2][]float32{x.Data(), scratch.Data()}

	var (
		res        Result
		prev, next []float32
	)
	for res.Iterations < opts.MaxIterations {
		prev = bufs[res.Iterations%2]
		next = bufs[(res.Iterations+1)%2]

		sweep(prev, next) // returns after every row is written

		res.Iterations++
		res.Residual = stepNorm(prev, next)
		if opts.Progress != nil {
			opts.Progress(res.Iterations, res.Residual)
		}
		if res.Residual < opts.Threshold {
			res.Converged = true
			break
		}
	}

	// An odd number of sweeps leaves the latest estimate in the scratch buffer.
	if res.Iterations%2 == 1 {
		copy(bufs[0], bufs[1])
	}
	res.X = x
	res.Elapsed = time.Since(start)

	return res, nil
}

// sweepRows updates rows [start, end) of next from prev.
// Products of two float32 values are exact in float64, so the accumulation
// order alone determines the result.
func sweepRows(a, b, prev, next []float32, n, start, end int) {
	var (
		i, j int
		base int
		sum  float64
	)
	for i = start; i < end; i++ {
		base = i * n
		sum = 0
		for j = 0; j < n; j++ {
			if j != i {
				sum += float64(a[base+j]) * float64(prev[j])
			}
		}
		next[i] = float32((float64(b[i]) - sum) / float64(a[base+i]))
	}
}

// stepNorm returns sqrt(Σ (next[i]−prev[i])²) accumulated in float64.
func stepNorm(prev, next []float32) float64 {
	var ssd, d float64
	for i := range next {
		d = float64(next[i]) - float64(prev[i])
		ssd += d * d
	}

	return math.Sqrt(ssd)
}

// validate checks options and the system shape (and dominance unless skipped).
func validate(a, x, b *matrix.Dense, opts Options) error {
	if opts.MaxIterations <= 0 {
		return fmt.Errorf("jacobi: MaxIterations=%d: %w", opts.MaxIterations, ErrBadOptions)
	}
	if !(opts.Threshold > 0) || math.IsInf(opts.Threshold, 0) {
		return fmt.Errorf("jacobi: Threshold=%g: %w", opts.Threshold, ErrBadOptions)
	}
	if err := validateSystem(a, x, b); err != nil {
		return err
	}
	if !opts.SkipDominanceCheck {
		if err := matrix.ValidateDiagonallyDominant(a); err != nil {
			return fmt.Errorf("jacobi: A: %w", err)
		}
	}

	return nil
}

func validateSystem(a, x, b *matrix.Dense) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("jacobi: A: %w", err)
	}
	n := a.Rows()
	if err := matrix.ValidateColumnVector(b, n); err != nil {
		return fmt.Errorf("jacobi: B: %w", err)
	}
	if err := matrix.ValidateColumnVector(x, n); err != nil {
		return fmt.Errorf("jacobi: x: %w", err)
	}

	return nil
}
