// SPDX-License-Identifier: MIT

package jacobi

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/itersolve/matrix"
)

// SolveSequential is the single-goroutine reference solver. It copies the new
// estimate back into x after each sweep instead of swapping buffers, and it
// shares no code with the parallel path beyond validation. The arithmetic is
// the same, so for equal inputs and options it returns the same vector, bit
// for bit, and the same iteration count as Solve.
func SolveSequential(a, x, b *matrix.Dense, opts Options) (Result, error) {
	if err := validate(a, x, b, opts); err != nil {
		return Result{}, err
	}
	start := time.Now()

	n := a.Rows()
	ad, bd, xd := a.Data(), b.Data(), x.Data()
	newX := make([]float32, n)

	var (
		res       Result
		i, j      int
		sum, ssd  float64
		diff      float64
		rowOffset int
	)
	for res.Iterations < opts.MaxIterations {
		for i = 0; i < n; i++ {
			rowOffset = i * n
			sum = 0
			for j = 0; j < n; j++ {
				if i != j {
					sum += float64(ad[rowOffset+j]) * float64(xd[j])
				}
			}
			newX[i] = float32((float64(bd[i]) - sum) / float64(ad[rowOffset+i]))
		}

		ssd = 0
		for i = 0; i < n; i++ {
			diff = float64(newX[i]) - float64(xd[i])
			ssd += diff * diff
		}
		copy(xd, newX)

		res.Iterations++
		res.Residual = math.Sqrt(ssd)
		if opts.Progress != nil {
			opts.Progress(res.Iterations, res.Residual)
		}
		if res.Residual < opts.Threshold {
			res.Converged = true
			break
		}
	}
	res.X = x
	res.Elapsed = time.Since(start)

	return res, nil
}

// SweepSequential is Sweep on the calling goroutine.
func SweepSequential(a, b, prev, next *matrix.Dense) (float64, error) {
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
	var (
		sum, ssd, d float64
		base        int
	)
	for i := 0; i < n; i++ {
		base = i * n
		sum = 0
		for j := 0; j < n; j++ {
			if i != j {
				sum += float64(ad[base+j]) * float64(pd[j])
			}
		}
		nd[i] = float32((float64(bd[i]) - sum) / float64(ad[base+i]))
		d = float64(nd[i]) - float64(pd[i])
		ssd += d * d
	}

	return math.Sqrt(ssd), nil
}
