// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// LU is a Doolittle factorisation A = L·U held in float64: L is unit lower
// triangular (its diagonal is implicit), U is upper triangular. Both share
// one n×n row-major buffer.
type LU struct {
	n  int
	lu []float64
}

// Factorize computes the LU factorisation of a without pivoting. Strictly
// diagonally dominant matrices never produce a zero pivot; for other inputs
// ErrSingular is returned when one appears.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a *Dense) (*LU, error) {
	// Stage 1: Validate input is square
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf("Factorize", err)
	}
	n := a.r

	// Stage 2: Copy A into the working buffer
	lu := make([]float64, n*n)
	for i, v := range a.data {
		lu[i] = float64(v)
	}

	// Stage 3: Row i of U, then column i of L
	var (
		i, j, k int
		sum     float64
		pivot   float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lu[i*n+k] * lu[k*n+j]
			}
			lu[i*n+j] -= sum
		}
		pivot = lu[i*n+i]
		if pivot == 0 {
			return nil, matrixErrorf(fmt.Sprintf("Factorize: pivot %d", i), ErrSingular)
		}
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lu[j*n+k] * lu[k*n+i]
			}
			lu[j*n+i] = (lu[j*n+i] - sum) / pivot
		}
	}

	return &LU{n: n, lu: lu}, nil
}

// Solve returns x with L·U·x = b by forward and back substitution.
//
// Errors: ErrNilMatrix, ErrNotColumnVector, ErrDimensionMismatch.
func (f *LU) Solve(b *Dense) ([]float64, error) {
	if err := ValidateColumnVector(b, f.n); err != nil {
		return nil, matrixErrorf("LU.Solve", err)
	}
	n, lu := f.n, f.lu

	// L·y = b (unit diagonal)
	x := make([]float64, n)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = float64(b.data[i])
		for k = 0; k < i; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// U·x = y, in place
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum / lu[i*n+i]
	}

	return x, nil
}

// SolveDirect solves A·x = b with an LU factorisation. It is the direct
// reference the iterative solvers are checked against.
func SolveDirect(a, b *Dense) ([]float64, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, matrixErrorf("SolveDirect", err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, matrixErrorf("SolveDirect", err)
	}

	return x, nil
}

// MaxDeviation returns max_i |x[i] − ref[i]|.
//
// Errors: ErrNilMatrix, ErrNotColumnVector, ErrDimensionMismatch.
func MaxDeviation(x *Dense, ref []float64) (float64, error) {
	if err := ValidateColumnVector(x, len(ref)); err != nil {
		return 0, matrixErrorf("MaxDeviation", err)
	}
	var worst, d float64
	for i, v := range x.data {
		d = float64(v) - ref[i]
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}
