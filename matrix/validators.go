// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and convergence checks.
//  - Keep solvers minimal by delegating nil/shape/dominance checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
// Squareness is asserted explicitly so that every row-stride computation
// (i*n + j) is valid for both rows and columns.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateColumnVector checks that v is a non-nil n×1 matrix.
func ValidateColumnVector(v *Dense, n int) error {
	if err := ValidateNotNil(v); err != nil {
		return validatorErrorf("ValidateColumnVector", err)
	}
	if v.c != 1 {
		return validatorErrorf("ValidateColumnVector", ErrNotColumnVector)
	}
	if v.r != n {
		return validatorErrorf("ValidateColumnVector", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDiagonallyDominant checks |A[i][i]| > Σ_{j≠i} |A[i][j]| for every row.
// The row sums are accumulated in float64.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotDiagonallyDominant (with the
// offending row in the message).
// Complexity: O(n²).
func ValidateDiagonallyDominant(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateDiagonallyDominant", err)
	}
	if row := firstNonDominantRow(m); row >= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDiagonallyDominant: row %d", row), ErrNotDiagonallyDominant)
	}

	return nil
}

// IsDiagonallyDominant reports whether m is square and strictly diagonally dominant.
func IsDiagonallyDominant(m *Dense) bool {
	return ValidateDiagonallyDominant(m) == nil
}

// firstNonDominantRow returns the first row violating dominance, or -1.
func firstNonDominantRow(m *Dense) int {
	n := m.r
	var (
		i, j int
		sum  float64
		diag float64
		base int
	)
	for i = 0; i < n; i++ {
		base = i * n
		sum = 0
		for j = 0; j < n; j++ {
			if j != i {
				sum += math.Abs(float64(m.data[base+j]))
			}
		}
		diag = math.Abs(float64(m.data[base+i]))
		if diag <= sum {
			return i
		}
	}

	return -1
}
