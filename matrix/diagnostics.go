// SPDX-License-Identifier: MIT

package matrix

import "math"

// Diagnostics summarises how well x solves A·x = B.
type Diagnostics struct {
	// MaxDiff is max_i |(A·x)_i − B_i|.
	MaxDiff float64
	// AvgDiff is the mean of |(A·x)_i − B_i|.
	AvgDiff float64
	// ResidualNorm is ‖A·x − B‖₂.
	ResidualNorm float64
}

// MatVec returns y = A·x with every dot product accumulated in float64.
//
// Errors: ErrNilMatrix, ErrNotColumnVector, ErrDimensionMismatch.
// Complexity: O(r*c).
func MatVec(a, x *Dense) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	if err := ValidateColumnVector(x, a.c); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}

	y := make([]float64, a.r)
	var (
		i, j int
		base int
		sum  float64
	)
	for i = 0; i < a.r; i++ {
		base = i * a.c
		sum = 0
		for j = 0; j < a.c; j++ {
			sum += float64(a.data[base+j]) * float64(x.data[j])
		}
		y[i] = sum
	}

	return y, nil
}

// Diagnose computes the residual statistics of x against A·x = B.
// Errors: those of MatVec plus ErrDimensionMismatch when B has the wrong length.
func Diagnose(a, x, b *Dense) (Diagnostics, error) {
	y, err := MatVec(a, x)
	if err != nil {
		return Diagnostics{}, matrixErrorf("Diagnose", err)
	}
	if err = ValidateColumnVector(b, a.r); err != nil {
		return Diagnostics{}, matrixErrorf("Diagnose", err)
	}

	var d Diagnostics
	var diff, ssd float64
	for i, yi := range y {
		diff = math.Abs(yi - float64(b.data[i]))
		if diff > d.MaxDiff {
			d.MaxDiff = diff
		}
		d.AvgDiff += diff
		ssd += diff * diff
	}
	d.AvgDiff /= float64(len(y))
	d.ResidualNorm = math.Sqrt(ssd)

	return d, nil
}

// Distance returns ‖a − b‖₂ over the flat buffers, accumulated in float64.
// Shapes must match.
func Distance(a, b *Dense) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf("Distance", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, matrixErrorf("Distance", err)
	}
	if a.r != b.r || a.c != b.c {
		return 0, matrixErrorf("Distance", ErrDimensionMismatch)
	}

	var ssd, d float64
	for i := range a.data {
		d = float64(a.data[i]) - float64(b.data[i])
		ssd += d * d
	}

	return math.Sqrt(ssd), nil
}
