// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/rand"
)

// Default integer range used by the random generators.
const (
	DefaultMinValue = 2
	DefaultMaxValue = 10
)

// defaultRNGSeed is used when a nil *rand.Rand is passed to a generator.
const defaultRNGSeed int64 = 1

// diagonalBoost is added to each row's absolute sum to build a strictly dominant diagonal.
const diagonalBoost = 0.5

const (
	ctxRandom = "NewRandom"
	ctxDD     = "NewDiagonallyDominant"
)

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(defaultRNGSeed))
	}

	return rng
}

// RandomValue draws floor(min + (max-min+1)*r) with r uniform in [0,1),
// i.e. an integer-valued float in [min, max].
func RandomValue(rng *rand.Rand, min, max int) float32 {
	r := rng.Float64()

	return float32(math.Floor(float64(min) + float64(max-min+1)*r))
}

// NewRandom creates an r×c matrix whose entries are integer-valued floats in [min, max].
// A nil rng selects a fixed default stream.
//
// Errors: ErrInvalidDimensions, ErrBadRange (min > max).
func NewRandom(rows, cols int, rng *rand.Rand, min, max int) (*Dense, error) {
	if min > max {
		return nil, matrixErrorf(ctxRandom, ErrBadRange)
	}
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxRandom, err)
	}
	r := rngOrDefault(rng)
	for i := range m.data {
		m.data[i] = RandomValue(r, min, max)
	}

	return m, nil
}

// NewDiagonallyDominant creates a random n×n matrix with entries in
// [DefaultMinValue, DefaultMaxValue] whose diagonal is replaced by
// 0.5 + Σ_j |A[i][j]| (the sum includes the old diagonal entry).
//
// The result is verified with ValidateDiagonallyDominant before it is returned;
// on failure no matrix is returned and the error wraps ErrNotDiagonallyDominant.
// Complexity: O(n²).
func NewDiagonallyDominant(n int, rng *rand.Rand) (*Dense, error) {
	m, err := NewRandom(n, n, rng, DefaultMinValue, DefaultMaxValue)
	if err != nil {
		return nil, matrixErrorf(ctxDD, err)
	}

	var (
		i, j   int
		base   int
		rowSum float64
	)
	for i = 0; i < n; i++ {
		base = i * n
		rowSum = 0
		for j = 0; j < n; j++ {
			rowSum += math.Abs(float64(m.data[base+j]))
		}
		m.data[base+i] = float32(diagonalBoost + rowSum)
	}

	if err = ValidateDiagonallyDominant(m); err != nil {
		return nil, matrixErrorf(ctxDD, err)
	}

	return m, nil
}
