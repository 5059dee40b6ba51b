// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/itersolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewRandom_Range checks entries are integer-valued and inside [min, max].
func TestNewRandom_Range(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	m, err := matrix.NewRandom(20, 5, rng, -3, 4)
	require.NoError(t, err)
	for _, v := range m.Data() {
		require.GreaterOrEqual(t, v, float32(-3))
		require.LessOrEqual(t, v, float32(4))
		require.Equal(t, float32(int(v)), v, "entries are integer-valued")
	}

	_, err = matrix.NewRandom(2, 2, rng, 5, 1)
	require.ErrorIs(t, err, matrix.ErrBadRange)
	_, err = matrix.NewRandom(0, 2, rng, 1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDiagonallyDominant produces matrices that pass the dominance check.
func TestNewDiagonallyDominant(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 16, 128} {
		m, err := matrix.NewDiagonallyDominant(n, rand.New(rand.NewSource(int64(n))))
		require.NoError(t, err)
		require.Equal(t, n, m.Rows())
		require.Equal(t, n, m.Cols())
		require.True(t, matrix.IsDiagonallyDominant(m))
	}

	_, err := matrix.NewDiagonallyDominant(0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewRandom_NilRNGIsDeterministic verifies the default stream is fixed.
func TestNewRandom_NilRNGIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewRandom(4, 4, nil, 0, 9)
	require.NoError(t, err)
	b, err := matrix.NewRandom(4, 4, nil, 0, 9)
	require.NoError(t, err)
	require.Equal(t, a.Data(), b.Data())
}
