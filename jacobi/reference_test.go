// SPDX-License-Identifier: MIT
package jacobi_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/itersolve/jacobi"
	"github.com/katalvlaran/itersolve/matrix"
)

// TestSolve_AgreesWithLU compares the converged Jacobi answer with a
// float64 LU solve of the same system.
func TestSolve_AgreesWithLU(t *testing.T) {
	t.Parallel()

	for _, n := range []int{5, 40, 128} {
		a, b := randomSystem(t, n, int64(n))

		x, err := matrix.NewVector(n)
		require.NoError(t, err)
		opts := jacobi.DefaultOptions()
		opts.Workers = 4
		res, err := jacobi.Solve(a, x, b, opts)
		require.NoError(t, err)
		require.True(t, res.Converged)

		ref := luSolve(t, a, b)
		for i := 0; i < n; i++ {
			require.InDeltaf(t, ref.AtVec(i), float64(x.Data()[i]), 1e-3, "n=%d row %d", n, i)
		}
	}
}

func luSolve(t *testing.T, a, b *matrix.Dense) *mat.VecDense {
	t.Helper()
	n := a.Rows()
	ad := make([]float64, n*n)
	for i, v := range a.Data() {
		ad[i] = float64(v)
	}
	bd := make([]float64, n)
	for i, v := range b.Data() {
		bd[i] = float64(v)
	}

	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, ad))
	var x mat.VecDense
	require.NoError(t, lu.SolveVecTo(&x, false, mat.NewVecDense(n, bd)))
	return &x
}
