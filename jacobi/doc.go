// Package jacobi solves dense linear systems A·x = B by Jacobi iteration,
// parallelised across a fixed-size worker pool.
//
// What is Jacobi iteration?
//
//	Each sweep computes a new estimate of every unknown from the previous
//	estimate of all the others:
//
//	  next[i] = ( B[i] − Σ_{j≠i} A[i][j]·prev[j] ) / A[i][i]
//
//	The method converges for strictly diagonally dominant A
//	(|A[i][i]| > Σ_{j≠i} |A[i][j]| for every row), which Solve checks up front.
//
// Parallel model:
//   - Rows are independent within a sweep: every row reads the same prev
//     buffer and writes its own entry of next, so the sweep needs no locks.
//   - The pool's ParallelFor returns only when every row is written; the
//     convergence metric is computed after that barrier, on the caller's
//     goroutine, and the next sweep starts only after the check.
//   - prev and next are two buffers allocated once; their roles alternate by
//     iteration parity and are never copied inside the loop.
//
// Termination:
//   - mse = sqrt( Σ_i (next[i] − prev[i])² ) < Threshold  ⇒ Converged.
//   - MaxIterations reached ⇒ Result.Converged == false. This is not an error;
//     the returned vector is the latest (unconverged) approximation.
//
// Numerics: entries are float32, row sums and the metric accumulate in float64.
//
// Usage:
//
//	res, err := jacobi.Solve(A, x, B, jacobi.DefaultOptions())
//	if err != nil {
//	  // ErrBadOptions or a wrapped matrix sentinel (ErrNonSquare, ErrNotDiagonallyDominant, ...)
//	}
//	fmt.Println(res.Iterations, res.Residual, res.Converged)
//
// SolveSequential is a single-goroutine reference implementation with
// identical arithmetic; for the same inputs it produces bit-identical results.
package jacobi
