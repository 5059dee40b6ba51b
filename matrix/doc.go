// Package matrix provides the dense row-major float32 storage shared by the
// iterative solvers of this module.
//
// The matrix package provides:
//
//   - Dense, a flat []float32 buffer with explicit rows/cols (offset = i*cols + j),
//     used for coefficient matrices as well as n×1 column vectors.
//   - Validators (square, column vector, diagonal dominance) returning sentinel
//     errors from errors.go.
//   - Random generators, including NewDiagonallyDominant for benchmarking the
//     Jacobi solver.
//   - Diagnostics (MatVec, Diagnose) that measure how well x solves A·x = B,
//     accumulating in float64.
//   - Factorize/SolveDirect, an unpivoted LU in float64 used as a direct
//     reference for the iterative answers.
//
// Entries are float32; every reduction (row sums, norms) is carried out in
// float64.
package matrix
