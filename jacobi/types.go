// SPDX-License-Identifier: MIT

package jacobi

import (
	"errors"
	"time"

	"github.com/katalvlaran/itersolve/matrix"
)

// Defaults.
const (
	// DefaultMaxIterations caps the number of sweeps.
	DefaultMaxIterations = 100000

	// DefaultThreshold is the convergence bound on the step norm. It is chosen
	// well above float32 rounding noise so that a converging run can reach it.
	DefaultThreshold = 1e-5
)

var (
	// ErrBadOptions indicates a non-positive iteration cap or a threshold that
	// is not finite and positive.
	ErrBadOptions = errors.New("jacobi: invalid options")

	// ErrNilPool indicates SolveWithPool was called without a pool.
	ErrNilPool = errors.New("jacobi: nil pool")
)

// Options configures a Jacobi run.
type Options struct {
	// MaxIterations is the hard cap on sweeps (> 0).
	MaxIterations int

	// Threshold is the convergence bound on sqrt(Σ (next−prev)²) (> 0).
	Threshold float64

	// Workers is the pool size used by Solve; <= 0 selects GOMAXPROCS.
	// Ignored by SolveWithPool and SolveSequential.
	Workers int

	// SkipDominanceCheck disables the diagonal-dominance precondition.
	// Without it a non-convergent system simply runs to MaxIterations.
	SkipDominanceCheck bool

	// Progress, when set, is called after every sweep with the 1-based
	// iteration number and the step norm. It runs on the solver goroutine.
	Progress func(iteration int, mse float64)
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Threshold:     DefaultThreshold,
	}
}

// Result reports the outcome of a run.
type Result struct {
	// X is the solution vector; it is the caller's x, updated in place.
	X *matrix.Dense

	// Iterations is the number of sweeps performed.
	Iterations int

	// Residual is the step norm of the last sweep.
	Residual float64

	// Converged is false when the run stopped at MaxIterations.
	Converged bool

	// Elapsed is the wall time of the iteration loop.
	Elapsed time.Duration
}
