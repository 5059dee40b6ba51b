// SPDX-License-Identifier: MIT

package pso

import (
	"errors"
	"time"
)

// Fixed PSO coefficients.
const (
	// Inertia is the weight w of the previous velocity.
	Inertia float32 = 0.79
	// Cognitive is c1, the pull towards the particle's own best.
	Cognitive float32 = 1.49
	// Social is c2, the pull towards the swarm's best.
	Social float32 = 1.49
)

// NoParticle is returned as the best index when there is no swarm to solve.
const NoParticle = -1

var (
	// ErrInvalidSwarm indicates invalid initialisation parameters
	// (dim <= 0, size <= 0, xmin >= xmax, non-finite bounds, nil objective).
	ErrInvalidSwarm = errors.New("pso: invalid swarm parameters")

	// ErrNilSwarm indicates a nil or empty swarm was passed to a solver.
	ErrNilSwarm = errors.New("pso: nil or empty swarm")

	// ErrBadOptions indicates a negative iteration count.
	ErrBadOptions = errors.New("pso: invalid options")

	// ErrUnknownFunction indicates an objective name missing from the registry.
	ErrUnknownFunction = errors.New("pso: unknown objective function")

	// ErrNilPool indicates SolveWithPool was called without a pool.
	ErrNilPool = errors.New("pso: nil pool")
)

// Options configures a PSO run.
type Options struct {
	// MaxIterations is the fixed number of iterations (>= 0).
	MaxIterations int

	// Workers is the pool size used by Solve; <= 0 selects GOMAXPROCS.
	Workers int

	// Seed selects the random streams; 0 uses a fixed default seed.
	Seed int64

	// Progress, when set, is called after every iteration (after the
	// broadcast) with the 1-based iteration, the best index and its fitness.
	// The swarm may be read inside the callback but not modified.
	Progress func(iteration, best int, fitness float32)
}

// DefaultMaxIterations is the iteration count used by DefaultOptions.
const DefaultMaxIterations = 1000

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// Solution is the result of Optimize.
type Solution struct {
	// Index of the best particle.
	Index int
	// Position is a copy of that particle's personal-best position.
	Position []float32
	// Fitness is the objective value at Position.
	Fitness float32
	// Iterations performed.
	Iterations int
	// Elapsed covers initialisation and iteration.
	Elapsed time.Duration
}
