// SPDX-License-Identifier: MIT

package pso

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/itersolve/parallel"
)

// Solve runs opts.MaxIterations PSO iterations on s in place and returns the
// index of the best particle. A pool of opts.Workers workers is created for
// the call and closed before returning.
//
// Errors: ErrNilSwarm (index NoParticle), ErrBadOptions, ErrInvalidSwarm.
func Solve(s *Swarm, opts Options) (int, error) {
	pool := parallel.New(opts.Workers)
	defer pool.Close()

	return SolveWithPool(pool, s, opts)
}

// SolveWithPool is Solve on a caller-owned pool.
//
// Per-chunk random streams are derived from opts.Seed and the chunk index, so
// the result depends on the seed and on pool.Chunks(s.Len()), not on how the
// scheduler maps chunks to goroutines.
func SolveWithPool(pool *parallel.Pool, s *Swarm, opts Options) (int, error) {
	if pool == nil {
		return NoParticle, ErrNilPool
	}
	if err := validate(s, opts); err != nil {
		return NoParticle, err
	}

	n := len(s.Particles)
	count, _ := pool.Chunks(n)
	rngs := streams(opts.Seed, count)
	partial := make([]int, count)
	span := s.span()

	g := s.Best()
	gx := make([]float32, s.Dim)
	copy(gx, s.Particles[g].X)

	sweep := func(chunk, start, end int) {
		r := rngs[chunk]
		for i := start; i < end; i++ {
			s.move(&s.Particles[i], r, gx, span)
		}
	}
	argmin := func(chunk, start, end int) {
		partial[chunk] = bestIn(s.Particles, start, end)
	}
	broadcast := func(start, end int) {
		for i := start; i < end; i++ {
			s.Particles[i].G = g
		}
	}

	for it := 1; it <= opts.MaxIterations; it++ {
		pool.ParallelForChunk(n, sweep)

		pool.ParallelForChunk(n, argmin)
		g = mergeBest(s.Particles, partial)
		pool.ParallelFor(n, broadcast)

		// Every particle of the next sweep reads this one snapshot.
		copy(gx, s.Particles[g].X)

		if opts.Progress != nil {
			opts.Progress(it, g, s.Particles[g].Fitness)
		}
	}

	return g, nil
}

// Optimize looks up the named objective, builds a swarm seeded from
// opts.Seed, solves it and returns the best particle's personal best.
func Optimize(function string, dim, size int, xmin, xmax float32, opts Options) (Solution, error) {
	obj, err := Lookup(function)
	if err != nil {
		return Solution{}, err
	}

	return OptimizeFunc(obj, dim, size, xmin, xmax, opts)
}

// OptimizeFunc is Optimize for an arbitrary objective.
func OptimizeFunc(obj Objective, dim, size int, xmin, xmax float32, opts Options) (Solution, error) {
	start := time.Now()
	s, err := NewSwarm(obj, dim, size, xmin, xmax, rngFromSeed(opts.Seed))
	if err != nil {
		return Solution{}, err
	}
	g, err := Solve(s, opts)
	if err != nil {
		return Solution{}, err
	}

	return s.solution(g, opts.MaxIterations, time.Since(start)), nil
}

// move advances one particle by one step and refreshes its personal best.
// gx is the global-best snapshot for the current sweep.
func (s *Swarm) move(p *Particle, r *rand.Rand, gx []float32, span float32) {
	var r1, r2, v, x float32
	for j := range p.X {
		r1, r2 = r.Float32(), r.Float32()
		v = Inertia*p.V[j] + Cognitive*r1*(p.PBest[j]-p.X[j]) + Social*r2*(gx[j]-p.X[j])
		if v < -span || v > span {
			v = uniform(r, -span, span)
		}
		x = p.X[j] + v
		if x < s.XMin {
			x = s.XMin
		} else if x > s.XMax {
			x = s.XMax
		}
		p.V[j] = v
		p.X[j] = x
	}

	if f := s.Objective(p.X); f < p.Fitness {
		p.Fitness = f
		copy(p.PBest, p.X)
	}
}

// bestIn returns the index in [start, end) with the lowest Fitness, the
// lowest index winning ties.
func bestIn(ps []Particle, start, end int) int {
	g := start
	for i := start + 1; i < end; i++ {
		if ps[i].Fitness < ps[g].Fitness {
			g = i
		}
	}

	return g
}

// mergeBest folds per-chunk winners in chunk order. Chunks cover ascending
// index ranges, so a strict comparison keeps the lowest index on ties.
func mergeBest(ps []Particle, partial []int) int {
	g := partial[0]
	for _, c := range partial[1:] {
		if ps[c].Fitness < ps[g].Fitness {
			g = c
		}
	}

	return g
}

func (s *Swarm) solution(g, iterations int, elapsed time.Duration) Solution {
	p := &s.Particles[g]

	return Solution{
		Index:      g,
		Position:   append([]float32(nil), p.PBest...),
		Fitness:    p.Fitness,
		Iterations: iterations,
		Elapsed:    elapsed,
	}
}

func validate(s *Swarm, opts Options) error {
	if s == nil || len(s.Particles) == 0 {
		return ErrNilSwarm
	}
	if opts.MaxIterations < 0 {
		return fmt.Errorf("pso: MaxIterations=%d: %w", opts.MaxIterations, ErrBadOptions)
	}
	if s.Objective == nil {
		return fmt.Errorf("pso: nil objective: %w", ErrInvalidSwarm)
	}
	if s.Dim <= 0 || !(s.XMin < s.XMax) {
		return fmt.Errorf("pso: dim=%d bounds [%g, %g]: %w", s.Dim, s.XMin, s.XMax, ErrInvalidSwarm)
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		if len(p.X) != s.Dim || len(p.V) != s.Dim || len(p.PBest) != s.Dim {
			return fmt.Errorf("pso: particle %d dimension %d, want %d: %w", i, len(p.X), s.Dim, ErrInvalidSwarm)
		}
	}

	return nil
}
