// Package pso minimises a scalar objective over a box [xmin, xmax]^dim with
// Particle Swarm Optimization, parallelised across a fixed-size worker pool.
//
// Each iteration is a two-phase fork-join:
//
//  1. Sweep (parallel over particles). For every dimension j a particle draws
//     r1, r2 ∈ [0,1) and updates
//
//     v[j] = w·v[j] + c1·r1·(pbest[j] − x[j]) + c2·r2·(gbest.x[j] − x[j])
//
//     with w = 0.79, c1 = c2 = 1.49. A velocity outside ±|xmax−xmin| is
//     re-drawn uniformly inside that range (it is not clipped). The position
//     moves by v and is clipped to [xmin, xmax]. If the new fitness beats the
//     particle's personal best, pbest and fitness are updated.
//
//  2. Reduce + broadcast. After the sweep barrier a parallel arg-min over the
//     swarm finds the best particle g (lowest index on ties); a second
//     parallel pass writes g into every particle's G field. The position of
//     particle g is then copied into a snapshot that every particle reads
//     during the next sweep, so all particles of one sweep see the same
//     global best regardless of scheduling.
//
// Termination is by iteration count only. Randomness comes from one
// math/rand stream per pool chunk, derived from Options.Seed; runs with the
// same seed and worker count are reproducible, and a single-worker run
// matches SolveSequential exactly.
//
// Objectives are looked up by name (sphere, rastrigin, schwefel, rosenbrock,
// ackley) or supplied as any pure, goroutine-safe func([]float32) float32.
package pso
