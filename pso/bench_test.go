// SPDX-License-Identifier: MIT
package pso_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/itersolve/pso"
)

// benchmarkSolve runs a fixed number of iterations on a fresh copy of one swarm.
// workers == 0 selects the sequential oracle.
func benchmarkSolve(b *testing.B, dim, size, workers int) {
	base, err := pso.NewSwarm(pso.Rastrigin, dim, size, -5.12, 5.12, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatalf("swarm: %v", err)
	}
	opts := pso.Options{MaxIterations: 20, Workers: workers, Seed: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := base.Clone()
		b.StartTimer()
		if workers == 0 {
			_, err = pso.SolveSequential(s, opts)
		} else {
			_, err = pso.Solve(s, opts)
		}
		if err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}

func BenchmarkSolve_Sequential_30x1000(b *testing.B) { benchmarkSolve(b, 30, 1000, 0) }
func BenchmarkSolve_Workers1_30x1000(b *testing.B)   { benchmarkSolve(b, 30, 1000, 1) }
func BenchmarkSolve_Workers4_30x1000(b *testing.B)   { benchmarkSolve(b, 30, 1000, 4) }
func BenchmarkSolve_Workers8_100x5000(b *testing.B)  { benchmarkSolve(b, 100, 5000, 8) }
