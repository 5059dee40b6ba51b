// Package itersolve is a small toolkit of parallel iterative solvers built on
// a fixed-size worker pool.
//
// 🚀 What is inside?
//
//	Two fork-join iterators that share one shape:
//	initialise → loop { parallel sweep → barrier → reduction/check → swap or broadcast }
//		• Jacobi: dense A·x = B for diagonally dominant float32 systems
//		• PSO: particle swarm minimisation of a scalar objective over a box
//
// ✨ Why?
//
//   - Deterministic: sequential reference solvers match the parallel ones bit for bit
//   - Fixed resources: the worker pool and buffers are created once per run
//   - Observable: Progress callbacks feed trace recorders and charts
//
// Subpackages:
//
//	matrix/   : row-major float32 Dense, validators, generators, LU reference, diagnostics
//	parallel/ : persistent worker pool with ParallelFor / ParallelForChunk
//	jacobi/   : parallel Jacobi iteration + sequential oracle
//	pso/      : swarm model, objectives, parallel PSO + sequential oracle
//	trace/    : convergence recorders and png/svg/pdf charts
//	cmd/itersolve: CLI printing speedup records
//
// Quick start:
//
//	go run ./cmd/itersolve jacobi 1024 8 --plot jacobi.svg
//	go run ./cmd/itersolve pso rastrigin 10 200 -5.12 5.12 1000 8
package itersolve
