// SPDX-License-Identifier: MIT

// Command itersolve benchmarks the parallel iterative solvers against their
// sequential references.
//
// Usage:
//
//	itersolve jacobi <matrix-size> <num-threads> [--max-iter N] [--threshold T] [--seed S] [--plot FILE]
//	itersolve pso [--seed S] [--plot FILE] <function> <dim> <swarm-size> <xmin> <xmax> <max-iter> <num-threads>
//
// Diagnostics go to standard error. Standard output receives one
// tab-separated record per run:
//
//	jacobi: size  threads  speedup
//	pso:    function  dim  swarm  threads  speedup  fitness  position
//
// The exit status is 1 on any error.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.New(os.Stderr, "itersolve: ", 0).Println("error:", err)
		os.Exit(1)
	}
}
