// SPDX-License-Identifier: MIT
// Package pso - RNG utilities shared by the parallel and sequential solvers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each pool chunk owns one stream,
//     created by streams before the loop starts.

package pso

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring stream ids produce
// unrelated sequences.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streams returns count independent RNGs derived from seed.
// Stream c depends only on (seed, c), so a given chunk sees the same sequence
// in every run with the same seed and worker count.
func streams(seed int64, count int) []*rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	out := make([]*rand.Rand, count)
	for c := range out {
		out[c] = rand.New(rand.NewSource(deriveSeed(seed, uint64(c))))
	}

	return out
}

// uniform returns a value drawn uniformly from [lo, hi).
func uniform(r *rand.Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}
