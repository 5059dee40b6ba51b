// SPDX-License-Identifier: MIT

// Package parallel provides a persistent, fixed-size worker pool with a
// fork-join "parallel for". A Pool is created once per solver run and reused
// for every sweep, so no goroutines are spawned inside the iteration loop.
//
// Every ParallelFor call partitions [0, n) into contiguous chunks, hands them
// to the workers and blocks until all chunks are done. The return from
// ParallelFor is the synchronization barrier: writes made by the loop body are
// visible to the caller (and to the next ParallelFor) once it returns.
//
// Usage:
//
//	pool := parallel.New(4)
//	defer pool.Close()
//
//	for iter := 0; iter < maxIter; iter++ {
//	    pool.ParallelFor(n, func(start, end int) {
//	        for i := start; i < end; i++ {
//	            next[i] = update(prev, i)
//	        }
//	    })
//	    // barrier: every next[i] is written here
//	}
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once in New and live
// until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one chunk of a parallel loop.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. numWorkers <= 0 selects
// runtime.GOMAXPROCS(0). A single-worker pool spawns no goroutines and runs
// every loop inline on the caller.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	if numWorkers == 1 {
		return p
	}
	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the workers down. Loops issued after Close run sequentially.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Chunks reports how ParallelFor partitions n items: the number of chunks and
// the chunk size (the last chunk may be shorter). For n <= 0 it returns (0, 0).
func (p *Pool) Chunks(n int) (count, size int) {
	if n <= 0 {
		return 0, 0
	}
	workers := min(p.numWorkers, n)
	if workers <= 1 || p.closed.Load() {
		return 1, n
	}
	size = (n + workers - 1) / workers
	count = (n + size - 1) / size

	return count, size
}

// ParallelFor executes fn over [0, n) split into contiguous [start, end)
// ranges, one per worker, and blocks until all ranges complete.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForChunk(n, func(_, start, end int) {
		fn(start, end)
	})
}

// ParallelForChunk is ParallelFor with the chunk index passed to fn.
// Chunk indices are dense in [0, count) where count is the first value
// returned by Chunks(n); callers use them to address per-chunk state such as
// random streams or partial reductions without locking.
func (p *Pool) ParallelForChunk(n int, fn func(chunk, start, end int)) {
	count, size := p.Chunks(n)
	if count == 0 {
		return
	}
	if count == 1 {
		fn(0, 0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(count)
	for c := range count {
		start := c * size
		end := min(start+size, n)
		p.workC <- workItem{
			fn: func() {
				fn(c, start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
