// Package executor provides the resizable worker pool that drives concurrent
// file analysis.
//
// The package implements a single-queue worker pool: every worker receives
// from one shared unbounded FIFO that carries both jobs and terminate
// requests. Because the two message kinds ride the same queue, lifecycle
// changes (shrink, shutdown) are ordered behind the work that was already
// submitted.
//
// # Key Features
//
//   - One shared FIFO queue with mutually exclusive receive
//   - Non-blocking submission at any queue depth
//   - Live resizing: grow spawns workers, shrink retires exactly N of them
//   - Drain-then-terminate shutdown: no submitted job is ever abandoned
//   - Exit accounting by count, never by worker identity
//   - Zero goroutine leaks after Shutdown
//
// # Basic Usage
//
// Create a pool, submit jobs, and shut down:
//
//	pool := executor.NewPool(4, logger)
//
//	for _, path := range paths {
//	    p := path
//	    pool.Execute(func() {
//	        process(p)
//	    })
//	}
//
//	pool.Shutdown()
//
// Shutdown returns only after every previously submitted job has run and
// every worker has exited.
//
// # Resizing
//
// The pool can change size while jobs are in flight:
//
//	pool.Resize(8)  // spawn 4 more workers
//	pool.Resize(2)  // retire 6 workers once they reach a terminate message
//
// A shrink enqueues terminate messages behind the current backlog, so the
// pool keeps its old parallelism until the backlog ahead of the terminates
// is drained. Which workers retire is decided by queue contention; only the
// resulting count is defined.
//
// # Ownership
//
// Execute, Resize, Shutdown, and Size are intended to be called from one
// owner goroutine (the dispatcher). Jobs themselves run on the workers and
// may do anything except call back into the pool. This mirrors the usual
// lifecycle: an owner feeds the pool, many workers drain it.
//
// # Cancellation
//
// The pool knows nothing about cancellation. Workers never watch a context:
// if they did, a canceled context would let workers exit with jobs still
// queued, silently breaking the drain guarantee. Callers that want to skip
// work after a cancellation check their context inside the job closure
// before doing anything expensive.
//
// # Error Handling
//
// Jobs have no return value; they record their outcomes through whatever
// the closure captures. A panicking job is logged and contained so the
// worker keeps serving the queue and exit accounting stays exact.
package executor
