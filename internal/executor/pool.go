package executor

import (
	"log/slog"
)

// Job is a deferred unit of work submitted to the pool
// Each job is claimed by exactly one worker and runs exactly once
type Job func()

// message is the control unit carried by the pool's queue
// Jobs and terminate requests travel through the same FIFO, so every job
// enqueued before a terminate is claimed before any worker acts on it
type message struct {
	// job is the work to run (nil for terminate messages)
	job Job

	// terminate tells the claiming worker to exit its receive loop
	terminate bool
}

// Pool manages a resizable set of workers draining one shared FIFO queue
// It provides unbounded submission, count-exact resizing, and a shutdown
// that never abandons a submitted job
type Pool struct {
	// queue is the shared FIFO every worker receives from
	queue *queue

	// size is the number of live workers
	// Mutated only by the owner goroutine (see the single-owner contract in doc.go)
	size int

	// nextID numbers workers for logging
	nextID int

	// exited receives one signal per worker that consumed a terminate
	exited chan struct{}

	// logger for structured logging
	logger *slog.Logger
}

// NewPool creates a worker pool with the specified number of workers
// It panics if size < 1: a pool that can never run anything is a
// programmer error, not a runtime condition
func NewPool(size int, logger *slog.Logger) *Pool {
	if size < 1 {
		panic("executor: pool size must be at least 1")
	}

	if logger == nil {
		logger = slog.Default()
	}

	p := &Pool{
		queue:  newQueue(),
		exited: make(chan struct{}),
		logger: logger,
	}

	p.logger.Debug("starting workers", "count", size)
	p.spawn(size)

	return p
}

// Execute appends a job to the queue
// It never blocks: the queue is unbounded, so submission succeeds even
// when every worker is busy
func (p *Pool) Execute(job Job) {
	p.queue.push(message{job: job})
	p.logger.Debug("job submitted", "queued", p.queue.len())
}

// Resize grows or shrinks the pool to exactly n live workers
// Growing spawns the difference immediately. Shrinking enqueues one
// terminate per excess worker and waits for that many exits; jobs already
// queued ahead of the terminates still run first. WHICH workers stop is
// decided by queue contention, not spawn order, so callers must only rely
// on the resulting count
// It panics if n < 1
func (p *Pool) Resize(n int) {
	if n < 1 {
		panic("executor: pool size must be at least 1")
	}

	if n == p.size {
		return
	}

	p.logger.Info("resizing pool", "from", p.size, "to", n)

	if n > p.size {
		p.spawn(n - p.size)
		return
	}

	p.stop(p.size - n)
}

// Shutdown terminates every worker and waits for all of them to exit
// One terminate message is enqueued per live worker, behind everything
// already in the queue, so all pending jobs complete before the workers
// stop. Calling Shutdown on an already-empty pool is a no-op
func (p *Pool) Shutdown() {
	if p.size == 0 {
		return
	}

	p.logger.Info("shutting down worker pool", "workers", p.size)
	p.stop(p.size)
	p.logger.Info("worker pool shut down")
}

// Size returns the current number of live workers
func (p *Pool) Size() int {
	return p.size
}

// spawn starts n new workers
func (p *Pool) spawn(n int) {
	for i := 0; i < n; i++ {
		id := p.nextID
		p.nextID++
		go p.worker(id)
	}
	p.size += n
}

// stop enqueues n terminate messages and waits for n workers to exit
// Waiting is by count, never by worker identity: any worker may be the
// one to claim a given terminate
func (p *Pool) stop(n int) {
	for i := 0; i < n; i++ {
		p.queue.push(message{terminate: true})
	}
	for i := 0; i < n; i++ {
		<-p.exited
	}
	p.size -= n
}

// worker is the receive loop run by each worker goroutine
// It claims one message at a time from the shared queue and either runs
// the job or, on a terminate, signals its exit and returns
func (p *Pool) worker(id int) {
	p.logger.Debug("worker started", "worker_id", id)

	for {
		msg := p.queue.pop()

		if msg.terminate {
			p.logger.Debug("worker stopped", "worker_id", id)
			p.exited <- struct{}{}
			return
		}

		p.runJob(id, msg.job)
	}
}

// runJob executes a single job, containing any panic so the worker keeps
// serving the queue and the exit accounting stays exact
func (p *Pool) runJob(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("job panicked", "worker_id", id, "panic", r)
		}
	}()

	job()
}
