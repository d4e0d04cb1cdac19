package executor

import (
	"sync"
)

// queue is the unbounded FIFO shared by all workers in a pool
// push never blocks; pop blocks until a message is available. Receivers
// are mutually exclusive: each message is delivered to exactly one of
// the goroutines blocked in pop
type queue struct {
	// mu guards items and head
	mu sync.Mutex

	// ready wakes one blocked receiver per pushed message
	ready *sync.Cond

	// items holds pending messages; head indexes the next one to deliver
	// The slice is reset once fully drained so memory does not grow with
	// total throughput, only with peak backlog
	items []message
	head  int
}

// newQueue creates an empty queue
func newQueue() *queue {
	q := &queue{}
	q.ready = sync.NewCond(&q.mu)
	return q
}

// push appends a message and wakes one waiting receiver
func (q *queue) push(m message) {
	q.mu.Lock()
	q.items = append(q.items, m)
	q.ready.Signal()
	q.mu.Unlock()
}

// pop removes and returns the oldest message, blocking until one exists
func (q *queue) pop() message {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.head == len(q.items) {
		q.ready.Wait()
	}

	m := q.items[q.head]
	q.items[q.head] = message{}
	q.head++

	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	return m
}

// len returns the number of pending messages
func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
