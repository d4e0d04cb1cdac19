// Package status tracks the lifecycle state of every file in a scan.
//
// Each path moves through at most one transition sequence:
// Queued → Running → Done or Error, or Queued → Canceled. Transitions are
// checked before they are written, so racing writers (a worker claiming a
// job versus the dispatcher's cancel sweep) resolve to exactly one winner
// and a path can never move backwards. A Running path can never become
// Canceled: once analysis has started it is allowed to finish.
package status

import (
	"sort"
	"sync"
)

// Status is the lifecycle state of a single file
type Status string

const (
	// Queued means the file is registered but no worker has claimed it
	Queued Status = "queued"

	// Running means a worker has claimed the file and analysis has started
	Running Status = "running"

	// Done means analysis finished without recording any errors
	Done Status = "done"

	// Error means analysis finished but recorded at least one error
	Error Status = "error"

	// Canceled means the file was skipped because cancellation was
	// requested before a worker claimed it
	Canceled Status = "canceled"
)

// Terminal reports whether the status is an end state
func (s Status) Terminal() bool {
	return s == Done || s == Error || s == Canceled
}

// Registry is a thread-safe state table keyed by file path
// The counts of all states always sum to the number of registered paths
type Registry struct {
	// mu guards states
	mu sync.Mutex

	// states maps each registered path to its current status
	states map[string]Status
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		states: make(map[string]Status),
	}
}

// Add registers paths in the Queued state
// A path that is already registered keeps its current state
func (r *Registry) Add(paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range paths {
		if _, ok := r.states[p]; !ok {
			r.states[p] = Queued
		}
	}
}

// MarkRunning transitions a path from Queued to Running
// It returns false when the path is unknown or in any other state; a
// false return during a scan means the cancel sweep claimed the path first
func (r *Registry) MarkRunning(path string) bool {
	return r.transition(path, Queued, Running)
}

// MarkDone transitions a path from Running to Done
func (r *Registry) MarkDone(path string) bool {
	return r.transition(path, Running, Done)
}

// MarkError transitions a path from Running to Error
func (r *Registry) MarkError(path string) bool {
	return r.transition(path, Running, Error)
}

// Cancel transitions a path from Queued to Canceled
// It returns true only when THIS call performed the transition, so among
// racing cancelers exactly one observes success. Running and terminal
// paths are never touched
func (r *Registry) Cancel(path string) bool {
	return r.transition(path, Queued, Canceled)
}

// CancelQueued cancels every path still in the Queued state and returns
// them sorted. The sweep is atomic: no path can be claimed mid-sweep
func (r *Registry) CancelQueued() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var swept []string
	for p, s := range r.states {
		if s == Queued {
			r.states[p] = Canceled
			swept = append(swept, p)
		}
	}

	sort.Strings(swept)
	return swept
}

// Get returns the current status of a path
func (r *Registry) Get(path string) (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[path]
	return s, ok
}

// Counts returns the number of paths in each state
// States with no paths are present with a zero count, so the values
// always sum to Total
func (r *Registry) Counts() map[Status]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := map[Status]int{
		Queued:   0,
		Running:  0,
		Done:     0,
		Error:    0,
		Canceled: 0,
	}
	for _, s := range r.states {
		counts[s]++
	}
	return counts
}

// Total returns the number of registered paths
func (r *Registry) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// TerminalCount returns how many paths have reached an end state
// During a scan this is the progress numerator
func (r *Registry) TerminalCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, s := range r.states {
		if s.Terminal() {
			n++
		}
	}
	return n
}

// transition performs a check-then-write state change under the lock
func (r *Registry) transition(path string, from, to Status) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.states[path] != from {
		return false
	}

	r.states[path] = to
	return true
}
