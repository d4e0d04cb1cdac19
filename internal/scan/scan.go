// Package scan orchestrates a full analysis run: file discovery, job
// dispatch onto the worker pool, state tracking, result collection, and
// the final report.
//
// Cancellation is modeled as a plain context. It is consulted in exactly
// two places: the dispatcher checks it before each submission, and a job
// checks it after a worker claims the job but before analysis starts. A
// file whose analysis has begun always runs to completion; cancellation
// only stops work that has not started.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/textstat/textstat/internal/analyze"
	"github.com/textstat/textstat/internal/executor"
	"github.com/textstat/textstat/internal/status"
)

// Event describes one file reaching a terminal state
type Event struct {
	// Path is the full path of the file
	Path string

	// Filename is its base name
	Filename string

	// Status is the terminal state the file reached
	Status status.Status

	// Duration is the analysis time (zero for canceled files)
	Duration time.Duration

	// Errors is the number of errors on the record (zero for canceled files)
	Errors int

	// Completed is how many files had reached a terminal state when the
	// event was emitted, Total how many the scan set out to process
	Completed int
	Total     int
}

// ProgressFunc receives one Event per finished or canceled file
// It is called from worker goroutines and must be safe for concurrent use
type ProgressFunc func(Event)

// Options configures a scan run
type Options struct {
	// Workers is the initial worker pool size; must be at least 1
	Workers int

	// ResizeTo, when positive, resizes the pool right after construction,
	// before any job is submitted
	ResizeTo int

	// Progress, when non-nil, receives an event per finished file
	Progress ProgressFunc

	// Logger for structured logging; slog.Default when nil
	Logger *slog.Logger
}

// dispatcher carries the per-run state shared between the submit loop and
// the job closures running on workers
type dispatcher struct {
	registry  *status.Registry
	collector *Collector
	progress  ProgressFunc
	total     int
	logger    *slog.Logger
}

// Run processes the given files and returns the aggregated report
// Every file ends in exactly one terminal state: analyzed files are Done
// or Error depending on their record, files skipped by a cancellation are
// Canceled. The worker pool is always drained and shut down before Run
// returns, even when the run is canceled
func Run(ctx context.Context, files []string, opts Options) (*Report, error) {
	if opts.Workers < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", opts.Workers)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()

	d := &dispatcher{
		registry:  status.NewRegistry(),
		collector: NewCollector(),
		progress:  opts.Progress,
		total:     len(files),
		logger:    logger,
	}
	d.registry.Add(files...)

	pool := executor.NewPool(opts.Workers, logger)
	if opts.ResizeTo > 0 && opts.ResizeTo != pool.Size() {
		logger.Info("applying worker count override", "workers", opts.ResizeTo)
		pool.Resize(opts.ResizeTo)
	}

	logger.Info("starting scan", "files", len(files), "workers", pool.Size())

	for _, path := range files {
		if ctx.Err() != nil {
			skipped := d.sweep()
			logger.Info("cancellation requested, skipping remaining files", "skipped", skipped)
			break
		}
		pool.Execute(d.job(ctx, path))
	}

	// Shutdown drains the queue: every submitted job runs, and jobs that
	// observe the cancellation mark their own paths Canceled
	pool.Shutdown()

	report := NewReport(d.collector.Records(), d.registry.Counts(), len(files), time.Since(start))

	logger.Info("scan finished",
		"done", report.DoneCount,
		"errors", report.ErrorCount,
		"canceled", report.CanceledCount,
		"duration", report.Elapsed)

	return report, nil
}

// job builds the closure a worker runs for one file
func (d *dispatcher) job(ctx context.Context, path string) executor.Job {
	return func() {
		// A claimed job checks for cancellation once, before analysis
		// starts; after that the file always runs to completion. The
		// MarkRunning failure path covers the race where the sweep
		// canceled this path between submission and the claim
		if ctx.Err() != nil || !d.registry.MarkRunning(path) {
			if d.registry.Cancel(path) {
				d.emit(path, status.Canceled, 0, 0)
			}
			return
		}

		rec := analyze.File(path)
		d.collector.Add(rec)

		st := status.Done
		if rec.Failed() {
			st = status.Error
			d.registry.MarkError(path)
		} else {
			d.registry.MarkDone(path)
		}

		d.emit(path, st, rec.Duration, len(rec.Errors))
	}
}

// sweep cancels every path still queued and emits their events
// Exactly one event is emitted per path because the registry reports each
// Queued to Canceled transition to a single caller
func (d *dispatcher) sweep() int {
	swept := d.registry.CancelQueued()
	for _, p := range swept {
		d.emit(p, status.Canceled, 0, 0)
	}
	return len(swept)
}

// emit delivers a progress event if a callback is configured
func (d *dispatcher) emit(path string, st status.Status, dur time.Duration, errs int) {
	if d.progress == nil {
		return
	}

	d.progress(Event{
		Path:      path,
		Filename:  filepath.Base(path),
		Status:    st,
		Duration:  dur,
		Errors:    errs,
		Completed: d.registry.TerminalCount(),
		Total:     d.total,
	})
}
