package scan

import (
	"fmt"
	"strings"
	"time"

	"github.com/textstat/textstat/internal/analyze"
	"github.com/textstat/textstat/internal/status"
)

// Report summarizes a completed scan
type Report struct {
	// TotalFiles is the number of files the scan set out to process
	TotalFiles int `json:"totalFiles" yaml:"totalFiles"`

	// DoneCount, ErrorCount, and CanceledCount partition TotalFiles by
	// final state
	DoneCount     int `json:"done" yaml:"done"`
	ErrorCount    int `json:"errors" yaml:"errors"`
	CanceledCount int `json:"canceled" yaml:"canceled"`

	// RecordCount is the number of files actually analyzed
	RecordCount int `json:"records" yaml:"records"`

	// Totals accumulated across every record, partial counts included
	TotalWords  int   `json:"totalWords" yaml:"totalWords"`
	TotalLines  int   `json:"totalLines" yaml:"totalLines"`
	TotalBytes  int64 `json:"totalBytes" yaml:"totalBytes"`
	TotalErrors int   `json:"totalErrors" yaml:"totalErrors"`

	// Elapsed is the wall-clock duration of the whole scan
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`

	// Records holds every analysis outcome in completion order
	Records []analyze.Record `json:"-" yaml:"-"`
}

// NewReport aggregates collected records and final state counts
func NewReport(records []analyze.Record, counts map[status.Status]int, totalFiles int, elapsed time.Duration) *Report {
	r := &Report{
		TotalFiles:    totalFiles,
		DoneCount:     counts[status.Done],
		ErrorCount:    counts[status.Error],
		CanceledCount: counts[status.Canceled],
		RecordCount:   len(records),
		Elapsed:       elapsed,
		Records:       records,
	}

	for _, rec := range records {
		r.TotalWords += rec.Stats.WordCount
		r.TotalLines += rec.Stats.LineCount
		r.TotalBytes += rec.Stats.SizeBytes
		r.TotalErrors += len(rec.Errors)
	}

	return r
}

// HasErrors reports whether any record carries errors
func (r *Report) HasErrors() bool {
	return r.TotalErrors > 0
}

// FailedRecords returns only the records that carry errors
func (r *Report) FailedRecords() []analyze.Record {
	failed := make([]analyze.Record, 0)
	for _, rec := range r.Records {
		if rec.Failed() {
			failed = append(failed, rec)
		}
	}
	return failed
}

// AverageDuration returns the mean per-file analysis time
func (r *Report) AverageDuration() time.Duration {
	if len(r.Records) == 0 {
		return 0
	}

	var total time.Duration
	for _, rec := range r.Records {
		total += rec.Duration
	}
	return total / time.Duration(len(r.Records))
}

// String returns a one-line human-readable summary
func (r *Report) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Done: %d, ", r.DoneCount))
	sb.WriteString(fmt.Sprintf("Error: %d, ", r.ErrorCount))
	sb.WriteString(fmt.Sprintf("Canceled: %d", r.CanceledCount))

	if r.RecordCount > 0 {
		sb.WriteString(fmt.Sprintf(", Words: %d", r.TotalWords))
		sb.WriteString(fmt.Sprintf(", Lines: %d", r.TotalLines))
		sb.WriteString(fmt.Sprintf(", Bytes: %d", r.TotalBytes))
	}

	return sb.String()
}
