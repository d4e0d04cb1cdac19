package scan

import (
	"sync"

	"github.com/textstat/textstat/internal/analyze"
)

// Collector is the append-only, thread-safe store of analysis records
// Workers add records as files finish; nothing is ever removed or
// reordered, so indexes remain stable for the lifetime of a scan
type Collector struct {
	// mu guards records
	mu sync.Mutex

	// records in completion order
	records []analyze.Record
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a record
func (c *Collector) Add(rec analyze.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
}

// Len returns the number of collected records
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Records returns a copy of the collected records
// The copy keeps callers from observing appends that land after the
// snapshot is taken
func (c *Collector) Records() []analyze.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]analyze.Record, len(c.records))
	copy(out, c.records)
	return out
}
