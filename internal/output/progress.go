package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/textstat/textstat/internal/scan"
	"github.com/textstat/textstat/internal/status"
)

// Printer writes one progress line per file that reaches a terminal
// state. Events arrive from worker goroutines, so Print serializes
// writes to keep lines from interleaving
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	colors *ColorScheme
}

// NewPrinter creates a progress printer writing to w
func NewPrinter(w io.Writer, noColor bool) *Printer {
	return &Printer{
		w:      w,
		colors: NewColorScheme(w, noColor),
	}
}

// Print writes the progress line for one finished or canceled file
func (p *Printer) Print(ev scan.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := ev.Filename
	if !p.colors.Disabled {
		name = p.colors.Filename(name)
	}

	if ev.Status == status.Canceled {
		canceled := "canceled"
		if !p.colors.Disabled {
			canceled = p.colors.Warning(canceled)
		}
		fmt.Fprintf(p.w, "[%d/%d] %s (%s) %s\n", ev.Completed, ev.Total, name, ev.Path, canceled)
		return
	}

	errorsText := fmt.Sprintf("errors:%d", ev.Errors)
	if !p.colors.Disabled && ev.Errors > 0 {
		errorsText = p.colors.Error(errorsText)
	}

	durationText := ev.Duration.String()
	if !p.colors.Disabled {
		durationText = p.colors.Duration(durationText)
	}

	fmt.Fprintf(p.w, "[%d/%d] %s (%s) in %s  %s\n", ev.Completed, ev.Total, name, ev.Path, durationText, errorsText)
}
