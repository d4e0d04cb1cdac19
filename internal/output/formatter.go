package output

import (
	"fmt"
	"io"

	"github.com/textstat/textstat/internal/scan"
)

// Format represents the output format type
type Format string

const (
	// FormatTable outputs data in a table format (kubectl-style)
	FormatTable Format = "table"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid formats: table, json, yaml)", s)
	}
}

// Formatter defines the interface for output formatting
// All formatters must implement both the generic and the report methods
type Formatter interface {
	// Format outputs a single data item to the writer
	Format(w io.Writer, data interface{}) error

	// FormatReport outputs a scan report to the writer
	FormatReport(w io.Writer, report *scan.Report) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool

	// Wide enables the per-file statistics table
	Wide bool
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// WithWide enables wide output
func WithWide(wide bool) Option {
	return func(o *Options) {
		o.Wide = wide
	}
}

// NewFormatter creates a new formatter based on the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}

// reportDocument converts a report into the structure shared by the JSON
// and YAML formatters. Durations become strings and the character
// frequency maps are left out: they are unbounded and keyed by rune,
// which serializes poorly
func reportDocument(report *scan.Report) map[string]interface{} {
	summary := map[string]interface{}{
		"totalFiles":  report.TotalFiles,
		"done":        report.DoneCount,
		"errors":      report.ErrorCount,
		"canceled":    report.CanceledCount,
		"records":     report.RecordCount,
		"totalWords":  report.TotalWords,
		"totalLines":  report.TotalLines,
		"totalBytes":  report.TotalBytes,
		"totalErrors": report.TotalErrors,
		"elapsed":     report.Elapsed.String(),
	}

	files := make([]map[string]interface{}, 0, len(report.Records))
	for _, rec := range report.Records {
		item := map[string]interface{}{
			"filename": rec.Filename,
			"path":     rec.Path,
			"words":    rec.Stats.WordCount,
			"lines":    rec.Stats.LineCount,
			"bytes":    rec.Stats.SizeBytes,
			"duration": rec.Duration.String(),
		}

		if rec.Failed() {
			errs := make([]map[string]string, 0, len(rec.Errors))
			for _, e := range rec.Errors {
				errs = append(errs, map[string]string{
					"kind":    string(e.Kind),
					"message": e.Message,
				})
			}
			item["errors"] = errs
		}

		files = append(files, item)
	}

	return map[string]interface{}{
		"summary": summary,
		"files":   files,
	}
}
