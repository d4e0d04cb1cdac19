// Package output provides formatters for displaying textstat results.
//
// The package supports multiple output formats (table, JSON, YAML) and
// provides a unified interface for formatting both generic data and the
// final report of an analysis run. It also contains the progress printer
// that streams one line per finished file while a run is in flight.
//
// # Features
//
//   - Multiple output formats: table (kubectl-style), JSON, and YAML
//   - Color support with automatic TTY detection
//   - Configurable options (no-color, no-headers, wide mode)
//   - Live progress lines safe for concurrent workers
//   - Automatic indentation and formatting
//
// # Basic Usage
//
//	// Create a table formatter
//	formatter := output.NewFormatter(output.FormatTable)
//
//	// Format a finished report
//	report, _ := scan.Run(ctx, files, opts)
//	formatter.FormatReport(os.Stdout, report)
//
//	// Format a single data item
//	data := map[string]interface{}{"key": "value"}
//	formatter.Format(os.Stdout, data)
//
// # Options
//
// Formatters can be configured with functional options:
//
//	formatter := output.NewFormatter(
//	    output.FormatTable,
//	    output.WithNoColor(true),
//	    output.WithWide(true),
//	)
//
// # Formatters
//
// Table Formatter (kubectl-style):
//   - Summary block with per-state counts and aggregate totals
//   - Borderless error listing with tab-separated columns
//   - Wide mode adds a per-file statistics table
//
// JSON Formatter:
//   - Clean, indented JSON output
//   - Suitable for scripting and automation
//
// YAML Formatter:
//   - Human-readable YAML output
//   - Same document structure as the JSON formatter
//
// # Progress
//
// The Printer writes one line per file as it reaches a terminal state:
//
//	printer := output.NewPrinter(os.Stdout, false)
//	opts.Progress = printer.Print
//
// Print is safe to call from multiple goroutines; lines never interleave.
//
// # Color Support
//
// Colors are automatically enabled for TTY outputs and can be disabled with:
//   - WithNoColor(true) option
//   - Non-TTY output (pipes, redirects)
//
// Color scheme:
//   - File names: Cyan, Bold
//   - Success status: Green
//   - Error messages: Red, Bold
//   - Warnings: Yellow
//   - Headers: White, Bold
//   - Durations: Blue
package output
