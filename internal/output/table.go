package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/textstat/textstat/internal/scan"
)

// TableFormatter formats output as a table (kubectl-style)
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format outputs a single data item as a table
func (f *TableFormatter) Format(w io.Writer, data interface{}) error {
	table := f.createTable(w)

	// Handle different data types
	switch v := data.(type) {
	case map[string]interface{}:
		return f.formatMap(table, v)
	case []map[string]interface{}:
		return f.formatMapSlice(table, v)
	case string:
		fmt.Fprintln(w, v)
		return nil
	default:
		// Fallback to simple string representation
		fmt.Fprintln(w, v)
		return nil
	}
}

// FormatReport outputs a scan report: in wide mode a per-file statistics
// table first, then the summary block, then the error listing
func (f *TableFormatter) FormatReport(w io.Writer, report *scan.Report) error {
	colors := NewColorScheme(w, f.options.NoColor)

	if f.options.Wide {
		f.printFiles(w, report, colors)
	}

	f.printSummary(w, report, colors)

	if report.HasErrors() {
		f.printErrors(w, report, colors)
	}

	return nil
}

// printSummary prints the aggregate totals of a finished run
func (f *TableFormatter) printSummary(w io.Writer, report *scan.Report, colors *ColorScheme) {
	banner := "=== SUMMARY ==="
	if !colors.Disabled {
		banner = colors.Header(banner)
	}
	fmt.Fprintln(w, banner)

	doneText := fmt.Sprintf("Done: %d", report.DoneCount)
	errorText := fmt.Sprintf("Error: %d", report.ErrorCount)
	canceledText := fmt.Sprintf("Canceled: %d", report.CanceledCount)
	if !colors.Disabled {
		doneText = colors.Success(doneText)
		if report.ErrorCount > 0 {
			errorText = colors.Error(errorText)
		}
		if report.CanceledCount > 0 {
			canceledText = colors.Warning(canceledText)
		}
	}
	fmt.Fprintf(w, "%s, %s, %s\n", doneText, errorText, canceledText)

	elapsedText := report.Elapsed.String()
	if !colors.Disabled {
		elapsedText = colors.Duration(elapsedText)
	}

	fmt.Fprintf(w, "Records collected: %d\n", report.RecordCount)
	fmt.Fprintf(w, "Total wall-clock time: %s\n", elapsedText)
	fmt.Fprintf(w, "Total words: %d\n", report.TotalWords)
	fmt.Fprintf(w, "Total lines: %d\n", report.TotalLines)
	fmt.Fprintf(w, "Total size (bytes): %d\n", report.TotalBytes)
	fmt.Fprintf(w, "Total errors: %d\n", report.TotalErrors)
}

// printErrors prints one row per recorded error, grouped by file
func (f *TableFormatter) printErrors(w io.Writer, report *scan.Report, colors *ColorScheme) {
	banner := "=== ERRORS (with context) ==="
	if !colors.Disabled {
		banner = colors.Error(banner)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, banner)

	table := f.createTable(w)
	if !f.options.NoHeaders {
		table.SetHeader(f.headerRow([]string{"FILE", "KIND", "ERROR"}, colors))
	}

	for _, rec := range report.FailedRecords() {
		file := rec.Path
		if !colors.Disabled {
			file = colors.Filename(file)
		}
		for _, recErr := range rec.Errors {
			table.Append([]string{file, string(recErr.Kind), recErr.Message})
		}
	}

	table.Render()
}

// printFiles prints the wide-mode per-file statistics table
func (f *TableFormatter) printFiles(w io.Writer, report *scan.Report, colors *ColorScheme) {
	if len(report.Records) == 0 {
		return
	}

	table := f.createTable(w)
	if !f.options.NoHeaders {
		table.SetHeader(f.headerRow([]string{"FILE", "WORDS", "LINES", "BYTES", "ERRORS", "DURATION"}, colors))
	}

	for _, rec := range report.Records {
		name := rec.Filename
		if !colors.Disabled {
			name = colors.Filename(name)
		}

		errorCount := fmt.Sprintf("%d", len(rec.Errors))
		if !colors.Disabled {
			errorCount = colors.StatusColor(rec.Failed())(errorCount)
		}

		duration := rec.Duration.String()
		if !colors.Disabled {
			duration = colors.Duration(duration)
		}

		table.Append([]string{
			name,
			fmt.Sprintf("%d", rec.Stats.WordCount),
			fmt.Sprintf("%d", rec.Stats.LineCount),
			fmt.Sprintf("%d", rec.Stats.SizeBytes),
			errorCount,
			duration,
		})
	}

	table.Render()
	fmt.Fprintln(w, "")
}

// headerRow applies the header color to every column label
func (f *TableFormatter) headerRow(headers []string, colors *ColorScheme) []string {
	if colors.Disabled {
		return headers
	}
	colored := make([]string, len(headers))
	for i, h := range headers {
		colored[i] = colors.Header(h)
	}
	return colored
}

// formatMap formats a map as a two-column table (key-value pairs)
func (f *TableFormatter) formatMap(table *tablewriter.Table, data map[string]interface{}) error {
	if !f.options.NoHeaders {
		table.SetHeader([]string{"KEY", "VALUE"})
	}

	for k, v := range data {
		table.Append([]string{k, fmt.Sprintf("%v", v)})
	}

	table.Render()
	return nil
}

// formatMapSlice formats a slice of maps as a table
func (f *TableFormatter) formatMapSlice(table *tablewriter.Table, data []map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}

	// Extract headers from the first map
	var headers []string
	for k := range data[0] {
		headers = append(headers, strings.ToUpper(k))
	}

	if !f.options.NoHeaders {
		table.SetHeader(headers)
	}

	// Add rows
	for _, item := range data {
		var row []string
		for _, h := range headers {
			key := strings.ToLower(h)
			row = append(row, fmt.Sprintf("%v", item[key]))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// createTable creates a new table with kubectl-style configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	// kubectl-style configuration
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t") // Tab-separated like kubectl
	table.SetNoWhiteSpace(true)

	return table
}
