// Package analyze computes per-file text statistics.
//
// The single entry point, File, reads one file line by line and counts
// lines, whitespace-separated words, and individual characters. It never
// returns an error and never panics: filesystem and decoding failures are
// captured as structured errors on the returned Record, and a mid-file read
// failure stops the scan while keeping the counts accumulated so far.
package analyze

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Stats holds the accumulated text statistics for one file
type Stats struct {
	// WordCount is the number of whitespace-separated words
	WordCount int `json:"wordCount" yaml:"wordCount"`

	// LineCount is the number of lines, counting a final unterminated line
	LineCount int `json:"lineCount" yaml:"lineCount"`

	// SizeBytes is the file size reported by the filesystem, not the
	// number of bytes read
	SizeBytes int64 `json:"sizeBytes" yaml:"sizeBytes"`

	// CharFrequencies counts each character across all lines
	// Line terminators are stripped before counting and never appear here
	CharFrequencies map[rune]int `json:"-" yaml:"-"`
}

// Record is the complete analysis outcome for one file
type Record struct {
	// Filename is the base name of the analyzed file
	Filename string `json:"filename" yaml:"filename"`

	// Path is the path the file was analyzed under
	Path string `json:"path" yaml:"path"`

	// Stats are the accumulated counts, possibly partial when Errors is
	// non-empty
	Stats Stats `json:"stats" yaml:"stats"`

	// Errors lists every failure encountered while analyzing
	Errors []Error `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Duration is how long the analysis took
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Failed reports whether the record carries any errors
func (r Record) Failed() bool {
	return len(r.Errors) > 0
}

// File analyzes the file at path and returns its Record
// All failures are recorded on the Record: a stat failure leaves the size
// at zero and reading is still attempted, an open failure ends the
// analysis, and the first failed line read stops the scan with the counts
// accumulated up to that point
func File(path string) Record {
	start := time.Now()

	rec := Record{
		Filename: filepath.Base(path),
		Path:     path,
		Stats: Stats{
			CharFrequencies: make(map[rune]int),
		},
	}

	if info, err := os.Stat(path); err != nil {
		rec.Errors = append(rec.Errors, IOErrorf("failed to get metadata for %s: %v", path, err))
	} else {
		rec.Stats.SizeBytes = info.Size()
	}

	f, err := os.Open(path)
	if err != nil {
		rec.Errors = append(rec.Errors, IOErrorf("failed to open %s: %v", path, err))
		rec.Duration = time.Since(start)
		return rec
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')

		if err != nil && err != io.EOF {
			// First read failure stops the scan; counts from earlier
			// lines stay, the broken line contributes nothing
			rec.Errors = append(rec.Errors, IOErrorf("failed to read line from %s: %v", path, err))
			break
		}

		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if !utf8.ValidString(line) {
				rec.Errors = append(rec.Errors, IOErrorf("failed to read line from %s: invalid utf-8", path))
				break
			}

			rec.Stats.LineCount++
			rec.Stats.WordCount += len(strings.Fields(line))
			for _, ch := range line {
				rec.Stats.CharFrequencies[ch]++
			}
		}

		if err == io.EOF {
			break
		}
	}

	rec.Duration = time.Since(start)
	return rec
}
