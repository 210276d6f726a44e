package metrics

import (
	"strings"
	"unicode/utf8"
)

// FileStats holds size figures for one generated file.
type FileStats struct {
	Bytes int
	Runes int
	Lines int
}

// CountFile computes byte, rune and line counts for a file body.
func CountFile(s string) FileStats {
	return FileStats{Bytes: len(s), Runes: utf8.RuneCountInString(s), Lines: countLines(s)}
}

// countLines counts newline-terminated lines plus a trailing unterminated one.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// Totals accumulates FileStats across a run.
type Totals struct {
	Files int
	FileStats
}

// Add folds one file into the totals.
func (t *Totals) Add(f FileStats) {
	t.Files++
	t.Bytes += f.Bytes
	t.Runes += f.Runes
	t.Lines += f.Lines
}
