package lyricsync

import (
	"github.com/simonhull/lyricsync/internal/timing"
)

// LineOptions is an alias to timing.LineOptions.
type LineOptions = timing.LineOptions

// DefaultLineOptions returns the default grouping thresholds: 1500 ms of
// silence, 40 display cells, 10 words.
func DefaultLineOptions() LineOptions {
	return timing.DefaultLineOptions()
}

// BuildLines groups words into display lines.
//
// Words must be sorted by start and must not overlap; otherwise a
// *TimingOverlapError names the first offending index. Empty input yields an
// empty slice. The same words and options always give the same lines.
//
// Example:
//
//	lines, err := lyricsync.BuildLines(words, lyricsync.DefaultLineOptions())
func BuildLines(words []Word, opts LineOptions) ([]Line, error) {
	return timing.BuildLines(words, opts)
}

// ApplyTextCorrection returns a copy of words with user corrections applied.
// Only text changes; an edit for a missing index fails with
// *IndexOutOfRangeError and applies nothing.
func ApplyTextCorrection(words []Word, edits map[int]string) ([]Word, error) {
	return timing.ApplyTextCorrection(words, edits)
}
