// Package timing groups aligned words into display lines.
package timing

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/simonhull/lyricsync/internal/types"
)

// Default grouping thresholds.
const (
	DefaultSilenceGapMs = 1500
	DefaultMaxChars     = 40
	DefaultMaxWords     = 10
)

// LineOptions controls how words are grouped into lines.
// Zero or negative fields fall back to the defaults.
type LineOptions struct {
	SilenceGapMs int64 // split when the gap between words exceeds this
	MaxChars     int   // display cells per line
	MaxWords     int   // words per line
}

// DefaultLineOptions returns the default grouping thresholds.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		SilenceGapMs: DefaultSilenceGapMs,
		MaxChars:     DefaultMaxChars,
		MaxWords:     DefaultMaxWords,
	}
}

func (o LineOptions) withDefaults() LineOptions {
	d := DefaultLineOptions()
	if o.SilenceGapMs <= 0 {
		o.SilenceGapMs = d.SilenceGapMs
	}
	if o.MaxChars <= 0 {
		o.MaxChars = d.MaxChars
	}
	if o.MaxWords <= 0 {
		o.MaxWords = d.MaxWords
	}
	return o
}

// Validate checks that words are well formed, sorted by start, and do not
// overlap. The returned error names the first offending index.
func Validate(words []types.Word) error {
	for i, w := range words {
		if w.StartMs < 0 {
			return &types.TimingOverlapError{
				Index:   i,
				StartMs: w.StartMs,
				Reason:  fmt.Sprintf("negative start %dms", w.StartMs),
			}
		}
		if w.EndMs < w.StartMs {
			return &types.TimingOverlapError{
				Index:   i,
				StartMs: w.StartMs,
				Reason:  fmt.Sprintf("ends at %dms before it starts at %dms", w.EndMs, w.StartMs),
			}
		}
		if i == 0 {
			continue
		}

		prev := words[i-1]
		if w.StartMs < prev.StartMs {
			return &types.TimingOverlapError{
				Index:       i,
				StartMs:     w.StartMs,
				PrevStartMs: prev.StartMs,
				PrevEndMs:   prev.EndMs,
				Reason:      fmt.Sprintf("starts at %dms, before previous word's start %dms", w.StartMs, prev.StartMs),
			}
		}
		if w.StartMs < prev.EndMs {
			return &types.TimingOverlapError{
				Index:       i,
				StartMs:     w.StartMs,
				PrevStartMs: prev.StartMs,
				PrevEndMs:   prev.EndMs,
			}
		}
	}
	return nil
}

// BuildLines partitions words into display lines.
//
// A new line starts when the silence before a word exceeds SilenceGapMs,
// when adding the word would exceed MaxChars display cells, or when the
// current line already holds MaxWords words. A single word wider than
// MaxChars gets a line of its own.
//
// Every input word lands in exactly one line, in order. Empty input returns
// an empty slice.
func BuildLines(words []types.Word, opts LineOptions) ([]types.Line, error) {
	if err := Validate(words); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	owned := slices.Clone(words)
	lines := make([]types.Line, 0)

	start := 0
	width := 0
	for i, w := range owned {
		tw := wordWidth(w)

		if i > start {
			next := width
			if tw > 0 {
				if next > 0 {
					next++
				}
				next += tw
			}

			gap := w.StartMs - owned[i-1].EndMs
			if gap > opts.SilenceGapMs || next > opts.MaxChars || i-start >= opts.MaxWords {
				lines = append(lines, types.Line{Words: owned[start:i:i]})
				start = i
				width = 0
			} else {
				width = next
				continue
			}
		}

		width = tw
	}

	if start < len(owned) {
		lines = append(lines, types.Line{Words: owned[start:]})
	}

	return lines, nil
}

func wordWidth(w types.Word) int {
	return runewidth.StringWidth(strings.TrimSpace(w.Text))
}

// ApplyTextCorrection returns a copy of words with the text of the indexed
// words replaced. Timestamps are kept as they are.
//
// If any index is out of range nothing is applied and the lowest offending
// index is reported.
func ApplyTextCorrection(words []types.Word, edits map[int]string) ([]types.Word, error) {
	keys := slices.Sorted(maps.Keys(edits))
	for _, idx := range keys {
		if idx < 0 || idx >= len(words) {
			return nil, &types.IndexOutOfRangeError{Index: idx, Len: len(words)}
		}
	}

	out := slices.Clone(words)
	for _, idx := range keys {
		out[idx].Text = edits[idx]
	}
	return out, nil
}
