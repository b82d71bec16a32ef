package timing

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/simonhull/lyricsync/internal/types"
)

func lineTexts(lines []types.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out
}

func TestBuildLines(t *testing.T) {
	tests := []struct {
		name  string
		words []types.Word
		opts  LineOptions
		want  []string
	}{
		{
			name:  "single line",
			words: []types.Word{{Text: "hello", StartMs: 0, EndMs: 500}, {Text: "world", StartMs: 600, EndMs: 1100}},
			opts:  DefaultLineOptions(),
			want:  []string{"hello world"},
		},
		{
			name:  "split at silence",
			words: []types.Word{{Text: "hello", StartMs: 0, EndMs: 500}, {Text: "world", StartMs: 2500, EndMs: 3000}},
			opts:  DefaultLineOptions(),
			want:  []string{"hello", "world"},
		},
		{
			name:  "gap equal to threshold stays",
			words: []types.Word{{Text: "hello", StartMs: 0, EndMs: 500}, {Text: "world", StartMs: 2000, EndMs: 2500}},
			opts:  DefaultLineOptions(),
			want:  []string{"hello world"},
		},
		{
			name: "max words",
			words: []types.Word{
				{Text: "a", StartMs: 0, EndMs: 100},
				{Text: "b", StartMs: 100, EndMs: 200},
				{Text: "c", StartMs: 200, EndMs: 300},
				{Text: "d", StartMs: 300, EndMs: 400},
				{Text: "e", StartMs: 400, EndMs: 500},
			},
			opts: LineOptions{MaxWords: 2},
			want: []string{"a b", "c d", "e"},
		},
		{
			name: "max chars",
			words: []types.Word{
				{Text: "abcd", StartMs: 0, EndMs: 100},
				{Text: "efgh", StartMs: 100, EndMs: 200},
				{Text: "ij", StartMs: 200, EndMs: 300},
			},
			// "abcd efgh" is 9 cells
			opts: LineOptions{MaxChars: 9},
			want: []string{"abcd efgh", "ij"},
		},
		{
			name: "oversized word gets own line",
			words: []types.Word{
				{Text: "hi", StartMs: 0, EndMs: 100},
				{Text: "supercalifragilistic", StartMs: 100, EndMs: 900},
				{Text: "yo", StartMs: 900, EndMs: 1000},
			},
			opts: LineOptions{MaxChars: 5},
			want: []string{"hi", "supercalifragilistic", "yo"},
		},
		{
			name: "wide characters count double",
			words: []types.Word{
				{Text: "你好", StartMs: 0, EndMs: 300},
				{Text: "世界", StartMs: 300, EndMs: 600},
				{Text: "再见", StartMs: 600, EndMs: 900},
			},
			// 4 + 1 + 4 cells fit, the third word does not
			opts: LineOptions{MaxChars: 10},
			want: []string{"你好 世界", "再见"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := BuildLines(tt.words, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := lineTexts(lines); !slices.Equal(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildLines_Bounds(t *testing.T) {
	words := []types.Word{{Text: "hello", StartMs: 0, EndMs: 500}, {Text: "world", StartMs: 600, EndMs: 1100}}

	lines, err := BuildLines(words, DefaultLineOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].StartMs() != 0 || lines[0].EndMs() != 1100 {
		t.Errorf("line spans %d..%d, want 0..1100", lines[0].StartMs(), lines[0].EndMs())
	}
}

func TestBuildLines_Partition(t *testing.T) {
	var words []types.Word
	for i := range 57 {
		// A long pause every 9 words
		start := int64(i)*400 + int64(i/9)*2000
		words = append(words, types.Word{Text: strings.Repeat("w", 1+i%7), StartMs: start, EndMs: start + 300})
	}

	lines, err := BuildLines(words, LineOptions{MaxChars: 20, MaxWords: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var flat []types.Word
	for _, l := range lines {
		if len(l.Words) == 0 {
			t.Fatal("empty line produced")
		}
		if len(l.Words) > 4 {
			t.Errorf("line has %d words, max 4", len(l.Words))
		}
		flat = append(flat, l.Words...)
	}
	if !slices.Equal(flat, words) {
		t.Error("lines do not partition the input in order")
	}

	again, err := BuildLines(words, LineOptions{MaxChars: 20, MaxWords: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(lineTexts(again), lineTexts(lines)) {
		t.Error("BuildLines is not deterministic")
	}
}

func TestBuildLines_DoesNotAlias(t *testing.T) {
	words := []types.Word{{Text: "a", StartMs: 0, EndMs: 100}, {Text: "b", StartMs: 5000, EndMs: 5100}}

	lines, err := BuildLines(words, DefaultLineOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words[0].Text = "changed"
	if lines[0].Words[0].Text != "a" {
		t.Error("lines share storage with the input")
	}

	// Appending to one line must not overwrite the next
	lines[0].Words = append(lines[0].Words, types.Word{Text: "x"})
	if lines[1].Words[0].Text != "b" {
		t.Error("appending to a line clobbered the following line")
	}
}

func TestBuildLines_Empty(t *testing.T) {
	lines, err := BuildLines(nil, DefaultLineOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", lines)
	}
}

func TestBuildLines_TimingErrors(t *testing.T) {
	tests := []struct {
		name      string
		words     []types.Word
		index     int
		hasReason bool
	}{
		{
			name:  "overlap",
			words: []types.Word{{Text: "a", StartMs: 0, EndMs: 500}, {Text: "b", StartMs: 200, EndMs: 700}},
			index: 1,
		},
		{
			name:      "unsorted",
			words:     []types.Word{{Text: "a", StartMs: 1000, EndMs: 1000}, {Text: "b", StartMs: 0, EndMs: 100}},
			index:     1,
			hasReason: true,
		},
		{
			name:      "end before start",
			words:     []types.Word{{Text: "a", StartMs: 0, EndMs: 100}, {Text: "b", StartMs: 300, EndMs: 200}},
			index:     1,
			hasReason: true,
		},
		{
			name:      "negative start",
			words:     []types.Word{{Text: "a", StartMs: -5, EndMs: 100}},
			index:     0,
			hasReason: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLines(tt.words, DefaultLineOptions())

			var overlap *types.TimingOverlapError
			if !errors.As(err, &overlap) {
				t.Fatalf("expected *TimingOverlapError, got %T: %v", err, err)
			}
			if overlap.Index != tt.index {
				t.Errorf("index = %d, want %d", overlap.Index, tt.index)
			}
			if (overlap.Reason != "") != tt.hasReason {
				t.Errorf("reason = %q, want reason: %v", overlap.Reason, tt.hasReason)
			}
		})
	}
}

func TestBuildLines_TouchingWords(t *testing.T) {
	// A word may start exactly when the previous one ends
	words := []types.Word{{Text: "a", StartMs: 0, EndMs: 500}, {Text: "b", StartMs: 500, EndMs: 700}}
	if _, err := BuildLines(words, DefaultLineOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLineOptions_Defaults(t *testing.T) {
	got := LineOptions{SilenceGapMs: -1}.withDefaults()
	if got != DefaultLineOptions() {
		t.Errorf("withDefaults() = %+v, want %+v", got, DefaultLineOptions())
	}

	custom := LineOptions{SilenceGapMs: 200, MaxChars: 12, MaxWords: 3}
	if custom.withDefaults() != custom {
		t.Error("explicit options should be kept")
	}
}

func TestApplyTextCorrection(t *testing.T) {
	words := []types.Word{
		{Text: "helo", StartMs: 0, EndMs: 500},
		{Text: "wrld", StartMs: 600, EndMs: 1100},
	}

	got, err := ApplyTextCorrection(words, map[int]string{0: "hello", 1: "world"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []types.Word{
		{Text: "hello", StartMs: 0, EndMs: 500},
		{Text: "world", StartMs: 600, EndMs: 1100},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if words[0].Text != "helo" {
		t.Error("input was modified")
	}
}

func TestApplyTextCorrection_OutOfRange(t *testing.T) {
	words := []types.Word{{Text: "a", StartMs: 0, EndMs: 100}}

	got, err := ApplyTextCorrection(words, map[int]string{0: "b", 5: "x", 3: "y"})

	var oor *types.IndexOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected *IndexOutOfRangeError, got %T: %v", err, err)
	}
	if oor.Index != 3 || oor.Len != 1 {
		t.Errorf("got index %d len %d, want 3 and 1", oor.Index, oor.Len)
	}
	if got != nil {
		t.Error("no words should be returned on error")
	}
	if words[0].Text != "a" {
		t.Error("edit applied despite error")
	}

	if _, err := ApplyTextCorrection(words, map[int]string{-1: "x"}); !errors.As(err, &oor) {
		t.Errorf("negative index should fail, got %v", err)
	}
}
