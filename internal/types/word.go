// Package types provides the core data structures shared by the timing model,
// the lyrics frame codec, and the container writer.
package types

import "strings"

// Word is a single transcribed word with its position in the audio.
//
// Words come from an external alignment service. Once accepted, only Text
// may change (user correction); StartMs and EndMs never do.
type Word struct {
	Text    string `json:"text"`
	StartMs int64  `json:"start_ms"`
	EndMs   int64  `json:"end_ms"`
}

// Line is an ordered run of words displayed together and synchronized as
// one unit.
type Line struct {
	Words []Word
}

// StartMs returns the first word's start, or 0 for an empty line.
func (l Line) StartMs() int64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[0].StartMs
}

// EndMs returns the last word's end, or 0 for an empty line.
func (l Line) EndMs() int64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[len(l.Words)-1].EndMs
}

// Text returns the trimmed word texts joined by single spaces.
// Words that are blank after trimming are skipped.
func (l Line) Text() string {
	var sb strings.Builder
	for _, w := range l.Words {
		t := strings.TrimSpace(w.Text)
		if t == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t)
	}
	return sb.String()
}
