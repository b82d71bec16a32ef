package types

import (
	"fmt"
	"strings"
)

// TextEncoding is the ID3v2 text-encoding indicator byte.
type TextEncoding byte

const (
	// EncodingLatin1 is ISO-8859-1, one byte per character.
	EncodingLatin1 TextEncoding = 0
	// EncodingUTF16 is UTF-16 with a byte-order mark before every string.
	EncodingUTF16 TextEncoding = 1
)

func (e TextEncoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	default:
		return fmt.Sprintf("encoding(%d)", byte(e))
	}
}

// TimestampFormat is the SYLT time-stamp format byte.
type TimestampFormat byte

const (
	// TimestampFrames counts MPEG frames. Decoded, never written.
	TimestampFrames TimestampFormat = 1
	// TimestampMilliseconds is absolute time in milliseconds.
	TimestampMilliseconds TimestampFormat = 2
)

func (f TimestampFormat) String() string {
	switch f {
	case TimestampFrames:
		return "MPEG frames"
	case TimestampMilliseconds:
		return "milliseconds"
	default:
		return fmt.Sprintf("format(%d)", byte(f))
	}
}

// ContentType is the SYLT content-type byte.
type ContentType byte

// Content types defined by ID3v2.3/2.4.
const (
	ContentOther ContentType = iota
	ContentLyrics
	ContentTranscription
	ContentMovement
	ContentEvents
	ContentChord
	ContentTrivia
	ContentWebpageURLs
	ContentImageURLs
)

// Entry is one synchronized text record.
type Entry struct {
	Text      string
	Timestamp uint32 // milliseconds
}

// SyncFrame is the in-memory form of a SYLT payload.
//
// Entries are ordered by Timestamp (ties keep their order). Entry texts carry
// their own separators: a leading "\n" starts a new line, a leading " "
// continues the current one, so Text() reproduces the full lyric.
type SyncFrame struct {
	Language        string
	Descriptor      string
	Entries         []Entry
	Encoding        TextEncoding
	TimestampFormat TimestampFormat
	ContentType     ContentType
}

// Text concatenates all entry texts.
func (f SyncFrame) Text() string {
	var sb strings.Builder
	for _, e := range f.Entries {
		sb.WriteString(e.Text)
	}
	return sb.String()
}

// LyricLine is a display line recovered from a SyncFrame.
type LyricLine struct {
	Text    string
	StartMs uint32
}

// Lines splits the entries back into display lines at newline markers.
func (f SyncFrame) Lines() []LyricLine {
	var lines []LyricLine
	var sb strings.Builder

	flush := func() {
		if len(lines) > 0 {
			lines[len(lines)-1].Text = strings.TrimSpace(sb.String())
		}
		sb.Reset()
	}

	for i, e := range f.Entries {
		text := e.Text
		starts := i == 0
		if trimmed := strings.TrimLeft(text, "\r\n"); trimmed != text {
			starts = true
			text = trimmed
		}
		if starts {
			flush()
			lines = append(lines, LyricLine{StartMs: e.Timestamp})
		}
		sb.WriteString(text)
	}
	flush()

	return lines
}
