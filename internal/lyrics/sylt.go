// Package lyrics encodes and decodes the ID3v2 lyrics frames: SYLT
// (synchronized lyrics) and USLT (unsynchronized lyrics).
package lyrics

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	binutil "github.com/simonhull/lyricsync/internal/binary"
	"github.com/simonhull/lyricsync/internal/types"
)

// Frame IDs.
const (
	FrameSYLT = "SYLT"
	FrameUSLT = "USLT"
)

// DefaultLanguage is used when EncodeOptions.Language is empty.
const DefaultLanguage = "eng"

// EncodeOptions controls how lines become a SyncFrame.
type EncodeOptions struct {
	Language    string
	Descriptor  string
	Encoding    types.TextEncoding
	ContentType types.ContentType

	// WordLevel emits one entry per word instead of one per line.
	WordLevel bool
}

// DefaultEncodeOptions returns options for Latin-1 English lyrics, one entry
// per line.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Language:    DefaultLanguage,
		Encoding:    types.EncodingLatin1,
		ContentType: types.ContentLyrics,
	}
}

// ValidateLanguage checks that code is exactly three lowercase ASCII letters.
func ValidateLanguage(code string) error {
	if len(code) != 3 {
		return &types.UnsupportedLanguageCodeError{Code: code}
	}
	for i := 0; i < 3; i++ {
		if code[i] < 'a' || code[i] > 'z' {
			return &types.UnsupportedLanguageCodeError{Code: code}
		}
	}
	return nil
}

// FrameFromLines builds a SyncFrame from display lines.
//
// Entries that begin a line after the first are prefixed with "\n"; in word
// level, words continuing a line are prefixed with " ". Record indexes in
// errors refer to lines, or to words counted across all lines in word level.
func FrameFromLines(lines []types.Line, opts EncodeOptions) (types.SyncFrame, error) {
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}

	frame := types.SyncFrame{
		Encoding:        opts.Encoding,
		Language:        opts.Language,
		TimestampFormat: types.TimestampMilliseconds,
		ContentType:     opts.ContentType,
		Descriptor:      opts.Descriptor,
	}
	if err := checkHeader(frame); err != nil {
		return types.SyncFrame{}, err
	}

	if !opts.WordLevel {
		if len(lines) > 0 {
			frame.Entries = make([]types.Entry, 0, len(lines))
		}
		for i, line := range lines {
			text := line.Text()
			if text == "" {
				return types.SyncFrame{}, &types.EmptyTextError{Index: i}
			}
			ts, err := timestamp(line.StartMs(), i)
			if err != nil {
				return types.SyncFrame{}, err
			}
			if i > 0 {
				text = "\n" + text
			}
			frame.Entries = append(frame.Entries, types.Entry{Text: text, Timestamp: ts})
		}
		return frame, nil
	}

	idx := 0
	for li, line := range lines {
		for wi, w := range line.Words {
			text := strings.TrimSpace(w.Text)
			if text == "" {
				return types.SyncFrame{}, &types.EmptyTextError{Index: idx}
			}
			ts, err := timestamp(w.StartMs, idx)
			if err != nil {
				return types.SyncFrame{}, err
			}
			switch {
			case li > 0 && wi == 0:
				text = "\n" + text
			case wi > 0:
				text = " " + text
			}
			frame.Entries = append(frame.Entries, types.Entry{Text: text, Timestamp: ts})
			idx++
		}
	}
	return frame, nil
}

func timestamp(ms int64, index int) (uint32, error) {
	if ms < 0 || ms > math.MaxUint32 {
		return 0, &types.TimestampOverflowError{Index: index, Ms: ms}
	}
	return uint32(ms), nil
}

// checkHeader validates the fixed SYLT fields.
func checkHeader(frame types.SyncFrame) error {
	if err := checkEncoding(frame.Encoding); err != nil {
		return err
	}
	if err := ValidateLanguage(frame.Language); err != nil {
		return err
	}
	if frame.TimestampFormat != types.TimestampMilliseconds {
		return &types.UnsupportedTimestampFormatError{Format: frame.TimestampFormat}
	}
	return checkText(frame.Descriptor, frame.Encoding, -1)
}

// EncodeSYLT serializes frame as a SYLT payload (without the frame header).
//
// Layout:
//
//	[1 byte]          Text encoding
//	[3 bytes]         Language
//	[1 byte]          Timestamp format (always 2, milliseconds)
//	[1 byte]          Content type
//	[terminated]      Content descriptor
//	repeated:
//	  [terminated]    Text
//	  [4 bytes]       Timestamp, big-endian
func EncodeSYLT(frame types.SyncFrame) ([]byte, error) {
	if err := checkHeader(frame); err != nil {
		return nil, err
	}

	for i, e := range frame.Entries {
		if strings.TrimSpace(e.Text) == "" {
			return nil, &types.EmptyTextError{Index: i}
		}
		if err := checkText(e.Text, frame.Encoding, i); err != nil {
			return nil, err
		}
		if i > 0 && e.Timestamp < frame.Entries[i-1].Timestamp {
			return nil, &types.TimingOverlapError{
				Index:   i,
				StartMs: int64(e.Timestamp),
				Reason: fmt.Sprintf("timestamp %dms before previous entry's %dms",
					e.Timestamp, frame.Entries[i-1].Timestamp),
			}
		}
	}

	buf := &bytes.Buffer{}
	sw := binutil.NewSafeWriter(buf)

	header := []byte{byte(frame.Encoding), 0, 0, 0, byte(types.TimestampMilliseconds), byte(frame.ContentType)}
	copy(header[1:4], frame.Language)
	if err := sw.WriteBytes(header); err != nil {
		return nil, err
	}
	if err := writeText(sw, frame.Descriptor, frame.Encoding, true); err != nil {
		return nil, err
	}

	for _, e := range frame.Entries {
		if err := writeText(sw, e.Text, frame.Encoding, true); err != nil {
			return nil, err
		}
		if err := binutil.Write(sw, e.Timestamp); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// Encode builds a frame from grouped lines and serializes it.
func Encode(lines []types.Line, opts EncodeOptions) ([]byte, error) {
	frame, err := FrameFromLines(lines, opts)
	if err != nil {
		return nil, err
	}
	return EncodeSYLT(frame)
}

// DecodeSYLT parses a SYLT payload. It is the inverse of EncodeSYLT and also
// accepts frames written by other taggers (big-endian UTF-16, frame-count
// timestamps). A payload with no records decodes to nil Entries.
func DecodeSYLT(data []byte) (types.SyncFrame, error) {
	if len(data) >= 1 {
		if err := checkEncoding(types.TextEncoding(data[0])); err != nil {
			return types.SyncFrame{}, err
		}
	}
	if len(data) < 6 {
		return types.SyncFrame{}, &types.TruncatedFrameError{Field: "header", Offset: 0, Len: len(data)}
	}

	frame := types.SyncFrame{
		Encoding:        types.TextEncoding(data[0]),
		Language:        string(data[1:4]),
		TimestampFormat: types.TimestampFormat(data[4]),
		ContentType:     types.ContentType(data[5]),
	}

	desc, off, err := readText(data, 6, frame.Encoding, "descriptor")
	if err != nil {
		return types.SyncFrame{}, err
	}
	frame.Descriptor = desc

	for off < len(data) {
		text, next, err := readText(data, off, frame.Encoding, fmt.Sprintf("entry %d text", len(frame.Entries)))
		if err != nil {
			return types.SyncFrame{}, err
		}
		if next+4 > len(data) {
			return types.SyncFrame{}, &types.TruncatedFrameError{
				Field:  fmt.Sprintf("entry %d timestamp", len(frame.Entries)),
				Offset: next,
				Len:    len(data),
			}
		}
		frame.Entries = append(frame.Entries, types.Entry{
			Text:      text,
			Timestamp: binary.BigEndian.Uint32(data[next : next+4]),
		})
		off = next + 4
	}

	return frame, nil
}
