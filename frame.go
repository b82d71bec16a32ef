package lyricsync

import (
	"github.com/simonhull/lyricsync/internal/id3"
	"github.com/simonhull/lyricsync/internal/lyrics"
)

// EncodeOptions is an alias to lyrics.EncodeOptions.
type EncodeOptions = lyrics.EncodeOptions

// DefaultEncodeOptions returns Latin-1, "eng", lyrics content, one entry per
// line.
func DefaultEncodeOptions() EncodeOptions {
	return lyrics.DefaultEncodeOptions()
}

// FrameFromLines builds the SYLT frame for lines without serializing it.
func FrameFromLines(lines []Line, opts EncodeOptions) (SyncFrame, error) {
	return lyrics.FrameFromLines(lines, opts)
}

// Encode builds and serializes the SYLT payload for lines.
func Encode(lines []Line, opts EncodeOptions) ([]byte, error) {
	return lyrics.Encode(lines, opts)
}

// EncodeFrame serializes frame as a SYLT payload.
func EncodeFrame(frame SyncFrame) ([]byte, error) {
	return lyrics.EncodeSYLT(frame)
}

// DecodeFrame parses a SYLT payload. DecodeFrame(EncodeFrame(f)) returns f.
func DecodeFrame(data []byte) (SyncFrame, error) {
	return lyrics.DecodeSYLT(data)
}

// Embed returns a copy of container with every frame tagged frameID replaced
// by one frame carrying payload. All other bytes are preserved.
func Embed(container, payload []byte, frameID string) ([]byte, error) {
	return id3.Embed(container, payload, frameID)
}
