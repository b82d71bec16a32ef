package lyricsync

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/simonhull/lyricsync/internal/id3"
	"github.com/simonhull/lyricsync/internal/lyrics"
	"github.com/simonhull/lyricsync/internal/types"
)

// ReadLyrics finds the SYLT frame in an MP3 held in memory and decodes it.
// Returns *NoLyricsError if the file has none.
func ReadLyrics(container []byte) (*SyncFrame, error) {
	return ReadLyricsFrom(bytes.NewReader(container), int64(len(container)), "container")
}

// ReadLyricsFile reads the SYLT frame from the MP3 at path. Only the tag
// region is read.
func ReadLyricsFile(path string) (*SyncFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return ReadLyricsFrom(f, stat.Size(), path)
}

// ReadLyricsFrom reads the SYLT frame from the MP3 in r. If several exist,
// the first is returned.
func ReadLyricsFrom(r io.ReaderAt, size int64, path string) (*SyncFrame, error) {
	tag, err := id3.ReadTag(r, size, path)
	if err != nil {
		return nil, err
	}

	found := tag.Find(FrameSYLT)
	if len(found) == 0 {
		return nil, &types.NoLyricsError{Path: path}
	}

	frame, err := lyrics.DecodeSYLT(found[0].Data)
	if err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", path, FrameSYLT, err)
	}
	return &frame, nil
}
