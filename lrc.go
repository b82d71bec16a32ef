package lyricsync

import "github.com/simonhull/lyricsync/internal/lrc"

// FormatLRC renders frame as LRC text, one "[mm:ss.xx]line" per line.
func FormatLRC(frame SyncFrame) string {
	return lrc.Format(frame.Lines())
}
