// Package lrc renders synchronized lines in the LRC text format.
package lrc

import (
	"fmt"
	"strings"

	"github.com/simonhull/lyricsync/internal/types"
)

// Timestamp formats ms as an LRC time tag, [mm:ss.xx]. Minutes are not
// wrapped, so tracks over an hour produce three-digit minutes.
func Timestamp(ms uint32) string {
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	hundredths := (ms % 1000) / 10
	return fmt.Sprintf("[%02d:%02d.%02d]", minutes, seconds, hundredths)
}

// Format renders one "[mm:ss.xx]text" line per lyric line, joined by "\n".
func Format(lines []types.LyricLine) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(Timestamp(l.StartMs))
		sb.WriteString(l.Text)
	}
	return sb.String()
}
