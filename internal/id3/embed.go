package id3

import (
	"bytes"
	"fmt"
	"io"

	"github.com/simonhull/lyricsync/internal/types"
)

// Report describes what a rewrite changed.
type Report struct {
	Warnings    []types.Warning
	Removed     int   // frames dropped because a replacement was supplied
	Added       int   // frames appended
	TagSize     int64 // bytes written for the tag, header and footer included
	AudioOffset int64 // where the audio payload started in the source
	Version     byte
}

// Rewrite copies the container in r to w with every frame whose ID matches
// one of frames replaced by the supplied frames.
//
// Replaced frames are removed wherever they sit; the new frames are appended
// after the kept ones in the order given. Kept frames, the extended header,
// the padding length and the audio payload are written back byte for byte.
// Only the tag region is held in memory; the audio is streamed.
func Rewrite(w io.Writer, r io.ReaderAt, size int64, path string, frames ...Frame) (*Report, error) {
	for _, f := range frames {
		if !ValidFrameID(f.ID) {
			return nil, fmt.Errorf("invalid frame ID %q", f.ID)
		}
	}

	tag, err := ReadTag(r, size, path)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Version:     tag.Header.Version,
		AudioOffset: tag.AudioOffset,
	}
	if tag.Created {
		report.Warnings = append(report.Warnings, types.Warning{
			Stage:   "container",
			Message: "source had no ID3v2 tag; created ID3v2.3 tag",
		})
	}

	seen := make(map[string]bool, len(frames))
	for _, f := range frames {
		if seen[f.ID] {
			continue
		}
		seen[f.ID] = true

		n := tag.Remove(f.ID)
		report.Removed += n
		if n > 1 {
			report.Warnings = append(report.Warnings, types.Warning{
				Stage:   "container",
				Message: fmt.Sprintf("removed %d %s frames", n, f.ID),
			})
		}
	}

	for _, f := range frames {
		tag.Frames = append(tag.Frames, Frame{ID: f.ID, Flags: f.Flags, Data: f.Data})
		report.Added++
	}

	n, err := tag.WriteTo(w)
	if err != nil {
		return nil, fmt.Errorf("write tag: %w", err)
	}
	report.TagSize = n

	audio := io.NewSectionReader(r, tag.AudioOffset, size-tag.AudioOffset)
	if _, err := io.Copy(w, audio); err != nil {
		return nil, fmt.Errorf("copy audio: %w", err)
	}

	return report, nil
}

// Embed returns a copy of container with any frame tagged frameID replaced
// by a single frame carrying payload.
func Embed(container, payload []byte, frameID string) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(len(container) + len(payload) + headerSize)

	_, err := Rewrite(buf, bytes.NewReader(container), int64(len(container)), "container", NewFrame(frameID, payload))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
