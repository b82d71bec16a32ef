// Package id3 reads and rewrites the ID3v2 frame directory at the start of an
// MP3 file without decoding frames it does not own.
package id3

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	binutil "github.com/simonhull/lyricsync/internal/binary"
	"github.com/simonhull/lyricsync/internal/types"
)

// Header flags.
const (
	flagUnsynchronisation = 0x80
	flagExtendedHeader    = 0x40
	flagFooter            = 0x10
)

const headerSize = 10

// Header represents an ID3v2 tag header.
type Header struct {
	Version  byte // Major version (3 or 4)
	Revision byte
	Flags    byte
	Size     uint32 // Tag size excluding header and footer
}

// Frame is a single ID3v2 frame. Frames read from a file keep their original
// bytes and are written back unchanged.
type Frame struct {
	ID    string
	Data  []byte
	Flags uint16

	raw []byte // header + data as read; nil for new frames
}

// NewFrame returns a frame with the given ID and payload and no flags.
func NewFrame(id string, data []byte) Frame {
	return Frame{ID: id, Data: data}
}

// Tag is a parsed ID3v2 frame directory plus the layout needed to write it
// back.
type Tag struct {
	Header   Header
	Extended []byte // extended header bytes, verbatim
	Frames   []Frame
	Padding  int64

	// AudioOffset is where the audio payload starts in the source.
	AudioOffset int64

	// Created is set when the source had no tag and one was synthesized.
	Created bool
}

// Find returns all frames with the given ID in order.
func (t *Tag) Find(id string) []Frame {
	var out []Frame
	for _, f := range t.Frames {
		if f.ID == id {
			out = append(out, f)
		}
	}
	return out
}

// Remove drops every frame with the given ID and returns how many were removed.
func (t *Tag) Remove(id string) int {
	kept := t.Frames[:0]
	removed := 0
	for _, f := range t.Frames {
		if f.ID == id {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	clear(t.Frames[len(kept):])
	t.Frames = kept
	return removed
}

// ValidFrameID reports whether id is four characters from A-Z and 0-9.
func ValidFrameID(id string) bool {
	if len(id) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// hasMPEGSync reports whether b starts with an MPEG audio frame sync.
func hasMPEGSync(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFF && b[1]&0xE0 == 0xE0
}

// ReadTag parses the ID3v2 tag at the start of r. Only the tag region is
// read; the audio payload is never touched.
//
// A source that starts with an MPEG frame sync and has no tag yields an
// empty ID3v2.3 tag with Created set. Anything else that is not a
// well-formed ID3v2.3 or ID3v2.4 tag is a *types.MalformedContainerError.
func ReadTag(r io.ReaderAt, size int64, path string) (*Tag, error) { //nolint:gocyclo // Tag layout checks are sequential
	sr := binutil.NewSafeReader(r, size, path)
	malformed := func(off int64, format string, args ...any) error {
		return &types.MalformedContainerError{Path: path, Offset: off, Reason: fmt.Sprintf(format, args...)}
	}

	if size < 2 {
		return nil, malformed(0, "file too small")
	}

	magic := make([]byte, min(size, headerSize))
	if err := sr.ReadAt(magic, 0, "ID3v2 header"); err != nil {
		return nil, malformed(0, "read header: %v", err)
	}

	if len(magic) < 3 || string(magic[:3]) != "ID3" {
		if hasMPEGSync(magic) {
			return &Tag{Header: Header{Version: 3}, Created: true}, nil
		}
		return nil, malformed(0, "not an ID3v2 tagged MP3 (missing ID3 header and MPEG sync)")
	}
	if len(magic) < headerSize {
		return nil, malformed(0, "truncated ID3v2 header")
	}

	header := Header{Version: magic[3], Revision: magic[4], Flags: magic[5]}
	if header.Version != 3 && header.Version != 4 {
		return nil, malformed(3, "unsupported ID3v2 version: 2.%d", header.Version)
	}
	if header.Flags&flagUnsynchronisation != 0 {
		return nil, malformed(5, "unsynchronised tags cannot be rewritten in place")
	}
	tagSize, ok := binutil.DecodeSynchsafe(magic[6:10])
	if !ok {
		return nil, malformed(6, "tag size is not synchsafe")
	}
	header.Size = tagSize

	tag := &Tag{Header: header}
	tagEnd := int64(headerSize) + int64(tagSize)
	hasFooter := header.Version == 4 && header.Flags&flagFooter != 0
	tag.AudioOffset = tagEnd
	if hasFooter {
		tag.AudioOffset += headerSize
	}
	if tag.AudioOffset > size {
		return nil, malformed(6, "declared tag size %d exceeds file size %d", tagSize, size)
	}

	rd := binutil.NewReader(sr, headerSize)
	if header.Flags&flagExtendedHeader != 0 {
		ext, err := readExtendedHeader(rd, header.Version, tagEnd)
		if err != nil {
			return nil, malformed(headerSize, "%v", err)
		}
		tag.Extended = ext
	}

	for rd.Offset() < tagEnd {
		offset := rd.Offset()
		if tagEnd-offset < headerSize {
			if err := checkPadding(sr, offset, tagEnd); err != nil {
				return nil, malformed(offset, "%v", err)
			}
			tag.Padding = tagEnd - offset
			break
		}

		cr := binutil.NewChainReader(rd)
		id := cr.String(4, "frame ID")
		sizeField := binutil.ReadChained[uint32](cr, "frame size")
		flags := binutil.ReadChained[uint16](cr, "frame flags")
		if err := cr.Error(); err != nil {
			return nil, malformed(offset, "%v", err)
		}

		if id[0] == 0 {
			if err := checkPadding(sr, offset, tagEnd); err != nil {
				return nil, malformed(offset, "%v", err)
			}
			tag.Padding = tagEnd - offset
			break
		}
		if !ValidFrameID(id) {
			return nil, malformed(offset, "invalid frame ID %q", id)
		}

		frameSize := sizeField
		if header.Version == 4 {
			frameSize, ok = binutil.DecodeSynchsafeUint32(sizeField)
			if !ok {
				return nil, malformed(offset+4, "frame %s size is not synchsafe", id)
			}
		}

		if offset+headerSize+int64(frameSize) > tagEnd {
			return nil, malformed(offset, "frame %s (%d bytes) runs past end of tag at %d", id, frameSize, tagEnd)
		}

		data, err := rd.ReadBytes(int(frameSize), "frame "+id)
		if err != nil {
			return nil, malformed(offset, "%v", err)
		}

		tag.Frames = append(tag.Frames, readFrame(id, sizeField, flags, data))
	}

	if hasFooter {
		footer, err := binutil.NewReader(sr, tagEnd).ReadBytes(headerSize, "footer")
		if err != nil {
			return nil, malformed(tagEnd, "%v", err)
		}
		if string(footer[:3]) != "3DI" {
			return nil, malformed(tagEnd, "missing 3DI footer")
		}
		if !bytes.Equal(footer[3:], magic[3:]) {
			return nil, malformed(tagEnd, "footer does not match header")
		}
	}

	return tag, nil
}

// readFrame rebuilds the on-disk bytes of a parsed frame. The header fields
// are stored as read, so the result matches the source byte for byte.
func readFrame(id string, sizeField uint32, flags uint16, data []byte) Frame {
	raw := make([]byte, headerSize+len(data))
	copy(raw, id)
	binary.BigEndian.PutUint32(raw[4:8], sizeField)
	binary.BigEndian.PutUint16(raw[8:10], flags)
	copy(raw[headerSize:], data)

	return Frame{ID: id, Flags: flags, Data: raw[headerSize:], raw: raw}
}

// readExtendedHeader returns the extended header bytes verbatim.
// ID3v2.3 stores its size excluding the 4 size bytes; ID3v2.4 stores a
// synchsafe size including them.
func readExtendedHeader(rd *binutil.Reader, version byte, tagEnd int64) ([]byte, error) {
	sizeBuf, err := rd.ReadBytes(4, "extended header size")
	if err != nil {
		return nil, err
	}

	var extSize int64
	if version == 4 {
		v, ok := binutil.DecodeSynchsafe(sizeBuf)
		if !ok {
			return nil, fmt.Errorf("extended header size is not synchsafe")
		}
		extSize = int64(v)
	} else {
		extSize = int64(binary.BigEndian.Uint32(sizeBuf)) + 4
	}

	if extSize < 6 || headerSize+extSize > tagEnd {
		return nil, fmt.Errorf("extended header size %d does not fit in tag", extSize)
	}

	rest, err := rd.ReadBytes(int(extSize-4), "extended header")
	if err != nil {
		return nil, err
	}
	return append(sizeBuf, rest...), nil
}

// checkPadding verifies that [from, to) holds only zero bytes.
func checkPadding(sr *binutil.SafeReader, from, to int64) error {
	pad := make([]byte, to-from)
	if err := sr.ReadAt(pad, from, "padding"); err != nil {
		return err
	}
	for i, b := range pad {
		if b != 0 {
			return fmt.Errorf("non-zero byte in padding at offset %d", from+int64(i))
		}
	}
	return nil
}
