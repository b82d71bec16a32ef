package id3

import (
	"fmt"
	"io"
	"math"

	binutil "github.com/simonhull/lyricsync/internal/binary"
	"github.com/simonhull/lyricsync/internal/types"
)

// size returns the encoded size of f including its header.
func (f Frame) size() int64 {
	if f.raw != nil {
		return int64(len(f.raw))
	}
	return headerSize + int64(len(f.Data))
}

// bodySize returns the size declared in the tag header: everything between
// the header and the footer.
func (t *Tag) bodySize() int64 {
	n := int64(len(t.Extended)) + t.Padding
	for _, f := range t.Frames {
		n += f.size()
	}
	return n
}

// WriteTo writes the tag: header, extended header, frames in order, padding,
// and the ID3v2.4 footer when the source had one. Frames read from a file are
// written from their original bytes.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	body := t.bodySize()
	if body > binutil.MaxSynchsafe {
		return 0, &types.FrameTooLargeError{What: "ID3v2 tag", Size: body, Max: binutil.MaxSynchsafe}
	}

	sw := binutil.NewSafeWriter(w)
	if err := t.writeHeader(sw, "ID3", uint32(body)); err != nil {
		return sw.Offset(), err
	}
	if err := sw.WriteBytes(t.Extended); err != nil {
		return sw.Offset(), err
	}

	for _, f := range t.Frames {
		if err := t.writeFrame(sw, f); err != nil {
			return sw.Offset(), err
		}
	}

	if err := sw.WriteZeros(t.Padding); err != nil {
		return sw.Offset(), err
	}

	if t.Header.Version == 4 && t.Header.Flags&flagFooter != 0 {
		if err := t.writeHeader(sw, "3DI", uint32(body)); err != nil {
			return sw.Offset(), err
		}
	}

	return sw.Offset(), nil
}

func (t *Tag) writeHeader(sw *binutil.SafeWriter, magic string, size uint32) error {
	if err := sw.WriteString(magic); err != nil {
		return err
	}
	if err := sw.WriteBytes([]byte{t.Header.Version, t.Header.Revision, t.Header.Flags}); err != nil {
		return err
	}
	return binutil.WriteSynchsafe(sw, size)
}

// writeFrame writes f. New frames get a header sized for the tag version:
// synchsafe in ID3v2.4, plain big-endian in ID3v2.3.
func (t *Tag) writeFrame(sw *binutil.SafeWriter, f Frame) error {
	if f.raw != nil {
		return sw.WriteBytes(f.raw)
	}

	if !ValidFrameID(f.ID) {
		return fmt.Errorf("invalid frame ID %q", f.ID)
	}

	n := int64(len(f.Data))
	limit := int64(math.MaxUint32)
	if t.Header.Version == 4 {
		limit = binutil.MaxSynchsafe
	}
	if n > limit {
		return &types.FrameTooLargeError{What: "frame " + f.ID, Size: n, Max: limit}
	}

	if err := sw.WriteString(f.ID); err != nil {
		return err
	}
	if t.Header.Version == 4 {
		if err := binutil.WriteSynchsafe(sw, uint32(n)); err != nil {
			return err
		}
	} else {
		if err := binutil.Write(sw, uint32(n)); err != nil {
			return err
		}
	}
	if err := binutil.Write(sw, f.Flags); err != nil {
		return err
	}
	return sw.WriteBytes(f.Data)
}
