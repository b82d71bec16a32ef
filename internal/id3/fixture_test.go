package id3

import (
	"bytes"
	"encoding/binary"

	binutil "github.com/simonhull/lyricsync/internal/binary"
)

// audio is a stand-in MPEG payload: a frame sync followed by filler.
var audio = append([]byte{0xFF, 0xFB, 0x90, 0x64}, bytes.Repeat([]byte{0xAA, 0x55}, 300)...)

// rawFrame encodes a frame header and payload for the given tag version.
func rawFrame(version byte, id string, flags uint16, data []byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(id)
	if version == 4 {
		s := binutil.EncodeSynchsafe(uint32(len(data)))
		buf.Write(s[:])
	} else {
		_ = binary.Write(buf, binary.BigEndian, uint32(len(data)))
	}
	_ = binary.Write(buf, binary.BigEndian, flags)
	buf.Write(data)
	return buf.Bytes()
}

type tagSpec struct {
	version byte
	flags   byte
	ext     []byte
	frames  [][]byte
	padding int
}

// body returns everything between header and footer.
func (s tagSpec) body() []byte {
	buf := &bytes.Buffer{}
	buf.Write(s.ext)
	for _, f := range s.frames {
		buf.Write(f)
	}
	buf.Write(make([]byte, s.padding))
	return buf.Bytes()
}

// bytes builds the full tag, footer included when flagged.
func (s tagSpec) bytes() []byte {
	body := s.body()
	size := binutil.EncodeSynchsafe(uint32(len(body)))

	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{s.version, 0, s.flags})
	buf.Write(size[:])
	buf.Write(body)
	if s.version == 4 && s.flags&flagFooter != 0 {
		buf.WriteString("3DI")
		buf.Write([]byte{s.version, 0, s.flags})
		buf.Write(size[:])
	}
	return buf.Bytes()
}

// file returns the tag followed by audio.
func (s tagSpec) file() []byte {
	return append(s.bytes(), audio...)
}
