package lyrics

import (
	"bytes"

	binutil "github.com/simonhull/lyricsync/internal/binary"
	"github.com/simonhull/lyricsync/internal/types"
)

// Unsynced is the decoded form of a USLT frame.
type Unsynced struct {
	Language   string
	Descriptor string
	Text       string
	Encoding   types.TextEncoding
}

// EncodeUSLT serializes an unsynchronized lyrics frame. Players without SYLT
// support fall back to it.
//
// Format: [encoding][language(3)][descriptor\0][text]
func EncodeUSLT(u Unsynced) ([]byte, error) {
	if err := checkEncoding(u.Encoding); err != nil {
		return nil, err
	}
	if err := ValidateLanguage(u.Language); err != nil {
		return nil, err
	}
	if err := checkText(u.Descriptor, u.Encoding, -1); err != nil {
		return nil, err
	}
	if err := checkText(u.Text, u.Encoding, 0); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	sw := binutil.NewSafeWriter(buf)

	if err := sw.WriteBytes([]byte{byte(u.Encoding)}); err != nil {
		return nil, err
	}
	if err := sw.WriteString(u.Language); err != nil {
		return nil, err
	}
	if err := writeText(sw, u.Descriptor, u.Encoding, true); err != nil {
		return nil, err
	}
	if err := writeText(sw, u.Text, u.Encoding, false); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecodeUSLT parses a USLT payload. A trailing terminator after the text,
// written by some taggers, is ignored.
func DecodeUSLT(data []byte) (Unsynced, error) {
	if len(data) >= 1 {
		if err := checkEncoding(types.TextEncoding(data[0])); err != nil {
			return Unsynced{}, err
		}
	}
	if len(data) < 4 {
		return Unsynced{}, &types.TruncatedFrameError{Field: "header", Offset: 0, Len: len(data)}
	}

	u := Unsynced{
		Encoding: types.TextEncoding(data[0]),
		Language: string(data[1:4]),
	}

	desc, off, err := readText(data, 4, u.Encoding, "descriptor")
	if err != nil {
		return Unsynced{}, err
	}
	u.Descriptor = desc

	rest := data[off:]
	if idx := findTerminator(rest, u.Encoding); idx >= 0 {
		rest = rest[:idx]
	}
	u.Text = decodeText(rest, u.Encoding)

	return u, nil
}
