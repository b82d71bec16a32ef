package lyrics

import (
	"bytes"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	binutil "github.com/simonhull/lyricsync/internal/binary"
	"github.com/simonhull/lyricsync/internal/types"
)

// checkEncoding rejects encoding bytes this package does not write.
func checkEncoding(enc types.TextEncoding) error {
	if enc != types.EncodingLatin1 && enc != types.EncodingUTF16 {
		return &types.InvalidEncodingByteError{Value: byte(enc)}
	}
	return nil
}

// checkText rejects invalid UTF-8 and reports the first rune of s that enc
// cannot carry. index identifies the record in the returned error
// (-1 = descriptor).
func checkText(s string, enc types.TextEncoding, index int) error {
	if !utf8.ValidString(s) {
		return &types.InvalidUTF8Error{Index: index}
	}
	for _, r := range s {
		if r == 0 || (enc == types.EncodingLatin1 && r > 0xFF) {
			return &types.UnencodableTextError{Index: index, Rune: r, Encoding: enc}
		}
	}
	return nil
}

// writeText writes s in enc followed by a terminator when terminated is set.
// UTF-16 strings are little-endian behind an FF FE byte-order mark.
func writeText(sw *binutil.SafeWriter, s string, enc types.TextEncoding, terminated bool) error {
	switch enc {
	case types.EncodingUTF16:
		if err := sw.WriteBytes([]byte{0xFF, 0xFE}); err != nil {
			return err
		}
		for _, u := range utf16.Encode([]rune(s)) {
			if err := binutil.WriteLE(sw, u); err != nil {
				return err
			}
		}
		if terminated {
			return sw.WriteBytes([]byte{0, 0})
		}
		return nil

	default:
		buf := make([]byte, 0, len(s)+1)
		for _, r := range s {
			buf = append(buf, byte(r))
		}
		if terminated {
			buf = append(buf, 0)
		}
		return sw.WriteBytes(buf)
	}
}

// findTerminator returns the index of the terminator for enc in data, or -1.
// UTF-16 terminators are searched on 2-byte boundaries.
func findTerminator(data []byte, enc types.TextEncoding) int {
	if enc == types.EncodingUTF16 {
		for i := 0; i+1 < len(data); i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1
	}
	return bytes.IndexByte(data, 0)
}

// terminatorSize returns the size of the null terminator for enc.
func terminatorSize(enc types.TextEncoding) int {
	if enc == types.EncodingUTF16 {
		return 2
	}
	return 1
}

// readText decodes a terminated string starting at off and returns the
// offset just past its terminator.
func readText(data []byte, off int, enc types.TextEncoding, field string) (string, int, error) {
	if off > len(data) {
		return "", 0, &types.TruncatedFrameError{Field: field, Offset: off, Len: len(data)}
	}
	idx := findTerminator(data[off:], enc)
	if idx < 0 {
		return "", 0, &types.TruncatedFrameError{Field: field, Offset: off, Len: len(data)}
	}
	return decodeText(data[off:off+idx], enc), off + idx + terminatorSize(enc), nil
}

// decodeText decodes an unterminated string.
func decodeText(data []byte, enc types.TextEncoding) string {
	if enc == types.EncodingUTF16 {
		return decodeUTF16(data)
	}

	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// decodeUTF16 decodes UTF-16 with an optional BOM. Without a BOM the data is
// read big-endian.
func decodeUTF16(data []byte) string {
	littleEndian := false
	if len(data) >= 2 {
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			littleEndian = true
			data = data[2:]
		case data[0] == 0xFE && data[1] == 0xFF:
			data = data[2:]
		}
	}
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		if littleEndian {
			u16[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
		} else {
			u16[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
		}
	}

	return string(utf16.Decode(u16))
}
