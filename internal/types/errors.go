package types

import "fmt"

// TimingOverlapError is returned when word or entry timing is out of order,
// overlapping, or otherwise impossible.
type TimingOverlapError struct {
	Reason      string
	Index       int
	StartMs     int64
	PrevStartMs int64
	PrevEndMs   int64
}

func (e *TimingOverlapError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("timing error at index %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("timing overlap at index %d: starts at %dms before previous word ends at %dms",
		e.Index, e.StartMs, e.PrevEndMs)
}

// IndexOutOfRangeError is returned when a text correction references a word
// that does not exist.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("word index %d out of range [0, %d)", e.Index, e.Len)
}

// EmptyTextError is returned when a synchronized-text record would be empty.
type EmptyTextError struct {
	Index int
}

func (e *EmptyTextError) Error() string {
	return fmt.Sprintf("record %d: text is empty", e.Index)
}

// UnsupportedLanguageCodeError is returned when a language code is not three
// lowercase ASCII letters.
type UnsupportedLanguageCodeError struct {
	Code string
}

func (e *UnsupportedLanguageCodeError) Error() string {
	return fmt.Sprintf("unsupported language code %q: want 3 lowercase letters", e.Code)
}

// UnencodableTextError is returned when text cannot be represented in the
// selected encoding. Index is -1 for the descriptor.
type UnencodableTextError struct {
	Index    int
	Rune     rune
	Encoding TextEncoding
}

func (e *UnencodableTextError) Error() string {
	what := fmt.Sprintf("record %d", e.Index)
	if e.Index < 0 {
		what = "descriptor"
	}
	return fmt.Sprintf("%s: rune %U cannot be encoded as %s", what, e.Rune, e.Encoding)
}

// InvalidUTF8Error is returned when text is not valid UTF-8 and so cannot be
// written without loss. Index is -1 for the descriptor.
type InvalidUTF8Error struct {
	Index int
}

func (e *InvalidUTF8Error) Error() string {
	if e.Index < 0 {
		return "descriptor: text is not valid UTF-8"
	}
	return fmt.Sprintf("record %d: text is not valid UTF-8", e.Index)
}

// UnsupportedTimestampFormatError is returned when a frame requests a
// timestamp format other than absolute milliseconds.
type UnsupportedTimestampFormatError struct {
	Format TimestampFormat
}

func (e *UnsupportedTimestampFormatError) Error() string {
	return fmt.Sprintf("unsupported timestamp format %s: only milliseconds are written", e.Format)
}

// TimestampOverflowError is returned when a timestamp does not fit in an
// unsigned 32-bit millisecond count.
type TimestampOverflowError struct {
	Index int
	Ms    int64
}

func (e *TimestampOverflowError) Error() string {
	return fmt.Sprintf("record %d: timestamp %dms outside 32-bit millisecond range", e.Index, e.Ms)
}

// FrameTooLargeError is returned when a frame or tag exceeds the size an
// ID3v2 header can declare.
type FrameTooLargeError struct {
	What string
	Size int64
	Max  int64
}

func (e *FrameTooLargeError) Error() string {
	return fmt.Sprintf("%s size %d exceeds maximum %d", e.What, e.Size, e.Max)
}

// MalformedContainerError is returned when the container's tag structure is
// unrecognized or inconsistent.
type MalformedContainerError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *MalformedContainerError) Error() string {
	return fmt.Sprintf("%s: malformed container at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// TruncatedFrameError is returned when a frame field runs past the end of
// the buffer.
type TruncatedFrameError struct {
	Field  string
	Offset int
	Len    int
}

func (e *TruncatedFrameError) Error() string {
	return fmt.Sprintf("truncated frame: %s at offset %d runs past end of %d-byte buffer",
		e.Field, e.Offset, e.Len)
}

// InvalidEncodingByteError is returned for a text-encoding indicator that is
// not Latin1 (0) or UTF-16 (1).
type InvalidEncodingByteError struct {
	Value byte
}

func (e *InvalidEncodingByteError) Error() string {
	return fmt.Sprintf("invalid text encoding byte 0x%02x", e.Value)
}

// NoLyricsError is returned when a container has no synchronized-lyrics frame.
type NoLyricsError struct {
	Path string
}

func (e *NoLyricsError) Error() string {
	return fmt.Sprintf("%s: no synchronized lyrics frame", e.Path)
}

// Warning represents a non-fatal issue encountered while rewriting a container.
//
// Warnings describe something the caller may want to surface, such as a tag
// being created because the source had none, or duplicate lyrics frames being
// dropped.
type Warning struct {
	// Stage where the warning occurred ("container", "lyrics")
	Stage string

	// Warning message
	Message string

	// Byte offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
