package lyricsync

import (
	"github.com/simonhull/lyricsync/internal/types"
)

// Input-data errors.
type (
	// TimingOverlapError is an alias to types.TimingOverlapError.
	TimingOverlapError = types.TimingOverlapError

	// IndexOutOfRangeError is an alias to types.IndexOutOfRangeError.
	IndexOutOfRangeError = types.IndexOutOfRangeError

	// EmptyTextError is an alias to types.EmptyTextError.
	EmptyTextError = types.EmptyTextError

	// UnsupportedLanguageCodeError is an alias to types.UnsupportedLanguageCodeError.
	UnsupportedLanguageCodeError = types.UnsupportedLanguageCodeError

	// UnencodableTextError is an alias to types.UnencodableTextError.
	UnencodableTextError = types.UnencodableTextError

	// InvalidUTF8Error is an alias to types.InvalidUTF8Error.
	InvalidUTF8Error = types.InvalidUTF8Error

	// UnsupportedTimestampFormatError is an alias to types.UnsupportedTimestampFormatError.
	UnsupportedTimestampFormatError = types.UnsupportedTimestampFormatError
)

// Format-limit errors.
type (
	// TimestampOverflowError is an alias to types.TimestampOverflowError.
	TimestampOverflowError = types.TimestampOverflowError

	// FrameTooLargeError is an alias to types.FrameTooLargeError.
	FrameTooLargeError = types.FrameTooLargeError
)

// Container-integrity errors.
type (
	// MalformedContainerError is an alias to types.MalformedContainerError.
	MalformedContainerError = types.MalformedContainerError

	// TruncatedFrameError is an alias to types.TruncatedFrameError.
	TruncatedFrameError = types.TruncatedFrameError

	// InvalidEncodingByteError is an alias to types.InvalidEncodingByteError.
	InvalidEncodingByteError = types.InvalidEncodingByteError

	// NoLyricsError is an alias to types.NoLyricsError.
	NoLyricsError = types.NoLyricsError
)

// Warning is an alias to types.Warning.
type Warning = types.Warning
