package lyricsync

import (
	"github.com/simonhull/lyricsync/internal/id3"
	"github.com/simonhull/lyricsync/internal/lyrics"
	"github.com/simonhull/lyricsync/internal/types"
)

// Word is an alias to types.Word.
type Word = types.Word

// Line is an alias to types.Line.
type Line = types.Line

// SyncFrame is an alias to types.SyncFrame.
type SyncFrame = types.SyncFrame

// Entry is an alias to types.Entry.
type Entry = types.Entry

// LyricLine is an alias to types.LyricLine.
type LyricLine = types.LyricLine

// TextEncoding is an alias to types.TextEncoding.
type TextEncoding = types.TextEncoding

// TimestampFormat is an alias to types.TimestampFormat.
type TimestampFormat = types.TimestampFormat

// ContentType is an alias to types.ContentType.
type ContentType = types.ContentType

// Report is an alias to id3.Report.
type Report = id3.Report

// Re-export encoding and format constants.
const (
	EncodingLatin1 = types.EncodingLatin1
	EncodingUTF16  = types.EncodingUTF16

	TimestampFrames       = types.TimestampFrames
	TimestampMilliseconds = types.TimestampMilliseconds

	ContentOther         = types.ContentOther
	ContentLyrics        = types.ContentLyrics
	ContentTranscription = types.ContentTranscription
	ContentMovement      = types.ContentMovement
	ContentEvents        = types.ContentEvents
	ContentChord         = types.ContentChord
	ContentTrivia        = types.ContentTrivia
	ContentWebpageURLs   = types.ContentWebpageURLs
	ContentImageURLs     = types.ContentImageURLs
)

// Frame IDs written by this package.
const (
	FrameSYLT = lyrics.FrameSYLT
	FrameUSLT = lyrics.FrameUSLT
)
