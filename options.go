package lyricsync

import (
	"github.com/simonhull/lyricsync/internal/lyrics"
	"github.com/simonhull/lyricsync/internal/timing"
)

// Option configures an export.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	out, err := lyricsync.Export(mp3, words,
//	    lyricsync.WithEncoding(lyricsync.EncodingUTF16),
//	    lyricsync.WithLanguage("deu"),
//	    lyricsync.WithMaxWords(6),
//	)
type Option func(*options)

// options holds configuration for an export.
type options struct {
	line     timing.LineOptions
	encode   lyrics.EncodeOptions
	unsynced bool // also write a USLT frame
	save     saveOptions
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		line:     timing.DefaultLineOptions(),
		encode:   lyrics.DefaultEncodeOptions(),
		unsynced: true,
		save:     defaultSaveOptions(),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLineOptions replaces all grouping thresholds at once.
func WithLineOptions(lo LineOptions) Option {
	return func(o *options) {
		o.line = lo
	}
}

// WithSilenceGap starts a new line when the silence between two words
// exceeds ms milliseconds. Default 1500.
func WithSilenceGap(ms int64) Option {
	return func(o *options) {
		o.line.SilenceGapMs = ms
	}
}

// WithMaxChars limits a line to n display cells. Default 40.
func WithMaxChars(n int) Option {
	return func(o *options) {
		o.line.MaxChars = n
	}
}

// WithMaxWords limits a line to n words. Default 10.
func WithMaxWords(n int) Option {
	return func(o *options) {
		o.line.MaxWords = n
	}
}

// WithEncoding selects the text encoding for both lyrics frames.
//
// Latin-1 is the default. Pick UTF-16 for lyrics outside ISO-8859-1.
func WithEncoding(enc TextEncoding) Option {
	return func(o *options) {
		o.encode.Encoding = enc
	}
}

// WithLanguage sets the ISO-639-2 language code (three lowercase letters).
// Default "eng".
func WithLanguage(code string) Option {
	return func(o *options) {
		o.encode.Language = code
	}
}

// WithDescriptor sets the content descriptor of both lyrics frames.
func WithDescriptor(desc string) Option {
	return func(o *options) {
		o.encode.Descriptor = desc
	}
}

// WithContentType sets the SYLT content type. Default ContentLyrics.
func WithContentType(ct ContentType) Option {
	return func(o *options) {
		o.encode.ContentType = ct
	}
}

// WithWordLevel writes one SYLT entry per word instead of one per line, for
// players that highlight word by word.
func WithWordLevel() Option {
	return func(o *options) {
		o.encode.WordLevel = true
	}
}

// WithoutUnsyncedLyrics skips the USLT frame that is otherwise written next
// to SYLT for players without synchronized lyrics support.
func WithoutUnsyncedLyrics() Option {
	return func(o *options) {
		o.unsynced = false
	}
}
