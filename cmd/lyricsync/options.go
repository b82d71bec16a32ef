package main

import (
	"fmt"

	"github.com/simonhull/lyricsync"
	"github.com/simonhull/lyricsync/internal/config"
)

// optionsFromConfig maps loaded configuration onto export options.
func optionsFromConfig(cfg config.Config) ([]lyricsync.Option, error) {
	var enc lyricsync.TextEncoding
	switch cfg.Encoding {
	case "latin1", "iso-8859-1":
		enc = lyricsync.EncodingLatin1
	case "utf16", "utf-16":
		enc = lyricsync.EncodingUTF16
	default:
		return nil, fmt.Errorf("unknown encoding %q (want latin1 or utf16)", cfg.Encoding)
	}

	opts := []lyricsync.Option{
		lyricsync.WithEncoding(enc),
		lyricsync.WithLanguage(cfg.Language),
		lyricsync.WithDescriptor(cfg.Descriptor),
		lyricsync.WithSilenceGap(cfg.SilenceGapMs),
		lyricsync.WithMaxChars(cfg.MaxChars),
		lyricsync.WithMaxWords(cfg.MaxWords),
	}
	if cfg.WordLevel {
		opts = append(opts, lyricsync.WithWordLevel())
	}
	if !cfg.Unsynced {
		opts = append(opts, lyricsync.WithoutUnsyncedLyrics())
	}
	return opts, nil
}
