// Package lyricsync turns word-level timing data into an ID3v2 SYLT
// (synchronized lyrics) frame and embeds it into an MP3 without disturbing
// any other metadata.
//
// # Quick Start
//
// Embedding lyrics into an MP3 already in memory:
//
//	words := []lyricsync.Word{
//		{Text: "hello", StartMs: 0, EndMs: 500},
//		{Text: "world", StartMs: 600, EndMs: 1100},
//	}
//	out, err := lyricsync.Export(mp3Bytes, words)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or streaming from one file to another:
//
//	report, err := lyricsync.ExportFile("song.mp3", "song.lyrics.mp3", words,
//	    lyricsync.WithEncoding(lyricsync.EncodingUTF16),
//	    lyricsync.WithValidation(),
//	)
//
// # Pipeline
//
//	[]Word ── BuildLines ──> []Line ── FrameFromLines ──> SyncFrame
//	SyncFrame ── EncodeFrame ──> SYLT payload ── Embed ──> MP3
//
// Each stage is usable on its own. DecodeFrame and ReadLyrics read a frame
// back for verification or re-editing.
//
// # Guarantees
//
// Embedding only replaces SYLT (and, unless disabled, USLT) frames. Every
// other frame, the extended header, the padding length and the audio payload
// are copied byte for byte. Embedding twice gives the same bytes as embedding
// once.
//
// Timestamps are always written in milliseconds. UTF-16 strings are written
// little-endian behind an FF FE byte-order mark.
//
// # Errors
//
// Errors are typed and can be matched with errors.As:
//
//	var overlap *lyricsync.TimingOverlapError
//	if errors.As(err, &overlap) {
//		fmt.Println("bad word at", overlap.Index)
//	}
//
// Nothing is retried. The same inputs always give the same result.
package lyricsync
