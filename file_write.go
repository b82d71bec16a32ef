package lyricsync

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/simonhull/lyricsync/internal/id3"
)

// ExportFile writes the MP3 at src to dst with lyrics for words embedded.
//
// This is an atomic operation: the result is written to a temporary file in
// dst's directory, synced, and renamed over dst. If any step fails, dst is
// left as it was and the temporary file is removed. src and dst may be the
// same path.
//
// Only the tag region of src is held in memory; the audio is streamed.
//
// Options can be provided to customize save behavior:
//
//	report, err := lyricsync.ExportFile("song.mp3", "song.mp3", words,
//	    lyricsync.WithBackup(".bak"),
//	    lyricsync.WithValidation(),
//	)
func ExportFile(src, dst string, words []Word, opts ...Option) (*Report, error) { //nolint:gocyclo // Atomic file operations require sequential steps
	o := applyOptions(opts)

	// Build frames before touching the filesystem so input errors leave no trace
	p, err := prepare(words, o)
	if err != nil {
		return nil, err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(dst), ".lyricsync-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	report, err := rewriteFile(tempFile, src, p.frames)
	if err != nil {
		return nil, err
	}

	if err := tempFile.Sync(); err != nil {
		return nil, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if o.save.backupSuffix != "" {
		if _, err := os.Stat(dst); err == nil {
			if err := os.Rename(dst, dst+o.save.backupSuffix); err != nil {
				return nil, fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, dst); err != nil {
		return nil, fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if o.save.preserveModTime {
		_ = os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	if o.save.validate {
		if err := validateWrittenFile(dst, p.frame); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
	}

	return report, nil
}

// rewriteFile streams src into tmp with frames embedded. The source handle
// is closed before returning so src may be replaced afterwards.
func rewriteFile(tmp *os.File, src string, frames []id3.Frame) (*Report, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	stat, err := in.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}

	report, err := id3.Rewrite(tmp, in, stat.Size(), src, frames...)
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	return report, nil
}

// validateWrittenFile re-reads the SYLT frame at path and compares it with
// the frame that was encoded.
func validateWrittenFile(path string, want SyncFrame) error {
	got, err := ReadLyricsFile(path)
	if err != nil {
		return fmt.Errorf("re-read: %w", err)
	}

	if got.Encoding != want.Encoding {
		return fmt.Errorf("encoding mismatch: got %s, want %s", got.Encoding, want.Encoding)
	}
	if got.Language != want.Language {
		return fmt.Errorf("language mismatch: got %q, want %q", got.Language, want.Language)
	}
	if got.Descriptor != want.Descriptor {
		return fmt.Errorf("descriptor mismatch: got %q, want %q", got.Descriptor, want.Descriptor)
	}
	if !slices.Equal(got.Entries, want.Entries) {
		return fmt.Errorf("entries mismatch: got %d entries, want %d", len(got.Entries), len(want.Entries))
	}

	return nil
}
