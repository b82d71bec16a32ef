// Command lyricsync embeds word-timed lyrics into MP3 files as ID3 SYLT
// frames and reads them back.
//
// Usage:
//
//	lyricsync embed -in song.mp3 -words words.json [-out out.mp3] [-edits edits.json] [-backup .bak] [-validate]
//	lyricsync dump song.mp3
//	lyricsync lrc song.mp3
//	lyricsync version
//
// Defaults come from LYRICSYNC_* environment variables, optionally loaded
// from a .env file in the working directory.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/simonhull/lyricsync"
	"github.com/simonhull/lyricsync/internal/config"
	"github.com/simonhull/lyricsync/internal/id3"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lyricsync: ")

	if err := config.LoadEnvFiles(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "embed":
		err = runEmbed(args, config.Load())
	case "dump":
		err = runDump(args, os.Stdout)
	case "lrc":
		err = runLRC(args, os.Stdout)
	case "version":
		info := lyricsync.GetVersionInfo()
		fmt.Printf("lyricsync %s (commit %s, built %s, %s)\n", info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  lyricsync embed -in <file.mp3> -words <words.json> [-out <file.mp3>] [-edits <edits.json>] [-backup <suffix>] [-validate]")
	fmt.Fprintln(w, "  lyricsync dump <file.mp3>")
	fmt.Fprintln(w, "  lyricsync lrc <file.mp3>")
	fmt.Fprintln(w, "  lyricsync version")
}

func runEmbed(args []string, cfg config.Config) error {
	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	in := fs.String("in", "", "source MP3")
	out := fs.String("out", "", "destination MP3 (default: overwrite -in)")
	wordsPath := fs.String("words", "", "JSON array of {text, start_ms, end_ms}")
	editsPath := fs.String("edits", "", "JSON object mapping word index to corrected text")
	backup := fs.String("backup", "", "keep the previous destination with this suffix")
	validate := fs.Bool("validate", false, "re-read the written file")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "ISO-639-2 language code")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "latin1 or utf16")
	fs.StringVar(&cfg.Descriptor, "descriptor", cfg.Descriptor, "content descriptor")
	fs.BoolVar(&cfg.WordLevel, "word-level", cfg.WordLevel, "one SYLT entry per word")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" || *wordsPath == "" {
		return fmt.Errorf("embed: -in and -words are required")
	}
	if *out == "" {
		*out = *in
	}

	words, err := loadWords(*wordsPath)
	if err != nil {
		return err
	}

	if *editsPath != "" {
		edits, err := loadEdits(*editsPath)
		if err != nil {
			return err
		}
		if words, err = lyricsync.ApplyTextCorrection(words, edits); err != nil {
			return fmt.Errorf("apply edits: %w", err)
		}
	}

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return err
	}
	if *backup != "" {
		opts = append(opts, lyricsync.WithBackup(*backup))
	}
	if *validate {
		opts = append(opts, lyricsync.WithValidation())
	}

	report, err := lyricsync.ExportFile(*in, *out, words, opts...)
	if err != nil {
		return err
	}

	for _, w := range report.Warnings {
		log.Printf("warning: %s", w)
	}
	log.Printf("%s: wrote ID3v2.%d tag (%d bytes), %d frames replaced", *out, report.Version, report.TagSize, report.Removed)
	return nil
}

func runDump(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("dump: expected one file")
	}

	if err := dumpTag(args[0], w); err != nil {
		return err
	}

	frame, err := lyricsync.ReadLyricsFile(args[0])
	var none *lyricsync.NoLyricsError
	if errors.As(err, &none) {
		fmt.Fprintln(w, "\nNo SYLT frame.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nSYLT:")
	fmt.Fprintf(w, "Language:    %s\n", frame.Language)
	fmt.Fprintf(w, "Encoding:    %s\n", frame.Encoding)
	fmt.Fprintf(w, "Format:      %s\n", frame.TimestampFormat)
	fmt.Fprintf(w, "Descriptor:  %q\n", frame.Descriptor)
	fmt.Fprintf(w, "Entries:     %d\n\n", len(frame.Entries))
	for i, e := range frame.Entries {
		fmt.Fprintf(w, "%4d  %8d ms  %q\n", i, e.Timestamp, e.Text)
	}
	return nil
}

// dumpTag prints the ID3v2 frame directory of the file at path.
func dumpTag(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	tag, err := id3.ReadTag(f, stat.Size(), path)
	if err != nil {
		return err
	}
	if tag.Created {
		fmt.Fprintln(w, "No ID3v2 tag.")
		return nil
	}

	fmt.Fprintf(w, "ID3v2.%d.%d  flags %02x  audio at %d  padding %d\n",
		tag.Header.Version, tag.Header.Revision, tag.Header.Flags, tag.AudioOffset, tag.Padding)
	if len(tag.Extended) > 0 {
		fmt.Fprintf(w, "  extended header, %d bytes\n", len(tag.Extended))
	}
	for _, fr := range tag.Frames {
		fmt.Fprintf(w, "  %s  %8d bytes  flags %04x\n", fr.ID, len(fr.Data), fr.Flags)
	}
	return nil
}

func runLRC(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("lrc: expected one file")
	}

	frame, err := lyricsync.ReadLyricsFile(args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, lyricsync.FormatLRC(*frame))
	return err
}

func loadWords(path string) ([]lyricsync.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}

	var words []lyricsync.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse words %s: %w", path, err)
	}
	return words, nil
}

func loadEdits(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edits: %w", err)
	}

	var edits map[int]string
	if err := json.Unmarshal(data, &edits); err != nil {
		return nil, fmt.Errorf("parse edits %s: %w", path, err)
	}
	return edits, nil
}
