package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/lyricsync"
	"github.com/simonhull/lyricsync/internal/config"
)

// bareMP3 is a frame sync and filler with no tag.
var bareMP3 = append([]byte{0xFF, 0xFB, 0x90, 0x64}, bytes.Repeat([]byte{0x00}, 256)...)

func defaultConfig() config.Config {
	return config.Config{
		Language:     "eng",
		Encoding:     "latin1",
		SilenceGapMs: 1500,
		MaxChars:     40,
		MaxWords:     10,
		Unsynced:     true,
	}
}

func TestOptionsFromConfig_Encoding(t *testing.T) {
	for _, enc := range []string{"latin1", "iso-8859-1", "utf16", "utf-16"} {
		cfg := defaultConfig()
		cfg.Encoding = enc
		if _, err := optionsFromConfig(cfg); err != nil {
			t.Errorf("encoding %q: %v", enc, err)
		}
	}

	cfg := defaultConfig()
	cfg.Encoding = "utf8"
	if _, err := optionsFromConfig(cfg); err == nil {
		t.Error("utf8 should be rejected")
	}
}

func TestEmbedDumpLRC(t *testing.T) {
	dir := t.TempDir()
	mp3 := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(mp3, bareMP3, 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := json.Marshal([]lyricsync.Word{
		{Text: "helo", StartMs: 0, EndMs: 500},
		{Text: "world", StartMs: 600, EndMs: 1100},
		{Text: "again", StartMs: 4000, EndMs: 4500},
	})
	if err != nil {
		t.Fatal(err)
	}
	wordsPath := filepath.Join(dir, "words.json")
	if err := os.WriteFile(wordsPath, words, 0o644); err != nil {
		t.Fatal(err)
	}
	editsPath := filepath.Join(dir, "edits.json")
	if err := os.WriteFile(editsPath, []byte(`{"0": "hello"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	cfg.Encoding = "utf16"
	args := []string{"-in", mp3, "-words", wordsPath, "-edits", editsPath, "-lang", "eng", "-validate"}
	if err := runEmbed(args, cfg); err != nil {
		t.Fatalf("embed: %v", err)
	}

	var dump bytes.Buffer
	if err := runDump([]string{mp3}, &dump); err != nil {
		t.Fatalf("dump: %v", err)
	}
	for _, want := range []string{"ID3v2.3.0", "SYLT", "USLT", "UTF-16", "Entries:     2", `"hello world"`} {
		if !strings.Contains(dump.String(), want) {
			t.Errorf("dump output missing %q:\n%s", want, dump.String())
		}
	}

	var lrc bytes.Buffer
	if err := runLRC([]string{mp3}, &lrc); err != nil {
		t.Fatalf("lrc: %v", err)
	}
	if got, want := lrc.String(), "[00:00.00]hello world\n[00:04.00]again\n"; got != want {
		t.Errorf("lrc = %q, want %q", got, want)
	}
}

func TestEmbed_Errors(t *testing.T) {
	if err := runEmbed([]string{"-in", "x.mp3"}, defaultConfig()); err == nil {
		t.Error("missing -words should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "words.json")
	if err := os.WriteFile(bad, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runEmbed([]string{"-in", "x.mp3", "-words", bad}, defaultConfig()); err == nil {
		t.Error("invalid JSON should fail")
	}

	if err := runDump(nil, &bytes.Buffer{}); err == nil {
		t.Error("dump without a file should fail")
	}

	bare := filepath.Join(dir, "bare.mp3")
	if err := os.WriteFile(bare, bareMP3, 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runDump([]string{bare}, &out); err != nil {
		t.Fatalf("dump of untagged file: %v", err)
	}
	if !strings.Contains(out.String(), "No ID3v2 tag.") || !strings.Contains(out.String(), "No SYLT frame.") {
		t.Errorf("unexpected dump output:\n%s", out.String())
	}
}
