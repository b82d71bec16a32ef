// Package config loads export defaults for the command-line tool.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds export settings, loaded from environment variables.
type Config struct {
	Language   string
	Encoding   string // "latin1" or "utf16"
	Descriptor string

	// Line grouping
	SilenceGapMs int64
	MaxChars     int
	MaxWords     int

	WordLevel bool // one SYLT entry per word
	Unsynced  bool // also write a USLT frame
}

// LoadEnvFiles loads variables from the given .env files without overriding
// variables already set. With no arguments it loads ./.env if present.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		files = []string{".env"}
	}
	return godotenv.Load(files...)
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Language:   envStr("LYRICSYNC_LANGUAGE", "eng"),
		Encoding:   strings.ToLower(envStr("LYRICSYNC_ENCODING", "latin1")),
		Descriptor: envStr("LYRICSYNC_DESCRIPTOR", ""),

		SilenceGapMs: int64(envInt("LYRICSYNC_SILENCE_GAP_MS", 1500)),
		MaxChars:     envInt("LYRICSYNC_MAX_CHARS", 40),
		MaxWords:     envInt("LYRICSYNC_MAX_WORDS", 10),

		WordLevel: envBool("LYRICSYNC_WORD_LEVEL", false),
		Unsynced:  envBool("LYRICSYNC_UNSYNCED", true),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
