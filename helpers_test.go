package lyricsync_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"

	"github.com/simonhull/lyricsync"
)

// audioPayload is a few bytes of fake MPEG audio.
var audioPayload = append([]byte{0xFF, 0xFB, 0x90, 0x64}, bytes.Repeat([]byte{0x5A}, 1024)...)

// sampleWords is "hello world" then "again" after a long pause.
var sampleWords = []lyricsync.Word{
	{Text: "hello", StartMs: 0, EndMs: 500},
	{Text: "world", StartMs: 600, EndMs: 1100},
	{Text: "again", StartMs: 4000, EndMs: 4500},
}

// taggedMP3 returns an ID3v2.3-tagged MP3 with a title and cover art.
func taggedMP3(tb testing.TB) []byte {
	tb.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(3)
	tag.SetTitle("Test Song")
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingISO,
		MimeType:    "image/png",
		PictureType: id3v2.PTFrontCover,
		Description: "cover",
		Picture:     bytes.Repeat([]byte{0x89}, 512),
	})

	buf := &bytes.Buffer{}
	if _, err := tag.WriteTo(buf); err != nil {
		tb.Fatalf("write fixture tag: %v", err)
	}
	buf.Write(audioPayload)
	return buf.Bytes()
}

// writeTemp writes data to a file in a fresh temp dir and returns its path.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// parse reads the tag of data with an independent ID3 library.
func parse(t *testing.T, data []byte) *id3v2.Tag {
	t.Helper()

	tag, err := id3v2.ParseReader(bytes.NewReader(data), id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	return tag
}
