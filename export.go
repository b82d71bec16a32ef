package lyricsync

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/lyricsync/internal/id3"
	"github.com/simonhull/lyricsync/internal/lyrics"
	"github.com/simonhull/lyricsync/internal/timing"
)

// prepared is the output of the pure part of an export: the frame that will
// be written and the ID3 frames carrying it.
type prepared struct {
	frame  SyncFrame
	frames []id3.Frame
}

// prepare groups words, builds the SYLT frame and, unless disabled, the
// USLT fallback.
func prepare(words []Word, o *options) (*prepared, error) {
	lines, err := timing.BuildLines(words, o.line)
	if err != nil {
		return nil, fmt.Errorf("build lines: %w", err)
	}

	frame, err := lyrics.FrameFromLines(lines, o.encode)
	if err != nil {
		return nil, fmt.Errorf("build frame: %w", err)
	}

	payload, err := lyrics.EncodeSYLT(frame)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", FrameSYLT, err)
	}

	p := &prepared{
		frame:  frame,
		frames: []id3.Frame{id3.NewFrame(FrameSYLT, payload)},
	}

	if text := frame.Text(); o.unsynced && text != "" {
		uslt, err := lyrics.EncodeUSLT(lyrics.Unsynced{
			Encoding:   frame.Encoding,
			Language:   frame.Language,
			Descriptor: frame.Descriptor,
			Text:       text,
		})
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", FrameUSLT, err)
		}
		p.frames = append(p.frames, id3.NewFrame(FrameUSLT, uslt))
	}

	return p, nil
}

// Export embeds lyrics for words into the MP3 in container and returns the
// new file contents. container is not modified.
//
// Example:
//
//	out, err := lyricsync.Export(mp3, words, lyricsync.WithWordLevel())
//	if err != nil {
//		return err
//	}
//	os.WriteFile("out.mp3", out, 0o644)
func Export(container []byte, words []Word, opts ...Option) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(len(container) + 4096)

	if _, err := ExportTo(buf, bytes.NewReader(container), int64(len(container)), words, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportTo streams the MP3 in r to w with lyrics for words embedded. Only
// the tag region of r is held in memory.
func ExportTo(w io.Writer, r io.ReaderAt, size int64, words []Word, opts ...Option) (*Report, error) {
	o := applyOptions(opts)

	p, err := prepare(words, o)
	if err != nil {
		return nil, err
	}

	return id3.Rewrite(w, r, size, "container", p.frames...)
}

// Job is one file export for ExportMany.
type Job struct {
	Src     string
	Dst     string
	Words   []Word
	Options []Option
}

// ExportMany runs ExportFile for each job concurrently.
//
// Jobs run on up to runtime.NumCPU() goroutines. Reports are returned in job
// order. The first failure cancels jobs that have not started yet; files
// already written stay in place.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	reports, err := lyricsync.ExportMany(ctx, jobs...)
func ExportMany(ctx context.Context, jobs ...Job) ([]*Report, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	reports := make([]*Report, len(jobs))

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := ExportFile(job.Src, job.Dst, job.Words, job.Options...)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Src, err)
			}

			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
