package sink

import (
	"context"
	"image"
	"io"
	"os"
	"time"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/observability"
)

// Sink receives encoded image bytes.
type Sink interface {
	// Name identifies the sink in logs and messages.
	Name() string
	// Deliver hands data, encoded as f, to the sink.
	Deliver(ctx context.Context, data []byte, f Format) error
}

// Export encodes img and delivers it to s. It returns the number of bytes
// delivered. ctx is checked before encoding and before delivery.
func Export(ctx context.Context, s Sink, img image.Image, f Format) (int, error) {
	return observe(ctx, s, f, func() (int, error) {
		if img == nil {
			return 0, apperr.New(apperr.ErrCodeNoImage, "No image to copy.")
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		data, err := Encode(img, f)
		if err != nil {
			return 0, err
		}
		return deliver(ctx, s, data, f)
	})
}

// Deliver hands already-encoded data to s. f describes the payload and may
// name a non-raster format such as "json" for sinks that accept it.
func Deliver(ctx context.Context, s Sink, data []byte, f Format) (int, error) {
	return observe(ctx, s, f, func() (int, error) {
		return deliver(ctx, s, data, f)
	})
}

func deliver(ctx context.Context, s Sink, data []byte, f Format) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.Deliver(ctx, data, f); err != nil {
		return 0, err
	}
	return len(data), nil
}

func observe(ctx context.Context, s Sink, f Format, fn func() (int, error)) (int, error) {
	hooks := observability.Export()
	hooks.OnExportStart(ctx, s.Name(), string(f))
	start := time.Now()
	n, err := fn()
	hooks.OnExportComplete(ctx, s.Name(), string(f), n, time.Since(start), err)
	return n, err
}

// File writes to a path, replacing any existing file.
type File struct {
	Path string
}

// NewFile returns a file sink for path.
func NewFile(path string) *File { return &File{Path: path} }

func (s *File) Name() string { return "file:" + s.Path }

func (s *File) Deliver(_ context.Context, data []byte, _ Format) error {
	if err := apperr.ValidateOutputPath(s.Path); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return apperr.Wrap(apperr.ErrCodeSinkRejected, err, "write %s", s.Path)
	}
	return nil
}

// Writer writes to an io.Writer.
type Writer struct {
	W     io.Writer
	Label string
}

// NewStdout returns a sink writing to standard output.
func NewStdout() *Writer { return &Writer{W: os.Stdout, Label: "stdout"} }

func (s *Writer) Name() string {
	if s.Label == "" {
		return "writer"
	}
	return s.Label
}

func (s *Writer) Deliver(_ context.Context, data []byte, _ Format) error {
	if _, err := s.W.Write(data); err != nil {
		return apperr.Wrap(apperr.ErrCodeSinkRejected, err, "write %s", s.Name())
	}
	return nil
}

// ForPath returns the sink for an output path: stdout for "-", otherwise a
// file.
func ForPath(path string) Sink {
	if path == "-" {
		return NewStdout()
	}
	return NewFile(path)
}
