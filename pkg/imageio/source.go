package imageio

import (
	"bytes"
	"errors"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/geom"
)

// StdinPath selects standard input in [Load].
const StdinPath = "-"

// MaxInputBytes caps how much Decode will buffer.
const MaxInputBytes = 256 << 20

// Source is a decoded image together with where it came from.
type Source struct {
	Image  image.Image
	Format string // "png", "jpeg", "gif", "bmp", "tiff" or "webp"
	Path   string // empty when decoded from a reader
}

// Extent returns the pixel dimensions of the image.
func (s Source) Extent() geom.Extent {
	if s.Image == nil {
		return geom.Extent{}
	}
	b := s.Image.Bounds()
	return geom.Extent{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Load reads and decodes the image at path. The path "-" reads stdin.
func Load(path string) (Source, error) {
	if path == StdinPath {
		return decodeFrom(os.Stdin, StdinPath)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Source{}, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "image not found: %s", path)
		}
		return Source{}, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return decodeFrom(f, path)
}

// Decode reads an image from r. It does not close r.
func Decode(r io.Reader) (Source, error) {
	return decodeFrom(r, "")
}

func decodeFrom(r io.Reader, path string) (Source, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputBytes+1))
	if err != nil {
		return Source{}, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read image")
	}
	if len(data) > MaxInputBytes {
		return Source{}, apperr.New(apperr.ErrCodeInvalidInput, "image larger than %d bytes", MaxInputBytes)
	}

	format, err := Sniff(data)
	if err != nil {
		return Source{}, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Source{}, apperr.Wrap(apperr.ErrCodeDecodeFailed, err, "decode %s image", format)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return Source{}, apperr.New(apperr.ErrCodeDecodeFailed, "image has no pixels")
	}
	return Source{Image: img, Format: format, Path: path}, nil
}

// Sniff reports the registered image format of data without decoding pixel
// data. Content that is not a known image yields
// errors.ErrCodeUnsupportedImage.
func Sniff(data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperr.New(apperr.ErrCodeUnsupportedImage, "No image found")
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return "", apperr.New(apperr.ErrCodeUnsupportedImage, "No image found")
	}
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeDecodeFailed, err, "read image header")
	}
	return format, nil
}
