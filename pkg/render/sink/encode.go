package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
)

// Format is a raster encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// DefaultJPEGQuality is used by [Encode] for JPEG output.
const DefaultJPEGQuality = 92

var encodings = map[Format]imaging.Format{
	FormatPNG:  imaging.PNG,
	FormatJPEG: imaging.JPEG,
}

// Encode encodes img in format f.
func Encode(img image.Image, f Format) ([]byte, error) {
	enc, ok := encodings[f]
	if !ok {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "unknown image format %q", f)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, enc, imaging.JPEGQuality(DefaultJPEGQuality)); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeEncodeFailed, err, "encode %s", f)
	}
	return buf.Bytes(), nil
}
