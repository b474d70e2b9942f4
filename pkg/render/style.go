package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
)

// Default stroke settings.
const (
	DefaultColor       = "#ff0000"
	DefaultStrokeWidth = 2.0
	DefaultFillAlpha   = 0x40
)

// Style controls how rectangles are drawn.
type Style struct {
	Color string  // hex, #rgb or #rrggbb
	Width float64 // stroke width in the target raster's units
	Fill  bool    // also fill with a translucent Color
}

// DefaultStyle returns the red 2-unit outline.
func DefaultStyle() Style {
	return Style{Color: DefaultColor, Width: DefaultStrokeWidth}
}

// Scaled returns s with the stroke width multiplied by factor.
func (s Style) Scaled(factor float64) Style {
	s.Width *= factor
	return s
}

// Validate checks the color and width.
func (s Style) Validate() error {
	if err := apperr.ValidateHexColor(s.Color); err != nil {
		return err
	}
	if s.Width < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "stroke width must not be negative, got %g", s.Width)
	}
	return nil
}

func (s Style) stroke() color.NRGBA {
	c, err := ParseColor(s.Color)
	if err != nil {
		c, _ = ParseColor(DefaultColor)
	}
	return c
}

func (s Style) fill() color.NRGBA {
	c := s.stroke()
	c.A = DefaultFillAlpha
	return c
}

// ParseColor parses #rgb or #rrggbb into an opaque color.
func ParseColor(hex string) (color.NRGBA, error) {
	if err := apperr.ValidateHexColor(hex); err != nil {
		return color.NRGBA{}, err
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
