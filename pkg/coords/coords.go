// Package coords translates between display space (the possibly downscaled
// canvas the user edits on) and source space (the original image).
//
// The horizontal and vertical factors are independent. In practice the
// display extent is produced by [FitExtent] and preserves the source aspect
// ratio, so both factors agree up to truncation.
package coords

import (
	"math"

	"github.com/matzehuels/boxshuffle/pkg/geom"
)

// DefaultMaxDisplay is the largest display box a source image is fitted into.
var DefaultMaxDisplay = geom.Extent{Width: 1280, Height: 720}

// Mapper converts rectangles between a display extent and a source extent.
type Mapper struct {
	Display geom.Extent
	Source  geom.Extent
}

// NewMapper returns a mapper for the given extents.
func NewMapper(display, source geom.Extent) Mapper {
	return Mapper{Display: display, Source: source}
}

// ScaleX is the horizontal display → source factor. It is 1 when either
// extent has no width.
func (m Mapper) ScaleX() float64 { return ratio(m.Source.Width, m.Display.Width) }

// ScaleY is the vertical display → source factor. It is 1 when either
// extent has no height.
func (m Mapper) ScaleY() float64 { return ratio(m.Source.Height, m.Display.Height) }

// ToSource maps a display-space rectangle into source space.
func (m Mapper) ToSource(r geom.Rect) geom.Rect {
	return r.Scale(m.ScaleX(), m.ScaleY())
}

// ToDisplay maps a source-space rectangle back into display space.
func (m Mapper) ToDisplay(r geom.Rect) geom.Rect {
	return r.Scale(1/m.ScaleX(), 1/m.ScaleY())
}

// ToSourceSet maps every rectangle of s into source space. s is not modified.
func (m Mapper) ToSourceSet(s geom.Set) geom.Set {
	out := make(geom.Set, len(s))
	for i, r := range s {
		out[i] = m.ToSource(r)
	}
	return out
}

// ToSourcePoint maps a display-space point into source space.
func (m Mapper) ToSourcePoint(p geom.Point) geom.Point {
	return geom.Point{X: p.X * m.ScaleX(), Y: p.Y * m.ScaleY()}
}

// StrokeWidth scales a display-space line width by the horizontal factor so
// that outlines keep their visual weight on the full-resolution export.
func (m Mapper) StrokeWidth(w float64) float64 { return w * m.ScaleX() }

// FitExtent returns the display extent for a source of the given size:
// unchanged when it fits inside box, otherwise scaled down by the smaller
// of the two ratios. The result is truncated to whole units, as a canvas
// element would, but never below one unit.
func FitExtent(source, box geom.Extent) geom.Extent {
	w, h := source.Width, source.Height
	if !box.Empty() && (w > box.Width || h > box.Height) {
		r := math.Min(box.Width/w, box.Height/h)
		w *= r
		h *= r
	}
	return geom.Extent{
		Width:  math.Max(1, math.Floor(w+truncSlack)),
		Height: math.Max(1, math.Floor(h+truncSlack)),
	}
}

// truncSlack absorbs float error so that 719.9999999 truncates to 720.
const truncSlack = 1e-6

func ratio(num, den float64) float64 {
	if num <= 0 || den <= 0 {
		return 1
	}
	return num / den
}
