package render

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/boxshuffle/pkg/geom"
)

// Preview scales img to the display extent and strokes set, given in
// display space, on top of it.
func Preview(img image.Image, display geom.Extent, set geom.Set, style Style) *image.RGBA {
	w, h := int(display.Width), int(display.Height)
	if w < 1 || h < 1 {
		w, h = 1, 1
	}
	var base image.Image = img
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		base = imaging.Resize(img, w, h, imaging.Lanczos)
	}
	return paint(base, set, style)
}

// Composite burns set, given in source space, into a copy of img at its
// original resolution. style.Width is used as-is; scale it with
// [Style.Scaled] first.
func Composite(img image.Image, set geom.Set, style Style) *image.RGBA {
	return paint(img, set, style)
}

func paint(base image.Image, set geom.Set, style Style) *image.RGBA {
	// gg assumes a zero-origin raster; Clone rebases the image.
	dc := gg.NewContextForImage(imaging.Clone(base))
	if style.Fill {
		dc.SetColor(style.fill())
		for _, r := range set {
			dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
			dc.Fill()
		}
	}
	if style.Width > 0 {
		dc.SetColor(style.stroke())
		dc.SetLineWidth(style.Width)
		for _, r := range set {
			dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
			dc.Stroke()
		}
	}
	return dc.Image().(*image.RGBA)
}
