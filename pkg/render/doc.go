// Package render draws rectangle layouts onto images.
//
// # Overview
//
// Two rasters are produced from the same set of rectangles:
//
//   - [Preview]: the source image downscaled to the display extent with the
//     display-space rectangles stroked on top. This is what the editor shows.
//   - [Composite]: the source image at its original resolution with the
//     rectangles (already mapped into source space) burned in. This is what
//     gets exported.
//
// Both use the same [Style]. For the composite the stroke width is scaled by
// the horizontal display-to-source factor, so outlines keep their visual
// weight:
//
//	frame, _ := sess.Frame()
//	style := render.DefaultStyle().Scaled(frame.Mapper.ScaleX())
//	out := render.Composite(frame.Image, frame.Rects, style)
//
// Drawing is done with github.com/fogleman/gg; resampling uses
// github.com/disintegration/imaging.
//
// Encoding and delivery of the result live in the [sink] subpackage.
//
// [sink]: github.com/matzehuels/boxshuffle/pkg/render/sink
package render
