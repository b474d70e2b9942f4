// Package pkg provides the core libraries for Boxshuffle.
//
// # Overview
//
// Boxshuffle scatters rectangles over an image at random, non-overlapping
// positions, lets a pointer drag and resize them, and exports the marked-up
// image at its original resolution. The pkg directory is organized into
// three areas:
//
//  1. Core - geometry, placement, coordinate mapping and pointer interaction
//  2. Session - the state one editing surface owns
//  3. Infrastructure - image I/O, rendering, export sinks, configuration
//
// # Architecture
//
// The typical data flow:
//
//	Image file / stdin
//	         ↓
//	    [imageio] (sniff + decode)
//	         ↓
//	    [session] (fit to display, generate layout, replay pointer events)
//	         ↓
//	    [coords] (display → source space)
//	         ↓
//	    [render] + [render/sink] (composite, encode, deliver)
//	         ↓
//	    PNG/JPEG/JSON/YAML, clipboard
//
// # Quick Start
//
//	src, _ := imageio.Load("photo.jpg")
//
//	sess := session.New(session.WithCount(8))
//	sess.Load(src.Image)
//	sess.PointerDown(geom.Point{X: 30, Y: 30})
//	sess.PointerMove(geom.Point{X: 200, Y: 120})
//	sess.PointerUp()
//
//	frame, _ := sess.Frame()
//	style := render.DefaultStyle().Scaled(frame.Mapper.ScaleX())
//	img := render.Composite(frame.Image, frame.Rects, style)
//	_, err := sink.Export(ctx, sink.NewFile("boxed.png"), img, sink.FormatPNG)
//
// # Main Packages
//
// ## Core
//
// [geom] - Rectangles, points, extents and the clamping rules that keep a
// rectangle inside its canvas.
//
// [layout] - Random placement with a bounded retry budget, count changes
// that keep existing rectangles, and size redraws.
//
// [coords] - Fitting a source image into the display box and mapping
// rectangles between display and source space.
//
// [interact] - The pointer state machine (idle, dragging, resizing) and
// YAML pointer scripts.
//
// ## Session
//
// [session] - Owns the loaded image, the rectangle set, the generator and
// the machine. Shared by the headless pipeline and the terminal editor.
//
// ## Infrastructure
//
// [imageio] - Image loading and layout documents (JSON, YAML).
//
// [render] - Drawing rectangles over the preview and the full-resolution
// composite.
//
// [render/sink] - Raster encoding and delivery to files, stdout and the
// system clipboard.
//
// [pipeline] - Load → layout → render, used by the generate command.
//
// [config] - TOML configuration.
//
// [errors] - Coded errors with user-facing messages.
//
// [observability] - Hooks for layout, interaction and export events.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/geom
// [layout]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/layout
// [coords]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/coords
// [interact]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/interact
// [session]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/session
// [imageio]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/imageio
// [render]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/boxshuffle/pkg/observability
package pkg
