package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/imageio"
	"github.com/matzehuels/boxshuffle/pkg/render"
	"github.com/matzehuels/boxshuffle/pkg/render/sink"
	"github.com/matzehuels/boxshuffle/pkg/session"
)

// Runner executes pipeline stages and logs their progress.
//
// The Runner holds no per-run state. Multiple goroutines can use the same
// Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	src, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Source = src
	result.Stats.LoadTime = time.Since(loadStart)

	ext := src.Extent()
	r.Logger.Info("loaded image",
		"format", src.Format,
		"size", fmt.Sprintf("%.0fx%.0f", ext.Width, ext.Height),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	sess, err := r.Layout(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	result.Session = sess
	result.Rects = sess.Rects()
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Count = len(result.Rects)
	result.Stats.Overlaps = result.Rects.Overlaps()
	result.Stats.Events = len(opts.Events)

	r.Logger.Info("computed layout",
		"rects", result.Stats.Count,
		"overlaps", result.Stats.Overlaps,
		"events", result.Stats.Events,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	if err := r.Render(ctx, result, opts); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load decodes the input image.
func (r *Runner) Load(ctx context.Context, opts Options) (imageio.Source, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return imageio.Source{}, err
	}
	if err := ctx.Err(); err != nil {
		return imageio.Source{}, err
	}
	return imageio.Load(opts.Input)
}

// Layout creates a session for src, generates the initial layout and
// replays opts.Events against it.
func (r *Runner) Layout(ctx context.Context, src imageio.Source, opts Options) (*session.Session, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}

	if opts.Config.Bounds().Inverted() {
		opts.Logger.Warn("min height exceeds max height; using min for every rectangle",
			"min", opts.Config.MinHeight, "max", opts.Config.MaxHeight)
	}

	sess := opts.Config.NewSession()
	sess.Load(src.Image)

	for i, ev := range opts.Events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fb := sess.Apply(ev)
		opts.Logger.Debug("event", "n", i, "kind", ev.Kind, "x", ev.X, "y", ev.Y,
			"redraw", fb.Redraw, "cursor", fb.Cursor)
	}
	sess.PointerUp()
	return sess, nil
}

// Render draws result.Session and encodes every requested format into
// result.Artifacts.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) error {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return err
	}

	frame, err := result.Session.Frame()
	if err != nil {
		return err
	}

	style := opts.Config.Style()
	if opts.Preview {
		result.Image = render.Preview(frame.Image, result.Session.Display(), result.Session.Rects(), style)
	} else {
		result.Image = render.Composite(frame.Image, frame.Rects, style.Scaled(frame.Mapper.ScaleX()))
	}

	result.Artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := encode(result, format)
		if err != nil {
			return err
		}
		result.Artifacts[format] = data
		opts.Logger.Debug("encoded", "format", format, "bytes", len(data))
	}
	return nil
}

func encode(result *Result, format string) ([]byte, error) {
	if IsRaster(format) {
		return sink.Encode(result.Image, sink.Format(format))
	}
	f, err := imageio.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	doc := imageio.NewDocument(result.Source, result.Session.Mapper(), result.Rects)
	var buf bytes.Buffer
	if err := imageio.Write(doc, f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deliver sends the artifact for format to s.
func (r *Runner) Deliver(ctx context.Context, result *Result, format string, s sink.Sink) error {
	data, ok := result.Artifacts[format]
	if !ok {
		return apperr.New(apperr.ErrCodeInvalidFormat, "no %s artifact rendered", format)
	}
	n, err := sink.Deliver(ctx, s, data, sink.Format(format))
	if err != nil {
		return err
	}
	r.Logger.Debug("delivered", "sink", s.Name(), "format", format, "bytes", n)
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
