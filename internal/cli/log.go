// Package cli implements the boxshuffle command-line interface.
//
// # Commands
//
// The main commands are:
//   - generate: Lay out rectangles on an image and export the result
//   - edit: Interactive terminal editor with mouse drag and resize
//   - config: Print the effective configuration
//   - completion: Shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Library
// packages never log; their observability hooks are bound to the CLI logger
// before each command runs.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered composite (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks logs library events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnImageLoaded(srcW, srcH, dispW, dispH float64) {
	h.logger.Debug("image loaded", "source", size(srcW, srcH), "display", size(dispW, dispH))
}

func (h *logHooks) OnLayout(op string, count, overlaps int) {
	h.logger.Debug("layout", "op", op, "rects", count, "overlaps", overlaps)
}

func (h *logHooks) OnGestureStart(gesture string, index int) {
	h.logger.Debug("gesture start", "gesture", gesture, "index", index)
}

func (h *logHooks) OnGestureEnd(gesture string, index int) {
	h.logger.Debug("gesture end", "gesture", gesture, "index", index)
}

func (h *logHooks) OnExportStart(_ context.Context, sink, format string) {
	h.logger.Debug("export start", "sink", sink, "format", format)
}

func (h *logHooks) OnExportComplete(_ context.Context, sink, format string, n int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "sink", sink, "format", format, "err", err)
		return
	}
	h.logger.Debug("export complete", "sink", sink, "format", format, "bytes", n, "duration", d.Round(time.Millisecond))
}
