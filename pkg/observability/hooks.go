// Package observability provides hooks for logging and metrics.
//
// Library packages (session, pipeline, render/sink) never log. They report
// events through the hook interfaces defined here, and the application
// registers implementations at startup. Layout and interaction events come
// from synchronous pointer handlers and carry no context; export events do.
// The defaults are no-ops, so the libraries stay silent when used on their
// own.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetExportHooks(&myExportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayout("shuffle", len(set), set.Overlaps())
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events when the rectangle set is generated or
// reshaped.
type LayoutHooks interface {
	// OnImageLoaded records a new source image and the display extent it
	// was fitted into.
	OnImageLoaded(srcW, srcH, dispW, dispH float64)

	// OnLayout records a layout operation ("shuffle", "count", "rescale")
	// with the resulting rectangle count and number of overlapping pairs.
	OnLayout(op string, count, overlaps int)
}

// =============================================================================
// Interaction Hooks
// =============================================================================

// InteractionHooks receives pointer gesture boundaries.
type InteractionHooks interface {
	// OnGestureStart records a press that started a "drag" or "resize".
	OnGestureStart(gesture string, index int)

	// OnGestureEnd records the release of a gesture.
	OnGestureEnd(gesture string, index int)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from composite rendering and sink delivery.
type ExportHooks interface {
	// OnExportStart records the start of an export to the named sink.
	OnExportStart(ctx context.Context, sink, format string)

	// OnExportComplete records the outcome of an export.
	OnExportComplete(ctx context.Context, sink, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnImageLoaded(float64, float64, float64, float64) {}
func (NoopLayoutHooks) OnLayout(string, int, int)                        {}

// NoopInteractionHooks is a no-op implementation of InteractionHooks.
type NoopInteractionHooks struct{}

func (NoopInteractionHooks) OnGestureStart(string, int) {}
func (NoopInteractionHooks) OnGestureEnd(string, int)   {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(context.Context, string, string) {}
func (NoopExportHooks) OnExportComplete(context.Context, string, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks      LayoutHooks      = NoopLayoutHooks{}
	interactionHooks InteractionHooks = NoopInteractionHooks{}
	exportHooks      ExportHooks      = NoopExportHooks{}
	hooksMu          sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetInteractionHooks registers custom interaction hooks.
// This should be called once at application startup.
func SetInteractionHooks(h InteractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		interactionHooks = h
	}
}

// SetExportHooks registers custom export hooks.
// This should be called once at application startup.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Interaction returns the registered interaction hooks.
func Interaction() InteractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return interactionHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	interactionHooks = NoopInteractionHooks{}
	exportHooks = NoopExportHooks{}
}
