// Package session owns the state of one editing session: the loaded image,
// its display extent, the size bounds and target count, the rectangle set,
// and the pointer state machine.
//
// A Session replaces what would otherwise be process-wide globals. Front
// ends (the bubbletea editor, the headless pipeline) hold one and forward
// user actions to it:
//
//	s := session.New(session.WithCount(5), session.WithBounds(layout.Bounds{MinHeight: 40, MaxHeight: 80}))
//	s.Load(img)                            // fit display extent, shuffle
//	s.PointerDown(geom.Point{X: 30, Y: 30})
//	s.PointerMove(geom.Point{X: 200, Y: 90})
//	s.PointerUp()
//	frame, err := s.Frame()                // source-space rectangles for export
//
// Without an image every editing operation is a no-op and the set stays
// empty, mirroring a disabled dashboard.
//
// A Session is not safe for concurrent use; it expects events to arrive one
// at a time, as they do from a UI event loop.
package session

import (
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/boxshuffle/pkg/coords"
	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/geom"
	"github.com/matzehuels/boxshuffle/pkg/interact"
	"github.com/matzehuels/boxshuffle/pkg/layout"
	"github.com/matzehuels/boxshuffle/pkg/observability"
)

// Defaults used when no option overrides them.
const (
	DefaultCount     = 5
	DefaultMinHeight = 40
	DefaultMaxHeight = 80
)

// Session is one single-user editing session.
type Session struct {
	ID        string
	CreatedAt time.Time

	img        image.Image
	source     geom.Extent
	display    geom.Extent
	maxDisplay geom.Extent

	count  int
	bounds layout.Bounds
	rects  geom.Set

	gen     *layout.Generator
	machine *interact.Machine
}

// Option configures a Session.
type Option func(*Session)

// WithGenerator sets the layout generator (seed, retry budget, ratio).
func WithGenerator(g *layout.Generator) Option {
	return func(s *Session) { s.gen = g }
}

// WithMachine sets the pointer state machine (handle radius).
func WithMachine(m *interact.Machine) Option {
	return func(s *Session) { s.machine = m }
}

// WithMaxDisplay sets the box the source image is fitted into.
func WithMaxDisplay(e geom.Extent) Option {
	return func(s *Session) { s.maxDisplay = e }
}

// WithCount sets the initial target count.
func WithCount(n int) Option {
	return func(s *Session) { s.count = max(0, n) }
}

// WithBounds sets the initial size bounds.
func WithBounds(b layout.Bounds) Option {
	return func(s *Session) { s.bounds = b }
}

// New creates an empty session with no image loaded.
func New(opts ...Option) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		maxDisplay: coords.DefaultMaxDisplay,
		count:      DefaultCount,
		bounds:     layout.Bounds{MinHeight: DefaultMinHeight, MaxHeight: DefaultMaxHeight},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = layout.New()
	}
	if s.machine == nil {
		s.machine = interact.NewMachine()
	}
	return s
}

// =============================================================================
// Image lifecycle
// =============================================================================

// Load installs a new source image, fits the display extent to it, cancels
// any gesture and generates a fresh layout. A nil image unloads.
func (s *Session) Load(img image.Image) {
	if img == nil {
		s.Unload()
		return
	}
	b := img.Bounds()
	s.img = img
	s.source = geom.Extent{Width: float64(b.Dx()), Height: float64(b.Dy())}
	s.display = coords.FitExtent(s.source, s.maxDisplay)
	s.PointerUp()
	observability.Layout().OnImageLoaded(s.source.Width, s.source.Height, s.display.Width, s.display.Height)
	s.Shuffle()
}

// Unload drops the image and clears the set.
func (s *Session) Unload() {
	s.img = nil
	s.source = geom.Extent{}
	s.display = geom.Extent{}
	s.PointerUp()
	s.rects = nil
}

// Loaded reports whether an image is loaded.
func (s *Session) Loaded() bool { return s.img != nil }

// Image returns the loaded source image, or nil.
func (s *Session) Image() image.Image { return s.img }

// Source returns the source image extent.
func (s *Session) Source() geom.Extent { return s.source }

// Display returns the display (canvas) extent.
func (s *Session) Display() geom.Extent { return s.display }

// Mapper returns the display ↔ source mapper for the loaded image.
func (s *Session) Mapper() coords.Mapper { return coords.NewMapper(s.display, s.source) }

// =============================================================================
// Layout operations
// =============================================================================

// Shuffle replaces the set with a freshly generated layout. Without an
// image it clears the set.
func (s *Session) Shuffle() {
	if !s.Loaded() {
		s.rects = nil
		return
	}
	s.PointerUp()
	s.rects = s.gen.GenerateAll(s.count, s.display, s.bounds)
	observability.Layout().OnLayout("shuffle", len(s.rects), s.rects.Overlaps())
}

// SetCount changes the target count. Existing rectangles are kept: the set
// grows by appending or shrinks by dropping from the tail.
func (s *Session) SetCount(n int) {
	s.count = max(0, n)
	if !s.Loaded() {
		return
	}
	s.rects = s.gen.ResizeCount(s.rects, s.count, s.display, s.bounds)
	observability.Layout().OnLayout("count", len(s.rects), s.rects.Overlaps())
}

// SetBounds changes the size bounds and redraws every rectangle's size in
// place without moving it.
func (s *Session) SetBounds(b layout.Bounds) {
	s.bounds = b
	if !s.Loaded() {
		return
	}
	s.rects = s.gen.RescaleAll(s.rects, s.bounds)
	observability.Layout().OnLayout("rescale", len(s.rects), s.rects.Overlaps())
}

// Count returns the target count.
func (s *Session) Count() int { return s.count }

// Bounds returns the size bounds.
func (s *Session) Bounds() layout.Bounds { return s.bounds }

// Rects returns a copy of the rectangle set in display space.
func (s *Session) Rects() geom.Set { return s.rects.Clone() }

// =============================================================================
// Pointer events
// =============================================================================

// PointerDown starts a drag or resize on the topmost hit.
func (s *Session) PointerDown(p geom.Point) interact.State {
	if !s.Loaded() {
		return s.machine.State()
	}
	s.machine.PointerDown(s.rects, p)
	s.startGesture()
	return s.machine.State()
}

// PointerMove applies the active gesture, or reports the idle cursor.
func (s *Session) PointerMove(p geom.Point) interact.Feedback {
	if !s.Loaded() {
		return interact.Feedback{Index: -1}
	}
	return s.machine.PointerMove(s.rects, p, s.display, s.bounds)
}

// PointerUp ends any gesture.
func (s *Session) PointerUp() {
	s.endGesture()
	s.machine.PointerUp()
}

// PointerLeave ends any gesture.
func (s *Session) PointerLeave() {
	s.endGesture()
	s.machine.PointerLeave()
}

// Apply dispatches a pointer event through the machine and reports gesture
// boundaries to the interaction hooks.
func (s *Session) Apply(ev interact.Event) interact.Feedback {
	if !s.Loaded() {
		return interact.Feedback{Index: -1}
	}
	if ev.Kind == interact.EventUp || ev.Kind == interact.EventLeave {
		s.endGesture()
	}
	fb := s.machine.Handle(s.rects, ev, s.display, s.bounds)
	if ev.Kind == interact.EventDown {
		s.startGesture()
	}
	return fb
}

// State returns the pointer machine state.
func (s *Session) State() interact.State { return s.machine.State() }

// Cursor returns the affordance for p while idle.
func (s *Session) Cursor(p geom.Point) interact.Cursor {
	return s.machine.CursorAt(s.rects, p)
}

func (s *Session) startGesture() {
	switch st := s.machine.State().(type) {
	case interact.Dragging:
		observability.Interaction().OnGestureStart("drag", st.Index)
	case interact.Resizing:
		observability.Interaction().OnGestureStart("resize", st.Index)
	}
}

func (s *Session) endGesture() {
	switch st := s.machine.State().(type) {
	case interact.Dragging:
		observability.Interaction().OnGestureEnd("drag", st.Index)
	case interact.Resizing:
		observability.Interaction().OnGestureEnd("resize", st.Index)
	}
}

// =============================================================================
// Export
// =============================================================================

// Frame is everything an exporter needs: the original image and the
// rectangles mapped into its coordinate space.
type Frame struct {
	Image  image.Image
	Rects  geom.Set
	Mapper coords.Mapper
}

// Frame maps the current set into source space. It fails with
// errors.ErrCodeNoImage when nothing is loaded.
func (s *Session) Frame() (Frame, error) {
	if !s.Loaded() {
		return Frame{}, apperr.New(apperr.ErrCodeNoImage, "No image to copy.")
	}
	m := s.Mapper()
	return Frame{
		Image:  s.img,
		Rects:  m.ToSourceSet(s.rects),
		Mapper: m,
	}, nil
}
