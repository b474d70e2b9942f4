package interact

import (
	"github.com/matzehuels/boxshuffle/pkg/geom"
	"github.com/matzehuels/boxshuffle/pkg/layout"
)

// DefaultHandleRadius is the half-size of the resize-handle zone.
const DefaultHandleRadius = 10.0

// Machine tracks one pointer gesture at a time. It owns no rectangles: every
// call receives the set to inspect or mutate. It is not safe for concurrent
// use.
type Machine struct {
	state        State
	handleRadius float64
}

// Option configures a Machine.
type Option func(*Machine)

// WithHandleRadius sets the resize-handle half-size. Negative values are
// ignored.
func WithHandleRadius(r float64) Option {
	return func(m *Machine) {
		if r >= 0 {
			m.handleRadius = r
		}
	}
}

// NewMachine returns an idle machine.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{state: Idle{}, handleRadius: DefaultHandleRadius}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// HandleRadius returns the resize-handle half-size.
func (m *Machine) HandleRadius() float64 { return m.handleRadius }

// Active returns the index of the rectangle under manipulation.
func (m *Machine) Active() (int, bool) {
	switch s := m.state.(type) {
	case Dragging:
		return s.Index, true
	case Resizing:
		return s.Index, true
	}
	return -1, false
}

// HitTest returns the topmost rectangle whose handle zone contains p, or
// failing that the topmost rectangle containing p.
func (m *Machine) HitTest(set geom.Set, p geom.Point) (int, Zone) {
	for i := len(set) - 1; i >= 0; i-- {
		if set[i].InHandle(p, m.handleRadius) {
			return i, ZoneHandle
		}
	}
	for i := len(set) - 1; i >= 0; i-- {
		if set[i].Contains(p) {
			return i, ZoneBody
		}
	}
	return -1, ZoneNone
}

// CursorAt returns the idle affordance for p.
func (m *Machine) CursorAt(set geom.Set, p geom.Point) Cursor {
	_, z := m.HitTest(set, p)
	return z.cursor()
}

// PointerDown starts a resize or a drag on the topmost hit, or stays idle.
func (m *Machine) PointerDown(set geom.Set, p geom.Point) State {
	i, zone := m.HitTest(set, p)
	switch zone {
	case ZoneHandle:
		r := set[i]
		m.state = Resizing{
			Index: i,
			Anchor: Anchor{
				Start:       p,
				StartWidth:  r.Width,
				StartHeight: r.Height,
			},
		}
	case ZoneBody:
		m.state = Dragging{Index: i, Offset: p.Sub(set[i].Origin())}
	default:
		m.state = Idle{}
	}
	return m.state
}

// PointerMove applies the current gesture to set in place.
func (m *Machine) PointerMove(set geom.Set, p geom.Point, e geom.Extent, b layout.Bounds) Feedback {
	switch s := m.state.(type) {
	case Dragging:
		if s.Index < 0 || s.Index >= len(set) {
			return m.abandon(set, p)
		}
		r := set[s.Index]
		r.X = p.X - s.Offset.X
		r.Y = p.Y - s.Offset.Y
		set[s.Index] = geom.ClampPosition(r, e)
		return Feedback{Redraw: true, Index: s.Index, Cursor: CursorMove}

	case Resizing:
		if s.Index < 0 || s.Index >= len(set) {
			return m.abandon(set, p)
		}
		r := set[s.Index]
		r.Height = b.Clamp(s.Anchor.StartHeight + (p.Y - s.Anchor.Start.Y))
		r.Width = r.Height * r.Aspect()
		set[s.Index] = geom.ClampSizeLocked(r, e)
		return Feedback{Redraw: true, Index: s.Index, Cursor: CursorResize}
	}
	return Feedback{Index: -1, Cursor: m.CursorAt(set, p)}
}

// PointerUp ends any gesture.
func (m *Machine) PointerUp() { m.state = Idle{} }

// PointerLeave ends any gesture; leaving the surface is treated as release.
func (m *Machine) PointerLeave() { m.state = Idle{} }

// Handle dispatches a scripted or translated pointer event.
func (m *Machine) Handle(set geom.Set, ev Event, e geom.Extent, b layout.Bounds) Feedback {
	switch ev.Kind {
	case EventDown:
		m.PointerDown(set, ev.Point())
		i, _ := m.Active()
		return Feedback{Index: i, Cursor: m.CursorAt(set, ev.Point())}
	case EventMove:
		return m.PointerMove(set, ev.Point(), e, b)
	case EventUp:
		m.PointerUp()
	case EventLeave:
		m.PointerLeave()
	}
	return Feedback{Index: -1, Cursor: m.CursorAt(set, ev.Point())}
}

func (m *Machine) abandon(set geom.Set, p geom.Point) Feedback {
	m.state = Idle{}
	return Feedback{Index: -1, Cursor: m.CursorAt(set, p)}
}
