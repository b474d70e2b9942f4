package interact

import "github.com/matzehuels/boxshuffle/pkg/geom"

// State is one of [Idle], [Dragging] or [Resizing].
type State interface {
	isState()
}

// Idle means no gesture is in progress.
type Idle struct{}

// Dragging means rectangle Index follows the pointer. Offset is the pointer
// position minus the rectangle origin at press time.
type Dragging struct {
	Index  int
	Offset geom.Point
}

// Resizing means rectangle Index is being resized from its bottom-right
// corner.
type Resizing struct {
	Index  int
	Anchor Anchor
}

// Anchor is captured when a resize starts.
type Anchor struct {
	Start       geom.Point
	StartWidth  float64
	StartHeight float64
}

func (Idle) isState()     {}
func (Dragging) isState() {}
func (Resizing) isState() {}

// Cursor is the pointer affordance to show while idle.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResize
)

// String returns the CSS cursor name.
func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResize:
		return "nwse-resize"
	default:
		return "default"
	}
}

// Zone is the part of a rectangle a point falls in.
type Zone uint8

const (
	ZoneNone Zone = iota
	ZoneBody
	ZoneHandle
)

func (z Zone) cursor() Cursor {
	switch z {
	case ZoneHandle:
		return CursorResize
	case ZoneBody:
		return CursorMove
	}
	return CursorDefault
}

// Feedback is what a pointer move produced.
type Feedback struct {
	// Redraw is set when a rectangle was mutated.
	Redraw bool
	// Index is the mutated rectangle, or -1.
	Index int
	// Cursor is the affordance for the pointer's current position.
	Cursor Cursor
}
