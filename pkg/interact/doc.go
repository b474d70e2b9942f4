// Package interact implements the pointer state machine that drags and
// resizes rectangles.
//
// A [Machine] is in exactly one [State] at a time:
//
//	Idle ──down on handle──▶ Resizing ──up/leave──▶ Idle
//	Idle ──down on body────▶ Dragging ──up/leave──▶ Idle
//
// Hit-testing walks the set from the topmost rectangle down. Resize handles
// take priority over bodies: a press in any rectangle's handle zone starts a
// resize even if another rectangle's body lies above that point.
//
// While dragging, the rectangle follows the pointer at the offset captured
// on press and is clamped inside the canvas without changing size. While
// resizing, only the vertical pointer delta counts: the height is clamped to
// the size bounds and the width follows through the rectangle's locked
// aspect ratio; the far edge is then clamped to the canvas with the origin
// fixed. While idle, moves only report a [Cursor] affordance.
//
// Every operation is total. Out-of-range pointers are absorbed by clamping,
// and a gesture whose rectangle has disappeared from the set (for example
// after the count was lowered mid-drag) simply ends.
//
// Pointer input can also come from a YAML script, see [ParseScript].
package interact
