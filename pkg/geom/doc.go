// Package geom provides the rectangle math used by every other layer of
// boxshuffle.
//
// All values are float64 display-space units unless a caller has explicitly
// mapped them elsewhere (see the coords package). The package is pure: no
// state, no allocation beyond the returned values, no errors.
//
// # Clamping
//
// Two clamp modes exist because the two pointer gestures fix different
// things. A drag fixes the size and moves the origin, so [ClampPosition]
// shifts the rectangle back inside the extent. A resize fixes the origin
// and moves the far edge, so [ClampSize] and [ClampSizeLocked] shrink it.
//
//	r := geom.Rect{X: 480, Y: 10, Width: 50, Height: 50}
//	r = geom.ClampPosition(r, geom.Extent{Width: 400, Height: 300})
//	// r.X == 350
package geom
