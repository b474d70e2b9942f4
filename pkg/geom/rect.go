package geom

import "math"

// Point is a pointer position or an offset.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Extent is the size of a drawing surface, anchored at the origin.
type Extent struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Empty reports whether the extent has no area.
func (e Extent) Empty() bool { return e.Width <= 0 || e.Height <= 0 }

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
//
// AspectRatio is captured when the rectangle is created and never changes;
// pointer resizes derive the width from the height through it.
type Rect struct {
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	AspectRatio float64 `json:"aspect_ratio" yaml:"aspect_ratio"`
}

// NewRect returns a rectangle whose aspect ratio is taken from width/height.
func NewRect(x, y, width, height float64) Rect {
	r := Rect{X: x, Y: y, Width: width, Height: height}
	if height > 0 {
		r.AspectRatio = width / height
	}
	return r
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Corner returns the bottom-right corner, where the resize handle sits.
func (r Rect) Corner() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Aspect returns the locked aspect ratio, falling back to the current
// width/height for rectangles built without one.
func (r Rect) Aspect() float64 {
	if r.AspectRatio > 0 {
		return r.AspectRatio
	}
	if r.Height > 0 {
		return r.Width / r.Height
	}
	return 1
}

// Overlaps reports whether r and o share a region of positive area.
// Rectangles that merely touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Right() <= o.X ||
		r.X >= o.Right() ||
		r.Bottom() <= o.Y ||
		r.Y >= o.Bottom())
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// InHandle reports whether p lies in the square of half-size radius centered
// on the bottom-right corner.
func (r Rect) InHandle(p Point, radius float64) bool {
	c := r.Corner()
	return p.X >= c.X-radius && p.X <= c.X+radius &&
		p.Y >= c.Y-radius && p.Y <= c.Y+radius
}

// Within reports whether r lies entirely inside [0, e.Width] × [0, e.Height],
// allowing for float rounding at the far edges.
func (r Rect) Within(e Extent) bool {
	return r.X >= -epsilon && r.Y >= -epsilon &&
		r.Right() <= e.Width+epsilon && r.Bottom() <= e.Height+epsilon
}

const epsilon = 1e-9

// Scale multiplies position and size by sx horizontally and sy vertically.
// The aspect ratio is rescaled with the same factors so that it keeps
// describing the rectangle's shape.
func (r Rect) Scale(sx, sy float64) Rect {
	out := Rect{
		X:      r.X * sx,
		Y:      r.Y * sy,
		Width:  r.Width * sx,
		Height: r.Height * sy,
	}
	if r.AspectRatio > 0 && sy != 0 {
		out.AspectRatio = r.AspectRatio * sx / sy
	}
	return out
}

// ClampPosition keeps r's size and moves its origin so that r fits inside e.
// When r is larger than e along an axis, the origin is pinned to 0.
func ClampPosition(r Rect, e Extent) Rect {
	r.X = math.Max(0, math.Min(r.X, e.Width-r.Width))
	r.Y = math.Max(0, math.Min(r.Y, e.Height-r.Height))
	return r
}

// ClampSize keeps r's origin and shrinks width and height independently so
// that the far edges do not pass the extent.
func ClampSize(r Rect, e Extent) Rect {
	r.Width = math.Min(r.Width, e.Width-r.X)
	r.Height = math.Min(r.Height, e.Height-r.Y)
	return r
}

// ClampSizeLocked keeps r's origin and shrinks it until the far edges fit,
// preserving Width/Height. The binding side is set exactly to the extent.
func ClampSizeLocked(r Rect, e Extent) Rect {
	maxW, maxH := e.Width-r.X, e.Height-r.Y
	if r.Width <= maxW && r.Height <= maxH {
		return r
	}
	if maxW <= 0 || maxH <= 0 || r.Width <= 0 || r.Height <= 0 {
		return r
	}
	ratio := r.Width / r.Height
	if r.Width*maxH > r.Height*maxW {
		r.Width = maxW
		r.Height = math.Min(maxW/ratio, maxH)
	} else {
		r.Height = maxH
		r.Width = math.Min(maxH*ratio, maxW)
	}
	return r
}
