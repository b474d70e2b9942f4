package layout

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/boxshuffle/pkg/geom"
)

const (
	// DefaultMaxAttempts is the number of candidate positions tried before a
	// rectangle is accepted regardless of overlap.
	DefaultMaxAttempts = 100

	// DefaultWidthRatio derives a generated rectangle's width from its height.
	DefaultWidthRatio = 0.66
)

// Generator places rectangles. It is not safe for concurrent use.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	widthRatio  float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rng = newRand(seed) }
}

// WithMaxAttempts sets the placement retry budget. Values below 1 are
// raised to 1.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) { g.maxAttempts = max(1, n) }
}

// WithWidthRatio sets the width/height ratio of generated rectangles.
// Non-positive ratios are ignored.
func WithWidthRatio(r float64) Option {
	return func(g *Generator) {
		if r > 0 {
			g.widthRatio = r
		}
	}
}

// New creates a generator. Without [WithSeed] it is seeded from the clock.
func New(opts ...Option) *Generator {
	g := &Generator{
		maxAttempts: DefaultMaxAttempts,
		widthRatio:  DefaultWidthRatio,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = newRand(uint64(time.Now().UnixNano()))
	}
	return g
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// GenerateOne returns a rectangle sized from b and positioned inside e,
// avoiding every rectangle in placed when it can. The size is drawn once;
// only the position is retried. After MaxAttempts misses the last candidate
// is returned as is.
func (g *Generator) GenerateOne(placed geom.Set, e geom.Extent, b Bounds) geom.Rect {
	w, h := g.drawSize(b)

	var cand geom.Rect
	for range g.maxAttempts {
		cand = geom.Rect{
			X:           float64(g.intn(0, floorInt(e.Width-w))),
			Y:           float64(g.intn(0, floorInt(e.Height-h))),
			Width:       w,
			Height:      h,
			AspectRatio: w / h,
		}
		if !placed.OverlapsAny(cand) {
			return cand
		}
	}
	return cand
}

// GenerateAll returns a fresh set of count rectangles. Each one avoids the
// rectangles generated before it in the same call.
func (g *Generator) GenerateAll(count int, e geom.Extent, b Bounds) geom.Set {
	count = max(0, count)
	set := make(geom.Set, 0, count)
	for range count {
		set = append(set, g.GenerateOne(set, e, b))
	}
	return set
}

// ResizeCount grows set to n rectangles by appending new ones that avoid the
// whole current set, or shrinks it by keeping the first n. Rectangles that
// remain are never modified.
func (g *Generator) ResizeCount(set geom.Set, n int, e geom.Extent, b Bounds) geom.Set {
	n = max(0, n)
	if n < len(set) {
		return set[:n:n]
	}
	for len(set) < n {
		set = append(set, g.GenerateOne(set, e, b))
	}
	return set
}

// RescaleAll redraws the size of every rectangle from b in place. Positions
// are kept and overlaps are not re-checked; the aspect ratio captured at
// creation is left untouched.
func (g *Generator) RescaleAll(set geom.Set, b Bounds) geom.Set {
	for i := range set {
		set[i].Width, set[i].Height = g.drawSize(b)
	}
	return set
}

// drawSize draws an integer height from the normalized bounds and derives
// the width from it. Width never drops below one unit.
func (g *Generator) drawSize(b Bounds) (w, h float64) {
	n := b.Normalize()
	h = float64(g.intn(n.MinHeight, n.MaxHeight))
	w = max(1, math.Floor(h*g.widthRatio))
	return w, h
}

// intn returns a uniform integer in [lo, hi]. An empty range yields lo.
func (g *Generator) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}
