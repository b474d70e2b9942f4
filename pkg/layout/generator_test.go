package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/boxshuffle/pkg/geom"
)

var (
	smallCanvas = geom.Extent{Width: 400, Height: 300}
	stressBox   = geom.Extent{Width: 800, Height: 600}
)

func TestGenerateOneFixedSize(t *testing.T) {
	g := New(WithSeed(7))
	b := Bounds{MinHeight: 50, MaxHeight: 50}

	for range 500 {
		r := g.GenerateOne(nil, smallCanvas, b)
		require.Equal(t, 50.0, r.Height)
		require.Equal(t, 33.0, r.Width)
		require.GreaterOrEqual(t, r.X, 0.0)
		require.LessOrEqual(t, r.X, 367.0)
		require.GreaterOrEqual(t, r.Y, 0.0)
		require.LessOrEqual(t, r.Y, 250.0)
		require.Equal(t, r.X, float64(int(r.X)), "positions are whole units")
		require.InDelta(t, 33.0/50.0, r.AspectRatio, 1e-12)
	}
}

func TestGenerateOneHeightRange(t *testing.T) {
	g := New(WithSeed(3))
	b := Bounds{MinHeight: 40, MaxHeight: 45}
	seen := map[float64]bool{}

	for range 2000 {
		r := g.GenerateOne(nil, stressBox, b)
		require.GreaterOrEqual(t, r.Height, 40.0)
		require.LessOrEqual(t, r.Height, 45.0)
		seen[r.Height] = true
	}
	assert.Len(t, seen, 6, "both ends of the range are drawn")
}

func TestGenerateOneSaturated(t *testing.T) {
	g := New(WithSeed(1), WithMaxAttempts(5))
	full := geom.Set{{X: 0, Y: 0, Width: 400, Height: 300}}

	r := g.GenerateOne(full, smallCanvas, Bounds{MinHeight: 20, MaxHeight: 20})
	assert.True(t, full.OverlapsAny(r), "accepted despite overlap once the budget is spent")
	assert.Equal(t, 20.0, r.Height)
}

func TestGenerateOneLargerThanCanvas(t *testing.T) {
	g := New(WithSeed(1))
	r := g.GenerateOne(nil, geom.Extent{Width: 10, Height: 10}, Bounds{MinHeight: 50, MaxHeight: 50})
	assert.Equal(t, 0.0, r.X)
	assert.Equal(t, 0.0, r.Y)
}

func TestGenerateAllNonOverlapStress(t *testing.T) {
	b := Bounds{MinHeight: 40, MaxHeight: 80}
	clean := 0

	for seed := range uint64(100) {
		g := New(WithSeed(seed))
		set := g.GenerateAll(20, stressBox, b)
		require.Len(t, set, 20)
		require.True(t, set.Within(stressBox))
		if set.Overlaps() == 0 {
			clean++
		}
	}
	assert.GreaterOrEqual(t, clean, 99)
}

func TestGenerateAllDeterministic(t *testing.T) {
	b := Bounds{MinHeight: 40, MaxHeight: 80}
	a := New(WithSeed(42)).GenerateAll(10, stressBox, b)
	c := New(WithSeed(42)).GenerateAll(10, stressBox, b)
	assert.Equal(t, a, c)
}

func TestGenerateAllZeroAndNegative(t *testing.T) {
	g := New(WithSeed(1))
	assert.Empty(t, g.GenerateAll(0, stressBox, Bounds{MinHeight: 10, MaxHeight: 20}))
	assert.Empty(t, g.GenerateAll(-3, stressBox, Bounds{MinHeight: 10, MaxHeight: 20}))
}

func TestResizeCountGrowPreservesPrefix(t *testing.T) {
	g := New(WithSeed(11))
	b := Bounds{MinHeight: 40, MaxHeight: 80}
	set := g.GenerateAll(5, stressBox, b)
	set[2].X, set[2].Y = 1, 1 // a manual placement
	before := set.Clone()

	grown := g.ResizeCount(set, 12, stressBox, b)
	require.Len(t, grown, 12)
	assert.Equal(t, before, grown[:5])
	assert.Equal(t, 0, grown.Overlaps()-before.Overlaps(), "new rectangles avoid old and new alike")
}

func TestResizeCountShrinkKeepsFirst(t *testing.T) {
	g := New(WithSeed(11))
	b := Bounds{MinHeight: 40, MaxHeight: 80}
	set := g.GenerateAll(8, stressBox, b)
	before := set.Clone()

	shrunk := g.ResizeCount(set, 3, stressBox, b)
	require.Len(t, shrunk, 3)
	assert.Equal(t, before[:3], shrunk)

	grown := g.ResizeCount(shrunk, 4, stressBox, b)
	assert.Equal(t, before[3:], set[3:], "growing after a shrink must not write into the old tail")
	assert.Len(t, grown, 4)

	assert.Empty(t, g.ResizeCount(set, -1, stressBox, b))
}

func TestResizeCountSame(t *testing.T) {
	g := New(WithSeed(2))
	b := Bounds{MinHeight: 40, MaxHeight: 80}
	set := g.GenerateAll(4, stressBox, b)
	before := set.Clone()
	assert.Equal(t, before, g.ResizeCount(set, 4, stressBox, b))
}

func TestRescaleAllPreservesPosition(t *testing.T) {
	g := New(WithSeed(5))
	set := g.GenerateAll(10, stressBox, Bounds{MinHeight: 40, MaxHeight: 80})
	before := set.Clone()

	out := g.RescaleAll(set, Bounds{MinHeight: 100, MaxHeight: 120})
	require.Len(t, out, len(before))
	for i := range out {
		assert.Equal(t, before[i].X, out[i].X)
		assert.Equal(t, before[i].Y, out[i].Y)
		assert.Equal(t, before[i].AspectRatio, out[i].AspectRatio)
		assert.GreaterOrEqual(t, out[i].Height, 100.0)
		assert.LessOrEqual(t, out[i].Height, 120.0)
		assert.Equal(t, float64(int(out[i].Height*0.66)), out[i].Width)
	}
}

func TestInvertedBoundsDegenerate(t *testing.T) {
	g := New(WithSeed(9))
	b := Bounds{MinHeight: 60, MaxHeight: 20}
	require.True(t, b.Inverted())

	for range 50 {
		r := g.GenerateOne(nil, stressBox, b)
		assert.Equal(t, 60.0, r.Height)
		assert.Equal(t, 39.0, r.Width)
	}
}

func TestBoundsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Bounds
		want Bounds
	}{
		{"valid", Bounds{10, 20}, Bounds{10, 20}},
		{"point", Bounds{10, 10}, Bounds{10, 10}},
		{"inverted", Bounds{30, 20}, Bounds{30, 30}},
		{"zero min", Bounds{0, 20}, Bounds{1, 20}},
		{"all zero", Bounds{0, 0}, Bounds{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{MinHeight: 40, MaxHeight: 80}
	assert.Equal(t, 40.0, b.Clamp(10))
	assert.Equal(t, 55.5, b.Clamp(55.5))
	assert.Equal(t, 80.0, b.Clamp(500))
	assert.Equal(t, 40.0, Bounds{MinHeight: 40, MaxHeight: 10}.Clamp(500))
}

func TestOptions(t *testing.T) {
	g := New(WithMaxAttempts(0), WithWidthRatio(-1), WithSeed(1))
	assert.Equal(t, 1, g.maxAttempts)
	assert.Equal(t, DefaultWidthRatio, g.widthRatio)

	g = New(WithWidthRatio(0.5), WithSeed(1))
	r := g.GenerateOne(nil, stressBox, Bounds{MinHeight: 40, MaxHeight: 40})
	assert.Equal(t, 20.0, r.Width)
}

func TestWidthNeverZero(t *testing.T) {
	g := New(WithSeed(1))
	r := g.GenerateOne(nil, stressBox, Bounds{MinHeight: 1, MaxHeight: 1})
	assert.Equal(t, 1.0, r.Width)
	assert.Equal(t, 1.0, r.Height)
}
