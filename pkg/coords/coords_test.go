package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/boxshuffle/pkg/geom"
)

func TestMapperScale(t *testing.T) {
	m := NewMapper(geom.Extent{Width: 1280, Height: 720}, geom.Extent{Width: 3840, Height: 2160})
	assert.Equal(t, 3.0, m.ScaleX())
	assert.Equal(t, 3.0, m.ScaleY())

	r := m.ToSource(geom.NewRect(10, 20, 33, 50))
	assert.Equal(t, geom.Rect{X: 30, Y: 60, Width: 99, Height: 150, AspectRatio: 0.66}, roundAspect(r))
	assert.Equal(t, 6.0, m.StrokeWidth(2))
}

func TestMapperNonUniform(t *testing.T) {
	m := NewMapper(geom.Extent{Width: 100, Height: 100}, geom.Extent{Width: 200, Height: 400})
	r := m.ToSource(geom.Rect{X: 10, Y: 10, Width: 10, Height: 10, AspectRatio: 1})

	assert.Equal(t, 20.0, r.X)
	assert.Equal(t, 40.0, r.Y)
	assert.Equal(t, 20.0, r.Width)
	assert.Equal(t, 40.0, r.Height)
	assert.InDelta(t, 0.5, r.AspectRatio, 1e-12)
	assert.Equal(t, 4.0, m.StrokeWidth(2), "stroke follows the horizontal factor")
}

func TestMapperRoundTrip(t *testing.T) {
	extents := []struct {
		display, source geom.Extent
	}{
		{geom.Extent{Width: 1280, Height: 720}, geom.Extent{Width: 4032, Height: 2268}},
		{geom.Extent{Width: 719, Height: 1280}, geom.Extent{Width: 1011, Height: 1800}},
		{geom.Extent{Width: 300, Height: 200}, geom.Extent{Width: 300, Height: 200}},
	}
	rects := []geom.Rect{
		geom.NewRect(0, 0, 33, 50),
		geom.NewRect(123.5, 77.25, 41, 62),
		geom.NewRect(250, 150, 1, 1),
	}

	for _, ext := range extents {
		m := NewMapper(ext.display, ext.source)
		for _, r := range rects {
			back := m.ToDisplay(m.ToSource(r))
			assert.InDelta(t, r.X, back.X, 1e-9)
			assert.InDelta(t, r.Y, back.Y, 1e-9)
			assert.InDelta(t, r.Width, back.Width, 1e-9)
			assert.InDelta(t, r.Height, back.Height, 1e-9)
			assert.InDelta(t, r.AspectRatio, back.AspectRatio, 1e-9)
		}
	}
}

func TestMapperZeroExtent(t *testing.T) {
	m := NewMapper(geom.Extent{}, geom.Extent{Width: 10, Height: 10})
	assert.Equal(t, 1.0, m.ScaleX())
	assert.Equal(t, 1.0, m.ScaleY())
	r := geom.Rect{X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, r, m.ToSource(r))
}

func TestToSourceSet(t *testing.T) {
	m := NewMapper(geom.Extent{Width: 100, Height: 100}, geom.Extent{Width: 200, Height: 200})
	in := geom.Set{{X: 1, Y: 1, Width: 1, Height: 1}, {X: 2, Y: 2, Width: 2, Height: 2}}

	out := m.ToSourceSet(in)
	require.Len(t, out, 2)
	assert.Equal(t, 4.0, out[1].X)
	assert.Equal(t, 1.0, in[0].X, "input is not modified")

	assert.Equal(t, geom.Point{X: 20, Y: 40}, m.ToSourcePoint(geom.Point{X: 10, Y: 20}))
}

func TestFitExtent(t *testing.T) {
	tests := []struct {
		name   string
		source geom.Extent
		want   geom.Extent
	}{
		{"fits", geom.Extent{Width: 800, Height: 600}, geom.Extent{Width: 800, Height: 600}},
		{"4k landscape", geom.Extent{Width: 3840, Height: 2160}, geom.Extent{Width: 1280, Height: 720}},
		{"wide", geom.Extent{Width: 2560, Height: 720}, geom.Extent{Width: 1280, Height: 360}},
		{"portrait", geom.Extent{Width: 1080, Height: 1920}, geom.Extent{Width: 405, Height: 720}},
		{"odd truncates", geom.Extent{Width: 1000, Height: 1001}, geom.Extent{Width: 719, Height: 720}},
		{"tiny", geom.Extent{Width: 0.5, Height: 0.5}, geom.Extent{Width: 1, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitExtent(tt.source, DefaultMaxDisplay))
		})
	}
}

func roundAspect(r geom.Rect) geom.Rect {
	r.AspectRatio = float64(int(r.AspectRatio*1e6+0.5)) / 1e6
	return r
}
