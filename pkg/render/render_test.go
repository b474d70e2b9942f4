package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/geom"
)

func white(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestCompositeStrokesOutline(t *testing.T) {
	src := white(100, 100)
	out := Composite(src, geom.Set{{X: 10, Y: 10, Width: 20, Height: 20}}, DefaultStyle())

	require.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())

	edge := rgba(out, 10, 15)
	assert.Greater(t, edge.R, uint8(200))
	assert.Less(t, edge.G, uint8(60))

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(out, 20, 20), "interior untouched")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(out, 50, 50), "outside untouched")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(src, 10, 15), "source not modified")
}

func TestCompositeFill(t *testing.T) {
	style := DefaultStyle()
	style.Fill = true
	out := Composite(white(100, 100), geom.Set{{X: 10, Y: 10, Width: 20, Height: 20}}, style)

	c := rgba(out, 20, 20)
	assert.Greater(t, c.R, uint8(250))
	assert.Less(t, c.G, uint8(255))
	assert.Greater(t, c.G, uint8(100))
}

func TestCompositeZeroWidthNoStroke(t *testing.T) {
	style := Style{Color: "#000", Width: 0}
	out := Composite(white(40, 40), geom.Set{{X: 5, Y: 5, Width: 10, Height: 10}}, style)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(out, 5, 10))
}

func TestPreviewScalesToDisplay(t *testing.T) {
	out := Preview(white(200, 100), geom.Extent{Width: 100, Height: 50}, nil, DefaultStyle())
	assert.Equal(t, image.Rect(0, 0, 100, 50), out.Bounds())
}

func TestPreviewOffsetOrigin(t *testing.T) {
	src := white(60, 60).SubImage(image.Rect(10, 10, 50, 50))
	out := Preview(src, geom.Extent{Width: 40, Height: 40}, geom.Set{{X: 0, Y: 0, Width: 10, Height: 10}}, DefaultStyle())
	assert.Equal(t, image.Rect(0, 0, 40, 40), out.Bounds())
	assert.Greater(t, rgba(out, 0, 5).R, uint8(200))
}

func TestStyleScaled(t *testing.T) {
	s := DefaultStyle().Scaled(2.5)
	assert.Equal(t, 5.0, s.Width)
	assert.Equal(t, DefaultColor, s.Color)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"#0f0", color.NRGBA{G: 255, A: 255}},
		{"#123456", color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseColor("red")
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidConfig))
}

func TestStyleValidate(t *testing.T) {
	assert.NoError(t, DefaultStyle().Validate())
	assert.Error(t, Style{Color: "nope", Width: 1}.Validate())
	assert.Error(t, Style{Color: "#fff", Width: -1}.Validate())
}
