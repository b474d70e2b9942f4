package cli

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"

	"github.com/matzehuels/boxshuffle/pkg/coords"
	"github.com/matzehuels/boxshuffle/pkg/geom"
	"github.com/matzehuels/boxshuffle/pkg/render"
)

// halfBlock shows the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const halfBlock = "▀"

// canvas maps the session's display surface onto terminal cells. Each cell
// holds two vertically stacked pixels of the pixel grid.
type canvas struct {
	grid   geom.Extent   // pixel grid, at most cols x rows*2
	mapper coords.Mapper // grid (as display) to session display (as source)
	base   image.Image   // image resized to the grid
}

// newCanvas fits display into cols x rows cells.
func newCanvas(img image.Image, display geom.Extent, cols, rows int) canvas {
	if img == nil || cols < 1 || rows < 1 {
		return canvas{}
	}
	box := geom.Extent{Width: float64(cols), Height: float64(rows * 2)}
	grid := coords.FitExtent(display, box)
	return canvas{
		grid:   grid,
		mapper: coords.NewMapper(grid, display),
		base:   imaging.Resize(img, int(grid.Width), int(grid.Height), imaging.Box),
	}
}

// empty reports whether there is nothing to draw.
func (c canvas) empty() bool { return c.base == nil }

// cells returns the canvas size in terminal cells.
func (c canvas) cells() (cols, rows int) {
	return int(c.grid.Width), (int(c.grid.Height) + 1) / 2
}

// toDisplay maps a terminal cell to the display-space point at its center.
func (c canvas) toDisplay(col, row int) (geom.Point, bool) {
	if c.empty() || col < 0 || row < 0 {
		return geom.Point{}, false
	}
	p := geom.Point{X: float64(col) + 0.5, Y: float64(row*2) + 1}
	if p.X > c.grid.Width || p.Y > c.grid.Height {
		return geom.Point{}, false
	}
	return c.mapper.ToSourcePoint(p), true
}

// render draws set, given in display space, and returns the cell rows.
// The rectangle at index active, if any, is also filled.
func (c canvas) render(set geom.Set, style render.Style, active int) string {
	if c.empty() {
		return ""
	}
	gridSet := make(geom.Set, len(set))
	for i, r := range set {
		gridSet[i] = c.mapper.ToDisplay(r)
	}
	if style.Width > 0 {
		style.Width = max(1, style.Width/c.mapper.ScaleX())
	}
	img := render.Preview(c.base, c.grid, gridSet, style)
	if active >= 0 && active < len(gridSet) {
		hl := style
		hl.Fill = true
		img = render.Composite(img, gridSet[active:active+1], hl)
	}
	return cellRows(img)
}

// cellRows converts a raster to half-block rows.
func cellRows(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			st := lipgloss.NewStyle().Foreground(hexColor(img, x, y))
			if y+1 < b.Max.Y {
				st = st.Background(hexColor(img, x, y+1))
			}
			sb.WriteString(st.Render(halfBlock))
		}
	}
	return sb.String()
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
