// Package render rasterizes generated automata into pixel canvases.
package render

import (
	"fmt"
	"image"
	"image/color"

	"wolfram-ca/internal/core"
)

// Style holds the colors used by the rasterizer.
type Style struct {
	Background color.RGBA
	Gridline   color.RGBA
	Foreground color.RGBA
}

// DefaultStyle is white paper, light gray gridlines and black cells.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Gridline:   color.RGBA{R: 240, G: 240, B: 240, A: 255},
		Foreground: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

// MinGridCellSize is the smallest cell size that still gets gridlines.
const MinGridCellSize = 3

// Render allocates a canvas of the given size and draws g onto it. A zero
// canvas size defaults to cols*cellSize by rows*cellSize.
func Render(g *core.Grid, cellSize int, canvas core.Size, style Style) *image.RGBA {
	canvas = canvasSize(g, cellSize, canvas)
	img := image.NewRGBA(image.Rect(0, 0, canvas.W, canvas.H))
	draw(img, g, cellSize, style)
	return img
}

func canvasSize(g *core.Grid, cellSize int, canvas core.Size) core.Size {
	if cellSize < 1 {
		panic(fmt.Sprintf("render: cell size %d < 1", cellSize))
	}
	if canvas.W == 0 && canvas.H == 0 {
		return core.Size{W: g.W * cellSize, H: g.H * cellSize}
	}
	if canvas.Empty() {
		panic(fmt.Sprintf("render: invalid canvas %dx%d", canvas.W, canvas.H))
	}
	return canvas
}

// draw runs the background pass followed by the foreground pass.
func draw(img *image.RGBA, g *core.Grid, cellSize int, style Style) {
	drawBackground(img, g, cellSize, style)
	drawCells(img, g, cellSize, style.Foreground)
}

// drawBackground clears img and, for cells larger than two pixels, rules a
// line at the top of every row and the left of every column. Spacing is
// derived from the canvas size so a screen-bound canvas keeps even lines.
func drawBackground(img *image.RGBA, g *core.Grid, cellSize int, style Style) {
	fillRect(img, img.Bounds(), style.Background)
	if cellSize < MinGridCellSize {
		return
	}
	b := img.Bounds()
	rowHt := b.Dy() / g.H
	for i := 0; i < g.H; i++ {
		hline(img, i*rowHt, style.Gridline)
	}
	colWd := b.Dx() / g.W
	for i := 0; i < g.W; i++ {
		vline(img, i*colWd, style.Gridline)
	}
}

func drawCells(img *image.RGBA, g *core.Grid, cellSize int, fg color.Color) {
	for y := 0; y < g.H; y++ {
		row := g.Row(y)
		for x, c := range row {
			if c == 0 {
				continue
			}
			r := image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
			fillRect(img, r, fg)
		}
	}
}

// Painter keeps a canvas alive across redraws. The backing image is only
// reallocated when the requested dimensions change.
type Painter struct {
	style Style
	img   *image.RGBA
}

// NewPainter creates a painter using style.
func NewPainter(style Style) *Painter {
	return &Painter{style: style}
}

// Paint renders g into the painter's canvas and returns it. The returned
// image is overwritten by the next call to Paint.
func (p *Painter) Paint(g *core.Grid, cellSize int, canvas core.Size) *image.RGBA {
	canvas = canvasSize(g, cellSize, canvas)
	if p.img == nil || p.img.Bounds().Dx() != canvas.W || p.img.Bounds().Dy() != canvas.H {
		p.img = image.NewRGBA(image.Rect(0, 0, canvas.W, canvas.H))
	}
	draw(p.img, g, cellSize, p.style)
	return p.img
}

// Image returns the most recently painted canvas, or nil.
func (p *Painter) Image() *image.RGBA { return p.img }

// Thumbnail returns a one-pixel-per-cell image of g.
func Thumbnail(g *core.Grid, style Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillBinaryRGBA(img.Pix, g.Cells(), style.Foreground, style.Background)
	return img
}
