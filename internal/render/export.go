package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"wolfram-ca/internal/core"

	svg "github.com/ajstarks/svgo"
)

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// errWriter remembers the first write error so svgo's fire-and-forget calls
// can still report failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG emits the same picture as Render as an SVG document: background,
// gridlines when cellSize allows them, and one square per live cell.
func WriteSVG(w io.Writer, g *core.Grid, cellSize int, canvas core.Size, style Style, title string) error {
	canvas = canvasSize(g, cellSize, canvas)
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Start(canvas.W, canvas.H)
	if title != "" {
		doc.Title(title)
	}
	doc.Rect(0, 0, canvas.W, canvas.H, "fill:"+hex(style.Background))

	if cellSize >= MinGridCellSize {
		doc.Gstyle("stroke:" + hex(style.Gridline) + ";stroke-width:1;shape-rendering:crispEdges")
		rowHt := canvas.H / g.H
		for i := 0; i < g.H; i++ {
			y := i * rowHt
			doc.Line(0, y, canvas.W, y)
		}
		colWd := canvas.W / g.W
		for i := 0; i < g.W; i++ {
			x := i * colWd
			doc.Line(x, 0, x, canvas.H)
		}
		doc.Gend()
	}

	doc.Gstyle("fill:" + hex(style.Foreground) + ";shape-rendering:crispEdges")
	for y := 0; y < g.H; y++ {
		for x, c := range g.Row(y) {
			if c != 0 {
				doc.Rect(x*cellSize, y*cellSize, cellSize, cellSize)
			}
		}
	}
	doc.Gend()
	doc.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
