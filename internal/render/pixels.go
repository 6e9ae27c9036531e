package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// fillRect paints r with a solid color, clipped to dst.
func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

// hline draws a one pixel tall line across the full width of dst at row y.
func hline(dst *image.RGBA, y int, c color.Color) {
	b := dst.Bounds()
	fillRect(dst, image.Rect(b.Min.X, y, b.Max.X, y+1), c)
}

// vline draws a one pixel wide line across the full height of dst at column x.
func vline(dst *image.RGBA, x int, c color.Color) {
	b := dst.Bounds()
	fillRect(dst, image.Rect(x, b.Min.Y, x+1, b.Max.Y), c)
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf, one
// pixel per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
