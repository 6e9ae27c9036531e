//go:build ebiten

package app

import (
	"image"
	"image/color"

	"wolfram-ca/internal/core"
	"wolfram-ca/internal/render"
	"wolfram-ca/internal/sims/elementary"
	"wolfram-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth   = 220
	scrollStep = 8
)

// Game adapts an elementary automaton to the ebiten.Game interface. It plays
// the viewport role: it reports width changes to the automaton, uploads each
// new frame, and scrolls the canvas.
type Game struct {
	auto    *elementary.Automaton
	painter *render.Painter
	hud     *ui.HUD
	canvas  *ebiten.Image

	trackScreen bool

	shown   uint64
	viewW   int
	viewH   int
	scrollX int
	scrollY int
}

// New constructs a Game for the provided automaton. With trackScreen set the
// game follows the monitor width for random seeding.
func New(auto *elementary.Automaton, trackScreen bool) *Game {
	return &Game{
		auto:    auto,
		painter: render.NewPainter(render.DefaultStyle()),
		hud:     ui.NewHUD(auto, hudWidth),
		viewW:   auto.Display().ViewportWidth,

		trackScreen: trackScreen,
	}
}

// ViewportWidth returns the window width needed to show a viewport of w
// pixels next to the HUD.
func ViewportWidth(w int) int { return w + hudWidth }

// Update handles per-frame input and uploads new frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.auto.Regenerate()
	}
	if g.trackScreen {
		if sw, _ := ebiten.ScreenSizeInFullscreen(); sw > 0 {
			g.auto.OnScreenChanged(sw)
		}
	}
	g.hud.Update(g.viewW)
	g.scroll()
	g.sync()
	return nil
}

// sync uploads the automaton's frame when it changed and recenters the view
// once the canvas is complete.
func (g *Game) sync() {
	f := g.auto.Frame()
	if f.Sequence() == g.shown && g.canvas != nil {
		return
	}
	img := g.painter.Paint(f.Grid(), f.CellSize(), f.Canvas())
	b := img.Bounds()
	if g.canvas == nil || g.canvas.Bounds().Dx() != b.Dx() || g.canvas.Bounds().Dy() != b.Dy() {
		if g.canvas != nil {
			g.canvas.Dispose()
		}
		g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.canvas.WritePixels(img.Pix)
	g.shown = f.Sequence()
	g.scrollX = f.CenterScroll(g.viewW)
	g.scrollY = 0
}

func (g *Game) scroll() {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= scrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += scrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= scrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += scrollStep
	}
	wx, wy := ebiten.Wheel()
	dx -= int(wx * scrollStep)
	dy -= int(wy * scrollStep)
	if dx == 0 && dy == 0 {
		return
	}
	canvas := g.auto.Frame().Canvas()
	g.scrollX = core.Clamp(g.scrollX+dx, 0, canvas.W-g.viewW)
	g.scrollY = core.Clamp(g.scrollY+dy, 0, canvas.H-g.viewH)
}

// Draw renders the current canvas and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	if g.canvas != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(-g.scrollX), float64(-g.scrollY))
		screen.SubImage(image.Rect(0, 0, g.viewW, g.viewH)).(*ebiten.Image).DrawImage(g.canvas, op)
	}
	g.hud.Draw(screen, g.viewW, g.viewH)
}

// Layout tracks the window size. A change of viewport width is forwarded to
// the automaton, which decides whether the grid must be rebuilt.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	viewW := outsideWidth - g.hud.Width()
	if viewW < 1 {
		viewW = 1
	}
	g.viewH = outsideHeight
	if viewW != g.viewW {
		g.viewW = viewW
		g.auto.OnDimensionsChanged(viewW)
	}
	return outsideWidth, outsideHeight
}
