// Package termview shows a generated automaton in a terminal, one character
// per cell, and forwards terminal resizes to the automaton.
package termview

import (
	"fmt"

	"wolfram-ca/internal/core"
	"wolfram-ca/internal/sims/elementary"

	"github.com/gdamore/tcell/v2"
)

const (
	aliveRune = '█'
	deadRune  = ' '
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
)

// Viewer owns a tcell screen and the automaton displayed on it.
type Viewer struct {
	screen tcell.Screen
	auto   *elementary.Automaton

	shown   uint64
	scrollX int
	scrollY int
	status  string
	failed  bool
}

// New wraps an initialized screen. The automaton must use a cell size of one
// so that a viewport width in characters maps to one column per character.
func New(screen tcell.Screen, auto *elementary.Automaton) *Viewer {
	return &Viewer{screen: screen, auto: auto}
}

// Run processes events until the user quits or the screen is finalized.
func (v *Viewer) Run() error {
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return nil
		}
		v.Draw()
	}
}

// HandleEvent applies a single terminal event and reports whether the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, _ := ev.Size()
		v.screen.Sync()
		v.auto.OnDimensionsChanged(w)
	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	cfg := v.auto.Config()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		v.auto.Regenerate()
		return false
	case tcell.KeyLeft:
		v.scrollX--
	case tcell.KeyRight:
		v.scrollX++
	case tcell.KeyUp:
		v.scrollY--
	case tcell.KeyDown:
		v.scrollY++
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'g':
			v.auto.Regenerate()
		case '[':
			cfg.Rule--
			v.apply(cfg)
		case ']':
			cfg.Rule++
			v.apply(cfg)
		case '-':
			cfg.Steps--
			v.apply(cfg)
		case '+', '=':
			cfg.Steps++
			v.apply(cfg)
		case 'r':
			cfg.Seeding = elementary.Random
			if v.auto.Config().Seeding == elementary.Random {
				cfg.Seeding = elementary.FixedCenter
			}
			v.apply(cfg)
		}
	}
	return false
}

func (v *Viewer) apply(cfg elementary.Config) {
	if err := v.auto.Configure(cfg); err != nil {
		v.status = err.Error()
		v.failed = true
		return
	}
	v.status = ""
	v.failed = false
}

// Draw paints the visible part of the grid and the status line.
func (v *Viewer) Draw() {
	f := v.auto.Frame()
	w, h := v.screen.Size()
	viewH := h - 1
	if f.Sequence() != v.shown {
		v.shown = f.Sequence()
		v.scrollX = f.CenterScroll(w)
		v.scrollY = 0
	}
	v.scrollX = core.Clamp(v.scrollX, 0, f.Cols()-w)
	v.scrollY = core.Clamp(v.scrollY, 0, f.Rows()-viewH)

	v.screen.Clear()
	g := f.Grid()
	for sy := 0; sy < viewH; sy++ {
		y := sy + v.scrollY
		if y >= g.H {
			break
		}
		for sx := 0; sx < w; sx++ {
			x := sx + v.scrollX
			if x >= g.W {
				break
			}
			if g.At(x, y) != 0 {
				v.screen.SetContent(sx, sy, aliveRune, nil, aliveStyle)
				continue
			}
			v.screen.SetContent(sx, sy, deadRune, nil, deadStyle)
		}
	}
	v.drawStatus(w, h-1)
	v.screen.Show()
}

func (v *Viewer) drawStatus(w, y int) {
	if y < 0 {
		return
	}
	line := v.status
	style := errorStyle
	if !v.failed {
		cfg := v.auto.Config()
		f := v.auto.Frame()
		line = fmt.Sprintf(" rule %d [%s] steps %d %s cols %d | [ ] rule  - + steps  r seeding  g regenerate  q quit",
			cfg.Rule, f.Table(), cfg.Steps, cfg.Seeding, f.Cols())
		style = statusStyle
	}
	runes := []rune(line)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, y, r, nil, style)
	}
}
