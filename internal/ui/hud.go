//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"wolfram-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads from and writes to.
type Source interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

// HUD renders the parameter panel to the right of the automaton view.
type HUD struct {
	src        Source
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	panelOffsetX int
	status       string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	controls := src.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the message shown under the controls.
func (h *HUD) SetStatus(msg string) {
	if h != nil {
		h.status = msg
	}
}

// Update refreshes the cached parameter snapshot and handles HUD clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch param.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.value = param.Value
			state.hasValue = true
		case core.ParamTypeBool:
			on, err := strconv.ParseBool(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = 0
			state.value = "off"
			if on {
				state.intValue = 1
				state.value = "on"
			}
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	p := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if p.In(state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if p.In(state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target, ok := h.target(state, direction)
	if !ok {
		return
	}
	if err := h.src.SetIntParameter(state.control.Key, target); err != nil {
		h.status = err.Error()
		return
	}
	h.status = ""
}

// target returns the value one step away in direction, or false when the
// bounds leave no room to move.
func (h *HUD) target(state *hudControlState, direction int) (int, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	return target, target != state.intValue
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Elementary CA", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusEnabled := h.target(state, -1)
		_, plusEnabled := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusEnabled)
		h.drawButton(state.plusRect, "+", state.hasValue && plusEnabled)
	}

	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	if table, ok := h.snapshot.Lookup("table"); ok {
		text.Draw(h.panel, "Table "+table.Value, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += infoSpacing / 2
	}
	if cols, ok := h.snapshot.Lookup("cols"); ok {
		text.Draw(h.panel, "Columns "+cols.Value, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += infoSpacing / 2
	}
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, y+infoSpacing/2, color.RGBA{R: 240, G: 110, B: 100, A: 255})
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
