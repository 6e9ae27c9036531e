//go:build !ebiten

package ui

import "wolfram-ca/internal/core"

// Source is what the HUD reads from and writes to.
type Source interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Source, int) *HUD { return nil }

// Width is always zero in the headless build.
func (h *HUD) Width() int { return 0 }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
