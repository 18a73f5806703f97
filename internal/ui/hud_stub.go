//go:build !ebiten

package ui

import "nightsky/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterProvider, string, int) *HUD { return nil }

// SetTitle is a no-op in the headless build.
func (h *HUD) SetTitle(string) {}

// Width is always zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
