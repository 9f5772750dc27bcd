//go:build !ebiten

package ui

import "gridlife/pkg/core"

// HUD is a no-op placeholder for builds without the ebiten tag.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD(core.Sim) *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, bool) {}
