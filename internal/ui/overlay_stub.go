//go:build !ebiten

package ui

import (
	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*panel.Frame, panel.Remapper, int) *Overlay { return &Overlay{} }

// Height reports no extra space in headless builds.
func (o *Overlay) Height() int { return 0 }

// Probe reports no cursor in headless builds.
func (o *Overlay) Probe() (core.Point, core.Point, bool) { return core.Point{}, core.Point{}, false }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int) {}
