//go:build !ebiten

package ui

import "conway-life/internal/render"

// Menu is a no-op placeholder for headless builds.
type Menu struct{}

// NewMenu returns a stub menu.
func NewMenu() *Menu { return &Menu{} }

// Draw is a no-op in the headless build.
func (m *Menu) Draw(any, int, render.Mode, bool) {}
