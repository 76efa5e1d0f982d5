//go:build ebiten

package ui

import (
	"conway-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Menu renders the key help and generation counter in the left margin.
type Menu struct{}

// NewMenu constructs a Menu.
func NewMenu() *Menu { return &Menu{} }

// Draw paints the panel background and the menu rows.
func (m *Menu) Draw(screen *ebiten.Image, generation int, mode render.Mode, running bool) {
	if m == nil {
		return
	}
	r := MenuRect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), render.MenuColor, false)

	face := basicfont.Face7x13
	for i, line := range MenuLines(generation, mode, running) {
		p := lineOrigin(i)
		text.Draw(screen, line, face, p.X, p.Y, render.MenuText)
	}
}
