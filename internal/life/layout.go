package life

import (
	"image"

	"conway-life/internal/core"
)

// Layout describes the full grid and the playable rectangle inside it. The
// outermost ring of cells is a permanent dead wall and the columns left of
// Col0 are reserved for the on-screen menu.
type Layout struct {
	Width  int
	Height int
	Col0   int
	Row0   int
}

// DefaultLayout matches a 900x600 window of 10 px cells with a 14 column menu.
func DefaultLayout() Layout {
	return Layout{Width: 90, Height: 60, Col0: 14, Row0: 1}
}

// Size returns the full grid dimensions including walls and margin.
func (l Layout) Size() core.Size { return core.Size{W: l.Width, H: l.Height} }

// Playable returns the editable, simulated region. Max is exclusive.
func (l Layout) Playable() image.Rectangle {
	return image.Rectangle{Min: image.Pt(l.Col0, l.Row0), Max: image.Pt(l.Width-1, l.Height-1)}
}

// Valid reports whether the layout leaves at least one playable cell.
func (l Layout) Valid() bool {
	return l.Col0 >= 1 && l.Row0 >= 1 && l.Col0 < l.Width-1 && l.Row0 < l.Height-1
}

// Contains reports whether (x, y) lies inside the playable rectangle.
func (l Layout) Contains(x, y int) bool {
	return image.Pt(x, y).In(l.Playable())
}

// IsWall reports whether (x, y) is part of the dead border.
func (l Layout) IsWall(x, y int) bool {
	return x == 0 || y == 0 || x == l.Width-1 || y == l.Height-1
}

// Clamp moves (x, y) to the nearest playable cell.
func (l Layout) Clamp(x, y int) (int, int) {
	r := l.Playable()
	if x < r.Min.X {
		x = r.Min.X
	}
	if x > r.Max.X-1 {
		x = r.Max.X - 1
	}
	if y < r.Min.Y {
		y = r.Min.Y
	}
	if y > r.Max.Y-1 {
		y = r.Max.Y - 1
	}
	return x, y
}

// Center returns the initial cursor position.
func (l Layout) Center() image.Point {
	return image.Pt((l.Col0+l.Width)/2, l.Height/2)
}
