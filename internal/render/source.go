package render

import "conway-life/internal/life"

// Source is the read-only view of a universe needed for drawing.
type Source interface {
	Layout() life.Layout
	Cells() []uint8
	History() []uint8
	Generation() int
}
