package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Frame is a reusable RGBA buffer holding one pixel per grid cell.
type Frame struct {
	roles []uint8
	Pix   []byte
}

// NewFrame allocates a frame for n cells.
func NewFrame(n int) *Frame {
	return &Frame{roles: make([]uint8, n), Pix: make([]byte, 4*n)}
}

// Fill classifies every cell of src and writes its color.
func (f *Frame) Fill(src Source, colors Colors) {
	Roles(f.roles, src.Layout(), src.Cells(), src.History())
	fillPaletteRGBA(f.Pix, f.roles, colors.Palette())
}

// RoleAt returns the role written for cell i by the last Fill.
func (f *Frame) RoleAt(i int) Role { return Role(f.roles[i]) }
