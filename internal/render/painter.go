//go:build ebiten

package render

import (
	"image"
	"image/color"

	"conway-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardPainter uploads per-cell colors into a single image and draws it
// scaled, followed by optional grid lines and the edit cursor.
type BoardPainter struct {
	layout life.Layout
	img    *ebiten.Image
	frame  *Frame

	gridImg   *ebiten.Image
	gridColor color.RGBA
	gridScale int
}

// NewBoardPainter allocates a painter for the layout's full grid.
func NewBoardPainter(layout life.Layout) *BoardPainter {
	size := layout.Size()
	return &BoardPainter{
		layout: layout,
		img:    ebiten.NewImage(size.W, size.H),
		frame:  NewFrame(size.Area()),
	}
}

// Draw renders src onto dst using the cosmetic settings.
func (bp *BoardPainter) Draw(dst *ebiten.Image, src Source, s Settings, cursor image.Point, cellSize int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	colors := s.Colors()
	bp.frame.Fill(src, colors)
	bp.img.WritePixels(bp.frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(bp.img, op)

	if s.Grid {
		dst.DrawImage(bp.gridOverlay(colors.Grid, cellSize), nil)
	}

	cs := float32(cellSize)
	vector.StrokeRect(dst, float32(cursor.X)*cs+0.5, float32(cursor.Y)*cs+0.5, cs-1, cs-1, 1, CursorColor, false)
}

// gridOverlay returns a transparent image with a 1 px outline around every
// playable cell, rebuilt only when the color or scale changes.
func (bp *BoardPainter) gridOverlay(col color.RGBA, cellSize int) *ebiten.Image {
	if bp.gridImg != nil && bp.gridColor == col && bp.gridScale == cellSize {
		return bp.gridImg
	}
	size := bp.layout.Size()
	if bp.gridImg == nil || bp.gridScale != cellSize {
		bp.gridImg = ebiten.NewImage(size.W*cellSize, size.H*cellSize)
	}
	bp.gridImg.Clear()
	cs := float32(cellSize)
	r := bp.layout.Playable()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			vector.StrokeRect(bp.gridImg, float32(x)*cs+0.5, float32(y)*cs+0.5, cs-1, cs-1, 1, col, false)
		}
	}
	bp.gridColor = col
	bp.gridScale = cellSize
	return bp.gridImg
}
