//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads 0/1 cell data into an ebiten image and draws it
// scaled. The backing image follows the cell count passed to Blit.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, p Palette) *GridPainter {
	gp := &GridPainter{palette: p}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Deallocate()
		gp.img = nil
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
}

// Blit draws cells, a w*h board, onto dst with each cell scale pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, w, h, scale int) {
	if len(cells) != w*h {
		return
	}
	if w != gp.w || h != gp.h {
		gp.resize(w, h)
	}
	if gp.img == nil {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.palette.On, gp.palette.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
