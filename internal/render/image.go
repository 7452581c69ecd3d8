package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"lifegrid/pkg/grid"
)

// Image draws g into a new RGBA image with each cell scale pixels wide.
func Image(g *grid.Grid, scale int, p Palette) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("render: scale %d", scale)
	}
	w, h := g.Width(), g.Height()
	cells := g.Export(nil)
	row := make([]byte, 4*w)
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		fillBinaryRGBA(row, cells[y*w:(y+1)*w], p.On, p.Off)
		for sy := 0; sy < scale; sy++ {
			dst := img.Pix[(y*scale+sy)*img.Stride:]
			for x := 0; x < w; x++ {
				px := row[4*x : 4*x+4]
				for sx := 0; sx < scale; sx++ {
					copy(dst[4*(x*scale+sx):], px)
				}
			}
		}
	}
	return img, nil
}

// WritePNG encodes g as a PNG.
func WritePNG(out io.Writer, g *grid.Grid, scale int, p Palette) error {
	img, err := Image(g, scale, p)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
