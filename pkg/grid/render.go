package grid

import (
	"bytes"
	"io"
)

// AppendText appends the canonical bordered rendering of g to buf.
func (g *Grid) AppendText(buf []byte) []byte {
	border := func(buf []byte) []byte {
		buf = append(buf, '+')
		for x := 0; x < g.w; x++ {
			buf = append(buf, '-')
		}
		return append(buf, '+', '\n')
	}
	buf = border(buf)
	for y := 0; y < g.h; y++ {
		buf = append(buf, '|')
		for _, c := range g.cells[y*g.w : (y+1)*g.w] {
			buf = append(buf, byte(c.Rune()))
		}
		buf = append(buf, '|', '\n')
	}
	return border(buf)
}

// String returns the canonical rendering: a '+'/'-'/'|' border around one
// line per row, '#' for live cells and ' ' for dead ones.
func (g *Grid) String() string {
	return string(g.AppendText(make([]byte, 0, (g.w+3)*(g.h+2))))
}

// WriteTo writes the canonical rendering to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewBuffer(g.AppendText(nil)).WriteTo(w)
}
