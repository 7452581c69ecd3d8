package zoo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lifegrid/pkg/grid"
)

// maxCells bounds the allocation a file header can request.
const maxCells = 1 << 30

func checkDims(w, h int64, allowZero bool) error {
	lo := int64(1)
	if allowZero {
		lo = 0
	}
	if w < lo || h < lo {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, w, h)
	}
	if w*h > maxCells {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrDimensions, w, h, maxCells)
	}
	return nil
}

// parseDim accepts only unsigned decimal digits.
func parseDim(s string) (int64, bool) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return n, err == nil
}

// ReadASCII decodes the .gol text format: a "<width> <height>" line with the
// two decimals separated by a single space, followed by height lines of
// exactly width ' ' or '#' characters.
func ReadASCII(r io.Reader) (*grid.Grid, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: header", ErrTruncated)
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	line := strings.TrimSuffix(header, "\n")
	ws, hs, ok := strings.Cut(line, " ")
	w, okW := parseDim(ws)
	h, okH := parseDim(hs)
	if !ok || !okW || !okH {
		return nil, fmt.Errorf("%w: header %q", ErrDimensions, line)
	}
	if err := checkDims(w, h, false); err != nil {
		return nil, err
	}

	g := grid.New(int(w), int(h))
	cells := g.Cells()
	next := func() (byte, error) {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, ErrTruncated
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrIO, err)
		}
		return b, nil
	}
	for y := 0; y < int(h); y++ {
		for x := 0; x < int(w); x++ {
			b, err := next()
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", y, err)
			}
			c, err := grid.ParseCell(b)
			if err != nil {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrInvalidCell, b, x, y)
			}
			cells[y*int(w)+x] = c
		}
		b, err := next()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		if b != '\n' {
			return nil, fmt.Errorf("%w: row %d has %q after %d cells", ErrMissingNewline, y, b, w)
		}
	}
	return g, nil
}

// WriteASCII encodes g in the .gol text format.
func WriteASCII(w io.Writer, g *grid.Grid) error {
	if err := checkDims(int64(g.Width()), int64(g.Height()), false); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Width(), g.Height())
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for _, c := range cells[y*g.Width() : (y+1)*g.Width()] {
			bw.WriteByte(byte(c.Rune()))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
