package zoo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"lifegrid/pkg/grid"
)

// HeaderLen is the size of the .bgol header: width then height as native
// endian int32.
const HeaderLen = 8

type binaryHeader struct {
	Width  int32
	Height int32
}

// PackedLen returns the number of payload bytes for a w*h grid.
func PackedLen(w, h int) int { return (w*h + 7) / 8 }

// ReadBinary decodes the .bgol format. Cell i in row-major order is bit i%8 of
// payload byte i/8; bits past the last cell are ignored.
func ReadBinary(r io.Reader) (*grid.Grid, error) {
	var hdr binaryHeader
	if err := binary.Read(r, binary.NativeEndian, &hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: header", ErrTruncated)
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := checkDims(int64(hdr.Width), int64(hdr.Height), true); err != nil {
		return nil, err
	}
	w, h := int(hdr.Width), int(hdr.Height)

	payload := make([]byte, PackedLen(w, h))
	if n, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: payload has %d of %d bytes", ErrTruncated, n, len(payload))
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	g := grid.New(w, h)
	cells := g.Cells()
	for i := range cells {
		if payload[i/8]>>(i%8)&1 == 1 {
			cells[i] = grid.Alive
		}
	}
	return g, nil
}

// WriteBinary encodes g in the .bgol format with zeroed padding bits.
func WriteBinary(w io.Writer, g *grid.Grid) error {
	if err := checkDims(int64(g.Width()), int64(g.Height()), true); err != nil {
		return err
	}
	buf := make([]byte, HeaderLen+PackedLen(g.Width(), g.Height()))
	binary.NativeEndian.PutUint32(buf[0:4], uint32(int32(g.Width())))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(int32(g.Height())))
	payload := buf[HeaderLen:]
	for i, c := range g.Cells() {
		if c == grid.Alive {
			payload[i/8] |= 1 << (i % 8)
		}
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
