package zoo

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifegrid/pkg/grid"
)

func TestPatternShapes(t *testing.T) {
	cases := []struct {
		name  string
		g     *grid.Grid
		w, h  int
		alive int
		art   string
	}{
		{"glider", Glider(), 3, 3, 5, "+---+\n| # |\n|  #|\n|###|\n+---+\n"},
		{"rpent", RPentomino(), 3, 3, 5, "+---+\n| ##|\n|## |\n| # |\n+---+\n"},
		{"lwss", LightWeightSpaceship(), 5, 4, 9, "+-----+\n| #  #|\n|#    |\n|#   #|\n|#### |\n+-----+\n"},
		{"block", Block(), 2, 2, 4, "+--+\n|##|\n|##|\n+--+\n"},
		{"blinker", Blinker(), 1, 3, 3, "+-+\n|#|\n|#|\n|#|\n+-+\n"},
	}
	for _, tc := range cases {
		if tc.g.Width() != tc.w || tc.g.Height() != tc.h || tc.g.AliveCount() != tc.alive {
			t.Fatalf("%s: %dx%d alive=%d", tc.name, tc.g.Width(), tc.g.Height(), tc.g.AliveCount())
		}
		if tc.g.String() != tc.art {
			t.Fatalf("%s rendering:\n%s", tc.name, tc.g)
		}
		byName, err := Pattern(tc.name)
		if err != nil || !byName.Equal(tc.g) {
			t.Fatalf("Pattern(%q) = %v, %v", tc.name, byName, err)
		}
	}
	if _, err := Pattern("spaceship-9000"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
	if names := Names(); len(names) != 5 || names[0] != "blinker" {
		t.Fatalf("names %v", names)
	}
}

func TestPatternReturnsFreshCopy(t *testing.T) {
	a, _ := Pattern("glider")
	a.Clear()
	b, _ := Pattern("glider")
	if b.AliveCount() != 5 {
		t.Fatal("pattern factory returned shared storage")
	}
}

func TestSoupDeterministic(t *testing.T) {
	a, b := Soup(30, 20, 0.35, 5), Soup(30, 20, 0.35, 5)
	if !a.Equal(b) {
		t.Fatal("soup not deterministic for equal seeds")
	}
	if a.AliveCount() == 0 || a.DeadCount() == 0 {
		t.Fatalf("soup density looks wrong: alive=%d", a.AliveCount())
	}
	if Soup(10, 10, 0, 1).AliveCount() != 0 {
		t.Fatal("density 0 produced live cells")
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	g := LightWeightSpaceship()
	var buf bytes.Buffer
	if err := WriteASCII(&buf, g); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "5 4\n #  #\n#    \n#   #\n#### \n"
	if buf.String() != want {
		t.Fatalf("encoded %q, expected %q", buf.String(), want)
	}
	out, err := ReadASCII(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !out.Equal(g) {
		t.Fatalf("round trip mismatch:\n%s", out)
	}
}

func TestASCIIErrors(t *testing.T) {
	cases := map[string]error{
		"":                 ErrTruncated,
		"3 2":              ErrTruncated,
		"0 2\n":            ErrDimensions,
		"3 -1\n":           ErrDimensions,
		"three 2\n":        ErrDimensions,
		"3 2 1\n":          ErrDimensions,
		"3 2\n# #\n":       ErrTruncated,
		"3 2\n# #\n##":     ErrTruncated,
		"3 2\n# #\n#x#\n":  ErrInvalidCell,
		"3 2\n# ##\n###\n": ErrMissingNewline,
		"3 1\n# #":         ErrTruncated,
		"+2 1\n##\n":       ErrDimensions,
		"2\t1\n##\n":       ErrDimensions,
		"  2   1  \n##\n":  ErrDimensions,
		"2  1\n##\n":       ErrDimensions,
		"2 1 \n##\n":       ErrDimensions,
	}
	for in, want := range cases {
		_, err := ReadASCII(strings.NewReader(in))
		if !errors.Is(err, want) {
			t.Fatalf("ReadASCII(%q): expected %v, got %v", in, want, err)
		}
		if !errors.Is(err, ErrIO) {
			t.Fatalf("ReadASCII(%q): %v is not an ErrIO", in, err)
		}
		if errors.Is(err, grid.ErrOutOfRange) || errors.Is(err, grid.ErrInvalidArgument) {
			t.Fatalf("ReadASCII(%q): codec error confused with grid error", in)
		}
	}
	if err := WriteASCII(&bytes.Buffer{}, grid.New(0, 3)); !errors.Is(err, ErrDimensions) {
		t.Fatalf("writing an empty grid: expected ErrDimensions, got %v", err)
	}
}

func TestBinaryRoundTripWithPadding(t *testing.T) {
	// 5x3 = 15 cells: the last payload byte carries one padding bit.
	g := grid.New(5, 3)
	for _, p := range [][2]int{{0, 0}, {4, 0}, {2, 1}, {3, 2}, {4, 2}} {
		g.Set(p[0], p[1], grid.Alive)
	}
	var buf bytes.Buffer
	if err := WriteBinary(&buf, g); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw := buf.Bytes()
	if len(raw) != HeaderLen+2 {
		t.Fatalf("encoded %d bytes, expected %d", len(raw), HeaderLen+2)
	}
	if w := int32(binary.NativeEndian.Uint32(raw[0:4])); w != 5 {
		t.Fatalf("header width %d", w)
	}
	if h := int32(binary.NativeEndian.Uint32(raw[4:8])); h != 3 {
		t.Fatalf("header height %d", h)
	}
	// cells 0,4,7 -> 0b10010001; cells 13,14 -> bits 5,6 of byte 1.
	if raw[8] != 0x91 || raw[9] != 0x60 {
		t.Fatalf("payload % x", raw[8:])
	}

	out, err := ReadBinary(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !out.Equal(g) {
		t.Fatalf("round trip mismatch:\n%s\nexpected\n%s", out, g)
	}

	// Set padding bit must not leak into the grid.
	dirty := append([]byte(nil), raw...)
	dirty[9] |= 0x80
	out, err = ReadBinary(bytes.NewReader(dirty))
	if err != nil || !out.Equal(g) {
		t.Fatalf("padding bit corrupted grid: %v\n%s", err, out)
	}
}

func TestBinaryTruncation(t *testing.T) {
	var buf bytes.Buffer
	WriteBinary(&buf, Soup(9, 9, 0.5, 3))
	raw := buf.Bytes()
	for _, n := range []int{0, 3, HeaderLen, len(raw) - 1} {
		_, err := ReadBinary(bytes.NewReader(raw[:n]))
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("%d of %d bytes: expected ErrTruncated, got %v", n, len(raw), err)
		}
	}
}

func TestBinaryRejectsNegativeDimensions(t *testing.T) {
	hdr := make([]byte, HeaderLen)
	binary.NativeEndian.PutUint32(hdr[0:4], uint32(0xFFFFFFFF))
	binary.NativeEndian.PutUint32(hdr[4:8], 2)
	if _, err := ReadBinary(bytes.NewReader(hdr)); !errors.Is(err, ErrDimensions) {
		t.Fatalf("expected ErrDimensions, got %v", err)
	}
}

func TestBinaryEmptyGrid(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, grid.New(0, 4)); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Width() != 0 || out.Height() != 4 {
		t.Fatalf("decoded %dx%d", out.Width(), out.Height())
	}
}

func TestFileLoadSave(t *testing.T) {
	dir := t.TempDir()
	g := RPentomino()
	for _, name := range []string{"r.gol", "r.bgol"} {
		path := filepath.Join(dir, name)
		if err := Save(path, g); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		out, err := Load(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if !out.Equal(g) {
			t.Fatalf("%s round trip mismatch:\n%s", name, out)
		}
	}
	if out, err := LoadASCII(filepath.Join(dir, "r.gol")); err != nil || !out.Equal(g) {
		t.Fatalf("LoadASCII: %v", err)
	}
	if out, err := LoadBinary(filepath.Join(dir, "r.bgol")); err != nil || !out.Equal(g) {
		t.Fatalf("LoadBinary: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.gol")); !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: expected ErrIO wrapping ErrNotExist, got %v", err)
	}
	if err := Save(filepath.Join(dir, "r.txt"), g); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("unknown extension: expected ErrUnknownFormat, got %v", err)
	}

	bad := filepath.Join(dir, "bad.gol")
	os.WriteFile(bad, []byte("2 2\n###\n"), 0o644)
	_, err := LoadASCII(bad)
	var ferr *FileError
	if !errors.As(err, &ferr) || ferr.Op != "decode" || !errors.Is(err, ErrMissingNewline) {
		t.Fatalf("bad file: %v", err)
	}
}
