package zoo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lifegrid/pkg/grid"
)

// Format identifies an on-disk grid encoding.
type Format int

const (
	FormatASCII Format = iota
	FormatBinary
)

func (f Format) String() string {
	if f == FormatBinary {
		return "bgol"
	}
	return "gol"
}

// FormatOf picks the format from the file extension: .gol or .bgol.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gol":
		return FormatASCII, nil
	case ".bgol":
		return FormatBinary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Decode reads a grid in format f.
func Decode(r io.Reader, f Format) (*grid.Grid, error) {
	if f == FormatBinary {
		return ReadBinary(r)
	}
	return ReadASCII(r)
}

// Encode writes g in format f.
func Encode(w io.Writer, g *grid.Grid, f Format) error {
	if f == FormatBinary {
		return WriteBinary(w, g)
	}
	return WriteASCII(w, g)
}

func loadFile(path string, f Format) (*grid.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()
	g, err := Decode(bufio.NewReader(file), f)
	if err != nil {
		return nil, &FileError{Op: "decode", Path: path, Err: err}
	}
	return g, nil
}

func saveFile(path string, g *grid.Grid, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}
	if err := Encode(file, g, f); err != nil {
		file.Close()
		return &FileError{Op: "encode", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &FileError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// LoadASCII reads a .gol file.
func LoadASCII(path string) (*grid.Grid, error) { return loadFile(path, FormatASCII) }

// SaveASCII writes g to a .gol file.
func SaveASCII(path string, g *grid.Grid) error { return saveFile(path, g, FormatASCII) }

// LoadBinary reads a .bgol file.
func LoadBinary(path string) (*grid.Grid, error) { return loadFile(path, FormatBinary) }

// SaveBinary writes g to a .bgol file.
func SaveBinary(path string, g *grid.Grid) error { return saveFile(path, g, FormatBinary) }

// Load reads a grid, choosing the codec from the file extension.
func Load(path string) (*grid.Grid, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	return loadFile(path, f)
}

// Save writes g, choosing the codec from the file extension.
func Save(path string, g *grid.Grid) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	return saveFile(path, g, f)
}
