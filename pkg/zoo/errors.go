package zoo

import (
	"errors"
	"fmt"
)

// ErrIO is the root of every codec failure, keeping file problems
// distinguishable from grid.ErrOutOfRange and grid.ErrInvalidArgument.
var ErrIO = errors.New("zoo: io error")

var (
	ErrTruncated      = fmt.Errorf("%w: unexpected end of file", ErrIO)
	ErrInvalidCell    = fmt.Errorf("%w: invalid cell character", ErrIO)
	ErrMissingNewline = fmt.Errorf("%w: newline expected", ErrIO)
	ErrDimensions     = fmt.Errorf("%w: invalid dimensions", ErrIO)
	ErrUnknownFormat  = fmt.Errorf("%w: unknown file format", ErrIO)

	ErrUnknownPattern = errors.New("zoo: unknown pattern")
)

// FileError records the file operation and path that failed.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("zoo: %s %s: %v", e.Op, e.Path, e.Err) }

func (e *FileError) Unwrap() error { return e.Err }

// Is lets open and create failures from the os package match ErrIO.
func (e *FileError) Is(target error) bool { return target == ErrIO }
