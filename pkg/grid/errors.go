package grid

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("grid: coordinate out of range")
	ErrInvalidArgument = errors.New("grid: invalid argument")
)

// RangeError reports a coordinate outside [0,Limit) on one axis.
type RangeError struct {
	Op    string
	Axis  string
	Value int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("grid: %s: %s=%d out of range [0,%d)", e.Op, e.Axis, e.Value, e.Limit)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
