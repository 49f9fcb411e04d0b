package input

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingToken means a line has fewer tokens than its format requires.
	ErrMissingToken = errors.New("missing token")
	// ErrExtraToken means a line has more tokens than its format allows.
	ErrExtraToken = errors.New("unexpected extra token")
	// ErrInvalidInteger means a token is not a 32-bit signed decimal integer.
	ErrInvalidInteger = errors.New("invalid integer")
)

// ParseError describes a malformed input line.
type ParseError struct {
	Line  int    // 1-based line number
	Index int    // 1-based token position, 0 when the line as a whole is at fault
	Token string // offending token, empty when the line as a whole is at fault
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, token %d %q: %v", e.Line, e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError describes a failure to open or read an input file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s file '%s': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
