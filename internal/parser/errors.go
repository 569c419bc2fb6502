package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by FormatError and returned by entity decoders.
var (
	ErrNestingTooDeep = errors.New("blocks nest at most two levels deep")
	ErrUnclosedBlock  = errors.New("block is not closed before end of input")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidMode    = errors.New("invalid permission mode")
	ErrShortKeyBind   = errors.New("keybind needs at least modifiers, key and dispatcher")
	ErrTooFewFields   = errors.New("too few fields")
	ErrMalformed      = errors.New("malformed directive")
)

// ReadError reports that a configuration file could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// FormatError reports a structural problem that aborts a parse: a malformed
// permission block, blocks nested too deeply, or (in strict mode) any
// entity that could not be decoded. Block names the offending block or
// directive.
type FormatError struct {
	Path  string
	Line  int
	Block string
	Err   error
}

func (e *FormatError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Block != "" {
		return fmt.Sprintf("%s: %s: %v", loc, e.Block, e.Err)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
