package sentence

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a record without one of the parse fields.
	ErrMissingField = errors.New("missing field")

	// ErrNotString indicates a parse field holding a non string value.
	ErrNotString = errors.New("field is not a string")
)

// ParseError is returned for a corpus line that does not decode into a
// Record. Source and Line are set by the reader that owns the line.
type ParseError struct {
	Source string
	Line   int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "JSON decoding error"
	if e.Source != "" {
		msg = fmt.Sprintf("%s: %s:%d", msg, e.Source, e.Line)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError is returned when a corpus source or an output file can not be
// read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("IO error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
