// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import "fmt"

// ParseError is the concrete type of errors reported by the lexer and the
// parser. It records the message and the byte offset at which the error was
// detected; the line and column are recomputed from the offset on demand.
type ParseError struct {
	Message string
	Offset  int

	input string
	err   error
}

// NewParseError constructs a *ParseError for the given offset of input.
// The input is retained (not copied) so that the location can be recovered.
func NewParseError(input string, offset int, msg string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(msg, args...), Offset: offset, input: input}
}

// WithCause returns e with its underlying cause set to err.
func (e *ParseError) WithCause(err error) *ParseError { e.err = err; return e }

// LineCol returns the 1-based line and column of the error offset.
func (e *ParseError) LineCol() LineCol { return Locate(e.input, e.Offset) }

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	lc := e.LineCol()
	return fmt.Sprintf("Parse error at line %d, column %d: %s", lc.Line, lc.Column, e.Message)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.err }
