// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"github.com/creachadair/jparse/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added. Only the characters the lexer can decode
// (", \, newline, carriage return and tab) are escaped, so that the result
// always scans back to src.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	return string(append(buf, '"'))
}
