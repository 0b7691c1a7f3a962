// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences permitted in JSON strings.
//
// Only five escapes are recognized: \" \\ \n \r \t. In particular, \uXXXX,
// \b, \f and \/ are not supported, and are reported as invalid by the lexer.
package escape

// Decode reports the character denoted by the escape sequence \c, and
// whether c names a recognized escape.
func Decode(c rune) (rune, bool) {
	switch c {
	case '"', '\\':
		return c, true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// encode maps a character to the letter of its escape, or 0.
var encode = [...]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

// Encode reports the escape letter for b, and whether b must be escaped.
func Encode(b byte) (byte, bool) {
	if int(b) < len(encode) && encode[b] != 0 {
		return encode[b], true
	}
	return 0, false
}
