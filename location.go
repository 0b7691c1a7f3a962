// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column of a location in source
// text. Columns count bytes, so a multi-byte rune advances the column by its
// encoded length.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Locate reports the line and column of the given byte offset in input.
// The line is one more than the number of newlines before offset, and the
// column is the distance from the last such newline (or from the start of
// input). An offset outside input is clamped to the nearest end, so Locate
// never fails.
func Locate(input string, offset int) LineCol {
	offset = min(max(offset, 0), len(input))
	src := mem.S(input).SliceTo(offset)

	line, last := 1, -1
	for base := 0; ; {
		i := mem.IndexByte(src.SliceFrom(base), '\n')
		if i < 0 {
			break
		}
		line++
		last = base + i
		base = last + 1
	}
	return LineCol{Line: line, Column: offset - last}
}
