// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// Quote encodes src for inclusion in a JSON string, escaping the characters
// for which Encode reports an escape. Other bytes, including control
// characters and non-ASCII text, are copied unchanged. The enclosing double
// quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := indexEscape(src)
		if i < 0 {
			buf = mem.Append(buf, src)
			break
		}
		buf = mem.Append(buf, src.SliceTo(i))
		c, _ := Encode(src.At(i))
		buf = append(buf, '\\', c)
		src = src.SliceFrom(i + 1)
	}
	return buf
}

// indexEscape returns the offset of the first byte of src that needs an
// escape, or -1.
func indexEscape(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		if _, ok := Encode(src.At(i)); ok {
			return i
		}
	}
	return -1
}
