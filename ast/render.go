// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jparse"
)

// Render returns the canonical JSON rendering of v.
//
// Arrays render as [v1, v2] and objects as {"k1": v1, "k2": v2}. Numbers are
// rendered in plain decimal notation, with no fraction if the value is
// integral and never with an exponent, so the result can always be parsed
// again. Strings are escaped as by [jparse.Quote]. Render panics if v is nil.
func Render(v Value) string { return string(appendJSON(nil, v)) }

func appendJSON(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case Null:
		return append(buf, "null"...)
	case Bool:
		return strconv.AppendBool(buf, bool(t))
	case Number:
		return strconv.AppendFloat(buf, float64(t), 'f', -1, 64)
	case String:
		return append(buf, jparse.Quote(string(t))...)
	case Array:
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = appendJSON(buf, elt)
		}
		return append(buf, ']')
	case Object:
		buf = append(buf, '{')
		for i, m := range t {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = append(buf, jparse.Quote(m.Key)...)
			buf = append(buf, ": "...)
			buf = appendJSON(buf, m.Value)
		}
		return append(buf, '}')
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
