// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"math"
)

// ToValue converts a plain Go value into a Value. It accepts nil, bool,
// string, the built-in integer and floating-point types, []any, and values
// already of type Value; the elements of a []any are converted recursively.
// ToValue panics for any other type, and for floating-point values that are
// infinite or NaN.
func ToValue(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return toNumber(float64(t))
	case float64:
		return toNumber(t)
	case []Value:
		return Array(t)
	case []any:
		arr := make(Array, len(t))
		for i, elt := range t {
			arr[i] = ToValue(elt)
		}
		return arr
	default:
		panic(fmt.Sprintf("unsupported value type %T", x))
	}
}

func toNumber(f float64) Number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic(fmt.Sprintf("unsupported number %v", f))
	}
	return Number(f)
}
