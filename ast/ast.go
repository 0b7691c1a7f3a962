// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a value tree for JSON documents, and a recursive
// descent parser that constructs value trees from JSON source.
package ast

// A Value is an arbitrary JSON value. The concrete type is one of Null,
// Bool, Number, String, Array, or Object; no other implementations exist.
type Value interface {
	// JSON returns the canonical JSON rendering of the value.
	JSON() string

	isValue()
}

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// A Number is a numeric value, stored as a float64.
type Number float64

// A String is a decoded string value.
type String string

// An Array is an ordered sequence of values.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is an ordered sequence of key-value members. Keys are not
// required to be unique; members with duplicate keys are retained in the
// order they were parsed.
type Object []*Member

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// FindAll returns all the members of o with the given key, in order.
func (o Object) FindAll(key string) []*Member {
	var out []*Member
	for _, m := range o {
		if m.Key == key {
			out = append(out, m)
		}
	}
	return out
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

func (Null) JSON() string { return Render(Null{}) }
func (b Bool) JSON() string { return Render(b) }
func (n Number) JSON() string { return Render(n) }
func (s String) JSON() string { return Render(s) }
func (a Array) JSON() string { return Render(a) }
func (o Object) JSON() string { return Render(o) }

func (Null) isValue() {}
func (Bool) isValue() {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue() {}
func (Object) isValue() {}
