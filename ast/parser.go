// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"strings"

	"github.com/creachadair/jparse"
)

// DefaultMaxDepth is the default limit on the nesting of arrays and objects
// accepted by a Parser.
const DefaultMaxDepth = 1024

// Parse parses input as a single JSON value. The entire input must consist
// of exactly one value, optionally surrounded by whitespace. In case of
// error, the concrete type of the error is [*jparse.ParseError].
func Parse(input string) (Value, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// MustParse parses input as by Parse, but panics if parsing fails.
func MustParse(input string) Value {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// A Parser is a recursive descent parser that consumes tokens from a lexer
// and constructs a value tree. The parser holds the current token and one
// token of lookahead; both are always populated, with EOF once the input is
// exhausted.
type Parser struct {
	lx       *jparse.Lexer
	cur      jparse.Token
	peek     jparse.Token
	depth    int
	maxDepth int
}

// NewParser constructs a parser for input, and primes its current and
// lookahead tokens. It reports an error if either cannot be scanned.
func NewParser(input string) (*Parser, error) {
	p := &Parser{lx: jparse.NewLexer(input), maxDepth: DefaultMaxDepth}
	var err error
	if p.cur, err = p.lx.Next(); err != nil {
		return nil, err
	}
	if p.peek, err = p.lx.Next(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetMaxDepth sets the maximum nesting depth of arrays and objects accepted
// by p. If n <= 0, the limit is reset to DefaultMaxDepth.
func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// Parse parses a single value starting at the current token, and then
// requires that the input is exhausted.
func (p *Parser) Parse() (Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != jparse.EOF {
		return nil, p.failf("unexpected token after JSON value: %v", p.cur)
	}
	return v, nil
}

// parseValue consumes a single value of any type.
func (p *Parser) parseValue() (Value, error) {
	var v Value
	switch tok := p.cur; tok.Kind {
	case jparse.LBrace:
		return p.parseObject()
	case jparse.LSquare:
		return p.parseArray()
	case jparse.String:
		v = String(tok.Text)
	case jparse.Number:
		v = Number(tok.Num)
	case jparse.Bool:
		v = Bool(tok.Bool)
	case jparse.Null:
		v = Null{}
	default:
		return nil, p.failf("unexpected token: %v", tok)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return v, nil
}

// parseObject consumes zero or more key:value object members.
// Precondition: token == LBrace.
func (p *Parser) parseObject() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.expect(jparse.LBrace); err != nil {
		return nil, err
	}

	obj := Object{}
	if p.cur.Kind == jparse.RBrace {
		return obj, p.advance() // empty object
	}
	for {
		// Parse a single member: "key": value
		if p.cur.Kind != jparse.String {
			return nil, p.failf("object key must be a string, found %v", p.cur)
		}
		key := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(jparse.Colon); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj = append(obj, &Member{Key: key, Value: val})

		// Check whether we have more members (",") or are done ("}").
		if done, err := p.sepOrEnd(jparse.RBrace); err != nil {
			return nil, err
		} else if done {
			return obj, nil
		}
	}
}

// parseArray consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
func (p *Parser) parseArray() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.expect(jparse.LSquare); err != nil {
		return nil, err
	}

	arr := Array{}
	if p.cur.Kind == jparse.RSquare {
		return arr, p.advance() // empty array
	}
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		if done, err := p.sepOrEnd(jparse.RSquare); err != nil {
			return nil, err
		} else if done {
			return arr, nil
		}
	}
}

// sepOrEnd consumes either a comma or the closing token end, and reports
// whether it was end. A comma directly followed by end is rejected.
func (p *Parser) sepOrEnd(end jparse.Kind) (bool, error) {
	switch p.cur.Kind {
	case end:
		return true, p.advance()
	case jparse.Comma:
		if p.peek.Kind == end {
			return false, p.failf("trailing comma not allowed")
		}
		return false, p.advance()
	default:
		return false, p.failf("%s", tokLabel([]jparse.Kind{jparse.Comma, end}, p.cur))
	}
}

// advance shifts the lookahead token into the current slot, and scans a new
// lookahead token. Once EOF is current, the lexer is not consulted again.
func (p *Parser) advance() error {
	p.cur = p.peek
	if p.cur.Kind == jparse.EOF {
		return nil
	}
	next, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.peek = next
	return nil
}

// expect consumes the current token if its kind is want, or reports an
// error. Only the kind is compared, not the payload.
func (p *Parser) expect(want jparse.Kind) error {
	if p.cur.Kind != want {
		return p.failf("%s", tokLabel([]jparse.Kind{want}, p.cur))
	}
	return p.advance()
}

// enter records the start of a nested array or object at the current token.
func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		return p.failf("nesting too deep (limit %d)", p.maxDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() { p.depth-- }

// failf reports an error located at the start of the current token.
func (p *Parser) failf(msg string, args ...any) error {
	return jparse.NewParseError(p.lx.Input(), p.cur.Span.Pos, msg, args...)
}

// tokLabel makes a human-readable summary string for the given token kinds.
func tokLabel(kinds []jparse.Kind, got jparse.Token) string {
	var exp string
	if len(kinds) == 1 {
		exp = kinds[0].String()
	} else {
		last := len(kinds) - 1
		ss := make([]string, last)
		for i, k := range kinds[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + kinds[last].String()
	}
	return "expected " + exp + ", found " + got.String()
}
