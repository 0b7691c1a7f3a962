// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/creachadair/jparse/internal/escape"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
	Number              // number
	Bool                // constant: true or false
	Null                // constant: null
	EOF                 // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  "'{'",
	RBrace:  "'}'",
	LSquare: "'['",
	RSquare: "']'",
	Comma:   "','",
	Colon:   "':'",
	String:  "string",
	Number:  "number",
	Bool:    "boolean",
	Null:    "null",
	EOF:     "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of the input. Only the payload field
// matching the Kind is meaningful: Text for String, Num for Number, and
// Bool for Bool.
type Token struct {
	Kind Kind
	Span Span // location of the token in the input

	Text string  // decoded string contents
	Num  float64 // numeric value
	Bool bool    // boolean value
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return "string " + strconv.Quote(t.Text)
	case Number:
		return "number " + strconv.FormatFloat(t.Num, 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(t.Bool)
	}
	return t.Kind.String()
}

// A Lexer reads lexical tokens from an input string. Each call to Next
// returns the next token, or reports an error.
//
// The lexer holds exactly one character of lookahead: ch is the character
// that begins at offset pos, and next is the offset just past it. At the end
// of input, pos == len(input) and ch < 0.
type Lexer struct {
	input string
	pos   int  // offset of ch
	next  int  // offset after ch
	ch    rune // current character, or -1 at end of input
	bad   bool // ch is an invalid UTF-8 encoding
}

const eof = -1

// NewLexer constructs a new lexer that consumes input.
func NewLexer(input string) *Lexer {
	lx := &Lexer{input: input}
	lx.advance()
	return lx
}

// Offset returns the byte offset of the next unconsumed character.
func (lx *Lexer) Offset() int { return lx.pos }

// Input returns the input text of lx.
func (lx *Lexer) Input() string { return lx.input }

// Next scans and returns the next token of the input. At the end of input it
// returns a token of kind EOF, and will continue to do so on each further
// call. Any other failure is reported as a *ParseError.
func (lx *Lexer) Next() (Token, error) {
	for lx.ch >= 0 && !lx.bad && unicode.IsSpace(lx.ch) {
		lx.advance()
	}
	start := lx.pos
	switch ch := lx.ch; {
	case lx.bad:
		return Token{}, lx.failAt(start, "invalid UTF-8 encoding")
	case ch == eof:
		return Token{Kind: EOF, Span: Span{Pos: start, End: start}}, nil
	case ch == '"':
		return lx.scanString()
	case ch == '-' || isDigit(ch):
		return lx.scanNumber()
	case unicode.IsLetter(ch):
		return lx.scanKeyword()
	default:
		if k, ok := selfDelim(ch); ok {
			lx.advance()
			return Token{Kind: k, Span: lx.spanFrom(start)}, nil
		}
		return Token{}, lx.failAt(start, "unexpected character %q", ch)
	}
}

func (lx *Lexer) scanString() (Token, error) {
	start := lx.pos
	lx.advance() // opening quote

	var buf strings.Builder
	var esc bool
	for lx.ch != eof {
		if lx.bad {
			return Token{}, lx.failAt(lx.pos, "invalid UTF-8 encoding")
		}
		ch := lx.ch
		if esc {
			// We are awaiting the completion of a \-escape.
			dec, ok := escape.Decode(ch)
			if !ok {
				return Token{}, lx.failAt(lx.pos, "invalid escape sequence %q", `\`+string(ch))
			}
			buf.WriteRune(dec)
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			lx.advance()
			return Token{Kind: String, Span: lx.spanFrom(start), Text: buf.String()}, nil
		} else {
			buf.WriteRune(ch)
		}
		lx.advance()
	}
	return Token{}, lx.failAt(start, "unterminated string")
}

func (lx *Lexer) scanNumber() (Token, error) {
	start := lx.pos
	if lx.ch == '-' {
		lx.advance()
	}
	lx.skipWhile(isDigit)

	// Only a single fraction is consumed; a second "." ends the token.
	if lx.ch == '.' {
		lx.advance()
		lx.skipWhile(isDigit)
	}

	text := lx.input[start:lx.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, lx.failAt(start, "invalid number %q", text).WithCause(err)
	}
	return Token{Kind: Number, Span: lx.spanFrom(start), Num: v}, nil
}

func (lx *Lexer) scanKeyword() (Token, error) {
	start := lx.pos
	lx.skipWhile(isNameRune)

	tok := Token{Span: lx.spanFrom(start)}
	switch word := lx.input[start:lx.pos]; word {
	case "true", "false":
		tok.Kind = Bool
		tok.Bool = word == "true"
	case "null":
		tok.Kind = Null
	default:
		return Token{}, lx.failAt(start, "unexpected keyword %q", word)
	}
	return tok, nil
}

// advance decodes the character following the current one.
func (lx *Lexer) advance() {
	lx.pos = lx.next
	if lx.pos >= len(lx.input) {
		lx.ch, lx.bad = eof, false
		return
	}
	r, n := utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.ch, lx.bad = r, r == utf8.RuneError && n == 1
	lx.next = lx.pos + n
}

// skipWhile consumes characters matching f until end of input or until a
// character not matching f is found.
func (lx *Lexer) skipWhile(f func(rune) bool) {
	for lx.ch != eof && !lx.bad && f(lx.ch) {
		lx.advance()
	}
}

func (lx *Lexer) spanFrom(pos int) Span { return Span{Pos: pos, End: lx.pos} }

func (lx *Lexer) failAt(pos int, msg string, args ...any) *ParseError {
	return NewParseError(lx.input, pos, msg, args...)
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isNameRune(ch rune) bool { return unicode.IsLetter(ch) || unicode.IsDigit(ch) }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
