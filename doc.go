// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a lexical scanner for a strict subset of JSON,
// and the located errors reported while scanning and parsing it.
//
// # Lexing
//
// The Lexer type segments an input string into tokens. Construct a lexer
// from the input text and call its Next method to fetch tokens on demand:
//
//	lx := jparse.NewLexer(input)
//	for {
//	   tok, err := lx.Next()
//	   if err != nil {
//	      log.Fatalf("Lexing failed: %v", err)
//	   } else if tok.Kind == jparse.EOF {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// Once the input is exhausted, Next reports an EOF token on every call.
//
// The grammar is narrower than RFC 8259: strings support only the escapes
// \" \\ \n \r \t, and numbers have an optional sign, an integer part and an
// optional fraction, with no exponent.
//
// # Errors
//
// All failures are reported as a *ParseError, which records a message and
// the byte offset where the problem was detected. The line and column of an
// error are computed from the offset by Locate:
//
//	var perr *jparse.ParseError
//	if errors.As(err, &perr) {
//	   log.Printf("At %v: %s", perr.LineCol(), perr.Message)
//	}
//
// To build a value tree from the tokens, see package ast.
package jparse
