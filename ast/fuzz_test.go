// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/ast"
	"github.com/google/go-cmp/cmp"
)

func FuzzParse(f *testing.F) {
	files, _ := filepath.Glob("../testdata/*.json")
	for _, path := range files {
		if data, err := os.ReadFile(path); err == nil {
			f.Add(string(data))
		}
	}
	f.Add(testJSON)
	f.Add(`[1,2,]`)
	f.Add("{\"a\"\n:\t@}")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ast.Parse(input)
		if err != nil {
			var perr *jparse.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Error has type %T, want *ParseError", err)
			}
			if perr.Offset < 0 || perr.Offset > len(input) {
				t.Fatalf("Offset %d out of range (n=%d)", perr.Offset, len(input))
			}
			if got, want := perr.LineCol(), jparse.Locate(input, perr.Offset); got != want {
				t.Fatalf("Location %v, recomputed %v", got, want)
			}
			return
		}
		text := ast.Render(v)
		w, err := ast.Parse(text)
		if err != nil {
			t.Fatalf("Parse rendered %#q: %v", text, err)
		}
		if diff := cmp.Diff(v, w); diff != "" {
			t.Fatalf("Round trip (-want, +got):\n%s", diff)
		}
	})
}
