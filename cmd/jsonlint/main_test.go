// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jparse"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Write %q: %v", path, err)
	}
	return path
}

// execute runs the command with the given arguments and environment, and
// returns its output and error.
func execute(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd(func(key string) string { return env[key] })
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValid(t *testing.T) {
	path := writeFile(t, "ok.json", `{"key": "value", "n": [1, 2.5]}`)
	out, err := execute(t, nil, path)
	if err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("Output: got %q, want empty", out)
	}
}

func TestPrint(t *testing.T) {
	path := writeFile(t, "ok.json", `{"key":"value","n":[1,2.5]}`)
	const want = "Valid JSON\n{\"key\": \"value\", \"n\": [1, 2.5]}\n"

	t.Run("Flag", func(t *testing.T) {
		out, err := execute(t, nil, "--print", path)
		if err != nil {
			t.Fatalf("Execute: unexpected error: %v", err)
		}
		if out != want {
			t.Errorf("Output: got %q, want %q", out, want)
		}
	})
	t.Run("DEBUG", func(t *testing.T) {
		out, err := execute(t, map[string]string{"DEBUG": "1"}, path)
		if err != nil {
			t.Fatalf("Execute: unexpected error: %v", err)
		}
		if out != want {
			t.Errorf("Output: got %q, want %q", out, want)
		}
	})
}

func TestInvalid(t *testing.T) {
	path := writeFile(t, "bad.json", "{\n  \"key\": \"value\",\n}\n")
	out, err := execute(t, nil, path)

	var perr *jparse.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Execute: got %v, want *ParseError", err)
	}
	const want = "Parse error at line 2, column 17: trailing comma not allowed"
	if got := err.Error(); got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	if strings.Contains(out, "Usage:") {
		t.Errorf("Parse failure printed usage:\n%s", out)
	}
}

func TestMaxDepth(t *testing.T) {
	path := writeFile(t, "deep.json", `[[[1]]]`)
	if _, err := execute(t, nil, "--max-depth", "3", path); err != nil {
		t.Errorf("Execute depth 3: unexpected error: %v", err)
	}
	_, err := execute(t, nil, "--max-depth", "2", path)
	if err == nil || !strings.Contains(err.Error(), "nesting too deep") {
		t.Errorf("Execute depth 2: got %v, want nesting error", err)
	}
}

func TestHuJSON(t *testing.T) {
	const input = `{
  // A comment.
  "a": [1, 2,],
  /* Another. */ "b": true,
}`
	path := writeFile(t, "lenient.hujson", input)
	if _, err := execute(t, nil, path); err == nil {
		t.Error("Execute without --hujson: got nil, want error")
	}
	out, err := execute(t, nil, "--hujson", "--print", path)
	if err != nil {
		t.Fatalf("Execute with --hujson: unexpected error: %v", err)
	}
	if want := "Valid JSON\n{\"a\": [1, 2], \"b\": true}\n"; out != want {
		t.Errorf("Output: got %q, want %q", out, want)
	}
}

func TestReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := execute(t, nil, path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Execute: got %v, want %v", err, fs.ErrNotExist)
	}
	if got := err.Error(); !strings.HasPrefix(got, "Error reading file '"+path+"': ") {
		t.Errorf("Error: got %q", got)
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"a.json", "b.json"}} {
		out, err := execute(t, nil, args...)
		if err == nil {
			t.Errorf("Execute(%q): got nil, want error", args)
		}
		if !strings.Contains(out, "Usage:") {
			t.Errorf("Execute(%q): output lacks usage:\n%s", args, out)
		}
	}
}
