// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jsonlint checks whether a file contains a single well-formed JSON
// value. It exits with status 0 if the file parses, and 1 otherwise; parse
// errors are reported with their line and column on standard error.
//
// Usage:
//
//	jsonlint [flags] <file>
//
// If the DEBUG environment variable is set, or --print is given, the parsed
// value is printed to standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jparse/ast"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jsonlint")

func main() {
	if err := newRootCmd(os.Getenv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the settings of a single invocation.
type options struct {
	hujson    bool
	print     bool
	maxDepth  int
	verbosity int
}

// newRootCmd constructs the command. The getenv function is consulted for
// the DEBUG toggle.
func newRootCmd(getenv func(string) string) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "jsonlint <file>",
		Short:         "Check that a file contains a single valid JSON value",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Errors past this point are reported without usage text.
			cmd.SilenceUsage = true
			commonlog.Configure(opts.verbosity, nil)

			if getenv("DEBUG") != "" {
				opts.print = true
			}
			return run(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.SetErr(os.Stderr)

	flags := cmd.Flags()
	flags.BoolVar(&opts.hujson, "hujson", false, "Accept comments and trailing commas")
	flags.BoolVar(&opts.print, "print", false, "Print the parsed value on success")
	flags.IntVar(&opts.maxDepth, "max-depth", ast.DefaultMaxDepth, "Maximum nesting depth")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase log verbosity")
	return cmd
}

// errRead wraps a failure to read the input file.
type errRead struct {
	path string
	err  error
}

func (e errRead) Error() string { return fmt.Sprintf("Error reading file '%s': %v", e.path, e.err) }

func (e errRead) Unwrap() error { return e.err }

func run(w io.Writer, path string, opts options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errRead{path: path, err: err}
	}
	log.Debugf("read %d bytes from %q", len(data), path)

	if opts.hujson {
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("standardize %q: %w", path, err)
		}
		log.Debugf("standardized %d bytes to %d", len(data), len(std))
		data = std
	}

	v, err := parse(string(data), opts.maxDepth)
	if err != nil {
		return err
	}
	log.Infof("parsed %q: valid JSON", path)

	if opts.print {
		fmt.Fprintln(w, "Valid JSON")
		fmt.Fprintln(w, ast.Render(v))
	}
	return nil
}

func parse(input string, maxDepth int) (ast.Value, error) {
	p, err := ast.NewParser(input)
	if err != nil {
		return nil, err
	}
	p.SetMaxDepth(maxDepth)
	return p.Parse()
}
