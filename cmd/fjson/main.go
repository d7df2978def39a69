// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program fjson reformats JSON with C-style comments and trailing commas
// (JSONC).
//
// By default it reads JSONC from stdin or the named files and writes tidy
// JSONC to stdout, preserving comments. With --json comments are removed
// and the output is plain JSON; with --compact the output is minimal
// machine-readable JSON. With --write each named file is rewritten in
// place instead.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/fjson/ast"
	"github.com/creachadair/fjson/format"
	"github.com/spf13/cobra"
)

func main() {
	if err := command().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fjson: %v\n", err)
		os.Exit(1)
	}
}

type settings struct {
	json    bool
	compact bool
	write   bool
	indent  string
	width   int
}

func command() *cobra.Command {
	var opts settings
	cmd := &cobra.Command{
		Use:   "fjson [flags] [file...]",
		Short: "Reformat JSON with comments and trailing commas",

		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(args)
		},
	}
	fs := cmd.Flags()
	fs.BoolVarP(&opts.json, "json", "j", false, "Remove comments and emit plain JSON")
	fs.BoolVarP(&opts.compact, "compact", "c", false, "Emit compact JSON for machine consumption")
	fs.BoolVarP(&opts.write, "write", "w", false, "Rewrite the named files in place")
	fs.StringVar(&opts.indent, "indent", "", `Indentation for each nesting level (default "  ")`)
	fs.IntVar(&opts.width, "width", 0, "Maximum line length (default 80)")
	cmd.MarkFlagsMutuallyExclusive("json", "compact")
	return cmd
}

func (s settings) run(args []string) error {
	if len(args) == 0 {
		if s.write {
			return errors.New("cannot use --write without input files")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		out, err := s.render(string(data))
		if err != nil {
			return err
		}
		_, err = io.WriteString(os.Stdout, out)
		return err
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := s.render(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if s.write {
			err = os.WriteFile(path, []byte(out), 0644)
		} else {
			_, err = io.WriteString(os.Stdout, out)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s settings) render(input string) (string, error) {
	var sb strings.Builder
	if s.compact {
		if err := format.CompactTokens(&sb, input); err != nil {
			return "", err
		}
		return sb.String(), nil
	}

	root, err := ast.Parse(input)
	if err != nil {
		return "", err
	}
	f := format.Formatter{Indent: s.indent, LineLength: s.width}
	if s.json {
		err = f.JSON(&sb, root)
	} else {
		err = f.JSONC(&sb, root)
	}
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
