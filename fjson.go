// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package fjson parses and formats JSON with C-style comments and
// trailing commas (JSONC).
//
// The functions in this package convert a complete JSONC document into
// one of three output formats:
//
//   - ToJSONC reformats the input as tidy JSONC, preserving comments and
//     blank-line grouping, for human readers.
//   - ToJSON removes all comments and renders the same layout as plain
//     JSON, still for human readers.
//   - ToJSONCompact renders minimal whitespace-free JSON for machine
//     consumption, suitable for any strict JSON parser.
//
// Each function has a Write variant that renders to an io.Writer. The
// underlying pieces are available separately: package scanner tokenizes
// JSONC input, package ast parses it into a comment-preserving tree,
// package validate checks structure without building a tree, and package
// format renders trees in the three output modes.
package fjson

import (
	"io"
	"strings"

	"github.com/creachadair/fjson/ast"
	"github.com/creachadair/fjson/format"
)

// ToJSONC parses input and renders it as tidy JSONC, preserving comments
// and blank-line grouping.
func ToJSONC(input string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(input) + 128)
	if err := WriteJSONC(&sb, input); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteJSONC parses input and renders it to w as tidy JSONC, preserving
// comments and blank-line grouping.
func WriteJSONC(w io.Writer, input string) error {
	root, err := ast.Parse(input)
	if err != nil {
		return err
	}
	var f format.Formatter
	return f.JSONC(w, root)
}

// ToJSON parses input and renders it as tidy plain JSON, with all
// comments and blank lines removed.
func ToJSON(input string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(input) + 128)
	if err := WriteJSON(&sb, input); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteJSON parses input and renders it to w as tidy plain JSON, with
// all comments and blank lines removed.
func WriteJSON(w io.Writer, input string) error {
	root, err := ast.Parse(input)
	if err != nil {
		return err
	}
	var f format.Formatter
	return f.JSON(w, root)
}

// ToJSONCompact renders input as compact JSON for machine consumption.
// The input is validated but no syntax tree is constructed.
func ToJSONCompact(input string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(input))
	if err := WriteJSONCompact(&sb, input); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteJSONCompact renders input to w as compact JSON for machine
// consumption. The input is validated but no syntax tree is constructed.
func WriteJSONCompact(w io.Writer, input string) error {
	return format.CompactTokens(w, input)
}
