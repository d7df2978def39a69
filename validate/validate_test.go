// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package validate_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/fjson/scanner"
	"github.com/creachadair/fjson/validate"
	"github.com/google/go-cmp/cmp"
)

// checkAll collects the event kinds emitted for input, failing the test
// if validation ends with anything but io.EOF.
func checkAll(t *testing.T, input string) []scanner.Kind {
	t.Helper()
	var kinds []scanner.Kind
	v := validate.New(scanner.New(input))
	for {
		if err := v.Next(); err == io.EOF {
			return kinds
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		kinds = append(kinds, v.Token().Kind)
	}
}

func TestValidator(t *testing.T) {
	tests := []struct {
		input string
		want  []scanner.Kind
	}{
		// Scalar documents.
		{`true`, []scanner.Kind{scanner.True}},
		{`"hi"`, []scanner.Kind{scanner.String}},
		{`-1.5e3`, []scanner.Kind{scanner.Number}},

		// Containers pass through token for token.
		{`{"key": true}`, []scanner.Kind{
			scanner.LBrace, scanner.String, scanner.Colon, scanner.True, scanner.RBrace,
		}},
		{`[[], {}]`, []scanner.Kind{
			scanner.LSquare, scanner.LSquare, scanner.RSquare, scanner.Comma,
			scanner.LBrace, scanner.RBrace, scanner.RSquare,
		}},

		// Metadata passes through where no comma is in play.
		{"// c\n[1]", []scanner.Kind{
			scanner.LineComment, scanner.Newline, scanner.LSquare, scanner.Number,
			scanner.RSquare,
		}},

		// A trailing comma is dropped, along with any metadata between it
		// and the closing bracket.
		{`[1, 2,]`, []scanner.Kind{
			scanner.LSquare, scanner.Number, scanner.Comma, scanner.Number, scanner.RSquare,
		}},
		{"{\"a\": 1, // c\n}", []scanner.Kind{
			scanner.LBrace, scanner.String, scanner.Colon, scanner.Number, scanner.RBrace,
		}},
		{"[true, /* x */\n]", []scanner.Kind{
			scanner.LSquare, scanner.True, scanner.RSquare,
		}},

		// Metadata after a non-trailing comma is dropped with it too.
		{"[1, // c\n 2]", []scanner.Kind{
			scanner.LSquare, scanner.Number, scanner.Comma, scanner.Number, scanner.RSquare,
		}},
	}
	for _, tc := range tests {
		got := checkAll(t, tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nKinds: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestValidatorErrors(t *testing.T) {
	tests := []struct {
		input string
		eof   bool // expect ErrUnexpectedEOF rather than TokenError
	}{
		// Incomplete documents.
		{"", true},
		{"[", true},
		{"[1", true},
		{"[1,", true},
		{`{"key": true`, true},
		{`{"key":`, true},
		{"// only a comment\n", true},

		// Tokens out of place.
		{"]", false},
		{"[}", false},
		{"{,}", false},
		{"{:1}", false},
		{`{"a" 1}`, false},
		{`{"a": 1 "b": 2}`, false},
		{"[1,,2]", false},
		{"[1 2]", false},
		{"1 2", false},
		{"{} {}", false},
		{`{"a", "b"}`, false},
		{"[1:2]", false},
	}
	for _, tc := range tests {
		err := validate.Check(tc.input)
		if err == nil {
			t.Errorf("Input %#q: validation unexpectedly succeeded", tc.input)
			continue
		}
		if tc.eof {
			if !errors.Is(err, scanner.ErrUnexpectedEOF) {
				t.Errorf("Input %#q: got %v, want %v", tc.input, err, scanner.ErrUnexpectedEOF)
			}
			continue
		}
		var terr *scanner.TokenError
		if !errors.As(err, &terr) {
			t.Errorf("Input %#q: got %v, want TokenError", tc.input, err)
		}
	}
}

func TestValidatorDepth(t *testing.T) {
	nested := func(n int) string {
		return strings.Repeat("[", n) + "1" + strings.Repeat("]", n)
	}
	if err := validate.Check(nested(scanner.MaxDepth)); err != nil {
		t.Errorf("Depth %d: unexpected error: %v", scanner.MaxDepth, err)
	}
	if err := validate.Check(nested(scanner.MaxDepth + 1)); !errors.Is(err, scanner.ErrRecursionLimit) {
		t.Errorf("Depth %d: got %v, want %v", scanner.MaxDepth+1, err, scanner.ErrRecursionLimit)
	}
}

func TestValidatorSticky(t *testing.T) {
	v := validate.New(scanner.New("[1 2]"))
	var err error
	for {
		if err = v.Next(); err != nil {
			break
		}
	}
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("Next: got %v, want a validation error", err)
	}
	for i := 0; i < 3; i++ {
		if got := v.Next(); got != err {
			t.Errorf("Next after error: got %v, want %v", got, err)
		}
	}
	if got := v.Err(); got != err {
		t.Errorf("Err: got %v, want %v", got, err)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`null`, true},
		{`[]`, true},
		{`{}`, true},
		{"// hello\n{\"a\": [1, 2,],}\n", true},
		{"/* leading */ 5 // trailing", true},

		{``, false},
		{`[,]`, false},
		{`{,}`, false},
		{`[1, 2`, false},
		{`01`, false},
		{`"unterminated`, false},
	}
	for _, tc := range tests {
		if got := validate.Valid(tc.input); got != tc.want {
			t.Errorf("Valid(%#q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}
