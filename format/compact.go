// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package format

import (
	"io"

	"github.com/creachadair/fjson/scanner"
	"github.com/creachadair/fjson/validate"
)

// CompactTokens renders input as compact JSON directly from its validated
// token stream, without constructing a syntax tree. Comments, newlines,
// and trailing commas are dropped; all other tokens are copied to w
// verbatim from the input. The output ends with a newline.
//
// For any input it accepts, CompactTokens writes the same output as
// [Formatter.Compact] applied to the parsed input.
func CompactTokens(w io.Writer, input string) error {
	v := validate.New(scanner.New(input))
	for {
		if err := v.Next(); err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		ev := v.Token()
		if ev.Kind.IsMetadata() {
			continue
		}
		if _, err := io.WriteString(w, input[ev.Pos:ev.End]); err != nil {
			return &WriteError{Err: err}
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
