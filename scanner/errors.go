// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package scanner

import (
	"errors"
	"fmt"
)

// MaxDepth is the maximum nesting depth of arrays and objects accepted by
// the parser and the validator. Inputs that nest more deeply than this
// report ErrRecursionLimit.
const MaxDepth = 128

var (
	// ErrUnexpectedEOF is reported when the input ends inside an
	// unfinished token or construct.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrRecursionLimit is reported when the nesting depth of the input
	// exceeds MaxDepth.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)

// A CharError reports a character that cannot begin or continue a token
// at its position in the input.
type CharError struct {
	Offset int  // byte offset in the input
	Char   rune // the offending character
}

func (e *CharError) Error() string {
	return fmt.Sprintf("offset %d: unexpected character %q", e.Offset, e.Char)
}

// A TokenError reports a well-formed token that is not permitted by the
// grammar at its position in the input.
type TokenError struct {
	Event Event // the offending token
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("offset %d: unexpected %v", e.Event.Pos, e.Event.Kind)
}
