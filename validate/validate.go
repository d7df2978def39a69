// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package validate implements a streaming structural validator for JSONC
// token streams.
//
// A Validator wraps a scanner and passes its events through unchanged,
// verifying as it goes that the token sequence forms exactly one
// well-formed JSONC value. It keeps no more state than a stack of
// container frames, bounded by scanner.MaxDepth, so arbitrarily large
// inputs validate in constant memory per nesting level.
//
// Trailing commas are accepted: when a comma is immediately followed by
// the closing bracket of its container, the comma and any comments or
// newlines between the two are dropped from the emitted stream. The
// non-metadata events emitted by a Validator therefore always spell a
// strictly valid JSON value.
package validate

import (
	"io"

	"github.com/creachadair/fjson/scanner"
)

// A frame is the parse state of one open construct on the stack.
type frame byte

const (
	frameNone frame = iota // sentinel: the stack is empty

	rootValue // a complete top-level value has been (or is being) read

	arrayStart // inside "[", before the first value
	arrayValue // inside "[", after a value
	arrayComma // inside "[", after a value and a comma

	objectStart // inside "{", before the first key
	objectKey   // inside "{", after a key
	objectColon // inside "{", after a key and its colon
	objectValue // inside "{", after a member value
	objectComma // inside "{", after a member value and a comma
)

// A Validator checks the structure of the token stream of a scanner.
//
// Call Next to advance to the next event. Once Next reports an error all
// subsequent calls report the same error; at the end of a structurally
// valid input the error is io.EOF.
type Validator struct {
	sc    *scanner.Scanner
	stack []frame

	pending    scanner.Event // a value token read while peeking past a comma
	hasPending bool

	cur scanner.Event
	err error
}

// New constructs a validator that reads and checks the events of sc.
func New(sc *scanner.Scanner) *Validator {
	return &Validator{sc: sc, stack: make([]frame, 0, scanner.MaxDepth+1)}
}

// Next advances v to the next event of the input, or reports an error.
// It returns io.EOF when a structurally valid input is exhausted.
func (v *Validator) Next() error {
	if v.err != nil {
		return v.err
	}
	var ev scanner.Event
	if v.hasPending {
		ev, v.hasPending = v.pending, false
	} else {
		ok, err := v.read(&ev)
		if err != nil {
			return v.fail(err)
		} else if !ok {
			if len(v.stack) == 1 && v.stack[0] == rootValue {
				return v.fail(io.EOF)
			}
			return v.fail(scanner.ErrUnexpectedEOF)
		}
	}
	return v.apply(ev)
}

// Token returns the most recent event reported by a successful call to
// Next.
func (v *Validator) Token() scanner.Event { return v.cur }

// Err returns the last error reported by Next, including io.EOF.
func (v *Validator) Err() error { return v.err }

// read fetches the next scanner event into *ev, reporting false without
// error at the end of input.
func (v *Validator) read(ev *scanner.Event) (bool, error) {
	if err := v.sc.Next(); err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	*ev = v.sc.Token()
	return true, nil
}

func (v *Validator) fail(err error) error { v.err = err; return err }

// apply checks ev against the current parse state and emits it.
func (v *Validator) apply(ev scanner.Event) error {
	switch ev.Kind {
	case scanner.Newline, scanner.LineComment, scanner.BlockComment:
		// metadata is passed through without inspection

	case scanner.LBrace:
		if err := v.open(ev, objectStart); err != nil {
			return v.fail(err)
		}
	case scanner.LSquare:
		if err := v.open(ev, arrayStart); err != nil {
			return v.fail(err)
		}

	case scanner.RBrace:
		switch v.top() {
		case objectStart, objectValue, objectComma:
			v.stack = v.stack[:len(v.stack)-1]
		default:
			return v.fail(&scanner.TokenError{Event: ev})
		}
	case scanner.RSquare:
		switch v.top() {
		case arrayStart, arrayValue, arrayComma:
			v.stack = v.stack[:len(v.stack)-1]
		default:
			return v.fail(&scanner.TokenError{Event: ev})
		}

	case scanner.Comma:
		switch v.top() {
		case arrayValue:
			v.setTop(arrayComma)
		case objectValue:
			v.setTop(objectComma)
		default:
			return v.fail(&scanner.TokenError{Event: ev})
		}
		return v.lookPastComma(ev)

	case scanner.Colon:
		if v.top() != objectKey {
			return v.fail(&scanner.TokenError{Event: ev})
		}
		v.setTop(objectColon)

	case scanner.String:
		switch v.top() {
		case objectStart, objectComma:
			v.setTop(objectKey)
		default:
			if err := v.value(ev); err != nil {
				return v.fail(err)
			}
		}

	case scanner.Number, scanner.True, scanner.False, scanner.Null:
		if err := v.value(ev); err != nil {
			return v.fail(err)
		}

	default:
		return v.fail(&scanner.TokenError{Event: ev})
	}
	v.cur = ev
	return nil
}

// lookPastComma reads ahead of a just-accepted comma to the next
// non-metadata token. If that token closes the enclosing container, the
// comma was a trailing comma: the close is processed and emitted instead,
// and the comma and the skipped metadata are dropped from the stream.
// Otherwise the comma is emitted and the token is saved for the next call.
func (v *Validator) lookPastComma(comma scanner.Event) error {
	for {
		var ev scanner.Event
		ok, err := v.read(&ev)
		if err != nil {
			return v.fail(err)
		} else if !ok {
			break // emit the comma; the next call reports unexpected EOF
		}
		switch ev.Kind {
		case scanner.Newline, scanner.LineComment, scanner.BlockComment:
			continue
		case scanner.RBrace, scanner.RSquare:
			return v.apply(ev)
		default:
			v.pending, v.hasPending = ev, true
		}
		break
	}
	v.cur = comma
	return nil
}

// open records the start of a container as a value in the current state,
// then pushes a new frame for its contents.
func (v *Validator) open(ev scanner.Event, fr frame) error {
	if err := v.value(ev); err != nil {
		return err
	}
	if len(v.stack) > scanner.MaxDepth {
		return scanner.ErrRecursionLimit
	}
	v.stack = append(v.stack, fr)
	return nil
}

// value records a complete value in the current parse state.
func (v *Validator) value(ev scanner.Event) error {
	switch v.top() {
	case arrayStart, arrayComma:
		v.setTop(arrayValue)
	case objectColon:
		v.setTop(objectValue)
	case frameNone:
		v.stack = append(v.stack, rootValue)
	default:
		return &scanner.TokenError{Event: ev}
	}
	return nil
}

func (v *Validator) top() frame {
	if len(v.stack) == 0 {
		return frameNone
	}
	return v.stack[len(v.stack)-1]
}

func (v *Validator) setTop(fr frame) { v.stack[len(v.stack)-1] = fr }

// Check verifies that input is a structurally valid JSONC document.
func Check(input string) error {
	v := New(scanner.New(input))
	for {
		if err := v.Next(); err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// Valid reports whether input is a structurally valid JSONC document.
func Valid(input string) bool { return Check(input) == nil }
