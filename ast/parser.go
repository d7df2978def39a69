// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"

	"github.com/creachadair/fjson/scanner"
)

// Parse parses a single JSONC document from input.
func Parse(input string) (*Root, error) {
	p := &parser{sc: scanner.New(input)}
	return p.parseRoot()
}

// A parser is a recursive-descent JSONC parser with one token of
// lookahead over a scanner.
type parser struct {
	sc     *scanner.Scanner
	peeked bool
	ahead  scanner.Event
	depth  int // number of open containers
}

func (p *parser) parseRoot() (*Root, error) {
	if err := p.skipNewlines(nil); err != nil {
		return nil, err
	}
	above, err := p.parseMetaRun()
	if err != nil {
		return nil, err
	}
	datum, err := p.parseNextDatum()
	if err != nil {
		return nil, err
	}
	comments, err := p.parseLineComments()
	if err != nil {
		return nil, err
	}
	below, err := p.parseMetaRun()
	if err != nil {
		return nil, err
	}
	if n := len(below); n > 0 && below[n-1].IsBlank() {
		below = below[:n-1]
	}

	// The document must contain exactly one value.
	if ev, ok, err := p.peek(); err != nil {
		return nil, err
	} else if ok {
		return nil, &scanner.TokenError{Event: ev}
	}
	return &Root{
		Above: above,
		Value: &Value{Datum: datum, Comments: comments},
		Below: below,
	}, nil
}

// next returns the next event of the input. It reports false without
// error at the end of input.
func (p *parser) next() (scanner.Event, bool, error) {
	if p.peeked {
		p.peeked = false
		return p.ahead, true, nil
	}
	if err := p.sc.Next(); err == io.EOF {
		return scanner.Event{}, false, nil
	} else if err != nil {
		return scanner.Event{}, false, err
	}
	return p.sc.Token(), true, nil
}

// peek previews the next event of the input without consuming it.
func (p *parser) peek() (scanner.Event, bool, error) {
	if !p.peeked {
		ev, ok, err := p.next()
		if err != nil || !ok {
			return ev, ok, err
		}
		p.ahead, p.peeked = ev, true
	}
	return p.ahead, true, nil
}

// skip discards an event previously returned by peek.
func (p *parser) skip() { p.peeked = false }

// skipNewlines consumes a run of newline tokens. If extra != nil, it is
// set to report whether any newline was consumed. A caller that has
// already consumed a line terminator uses this to detect a blank line.
func (p *parser) skipNewlines(extra *bool) error {
	var n int
	for {
		ev, ok, err := p.peek()
		if err != nil {
			return err
		} else if !ok || ev.Kind != scanner.Newline {
			break
		}
		p.skip()
		n++
	}
	if extra != nil {
		*extra = n > 0
	}
	return nil
}

// parseMeta parses the next standalone metadata entry: a comment on its
// own line, or a run of blank lines collapsed to a single blank Meta. It
// returns nil if the next token does not begin a metadata entry.
func (p *parser) parseMeta() (*Meta, error) {
	for {
		ev, ok, err := p.peek()
		if err != nil || !ok {
			return nil, err
		}
		switch ev.Kind {
		case scanner.LineComment:
			p.skip()
			return &Meta{Comment: &Comment{Text: ev.Text}}, nil
		case scanner.BlockComment:
			p.skip()
			return &Meta{Comment: &Comment{Block: true, Text: ev.Text}}, nil
		case scanner.Newline:
			p.skip()
			var blank bool
			if err := p.skipNewlines(&blank); err != nil {
				return nil, err
			} else if blank {
				return &Meta{}, nil
			}
			// a lone newline separates entries but records nothing
		default:
			return nil, nil
		}
	}
}

func (p *parser) parseMetaRun() ([]*Meta, error) {
	var out []*Meta
	for {
		m, err := p.parseMeta()
		if err != nil {
			return nil, err
		} else if m == nil {
			return out, nil
		}
		out = append(out, m)
	}
}

// parseNextDatum parses a complete value beginning at the next token.
func (p *parser) parseNextDatum() (Datum, error) {
	ev, ok, err := p.next()
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, scanner.ErrUnexpectedEOF
	}
	switch ev.Kind {
	case scanner.LBrace:
		return p.parseObject()
	case scanner.LSquare:
		return p.parseArray()
	case scanner.String:
		return String{Text: ev.Text}, nil
	case scanner.Number:
		return Number{Text: ev.Text}, nil
	case scanner.True, scanner.False:
		return Bool{Value: ev.Bool()}, nil
	case scanner.Null:
		return Null{}, nil
	default:
		return nil, &scanner.TokenError{Event: ev}
	}
}

// parseObject parses an object body. The open brace has been consumed.
func (p *parser) parseObject() (*Object, error) {
	if p.depth >= scanner.MaxDepth {
		return nil, scanner.ErrRecursionLimit
	}
	p.depth++
	defer func() { p.depth-- }()

	// Newlines directly after the open brace record no blank line.
	if err := p.skipNewlines(nil); err != nil {
		return nil, err
	}
	obj := new(Object)
body:
	for {
		if err := p.objectMetaRun(obj); err != nil {
			return nil, err
		}
		ev, ok, err := p.next()
		if err != nil {
			return nil, err
		} else if !ok {
			return nil, scanner.ErrUnexpectedEOF
		}
		switch ev.Kind {
		case scanner.RBrace:
			break body

		case scanner.String:
			comma, err := p.parseMember(obj, ev.Text)
			if err != nil {
				return nil, err
			}
			if comma {
				continue
			}
			// Without a separating comma the next non-metadata token must
			// be a comma or the close of the object.
			if err := p.objectMetaRun(obj); err != nil {
				return nil, err
			}
			ev, ok, err := p.next()
			if err != nil {
				return nil, err
			} else if !ok {
				return nil, scanner.ErrUnexpectedEOF
			}
			switch ev.Kind {
			case scanner.Comma:
				// continue with the next entry
			case scanner.RBrace:
				break body
			default:
				return nil, &scanner.TokenError{Event: ev}
			}

		default:
			return nil, &scanner.TokenError{Event: ev}
		}
	}
	for n := len(obj.Entries); n > 0; n-- {
		m, ok := obj.Entries[n-1].(*Meta)
		if !ok || !m.IsBlank() {
			break
		}
		obj.Entries = obj.Entries[:n-1]
	}
	return obj, nil
}

// parseMember parses the remainder of an object member whose key has
// been consumed, appending it to obj, and reports whether a separating
// comma followed the member value. Metadata between the key and its
// colon, or between the colon and the value, stands before the member.
func (p *parser) parseMember(obj *Object, key string) (bool, error) {
	if err := p.skipNewlines(nil); err != nil {
		return false, err
	}
	if err := p.objectMetaRun(obj); err != nil {
		return false, err
	}
	ev, ok, err := p.next()
	if err != nil {
		return false, err
	} else if !ok {
		return false, scanner.ErrUnexpectedEOF
	} else if ev.Kind != scanner.Colon {
		return false, &scanner.TokenError{Event: ev}
	}
	if err := p.skipNewlines(nil); err != nil {
		return false, err
	}
	if err := p.objectMetaRun(obj); err != nil {
		return false, err
	}
	datum, err := p.parseNextDatum()
	if err != nil {
		return false, err
	}
	comments, comma, err := p.parseValueEnd()
	if err != nil {
		return false, err
	}
	obj.Entries = append(obj.Entries, &Member{
		Key:   key,
		Value: &Value{Datum: datum, Comments: comments},
	})
	return comma, nil
}

// parseValueEnd collects the comments trailing a value on its source
// line, and consumes at most one separating comma among them. Collection
// stops at a newline or any structural token; a second comma is an error.
func (p *parser) parseValueEnd() ([]Comment, bool, error) {
	var comments []Comment
	var comma bool
	for {
		ev, ok, err := p.peek()
		if err != nil || !ok {
			return comments, comma, err
		}
		switch ev.Kind {
		case scanner.Comma:
			if comma {
				return nil, false, &scanner.TokenError{Event: ev}
			}
			p.skip()
			comma = true
		case scanner.LineComment:
			p.skip()
			comments = append(comments, Comment{Text: ev.Text})
		case scanner.BlockComment:
			p.skip()
			comments = append(comments, Comment{Block: true, Text: ev.Text})
		default:
			return comments, comma, nil
		}
	}
}

// parseLineComments collects comments on the current source line, without
// accepting a comma. It is used after the top-level value, where no
// separator is permitted.
func (p *parser) parseLineComments() ([]Comment, error) {
	var comments []Comment
	for {
		ev, ok, err := p.peek()
		if err != nil || !ok {
			return comments, err
		}
		switch ev.Kind {
		case scanner.LineComment:
			p.skip()
			comments = append(comments, Comment{Text: ev.Text})
		case scanner.BlockComment:
			p.skip()
			comments = append(comments, Comment{Block: true, Text: ev.Text})
		default:
			return comments, nil
		}
	}
}

// parseArray parses an array body. The open bracket has been consumed.
func (p *parser) parseArray() (*Array, error) {
	if p.depth >= scanner.MaxDepth {
		return nil, scanner.ErrRecursionLimit
	}
	p.depth++
	defer func() { p.depth-- }()

	if err := p.skipNewlines(nil); err != nil {
		return nil, err
	}
	arr := new(Array)
body:
	for {
		if err := p.arrayMetaRun(arr); err != nil {
			return nil, err
		}
		if ev, ok, err := p.peek(); err != nil {
			return nil, err
		} else if !ok {
			return nil, scanner.ErrUnexpectedEOF
		} else if ev.Kind == scanner.RSquare {
			p.skip()
			break body
		}
		datum, err := p.parseNextDatum()
		if err != nil {
			return nil, err
		}
		comments, comma, err := p.parseValueEnd()
		if err != nil {
			return nil, err
		}
		arr.Entries = append(arr.Entries, &Value{Datum: datum, Comments: comments})
		if comma {
			continue
		}
		if err := p.arrayMetaRun(arr); err != nil {
			return nil, err
		}
		ev, ok, err := p.next()
		if err != nil {
			return nil, err
		} else if !ok {
			return nil, scanner.ErrUnexpectedEOF
		}
		switch ev.Kind {
		case scanner.Comma:
			// continue with the next entry
		case scanner.RSquare:
			break body
		default:
			return nil, &scanner.TokenError{Event: ev}
		}
	}
	for n := len(arr.Entries); n > 0; n-- {
		m, ok := arr.Entries[n-1].(*Meta)
		if !ok || !m.IsBlank() {
			break
		}
		arr.Entries = arr.Entries[:n-1]
	}
	return arr, nil
}

// objectMetaRun appends a run of standalone metadata entries to obj.
func (p *parser) objectMetaRun(obj *Object) error {
	for {
		m, err := p.parseMeta()
		if err != nil {
			return err
		} else if m == nil {
			return nil
		}
		obj.Entries = append(obj.Entries, m)
	}
}

// arrayMetaRun appends a run of standalone metadata entries to arr.
func (p *parser) arrayMetaRun(arr *Array) error {
	for {
		m, err := p.parseMeta()
		if err != nil {
			return err
		} else if m == nil {
			return nil
		}
		arr.Entries = append(arr.Entries, m)
	}
}
