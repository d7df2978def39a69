// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package scanner implements a lexical scanner for JSON with C-style
// comments and trailing commas (JSONC).
//
// The scanner reads a single input string and reports a stream of events,
// one per token. Each event records the kind of the token, the byte span
// it occupies in the input, and for strings, numbers, and comments a text
// view that aliases the input. The scanner never decodes string escapes
// and never copies token text.
//
// Unlike most JSON lexers, line breaks are tokens: each "\n" in the input
// is reported as a Newline event, so that a consumer can reconstruct the
// blank-line structure of the input. All other whitespace is skipped.
package scanner

import (
	"io"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// A Kind is the lexical kind of a token in JSONC input.
type Kind byte

// Token kind constants.
const (
	Invalid Kind = iota // invalid token

	Newline      // line break ("\n")
	LBrace       // open object ("{")
	RBrace       // close object ("}")
	LSquare      // open array ("[")
	RSquare      // close array ("]")
	Comma        // comma (",")
	Colon        // colon (":")
	String       // string value or object key
	Number       // number value
	True         // constant true
	False        // constant false
	Null         // constant null
	LineComment  // line comment ("// x")
	BlockComment // block comment ("/* x */")
)

var kindName = [...]string{
	Invalid:      "invalid token",
	Newline:      "newline",
	LBrace:       `"{"`,
	RBrace:       `"}"`,
	LSquare:      `"["`,
	RSquare:      `"]"`,
	Comma:        `","`,
	Colon:        `":"`,
	String:       "string",
	Number:       "number",
	True:         "true",
	False:        "false",
	Null:         "null",
	LineComment:  "line comment",
	BlockComment: "block comment",
}

func (k Kind) String() string {
	if int(k) < len(kindName) {
		return kindName[k]
	}
	return kindName[Invalid]
}

// IsMetadata reports whether k is a token kind that carries no JSON
// content: a newline or a comment.
func (k Kind) IsMetadata() bool {
	return k == Newline || k == LineComment || k == BlockComment
}

// A Span describes a contiguous span of bytes in the input.
type Span struct {
	Pos int // the start offset of the span
	End int // the offset immediately after the span
}

// An Event is a single token together with its location in the input.
type Event struct {
	Kind Kind
	Span

	// Text is a view of the token's content, aliasing the input string.
	// For String it is the undecoded interior of the literal, without the
	// enclosing quotes; for Number it is the literal as written; for
	// LineComment and BlockComment it is the comment interior, without
	// the comment markers. For all other kinds it is "".
	Text string
}

// Bool reports the truth value of a True or False event.
func (e Event) Bool() bool { return e.Kind == True }

// A Scanner reports the tokens of a JSONC input string.
//
// Call Next to advance the scanner to the next token. Once Next reports
// an error, all subsequent calls report the same error; at the end of
// input, the error is io.EOF.
type Scanner struct {
	input string
	pos   int
	cur   Event
	err   error
}

// New constructs a scanner that reads tokens from input.
func New(input string) *Scanner { return &Scanner{input: input} }

// Next advances s to the next token of the input, or reports an error.
// It returns io.EOF when the input is exhausted without error.
func (s *Scanner) Next() error {
	if s.err != nil {
		return s.err
	}
	s.skipSpace()
	if s.pos >= len(s.input) {
		s.err = io.EOF
		return s.err
	}
	start := s.pos
	switch c := s.input[s.pos]; c {
	case '\n':
		s.pos++
		return s.emit(Newline, "", start)
	case '{':
		s.pos++
		return s.emit(LBrace, "", start)
	case '}':
		s.pos++
		return s.emit(RBrace, "", start)
	case '[':
		s.pos++
		return s.emit(LSquare, "", start)
	case ']':
		s.pos++
		return s.emit(RSquare, "", start)
	case ',':
		s.pos++
		return s.emit(Comma, "", start)
	case ':':
		s.pos++
		return s.emit(Colon, "", start)
	case '"':
		return s.scanString(start)
	case '/':
		return s.scanComment(start)
	case 't':
		return s.scanLiteral(True, "true", start)
	case 'f':
		return s.scanLiteral(False, "false", start)
	case 'n':
		return s.scanLiteral(Null, "null", start)
	default:
		if c == '-' || isDigit(c) {
			return s.scanNumber(start)
		}
		return s.failChar(start)
	}
}

// Token returns the most recent token scanned by a successful call to
// Next. The result is valid until the next call of Next.
func (s *Scanner) Token() Event { return s.cur }

// Err returns the last error reported by Next, including io.EOF.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) emit(kind Kind, text string, start int) error {
	s.cur = Event{Kind: kind, Span: Span{Pos: start, End: s.pos}, Text: text}
	return nil
}

// skipSpace advances past whitespace. Line feeds are significant and are
// left for Next to report as Newline tokens.
func (s *Scanner) skipSpace() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\r':
			s.pos++
		default:
			return
		}
	}
}

// failChar records an unexpected-character error at offset pos.
func (s *Scanner) failChar(pos int) error {
	c, _ := utf8.DecodeRuneInString(s.input[pos:])
	s.err = &CharError{Offset: pos, Char: c}
	return s.err
}

func (s *Scanner) failEOF() error {
	s.err = ErrUnexpectedEOF
	return s.err
}

func (s *Scanner) scanLiteral(kind Kind, text string, start int) error {
	end := start + len(text)
	if end <= len(s.input) && mem.S(s.input[start:end]).Equal(mem.S(text)) {
		s.pos = end
		return s.emit(kind, "", start)
	}
	// Report the first byte that does not match, or the end of input.
	for i := 0; i < len(text); i++ {
		if start+i >= len(s.input) {
			return s.failEOF()
		} else if s.input[start+i] != text[i] {
			return s.failChar(start + i)
		}
	}
	panic("unreachable")
}

func (s *Scanner) scanString(start int) error {
	i := start + 1 // skip the open quote
	for i < len(s.input) {
		switch c := s.input[i]; {
		case c == '"':
			s.pos = i + 1
			return s.emit(String, s.input[start+1:i], start)
		case c == '\\':
			i++
			if i >= len(s.input) {
				return s.failEOF()
			}
			switch s.input[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
			case 'u':
				i++
				for n := 0; n < 4; n++ {
					if i >= len(s.input) {
						return s.failEOF()
					} else if !isHexDigit(s.input[i]) {
						return s.failChar(i)
					}
					i++
				}
			default:
				return s.failChar(i)
			}
		case c < ' ':
			// Unescaped control characters are not allowed in strings.
			return s.failChar(i)
		default:
			i++
		}
	}
	return s.failEOF()
}

func (s *Scanner) scanComment(start int) error {
	if start+1 >= len(s.input) {
		return s.failEOF()
	}
	switch s.input[start+1] {
	case '/':
		i := start + 2
		for i < len(s.input) && s.input[i] != '\n' {
			i++
		}
		end := i
		// A trailing carriage return belongs to the line terminator, not
		// the comment.
		if end > start+2 && s.input[end-1] == '\r' {
			end--
		}
		s.pos = end
		return s.emit(LineComment, s.input[start+2:end], start)

	case '*':
		n := strings.Index(s.input[start+2:], "*/")
		if n < 0 {
			return s.failEOF()
		}
		s.pos = start + 2 + n + 2
		return s.emit(BlockComment, s.input[start+2:start+2+n], start)

	default:
		return s.failChar(start + 1)
	}
}

func (s *Scanner) scanNumber(start int) error {
	i := start
	if s.input[i] == '-' {
		i++
		if i >= len(s.input) {
			return s.failEOF()
		} else if !isDigit(s.input[i]) {
			return s.failChar(i)
		}
	}

	// Integer part. A leading zero must stand alone.
	if s.input[i] == '0' {
		i++
		if i < len(s.input) && isDigit(s.input[i]) {
			return s.failChar(i)
		}
	} else {
		for i < len(s.input) && isDigit(s.input[i]) {
			i++
		}
	}

	// Fractional part.
	if i < len(s.input) && s.input[i] == '.' {
		i++
		if i >= len(s.input) {
			return s.failEOF()
		} else if !isDigit(s.input[i]) {
			return s.failChar(i)
		}
		for i < len(s.input) && isDigit(s.input[i]) {
			i++
		}
	}

	// Exponent.
	if i < len(s.input) && (s.input[i] == 'e' || s.input[i] == 'E') {
		i++
		if i < len(s.input) && (s.input[i] == '+' || s.input[i] == '-') {
			i++
		}
		if i >= len(s.input) {
			return s.failEOF()
		} else if !isDigit(s.input[i]) {
			return s.failChar(i)
		}
		for i < len(s.input) && isDigit(s.input[i]) {
			i++
		}
	}

	s.pos = i
	return s.emit(Number, s.input[start:i], start)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
