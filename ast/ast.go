// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a comment-preserving syntax tree for JSONC values,
// and a parser that constructs trees from JSONC source text.
//
// The tree records everything a formatter needs to reproduce the shape of
// the input: comments standing on their own lines, blank lines separating
// groups of entries, and comments trailing a value on the same line. All
// string and number text in the tree is stored as written in the source;
// escape sequences are checked for syntax but never decoded.
package ast

import (
	"fmt"
	"strconv"

	"github.com/creachadair/fjson/internal/escape"
	"go4.org/mem"
)

// A Comment is a single line or block comment. Text is the interior text
// of the comment, without its comment markers.
type Comment struct {
	Block bool // whether this is a block ("/* */") comment
	Text  string
}

// A Meta is a piece of standalone metadata occupying an entry position in
// a container or at the top level of a document: either a comment on a
// line of its own, or a blank line. A Meta with a nil Comment records a
// blank line; a run of consecutive blank lines in the source is recorded
// as a single blank Meta.
type Meta struct {
	Comment *Comment
}

// IsBlank reports whether m records a blank line.
func (m *Meta) IsBlank() bool { return m.Comment == nil }

func (*Meta) objectEntry() {}
func (*Meta) arrayEntry()  {}

// A Value is a JSON value together with the comments that trail it on the
// same source line.
type Value struct {
	Datum    Datum
	Comments []Comment
}

func (*Value) arrayEntry() {}

// A Datum is the payload of a value. The concrete type of a Datum is one
// of *Object, *Array, String, Number, Bool, or Null.
type Datum interface {
	datum()
}

// An Object is a collection of object members, interleaved in source
// order with the standalone metadata appearing between them.
type Object struct {
	Entries []ObjectEntry
}

// An Array is a sequence of values, interleaved in source order with the
// standalone metadata appearing between them.
type Array struct {
	Entries []ArrayEntry
}

// A String is a string value. Text is the undecoded interior of the
// literal as written in the source, without quotes.
type String struct {
	Text string
}

// Unescape returns the decoded text of s, with escape sequences replaced
// by the characters they denote. Invalid escapes decode to U+FFFD.
func (s String) Unescape() string { return unescape(s.Text) }

// A Number is a number value. Text is the literal as written.
type Number struct {
	Text string
}

// Float returns the value of n as a float64.
func (n Number) Float() (float64, error) { return strconv.ParseFloat(n.Text, 64) }

// A Bool is a Boolean value.
type Bool struct {
	Value bool
}

// Null represents the JSON null constant.
type Null struct{}

func (*Object) datum() {}
func (*Array) datum()  {}
func (String) datum()  {}
func (Number) datum()  {}
func (Bool) datum()    {}
func (Null) datum()    {}

// An ObjectEntry is one entry of an object body. The concrete type of an
// ObjectEntry is *Member or *Meta.
type ObjectEntry interface {
	objectEntry()
}

// An ArrayEntry is one entry of an array body. The concrete type of an
// ArrayEntry is *Value or *Meta.
type ArrayEntry interface {
	arrayEntry()
}

// A Member is a key-value pair in an Object. Key is the undecoded
// interior of the key literal as written in the source, without quotes.
type Member struct {
	Key   string
	Value *Value
}

// Unescape returns the decoded key of m, with escape sequences replaced
// by the characters they denote. Invalid escapes decode to U+FFFD.
func (m *Member) Unescape() string { return unescape(m.Key) }

func (*Member) objectEntry() {}

// A Root is a parsed JSONC document: a single value together with the
// standalone metadata above and below it.
type Root struct {
	Above []*Meta
	Value *Value
	Below []*Meta
}

// Strip removes all metadata from r in place: the metadata above and
// below the top-level value, comments attached to values, and comment
// and blank-line entries inside objects and arrays. The remaining value
// text is shared, not copied.
func (r *Root) Strip() {
	r.Above, r.Below = nil, nil
	r.Value.strip()
}

func (v *Value) strip() {
	v.Comments = nil
	switch d := v.Datum.(type) {
	case *Object:
		keep := d.Entries[:0]
		for _, e := range d.Entries {
			if m, ok := e.(*Member); ok {
				m.Value.strip()
				keep = append(keep, m)
			}
		}
		d.Entries = keep
	case *Array:
		keep := d.Entries[:0]
		for _, e := range d.Entries {
			if val, ok := e.(*Value); ok {
				val.strip()
				keep = append(keep, val)
			}
		}
		d.Entries = keep
	}
}

// Field constructs an object member with the given key and value. The key
// is escaped as needed. The value must be a string, int, int64, float64,
// bool, nil, a Datum, or a *Value; Field panics for other types.
func Field(key string, value any) *Member {
	return &Member{Key: quote(key), Value: ToValue(value)}
}

// ToValue converts a plain Go value into a Value. The concrete type of v
// must be a string, int, int64, float64, bool, nil, a Datum, or a *Value
// (returned unchanged); ToValue panics for other types.
func ToValue(v any) *Value {
	if val, ok := v.(*Value); ok {
		return val
	}
	return &Value{Datum: ToDatum(v)}
}

// ToDatum converts a plain Go value into a Datum. The concrete type of v
// must be a string, int, int64, float64, bool, nil, or a Datum (returned
// unchanged); ToDatum panics for other types.
func ToDatum(v any) Datum {
	switch t := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool{Value: t}
	case string:
		return String{Text: quote(t)}
	case int:
		return Number{Text: strconv.Itoa(t)}
	case int64:
		return Number{Text: strconv.FormatInt(t, 10)}
	case float64:
		return Number{Text: strconv.FormatFloat(t, 'g', -1, 64)}
	case Datum:
		return t
	default:
		panic(fmt.Sprintf("invalid value type %T", v))
	}
}

// quote returns the escaped interior text for s, without quotes.
func quote(s string) string { return string(escape.Quote(mem.S(s))) }

// unescape decodes the interior text of a string or key parsed from
// source. The parser has already verified the escape syntax, so decoding
// cannot fail.
func unescape(text string) string {
	dec, err := escape.Unquote(mem.S(text))
	if err != nil {
		panic(fmt.Sprintf("invalid string text %q: %v", text, err))
	}
	return string(dec)
}
