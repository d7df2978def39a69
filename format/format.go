// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package format renders parsed JSONC documents as text.
//
// A Formatter writes a document in one of three modes: JSONC, which
// preserves comments and blank-line grouping for human readers; JSON,
// which applies the same layout with all metadata removed; and Compact,
// which writes minimal whitespace-free JSON for machine consumption.
// Output in every mode ends with a single newline, and feeding the
// output of a mode back through the same mode reproduces it exactly.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/fjson/ast"
	"github.com/creachadair/fjson/scanner"
)

// A Formatter carries the settings for rendering documents. A zero value
// is ready for use with the default settings.
type Formatter struct {
	// Indent is the string written for one level of indentation.
	// If empty, two spaces are used.
	Indent string

	// LineLength is the column limit used to decide whether a container
	// fits on a single line. If <= 0, 80 is used.
	LineLength int

	// ObjectPairs is the maximum number of members an object may contain
	// and still be rendered on a single line. If <= 0, 1 is used.
	ObjectPairs int

	// ArrayValues is the maximum number of values an array may contain
	// and still be rendered on a single line. If <= 0, 4 is used.
	ArrayValues int
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

func (f Formatter) lineLength() int {
	if f.LineLength <= 0 {
		return 80
	}
	return f.LineLength
}

func (f Formatter) objectPairs() int {
	if f.ObjectPairs <= 0 {
		return 1
	}
	return f.ObjectPairs
}

func (f Formatter) arrayValues() int {
	if f.ArrayValues <= 0 {
		return 4
	}
	return f.ArrayValues
}

// A WriteError wraps an error reported by the underlying writer, to
// distinguish output failures from malformed input.
type WriteError struct {
	Err error
}

func (w *WriteError) Error() string { return "write: " + w.Err.Error() }
func (w *WriteError) Unwrap() error { return w.Err }

// JSONC renders root as JSONC, preserving comments and blank-line
// grouping. The output ends with a newline.
func (f Formatter) JSONC(w io.Writer, root *ast.Root) error {
	p := &printer{f: f, w: w}
	for _, m := range root.Above {
		if err := p.meta(m); err != nil {
			return err
		}
		if err := p.newline(); err != nil {
			return err
		}
	}
	if err := p.value(root.Value.Datum, 0, true); err != nil {
		return err
	}
	if err := p.comments(root.Value.Comments); err != nil {
		return err
	}
	if err := p.newline(); err != nil {
		return err
	}
	for _, m := range root.Below {
		if err := p.meta(m); err != nil {
			return err
		}
		if err := p.newline(); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders root as plain JSON with the same layout rules as JSONC.
// All metadata are first removed from root in place; see [ast.Root.Strip].
func (f Formatter) JSON(w io.Writer, root *ast.Root) error {
	root.Strip()
	return f.JSONC(w, root)
}

// Compact renders root as compact JSON with no whitespace except a
// terminating newline. All metadata are skipped; root is not modified.
func (f Formatter) Compact(w io.Writer, root *ast.Root) error {
	p := &printer{f: f, w: w}
	if err := p.compact(root.Value.Datum, 0); err != nil {
		return err
	}
	return p.newline()
}

// A printer tracks output position during rendering. The col field is
// the width of the current (unterminated) output line, used by the
// line-fit check.
type printer struct {
	f   Formatter
	w   io.Writer
	col int
}

func (p *printer) str(s string) error {
	if _, err := io.WriteString(p.w, s); err != nil {
		return &WriteError{Err: err}
	}
	p.col += len(s)
	return nil
}

func (p *printer) newline() error {
	if err := p.str("\n"); err != nil {
		return err
	}
	p.col = 0
	return nil
}

func (p *printer) indentTo(n int) error {
	for i := 0; i < n; i++ {
		if err := p.str(p.f.indent()); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) meta(m *ast.Meta) error {
	if m.Comment != nil {
		return p.comment(*m.Comment)
	}
	return nil // a blank line is just its terminator
}

func (p *printer) comment(c ast.Comment) error {
	if !c.Block {
		return p.str("//" + c.Text)
	}
	if err := p.str("/*" + c.Text + "*/"); err != nil {
		return err
	}
	// A line break inside a block comment moves the output column.
	if i := strings.LastIndexByte(c.Text, '\n'); i >= 0 {
		p.col = len(c.Text) - i - 1 + len("*/")
	}
	return nil
}

// comments writes the comments trailing a value, each preceded by a
// space.
func (p *printer) comments(cs []ast.Comment) error {
	for _, c := range cs {
		if err := p.str(" "); err != nil {
			return err
		}
		if err := p.comment(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) value(d ast.Datum, indent int, allowInline bool) error {
	if indent > scanner.MaxDepth {
		return scanner.ErrRecursionLimit
	}
	switch t := d.(type) {
	case *ast.Object:
		return p.object(t, indent, allowInline)
	case *ast.Array:
		return p.array(t, indent, allowInline)
	case ast.String:
		return p.str(`"` + t.Text + `"`)
	case ast.Number:
		return p.str(t.Text)
	case ast.Bool:
		if t.Value {
			return p.str("true")
		}
		return p.str("false")
	case ast.Null:
		return p.str("null")
	default:
		panic(fmt.Sprintf("unknown value type %T", d))
	}
}

func (p *printer) object(o *ast.Object, indent int, allowInline bool) error {
	budget := p.f.lineLength() - p.col
	_, fit := p.f.fitObject(o.Entries, budget)
	inline := allowInline && budget > 0 && fit

	if err := p.str("{"); err != nil {
		return err
	}
	last := len(o.Entries) - 1
	for i, e := range o.Entries {
		if inline {
			if err := p.str(" "); err != nil {
				return err
			}
		} else {
			if err := p.newline(); err != nil {
				return err
			}
			if m, ok := e.(*ast.Meta); !ok || !m.IsBlank() {
				if err := p.indentTo(indent + 1); err != nil {
					return err
				}
			}
		}
		switch t := e.(type) {
		case *ast.Meta:
			if err := p.meta(t); err != nil {
				return err
			}
		case *ast.Member:
			if err := p.str(`"` + t.Key + `": `); err != nil {
				return err
			}
			if err := p.value(t.Value.Datum, indent+1, true); err != nil {
				return err
			}
			if i < last {
				if err := p.str(","); err != nil {
					return err
				}
			}
			if err := p.comments(t.Value.Comments); err != nil {
				return err
			}
		}
	}
	if len(o.Entries) > 0 {
		if inline {
			if err := p.str(" "); err != nil {
				return err
			}
		} else {
			if err := p.newline(); err != nil {
				return err
			}
			if err := p.indentTo(indent); err != nil {
				return err
			}
		}
	}
	return p.str("}")
}

func (p *printer) array(a *ast.Array, indent int, allowInline bool) error {
	budget := p.f.lineLength() - p.col
	_, fit := p.f.fitArray(a.Entries, budget)
	inline := allowInline && budget > 0 && fit

	if err := p.str("["); err != nil {
		return err
	}
	last := len(a.Entries) - 1
	for i, e := range a.Entries {
		if inline {
			if i > 0 {
				if err := p.str(" "); err != nil {
					return err
				}
			}
		} else {
			if err := p.newline(); err != nil {
				return err
			}
			if m, ok := e.(*ast.Meta); !ok || !m.IsBlank() {
				if err := p.indentTo(indent + 1); err != nil {
					return err
				}
			}
		}
		switch t := e.(type) {
		case *ast.Meta:
			if err := p.meta(t); err != nil {
				return err
			}
		case *ast.Value:
			if err := p.value(t.Datum, indent+1, true); err != nil {
				return err
			}
			if i < last {
				if err := p.str(","); err != nil {
					return err
				}
			}
			if err := p.comments(t.Comments); err != nil {
				return err
			}
		}
	}
	if len(a.Entries) > 0 && !inline {
		if err := p.newline(); err != nil {
			return err
		}
		if err := p.indentTo(indent); err != nil {
			return err
		}
	}
	return p.str("]")
}

func (p *printer) compact(d ast.Datum, depth int) error {
	if depth > scanner.MaxDepth {
		return scanner.ErrRecursionLimit
	}
	switch t := d.(type) {
	case *ast.Object:
		if err := p.str("{"); err != nil {
			return err
		}
		first := true
		for _, e := range t.Entries {
			m, ok := e.(*ast.Member)
			if !ok {
				continue
			}
			if !first {
				if err := p.str(","); err != nil {
					return err
				}
			}
			first = false
			if err := p.str(`"` + m.Key + `":`); err != nil {
				return err
			}
			if err := p.compact(m.Value.Datum, depth+1); err != nil {
				return err
			}
		}
		return p.str("}")

	case *ast.Array:
		if err := p.str("["); err != nil {
			return err
		}
		first := true
		for _, e := range t.Entries {
			v, ok := e.(*ast.Value)
			if !ok {
				continue
			}
			if !first {
				if err := p.str(","); err != nil {
					return err
				}
			}
			first = false
			if err := p.compact(v.Datum, depth+1); err != nil {
				return err
			}
		}
		return p.str("]")

	default:
		return p.value(d, 0, false)
	}
}
