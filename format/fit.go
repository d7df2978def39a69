// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package format

import "github.com/creachadair/fjson/ast"

// This file implements the line-fit check: whether a container can be
// rendered on a single line within the space remaining on the current
// one. A container fits only if it has few enough entries (objectPairs
// members or arrayValues values), none of its entries is metadata or
// carries trailing comments, none of its entries is itself a container,
// and its exact single-line width fits in the available space.

// fitObject reports whether entries can be rendered on one line in space
// columns, and the columns remaining after rendering.
func (f Formatter) fitObject(entries []ast.ObjectEntry, space int) (int, bool) {
	n := len(entries)
	if n > f.objectPairs() {
		return 0, false
	}
	space -= 2 // the braces
	if n > 0 {
		// Interior padding, plus quotes, colon, and space for each member,
		// plus a comma and space between members.
		space -= 2 + 4*n + 2*(n-1)
	}
	if space < 0 {
		return 0, false
	}
	for _, e := range entries {
		m, ok := e.(*ast.Member)
		if !ok || len(m.Value.Comments) != 0 {
			return 0, false
		}
		space -= len(m.Key)
		if space < 0 {
			return 0, false
		}
		rem, ok := f.fitValue(m.Value.Datum, space)
		if !ok {
			return 0, false
		}
		space = rem
	}
	return space, true
}

// fitArray reports whether entries can be rendered on one line in space
// columns, and the columns remaining after rendering.
func (f Formatter) fitArray(entries []ast.ArrayEntry, space int) (int, bool) {
	n := len(entries)
	if n > f.arrayValues() {
		return 0, false
	}
	space -= 2 // the brackets
	if n > 0 {
		space -= 2 * (n - 1) // a comma and space between values
	}
	if space < 0 {
		return 0, false
	}
	for _, e := range entries {
		v, ok := e.(*ast.Value)
		if !ok || len(v.Comments) != 0 {
			return 0, false
		}
		rem, ok := f.fitValue(v.Datum, space)
		if !ok {
			return 0, false
		}
		space = rem
	}
	return space, true
}

// fitValue reports whether d can be rendered in space columns, and the
// columns remaining after rendering. Containers never fit as entries of
// an enclosing single-line container.
func (f Formatter) fitValue(d ast.Datum, space int) (int, bool) {
	switch t := d.(type) {
	case *ast.Object, *ast.Array:
		return 0, false
	case ast.String:
		space -= 2 + len(t.Text)
	case ast.Number:
		space -= len(t.Text)
	case ast.Bool:
		if t.Value {
			space -= len("true")
		} else {
			space -= len("false")
		}
	case ast.Null:
		space -= len("null")
	}
	return space, space >= 0
}
