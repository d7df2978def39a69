// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string text.
//
// Both directions operate on the interior text of a string literal,
// without the enclosing quotation marks.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

const hexDigits = "0123456789abcdef"

// Quote encodes src as the interior of a JSON string literal, escaping
// characters as required by the JSON grammar. Control characters with no
// short escape form, the replacement rune, and the line and paragraph
// separators U+2028 and U+2029 are written as Unicode escapes.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\u2028': // line separator
			buf = append(buf, "\\u2028"...)
		case '\u2029': // paragraph separator
			buf = append(buf, "\\u2029"...)
		case utf8.RuneError:
			buf = append(buf, "\\ufffd"...)
		default:
			if r < ' ' {
				buf = append(buf, '\\', 'u', '0', '0',
					hexDigits[r>>4], hexDigits[r&15])
			} else {
				buf = utf8.AppendRune(buf, r)
			}
		}
	}
	return buf
}

// Unquote decodes the interior of a JSON string literal, replacing escape
// sequences with their unescaped equivalents. An invalid escape decodes
// to the Unicode replacement rune; an incomplete escape at the end of the
// input is an error.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		// Copy everything up to the next escape verbatim.
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		r, n := mem.DecodeRune(src)
		if n == 0 {
			n = 1
		}
		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, ok := parseHex(src.SliceTo(4))
			if !ok {
				v = utf8.RuneError
			}
			dec = utf8.AppendRune(dec, v)
			src = src.SliceFrom(4)
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
	}
}

// parseHex decodes data as a big-endian hexadecimal value.
func parseHex(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		v <<= 4
		switch b := data.At(i); {
		case b >= '0' && b <= '9':
			v += rune(b - '0')
		case b >= 'a' && b <= 'f':
			v += rune(b - 'a' + 10)
		case b >= 'A' && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
