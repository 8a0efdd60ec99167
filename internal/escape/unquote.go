// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

// Package escape decodes the escape sequences of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already
// removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \u
// escape that begins a UTF-16 surrogate pair is combined with the escape
// that follows it; an unpaired surrogate is replaced by the Unicode
// replacement rune. Unquote reports an error for an incomplete or
// malformed escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())

	putRune := func(r rune) {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}

	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
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
			r, rest, err := decodeHex16(src)
			if err != nil {
				return nil, err
			}
			src = rest
			if utf16.IsSurrogate(r) {
				// A high surrogate must be completed by a \u escape
				// immediately following; anything else is unpaired.
				if r2, rest2, err := peekHex16(src); err == nil {
					if c := utf16.DecodeRune(r, r2); c != utf8.RuneError {
						putRune(c)
						src = rest2
						continue
					}
				}
				putRune(utf8.RuneError)
				continue
			}
			putRune(r)
		default:
			putRune(utf8.RuneError)
		}
	}
	return dec, nil
}

// decodeHex16 consumes four hex digits from the front of src and returns
// the rune they denote along with the remainder of src.
func decodeHex16(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		d, err := hexValue(src.At(i))
		if err != nil {
			return 0, src, err
		}
		v = v<<4 | rune(d)
	}
	return v, src.SliceFrom(4), nil
}

// peekHex16 decodes a leading "\uXXXX" sequence without committing to it.
func peekHex16(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 2 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, src, errors.New("not a Unicode escape")
	}
	return decodeHex16(src.SliceFrom(2))
}

func hexValue(b byte) (byte, error) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', nil
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, nil
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", b)
}
