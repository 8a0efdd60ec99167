// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package jtools

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// previewLimit bounds how many runes of context are rendered on either
// side of the error position.
const previewLimit = 32

// Preview renders a bounded, caret-annotated snippet of source around the
// byte offset start. The snippet extends at most previewLimit runes in
// each direction and never crosses a line break; incidental whitespace at
// the outer edges is trimmed. The caret is positioned by the display
// width of the text before the error, not its rune count, so it lands
// under the offending column even when the line contains wide glyphs.
//
// The result is a fixed five-line frame. The gutter of the first and last
// lines carries a "+" when more source exists above or below the window:
//
//	  |
//	  |
//	1 |{ "error": bad }
//	  |           ^---Column=12
//	  |
//
// columnStart and lineNumber are both 1-based.
func Preview(source string, start, columnStart, lineNumber int) string {
	back, front := source[:start], source[start:]

	backText := strings.TrimLeft(clipBackward(back), " \t\r")
	frontText := strings.TrimRight(clipForward(front), " \t\r")

	num := strconv.Itoa(lineNumber)
	indent := strings.Repeat(" ", len(num))
	offset := strings.Repeat(" ", runewidth.StringWidth(backText))

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s%s|\n", indent, moreMark(back))
	fmt.Fprintf(&sb, "%s |\n", indent)
	fmt.Fprintf(&sb, "%s |%s%s\n", num, backText, frontText)
	fmt.Fprintf(&sb, "%s |%s^---Column=%d\n", indent, offset, columnStart)
	fmt.Fprintf(&sb, "%s%s|", indent, moreMark(front))
	return sb.String()
}

// clipBackward returns the suffix of text reaching back at most
// previewLimit runes, stopping at the nearest line break.
func clipBackward(text string) string {
	i, n := len(text), 0
	for i > 0 && n < previewLimit {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if r == '\n' {
			break
		}
		i -= size
		n++
	}
	return text[i:]
}

// clipForward returns the prefix of text reaching forward at most
// previewLimit runes, stopping at the nearest line break.
func clipForward(text string) string {
	i, n := 0, 0
	for i < len(text) && n < previewLimit {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			break
		}
		i += size
		n++
	}
	return text[:i]
}

// moreMark reports whether text holds source beyond the line adjoining
// the error, as a one-character gutter mark.
func moreMark(text string) string {
	lines := strings.Split(text, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) >= 2 {
		return "+"
	}
	return " "
}
