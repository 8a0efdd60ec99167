// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package jtools

import "fmt"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number literal
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
	EOF                 // end of input

	// Do not modify the order of these constants without updating the
	// self-delimiting token check in the scanner.
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
	EOF:     "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Span describes a contiguous range of source text, either as byte
// offsets (0-based, end exclusive) or as display columns (1-based, end
// exclusive).
type Span struct {
	Pos int // start offset, inclusive
	End int // end offset, exclusive
}

// A Token is an immutable record of a lexical category together with its
// extent in the source: the byte offsets it occupies in the original
// buffer, the display columns it occupies on screen, and the line it
// starts on. Tokens never own text; Text re-slices the original source,
// which must therefore outlive every token derived from it.
//
// The display-column span differs from the byte span whenever the token
// or the text before it contains multi-byte or wide characters: a wide
// glyph advances the column counter by its terminal cell width, not by
// its encoded length.
type Token struct {
	Kind Kind
	Line int  // 1-based line number of the token start
	Span Span // byte offsets into the source
	Cols Span // 1-based display columns
}

// Text returns the verbatim source text of t.
func (t Token) Text(source string) string { return source[t.Span.Pos:t.Span.End] }

func (t Token) String() string {
	return fmt.Sprintf("%s line=%d span=%d..%d col=%d..%d",
		t.Kind, t.Line, t.Span.Pos, t.Span.End, t.Cols.Pos, t.Cols.End)
}
