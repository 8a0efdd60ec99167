// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package jtools

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"go4.org/mem"
)

// A Scanner consumes a source string in one forward pass, left to right,
// and produces the ordered token sequence for it. The source is held
// entirely in memory; the scanner performs no I/O.
//
// A Scanner is good for a single call to Scan. Each scan is independent:
// construct a fresh Scanner per source string.
type Scanner struct {
	source string

	pos   int // byte offset of the next unread rune
	start int // byte offset where the current token began
	line  int // 1-based line number

	col      int // 1-based display column of the next unread rune
	startCol int // display column where the current token began
}

// NewScanner constructs a scanner for the given source string. The source
// must outlive every token produced from it, since tokens and syntax tree
// nodes re-slice it rather than copying.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1, col: 1}
}

// Scan tokenizes the entire source and returns the token sequence,
// terminated by exactly one zero-width EOF token. In case of a lexical
// error the returned error has concrete type [*ScanError] and no tokens
// are returned.
//
// An empty source is an error rather than an empty sequence, because JSON
// requires exactly one top-level value.
func (s *Scanner) Scan() ([]Token, error) {
	if s.source == "" {
		return nil, s.fail(EmptySource, 0, 1)
	}

	var tokens []Token
	for s.pos < len(s.source) {
		s.start, s.startCol = s.pos, s.col
		tok, ok, err := s.scanToken()
		if err != nil {
			return nil, err
		}
		if ok {
			tokens = append(tokens, tok)
		}
	}

	return append(tokens, Token{
		Kind: EOF,
		Line: s.line,
		Span: Span{Pos: s.pos, End: s.pos},
		Cols: Span{Pos: s.col, End: s.col},
	}), nil
}

// scanToken consumes one token or one whitespace character. The boolean
// reports whether a token was produced.
func (s *Scanner) scanToken() (Token, bool, error) {
	ch, _ := s.next()

	switch ch {
	case ' ', '\t', '\r':
		return Token{}, false, nil
	case '\n':
		s.line++
		s.col = 1
		return Token{}, false, nil
	}

	if kind, ok := selfDelim(ch); ok {
		return s.token(kind), true, nil
	}

	switch {
	case ch == '"':
		return s.scanString()
	case ch == '-' || isDigit(ch):
		return s.scanNumber(ch)
	case isAlpha(ch):
		return s.scanName()
	}
	return Token{}, false, s.fail(UnknownCharacter, s.start, s.startCol)
}

// scanString consumes a string token. The opening quote has already been
// consumed; the token span covers both delimiting quotes. A raw line
// break before the closing quote is an error: strings cannot span lines.
func (s *Scanner) scanString() (Token, bool, error) {
	for {
		ch, ok := s.nextIf(func(r rune) bool { return r != '"' })
		if !ok {
			break
		}
		if ch == '\n' {
			return Token{}, false, s.fail(UnterminatedString, s.start, s.startCol)
		}
		if ch == '\\' {
			if err := s.scanEscape(s.pos-1, s.col-1); err != nil {
				return Token{}, false, err
			}
		}
	}

	if _, ok := s.peek(); !ok {
		return Token{}, false, s.fail(UnterminatedString, s.start, s.startCol)
	}
	s.next() // closing quote
	return s.token(String), true, nil
}

// scanEscape consumes the remainder of a backslash escape. start and
// columnStart locate the backslash itself, so errors point at the whole
// sequence rather than the character that broke it.
func (s *Scanner) scanEscape(start, columnStart int) error {
	ch, ok := s.peek()
	switch {
	case ok && ch == 'u':
		s.next()
		for i := 0; i < 4; i++ {
			if _, ok := s.nextIf(isHexDigit); !ok {
				return s.fail(InvalidUnicodeSequence, start, columnStart)
			}
		}
	case ok && strings.ContainsRune(`"\/bfnrt`, ch):
		s.next()
	default:
		return s.fail(InvalidEscapeSequence, start, columnStart)
	}
	return nil
}

// scanNumber consumes a number token whose first character has already
// been consumed. The literal text is preserved verbatim; the parse at the
// end only validates that the text denotes a finite value.
func (s *Scanner) scanNumber(first rune) (Token, bool, error) {
	if first == '-' {
		if ch, ok := s.nextIf(isDigit); ok {
			first = ch
		}
	}
	if first == '0' {
		// A single leading zero is only valid alone or before "." or an
		// exponent: 0.12 is OK, 012 is not.
		if ch, ok := s.peek(); ok && isDigit(ch) {
			return Token{}, false, s.fail(LeadingZeros, s.start, s.startCol)
		}
	}
	s.readWhile(isDigit)

	if _, ok := s.nextIf(func(r rune) bool { return r == '.' }); ok {
		if ch, ok := s.peek(); !ok || !isDigit(ch) {
			return Token{}, false, s.fail(UnterminatedFractionalNumber, s.start, s.startCol)
		}
		s.readWhile(isDigit)
	}

	if _, ok := s.nextIf(func(r rune) bool { return r == 'e' || r == 'E' }); ok {
		expStart, expCol := s.pos-1, s.col-1
		s.nextIf(func(r rune) bool { return r == '+' || r == '-' })
		if ch, ok := s.peek(); !ok || !isDigit(ch) {
			return Token{}, false, s.fail(InvalidExponent, expStart, expCol)
		}
		s.readWhile(isDigit)
	}

	text := s.source[s.start:s.pos]
	if v, err := strconv.ParseFloat(text, 64); err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Token{}, false, s.fail(InvalidNumber, s.start, s.startCol)
	}
	return s.token(Number), true, nil
}

// scanName consumes a maximal run of ASCII letters, which must spell one
// of the three JSON keywords.
func (s *Scanner) scanName() (Token, bool, error) {
	s.readWhile(isAlpha)

	got := mem.S(s.source[s.start:s.pos])
	switch {
	case got.EqualString("true"):
		return s.token(True), true, nil
	case got.EqualString("false"):
		return s.token(False), true, nil
	case got.EqualString("null"):
		return s.token(Null), true, nil
	}
	return Token{}, false, s.fail(UnknownLiteral, s.start, s.startCol)
}

// next consumes and returns the next rune, advancing the byte cursor by
// its encoded length and the column cursor by its display width.
func (s *Scanner) next() (rune, bool) {
	if s.pos >= len(s.source) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.source[s.pos:])
	s.pos += size
	s.col += runewidth.RuneWidth(r)
	return r, true
}

// peek returns the next rune without consuming it.
func (s *Scanner) peek() (rune, bool) {
	if s.pos >= len(s.source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.pos:])
	return r, true
}

// nextIf consumes the next rune only if it matches f.
func (s *Scanner) nextIf(f func(rune) bool) (rune, bool) {
	if r, ok := s.peek(); !ok || !f(r) {
		return 0, false
	}
	return s.next()
}

// readWhile consumes runes matching f until one does not, or input ends.
func (s *Scanner) readWhile(f func(rune) bool) {
	for {
		if _, ok := s.nextIf(f); !ok {
			return
		}
	}
}

// token assembles a token of the given kind covering the current extent.
func (s *Scanner) token(kind Kind) Token {
	return Token{
		Kind: kind,
		Line: s.line,
		Span: Span{Pos: s.start, End: s.pos},
		Cols: Span{Pos: s.startCol, End: s.col},
	}
}

func (s *Scanner) fail(code ErrorCode, start, columnStart int) error {
	return &ScanError{
		Code:    code,
		Preview: Preview(s.source, start, columnStart, s.line),
	}
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
