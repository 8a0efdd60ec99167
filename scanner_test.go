// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package jtools_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/AlexanderWatts/jtools"
	"github.com/google/go-cmp/cmp"
)

func mustScan(t *testing.T, input string) []jtools.Token {
	t.Helper()
	tokens, err := jtools.NewScanner(input).Scan()
	if err != nil {
		t.Fatalf("Scan %#q failed: %v", input, err)
	}
	return tokens
}

func TestScannerKinds(t *testing.T) {
	tests := []struct {
		input string
		want  []jtools.Kind
	}{
		// Constants
		{"true", []jtools.Kind{jtools.True, jtools.EOF}},
		{"false", []jtools.Kind{jtools.False, jtools.EOF}},
		{"null", []jtools.Kind{jtools.Null, jtools.EOF}},

		// Punctuation
		{"{ [ ] } , :", []jtools.Kind{
			jtools.LBrace, jtools.LSquare, jtools.RSquare, jtools.RBrace,
			jtools.Comma, jtools.Colon, jtools.EOF,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jtools.Kind{
			jtools.String, jtools.String, jtools.String, jtools.EOF,
		}},
		{`"\"\\\/\b\f\n\r\t"`, []jtools.Kind{jtools.String, jtools.EOF}},
		{`" Ǽꪜ"`, []jtools.Kind{jtools.String, jtools.EOF}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jtools.Kind{
			jtools.Number, jtools.Number, jtools.Number, jtools.Number,
			jtools.Number, jtools.Number, jtools.Number, jtools.EOF,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jtools.Kind{
			jtools.LBrace, jtools.True, jtools.Comma, jtools.String, jtools.Colon,
			jtools.Number, jtools.Null, jtools.LSquare, jtools.RSquare,
			jtools.RBrace, jtools.EOF,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jtools.Kind{
			jtools.LBrace,
			jtools.String, jtools.Colon, jtools.True, jtools.Comma,
			jtools.String, jtools.Colon,
			jtools.LSquare,
			jtools.Null, jtools.Comma, jtools.Number, jtools.Comma, jtools.Number,
			jtools.RSquare,
			jtools.RBrace, jtools.EOF,
		}},
	}

	for _, test := range tests {
		tokens := mustScan(t, test.input)

		got := make([]jtools.Kind, len(tokens))
		for i, tok := range tokens {
			got[i] = tok.Kind
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nKinds: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerSpans(t *testing.T) {
	span := func(pos, end int) jtools.Span { return jtools.Span{Pos: pos, End: end} }
	tok := func(kind jtools.Kind, line, pos, end, cpos, cend int) jtools.Token {
		return jtools.Token{Kind: kind, Line: line, Span: span(pos, end), Cols: span(cpos, cend)}
	}

	tests := []struct {
		input string
		want  []jtools.Token
	}{
		// Whitespace is skipped but still advances the display column.
		{"[ ]", []jtools.Token{
			tok(jtools.LSquare, 1, 0, 1, 1, 2),
			tok(jtools.RSquare, 1, 2, 3, 3, 4),
			tok(jtools.EOF, 1, 3, 3, 4, 4),
		}},

		{"{}[]:,", []jtools.Token{
			tok(jtools.LBrace, 1, 0, 1, 1, 2),
			tok(jtools.RBrace, 1, 1, 2, 2, 3),
			tok(jtools.LSquare, 1, 2, 3, 3, 4),
			tok(jtools.RSquare, 1, 3, 4, 4, 5),
			tok(jtools.Colon, 1, 4, 5, 5, 6),
			tok(jtools.Comma, 1, 5, 6, 6, 7),
			tok(jtools.EOF, 1, 6, 6, 7, 7),
		}},

		// Numbers
		{"0", []jtools.Token{
			tok(jtools.Number, 1, 0, 1, 1, 2),
			tok(jtools.EOF, 1, 1, 1, 2, 2),
		}},
		{"360.360", []jtools.Token{
			tok(jtools.Number, 1, 0, 7, 1, 8),
			tok(jtools.EOF, 1, 7, 7, 8, 8),
		}},
		{"-1066", []jtools.Token{
			tok(jtools.Number, 1, 0, 5, 1, 6),
			tok(jtools.EOF, 1, 5, 5, 6, 6),
		}},
		{"29e+100", []jtools.Token{
			tok(jtools.Number, 1, 0, 7, 1, 8),
			tok(jtools.EOF, 1, 7, 7, 8, 8),
		}},

		// Strings, including escapes
		{`"hello, world!"`, []jtools.Token{
			tok(jtools.String, 1, 0, 15, 1, 16),
			tok(jtools.EOF, 1, 15, 15, 16, 16),
		}},
		{`""`, []jtools.Token{
			tok(jtools.String, 1, 0, 2, 1, 3),
			tok(jtools.EOF, 1, 2, 2, 3, 3),
		}},
		{`"hello\u0020world!"`, []jtools.Token{
			tok(jtools.String, 1, 0, 19, 1, 20),
			tok(jtools.EOF, 1, 19, 19, 20, 20),
		}},
		{`"\uD83D\uDE00"`, []jtools.Token{
			tok(jtools.String, 1, 0, 14, 1, 15),
			tok(jtools.EOF, 1, 14, 14, 15, 15),
		}},

		// A wide glyph is four bytes but two display columns, so the
		// byte span and column span of this string disagree.
		{`"🌎🚀"`, []jtools.Token{
			tok(jtools.String, 1, 0, 10, 1, 7),
			tok(jtools.EOF, 1, 10, 10, 7, 7),
		}},

		// Keywords
		{"true", []jtools.Token{
			tok(jtools.True, 1, 0, 4, 1, 5),
			tok(jtools.EOF, 1, 4, 4, 5, 5),
		}},
		{"false", []jtools.Token{
			tok(jtools.False, 1, 0, 5, 1, 6),
			tok(jtools.EOF, 1, 5, 5, 6, 6),
		}},
		{"null", []jtools.Token{
			tok(jtools.Null, 1, 0, 4, 1, 5),
			tok(jtools.EOF, 1, 4, 4, 5, 5),
		}},
	}

	for _, test := range tests {
		got := mustScan(t, test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerLines(t *testing.T) {
	tokens := mustScan(t, "[\ntrue,\nfalse\n]")

	var lines []int
	for _, tok := range tokens {
		lines = append(lines, tok.Line)
	}
	if diff := cmp.Diff([]int{1, 2, 2, 3, 4, 4}, lines); diff != "" {
		t.Errorf("Lines: (-want, +got)\n%s", diff)
	}

	// Column tracking resets at each line break.
	if got := tokens[3].Cols; got.Pos != 1 {
		t.Errorf("false starts at column %d, want 1", got.Pos)
	}
}

func TestScannerText(t *testing.T) {
	const input = `{"data": [1, 2.5]}`

	var texts []string
	for _, tok := range mustScan(t, input) {
		texts = append(texts, tok.Text(input))
	}
	want := []string{"{", `"data"`, ":", "[", "1", ",", "2.5", "]", "}", ""}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("Text: (-want, +got)\n%s", diff)
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		want  jtools.ErrorCode
	}{
		{"", jtools.EmptySource},

		{"@", jtools.UnknownCharacter},
		{"{}\x01", jtools.UnknownCharacter},

		{"hello", jtools.UnknownLiteral},
		{"True", jtools.UnknownLiteral},
		{"nul", jtools.UnknownLiteral},

		{`"`, jtools.UnterminatedString},
		{`"language`, jtools.UnterminatedString},
		{"\"two\nlines\"", jtools.UnterminatedString},

		{"360.", jtools.UnterminatedFractionalNumber},
		{"1.x", jtools.UnterminatedFractionalNumber},

		{"007", jtools.LeadingZeros},
		{"000.23432", jtools.LeadingZeros},
		{"-01", jtools.LeadingZeros},

		{"27e", jtools.InvalidExponent},
		{"92.3eE", jtools.InvalidExponent},
		{"83e-", jtools.InvalidExponent},
		{"83E+", jtools.InvalidExponent},

		{"-", jtools.InvalidNumber},
		{"1e309", jtools.InvalidNumber},
		{"-2E400", jtools.InvalidNumber},

		{`"hello\world"`, jtools.InvalidEscapeSequence},
		{`"\t\e bad"`, jtools.InvalidEscapeSequence},

		{`"\u01AG"`, jtools.InvalidUnicodeSequence},
		{`"\u12"`, jtools.InvalidUnicodeSequence},
	}

	for _, test := range tests {
		tokens, err := jtools.NewScanner(test.input).Scan()
		if err == nil {
			t.Errorf("Scan %#q: got %v, want error", test.input, tokens)
			continue
		}

		var serr *jtools.ScanError
		if !errors.As(err, &serr) {
			t.Errorf("Scan %#q: error %v is not a *ScanError", test.input, err)
			continue
		}
		if serr.Code != test.want {
			t.Errorf("Scan %#q: got code %v, want %v", test.input, serr.Code, test.want)
		}
		if serr.Preview == "" {
			t.Errorf("Scan %#q: error carries no preview", test.input)
		}
		if !strings.Contains(err.Error(), test.want.String()) {
			t.Errorf("Scan %#q: message %q does not name the error", test.input, err)
		}
	}
}

func TestScannerErrorColumns(t *testing.T) {
	tests := []struct {
		input string
		want  string // caret line fragment naming the error column
	}{
		// Points at the token start, not the character that failed.
		{`"abc`, "^---Column=1"},
		{"[007]", "^---Column=2"},

		// Exponent errors point at the exponent marker.
		{"[1, 27e]", "^---Column=7"},

		// Escape errors point at the backslash.
		{`["ab\q"]`, "^---Column=5"},
	}

	for _, test := range tests {
		_, err := jtools.NewScanner(test.input).Scan()
		if err == nil {
			t.Fatalf("Scan %#q: unexpected success", test.input)
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("Scan %#q: message %q does not contain %q", test.input, err, test.want)
		}
	}
}
