// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package jtools

// An ErrorCode identifies the category of a lexical error.
type ErrorCode int

// Constants defining the valid ErrorCode values.
const (
	EmptySource                  ErrorCode = iota + 1 // input contains no tokens at all
	UnknownCharacter                                  // character outside the JSON grammar
	UnknownLiteral                                    // bare word other than true, false, null
	UnterminatedString                                // string missing its closing quote
	UnterminatedFractionalNumber                      // decimal point with no following digit
	LeadingZeros                                      // number with redundant leading zeros
	InvalidExponent                                   // exponent marker with no digits
	InvalidNumber                                     // number that is not a finite value
	InvalidEscapeSequence                             // backslash followed by an illegal character
	InvalidUnicodeSequence                            // \u not followed by four hex digits
)

var codeStr = [...]string{
	EmptySource:                  "empty source",
	UnknownCharacter:             "unknown character",
	UnknownLiteral:               "unknown literal",
	UnterminatedString:           "unterminated string",
	UnterminatedFractionalNumber: "unterminated fractional number",
	LeadingZeros:                 "leading zeros",
	InvalidExponent:              "invalid exponent",
	InvalidNumber:                "invalid number",
	InvalidEscapeSequence:        "invalid escape sequence",
	InvalidUnicodeSequence:       "invalid unicode sequence",
}

func (c ErrorCode) String() string {
	v := int(c)
	if v < 1 || v >= len(codeStr) {
		return "unknown error"
	}
	return codeStr[v]
}

// ScanError is the concrete type of errors reported by Scan. Every
// ScanError carries a rendered Preview of the source region at fault, so
// the message is self-contained and the scanner itself never writes to
// any output stream.
type ScanError struct {
	Code    ErrorCode
	Preview string // rendered source preview, see Preview
}

// Error satisfies the error interface.
func (e *ScanError) Error() string { return e.Code.String() + e.Preview }
