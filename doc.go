// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

// Package jtools implements a hand-written JSON front end: a lexical
// scanner with byte- and display-column-accurate tokens, and the error
// preview renderer shared by the scanner and the parser.
//
// # Scanning
//
// The Scanner type tokenizes a complete in-memory source string in one
// forward pass. Construct a scanner from the source and call Scan to
// obtain the full token sequence, terminated by a zero-width EOF token:
//
//	tokens, err := jtools.NewScanner(src).Scan()
//	if err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// Scan errors have concrete type *ScanError and carry a rendered preview
// of the offending source region. Tokens do not own text: Text re-slices
// the original source string, which must outlive every token and every
// syntax tree node derived from it.
//
// # Parsing
//
// The ast subpackage consumes the token sequence with a recursive-descent
// parser and produces a syntax tree, preserving object member order and
// rejecting duplicate keys:
//
//	root, err := ast.Parse(src, tokens)
//
// The format subpackage renders a tree back to text, either indented or
// minified. Scalar values are never materialized: a number in the tree is
// the verbatim source text it was written as.
//
// # Previews
//
// Preview renders a bounded, caret-annotated snippet of source context
// around a byte offset. Every error produced by this module embeds one,
// so callers can print errors directly:
//
//	unterminated string
//	  |
//	  |
//	1 |{ "name": "unfinished
//	  |          ^---Column=11
//	  |
package jtools
