// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package jtools

import (
	"errors"
	"strings"

	"github.com/AlexanderWatts/jtools/internal/escape"

	"go4.org/mem"
)

// Unquote decodes a JSON string literal as produced by the scanner. The
// enclosing double quotation marks are removed and escape sequences are
// replaced with their unescaped equivalents, including surrogate pairs
// written as consecutive \u escapes.
//
// The core never decodes strings itself; literal text flows through the
// parser and formatter verbatim. Unquote exists for consumers that need
// the plain value of a string.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
