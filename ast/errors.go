// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package ast

import "fmt"

// A SyntaxError reports a token that does not fit the JSON grammar at
// the point it appears.
type SyntaxError struct {
	Expected string // what the grammar required here
	Found    string // the token actually present
	Preview  string // rendered source preview, see jtools.Preview
	Hint     string // optional guidance; may be empty
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("expected %s, found %s%s", e.Expected, e.Found, e.Preview)
	if e.Hint != "" {
		msg += "\nhint: " + e.Hint
	}
	return msg
}

// A DuplicateKeyError reports an object containing the same key twice.
// The preview points at the second occurrence.
type DuplicateKeyError struct {
	Key     string // raw key text, quotes included
	Preview string // rendered source preview, see jtools.Preview
}

// Error satisfies the error interface.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate property %s%s", e.Key, e.Preview)
}
