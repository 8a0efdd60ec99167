// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values, and a
// recursive-descent parser that constructs syntax trees from a scanned
// token sequence.
package ast

import (
	"github.com/AlexanderWatts/jtools"
)

// A Node is a JSON syntax tree node. The concrete type is one of
// *Literal, *Property, *Array, or *Object. Nodes own their children and
// are immutable after construction; Literal nodes borrow their text from
// the source string the tree was parsed from.
type Node interface {
	// Span reports the byte extent of the node in the original source.
	Span() jtools.Span
}

// A Literal is a leaf wrapping the exact source text of a scalar value:
// a string (surrounding quotes included), number, boolean, or null.
type Literal struct {
	span jtools.Span
	text string
}

// NewLiteral constructs a detached literal with the given text. Literals
// built by the parser also carry their source span.
func NewLiteral(text string) *Literal { return &Literal{text: text} }

// Span satisfies the Node interface.
func (l *Literal) Span() jtools.Span { return l.span }

// Text returns the verbatim source text of the literal.
func (l *Literal) Text() string { return l.text }

// Unquote decodes the text of a string literal to its plain value.
// It reports an error if the literal is not a quoted string.
func (l *Literal) Unquote() ([]byte, error) { return jtools.Unquote(l.text) }

// A Property pairs a string-literal key with a value. The key is always
// a *Literal wrapping a string token.
type Property struct {
	span jtools.Span

	Key   *Literal
	Value Node
}

// Span satisfies the Node interface.
func (p *Property) Span() jtools.Span { return p.span }

// An Array is an ordered sequence of values.
type Array struct {
	span jtools.Span

	Values []Node
}

// Span satisfies the Node interface.
func (a *Array) Span() jtools.Span { return a.span }

// An Object is a collection of properties in source order, with no
// duplicate keys. Uniqueness is enforced while the object is built, so a
// constructed Object never violates it.
type Object struct {
	span jtools.Span

	Members []*Property
}

// Span satisfies the Node interface.
func (o *Object) Span() jtools.Span { return o.span }

// Find returns the member of o whose decoded key equals key, or nil.
// key is the plain member name, without quotes or escapes.
func (o *Object) Find(key string) *Property {
	for _, m := range o.Members {
		if plain, err := m.Key.Unquote(); err == nil && string(plain) == key {
			return m
		}
	}
	return nil
}
