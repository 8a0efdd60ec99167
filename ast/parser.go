// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package ast

import (
	"github.com/AlexanderWatts/jtools"
)

// Parse consumes the token sequence produced by scanning source and
// returns the syntax tree for the single top-level JSON value it spells.
//
// The grammar is recursive descent with one token of lookahead:
//
//	json     := literal EOF
//	object   := "{" ( property ("," property)* )? "}"
//	property := String ":" literal
//	array    := "[" ( literal ("," literal)* )? "]"
//	literal  := String | Number | True | False | Null | object | array
//
// The EOF token is required after the top-level literal, so input with
// trailing garbage after a complete value is rejected. In case of error
// the result is nil and the error has concrete type [*SyntaxError] or
// [*DuplicateKeyError]; no partial tree is returned.
//
// The parser never mutates source or tokens, and source must be the same
// string the tokens were scanned from.
func Parse(source string, tokens []jtools.Token) (Node, error) {
	p := &parser{source: source, tokens: tokens}
	return p.parse()
}

// IsValid reports whether tokens spell exactly one well-formed JSON
// value. It is a non-allocating wrapper around Parse for validate-only
// callers.
func IsValid(source string, tokens []jtools.Token) bool {
	_, err := Parse(source, tokens)
	return err == nil
}

// parser holds the token cursor for one parse call. All error paths
// panic with a typed error recovered at the parse boundary, which keeps
// the descent functions free of error plumbing (and mirrors how the
// grammar itself has no recovery points).
type parser struct {
	source string
	tokens []jtools.Token
	cur    int
}

func (p *parser) parse() (root Node, err error) {
	defer p.recoverParseError(&root, &err)

	root = p.parseLiteral()
	p.expect(jtools.EOF, "end of input after the top-level value")
	return root, nil
}

func (p *parser) recoverParseError(rootp *Node, errp *error) {
	if v := recover(); v != nil {
		switch perr := v.(type) {
		case *SyntaxError:
			*rootp, *errp = nil, perr
		case *DuplicateKeyError:
			*rootp, *errp = nil, perr
		default:
			panic(v)
		}
	}
}

func (p *parser) parseLiteral() Node {
	tok := p.peek()
	switch tok.Kind {
	case jtools.String, jtools.Number, jtools.True, jtools.False, jtools.Null:
		p.next()
		return p.literal(tok)
	case jtools.LBrace:
		return p.parseObject()
	case jtools.LSquare:
		return p.parseArray()
	}
	panic(p.syntaxError(tok, "a value"))
}

func (p *parser) parseObject() Node {
	open := p.expect(jtools.LBrace, `"{"`)

	pm := newPropertyMap()
	if p.peek().Kind != jtools.RBrace {
		p.parseProperty(pm)
		for p.peek().Kind == jtools.Comma {
			p.next()
			p.parseProperty(pm)
		}
	}

	end := p.expect(jtools.RBrace, `"}" or ","`)
	return &Object{
		span:    jtools.Span{Pos: open.Span.Pos, End: end.Span.End},
		Members: pm.members,
	}
}

func (p *parser) parseProperty(pm *propertyMap) {
	key := p.expectKey()
	p.expect(jtools.Colon, `":"`)
	value := p.parseLiteral()

	prop := &Property{
		span:  jtools.Span{Pos: key.Span.Pos, End: value.Span().End},
		Key:   p.literal(key),
		Value: value,
	}
	if !pm.insert(key.Text(p.source), prop) {
		// The preview points at the second occurrence of the key.
		panic(&DuplicateKeyError{
			Key:     key.Text(p.source),
			Preview: jtools.Preview(p.source, key.Span.Pos, key.Cols.Pos, key.Line),
		})
	}
}

func (p *parser) parseArray() Node {
	open := p.expect(jtools.LSquare, `"["`)

	var values []Node
	if p.peek().Kind != jtools.RSquare {
		values = append(values, p.parseLiteral())
		for p.peek().Kind == jtools.Comma {
			p.next()
			values = append(values, p.parseLiteral())
		}
	}

	end := p.expect(jtools.RSquare, `"]" or ","`)
	return &Array{
		span:   jtools.Span{Pos: open.Span.Pos, End: end.Span.End},
		Values: values,
	}
}

// expect consumes the next token, which must have the given kind.
// expected names what the grammar wanted there, for the error message.
func (p *parser) expect(kind jtools.Kind, expected string) jtools.Token {
	tok := p.peek()
	if tok.Kind != kind {
		panic(p.syntaxError(tok, expected))
	}
	p.next()
	return tok
}

// expectKey consumes an object key, which must be a string token.
func (p *parser) expectKey() jtools.Token {
	tok := p.peek()
	if tok.Kind != jtools.String {
		err := p.syntaxError(tok, "string")
		err.Hint = "Object keys must be of type string"
		panic(err)
	}
	p.next()
	return tok
}

func (p *parser) literal(tok jtools.Token) *Literal {
	return &Literal{span: tok.Span, text: tok.Text(p.source)}
}

func (p *parser) syntaxError(tok jtools.Token, expected string) *SyntaxError {
	return &SyntaxError{
		Expected: expected,
		Found:    tok.Kind.String(),
		Preview:  jtools.Preview(p.source, tok.Span.Pos, tok.Cols.Pos, tok.Line),
	}
}

func (p *parser) peek() jtools.Token {
	if p.cur >= len(p.tokens) {
		// Scanned sequences always end with EOF; tolerate hand-built
		// sequences that omit it.
		n := len(p.source)
		return jtools.Token{Kind: jtools.EOF, Line: 1, Span: jtools.Span{Pos: n, End: n}}
	}
	return p.tokens[p.cur]
}

func (p *parser) next() {
	if p.cur < len(p.tokens) {
		p.cur++
	}
}
