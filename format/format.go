// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

// Package format renders JSON syntax trees back to text: an indenting
// pretty-printer and a minifier. Both are pure depth-first traversals
// with no side effects; literal text is emitted verbatim, exactly as it
// appeared in the source the tree was parsed from.
package format

import (
	"fmt"
	"strings"

	"github.com/AlexanderWatts/jtools/ast"
)

// maxIndent is the largest supported indent width, in spaces per level.
const maxIndent = 8

// defaultIndent is the indent width used by the package-level Format.
const defaultIndent = 4

// A Formatter renders a syntax tree as indented text.
type Formatter struct {
	indent int
}

// NewFormatter returns a formatter that indents each nesting level by
// indent spaces. Widths outside 0 through 8 are rejected.
func NewFormatter(indent int) (*Formatter, error) {
	if indent < 0 || indent > maxIndent {
		return nil, fmt.Errorf("indent width %d out of range 0..%d", indent, maxIndent)
	}
	return &Formatter{indent: indent}, nil
}

// Format renders n with the default indent width of four spaces.
func Format(n ast.Node) string {
	f := &Formatter{indent: defaultIndent}
	return f.Format(n)
}

// Format renders a pretty-printed representation of n.
func (f *Formatter) Format(n ast.Node) string {
	var sb strings.Builder
	f.formatNode(&sb, n, 0)
	return sb.String()
}

func (f *Formatter) formatNode(sb *strings.Builder, n ast.Node, depth int) {
	switch t := n.(type) {
	case *ast.Literal:
		sb.WriteString(t.Text())

	case *ast.Property:
		sb.WriteString(t.Key.Text())
		sb.WriteString(": ")
		f.formatNode(sb, t.Value, depth)

	case *ast.Object:
		if len(t.Members) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for i, m := range t.Members {
			sb.WriteString(f.pad(depth + 1))
			f.formatNode(sb, m, depth+1)
			if i < len(t.Members)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(f.pad(depth))
		sb.WriteString("}")

	case *ast.Array:
		if len(t.Values) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, v := range t.Values {
			sb.WriteString(f.pad(depth + 1))
			f.formatNode(sb, v, depth+1)
			if i < len(t.Values)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(f.pad(depth))
		sb.WriteString("]")

	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}

func (f *Formatter) pad(depth int) string {
	return strings.Repeat(" ", f.indent*depth)
}

// Minify renders n as compact JSON with no whitespace. Minifying a tree
// is idempotent: parsing the output and minifying again reproduces the
// same text.
func Minify(n ast.Node) string {
	var sb strings.Builder
	minifyNode(&sb, n)
	return sb.String()
}

func minifyNode(sb *strings.Builder, n ast.Node) {
	switch t := n.(type) {
	case *ast.Literal:
		sb.WriteString(t.Text())

	case *ast.Property:
		sb.WriteString(t.Key.Text())
		sb.WriteString(":")
		minifyNode(sb, t.Value)

	case *ast.Object:
		sb.WriteString("{")
		for i, m := range t.Members {
			if i > 0 {
				sb.WriteString(",")
			}
			minifyNode(sb, m)
		}
		sb.WriteString("}")

	case *ast.Array:
		sb.WriteString("[")
		for i, v := range t.Values {
			if i > 0 {
				sb.WriteString(",")
			}
			minifyNode(sb, v)
		}
		sb.WriteString("]")

	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}
