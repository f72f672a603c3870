// Package markup parses reconstructed template text into a node tree. It is
// the collaborator boundary around golang.org/x/net/html: the tokenizer does
// the lexing while this package tracks byte offsets and original tag casing
// (both unavailable from the x/net/html parser) and builds ast nodes.
package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/pepijnd/webelements/internal/wegen/ast"
)

// ParseError reports text that could not be parsed into a node tree.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// Parse builds the node tree for reconstructed template text. Node spans
// index into text. Whitespace-only text is dropped; other text nodes are
// trimmed.
func Parse(text string) ([]ast.Node, error) {
	z := html.NewTokenizer(strings.NewReader(text))
	var (
		roots  []ast.Node
		stack  []*ast.Element
		offset int
	)
	attach := func(n ast.Node) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, n)
		} else {
			roots = append(roots, n)
		}
	}
	for {
		tt := z.Next()
		raw := string(z.Raw())
		start := offset
		offset += len(raw)
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, &ParseError{Msg: err.Error()}
			}
			if len(stack) > 0 {
				return nil, &ParseError{Msg: fmt.Sprintf("element `%s` is never closed", stack[len(stack)-1].Name)}
			}
			return roots, nil
		case html.TextToken:
			if s := strings.TrimSpace(z.Token().Data); s != "" {
				attach(ast.Text{Value: s, Pos: ast.Span{Start: start, End: offset}})
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			el := &ast.Element{
				Name: rawTagName(raw),
				Pos:  ast.Span{Start: start, End: offset},
			}
			for _, a := range z.Token().Attr {
				if a.Key == "class" {
					el.Classes = append(el.Classes, strings.Fields(a.Val)...)
					continue
				}
				el.Attrs = append(el.Attrs, ast.Attr{Key: a.Key, Value: a.Val})
			}
			if tt == html.SelfClosingTagToken {
				attach(*el)
			} else {
				stack = append(stack, el)
			}
		case html.EndTagToken:
			if len(stack) == 0 {
				return nil, &ParseError{Msg: fmt.Sprintf("unexpected closing tag `%s`", rawTagName(raw))}
			}
			top := stack[len(stack)-1]
			if !strings.EqualFold(rawTagName(raw), top.Name) {
				return nil, &ParseError{
					Msg: fmt.Sprintf("closing tag `%s` does not match `%s`", rawTagName(raw), top.Name),
				}
			}
			stack = stack[:len(stack)-1]
			top.Pos.End = offset
			attach(*top)
		}
	}
}

// rawTagName extracts the tag name from the raw token bytes, preserving the
// source spelling that the tokenizer lowercases.
func rawTagName(raw string) string {
	s := strings.TrimPrefix(raw, "<")
	s = strings.TrimPrefix(s, "/")
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '/', '>':
			return s[:i]
		}
	}
	return s
}
