package compile

import (
	"bytes"
	"fmt"
	"strings"
	"text/scanner"

	"github.com/pepijnd/webelements/internal/wegen/source"
)

// Field is one user-declared field of a component, carried verbatim into the
// generated struct.
type Field struct {
	Name string
	Type string
}

// Component is one `element` declaration of a .we file.
type Component struct {
	Name     string
	Fields   []Field
	Template []source.Token
	Line     int
	Col      int
}

// File is a parsed .we source.
type File struct {
	Path       string
	Package    string
	Components []Component
}

// ParseFile parses the .we wrapper syntax:
//
//	package NAME
//
//	element NAME {
//	    field Type
//	} (
//	    <template markup>
//	)
//
// The template region is kept as raw positioned tokens; reconstruction and
// markup parsing happen per component in Compile.
func ParseFile(path string, src []byte) (*File, error) {
	p := newFileParser(path, src)
	f := &File{Path: path}

	if p.next() != scanner.Ident || p.text != "package" {
		return nil, p.errorf("expected `package` clause")
	}
	if p.next() != scanner.Ident {
		return nil, p.errorf("expected package name")
	}
	f.Package = p.text

	for {
		tok := p.next()
		if tok == scanner.EOF {
			break
		}
		if tok != scanner.Ident || p.text != "element" {
			return nil, p.errorf("expected `element` declaration")
		}
		comp, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		f.Components = append(f.Components, comp)
	}
	if p.scanErr != nil {
		return nil, p.scanErr
	}
	return f, nil
}

type fileParser struct {
	s       scanner.Scanner
	scanErr error

	tok  rune
	text string
	pos  scanner.Position // start of current token
	end  scanner.Position // just past current token
}

func newFileParser(path string, src []byte) *fileParser {
	p := &fileParser{}
	p.s.Init(bytes.NewReader(src))
	p.s.Filename = path
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.scanErr == nil {
			p.scanErr = fmt.Errorf("%s: %s", s.Position, msg)
		}
	}
	return p
}

func (p *fileParser) next() rune {
	p.tok = p.s.Scan()
	p.text = p.s.TokenText()
	p.pos = p.s.Position
	p.end = p.s.Pos()
	return p.tok
}

func (p *fileParser) errorf(format string, args ...any) error {
	if p.scanErr != nil {
		return p.scanErr
	}
	return fmt.Errorf("%s: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *fileParser) parseComponent() (Component, error) {
	var comp Component
	if p.next() != scanner.Ident {
		return comp, p.errorf("expected component name after `element`")
	}
	comp.Name = p.text
	comp.Line = p.pos.Line
	comp.Col = p.pos.Column

	if p.next() != '{' {
		return comp, p.errorf("expected `{` after component name")
	}
	fields, err := p.parseFields()
	if err != nil {
		return comp, err
	}
	comp.Fields = fields

	if p.next() != '(' {
		return comp, p.errorf("expected `(` before template")
	}
	tokens, err := p.parseTemplate()
	if err != nil {
		return comp, err
	}
	comp.Template = tokens
	return comp, nil
}

// parseFields reads `name Type` lines until the closing brace. A field's
// type is every token remaining on its line, joined with the original
// column gaps.
func (p *fileParser) parseFields() ([]Field, error) {
	var fields []Field
	tok := p.next()
	for {
		switch {
		case tok == '}':
			return fields, nil
		case tok == ';':
			tok = p.next()
		case tok == scanner.EOF:
			return nil, p.errorf("unterminated field list")
		case tok != scanner.Ident:
			return nil, p.errorf("expected field name")
		default:
			name := p.text
			line := p.pos.Line
			var typ strings.Builder
			prevEnd := p.end.Column
			tok = p.next()
			for tok != scanner.EOF && tok != '}' && tok != ';' && p.pos.Line == line {
				if typ.Len() > 0 {
					typ.WriteString(strings.Repeat(" ", gap(p.pos.Column-prevEnd)))
				}
				typ.WriteString(p.text)
				prevEnd = p.end.Column
				tok = p.next()
			}
			if typ.Len() == 0 {
				return nil, p.errorf("field `%s` is missing a type", name)
			}
			fields = append(fields, Field{Name: name, Type: typ.String()})
		}
	}
}

// parseTemplate collects raw tokens up to the parenthesis closing the
// template region.
func (p *fileParser) parseTemplate() ([]source.Token, error) {
	var tokens []source.Token
	depth := 1
	for {
		tok := p.next()
		if tok == scanner.EOF {
			return nil, p.errorf("unterminated template")
		}
		if tok == '(' {
			depth++
		}
		if tok == ')' {
			depth--
			if depth == 0 {
				return tokens, nil
			}
		}
		tokens = append(tokens, source.Token{
			Text:    p.text,
			Line:    p.pos.Line,
			Col:     p.pos.Column,
			EndLine: p.end.Line,
			EndCol:  p.end.Column,
		})
	}
}

func gap(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
