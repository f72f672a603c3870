package compile

import (
	"github.com/pepijnd/webelements/internal/wegen/ast"
	"github.com/pepijnd/webelements/internal/wegen/markup"
	"github.com/pepijnd/webelements/internal/wegen/source"
)

// Plan is the construction plan for one component: the root expression, the
// collected field bindings, and the resolved root type. It is consumed once
// by gen and discarded.
type Plan struct {
	Component  string
	UserFields []Field
	Root       *ConstructionExpr
	Bindings   []FieldBinding

	// RootIsElement is true when the root tag is a catalog builtin. When
	// false the root is an opaque component and the outward element type is
	// that component's own, one level indirect.
	RootIsElement bool
	RootBuiltin   *Builtin
	RootComponent string
}

// Compile turns one component declaration into a construction plan, or a
// single fatal diagnostic. known holds every component name visible to the
// template (the declaring file plus its package siblings).
func Compile(path string, comp *Component, known map[string]bool) (*Plan, *Diagnostic) {
	if len(comp.Template) == 0 {
		return nil, &Diagnostic{
			Kind: StructuralError, Path: path, Line: comp.Line, Col: comp.Col,
			Msg: "template must contain exactly 1 root",
		}
	}
	text, mapper := source.Reconstruct(comp.Template)
	c := &compiler{path: path, mapper: mapper, known: known}
	nodes, err := markup.Parse(text)
	if err != nil {
		return nil, c.diag(ParseError, ast.Span{Start: 0, End: len(text)}, "%s", err)
	}
	return c.assemble(comp, nodes)
}

func (c *compiler) assemble(comp *Component, roots []ast.Node) (*Plan, *Diagnostic) {
	// Cardinality counts every top-level node. Text beside the root is not
	// silently dropped; it fails the same way a second element would.
	whole := ast.Span{Start: 0, End: 0}
	if len(roots) != 1 {
		return nil, c.diag(StructuralError, whole, "template must contain exactly 1 root")
	}
	if t, ok := roots[0].(ast.Text); ok {
		return nil, c.diag(StructuralError, t.Pos, "template must contain exactly 1 root")
	}
	exprs, diag := c.walk(roots)
	if diag != nil {
		return nil, diag
	}
	root := exprs[0]
	if root.Repeat > 0 {
		return nil, c.diag(StructuralError, whole, "root element cannot carry `we_repeat`")
	}
	plan := &Plan{
		Component:     comp.Name,
		UserFields:    comp.Fields,
		Root:          root,
		Bindings:      c.bindings,
		RootIsElement: root.Builtin != nil,
		RootBuiltin:   root.Builtin,
		RootComponent: root.Custom,
	}
	if diag := c.verify(comp, plan); diag != nil {
		return nil, diag
	}
	return plan, nil
}

// verify checks the structural properties the generated code relies on:
// field names are valid, unique identifiers that do not collide with the
// user's fields or the Root slot, and every binding has exactly one capture
// site along the single generated execution path.
func (c *compiler) verify(comp *Component, p *Plan) *Diagnostic {
	whole := ast.Span{Start: 0, End: 0}
	seen := make(map[string]bool, len(comp.Fields)+len(p.Bindings))
	for _, f := range comp.Fields {
		if f.Name == "Root" {
			return c.diag(StructuralError, whole, "field name `Root` is reserved")
		}
		seen[f.Name] = true
	}
	for _, b := range p.Bindings {
		if !isIdent(b.Name) {
			return c.diag(StructuralError, whole, "`we_field` name `%s` is not a valid identifier", b.Name)
		}
		if b.Name == "Root" {
			return c.diag(StructuralError, whole, "field name `Root` is reserved")
		}
		if seen[b.Name] {
			return c.diag(StructuralError, whole, "duplicate field name `%s`", b.Name)
		}
		seen[b.Name] = true
	}
	if n := captureSites(p.Root); n != len(p.Bindings) {
		return c.diag(StructuralError, whole,
			"plan mismatch: %d field bindings but %d capture sites", len(p.Bindings), n)
	}
	return nil
}

func captureSites(e *ConstructionExpr) int {
	n := 0
	if e.Field != "" {
		n++
	}
	for _, ch := range e.Single {
		n += captureSites(ch)
	}
	for _, ch := range e.Lists {
		n += captureSites(ch)
	}
	return n
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
