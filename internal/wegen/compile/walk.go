package compile

import (
	"fmt"
	"strings"

	"github.com/pepijnd/webelements/internal/wegen/ast"
	"github.com/pepijnd/webelements/internal/wegen/source"
)

// ConstructionExpr describes how to build one element: construct it, append
// single children then list children, apply classes and attributes, set
// inline text, and capture it into a field slot. A Repeat above zero wraps
// the whole expression in a loop collecting its iterations into a list.
type ConstructionExpr struct {
	Builtin *Builtin // nil for opaque components
	Custom  string   // component type name when Builtin is nil
	Attrs   []ast.Attr
	Classes []string
	Text    string
	HasText bool
	Field   string // capture slot, "" if unbound
	Repeat  int    // loop count, 0 for a single element
	Single  []*ConstructionExpr
	Lists   []*ConstructionExpr
}

// FieldBinding records one we_field slot on the output struct.
type FieldBinding struct {
	Name     string
	Builtin  *Builtin // nil for opaque components
	Custom   string
	Repeated bool
}

type compiler struct {
	path     string
	mapper   *source.Mapper
	known    map[string]bool // component names visible to this template
	bindings []FieldBinding
}

func (c *compiler) diag(kind Kind, sp ast.Span, format string, args ...any) *Diagnostic {
	line, col := c.mapper.Pos(sp.Start)
	return &Diagnostic{Kind: kind, Path: c.path, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// walk compiles a run of sibling nodes into construction expressions,
// depth-first. Text nodes become their parent's inline text rather than
// standalone expressions. The first fatal error aborts the entire walk; no
// partially compiled siblings survive.
func (c *compiler) walk(nodes []ast.Node) ([]*ConstructionExpr, *Diagnostic) {
	var out []*ConstructionExpr
	for _, n := range nodes {
		el, ok := n.(ast.Element)
		if !ok {
			continue
		}
		d, diag := c.resolveDirectives(&el)
		if diag != nil {
			return nil, diag
		}

		var builtin *Builtin
		if d.custom == "" {
			builtin = lookupBuiltin(strings.ToLower(el.Name))
			if builtin == nil {
				return nil, c.diag(StructuralError, el.Pos, "element `%s` not implemented", strings.ToLower(el.Name))
			}
		} else if !c.known[d.custom] {
			return nil, c.diag(StructuralError, el.Pos, "`%s` does not name a component in this package", d.custom)
		}

		if d.field != "" {
			c.bindings = append(c.bindings, FieldBinding{
				Name:     d.field,
				Builtin:  builtin,
				Custom:   d.custom,
				Repeated: d.repeat > 0,
			})
		}

		children, diag := c.walk(el.Children)
		if diag != nil {
			return nil, diag
		}

		expr := &ConstructionExpr{
			Builtin: builtin,
			Custom:  d.custom,
			Attrs:   d.attrs,
			Classes: el.Classes,
			Field:   d.field,
			Repeat:  d.repeat,
		}
		for _, child := range el.Children {
			if t, ok := child.(ast.Text); ok {
				expr.Text, expr.HasText = t.Value, true
				break
			}
		}
		for _, ch := range children {
			if ch.Repeat > 0 {
				expr.Lists = append(expr.Lists, ch)
			} else {
				expr.Single = append(expr.Single, ch)
			}
		}
		out = append(out, expr)
	}
	return out, nil
}
