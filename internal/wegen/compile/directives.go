package compile

import (
	"strconv"

	"github.com/pepijnd/webelements/internal/wegen/ast"
)

// Reserved attribute names recognized by the compiler instead of being
// passed through to the built element.
const (
	attrField   = "we_field"
	attrRepeat  = "we_repeat"
	attrElement = "we_element"
)

// directives is the classified attribute set of a single element.
type directives struct {
	field  string     // we_field value, "" if unbound
	repeat int        // we_repeat count, 0 if not repeated
	custom string     // component type name for we_element, "" for builtins
	attrs  []ast.Attr // pass-through attributes
}

// resolveDirectives partitions an element's attributes into directives and
// pass-through attributes. Pure classification; every failure is fatal for
// the whole template.
func (c *compiler) resolveDirectives(el *ast.Element) (directives, *Diagnostic) {
	var d directives
	seen := make(map[string]bool, 3)
	for _, a := range el.Attrs {
		switch a.Key {
		case attrField, attrRepeat, attrElement:
			// The tokenizer does not dedupe attributes; an element carries at
			// most one of each directive kind.
			if seen[a.Key] {
				return d, c.diag(DirectiveError, el.Pos, "duplicate `%s` directive", a.Key)
			}
			seen[a.Key] = true
		}
		switch a.Key {
		case attrField:
			d.field = a.Value
		case attrElement:
			d.custom = el.Name
			if len(el.Children) != 0 {
				return d, c.diag(StructuralError, el.Pos, "`we_element` element cannot have any children")
			}
		case attrRepeat:
			if a.Value == "" {
				return d, c.diag(DirectiveError, el.Pos, "`we_repeat` needs a value")
			}
			n, err := strconv.Atoi(a.Value)
			if err != nil || n <= 0 {
				return d, c.diag(DirectiveError, el.Pos, "`we_repeat` must have a positive integer value")
			}
			d.repeat = n
		default:
			d.attrs = append(d.attrs, a)
		}
	}
	return d, nil
}
