// Package gen turns .we sources into generated Go files: the declared
// structs augmented with their synthesized fields, one Build function per
// component, and root delegation so components satisfy element.Node.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pepijnd/webelements/internal/wegen/compile"
)

const elementImport = "github.com/pepijnd/webelements/pkg/element"

// Generate compiles .we source into a gofmt'd Go file. known lists component
// names declared in other .we files of the same package; components declared
// in src itself are always visible.
func Generate(path string, src []byte, known []string) ([]byte, error) {
	f, err := compile.ParseFile(path, src)
	if err != nil {
		return nil, err
	}
	if len(f.Components) == 0 {
		return nil, fmt.Errorf("%s: no element declarations", path)
	}
	names := make(map[string]bool, len(known)+len(f.Components))
	for _, n := range known {
		names[n] = true
	}
	for _, c := range f.Components {
		names[c.Name] = true
	}
	plans := make([]*compile.Plan, 0, len(f.Components))
	for i := range f.Components {
		plan, diag := compile.Compile(path, &f.Components[i], names)
		if diag != nil {
			return nil, diag
		}
		plans = append(plans, plan)
	}
	out, err := emitFile(f, plans)
	if err != nil {
		return nil, err
	}
	formatted, err := format.Source(out)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

type emitter struct {
	buf        bytes.Buffer
	n          int
	useStrconv bool
	useStrings bool
}

func (w *emitter) linef(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

func (w *emitter) fresh(prefix string) string {
	w.n++
	return fmt.Sprintf("%s%d", prefix, w.n)
}

func emitFile(f *compile.File, plans []*compile.Plan) ([]byte, error) {
	var w emitter
	for _, p := range plans {
		w.n = 0
		w.emitStruct(f, p)
		w.emitDelegation(p)
		w.emitBuild(p)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by wegen from %s; DO NOT EDIT.\n\n", filepath.Base(f.Path))
	fmt.Fprintf(&out, "package %s\n\n", f.Package)
	out.WriteString("import (\n")
	if w.useStrconv {
		out.WriteString("\t\"strconv\"\n")
	}
	if w.useStrings {
		out.WriteString("\t\"strings\"\n")
	}
	if w.useStrconv || w.useStrings {
		out.WriteString("\n")
	}
	fmt.Fprintf(&out, "\t%q\n", elementImport)
	out.WriteString(")\n\n")
	out.Write(w.buf.Bytes())
	return out.Bytes(), nil
}

func (w *emitter) emitStruct(f *compile.File, p *compile.Plan) {
	w.linef("// %s is built from its template in %s.", p.Component, filepath.Base(f.Path))
	w.linef("type %s struct {", p.Component)
	for _, uf := range p.UserFields {
		w.linef("%s %s", uf.Name, uf.Type)
	}
	if len(p.UserFields) > 0 {
		w.linef("")
	}
	w.linef("Root %s", typeRef(p.RootBuiltin, p.RootComponent))
	for _, b := range p.Bindings {
		w.linef("%s %s", b.Name, bindingType(b))
	}
	w.linef("}")
	w.linef("")
}

func (w *emitter) emitDelegation(p *compile.Plan) {
	w.linef("// Elem returns the root element, letting %s stand in wherever its root is expected.", p.Component)
	w.linef("func (e *%s) Elem() *element.Element {", p.Component)
	w.linef("return e.Root.Elem()")
	w.linef("}")
	w.linef("")
	w.linef("var _ element.Node = (*%s)(nil)", p.Component)
	w.linef("")
}

func (w *emitter) emitBuild(p *compile.Plan) {
	w.linef("// Build%s constructs the element tree and binds the declared fields.", p.Component)
	w.linef("func Build%s() (*%s, error) {", p.Component, p.Component)
	for _, b := range p.Bindings {
		w.linef("var _m_%s %s", b.Name, bindingType(b))
	}
	root := w.emitOnce(p.Root, false)
	w.linef("el := &%s{", p.Component)
	w.linef("Root: %s,", root)
	for _, b := range p.Bindings {
		w.linef("%s: _m_%s,", b.Name, b.Name)
	}
	w.linef("}")
	w.linef("if h, ok := any(el).(interface{ Init() error }); ok {")
	w.linef("if err := h.Init(); err != nil {")
	w.linef("return nil, err")
	w.linef("}")
	w.linef("}")
	w.linef("return el, nil")
	w.linef("}")
	w.linef("")
}

// emitOnce writes the statements building a single instance of e and returns
// the variable holding it. Children are emitted first; appends, classes,
// attributes, text, and field capture follow construction in that order.
func (w *emitter) emitOnce(e *compile.ConstructionExpr, inRepeat bool) string {
	var singles []string
	for _, ch := range e.Single {
		singles = append(singles, w.emitOnce(ch, inRepeat))
	}
	var lists []string
	for _, ch := range e.Lists {
		lists = append(lists, w.emitRepeat(ch))
	}
	v := w.fresh("_e")
	if e.Builtin != nil {
		w.linef("%s, err := element.New%s()", v, e.Builtin.Wrapper)
	} else {
		w.linef("%s, err := Build%s()", v, e.Custom)
	}
	w.linef("if err != nil {")
	w.linef("return nil, err")
	w.linef("}")
	for _, s := range singles {
		w.linef("if err := %s.Append(%s); err != nil {", v, s)
		w.linef("return nil, err")
		w.linef("}")
	}
	for _, l := range lists {
		w.linef("if err := element.AppendList(%s, %s); err != nil {", v, l)
		w.linef("return nil, err")
		w.linef("}")
	}
	// Opaque components expose only Elem(); mutations reach their root
	// element through it. Builtin wrappers promote the methods directly.
	recv := v
	if e.Builtin == nil {
		recv = v + ".Elem()"
	}
	for _, cl := range e.Classes {
		w.linef("%s.AddClass(%q)", recv, cl)
	}
	for _, a := range e.Attrs {
		w.linef("if err := %s.SetAttr(%q, %s); err != nil {", recv, a.Key, w.value(a.Value, inRepeat))
		w.linef("return nil, err")
		w.linef("}")
	}
	if e.HasText {
		w.linef("%s.SetText(%s)", recv, w.value(e.Text, inRepeat))
	}
	if e.Field != "" && e.Repeat == 0 {
		w.linef("_m_%s = %s", e.Field, v)
	}
	return v
}

// emitRepeat wraps the per-iteration expression in a loop collecting its
// instances, captures the whole list if field-bound, and returns the list
// variable.
func (w *emitter) emitRepeat(e *compile.ConstructionExpr) string {
	lv := w.fresh("_l")
	w.linef("%s := make([]%s, 0, %d)", lv, typeRef(e.Builtin, e.Custom), e.Repeat)
	w.linef("for _i := 0; _i < %d; _i++ {", e.Repeat)
	if needsIndex(e) {
		w.useStrconv = true
		w.linef("_idx := strconv.Itoa(_i)")
	}
	ev := w.emitOnce(e, true)
	w.linef("%s = append(%s, %s)", lv, lv, ev)
	w.linef("}")
	if e.Field != "" {
		w.linef("_m_%s = %s", e.Field, lv)
	}
	return lv
}

// value renders a text or attribute value. Inside a repeated subtree the
// literal `{i}` expands to the zero-based iteration index.
func (w *emitter) value(v string, inRepeat bool) string {
	if inRepeat && strings.Contains(v, "{i}") {
		w.useStrings = true
		return fmt.Sprintf("strings.ReplaceAll(%q, \"{i}\", _idx)", v)
	}
	return strconv.Quote(v)
}

// needsIndex reports whether the loop around e must bind the iteration
// index. Nested repeats bind their own and are not scanned.
func needsIndex(e *compile.ConstructionExpr) bool {
	if e.HasText && strings.Contains(e.Text, "{i}") {
		return true
	}
	for _, a := range e.Attrs {
		if strings.Contains(a.Value, "{i}") {
			return true
		}
	}
	for _, ch := range e.Single {
		if needsIndex(ch) {
			return true
		}
	}
	return false
}

func typeRef(b *compile.Builtin, custom string) string {
	if b != nil {
		return "*element." + b.Wrapper
	}
	return "*" + custom
}

func bindingType(b compile.FieldBinding) string {
	t := typeRef(b.Builtin, b.Custom)
	if b.Repeated {
		return "[]" + t
	}
	return t
}
