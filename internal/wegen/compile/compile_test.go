package compile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// compileSrc parses a single-component .we source and compiles its template.
func compileSrc(t *testing.T, src string, known ...string) (*Plan, *Diagnostic) {
	t.Helper()
	f, err := ParseFile("test.we", []byte(src))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(f.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(f.Components))
	}
	names := map[string]bool{f.Components[0].Name: true}
	for _, n := range known {
		names[n] = true
	}
	return Compile("test.we", &f.Components[0], names)
}

const counterSrc = `package ui

element Counter {
	count int
} (
	<div class="counter" data-kind="demo">
		<p we_field="label">count</p>
		<button class="inc" we_field="inc" we_repeat="3" />
	</div>
)
`

func TestCompileCounter(t *testing.T) {
	plan, diag := compileSrc(t, counterSrc)
	if diag != nil {
		t.Fatalf("Compile: %v", diag)
	}
	if !plan.RootIsElement {
		t.Error("RootIsElement = false, want true")
	}
	if plan.RootBuiltin == nil || plan.RootBuiltin.Wrapper != "Div" {
		t.Errorf("RootBuiltin = %+v, want Div", plan.RootBuiltin)
	}
	wantBindings := []FieldBinding{
		{Name: "label", Builtin: lookupBuiltin("p"), Repeated: false},
		{Name: "inc", Builtin: lookupBuiltin("button"), Repeated: true},
	}
	if diff := cmp.Diff(wantBindings, plan.Bindings); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}

	root := plan.Root
	if diff := cmp.Diff([]string{"counter"}, root.Classes); diff != "" {
		t.Errorf("root classes mismatch (-want +got):\n%s", diff)
	}
	if len(root.Attrs) != 1 || root.Attrs[0].Key != "data-kind" || root.Attrs[0].Value != "demo" {
		t.Errorf("root attrs = %#v, want data-kind=demo", root.Attrs)
	}
	if len(root.Single) != 1 || len(root.Lists) != 1 {
		t.Fatalf("root children: %d single, %d lists, want 1 and 1", len(root.Single), len(root.Lists))
	}
	p := root.Single[0]
	if !p.HasText || p.Text != "count" {
		t.Errorf("p text = %q (has=%v), want count", p.Text, p.HasText)
	}
	if p.Field != "label" {
		t.Errorf("p field = %q, want label", p.Field)
	}
	button := root.Lists[0]
	if button.Repeat != 3 || button.Field != "inc" {
		t.Errorf("button repeat=%d field=%q, want 3/inc", button.Repeat, button.Field)
	}
}

func TestCompileNoBindings(t *testing.T) {
	plan, diag := compileSrc(t, `package ui

element Plain {} (
	<div class="a" data-x="v" />
)
`)
	if diag != nil {
		t.Fatalf("Compile: %v", diag)
	}
	if len(plan.Bindings) != 0 {
		t.Errorf("bindings = %#v, want none", plan.Bindings)
	}
}

func TestCompileOpaqueComponent(t *testing.T) {
	plan, diag := compileSrc(t, `package ui

element Outer {} (
	<div>
		<Widget we_element we_field="w" we_repeat="2" />
	</div>
)
`, "Widget")
	if diag != nil {
		t.Fatalf("Compile: %v", diag)
	}
	if len(plan.Bindings) != 1 {
		t.Fatalf("bindings = %#v, want one", plan.Bindings)
	}
	b := plan.Bindings[0]
	if b.Builtin != nil || b.Custom != "Widget" || !b.Repeated {
		t.Errorf("binding = %+v, want repeated Widget", b)
	}
}

func TestCompileCustomRoot(t *testing.T) {
	plan, diag := compileSrc(t, `package ui

element Wrapper {} (
	<Widget we_element />
)
`, "Widget")
	if diag != nil {
		t.Fatalf("Compile: %v", diag)
	}
	if plan.RootIsElement {
		t.Error("RootIsElement = true, want false for component root")
	}
	if plan.RootComponent != "Widget" {
		t.Errorf("RootComponent = %q, want Widget", plan.RootComponent)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		known    []string
		kind     Kind
		want     string
	}{
		{
			name:     "two roots",
			template: `<div /><span />`,
			kind:     StructuralError,
			want:     "exactly 1 root",
		},
		{
			name:     "no elements",
			template: `hello`,
			kind:     StructuralError,
			want:     "exactly 1 root",
		},
		{
			name:     "text beside root",
			template: `hello <div />`,
			kind:     StructuralError,
			want:     "exactly 1 root",
		},
		{
			name:     "unknown element",
			template: `<Article />`,
			kind:     StructuralError,
			want:     "element `article` not implemented",
		},
		{
			name:     "opaque with children",
			template: "<div><Widget we_element><p /></Widget></div>",
			known:    []string{"Widget"},
			kind:     StructuralError,
			want:     "cannot have any children",
		},
		{
			name:     "unresolved component",
			template: `<div><Missing we_element /></div>`,
			kind:     StructuralError,
			want:     "does not name a component",
		},
		{
			name:     "repeat without value",
			template: `<div><p we_repeat /></div>`,
			kind:     DirectiveError,
			want:     "needs a value",
		},
		{
			name:     "repeat not a number",
			template: `<div><p we_repeat="x" /></div>`,
			kind:     DirectiveError,
			want:     "positive integer",
		},
		{
			name:     "repeat zero",
			template: `<div><p we_repeat="0" /></div>`,
			kind:     DirectiveError,
			want:     "positive integer",
		},
		{
			name:     "repeat on root",
			template: `<div we_repeat="2" />`,
			kind:     StructuralError,
			want:     "root element cannot carry",
		},
		{
			name:     "duplicate we_field directive",
			template: `<div><p we_field="a" we_field="b" /></div>`,
			kind:     DirectiveError,
			want:     "duplicate `we_field` directive",
		},
		{
			name:     "duplicate we_repeat directive",
			template: `<div><p we_repeat="2" we_repeat="3" /></div>`,
			kind:     DirectiveError,
			want:     "duplicate `we_repeat` directive",
		},
		{
			name:     "duplicate field",
			template: `<div><p we_field="x" /><span we_field="x" /></div>`,
			kind:     StructuralError,
			want:     "duplicate field name `x`",
		},
		{
			name:     "field name not an identifier",
			template: `<div we_field="not ok" />`,
			kind:     StructuralError,
			want:     "not a valid identifier",
		},
		{
			name:     "reserved field name",
			template: `<div we_field="Root" />`,
			kind:     StructuralError,
			want:     "reserved",
		},
		{
			name:     "unclosed markup",
			template: `<div><p />`,
			kind:     ParseError,
			want:     "never closed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "package ui\n\nelement T {} (\n\t" + tt.template + "\n)\n"
			plan, diag := compileSrc(t, src, tt.known...)
			if diag == nil {
				t.Fatalf("expected diagnostic, got plan %+v", plan)
			}
			if diag.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", diag.Kind, tt.kind)
			}
			if !strings.Contains(diag.Msg, tt.want) {
				t.Errorf("message %q does not contain %q", diag.Msg, tt.want)
			}
			if diag.Path != "test.we" || diag.Line == 0 {
				t.Errorf("diagnostic not anchored: %v", diag)
			}
		})
	}
}

func TestDiagnosticAnchoredToTemplate(t *testing.T) {
	// The unknown element sits on line 5 of the source.
	_, diag := compileSrc(t, `package ui

element T {} (
	<div>
		<Article />
	</div>
)
`)
	if diag == nil {
		t.Fatal("expected diagnostic")
	}
	if diag.Line != 5 {
		t.Errorf("diagnostic line = %d, want 5", diag.Line)
	}
}

func TestCompileEmptyTemplate(t *testing.T) {
	_, diag := compileSrc(t, "package ui\n\nelement T {} ()\n")
	if diag == nil || diag.Kind != StructuralError {
		t.Fatalf("diag = %v, want structural error", diag)
	}
}
