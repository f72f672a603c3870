package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pepijnd/webelements/internal/wegen/ast"
)

// spanless strips spans so tests can focus on tree shape.
var spanless = cmp.Options{
	cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Pos"
	}, cmp.Ignore()),
}

func TestParseTree(t *testing.T) {
	nodes, err := Parse(`<div class="a b" data-x="v"><p>hello</p><span /></div>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []ast.Node{
		ast.Element{
			Name:    "div",
			Classes: []string{"a", "b"},
			Attrs:   []ast.Attr{{Key: "data-x", Value: "v"}},
			Children: []ast.Node{
				ast.Element{Name: "p", Children: []ast.Node{ast.Text{Value: "hello"}}},
				ast.Element{Name: "span"},
			},
		},
	}
	if diff := cmp.Diff(want, nodes, spanless); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePreservesTagCase(t *testing.T) {
	nodes, err := Parse(`<div><MyElement we_element /></div>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	div, ok := nodes[0].(ast.Element)
	if !ok || len(div.Children) != 1 {
		t.Fatalf("unexpected tree: %#v", nodes)
	}
	child := div.Children[0].(ast.Element)
	if child.Name != "MyElement" {
		t.Errorf("child name = %q, want MyElement", child.Name)
	}
	if len(child.Attrs) != 1 || child.Attrs[0].Key != "we_element" || child.Attrs[0].Value != "" {
		t.Errorf("child attrs = %#v, want bare we_element", child.Attrs)
	}
}

func TestParseDropsBlankText(t *testing.T) {
	nodes, err := Parse("<div>\n    <p />\n</div>")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	div := nodes[0].(ast.Element)
	if len(div.Children) != 1 {
		t.Fatalf("children = %#v, want only the p element", div.Children)
	}
}

func TestParseSpans(t *testing.T) {
	text := `<div><p /></div>`
	nodes, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	div := nodes[0].(ast.Element)
	if div.Pos.Start != 0 || div.Pos.End != len(text) {
		t.Errorf("div span = %+v, want 0..%d", div.Pos, len(text))
	}
	p := div.Children[0].(ast.Element)
	if p.Pos.Start != len("<div>") {
		t.Errorf("p span start = %d, want %d", p.Pos.Start, len("<div>"))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unclosed", "<div><p></p>", "`div` is never closed"},
		{"mismatch", "<div></p>", "does not match"},
		{"stray close", "</div>", "unexpected closing tag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestParseMultipleRoots(t *testing.T) {
	nodes, err := Parse(`<div /><span />`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(nodes) != 2 {
		t.Errorf("got %d roots, want 2", len(nodes))
	}
}
