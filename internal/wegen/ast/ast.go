// Package ast holds the node tree produced by the markup parser.
package ast

// Span is a half-open byte range into the reconstructed template text.
type Span struct {
	Start int
	End   int
}

type Node interface {
	node()
	Span() Span
}

type Text struct {
	Value string
	Pos   Span
}

func (Text) node() {}

func (t Text) Span() Span { return t.Pos }

// Attr is a single attribute. Bare attributes (no "=") carry an empty Value.
// The class attribute never appears here; it is split into Element.Classes.
type Attr struct {
	Key   string
	Value string
}

type Element struct {
	// Name preserves the source spelling of the tag. Catalog lookups
	// lowercase it; component references use it verbatim.
	Name     string
	Attrs    []Attr
	Classes  []string
	Children []Node
	Pos      Span
}

func (Element) node() {}

func (e Element) Span() Span { return e.Pos }
