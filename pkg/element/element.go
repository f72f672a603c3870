// Package element is the runtime half of webelements: typed wrappers over an
// in-memory host node tree that wegen-generated construction routines build,
// mutate, and hand back to user code.
//
// The host node type is golang.org/x/net/html.Node; a tree built here renders
// to HTML with (*Element).HTML and can be spliced into gomponents pages with
// Gomponent.
package element

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is implemented by anything rooted in a host element: Element itself,
// the typed kinds, and every wegen-generated component.
type Node interface {
	Elem() *Element
}

// Element wraps a single host node.
type Element struct {
	node     *html.Node
	handlers map[string][]Handler
}

func newElement(a atom.Atom, tag string) *Element {
	return &Element{node: &html.Node{Type: html.ElementNode, DataAtom: a, Data: tag}}
}

// FromNode wraps an existing host node.
func FromNode(n *html.Node) *Element {
	return &Element{node: n}
}

// Elem returns the element itself, satisfying Node.
func (e *Element) Elem() *Element { return e }

// Node returns the underlying host node.
func (e *Element) Node() *html.Node { return e.node }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.node.Data }

// Append attaches child as the last child of e. A child that is already
// attached elsewhere is moved, matching host appendChild semantics.
func (e *Element) Append(child Node) error {
	n := child.Elem().node
	if n == e.node {
		return ErrSelfAppend
	}
	for p := e.node; p != nil; p = p.Parent {
		if p == n {
			return ErrCycle
		}
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	e.node.AppendChild(n)
	return nil
}

// AppendList appends every item in order, stopping at the first failure.
func AppendList[T Node](parent Node, items []T) error {
	for _, item := range items {
		if err := parent.Elem().Append(item); err != nil {
			return err
		}
	}
	return nil
}

// Children returns the element children, in order. Text nodes are skipped.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, FromNode(c))
		}
	}
	return out
}

func (e *Element) className() string {
	v, _ := e.Attr("class")
	return v
}

func (e *Element) setClassName(class string) {
	class = strings.TrimSpace(class)
	if class == "" {
		e.DelAttr("class")
		return
	}
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == "class" {
			e.node.Attr[i].Val = class
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: "class", Val: class})
}

// HasClass reports whether class is present in the element's class list.
func (e *Element) HasClass(class string) bool {
	for _, name := range strings.Fields(e.className()) {
		if name == class {
			return true
		}
	}
	return false
}

// AddClass adds every whitespace-separated class that is not already present.
func (e *Element) AddClass(class string) {
	for _, c := range strings.Fields(class) {
		if !e.HasClass(c) {
			e.setClassName(e.className() + " " + c)
		}
	}
}

// RemoveClass removes every whitespace-separated class.
func (e *Element) RemoveClass(class string) {
	for _, c := range strings.Fields(class) {
		if !e.HasClass(c) {
			continue
		}
		var kept []string
		for _, name := range strings.Fields(e.className()) {
			if name != c {
				kept = append(kept, name)
			}
		}
		e.setClassName(strings.Join(kept, " "))
	}
}

// ToggleClass flips the presence of every whitespace-separated class.
func (e *Element) ToggleClass(class string) {
	for _, c := range strings.Fields(class) {
		if e.HasClass(c) {
			e.RemoveClass(c)
		} else {
			e.AddClass(c)
		}
	}
}

// SetClass replaces the whole class list.
func (e *Element) SetClass(class string) {
	e.setClassName(class)
}

// ClearClass removes the class attribute entirely.
func (e *Element) ClearClass() {
	e.DelAttr("class")
}

// SetAttr sets an attribute, replacing any previous value.
func (e *Element) SetAttr(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrAttrName
	}
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = value
			return nil
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
	return nil
}

// Attr returns the attribute value and whether it is set.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// DelAttr removes an attribute if present.
func (e *Element) DelAttr(key string) {
	for i, a := range e.node.Attr {
		if a.Key == key {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// SetText replaces the element's text content. Element children are kept in
// place; only text nodes are replaced.
func (e *Element) SetText(text string) {
	var next *html.Node
	for c := e.node.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.TextNode {
			e.node.RemoveChild(c)
		}
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the concatenated text content of the element's direct text
// children.
func (e *Element) Text() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// Clone returns a detached deep copy of the element's subtree. Event handlers
// are not copied.
func (e *Element) Clone() *Element {
	return &Element{node: cloneNode(e.node)}
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for k := n.FirstChild; k != nil; k = k.NextSibling {
		c.AppendChild(cloneNode(k))
	}
	return c
}

// HTML renders the element subtree.
func (e *Element) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return "", err
	}
	return buf.String(), nil
}
