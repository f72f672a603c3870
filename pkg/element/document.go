package element

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a minimal in-memory host document that built components can be
// mounted into.
type Document struct {
	root *html.Node
	body *html.Node
}

// NewDocument builds an empty html/head/body skeleton.
func NewDocument() *Document {
	root := &html.Node{Type: html.DocumentNode}
	doctype := &html.Node{Type: html.DoctypeNode, Data: "html"}
	htmlNode := &html.Node{Type: html.ElementNode, DataAtom: atom.Html, Data: "html"}
	head := &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	root.AppendChild(doctype)
	root.AppendChild(htmlNode)
	htmlNode.AppendChild(head)
	htmlNode.AppendChild(body)
	return &Document{root: root, body: body}
}

// Body returns the document body.
func (d *Document) Body() (*Base, error) {
	if d.body == nil {
		return nil, ErrNoBody
	}
	return &Base{Element: *FromNode(d.body)}, nil
}

// HTML renders the whole document.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
