package element

import (
	"golang.org/x/net/html"

	g "maragu.dev/gomponents"
)

// Gomponent converts a built element tree into a gomponents node so it can be
// spliced into gomponents-rendered pages. The conversion is a snapshot; later
// mutations of the element tree are not reflected.
func Gomponent(n Node) g.Node {
	return convert(n.Elem().node)
}

func convert(n *html.Node) g.Node {
	switch n.Type {
	case html.TextNode:
		return g.Text(n.Data)
	case html.ElementNode:
		var children []g.Node
		for _, a := range n.Attr {
			children = append(children, g.Attr(a.Key, a.Val))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				children = append(children, child)
			}
		}
		return g.El(n.Data, children...)
	default:
		return nil
	}
}
