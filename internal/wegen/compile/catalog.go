package compile

// Builtin is one entry of the builtin element catalog.
type Builtin struct {
	Tag     string // lowercase markup tag
	Wrapper string // wrapper type in pkg/element
}

// Catalog maps every supported tag to its wrapper type. It mirrors
// element.Kinds; a template tag outside this table must carry we_element.
var Catalog = []Builtin{
	{Tag: "body", Wrapper: "Base"},
	{Tag: "div", Wrapper: "Div"},
	{Tag: "p", Wrapper: "Paragraph"},
	{Tag: "span", Wrapper: "Span"},
	{Tag: "input", Wrapper: "Input"},
	{Tag: "button", Wrapper: "Button"},
}

func lookupBuiltin(tag string) *Builtin {
	for i := range Catalog {
		if Catalog[i].Tag == tag {
			return &Catalog[i]
		}
	}
	return nil
}
