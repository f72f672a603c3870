package element

import (
	"strconv"

	"golang.org/x/net/html/atom"
)

// Kind describes one entry of the builtin element catalog: the markup tag,
// the wrapper type name, and the host atom it constructs.
type Kind struct {
	Tag     string
	Wrapper string
	Atom    atom.Atom
}

// Kinds is the builtin catalog. wegen resolves template tags against the same
// table on the compiler side.
var Kinds = []Kind{
	{Tag: "body", Wrapper: "Base", Atom: atom.Body},
	{Tag: "div", Wrapper: "Div", Atom: atom.Div},
	{Tag: "p", Wrapper: "Paragraph", Atom: atom.P},
	{Tag: "span", Wrapper: "Span", Atom: atom.Span},
	{Tag: "input", Wrapper: "Input", Atom: atom.Input},
	{Tag: "button", Wrapper: "Button", Atom: atom.Button},
}

// Base wraps a body element.
type Base struct{ Element }

func NewBase() (*Base, error) {
	return &Base{Element: *newElement(atom.Body, "body")}, nil
}

// Div wraps a div element.
type Div struct{ Element }

func NewDiv() (*Div, error) {
	return &Div{Element: *newElement(atom.Div, "div")}, nil
}

// Paragraph wraps a p element.
type Paragraph struct{ Element }

func NewParagraph() (*Paragraph, error) {
	return &Paragraph{Element: *newElement(atom.P, "p")}, nil
}

// Span wraps a span element.
type Span struct{ Element }

func NewSpan() (*Span, error) {
	return &Span{Element: *newElement(atom.Span, "span")}, nil
}

// Input wraps an input element.
type Input struct{ Element }

func NewInput() (*Input, error) {
	return &Input{Element: *newElement(atom.Input, "input")}, nil
}

// OnInput registers a handler for input events.
func (e *Input) OnInput(fn Handler) {
	e.On("input", fn)
}

// SetValue sets the input's value attribute.
func (e *Input) SetValue(value string) {
	_ = e.SetAttr("value", value)
}

// Value returns the input's value attribute, or the empty string.
func (e *Input) Value() string {
	v, _ := e.Attr("value")
	return v
}

// IntValue parses the input's value as an integer.
func (e *Input) IntValue() (int, error) {
	n, err := strconv.Atoi(e.Value())
	if err != nil {
		return 0, ErrValue
	}
	return n, nil
}

// SetMin sets the input's min attribute.
func (e *Input) SetMin(value string) {
	_ = e.SetAttr("min", value)
}

// SetMax sets the input's max attribute.
func (e *Input) SetMax(value string) {
	_ = e.SetAttr("max", value)
}

// Button wraps a button element.
type Button struct{ Element }

func NewButton() (*Button, error) {
	return &Button{Element: *newElement(atom.Button, "button")}, nil
}
