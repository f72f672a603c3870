package compile

import "fmt"

// Kind classifies a compile-time diagnostic.
type Kind int

const (
	// ParseError: reconstructed template text is not valid markup.
	ParseError Kind = iota
	// StructuralError: root cardinality, unknown tag, opaque component with
	// children, duplicate or invalid field names, unresolved component
	// reference.
	StructuralError
	// DirectiveError: malformed or missing we_repeat value.
	DirectiveError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case StructuralError:
		return "structural error"
	case DirectiveError:
		return "directive error"
	}
	return "error"
}

// Diagnostic is the single fatal error produced by a failed compilation,
// anchored to a position in the .we source. Compilation has no
// partial-success mode: a template either yields a plan or exactly one
// Diagnostic.
type Diagnostic struct {
	Kind Kind
	Path string
	Line int
	Col  int
	Msg  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Path, d.Line, d.Col, d.Msg)
}
