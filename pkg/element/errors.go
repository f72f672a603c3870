package element

import "errors"

// Host errors raised by runtime element operations. They propagate unmodified
// through generated Build functions and Init hooks.
var (
	ErrAttrName   = errors.New("attribute name is empty")
	ErrSelfAppend = errors.New("element cannot be appended to itself")
	ErrCycle      = errors.New("append would create a cycle")
	ErrNoBody     = errors.New("document has no body")
	ErrValue      = errors.New("unable to parse input value")
)
