package wegen

import "github.com/pepijnd/webelements/internal/wegen/gen"

// CompileFile compiles a .we component source into a gofmt'd Go source file.
//
// The result is suitable for writing to "<path>.go" (i.e. "*.we.go") and
// checking in. Components referencing siblings in other .we files of the
// same package should be compiled with CompileFileWith instead.
func CompileFile(path string, src []byte) ([]byte, error) {
	return gen.Generate(path, src, nil)
}

// CompileFileWith is CompileFile with additional component names visible to
// the templates, typically gathered from the package's other .we files.
func CompileFileWith(path string, src []byte, known []string) ([]byte, error) {
	return gen.Generate(path, src, known)
}
