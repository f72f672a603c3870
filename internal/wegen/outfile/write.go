package outfile

import "os"

// WriteGeneratedFile writes src to outPath, always overwriting any existing
// generated file.
func WriteGeneratedFile(outPath string, src []byte) error {
	return os.WriteFile(outPath, src, 0o644)
}
