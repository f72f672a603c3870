package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pepijnd/webelements/internal/wegen/gen"
	"github.com/pepijnd/webelements/internal/wegen/outfile"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: playground [flags]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Watches ./playground/app.we, regenerates app.we.go on changes,")
		_, _ = fmt.Fprintln(os.Stderr, "and writes an HTML preview of the generated source.")
	}
	interval := flag.Duration("interval", 300*time.Millisecond, "watch polling interval")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := watchAndGenerate(*interval); err != nil {
		fatal(err)
	}
}

func watchAndGenerate(interval time.Duration) error {
	root, err := findModuleRoot(".")
	if err != nil {
		return err
	}
	target := filepath.Join(root, "playground", "app.we")

	var lastHash [32]byte
	var have bool

	for {
		src, err := os.ReadFile(target)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "playground: read error: %v\n", err)
			time.Sleep(interval)
			continue
		}
		sum := sha256.Sum256(src)
		if !have || sum != lastHash {
			lastHash = sum
			have = true

			if err := regenerate(target, src); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "playground: generate failed: %v\n", err)
			}
		}

		time.Sleep(interval)
	}
}

func regenerate(target string, src []byte) error {
	out, err := gen.Generate(target, src, nil)
	if err != nil {
		return err
	}
	if err := outfile.WriteGeneratedFile(target+".go", out); err != nil {
		return err
	}
	return writePreview(filepath.Join(filepath.Dir(target), "preview.html"), target, out)
}

// writePreview renders a small gomponents page showing the generated source,
// so edits to the .we file can be inspected in a browser tab.
func writePreview(path, target string, generated []byte) error {
	page := h.HTML(
		h.Head(h.TitleEl(g.Text("wegen playground"))),
		h.Body(
			h.H1(g.Text(filepath.Base(target))),
			h.Pre(h.Code(g.Text(string(generated)))),
		),
	)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, "<!doctype html>"); err != nil {
		return err
	}
	return page.Render(f)
}

func findModuleRoot(start string) (string, error) {
	d, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", fmt.Errorf("could not find go.mod above %s", start)
		}
		d = parent
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
