package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pepijnd/webelements/internal/wegen/compile"
	"github.com/pepijnd/webelements/internal/wegen/gen"
	"github.com/pepijnd/webelements/internal/wegen/outfile"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: wegen [flags] [paths...]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Generates one *.we.go file next to each *.we component source.")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Paths behave like Go patterns:")
		_, _ = fmt.Fprintln(os.Stderr, "  - ./...       recurse from cwd")
		_, _ = fmt.Fprintln(os.Stderr, "  - ./dir       only that directory (non-recursive)")
		_, _ = fmt.Fprintln(os.Stderr, "  - ./dir/...   recurse from that directory")
		_, _ = fmt.Fprintln(os.Stderr, "  - ./file.we   only that file")
		flag.PrintDefaults()
	}
	rootFlag := flag.String("root", "", "module root (defaults to auto-detected go.mod parent from cwd)")
	dirFlag := flag.String("dir", "", "if set, only generate for this directory (non-recursive). Useful with go:generate.")
	flag.Parse()

	cwd, err := os.Getwd()
	if err != nil {
		fatal(err)
	}
	root := *rootFlag
	if root == "" {
		root, err = findModuleRoot(cwd)
		if err != nil {
			fatal(err)
		}
	}
	root, err = filepath.Abs(root)
	if err != nil {
		fatal(err)
	}

	if strings.TrimSpace(*dirFlag) != "" && flag.NArg() != 0 {
		fatal(fmt.Errorf("wegen: cannot use -dir with positional paths"))
	}

	if strings.TrimSpace(*dirFlag) != "" {
		dir := *dirFlag
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cwd, dir)
		}
		dir, err = filepath.Abs(dir)
		if err != nil {
			fatal(err)
		}
		if err := generateDir(root, dir); err != nil {
			fatal(err)
		}
		return
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	paths, err := collectWePaths(cwd, patterns)
	if err != nil {
		fatal(err)
	}
	if len(paths) == 0 {
		return
	}

	sort.Strings(paths)
	var allErr error
	for _, pth := range paths {
		if err := generateFile(root, pth); err != nil {
			allErr = errors.Join(allErr, err)
		}
	}
	if allErr != nil {
		fatal(allErr)
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func findModuleRoot(start string) (string, error) {
	d := start
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

func generateDir(moduleRoot, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".we") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil
	}
	sort.Strings(paths)

	for _, pth := range paths {
		if err := generateFile(moduleRoot, pth); err != nil {
			return err
		}
	}
	return nil
}

func generateFile(_ string, pth string) error {
	b, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	known, err := packageComponents(filepath.Dir(pth), pth)
	if err != nil {
		return err
	}
	src, err := gen.Generate(pth, b, known)
	if err != nil {
		return fmt.Errorf("%s: %w", pth, err)
	}
	outPath := pth + ".go"
	if err := outfile.WriteGeneratedFile(outPath, src); err != nil {
		return err
	}
	return nil
}

// packageComponents gathers the component names declared by the other .we
// files in dir, so templates can embed package siblings. Files that fail to
// parse are skipped here; they report their own errors when generated.
func packageComponents(dir, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".we") {
			continue
		}
		pth := filepath.Join(dir, e.Name())
		if pth == exclude {
			continue
		}
		b, err := os.ReadFile(pth)
		if err != nil {
			return nil, err
		}
		f, err := compile.ParseFile(pth, b)
		if err != nil {
			continue
		}
		for _, c := range f.Components {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func collectWePaths(cwd string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string

	add := func(p string) error {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(cwd, abs)
		}
		abs, err := filepath.Abs(abs)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			out = append(out, abs)
		}
		return nil
	}

	for _, raw := range patterns {
		pat := strings.TrimSpace(raw)
		if pat == "" {
			continue
		}

		// Recursive pattern: <dir>/...
		if strings.HasSuffix(pat, "/...") || pat == "./..." || pat == "..." {
			base := strings.TrimSuffix(pat, "...")
			base = strings.TrimSuffix(base, "/")
			if base == "" {
				base = "."
			}
			dir := base
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(cwd, dir)
			}
			dir, err := filepath.Abs(dir)
			if err != nil {
				return nil, err
			}
			if err := walkWe(dir, func(p string) error { return add(p) }); err != nil {
				return nil, err
			}
			continue
		}

		// Non-recursive: file.we or directory.
		target := pat
		if !filepath.IsAbs(target) {
			target = filepath.Join(cwd, target)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			return nil, err
		}
		st, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if st.IsDir() {
			entries, err := os.ReadDir(target)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if strings.HasSuffix(e.Name(), ".we") {
					if err := add(filepath.Join(target, e.Name())); err != nil {
						return nil, err
					}
				}
			}
			continue
		}
		if !strings.HasSuffix(target, ".we") {
			return nil, fmt.Errorf("wegen: not a .we file: %s", target)
		}
		if err := add(target); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func walkWe(root string, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			name := de.Name()
			if name == "vendor" || name == "node_modules" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(de.Name(), ".we") {
			return add(path)
		}
		return nil
	})
}
