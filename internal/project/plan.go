package project

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/pyskel/pyskel/internal/generator"
	"github.com/pyskel/pyskel/internal/naming"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// FileSpec is one boilerplate file: a path relative to the build's parent
// directory and the rendered content.
type FileSpec struct {
	Path    string
	Content []byte
}

// BuildPlan is the deterministic, ordered set of directories and files to
// create for a given pair of normalized names. Recomputing a plan from
// the same inputs always yields the same sequences.
type BuildPlan struct {
	Root    naming.Name
	Package naming.Name

	// Dirs lists relative directory paths with parents strictly before
	// children; the builder creates them in this order with a
	// non-recursive mkdir.
	Dirs []string

	// Files lists boilerplate files in a fixed order. Nothing depends on
	// this order at runtime, but it keeps builds reproducible.
	Files []FileSpec
}

// templateFiles maps each boilerplate file to its template, in creation
// order. Paths are relative to the project root; <pkg> marks the package
// segment.
var templateFiles = []struct {
	template string
	segments []string // path under the root; "<pkg>" is replaced
}{
	{"templates/README.md.tmpl", []string{"README.md"}},
	{"templates/pyproject.toml.tmpl", []string{"pyproject.toml"}},
	{"templates/gitignore.tmpl", []string{".gitignore"}},
	{"templates/init.py.tmpl", []string{"src", "<pkg>", "__init__.py"}},
	{"templates/env.py.tmpl", []string{"src", "<pkg>", "env.py"}},
	{"templates/db.py.tmpl", []string{"src", "<pkg>", "db.py"}},
	{"templates/sample_test.py.tmpl", []string{"test", "sample_test.py"}},
	{"templates/main.py.tmpl", []string{"src", "<pkg>", "main.py"}},
	{"templates/dev.yaml.tmpl", []string{"config", "DEV.yaml"}},
}

// Plan computes the build plan for a project. Only the pyproject template
// substitutes a value (the package name); every other payload is written
// verbatim.
func Plan(root, pkg naming.Name, docs bool) (*BuildPlan, error) {
	rootDir := string(root)
	pkgDir := string(pkg)

	dirs := []string{
		rootDir,
		filepath.Join(rootDir, "config"),
		filepath.Join(rootDir, "files"),
		filepath.Join(rootDir, "notebooks"),
		filepath.Join(rootDir, "test"),
		filepath.Join(rootDir, "src"),
		filepath.Join(rootDir, "src", pkgDir),
	}
	if docs {
		dirs = append(dirs, filepath.Join(rootDir, "docs"))
	}

	renderer := generator.NewRenderer()
	data := map[string]string{"Package": pkgDir}

	files := make([]FileSpec, 0, len(templateFiles))
	for _, tf := range templateFiles {
		content, err := renderer.RenderFS(templatesFS, tf.template, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", tf.template, err)
		}

		parts := append([]string{rootDir}, tf.segments...)
		for i, p := range parts {
			if p == "<pkg>" {
				parts[i] = pkgDir
			}
		}

		files = append(files, FileSpec{
			Path:    filepath.Join(parts...),
			Content: content,
		})
	}

	return &BuildPlan{Root: root, Package: pkg, Dirs: dirs, Files: files}, nil
}

// DirOps converts the plan's directories into ordered mkdir operations
// rooted at base.
func (p *BuildPlan) DirOps(base string) []generator.Operation {
	ops := make([]generator.Operation, 0, len(p.Dirs))
	for _, d := range p.Dirs {
		ops = append(ops, &generator.MkdirOp{Path: filepath.Join(base, d), Mode: 0755})
	}
	return ops
}

// FileOps converts the plan's file manifest into ordered write operations
// rooted at base.
func (p *BuildPlan) FileOps(base string) []generator.Operation {
	ops := make([]generator.Operation, 0, len(p.Files))
	for _, f := range p.Files {
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(base, f.Path),
			Content: f.Content,
			Mode:    0644,
		})
	}
	return ops
}
