package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultIgnoreDirs returns directories never descended into.
func defaultIgnoreDirs() map[string]struct{} {
	return map[string]struct{}{
		".git":          {},
		".hg":           {},
		".svn":          {},
		".jj":           {},
		"node_modules":  {},
		"vendor":        {},
		"dist":          {},
		"build":         {},
		"target":        {},
		".venv":         {},
		"__pycache__":   {},
		".mypy_cache":   {},
		".pytest_cache": {},
		".next":         {},
		".cache":        {},
		".turbo":        {},
		"coverage":      {},
		"tmp":           {},
		"log":           {},
	}
}

// Config holds OS workspace configuration.
type Config struct {
	// Root is the project tree root. Empty means the current directory.
	Root string

	// IgnoreDirs overrides the default set of directories to skip.
	IgnoreDirs map[string]struct{}
}

// OS is a Workspace over a directory tree on disk.
type OS struct {
	root       string
	ignoreDirs map[string]struct{}
}

// NewOS creates an OS workspace rooted at cfg.Root.
func NewOS(cfg Config) *OS {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.IgnoreDirs == nil {
		cfg.IgnoreDirs = defaultIgnoreDirs()
	}
	return &OS{root: cfg.Root, ignoreDirs: cfg.IgnoreDirs}
}

// ListFiles implements Workspace.
func (o *OS) ListFiles(ctx context.Context, include, exclude string, max int) ([]string, error) {
	absRoot, err := filepath.Abs(o.root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	var paths []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if _, ok := o.ignoreDirs[d.Name()]; ok {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if !matchGlob(include, rel) {
			return nil
		}
		if exclude != "" && matchGlob(exclude, rel) {
			return nil
		}

		paths = append(paths, rel)
		if max > 0 && len(paths) >= max {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// ReadFile implements Workspace.
func (o *OS) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(o.root, filepath.FromSlash(path)))
}

var _ Workspace = (*OS)(nil)
