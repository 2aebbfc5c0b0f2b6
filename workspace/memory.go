package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
)

// Memory is an in-memory Workspace. Listing order is insertion order,
// which gives tests a deterministic stand-in for walk order.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
	order []string
}

// NewMemory creates an empty in-memory workspace.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// WriteFile adds or replaces a file. Replacing keeps the original
// position in listing order.
func (m *Memory) WriteFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.ToSlash(path)
	if _, ok := m.files[path]; !ok {
		m.order = append(m.order, path)
	}
	m.files[path] = append([]byte(nil), data...)
}

// ListFiles implements Workspace.
func (m *Memory) ListFiles(_ context.Context, include, exclude string, max int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var paths []string
	for _, path := range m.order {
		if !matchGlob(include, path) {
			continue
		}
		if exclude != "" && matchGlob(exclude, path) {
			continue
		}
		paths = append(paths, path)
		if max > 0 && len(paths) >= max {
			break
		}
	}
	return paths, nil
}

// ReadFile implements Workspace.
func (m *Memory) ReadFile(_ context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[filepath.ToSlash(path)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

var _ Workspace = (*Memory)(nil)
