// Package workspace provides file access for project trees. Operations
// depend on the Workspace interface so hosts can plug in their own file
// layer: OS walks a directory on disk and Memory serves tests and
// embedding hosts.
package workspace

import "context"

// Workspace lists and reads the files of a project tree. Paths are
// slash-separated and relative to the tree root.
type Workspace interface {
	// ListFiles returns up to max paths matching the include glob, in
	// walk order. An empty exclude glob excludes nothing; max <= 0
	// means no cap.
	ListFiles(ctx context.Context, include, exclude string, max int) ([]string, error)

	// ReadFile returns the contents of a path as returned by ListFiles.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
