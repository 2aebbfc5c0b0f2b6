package workspace

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryListFiles(t *testing.T) {
	ws := NewMemory()
	ws.WriteFile("b/config/event_bus_subscriptions.yml", []byte("b"))
	ws.WriteFile("a/config/event_bus_subscriptions.yml", []byte("a"))
	ws.WriteFile("a/models/user.rb", []byte(""))

	paths, err := ws.ListFiles(context.Background(), "**/config/event_bus_subscriptions.yml", "", 0)
	require.NoError(t, err)

	// Insertion order, not lexical.
	require.Equal(t, []string{
		"b/config/event_bus_subscriptions.yml",
		"a/config/event_bus_subscriptions.yml",
	}, paths)
}

func TestMemoryListFilesExcludeAndMax(t *testing.T) {
	ws := NewMemory()
	ws.WriteFile("a.rb", []byte(""))
	ws.WriteFile("vendor/b.rb", []byte(""))
	ws.WriteFile("c.rb", []byte(""))
	ws.WriteFile("d.rb", []byte(""))

	paths, err := ws.ListFiles(context.Background(), "**/*.rb", "**/vendor/**", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"a.rb", "c.rb"}, paths)
}

func TestMemoryReadFile(t *testing.T) {
	ws := NewMemory()
	ws.WriteFile("a.rb", []byte("class A\nend\n"))

	data, err := ws.ReadFile(context.Background(), "a.rb")
	require.NoError(t, err)
	require.Equal(t, "class A\nend\n", string(data))

	// Mutating the returned slice must not affect the stored copy.
	data[0] = 'x'
	again, err := ws.ReadFile(context.Background(), "a.rb")
	require.NoError(t, err)
	require.Equal(t, "class A\nend\n", string(again))

	_, err = ws.ReadFile(context.Background(), "missing.rb")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryWriteFileReplaceKeepsOrder(t *testing.T) {
	ws := NewMemory()
	ws.WriteFile("a.rb", []byte("one"))
	ws.WriteFile("b.rb", []byte("two"))
	ws.WriteFile("a.rb", []byte("three"))

	paths, err := ws.ListFiles(context.Background(), "**/*.rb", "", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"a.rb", "b.rb"}, paths)

	data, err := ws.ReadFile(context.Background(), "a.rb")
	require.NoError(t, err)
	require.Equal(t, "three", string(data))
}
