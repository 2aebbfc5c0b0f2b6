package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
	}
}

func TestOSListFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"config/event_bus_subscriptions.yml":              "root",
		"engines/payroll/config/event_bus_subscriptions.yml": "payroll",
		"node_modules/pkg/config/event_bus_subscriptions.yml": "ignored",
		"app/models/user.rb":                              "",
	})

	ws := NewOS(Config{Root: root})
	paths, err := ws.ListFiles(context.Background(), "**/config/event_bus_subscriptions.yml", "", 0)
	require.NoError(t, err)

	// node_modules is never descended into; walk order is lexical.
	require.Equal(t, []string{
		"config/event_bus_subscriptions.yml",
		"engines/payroll/config/event_bus_subscriptions.yml",
	}, paths)
}

func TestOSListFilesExclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"config/event_bus_subscriptions.yml":           "root",
		"engines/x/config/event_bus_subscriptions.yml": "engine",
	})

	ws := NewOS(Config{Root: root})
	paths, err := ws.ListFiles(context.Background(), "**/config/event_bus_subscriptions.yml", "**/engines/**", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"config/event_bus_subscriptions.yml"}, paths)
}

func TestOSListFilesMax(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/config/event_bus_subscriptions.yml": "",
		"b/config/event_bus_subscriptions.yml": "",
		"c/config/event_bus_subscriptions.yml": "",
	})

	ws := NewOS(Config{Root: root})
	paths, err := ws.ListFiles(context.Background(), "**/config/event_bus_subscriptions.yml", "", 2)
	require.NoError(t, err)
	require.Equal(t, []string{
		"a/config/event_bus_subscriptions.yml",
		"b/config/event_bus_subscriptions.yml",
	}, paths)
}

func TestOSListFilesCanceled(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.rb": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ws := NewOS(Config{Root: root})
	_, err := ws.ListFiles(ctx, "**/*.rb", "", 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOSReadFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"app/a.rb": "class A\nend\n"})

	ws := NewOS(Config{Root: root})

	data, err := ws.ReadFile(context.Background(), "app/a.rb")
	require.NoError(t, err)
	require.Equal(t, "class A\nend\n", string(data))

	_, err = ws.ReadFile(context.Background(), "app/missing.rb")
	require.Error(t, err)
}
