package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromRoot(t *testing.T) {
	root := t.TempDir()
	content := "subscriptions_glob: \"engines/**/subscriptions.yml\"\nmax_config_files: 25\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0644))

	s, err := Load("", root)
	require.NoError(t, err)
	require.Equal(t, Settings{
		SubscriptionsGlob: "engines/**/subscriptions.yml",
		MaxConfigFiles:    25,
	}, s)
}

func TestLoadMissingRootFile(t *testing.T) {
	s, err := Load("", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Settings{}, s)
}

func TestLoadExplicitPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "elsewhere.yml")
	require.NoError(t, os.WriteFile(path, []byte("exclude_glob: \"**/vendor/**\"\n"), 0644))

	s, err := Load(path, root)
	require.NoError(t, err)
	require.Equal(t, "**/vendor/**", s.ExcludeGlob)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), "")
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("max_config_files: [oops\n"), 0644))

	_, err := Load("", root)
	require.ErrorContains(t, err, "parse")
}

func TestInit(t *testing.T) {
	root := t.TempDir()

	path, err := Init(root)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, FileName), path)

	// Every key in the scaffold is commented out, so loading it yields
	// the zero settings.
	s, err := Load("", root)
	require.NoError(t, err)
	require.Equal(t, Settings{}, s)

	_, err = Init(root)
	require.ErrorContains(t, err, "already exists")
}
