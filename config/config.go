// Package config loads .busq.yml project settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file busq looks for at the project root.
const FileName = ".busq.yml"

// Settings represents configuration loaded from .busq.yml.
// Field names match snake_case YAML keys. Zero values fall back to the
// operation defaults.
type Settings struct {
	// SubscriptionsGlob overrides where subscription configs live.
	SubscriptionsGlob string `yaml:"subscriptions_glob"`

	// ExcludeGlob overrides the paths every scan skips.
	ExcludeGlob string `yaml:"exclude_glob"`

	// MaxConfigFiles caps how many config files one lookup reads.
	MaxConfigFiles int `yaml:"max_config_files"`

	// MaxHandlerCandidates caps handler source file candidates.
	MaxHandlerCandidates int `yaml:"max_handler_candidates"`
}

// Load reads settings for a project tree. Lookup order (first found
// wins):
//  1. the explicit path, when non-empty
//  2. <root>/.busq.yml
//
// A missing <root>/.busq.yml is not an error; it yields zero Settings.
// A missing explicit path is.
func Load(path, root string) (Settings, error) {
	if path != "" {
		return loadFile(path)
	}

	s, err := loadFile(filepath.Join(root, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	return s, err
}

func loadFile(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// defaultConfig is the scaffold written by Init.
const defaultConfig = `# busq configuration
#
# All keys are optional. Unset keys use built-in defaults.

# Where subscription config files live.
#subscriptions_glob: "**/config/event_bus_subscriptions.yml"

# Paths every scan skips.
#exclude_glob: "**/node_modules/**"

# How many subscription config files one lookup reads.
#max_config_files: 200

# How many source files are considered when resolving a handler.
#max_handler_candidates: 10
`

// Init writes a commented default config at <root>/.busq.yml and
// returns its path. It refuses to overwrite an existing file. The
// write is atomic so a concurrent reader never sees a partial file.
func Init(root string) (string, error) {
	if root == "" {
		root = "."
	}

	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := atomicWriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
