package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// Shortcut is one named entry of the repos file: a reusable
// (origin, customizer) pair for quick-start.
type Shortcut struct {
	Description string `toml:"description"`
	Origin      string `toml:"origin"`
	Customizer  string `toml:"customizer"`
}

// DefaultCustomizer is the customizer script name used when neither the
// shortcut entry nor the command line overrides it.
const DefaultCustomizer = "customize"

// EnvReposFile overrides the repos file location when set.
const EnvReposFile = "GIT_EXTRA_REPOS_FILE"

// Path returns the path to the repos file.
func Path() (string, error) {
	if p := os.Getenv(EnvReposFile); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-extra", "repos.toml"), nil
}

// Load reads shortcuts from the repos file. Each top-level table is one
// shortcut keyed by name:
//
//	[rust-cli]
//	description = "Rust CLI starter"
//	origin = "git@github.com:acme/rust-cli-quickstart.git"
//	customizer = "customize"
//
// Returns an empty map if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (map[string]Shortcut, error) {
	path, err := Path()
	if err != nil {
		return map[string]Shortcut{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Shortcut{}, nil
		}
		return nil, fmt.Errorf("failed to read repos file: %w", err)
	}

	shortcuts := map[string]Shortcut{}
	if err := toml.Unmarshal(data, &shortcuts); err != nil {
		return nil, fmt.Errorf("failed to parse repos file %s: %w", path, err)
	}

	for name, sc := range shortcuts {
		if sc.Origin == "" {
			return nil, fmt.Errorf("repos file %s: shortcut %q is missing origin", path, name)
		}
	}

	return shortcuts, nil
}

// Names returns the shortcut names sorted for deterministic output.
func Names(shortcuts map[string]Shortcut) []string {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const defaultReposFile = `# git-extra quick-start shortcuts
#
# Each table is one shortcut. "origin" is required; "customizer" names
# an executable script inside the cloned repo (default: "customize").
#
# [rust-cli]
# description = "Rust CLI starter project"
# origin = "git@github.com:acme/rust-cli-quickstart.git"
# customizer = "customize"
#
# Run "git quick-start --list" to see configured shortcuts.
#
# NOTE: customizer scripts run unsandboxed with your full permissions,
# exactly as if you ran them yourself. BE CAREFUL with shortcuts that
# point at repositories you don't control.
`

// Init creates a commented template repos file.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("repos file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultReposFile), 0644); err != nil {
		return "", err
	}

	return path, nil
}
