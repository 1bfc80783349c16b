package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Tree defaults, matching the primer format contract.
const (
	DefaultTreeDepth = 3
)

// DefaultTreeExcludes returns the default tree exclusion list.
func DefaultTreeExcludes() []string {
	return []string{"target"}
}

// TreeConfig holds directory-tree settings.
type TreeConfig struct {
	Depth   int      `toml:"depth"`
	Exclude []string `toml:"exclude"`
}

// Config holds the primer configuration.
type Config struct {
	OutputDir  string     `toml:"output_dir"`  // where primer files are written; empty = cwd
	ExtraFiles []string   `toml:"extra_files"` // appended after the built-in key-file list
	Tree       TreeConfig `toml:"tree"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Tree: TreeConfig{
			Depth:   DefaultTreeDepth,
			Exclude: DefaultTreeExcludes(),
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns error if path is relative (like "." or "..").
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "primer", "config.toml"), nil
}

// Load reads config from ~/.config/primer/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path, with the same semantics as
// Load. Split out so tests don't depend on the caller's home directory.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate output_dir (must be absolute or start with ~)
	if err := ValidatePath(cfg.OutputDir, "output_dir"); err != nil {
		return Default(), err
	}

	// Expand ~ in output_dir (shell doesn't expand in config files)
	if cfg.OutputDir != "" {
		expanded, err := expandPath(cfg.OutputDir)
		if err != nil {
			return Default(), fmt.Errorf("expand output_dir: %w", err)
		}
		cfg.OutputDir = expanded
	}

	// extra_files are resolved against the project directory, so they must
	// stay relative and inside it.
	for _, f := range cfg.ExtraFiles {
		if f == "" {
			return Default(), errors.New("extra_files entries must not be empty")
		}
		if filepath.IsAbs(f) {
			return Default(), fmt.Errorf("extra_files entries must be relative, got: %q", f)
		}
	}

	if cfg.Tree.Depth < 0 {
		return Default(), fmt.Errorf("tree.depth must not be negative, got: %d", cfg.Tree.Depth)
	}

	// Use defaults for unset values; a depth of 0 means unset
	if cfg.Tree.Depth == 0 {
		cfg.Tree.Depth = DefaultTreeDepth
	}
	if cfg.Tree.Exclude == nil {
		cfg.Tree.Exclude = DefaultTreeExcludes()
	}

	return cfg, nil
}

const defaultConfig = `# primer configuration
# Config location: ~/.config/primer/config.toml

# Directory the primer file is written to
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# Default: the current working directory
# output_dir = "~/primers"

# Additional key files to embed, appended after the built-in list.
# Paths are relative to the project directory.
# extra_files = ["docs/DESIGN.md", "Cargo.lock"]

# Directory tree settings
[tree]
# Depth limit for the tree listing
depth = 3

# Entry names excluded from the tree listing
exclude = ["target"]
`

// DefaultTemplate returns the commented default config file content.
func DefaultTemplate() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/primer/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
