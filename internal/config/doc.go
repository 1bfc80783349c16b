// Package config handles loading and validation of primer configuration.
//
// Configuration is read from ~/.config/primer/config.toml. A missing file is
// not an error and yields the defaults; an invalid file is.
//
// # Key Settings
//
//   - output_dir: Directory the primer file is written to (must be absolute
//     or ~/..., default: current working directory)
//   - extra_files: Additional key files appended after the built-in list
//   - tree.depth: Directory tree depth limit (default: 3)
//   - tree.exclude: Entry names excluded from the tree (default: ["target"])
//
// The built-in key-file list is fixed and compiled in; extra_files can only
// append to it, never remove or reorder entries.
//
// # Path Validation
//
// output_dir must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory. extra_files
// entries must be relative, since they are resolved against the project
// directory.
package config
