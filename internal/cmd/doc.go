// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. All helpers
// take a context for cancellation and log the executed command (with timing)
// through the log package when verbose mode is enabled.
//
// # Design Notes
//
// Primer shells out to the git and tree CLIs rather than using Go libraries.
// The primer file format embeds the verbatim stdout of those tools, so
// reimplementing them would change the output bytes; shelling out also
// ensures compatibility with user configurations (git aliases, color
// settings, credential helpers).
package cmd
