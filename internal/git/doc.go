// Package git provides git operations via shell commands.
//
// All operations use [os/exec] through the internal cmd package to call the
// git CLI directly rather than using Go git libraries. The primer format
// embeds the verbatim stdout of git, so the output must be byte-for-byte
// what the real tool produces; shelling out also ensures compatibility with
// user configurations (aliases, SSH keys, credential helpers).
//
// # Report Captures
//
//   - [Status]: verbatim working-tree status
//   - [RecentLog]: verbatim bounded one-line-per-commit history with
//     ancestry graph markers
//
// # Environment Checks
//
//   - [CheckGit]: git present in PATH
//   - [IsInsideRepoPath]: path is under version control
package git
