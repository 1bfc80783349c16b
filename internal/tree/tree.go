// Package tree renders directory listings via the external tree command.
//
// The primer format embeds the verbatim stdout of tree, so the listing is
// never reimplemented in Go; a missing tree binary is a fatal condition for
// the run.
package tree

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/raphi011/primer/internal/cmd"
)

// ErrTreeNotFound indicates tree is not installed or not in PATH
var ErrTreeNotFound = fmt.Errorf("tree not found: please install tree (e.g. apt install tree / brew install tree)")

// CheckTree verifies that the tree command is available in PATH
func CheckTree() error {
	_, err := exec.LookPath("tree")
	if err != nil {
		return ErrTreeNotFound
	}
	return nil
}

// Render returns the verbatim stdout of a depth-limited tree listing run in
// dir. Entries whose name matches any of excludes are omitted; tree takes
// the exclusion patterns as a single |-separated list.
func Render(ctx context.Context, dir string, depth int, excludes []string) ([]byte, error) {
	if err := CheckTree(); err != nil {
		return nil, err
	}

	args := []string{"-L", strconv.Itoa(depth)}
	if len(excludes) > 0 {
		args = append(args, "-I", strings.Join(excludes, "|"))
	}

	out, err := cmd.OutputContext(ctx, dir, "tree", args...)
	if err != nil {
		return nil, fmt.Errorf("tree: %w", err)
	}
	return out, nil
}
