package git

import (
	"context"
	"fmt"
	"strconv"
)

// Status returns the verbatim stdout of `git status` run in dir.
// Fails if dir is not under version control.
func Status(ctx context.Context, dir string) ([]byte, error) {
	out, err := outputGit(ctx, dir, "status")
	if err != nil {
		return nil, fmt.Errorf("git status: %w", err)
	}
	return out, nil
}

// RecentLog returns the verbatim stdout of a bounded one-line-per-commit
// history with ancestry graph markers, run in dir.
func RecentLog(ctx context.Context, dir string, n int) ([]byte, error) {
	out, err := outputGit(ctx, dir, "log", "--oneline", "--graph", "-n", strconv.Itoa(n))
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}
	return out, nil
}
