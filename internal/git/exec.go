package git

import (
	"context"

	"github.com/raphi011/primer/internal/cmd"
)

// runGit executes a git command in dir with context support and verbose
// logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, dir, "git", args...)
}

// outputGit executes a git command in dir with context support and verbose
// logging, returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, dir, "git", args...)
}
