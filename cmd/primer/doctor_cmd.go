package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/primer/internal/config"
	"github.com/raphi011/primer/internal/git"
	"github.com/raphi011/primer/internal/output"
	"github.com/raphi011/primer/internal/tree"
	"github.com/raphi011/primer/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose setup issues",
		Args:  cobra.NoArgs,
		Long: `Diagnose setup issues.

Checks:
- External tools installed (git, tree)
- Config file parses (if present)

Examples:
  primer doctor    # Check for issues`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			w := styledWriter(out.Writer())
			var issues int

			fmt.Fprintln(w, "Running diagnostics...")
			fmt.Fprintln(w)

			// Check git is available
			if err := git.CheckGit(); err != nil {
				fmt.Fprintln(w, styles.Fail(fmt.Sprintf("Git not found: %v", err)))
				issues++
			} else {
				fmt.Fprintln(w, styles.OK("Git is available"))
			}

			// Check tree is available
			if err := tree.CheckTree(); err != nil {
				fmt.Fprintln(w, styles.Fail(fmt.Sprintf("tree not found: %v", err)))
				issues++
			} else {
				fmt.Fprintln(w, styles.OK("tree is available"))
			}

			// The working directory not being a repo is only a warning;
			// the project directory can be passed as an argument.
			if wd, err := os.Getwd(); err == nil {
				if git.IsInsideRepoPath(ctx, wd) {
					fmt.Fprintln(w, styles.OK("Current directory is under version control"))
				} else {
					fmt.Fprintln(w, styles.Warning("Current directory is not a git repository"))
				}
			}

			// Check config parses; an invalid config only degrades to
			// defaults, so it's a warning rather than an issue.
			if _, err := config.Load(); err != nil {
				fmt.Fprintln(w, styles.Warning(fmt.Sprintf("Config invalid, defaults in use: %v", err)))
			} else {
				fmt.Fprintln(w, styles.OK("Config is valid"))
			}

			fmt.Fprintln(w)
			if issues > 0 {
				fmt.Fprintf(w, "Found %d issue(s)\n", issues)
				return fmt.Errorf("%d issues found", issues)
			}

			fmt.Fprintln(w, "All checks passed")
			return nil
		},
	}

	return cmd
}
