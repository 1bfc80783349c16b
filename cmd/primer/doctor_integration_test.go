//go:build integration

package main

import (
	"strings"
	"testing"

	"github.com/raphi011/primer/internal/git"
	"github.com/raphi011/primer/internal/tree"
)

// TestDoctor tests the doctor command with all tools installed.
//
// Scenario: User runs `primer doctor` with git and tree available
// Expected: All checks pass
func TestDoctor(t *testing.T) {
	if err := git.CheckGit(); err != nil {
		t.Skipf("git not installed: %v", err)
	}
	if err := tree.CheckTree(); err != nil {
		t.Skipf("tree not installed: %v", err)
	}
	t.Setenv("HOME", t.TempDir())

	ctx := testContext(t)
	cmd := newDoctorCmd()

	out, err := executeCommand(ctx, cmd)
	if err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
	if !strings.Contains(out, "All checks passed") {
		t.Errorf("expected all checks to pass, got %q", out)
	}
	if !strings.Contains(out, "Git is available") {
		t.Errorf("expected git check line, got %q", out)
	}
}
