package styles

import (
	"strings"
	"testing"
)

func TestCheckPrefixes(t *testing.T) {
	t.Parallel()

	if got := OK("git is available"); !strings.Contains(got, "git is available") || !strings.Contains(got, OKSymbol) {
		t.Errorf("OK output = %q", got)
	}
	if got := Fail("tree not found"); !strings.Contains(got, FailSymbol) {
		t.Errorf("Fail output = %q", got)
	}
	if got := Warning("config missing"); !strings.Contains(got, WarnSymbol) {
		t.Errorf("Warning output = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("empty rows renders nothing", func(t *testing.T) {
		t.Parallel()
		if got := RenderTable([]string{"SECTION", "BYTES"}, nil); got != "" {
			t.Errorf("RenderTable with no rows = %q, want empty", got)
		}
	})

	t.Run("contains headers and cells", func(t *testing.T) {
		t.Parallel()
		got := RenderTable(
			[]string{"SECTION", "BYTES"},
			[][]string{{"git status", "120"}, {"directory tree", "450"}},
		)
		for _, want := range []string{"SECTION", "BYTES", "git status", "120", "directory tree", "450"} {
			if !strings.Contains(got, want) {
				t.Errorf("RenderTable output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("ends with a newline", func(t *testing.T) {
		t.Parallel()
		got := RenderTable([]string{"A"}, [][]string{{"x"}})
		if !strings.HasSuffix(got, "\n") {
			t.Errorf("RenderTable output should end with newline, got %q", got)
		}
	})
}
