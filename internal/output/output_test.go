package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	t.Run("printf", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := New(&buf)
		p.Printf("created %s\n", "primer_20250101_120000.txt")
		if got := buf.String(); got != "created primer_20250101_120000.txt\n" {
			t.Errorf("Printf output = %q", got)
		}
	})

	t.Run("println", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := New(&buf)
		p.Println("hello")
		if got := buf.String(); got != "hello\n" {
			t.Errorf("Println output = %q, want %q", got, "hello\n")
		}
	})
}

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		p.Printf("x")
		if buf.String() != "x" {
			t.Error("FromContext printer did not write to the stored writer")
		}
	})

	t.Run("fallback stdout printer", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil for empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("fallback printer should write to os.Stdout")
		}
	})
}
