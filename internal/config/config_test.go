package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	if cfg.Tree.Depth != 3 {
		t.Errorf("Default tree depth = %d, want 3", cfg.Tree.Depth)
	}
	if len(cfg.Tree.Exclude) != 1 || cfg.Tree.Exclude[0] != "target" {
		t.Errorf("Default tree exclude = %v, want [target]", cfg.Tree.Exclude)
	}
	if cfg.OutputDir != "" {
		t.Errorf("Default output dir = %q, want empty", cfg.OutputDir)
	}
	if len(cfg.ExtraFiles) != 0 {
		t.Errorf("Default extra files = %v, want none", cfg.ExtraFiles)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFrom missing file = %v, want nil", err)
		}
		if cfg.Tree.Depth != DefaultTreeDepth {
			t.Errorf("tree depth = %d, want default %d", cfg.Tree.Depth, DefaultTreeDepth)
		}
	})

	t.Run("full config", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `
output_dir = "/var/primers"
extra_files = ["docs/DESIGN.md", "Cargo.lock"]

[tree]
depth = 5
exclude = ["target", "node_modules"]
`)
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom = %v, want nil", err)
		}
		if cfg.OutputDir != "/var/primers" {
			t.Errorf("output dir = %q, want /var/primers", cfg.OutputDir)
		}
		if len(cfg.ExtraFiles) != 2 || cfg.ExtraFiles[0] != "docs/DESIGN.md" {
			t.Errorf("extra files = %v", cfg.ExtraFiles)
		}
		if cfg.Tree.Depth != 5 {
			t.Errorf("tree depth = %d, want 5", cfg.Tree.Depth)
		}
		if len(cfg.Tree.Exclude) != 2 {
			t.Errorf("tree exclude = %v, want two entries", cfg.Tree.Exclude)
		}
	})

	t.Run("unset tree settings use defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `extra_files = ["README.txt"]`)
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom = %v, want nil", err)
		}
		if cfg.Tree.Depth != DefaultTreeDepth {
			t.Errorf("tree depth = %d, want default %d", cfg.Tree.Depth, DefaultTreeDepth)
		}
		if len(cfg.Tree.Exclude) != 1 || cfg.Tree.Exclude[0] != "target" {
			t.Errorf("tree exclude = %v, want [target]", cfg.Tree.Exclude)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `output_dir = [not toml`)
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom invalid toml = nil, want error")
		}
	})

	t.Run("relative output_dir rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `output_dir = "./primers"`)
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom relative output_dir = nil, want error")
		}
	})

	t.Run("tilde output_dir expanded", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `output_dir = "~/primers"`)
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom = %v, want nil", err)
		}
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home dir: %v", err)
		}
		want := filepath.Join(home, "primers")
		if cfg.OutputDir != want {
			t.Errorf("output dir = %q, want %q", cfg.OutputDir, want)
		}
	})

	t.Run("absolute extra_files rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `extra_files = ["/etc/passwd"]`)
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom absolute extra_files = nil, want error")
		}
	})

	t.Run("negative tree depth rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "[tree]\ndepth = -1\n")
		_, err := LoadFrom(path)
		if err == nil {
			t.Fatal("LoadFrom negative depth = nil, want error")
		}
		if !strings.Contains(err.Error(), "must not be negative") {
			t.Errorf("LoadFrom error = %q, want mention of negative depth", err)
		}
	})

	t.Run("zero tree depth treated as unset", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "[tree]\ndepth = 0\n")
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom zero depth = %v, want nil", err)
		}
		if cfg.Tree.Depth != DefaultTreeDepth {
			t.Errorf("tree depth = %d, want default %d", cfg.Tree.Depth, DefaultTreeDepth)
		}
	})
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty", "", false},
		{"absolute", "/home/user/primers", false},
		{"tilde", "~/primers", false},
		{"relative dot", ".", true},
		{"relative name", "primers", true},
		{"relative parent", "../primers", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePath(tt.path, "output_dir")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, defaultConfig)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("default config template does not parse: %v", err)
	}
	// The template's uncommented values must match the compiled-in defaults.
	if cfg.Tree.Depth != DefaultTreeDepth {
		t.Errorf("template tree depth = %d, want %d", cfg.Tree.Depth, DefaultTreeDepth)
	}
	if !strings.Contains(defaultConfig, "output_dir") {
		t.Error("template should document output_dir")
	}
}
