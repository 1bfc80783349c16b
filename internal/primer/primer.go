package primer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/raphi011/primer/internal/git"
	"github.com/raphi011/primer/internal/log"
	"github.com/raphi011/primer/internal/tree"
)

// Title is the fixed first line of every primer.
const Title = "--- VORONOI VIVARIUM PRIMER ---"

const (
	filePrefix      = "primer_"
	fileExt         = ".txt"
	timestampLayout = "20060102_150405"

	// Number of commits in the history section.
	logEntryCount = 5
)

// Options controls a single primer generation run.
type Options struct {
	// Dir is the absolute, symlink-resolved project directory.
	// Use ResolveDir to produce it from a CLI argument.
	Dir string

	// Now is the generation timestamp; zero means time.Now().
	Now time.Time

	// OutputDir is where the primer file is created; empty means the
	// current working directory.
	OutputDir string

	// KeyFiles overrides the embedded file list; nil means DefaultKeyFiles.
	KeyFiles []string

	// TreeDepth is the directory tree depth limit; zero means 3.
	TreeDepth int

	// TreeExcludes are entry names omitted from the tree; nil means
	// ["target"].
	TreeExcludes []string
}

// Section reports how many bytes a primer section contributed, for the
// verbose summary.
type Section struct {
	Name  string
	Bytes int
}

// Filename returns the primer file name for the given timestamp:
// a fixed prefix, the date-time at second precision, and a fixed extension.
func Filename(now time.Time) string {
	return filePrefix + now.Format(timestampLayout) + fileExt
}

// ResolveDir canonicalizes a project directory argument to an absolute,
// symlink-resolved path and verifies it is a directory.
func ResolveDir(arg string) (string, error) {
	if arg == "" {
		arg = "."
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", arg, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", arg, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", arg, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", resolved)
	}
	return resolved, nil
}

func (o Options) withDefaults() Options {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.KeyFiles == nil {
		o.KeyFiles = DefaultKeyFiles
	}
	if o.TreeDepth == 0 {
		o.TreeDepth = 3
	}
	if o.TreeExcludes == nil {
		o.TreeExcludes = []string{"target"}
	}
	return o
}

// Generate creates the primer file for opts and returns its path and the
// per-section byte counts. The first failing step aborts the run; a partial
// file is left on disk in that case.
func Generate(ctx context.Context, opts Options) (string, []Section, error) {
	if opts.Dir == "" {
		return "", nil, errors.New("project directory not resolved")
	}
	opts = opts.withDefaults()

	path := filepath.Join(opts.OutputDir, Filename(opts.Now))
	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("create %s: %w", path, err)
	}

	pw := newPrimerWriter(f)
	err = writeSections(ctx, pw, opts)

	// Flush and close regardless of the outcome; a failed run deliberately
	// leaves the partial file behind.
	if flushErr := pw.flush(); err == nil {
		err = flushErr
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	return path, pw.sections, err
}

func writeSections(ctx context.Context, pw *primerWriter, opts Options) error {
	l := log.FromContext(ctx)

	pw.printf("%s\n", Title)
	pw.printf("Generated on: %s\n", opts.Now.Format(time.UnixDate))
	pw.printf("Project Directory: %s\n\n", opts.Dir)
	pw.endSection("header")

	l.Debug("capturing section", "section", "git status", "dir", opts.Dir)
	status, err := git.Status(ctx, opts.Dir)
	if err != nil {
		return err
	}
	pw.delimited("GIT STATUS", status)
	pw.endSection("git status")

	l.Debug("capturing section", "section", "git log")
	history, err := git.RecentLog(ctx, opts.Dir, logEntryCount)
	if err != nil {
		return err
	}
	pw.delimited("GIT LOG", history)
	pw.endSection("git log")

	l.Debug("capturing section", "section", "directory tree", "depth", opts.TreeDepth)
	listing, err := tree.Render(ctx, opts.Dir, opts.TreeDepth, opts.TreeExcludes)
	if err != nil {
		return err
	}
	pw.delimited("DIRECTORY TREE", listing)
	pw.endSection("directory tree")

	for _, rel := range opts.KeyFiles {
		if err := writeKeyFile(pw, opts.Dir, rel); err != nil {
			return err
		}
		pw.endSection(rel)
	}

	return pw.err
}

// writeKeyFile embeds one key file, or its not-found marker. Only a regular
// file counts as present; a directory or special file at the path is treated
// as absent. A present but unreadable file is fatal.
func writeKeyFile(pw *primerWriter, dir, rel string) error {
	full := filepath.Join(dir, rel)

	info, err := os.Stat(full)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", rel, err)
	}
	if err != nil || !info.Mode().IsRegular() {
		pw.printf("--- WARNING: FILE NOT FOUND: %s ---\n\n", rel)
		return pw.err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("read %s: %w", rel, err)
	}

	pw.printf("--- START OF FILE: %s ---\n", rel)
	pw.write(data)
	pw.printf("--- END OF FILE: %s ---\n\n", rel)
	return pw.err
}

// primerWriter frames sections, tracks per-section byte counts and carries
// the first write error so callers don't check every write.
type primerWriter struct {
	w        *bufio.Writer
	err      error
	sections []Section
	n        int
}

func newPrimerWriter(w io.Writer) *primerWriter {
	return &primerWriter{w: bufio.NewWriter(w)}
}

func (p *primerWriter) write(b []byte) {
	if p.err != nil {
		return
	}
	n, err := p.w.Write(b)
	p.n += n
	p.err = err
	// Delimiter lines must sit on their own line even when the embedded
	// content lacks a trailing newline.
	if err == nil && len(b) > 0 && b[len(b)-1] != '\n' {
		p.printf("\n")
	}
}

func (p *primerWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	n, err := fmt.Fprintf(p.w, format, args...)
	p.n += n
	p.err = err
}

// delimited writes one captured-output section with its start/end markers.
func (p *primerWriter) delimited(name string, content []byte) {
	p.printf("--- START OF %s ---\n", name)
	p.write(content)
	p.printf("--- END OF %s ---\n\n", name)
}

func (p *primerWriter) endSection(name string) {
	p.sections = append(p.sections, Section{Name: name, Bytes: p.n})
	p.n = 0
}

func (p *primerWriter) flush() error {
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}
