package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/primer/internal/config"
	"github.com/raphi011/primer/internal/git"
	"github.com/raphi011/primer/internal/log"
	"github.com/raphi011/primer/internal/output"
	"github.com/raphi011/primer/internal/primer"
	"github.com/raphi011/primer/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg *config.Config
)

// rootCmd represents the base command. Running it without a subcommand
// generates a primer for the given (or current) project directory.
var rootCmd = &cobra.Command{
	Use:   "primer [project-dir]",
	Short: "Generate a project primer file",
	Long: `primer assembles a timestamped plain-text snapshot of a project:
the working-tree status, recent commit history, a directory tree and the
verbatim contents of the project's key files.

The resulting primer_<timestamp>.txt file is meant to be pasted into a
conversation or review as shared context.`,
	Args:                       cobra.MaximumNArgs(1),
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The logger must be built here, after flag parsing, so -v/-q
		// actually take effect.
		logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))

		// Skip git check for commands that don't capture anything
		switch cmd.Name() {
		case "completion", "__complete", "help", "doctor", "init", "show", "config":
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Check git is available
		return git.CheckGit()
	},
	RunE: runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The logger is attached in PersistentPreRunE once flags are parsed.

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'primer -h' for help")
		os.Exit(1)
	}
}

var (
	outputDir string
	copyFlag  bool
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Generation flags
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory the primer file is written to (default: current directory)")
	rootCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the primer contents to the clipboard")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}

	dir, err := primer.ResolveDir(arg)
	if err != nil {
		return err
	}

	outDir := outputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	l.Debug("generating primer", "dir", dir, "output_dir", outDir)

	path, sections, err := primer.Generate(ctx, primer.Options{
		Dir:          dir,
		OutputDir:    outDir,
		KeyFiles:     primer.KeyFiles(cfg.ExtraFiles),
		TreeDepth:    cfg.Tree.Depth,
		TreeExcludes: cfg.Tree.Exclude,
	})
	if err != nil {
		return err
	}

	if copyFlag {
		if err := copyToClipboard(path); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		} else {
			l.Println("Copied primer contents to clipboard")
		}
	}

	out.Printf("Primer file created: %s\n", path)

	if l.IsVerbose() {
		printSummary(l.Writer(), sections)
	}

	return nil
}

func copyToClipboard(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(string(data))
}

// printSummary renders the per-section byte counts as a table on w.
func printSummary(w io.Writer, sections []primer.Section) {
	rows := make([][]string, 0, len(sections))
	total := 0
	for _, s := range sections {
		rows = append(rows, []string{s.Name, strconv.Itoa(s.Bytes)})
		total = total + s.Bytes
	}
	rows = append(rows, []string{styles.MutedStyle.Render("total"), strconv.Itoa(total)})

	sw := styledWriter(w)
	fmt.Fprintln(sw)
	fmt.Fprint(sw, styles.RenderTable([]string{"SECTION", "BYTES"}, rows))
}

// styledWriter wraps w so styled output degrades to the terminal's actual
// capabilities, and to plain text when w is not a terminal.
func styledWriter(w io.Writer) io.Writer {
	cw := colorprofile.NewWriter(w, os.Environ())
	if f, ok := w.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			cw.Profile = colorprofile.NoTTY
		}
	} else {
		cw.Profile = colorprofile.NoTTY
	}
	return cw
}
