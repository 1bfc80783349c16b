package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/raphi011/primer/internal/config"
	"github.com/raphi011/primer/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		Long: `Manage primer configuration.

Config location: ~/.config/primer/config.toml`,
		Example: `  primer config init   # Create default config
  primer config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  primer config init      # Create config at ~/.config/primer/config.toml
  primer config init -f   # Overwrite existing config
  primer config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Printf("%s", config.DefaultTemplate())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Values come from ~/.config/primer/config.toml, falling back to the
built-in defaults for anything unset.`,
		Example: `  primer config show          # Show effective config
  primer config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			effCfg, err := config.Load()
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(effCfg)
			}

			out.Printf("Config: ~/.config/primer/config.toml\n\n")

			outDir := effCfg.OutputDir
			if outDir == "" {
				outDir = "(current directory)"
			}
			out.Printf("output_dir: %s\n", outDir)
			out.Printf("extra_files: %v\n", effCfg.ExtraFiles)
			out.Printf("tree.depth: %d\n", effCfg.Tree.Depth)
			out.Printf("tree.exclude: %v\n", effCfg.Tree.Exclude)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
