// Package cli defines the reap command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/reap-cli/reap/internal/version"
	"github.com/reap-cli/reap/pkg/config"
	"github.com/reap-cli/reap/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "reap",
		Short: "Pattern-driven file and directory deletion",
		Long: `reap enumerates filesystem entries matching glob-style patterns under a
working directory, filters out protected paths, and deletes the rest.

Safety modes: --dry-run simulates without touching anything, --preview
shows the full list and asks once before the batch, --interactive asks
per entry, and --force skips all prompts.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, opts.format)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.depthSet = cmd.Flags().Changed("depth")
			opts.formatSet = cmd.Flags().Changed("format")
			return runReap(opts)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "pretty", "Output format: pretty or json")

	rootCmd.Flags().StringVarP(&opts.files, "files", "f", "", "Glob pattern matched against file names")
	rootCmd.Flags().StringVarP(&opts.dirs, "dirs", "d", "", "Glob pattern matched against directory names")
	rootCmd.Flags().StringVarP(&opts.all, "all", "a", "", "Glob pattern matched against both files and directories")
	rootCmd.Flags().StringArrayVarP(&opts.exclude, "exclude", "e", nil, "Protect paths containing this substring or with this exact basename (repeatable)")
	rootCmd.Flags().IntVar(&opts.depth, "depth", 0, "Maximum traversal depth; entries directly under the root are depth 1")
	rootCmd.Flags().StringVar(&opts.root, "root", "", "Directory to search from (default: current directory)")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be deleted without deleting anything")
	rootCmd.Flags().BoolVar(&opts.force, "force", false, "Delete without asking")
	rootCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Ask before each deletion")
	rootCmd.Flags().BoolVarP(&opts.preview, "preview", "p", false, "Show the full list and ask once before the batch")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("reap version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage reap configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter .reap.toml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := config.WriteStarterConfig(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	})

	return configCmd
}
