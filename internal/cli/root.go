package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pindex-dev/pindex/pkg/buildinfo"
)

// newRootCmd builds the root pindex command with all subcommands attached.
// The returned command is not yet executed; Execute drives it.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "pindex",
		Short: "pindex resolves pinned Python dependencies against their registry",
		Long: `pindex locates Python dependency lockfiles, parses the pinned packages,
and resolves each one to its registry page and source artifact.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/pindex/config.toml)")

	root.AddCommand(newDepsCmd())
	root.AddCommand(newResolveCmd())
	root.AddCommand(newLockfilesCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the pindex CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (deps, resolve,
// lockfiles, completion), configures logging based on the --verbose flag,
// loads the optional config file, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and the loaded configuration are attached to the context and
// accessible to all commands via loggerFromContext and configFromContext.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
