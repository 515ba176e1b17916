package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pindex-dev/pindex/pkg/extension"
	"github.com/pindex-dev/pindex/pkg/lockfile"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	format string // output format: text, yaml, or json
}

// newResolveCmd creates the resolve command.
func newResolveCmd() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve <package> [version]",
		Short: "Resolve a single package against the registry",
		Long: `Resolve a package to its registry metadata and source artifact.

With a version argument that exact version is looked up. Without one, the
latest published release is selected.

Examples:
  pindex resolve numpy                # Latest release
  pindex resolve numpy 1.18.5         # Exact pinned version
  pindex resolve flask --format yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			version := ""
			if len(args) == 2 {
				version = args[1]
			}
			return runResolve(c.Context(), args[0], version, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, yaml, or json")

	return cmd
}

// runResolve implements the resolve command for a single package.
func runResolve(ctx context.Context, name, version string, opts *resolveOpts) error {
	cfg := configFromContext(ctx)

	format, err := cfg.outputFormat(opts.format)
	if err != nil {
		return err
	}

	ext, err := extension.NewWithConfig(cfg.registryConfig())
	if err != nil {
		return err
	}

	label := name
	if version != "" {
		label = name + " " + version
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %s...", label))
	spinner.Start()
	meta, err := ext.PackageMetadata(ctx, name, version)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Failed to resolve %s", label))
		return err
	}
	spinner.Stop()

	r := newResolution(lockfile.Dependency{Name: name, Version: version}, meta, nil)

	if format != formatText {
		return writeResolution(os.Stdout, format, r)
	}

	printSuccess("Resolved %s", StyleHighlight.Render(name+" "+r.Version))
	printNewline()
	renderResolutionText(r)
	return nil
}
