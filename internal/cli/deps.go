package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pindex-dev/pindex/pkg/errors"
	"github.com/pindex-dev/pindex/pkg/extension"
	"github.com/pindex-dev/pindex/pkg/lockfile"
)

// depsOpts holds the command-line flags for the deps command.
type depsOpts struct {
	all         bool   // resolve every located lockfile without prompting
	keepGoing   bool   // exit 0 even when some dependencies fail to resolve
	concurrency int    // maximum parallel registry requests
	format      string // output format: text, yaml, or json
	output      string // report file path (stdout if empty)
}

// newDepsCmd creates the deps command.
//
// Default options:
//   - concurrency: 8 parallel registry requests
//   - format: from the config file, falling back to text
func newDepsCmd() *cobra.Command {
	opts := depsOpts{concurrency: 8}

	cmd := &cobra.Command{
		Use:   "deps [dir]",
		Short: "Locate lockfiles and resolve every pinned dependency",
		Long: `Locate dependency lockfiles and resolve all pinned packages.

The search starts at the given directory (default: the current directory)
and walks toward the filesystem root, stopping at the first directory that
contains recognized lockfiles. Every pinned dependency is then resolved
against the package registry.

Examples:
  pindex deps                      # Search from the current directory
  pindex deps ~/src/service        # Search from a specific directory
  pindex deps --all --format yaml  # All lockfiles, YAML output`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runDeps(c.Context(), dir, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "resolve all located lockfiles without prompting")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "exit successfully even if some dependencies fail")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", opts.concurrency, "maximum parallel registry requests")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, yaml, or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to a file (requires yaml or json format)")

	return cmd
}

// runDeps implements the deps command: locate, pick, parse, resolve, render.
func runDeps(ctx context.Context, dir string, opts *depsOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	format, err := cfg.outputFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.output != "" && format == formatText {
		return errors.New(errors.ErrCodeInvalidInput, "--output requires --format yaml or json")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	logger.Debugf("Searching for lockfiles from %s", abs)

	files, err := lockfile.Locate(abs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		printDetail("No lockfiles found from %s upward", abs)
		printNextStep("List recognized formats", "pindex lockfiles")
		return nil
	}

	files, err = selectFiles(files, opts.all)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		printDetail("No selection made")
		return nil
	}

	var fileDeps []lockfile.FileDependencies
	total := 0
	for _, f := range files {
		deps, err := f.Parse()
		if err != nil {
			return err
		}
		fileDeps = append(fileDeps, lockfile.FileDependencies{File: f, Dependencies: deps})
		total += len(deps)
	}

	ext, err := extension.NewWithConfig(cfg.registryConfig())
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	reports, failed := resolveAll(ctx, ext, fileDeps, opts.concurrency)
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d of %d dependencies", total-failed, total))

	switch format {
	case formatYAML, formatJSON:
		out, err := openOutput(opts.output)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := writeReports(out, format, reports); err != nil {
			return err
		}
		if opts.output != "" {
			logger.Infof("Wrote report to %s", opts.output)
		}
	default:
		renderDepsText(reports)
		printSummary(total, len(fileDeps), failed)
	}

	if failed > 0 && !opts.keepGoing {
		return fmt.Errorf("failed to resolve %d of %d dependencies", failed, total)
	}
	return nil
}

// selectFiles decides which located lockfiles to resolve. Multiple files
// trigger the interactive picker on a terminal unless --all was given;
// non-interactive runs resolve everything.
func selectFiles(files []lockfile.File, all bool) ([]lockfile.File, error) {
	if len(files) == 1 || all || !isatty.IsTerminal(os.Stdout.Fd()) {
		return files, nil
	}

	printInfo("Found %d lockfiles", len(files))
	printNewline()

	selected, err := runLockfilePicker(files)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, nil
	}
	return []lockfile.File{*selected}, nil
}

// resolveAll fans out registry lookups across all dependencies with a
// bounded worker count. Failures are captured per row and never abort the
// remaining lookups; the second return value is the failed row count.
func resolveAll(ctx context.Context, ext *extension.Extension, fileDeps []lockfile.FileDependencies, concurrency int) ([]lockfileReport, int) {
	if concurrency < 1 {
		concurrency = 1
	}

	total := 0
	reports := make([]lockfileReport, len(fileDeps))
	for i, fd := range fileDeps {
		reports[i] = lockfileReport{
			Lockfile:     fd.File.Path,
			Dependencies: make([]resolution, len(fd.Dependencies)),
		}
		total += len(fd.Dependencies)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resolving 0/%d dependencies...", total))
	spinner.Start()

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, fd := range fileDeps {
		for j, dep := range fd.Dependencies {
			g.Go(func() error {
				meta, err := ext.PackageMetadata(gctx, dep.Name, dep.Version)
				reports[i].Dependencies[j] = newResolution(dep, meta, err)
				spinner.UpdateMessage(fmt.Sprintf("Resolving %d/%d dependencies...", done.Add(1), total))
				// Row-level failures surface in the report, not here.
				return nil
			})
		}
	}
	_ = g.Wait()
	spinner.Stop()

	failed := 0
	for _, rep := range reports {
		for _, r := range rep.Dependencies {
			if r.Error != "" {
				failed++
			}
		}
	}
	return reports, failed
}
