// Package extension bundles the pindex operations behind a single facade.
//
// The two produced operations are:
//
//   - [Extension.FileDependencies]: enumerate the dependencies declared in
//     the lockfiles nearest to a directory
//   - [Extension.PackageMetadata]: resolve one package name and optional
//     version into registry metadata
//
// Host processes (the CLI, or a plugin shim) construct one Extension and
// call it from as many goroutines as they like; the Extension itself never
// spawns goroutines or batches calls.
package extension

import (
	"context"

	"github.com/pindex-dev/pindex/pkg/lockfile"
	"github.com/pindex-dev/pindex/pkg/registry"
	"github.com/pindex-dev/pindex/pkg/registry/pypi"
)

// Resolver resolves a package name and optional version into registry
// metadata. *pypi.Resolver is the production implementation.
type Resolver interface {
	Resolve(ctx context.Context, name, version string) ([]registry.Metadata, error)
}

// Extension is the produced interface of pindex: dependency file discovery
// plus registry resolution for Python packages.
type Extension struct {
	resolver Resolver
	cfg      registry.Config
}

// New creates an Extension with the default pypi.org configuration.
func New() (*Extension, error) {
	return NewWithConfig(pypi.DefaultConfig())
}

// NewWithConfig creates an Extension resolving against the given registry
// configuration.
func NewWithConfig(cfg registry.Config) (*Extension, error) {
	res, err := pypi.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Extension{resolver: res, cfg: cfg}, nil
}

// Name returns the ecosystem this extension handles.
func (e *Extension) Name() string { return "python" }

// Registries returns the host names of the registries packages resolve
// against.
func (e *Extension) Registries() []string { return []string{e.cfg.Host} }

// FileDependencies locates the dependency files nearest to dir and parses
// each into its declared dependencies.
//
// dir must be absolute. A tree without any recognized dependency file
// yields (nil, nil); see [lockfile.Locate]. A file that fails to parse
// fails the whole call.
func (e *Extension) FileDependencies(dir string) ([]lockfile.FileDependencies, error) {
	files, err := lockfile.Locate(dir)
	if err != nil {
		return nil, err
	}
	if files == nil {
		return nil, nil
	}

	result := make([]lockfile.FileDependencies, 0, len(files))
	for _, f := range files {
		deps, err := f.Parse()
		if err != nil {
			return nil, err
		}
		result = append(result, lockfile.FileDependencies{File: f, Dependencies: deps})
	}
	return result, nil
}

// PackageMetadata resolves a package name and optional version into
// registry metadata. An empty version selects the latest published
// version. See [pypi.Resolver.Resolve] for the error taxonomy.
func (e *Extension) PackageMetadata(ctx context.Context, name, version string) ([]registry.Metadata, error) {
	return e.resolver.Resolve(ctx, name, version)
}
