// Package pkg provides the core libraries for pindex dependency resolution.
//
// # Overview
//
// pindex locates pinned Python dependencies on disk and resolves them against
// the PyPI index. The pkg directory is organized into five main areas:
//
//  1. [lockfile] - Dependency file location and lockfile parsing
//  2. [registry] - Registry transport, configuration, and URL templating
//  3. [registry/pypi] - The PyPI resolver (version selection, artifact lookup)
//  4. [extension] - The embedding facade combining the areas above
//  5. [errors] - Coded errors shared across library and CLI
//
// # Architecture
//
// The typical data flow through pindex:
//
//	Project directory
//	         ↓
//	    [lockfile] package (locate + parse pinned dependencies)
//	         ↓
//	    [registry/pypi] package (select version, find source artifact)
//	         ↓
//	    Registry metadata (page URL, artifact URL, resolved version)
//
// # Quick Start
//
// Locate a project's lockfiles and resolve one dependency:
//
//	import (
//	    "context"
//	    "github.com/pindex-dev/pindex/pkg/extension"
//	)
//
//	ext, _ := extension.New()
//
//	// 1. Locate and parse the nearest lockfiles
//	fileDeps, _ := ext.FileDependencies("/path/to/project")
//
//	// 2. Resolve a pinned package
//	meta, _ := ext.PackageMetadata(context.Background(), "numpy", "1.18.5")
//	fmt.Println(meta[0].ArtifactURL)
//
// # Main Packages
//
// [lockfile] - Walks from a directory toward the filesystem root, stops at
// the first level containing recognized dependency files, and parses the
// pinned packages out of them. Pipfile.lock is the supported format.
//
// [registry] - Shared HTTP client (no caching, no retries), registry
// configuration, and URL template rendering with validation.
//
// [registry/pypi] - Resolution against a PyPI-compatible JSON API: version
// selection over published releases, registry page URL construction, and
// source distribution lookup.
//
// [extension] - Stable facade for host applications embedding pindex.
//
// [errors] - Coded errors ([errors.Error] with machine-readable codes) used
// across all packages, plus input validation helpers.
//
// [observability] - Optional hooks for HTTP and resolution events, no-op by
// default.
//
// [io] - Report serialization (JSON, YAML) for files and pipes.
//
// [buildinfo] - ldflags-injected version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/lockfile/...    # Specific package
//
// [lockfile]: https://pkg.go.dev/github.com/pindex-dev/pindex/pkg/lockfile
// [registry]: https://pkg.go.dev/github.com/pindex-dev/pindex/pkg/registry
// [registry/pypi]: https://pkg.go.dev/github.com/pindex-dev/pindex/pkg/registry/pypi
// [extension]: https://pkg.go.dev/github.com/pindex-dev/pindex/pkg/extension
// [errors]: https://pkg.go.dev/github.com/pindex-dev/pindex/pkg/errors
// [observability]: https://pkg.go.dev/github.com/pindex-dev/pindex/pkg/observability
// [io]: https://pkg.go.dev/github.com/pindex-dev/pindex/pkg/io
// [buildinfo]: https://pkg.go.dev/github.com/pindex-dev/pindex/pkg/buildinfo
package pkg
