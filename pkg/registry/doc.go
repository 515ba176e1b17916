// Package registry provides the shared plumbing for package registry clients.
//
// # Overview
//
// This package contains the pieces every registry resolver needs:
//
//   - [Config]: explicit registry configuration (host, URL templates,
//     transport) passed in at construction
//   - [Metadata]: the resolved view of a package on a registry
//   - [Client]: HTTP client that decodes JSON responses and maps transport
//     failures onto the error taxonomy
//   - [ParseURLTemplate] / [RenderURL]: URL template handling
//
// Registry-specific resolution lives in subpackages; see [pypi] for the
// Python Package Index.
//
// # Client Pattern
//
// Resolvers embed [Client] and drive it with URLs rendered from their
// configured templates:
//
//	res, err := pypi.New(pypi.DefaultConfig())
//	meta, err := res.Resolve(ctx, "numpy", "")
//
// The client fetches fresh data on every call. There is no response cache,
// no retry logic, and no rate limiting; one call means at most one request
// per endpoint.
//
// [pypi]: github.com/pindex-dev/pindex/pkg/registry/pypi
package registry
