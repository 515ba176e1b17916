// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about package resolution and registry HTTP calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResolveHooks(&myResolveHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Resolve().OnResolveStart(ctx, pkg, version)
//	// ... resolve ...
//	observability.Resolve().OnResolveComplete(ctx, pkg, resolved, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives events from package resolution.
type ResolveHooks interface {
	// OnResolveStart records the start of a package resolution.
	// version is empty when the latest release is being selected.
	OnResolveStart(ctx context.Context, pkg, version string)

	// OnResolveComplete records the outcome of a package resolution.
	// resolved is the version that was selected, empty on failure.
	OnResolveComplete(ctx context.Context, pkg, resolved string, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from registry HTTP operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolveStart(context.Context, string, string) {}
func (NoopResolveHooks) OnResolveComplete(context.Context, string, string, time.Duration, error) {
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resolveHooks ResolveHooks = NoopResolveHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetResolveHooks registers custom resolve hooks.
// This should be called once at application startup before any resolution.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resolveHooks = NoopResolveHooks{}
	httpHooks = NoopHTTPHooks{}
}
