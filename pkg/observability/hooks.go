// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module never log. Instead the HTTP server and CLI report
// measurement and request events through the hooks registered here, so a
// binary can attach whatever backend it likes without the core packages
// depending on it.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetMeasureHooks(&myMeasureHooks{})
//	    // ... run application
//	}
//
// Callers emit events around the work they do:
//
//	start := time.Now()
//	rects, err := scene.Extract(doc.Nodes, doc.Origin)
//	observability.Measure().OnExtract(ctx, len(rects), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Measure Hooks
// =============================================================================

// MeasureHooks receives events from rectangle extraction and composition.
type MeasureHooks interface {
	// OnExtract records a node tree flattened into rectangles.
	OnExtract(ctx context.Context, rectCount int, duration time.Duration, err error)

	// OnCompose records one selected/target measurement. relation is the
	// spatial case that produced the marks.
	OnCompose(ctx context.Context, relation string, labels, guides int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path, requestID string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path, requestID string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopMeasureHooks is a no-op implementation of MeasureHooks.
type NoopMeasureHooks struct{}

func (NoopMeasureHooks) OnExtract(context.Context, int, time.Duration, error) {}
func (NoopMeasureHooks) OnCompose(context.Context, string, int, int, time.Duration, error) {
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	measureHooks MeasureHooks = NoopMeasureHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetMeasureHooks registers custom measure hooks.
// This should be called once at application startup.
func SetMeasureHooks(h MeasureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		measureHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Measure returns the registered measure hooks.
func Measure() MeasureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return measureHooks
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
	measureHooks = NoopMeasureHooks{}
	httpHooks = NoopHTTPHooks{}
}
