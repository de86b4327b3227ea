// Package observability provides hooks for instrumenting the net pipeline.
//
// Consumers register hooks at startup to receive events about layout
// generation and page rendering without the pipeline depending on any
// metrics or tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, width, height, depth)
//	// ... generate ...
//	observability.Pipeline().OnLayoutComplete(ctx, segments, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the net pipeline.
type PipelineHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, width, height, depth float64)
	OnLayoutComplete(ctx context.Context, segments int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, format, path string)
	OnRenderComplete(ctx context.Context, format, path string, size int64, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, float64, float64, float64) {}

func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {}

func (NoopPipelineHooks) OnRenderStart(context.Context, string, string) {}

func (NoopPipelineHooks) OnRenderComplete(context.Context, string, string, int64, time.Duration, error) {
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
