// Package traverse: the Signal protocol, callback type, and functional
// options shared by DFS and BFS.
package traverse

import (
	"context"

	"github.com/katalmir/dagwalk/core"
)

// Signal is a callback's verdict on how the traversal should proceed.
type Signal int

const (
	// Continue proceeds with the traversal normally.
	Continue Signal = iota

	// Stop ends the current node's callback pair: its descendants are not
	// explored and its exit hook does not fire. Siblings and the rest of
	// the frontier are unaffected. Equivalent to a local early return.
	Stop

	// Abort terminates the entire traversal immediately, from any depth.
	// Visited-flag cleanup still runs; the traversal returns a nil error.
	Abort
)

// String returns the signal's name for diagnostics.
func (s Signal) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	case Abort:
		return "Abort"
	default:
		return "Signal(?)"
	}
}

// VisitFunc is invoked per node with the caller's opaque environment value.
// The engine checks the returned Signal immediately after each invocation.
type VisitFunc func(n *core.Node, env any) Signal

// Option configures optional behavior of DFS and BFS.
// Use with DFS(start, onEnter, opts...) or BFS(start, onEnter, opts...).
type Option func(*Options)

// Options holds configurable parameters shared by both traversal orders.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// A canceled traversal resets visited flags and returns ctx.Err().
	Ctx context.Context

	// OnExit, if non-nil, fires after a node's subtree (DFS) or neighbor
	// expansion (BFS) is fully processed. Its Signal is honored like any
	// other: Stop ends the pair (a no-op at that point), Abort terminates
	// the traversal.
	OnExit VisitFunc

	// Env is an opaque caller value passed unchanged to every callback,
	// letting callers accumulate results without shared globals.
	Env any
}

// DefaultOptions returns Options with a background context, no exit hook,
// and a nil environment.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnExit: nil,
		Env:    nil,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExit returns an Option that installs fn as the exit hook.
func WithOnExit(fn VisitFunc) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithEnv returns an Option that sets the opaque environment value
// threaded through to every callback.
func WithEnv(env any) Option {
	return func(o *Options) {
		o.Env = env
	}
}
