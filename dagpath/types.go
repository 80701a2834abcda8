// Package dagpath: mode constants, sentinel errors, and options.
package dagpath

import (
	"context"
	"errors"
)

// Mode selects which path extreme a query computes.
type Mode int

const (
	// Shortest minimizes the sum of edge weights along a path.
	Shortest Mode = iota

	// Longest maximizes the sum of edge weights along a path.
	Longest
)

// String returns the mode's name for diagnostics.
func (m Mode) String() string {
	switch m {
	case Shortest:
		return "Shortest"
	case Longest:
		return "Longest"
	default:
		return "Mode(?)"
	}
}

// Sentinel errors for path queries.
var (
	// ErrNilNode is returned when a nil start or target node is supplied.
	// Unlike traversal, a path query demands a result, so an absent node
	// is a query error rather than a no-op.
	ErrNilNode = errors.New("dagpath: nil node")

	// ErrUnknownMode is returned for a Mode other than Shortest or Longest.
	ErrUnknownMode = errors.New("dagpath: unknown mode")

	// ErrNotReached is returned by Between when no path leads from the
	// source to the target. Recoverable: distinguish it from real failures
	// with errors.Is.
	ErrNotReached = errors.New("dagpath: target not reached from source")
)

// Option configures optional behavior for Extremes and Between.
type Option func(*options)

// options holds query settings, currently only cancellation.
type options struct {
	ctx context.Context
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context for
// the query's inner topological sort. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
